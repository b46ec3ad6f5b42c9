package response

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/Fjumre/Mandatory2/internal/headers"
	"github.com/Fjumre/Mandatory2/internal/resolver"
)

type StatusCode int

const (
	StatusOK         StatusCode = 200
	StatusBadRequest StatusCode = 400
	StatusNotFound   StatusCode = 404
)

const (
	fallbackNotFound   = "<h1>404 Not Found</h1>"
	fallbackBadRequest = "<h1>400 Bad Request</h1>"
)

// PageReader loads a custom error page by file name.
type PageReader interface {
	ReadPage(name string) ([]byte, error)
}

// ErrorPages names the custom pages tried for 404 and 400 responses.
type ErrorPages struct {
	NotFound   string
	BadRequest string
}

type Response struct {
	Status  StatusCode
	Headers *headers.Headers
	Body    []byte
}

func New(status StatusCode, body []byte) *Response {
	return &Response{
		Status:  status,
		Headers: headers.ContentTypeHTML(),
		Body:    body,
	}
}

// FromResult turns a resolver outcome into a response. A missing or unreadable
// error page falls back to a fixed fragment and never changes the status.
func FromResult(res resolver.Result, pages PageReader, names ErrorPages) *Response {
	switch res.Kind {
	case resolver.Found:
		return New(StatusOK, res.Body)
	case resolver.NotFound:
		return New(StatusNotFound, errorBody(pages, names.NotFound, fallbackNotFound))
	default:
		return New(StatusBadRequest, errorBody(pages, names.BadRequest, fallbackBadRequest))
	}
}

func errorBody(pages PageReader, name, fallback string) []byte {
	if pages == nil || name == "" {
		return []byte(fallback)
	}
	body, err := pages.ReadPage(name)
	if err != nil {
		return []byte(fallback)
	}
	return body
}

func WriteStatusLine(w io.Writer, statusCode StatusCode) error {
	_, err := fmt.Fprintf(w, "HTTP/1.1 %d %s\r\n", statusCode, http.StatusText(int(statusCode)))
	return err
}

func WriteHeaders(w io.Writer, h *headers.Headers) error {
	if err := h.Write(w); err != nil {
		return err
	}
	_, err := fmt.Fprint(w, "\r\n")
	return err
}

// Size is the number of body bytes sent, the figure written to the access log.
func (r *Response) Size() int {
	return len(r.Body)
}

// Bytes frames the whole response: status line, headers, blank line, body.
func (r *Response) Bytes() []byte {
	buf := &bytes.Buffer{}
	buf.Grow(64 + len(r.Body))
	// Writes to a bytes.Buffer cannot fail.
	_ = WriteStatusLine(buf, r.Status)
	_ = WriteHeaders(buf, r.Headers)
	buf.Write(r.Body)
	return buf.Bytes()
}

// WriteTo sends the framed response with a single Write call.
func (r *Response) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(r.Bytes())
	return int64(n), err
}
