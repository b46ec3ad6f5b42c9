package request

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/Fjumre/Mandatory2/internal/headers"
	"golang.org/x/text/encoding/unicode"
)

const (
	faviconPrefix = "GET /favicon.ico"
	// noRequestLine stands in for the request line when the text has no lines.
	noRequestLine = "-"
)

var ErrMalformedRequestLine = errors.New("malformed request line")

type Request struct {
	// Raw is the decoded request text as read off the connection.
	Raw         string
	Line        string
	Headers     headers.Lines
	RequestLine RequestLine
}

type RequestLine struct {
	Method        string
	RequestTarget string
	HttpVersion   string
}

// ReadText does a single Read of at most size bytes and decodes it as UTF-8.
// Whatever does not fit in the buffer is left unread. Invalid byte sequences
// are replaced with U+FFFD instead of failing.
func ReadText(r io.Reader, size int) (string, error) {
	buf := make([]byte, size)
	n, err := r.Read(buf)
	if n == 0 {
		if err == nil || errors.Is(err, io.EOF) {
			return "", nil
		}
		return "", err
	}
	return decode(buf[:n]), nil
}

func decode(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	out, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		return strings.ToValidUTF8(string(b), string(utf8.RuneError))
	}
	return string(out)
}

// IsBlank reports whether the text is empty or only whitespace. Such requests
// are idle probes and get no response.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}

// Parse splits the request into its request line and raw header lines. The
// request line itself is validated separately by ParseRequestLine.
func Parse(text string) *Request {
	lines := splitLines(text)
	r := &Request{
		Raw:  text,
		Line: noRequestLine,
	}
	if len(lines) > 0 {
		r.Line = lines[0]
		r.Headers = headers.Lines(lines[1:])
	}
	return r
}

// splitLines breaks on "\r\n", "\n" or "\r". A trailing terminator does not
// produce an extra empty line.
func splitLines(text string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			lines = append(lines, text[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, text[start:i])
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

// IsFaviconProbe reports browser favicon requests, which are dropped without
// a response or a log entry.
func (r *Request) IsFaviconProbe() bool {
	return strings.HasPrefix(r.Line, faviconPrefix)
}

func (r *Request) ParseRequestLine() error {
	parts := strings.Fields(r.Line)
	if len(parts) != 3 {
		return fmt.Errorf("%w: expected 3 parts, got %d: %q", ErrMalformedRequestLine, len(parts), r.Line)
	}
	if parts[0] != "GET" {
		return fmt.Errorf("%w: unsupported method %q", ErrMalformedRequestLine, parts[0])
	}
	r.RequestLine = RequestLine{
		Method:        parts[0],
		RequestTarget: parts[1],
		HttpVersion:   parts[2],
	}
	return nil
}

func PrintRequestLine(w io.Writer, r *Request) {
	fmt.Fprintln(w, "Request line:")
	fmt.Fprintln(w, "- Method: "+r.RequestLine.Method)
	fmt.Fprintln(w, "- Target: "+r.RequestLine.RequestTarget)
	fmt.Fprintln(w, "- Version: "+r.RequestLine.HttpVersion)
	fmt.Fprintln(w, "Headers:")
	for _, line := range r.Headers {
		fmt.Fprintf(w, "- %s\n", line)
	}
}
