package headers

import (
	"fmt"
	"io"
	"strings"
)

// Lines are request header lines kept exactly as received. They are printed
// for the operator and never interpreted.
type Lines []string

func (l Lines) Len() int {
	return len(l)
}

// String joins the lines for console output, or returns "-" when the request
// carried none.
func (l Lines) String() string {
	if len(l) == 0 {
		return "-"
	}
	return strings.Join(l, "\n")
}

type field struct {
	name  string
	value string
}

// Headers is an ordered set of response header fields. Names compare
// case-insensitively.
type Headers struct {
	fields []field
}

func NewHeaders() *Headers {
	return &Headers{}
}

// ContentTypeHTML is the only header the server ever sends.
func ContentTypeHTML() *Headers {
	h := NewHeaders()
	h.Set("Content-Type", "text/html")
	return h
}

func (h *Headers) Get(key string) (string, bool) {
	for _, f := range h.fields {
		if strings.EqualFold(f.name, key) {
			return f.value, true
		}
	}
	return "", false
}

// Set replaces an existing field or appends a new one at the end.
func (h *Headers) Set(key, value string) {
	for i, f := range h.fields {
		if strings.EqualFold(f.name, key) {
			h.fields[i].value = value
			return
		}
	}
	h.fields = append(h.fields, field{name: key, value: value})
}

func (h *Headers) Len() int {
	return len(h.fields)
}

// Write emits each field as "Name: value\r\n" in insertion order.
func (h *Headers) Write(w io.Writer) error {
	for _, f := range h.fields {
		if _, err := fmt.Fprintf(w, "%s: %s\r\n", f.name, f.value); err != nil {
			return err
		}
	}
	return nil
}
