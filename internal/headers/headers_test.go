package headers

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinesString(t *testing.T) {
	// Test: No header lines
	var lines Lines
	assert.Equal(t, "-", lines.String())
	assert.Equal(t, 0, lines.Len())

	// Test: Lines are kept raw, including odd spacing
	lines = Lines{"Host: localhost:8080", "       User-Agent :   curl/8.5.0  "}
	assert.Equal(t, "Host: localhost:8080\n       User-Agent :   curl/8.5.0  ", lines.String())
	assert.Equal(t, 2, lines.Len())

	// Test: Empty trailing line is preserved
	lines = Lines{"Accept: */*", ""}
	assert.Equal(t, "Accept: */*\n", lines.String())
}

func TestHeadersSetGet(t *testing.T) {
	// Test: Valid single header
	h := NewHeaders()
	h.Set("Content-Type", "text/html")
	v, ok := h.Get("content-type")
	require.True(t, ok)
	assert.Equal(t, "text/html", v)

	// Test: Same key different case replaces value
	h.Set("CONTENT-TYPE", "text/plain")
	v, ok = h.Get("Content-Type")
	require.True(t, ok)
	assert.Equal(t, "text/plain", v)
	assert.Equal(t, 1, h.Len())

	// Test: Missing key
	_, ok = h.Get("Content-Length")
	assert.False(t, ok)
}

func TestHeadersWrite(t *testing.T) {
	// Test: Fields keep insertion order
	h := NewHeaders()
	h.Set("Content-Type", "text/html")
	h.Set("X-Trace", "abc")
	buf := &bytes.Buffer{}
	require.NoError(t, h.Write(buf))
	assert.Equal(t, "Content-Type: text/html\r\nX-Trace: abc\r\n", buf.String())

	// Test: Default response headers
	buf.Reset()
	require.NoError(t, ContentTypeHTML().Write(buf))
	assert.Equal(t, "Content-Type: text/html\r\n", buf.String())
}
