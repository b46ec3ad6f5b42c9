package accesslog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	e := Entry{
		ClientIP:    "192.168.1.7",
		Time:        time.Date(2024, time.March, 5, 9, 4, 3, 0, time.UTC),
		RequestLine: "GET / HTTP/1.1",
		Status:      200,
		Size:        2,
	}
	assert.Equal(t, "192.168.1.7 - - [05/Mar/2024:09:04:03 +0000] \"GET / HTTP/1.1\" 200 2\n", Format(e))

	// Test: Times in other zones are rendered in UTC
	cet := time.FixedZone("CET", 3600)
	e.Time = time.Date(2024, time.March, 5, 10, 4, 3, 0, cet)
	e.Status = 404
	e.Size = 22
	assert.Equal(t, "192.168.1.7 - - [05/Mar/2024:09:04:03 +0000] \"GET / HTTP/1.1\" 404 22\n", Format(e))
}

func TestAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.log")
	require.NoError(t, os.WriteFile(path, []byte("existing line\n"), 0o644))

	l, err := Open(path)
	require.NoError(t, err)
	l.Now = func() time.Time { return time.Date(2025, time.December, 31, 23, 59, 59, 0, time.UTC) }
	assert.Equal(t, path, l.Path())

	require.NoError(t, l.Append(Entry{ClientIP: "127.0.0.1", RequestLine: "GET / HTTP/1.1", Status: 200, Size: 2}))
	require.NoError(t, l.Append(Entry{ClientIP: "127.0.0.1", RequestLine: "POST / HTTP/1.1", Status: 400, Size: 24}))
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "existing line\n"+
		"127.0.0.1 - - [31/Dec/2025:23:59:59 +0000] \"GET / HTTP/1.1\" 200 2\n"+
		"127.0.0.1 - - [31/Dec/2025:23:59:59 +0000] \"POST / HTTP/1.1\" 400 24\n", string(data))
}

func TestOpenFailure(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing-dir", "server.log"))
	require.Error(t, err)
}
