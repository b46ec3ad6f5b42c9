// Package resolver maps request targets to files under the served directory
// and classifies the outcome of reading them.
package resolver

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"
)

type Kind int

const (
	Found Kind = iota
	NotFound
	Malformed
)

func (k Kind) String() string {
	switch k {
	case Found:
		return "found"
	case NotFound:
		return "not found"
	case Malformed:
		return "malformed"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

var errNotUTF8 = errors.New("file is not valid UTF-8")

// Result is what the response builder switches on. Body is only set for Found.
type Result struct {
	Kind Kind
	Body []byte
	Err  error
}

func MalformedResult(err error) Result {
	return Result{Kind: Malformed, Err: err}
}

type Resolver struct {
	Dir             string
	DefaultDocument string
}

func New(dir, defaultDocument string) *Resolver {
	return &Resolver{Dir: dir, DefaultDocument: defaultDocument}
}

// Target maps a request path to a file name. "/" is the default document;
// anything else loses exactly one leading slash. Nothing else is cleaned, so
// "/../x" resolves to "../x".
func (r *Resolver) Target(path string) string {
	if path == "/" {
		return r.DefaultDocument
	}
	return strings.TrimPrefix(path, "/")
}

// Load reads the file behind path. Only a missing file is NotFound; every
// other failure, including contents that are not UTF-8 text, is Malformed.
func (r *Resolver) Load(path string) Result {
	name := r.Target(path)
	body, err := os.ReadFile(r.join(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{Kind: NotFound, Err: err}
		}
		return MalformedResult(err)
	}
	if !utf8.Valid(body) {
		return MalformedResult(fmt.Errorf("%s: %w", name, errNotUTF8))
	}
	return Result{Kind: Found, Body: body}
}

// ReadPage reads one of the fixed error pages from the served directory.
func (r *Resolver) ReadPage(name string) ([]byte, error) {
	return os.ReadFile(r.join(name))
}

func (r *Resolver) join(name string) string {
	if r.Dir == "" || r.Dir == "." {
		return name
	}
	return strings.TrimSuffix(r.Dir, string(os.PathSeparator)) + string(os.PathSeparator) + name
}
