// Package keyvalues parses Valve's text KeyValues dialect (VDF/ACF) into a
// generic tree of strings and nested objects.
//
// The format has undocumented vendor quirks, so the parser is deliberately
// tolerant: it stops consuming at the first point it cannot make progress
// and returns whatever it has accumulated. Callers treat missing keys as a
// soft failure instead of relying on whole-document validation.
package keyvalues

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Object is a parsed KeyValues tree. Values are either string or Object.
type Object = map[string]any

// ErrNoObject is reported when a document contains no opening brace after
// the header line.
var ErrNoObject = errors.New("no object after header")

// ParseError is returned when a document cannot be read or contains no
// top-level object. Malformed interior structure does not produce an error.
type ParseError struct {
	Err  error
	Path string
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("keyvalues: parse %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("keyvalues: parse: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse reads a full KeyValues document. The first line is the root object
// name and is discarded, then the brace-delimited body is parsed.
func Parse(r io.Reader) (Object, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	return parse(data, "")
}

// ParseFile parses the KeyValues document at path.
func ParseFile(path string) (Object, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Err: err, Path: path}
	}
	return parse(data, path)
}

func parse(data []byte, path string) (Object, error) {
	s := &scanner{data: data}

	// Discard the header line verbatim.
	for s.pos < len(s.data) && s.data[s.pos] != '\n' {
		s.pos++
	}

	// Seek the opening brace of the root object.
	for s.pos < len(s.data) && s.data[s.pos] != '{' {
		s.pos++
	}
	if s.pos >= len(s.data) {
		return nil, &ParseError{Err: ErrNoObject, Path: path}
	}
	s.pos++

	return s.parseObject(), nil
}

type scanner struct {
	data []byte
	pos  int
}

func (s *scanner) skipSpace() {
	for s.pos < len(s.data) {
		switch s.data[s.pos] {
		case ' ', '\t', '\r', '\n':
			s.pos++
		default:
			return
		}
	}
}

// parseString consumes a double-quoted string. No escape sequences are
// recognized; the value runs to the next quote or end of input.
func (s *scanner) parseString() string {
	s.pos++ // opening quote
	start := s.pos
	for s.pos < len(s.data) && s.data[s.pos] != '"' {
		s.pos++
	}
	val := string(s.data[start:s.pos])
	if s.pos < len(s.data) {
		s.pos++ // closing quote
	}
	return val
}

// parseObject consumes entries until the matching close brace, end of
// input, or the first byte it cannot interpret. A repeated key within one
// object overwrites the earlier value.
func (s *scanner) parseObject() Object {
	obj := Object{}
	for {
		s.skipSpace()
		if s.pos >= len(s.data) {
			return obj
		}
		if s.data[s.pos] == '}' {
			s.pos++
			return obj
		}
		if s.data[s.pos] != '"' {
			return obj
		}
		key := s.parseString()

		s.skipSpace()
		if s.pos >= len(s.data) {
			return obj
		}
		switch s.data[s.pos] {
		case '{':
			s.pos++
			obj[key] = s.parseObject()
		case '"':
			obj[key] = s.parseString()
		default:
			return obj
		}
	}
}

// GetObject walks nested objects by key and reports whether the full path
// resolved to an object.
func GetObject(obj Object, keys ...string) (Object, bool) {
	cur := obj
	for _, k := range keys {
		next, ok := cur[k].(Object)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// GetString resolves a string value at the given key path.
func GetString(obj Object, keys ...string) (string, bool) {
	if len(keys) == 0 {
		return "", false
	}
	parent, ok := GetObject(obj, keys[:len(keys)-1]...)
	if !ok {
		return "", false
	}
	val, ok := parent[keys[len(keys)-1]].(string)
	return val, ok
}
