// Package frontmatter parses Markdown files carrying a YAML metadata header
// delimited by --- fences, followed by the body verbatim.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Metadata is the flexible key/value header of a content file.
type Metadata map[string]interface{}

// File is a parsed Markdown file: the front-matter header plus the body.
type File struct {
	Metadata Metadata
	Body     string
}

// Parse reads a stream and splits it into front matter and body. A file
// without an opening --- fence is all body. An opening fence without a
// closing one is an error.
func Parse(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	f := &File{Metadata: make(Metadata)}

	if !bytes.HasPrefix(data, []byte("---\n")) && !bytes.HasPrefix(data, []byte("---\r\n")) {
		f.Body = string(data)
		return f, nil
	}

	rest := data[3:]
	parts := bytes.SplitN(rest, []byte("---"), 2)
	if len(parts) == 1 {
		return nil, errors.New("front matter started but no closing delimiter found")
	}

	if err := yaml.Unmarshal(parts[0], &f.Metadata); err != nil {
		return nil, fmt.Errorf("failed to parse front matter: %w", err)
	}

	// Drop the newline that follows the closing fence.
	f.Body = strings.TrimPrefix(string(parts[1]), "\n")
	f.Body = strings.TrimPrefix(f.Body, "\r\n")

	return f, nil
}

// GetString returns the metadata value for key as a string, or "" when
// absent or not a string.
func (m Metadata) GetString(key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// GetBool returns the metadata value for key as a bool, or false when absent.
func (m Metadata) GetBool(key string) bool {
	if v, ok := m[key].(bool); ok {
		return v
	}
	return false
}

// GetStringSlice coerces a metadata value into a string slice. YAML lists
// decode as []interface{}; a bare scalar is treated as a single entry.
func (m Metadata) GetStringSlice(key string) []string {
	switch v := m[key].(type) {
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, fmt.Sprintf("%v", item))
		}
		return out
	case []string:
		return v
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	default:
		return nil
	}
}
