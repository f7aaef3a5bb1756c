package sql

import (
	"fmt"
	"strings"

	"github.com/syssam/crudgen/dialect"
)

// Bind rewrites the ":name" parameters of query into the positional
// placeholders of the dialect d and returns the arguments in bind order.
// Quoted literals and identifiers, and Postgres "::" casts, are left as is.
func Bind(d, query string, params map[string]any) (string, []any, error) {
	var (
		b     strings.Builder
		args  []any
		quote byte
	)
	b.Grow(len(query))
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
			b.WriteByte(c)
		case c == '\'' || c == '"' || c == '`':
			quote = c
			b.WriteByte(c)
		case c == ':' && i+1 < len(query) && query[i+1] == ':':
			b.WriteString("::")
			i++
		case c == ':' && i+1 < len(query) && isNameStart(query[i+1]):
			j := i + 1
			for j < len(query) && isNameChar(query[j]) {
				j++
			}
			name := query[i+1 : j]
			v, ok := params[name]
			if !ok {
				return "", nil, fmt.Errorf("missing value for parameter %q", name)
			}
			args = append(args, v)
			b.WriteString(dialect.Placeholder(d, len(args)))
			i = j - 1
		default:
			b.WriteByte(c)
		}
	}
	if quote != 0 {
		return "", nil, fmt.Errorf("unterminated quote %q in statement", quote)
	}
	return b.String(), args, nil
}

func isNameStart(c byte) bool {
	return c == '_' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isNameChar(c byte) bool {
	return isNameStart(c) || '0' <= c && c <= '9'
}
