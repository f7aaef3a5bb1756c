package load

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// parseTag applies the options of a "crud" struct tag to f.
func parseTag(f *Field, tag string) error {
	if tag == "" {
		return nil
	}
	for _, opt := range strings.Split(tag, ",") {
		key, value, hasValue := strings.Cut(strings.TrimSpace(opt), "=")
		switch key {
		case "":
		case "id":
			f.ID = true
		case "nullable":
			f.Column.Nullable = true
		case "column":
			f.Column.Name = value
		case "comment":
			f.Comment = value
		case "length", "max", "precision":
			if !hasValue {
				return errors.Errorf("tag option %q requires a value", key)
			}
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				return errors.Errorf("tag option %q: invalid size %q", key, value)
			}
			switch key {
			case "length":
				f.Column.Length = n
			case "max":
				f.Column.Max = n
			default:
				f.Column.Precision = &n
			}
		default:
			return errors.Errorf("unknown tag option %q", key)
		}
	}
	return nil
}
