package dialect

import (
	"fmt"
	"strconv"
	"strings"
)

// Dialect names for external usage.
const (
	MySQL    = "mysql"
	SQLite   = "sqlite"
	Postgres = "postgres"
)

// Dialects lists the supported dialect names.
var Dialects = []string{MySQL, Postgres, SQLite}

// Valid reports whether name is a supported dialect.
func Valid(name string) bool {
	switch name {
	case MySQL, Postgres, SQLite:
		return true
	}
	return false
}

// Check returns an error if name is not a supported dialect.
func Check(name string) error {
	if !Valid(name) {
		return fmt.Errorf("dialect: unsupported dialect %q", name)
	}
	return nil
}

// Quote quotes an identifier for the given dialect.
func Quote(d, ident string) string {
	if d == MySQL {
		return "`" + strings.ReplaceAll(ident, "`", "``") + "`"
	}
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}

// Placeholder returns the bind marker of the n-th (1-based) argument.
func Placeholder(d string, n int) string {
	if d == Postgres {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}
