package gen

import (
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Layer suffixes appended to entity names.
const (
	ControllerSuffix = "Controller"
	ServiceSuffix    = "Service"
	RepositorySuffix = "Repository"
	RowMapperSuffix  = "RowMapper"
	TableSuffix      = "Table"
)

// ControllerName returns the controller type name of an entity.
func ControllerName(name string) string { return name + ControllerSuffix }

// ServiceName returns the service type name of an entity.
func ServiceName(name string) string { return name + ServiceSuffix }

// RepositoryName returns the repository type name of an entity.
func RepositoryName(name string) string { return name + RepositorySuffix }

// RowMapperName returns the row mapper type name of an entity.
func RowMapperName(name string) string { return name + RowMapperSuffix }

// TableTypeName returns the name of the table unit of an entity.
func TableTypeName(name string) string { return name + TableSuffix }

// TableName returns the default table name of an entity.
func TableName(name string) string { return snake(name) }

// PathName returns the default route path of an entity.
func PathName(name string) string { return "/" + plural(snake(name)) }

// FieldName returns the variable name used to hold a value of the given
// type in the layer above it. For example, "WidgetService" -> "widgetService".
func FieldName(typeName string) string { return camel(typeName) }

// FileName returns the Go file name of a generated type.
func FileName(typeName string) string { return snake(typeName) + ".go" }

// acronyms are rendered in upper case by pascal.
var acronyms = map[string]bool{
	"api":  true,
	"html": true,
	"http": true,
	"id":   true,
	"ip":   true,
	"json": true,
	"sql":  true,
	"url":  true,
	"uuid": true,
	"xml":  true,
}

// snake converts the given identifier to snake case.
//
//	Username   => username
//	FullName   => full_name
//	HTTPCode   => http_code
func snake(s string) string {
	var (
		b     strings.Builder
		runes = []rune(s)
	)
	b.Grow(len(s) + 4)
	for i, r := range runes {
		switch {
		case r == '-' || r == ' ':
			b.WriteByte('_')
		case unicode.IsUpper(r):
			if i > 0 && runes[i-1] != '_' && runes[i-1] != '-' && runes[i-1] != ' ' {
				prev := runes[i-1]
				nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if unicode.IsLower(prev) || unicode.IsDigit(prev) || unicode.IsUpper(prev) && nextLower {
					b.WriteByte('_')
				}
			}
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// pascal converts the given identifier to pascal case.
//
//	user_info => UserInfo
//	user_id   => UserID
//	full-name => FullName
func pascal(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	title := cases.Title(language.Und, cases.NoLower)
	var b strings.Builder
	for _, w := range words {
		if acronyms[strings.ToLower(w)] {
			b.WriteString(strings.ToUpper(w))
		} else {
			b.WriteString(title.String(w))
		}
	}
	return b.String()
}

// camel converts the given identifier to camel case.
//
//	user_info     => userInfo
//	WidgetService => widgetService
//	HTTPClient    => httpClient
func camel(s string) string {
	runes := []rune(pascal(s))
	n := 0
	for n < len(runes) && unicode.IsUpper(runes[n]) {
		n++
	}
	if n > 1 && n < len(runes) {
		// The last upper rune of a leading acronym starts the next word.
		n--
	}
	for i := 0; i < n; i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}

// plural returns the plural form of a word.
func plural(s string) string {
	return inflect.Pluralize(s)
}
