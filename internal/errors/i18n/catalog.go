// Package i18n provides localized user-facing messages for domain error codes.
package i18n

import (
	"bytes"
	"strings"
	"text/template"

	"golang.org/x/text/language"
)

// Code is a string error code. Codes are duplicated from internal/errors as
// plain strings to avoid an import cycle.
type Code = string

// Catalog maps error codes to localized message templates.
type Catalog struct {
	locale   string
	tag      language.Tag
	messages map[Code]string
}

// Locale returns the catalog's BCP 47 locale identifier.
func (c *Catalog) Locale() string {
	return c.locale
}

// Format renders the message for a code, substituting {{.Key}} placeholders
// from metadata. Unknown codes and template failures fall back to a generic
// message or the raw template so formatting never fails a request.
func (c *Catalog) Format(code Code, metadata map[string]string) string {
	msg, ok := c.messages[code]
	if !ok {
		return "An unexpected error occurred"
	}
	if !strings.Contains(msg, "{{") {
		return msg
	}

	tmpl, err := template.New(code).Parse(msg)
	if err != nil {
		return msg
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, metadata); err != nil {
		return msg
	}
	return buf.String()
}

var catalogs = []*Catalog{enUSCatalog}

// GetCatalog returns the catalog matching the requested locale. Matching
// falls back from exact locale to base language to en-US.
func GetCatalog(locale string) *Catalog {
	for _, c := range catalogs {
		if strings.EqualFold(c.locale, locale) {
			return c
		}
	}

	if tag, err := language.Parse(locale); err == nil {
		base, _ := tag.Base()
		for _, c := range catalogs {
			catalogBase, _ := c.tag.Base()
			if catalogBase == base {
				return c
			}
		}
	}

	return enUSCatalog
}
