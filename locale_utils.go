package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// normalizeLocale canonicalizes a locale code through BCP 47 parsing,
// falling back to underscore and whitespace cleanup for codes the parser
// rejects.
func normalizeLocale(locale string) string {
	locale = strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
	if locale == "" {
		return ""
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return locale
	}

	value := tag.String()
	if value == "" || value == "und" {
		return locale
	}
	return value
}
