package i18n

import (
	"fmt"
	"regexp"
	"strings"
)

// Default placeholder delimiters.
const (
	DefaultStartDelimiter = "{{"
	DefaultEndDelimiter   = "}}"
)

var whitespacePattern = regexp.MustCompile(`\s`)

// templatePattern is the matcher set compiled from one delimiter pair.
// Compiled once at construction and immutable afterwards.
type templatePattern struct {
	start string
	end   string

	spans    *regexp.Regexp
	leading  *regexp.Regexp
	trailing *regexp.Regexp
}

// compileDelimiters escapes the delimiter pair and builds the three matchers:
// every placeholder span, the leading start marker and the trailing end
// marker. A span runs from a start marker to the next end marker, inclusive.
func compileDelimiters(start, end string) *templatePattern {
	quotedStart := regexp.QuoteMeta(start)
	quotedEnd := regexp.QuoteMeta(end)

	return &templatePattern{
		start:    start,
		end:      end,
		spans:    regexp.MustCompile(quotedStart + `.*?` + quotedEnd),
		leading:  regexp.MustCompile(`^` + quotedStart),
		trailing: regexp.MustCompile(quotedEnd + `$`),
	}
}

// variablePath strips the delimiters from a matched span and removes all
// interior whitespace, so "{{ user . name }}" addresses "user.name".
func (p *templatePattern) variablePath(span string) string {
	inner := p.leading.ReplaceAllString(span, "")
	inner = p.trailing.ReplaceAllString(inner, "")
	return whitespacePattern.ReplaceAllString(inner, "")
}

// render substitutes every placeholder span with its value from data,
// replacing each span at its own position, left to right. Variables that do
// not resolve substitute the empty string and are reported to onMissing.
func (p *templatePattern) render(template string, data map[string]any, onMissing func(variable string)) string {
	spans := p.spans.FindAllString(template, -1)
	if len(spans) == 0 {
		return template
	}

	result := template
	for _, span := range spans {
		path := p.variablePath(span)

		replacement := ""
		if value, ok := resolvePath(data, path); ok && value != nil {
			replacement = stringify(value)
		} else if onMissing != nil {
			onMissing(path)
		}

		result = strings.Replace(result, span, replacement, 1)
	}

	return result
}

func stringify(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}
