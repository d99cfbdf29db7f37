package intervals

import (
	"fmt"
	"strings"
)

// OutputPath expands the interval index placeholder in an output template.
// The placeholder {i} is replaced with the index as written; {i%W}, where W
// is a run of decimal digits, zero-pads the index to width W. A template
// without a recognizable placeholder is returned unchanged. Any literal
// percent outside the placeholder survives expansion.
func OutputPath(template string, index int) string {
	pat, ok := indexPattern(template)
	if !ok {
		return template
	}
	return expandIndex(pat, index)
}

// indexPattern converts a template to an fmt pattern holding exactly one
// positional integer verb, escaping literal percents first so only the
// placeholder's own width directive is interpreted. The second result is
// false when the template has no placeholder.
func indexPattern(template string) (string, bool) {
	start := strings.Index(template, "{i")
	if start < 0 {
		return template, false
	}
	rest := template[start:]
	end := strings.Index(rest, "}")
	if end < 0 {
		return template, false
	}

	token := rest[1:end] // "i" or "i%W"
	verb := "%d"
	if name, width, found := strings.Cut(token, "%"); found {
		if name != "i" || !allDigits(width) {
			return template, false
		}
		verb = "%0" + width + "d"
	} else if token != "i" {
		return template, false
	}

	prefix := strings.ReplaceAll(template[:start], "%", "%%")
	suffix := strings.ReplaceAll(rest[end+1:], "%", "%%")
	return prefix + verb + suffix, true
}

func expandIndex(pattern string, index int) string {
	return fmt.Sprintf(pattern, index)
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
