// Package format provides uniquefier suffix strategies for layer naming.
// A strategy maps the numeric uniquefier to the display suffix appended to a
// colliding layer name; the layer package treats it as opaque, so callers can
// plug in locale-specific digit formatting.
package format

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Plain returns a strconv-based uniquefier: 0 maps to the empty suffix
// (leaving the candidate unadorned) and positive n to " n".
func Plain() func(n int) string {
	return func(n int) string {
		if n <= 0 {
			return ""
		}
		return " " + strconv.Itoa(n)
	}
}

// Locale returns a uniquefier that formats the number for the given language
// tag, so digit grouping follows the caller's locale once the suffix grows
// past three digits.
func Locale(tag language.Tag) func(n int) string {
	p := message.NewPrinter(tag)
	return func(n int) string {
		if n <= 0 {
			return ""
		}
		return " " + p.Sprintf("%d", n)
	}
}

// Appendix applies strategy u to uniquefier number n, substituting Plain for
// a nil strategy. Nonpositive numbers always yield the empty suffix.
func Appendix(n int, u func(n int) string) string {
	if u == nil {
		u = Plain()
	}
	if n <= 0 {
		return ""
	}
	return u(n)
}

// ForLocale parses a BCP 47 tag (e.g. "de", "en-US") and returns the matching
// locale uniquefier. A blank or unparseable tag falls back to Plain.
func ForLocale(tag string) func(n int) string {
	if tag == "" {
		return Plain()
	}
	parsed, err := language.Parse(tag)
	if err != nil {
		return Plain()
	}
	return Locale(parsed)
}
