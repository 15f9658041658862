package domain

import "strings"

const (
	DotDelimiter   = "."
	SlashDelimiter = "/"
)

// NameDelimiter returns the segment delimiter used by name.
// Slash-separated paths ("/org/service/db") win over dotted names ("org.example.calc").
func NameDelimiter(name string) string {
	if strings.Contains(name, SlashDelimiter) {
		return SlashDelimiter
	}
	return DotDelimiter
}

// ProperPrefixes returns the proper prefixes of name, longest first.
// "a.b.c.d" yields "a.b.c", "a.b", "a"; "/org/service/db" yields "/org/service", "/org".
// A single-segment name has none.
func ProperPrefixes(name string) []string {
	sep := NameDelimiter(name)
	lead := ""
	body := name
	if strings.HasPrefix(body, sep) {
		lead = sep
		body = body[len(sep):]
	}
	parts := strings.Split(body, sep)
	out := make([]string, 0, len(parts))
	for i := len(parts) - 1; i >= 1; i-- {
		out = append(out, lead+strings.Join(parts[:i], sep))
	}
	return out
}
