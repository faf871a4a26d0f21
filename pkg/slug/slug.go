package slug

import (
	"strings"
	"unicode"
)

// Make lowers the input and collapses every non-alphanumeric run into a
// single dash, e.g. "Apple iPhone 14" -> "apple-iphone-14".
func Make(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}

	return strings.TrimRight(b.String(), "-")
}
