package contact

import "regexp"

// emailRe matches a syntactic email address: local part of letters, digits
// and ._%+-, then domain labels of letters, digits and .-, ending in a
// top-level label of at least two letters. No validation beyond syntax.
var emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

// ExtractEmail returns the first email-like substring in document order, or
// "" when none matches. Scanning stops at the first match; later addresses
// on the page are ignored.
func ExtractEmail(body []byte) string {
	return string(emailRe.Find(body))
}
