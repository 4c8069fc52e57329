package service

import "regexp"

// emailPattern is the lenient local@domain.tld check used across the site.
// Deliberately looser than RFC 5322: anything without whitespace around a
// single @ and with a dot in the domain passes. net/mail would accept
// addresses without a domain dot, which the API must reject.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validEmail reports whether s matches the email format check.
func validEmail(s string) bool {
	return emailPattern.MatchString(s)
}
