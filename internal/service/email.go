package service

import "strings"

// NormalizeEmail trims surrounding whitespace and lowercases the address.
// Every email that reaches a store query or a unique index goes through
// here first, so "  Kid@Example.COM " and "kid@example.com" are the same
// identity everywhere.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
