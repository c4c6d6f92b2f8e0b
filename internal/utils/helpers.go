// Package utils provides utility functions and helpers for common operations
// used throughout the application.
package utils

import (
	"strings"
)

// MaskEmail masks the user part of an email address, showing only the first
// and last character. This keeps log output free of full addresses.
//
// For example: "user@example.com" becomes "u**r@example.com"
func MaskEmail(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return email
	}

	user := parts[0]
	domain := parts[1]

	if len(user) <= 2 {
		return email
	}

	masked := string(user[0]) + strings.Repeat("*", len(user)-2) + string(user[len(user)-1]) + "@" + domain
	return masked
}

// TruncateString truncates a string to the given maximum length and adds
// ellipsis if necessary. Useful for logging long values.
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
