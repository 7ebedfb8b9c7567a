// Package redact removes sensitive values from strings before they are
// logged. The service handles MongoDB connection URIs, bearer tokens, and
// password material, any of which can leak through driver or library error
// messages.
package redact

import "regexp"

// Precompiled patterns with their replacement placeholders.
var replacements = []struct {
	pattern     *regexp.Regexp
	placeholder string
}{
	// MongoDB connection URIs carrying credentials
	{regexp.MustCompile(`(?i)mongodb(\+srv)?://[^@\s]+@`), "[REDACTED_URI]"},
	// Signed JWTs (three base64url segments)
	{regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`), "[REDACTED_JWT]"},
	// bcrypt hashes
	{regexp.MustCompile(`\$2[aby]\$\d{2}\$[./A-Za-z0-9]{53}`), "[REDACTED_HASH]"},
	// password=... style fragments
	{regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]['"]?|['"]?[=:])[^'"&\s]+`), "[REDACTED_CREDENTIAL]"},
	// secret/key assignments
	{regexp.MustCompile(`(?i)(secret|api[_-]?key|token)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`), "[REDACTED_KEY]"},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range replacements {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
