// Package redact provides utilities for redacting sensitive information
// from strings before they are logged. It targets the secrets this
// service actually handles: API keys, bearer tokens, and database
// connection strings that driver errors tend to echo back.
package redact

import "regexp"

// Redaction placeholders.
const (
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedJWTPlaceholder        = "[REDACTED_JWT]"
)

// Precompiled redaction patterns.
var (
	// Database connection strings with embedded credentials.
	dbConnRegex = regexp.MustCompile(`(?i)(postgres(ql)?|db|database)://[^@\s]+@`)

	// API keys and secrets in key=value or key: value shapes.
	apiKeyRegex = regexp.MustCompile(
		`(?i)(api[_-]?key|token|secret|auth)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`,
	)

	// Standard three-part base64url-encoded JWT tokens.
	jwtTokenRegex = regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`)
)

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := dbConnRegex.ReplaceAllString(input, RedactedCredentialPlaceholder)
	result = jwtTokenRegex.ReplaceAllString(result, RedactedJWTPlaceholder)
	result = apiKeyRegex.ReplaceAllString(result, "${1}${2}"+RedactedKeyPlaceholder)
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
