// Package redact scrubs credentials and personal data out of strings
// before they reach a log line. Store and driver errors routinely echo
// connection strings, bcrypt digests, bearer tokens and email addresses.
package redact

import "regexp"

// Placeholders substituted for redacted fragments.
const (
	CredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	JWTPlaceholder        = "[REDACTED_JWT]"
	HashPlaceholder       = "[REDACTED_HASH]"
	EmailPlaceholder      = "[REDACTED_EMAIL]"
	SecretPlaceholder     = "[REDACTED_KEY]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// Rules are applied in order. Connection strings go first so that the
// userinfo part is gone before the email pattern sees "user@host".
var rules = []rule{
	{
		regexp.MustCompile(`(?i)(mongodb(\+srv)?|postgres(ql)?)://[^@\s/]+@`),
		CredentialPlaceholder,
	},
	{
		regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`),
		JWTPlaceholder,
	},
	{
		regexp.MustCompile(`\$2[abxy]?\$\d{2}\$[./A-Za-z0-9]{53}`),
		HashPlaceholder,
	},
	{
		regexp.MustCompile(`(?i)(password|passwd|pwd)([=:]\s*['"]?)[^'"&\s]{3,}`),
		CredentialPlaceholder,
	},
	{
		regexp.MustCompile(`(?i)(jwt[_-]?secret|api[_-]?key|secret)(['"\s:=]+)[A-Za-z0-9_\-.~+/!]{8,}`),
		SecretPlaceholder,
	},
	{
		regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		EmailPlaceholder,
	},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
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
