// headers/redact/redact.go
package redact

import "strings"

// sensitiveHeaderKeys lists header and field names whose values never belong in logs.
var sensitiveHeaderKeys = []string{
	"AccessToken",
	"Authorization",
}

// RedactSensitiveHeaderData hides the value of sensitive headers when hideSensitiveData
// is set. Key matching is case-insensitive so canonicalized and raw header names are
// both caught. Non-sensitive values pass through unchanged.
func RedactSensitiveHeaderData(hideSensitiveData bool, key, value string) string {
	if !hideSensitiveData {
		return value
	}
	for _, sensitive := range sensitiveHeaderKeys {
		if strings.EqualFold(key, sensitive) {
			return "REDACTED"
		}
	}
	return value
}
