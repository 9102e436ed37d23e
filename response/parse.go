// response/parse.go
package response

import "strings"

// parseHeader splits a header such as Content-Type or Content-Disposition into its main
// value and a map of parameters. Parameter values are unquoted and whitespace is trimmed.
// Segments without an equals sign are skipped.
func parseHeader(header string) (string, map[string]string) {
	mainValue, rest, _ := strings.Cut(header, ";")

	params := make(map[string]string)
	for _, part := range strings.Split(rest, ";") {
		if key, value, ok := strings.Cut(part, "="); ok {
			params[strings.TrimSpace(key)] = strings.Trim(strings.TrimSpace(value), `"`)
		}
	}

	return strings.TrimSpace(mainValue), params
}
