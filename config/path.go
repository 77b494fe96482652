package config

import "strings"

// splitPath tokenizes a backslash-delimited path such as
// "NTCore\System\Kernel" into its non-empty segments (spec §4.G: "string-
// path tokenization"). Grounded on the teacher's internal/regtext path
// handling: backslash-split, leading/trailing separators ignored.
func splitPath(path string) ([]string, error) {
	trimmed := strings.Trim(path, `\`)
	if trimmed == "" {
		return nil, ErrInvalidPath
	}
	parts := strings.Split(trimmed, `\`)
	for _, p := range parts {
		if p == "" {
			return nil, ErrInvalidPath
		}
	}
	return parts, nil
}
