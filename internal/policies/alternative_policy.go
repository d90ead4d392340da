package policies

import "strings"

// SelectAlternative picks the dependency set to package when an index page
// lists several acceptable alternatives. The last listed set is the most
// permissive one and always wins. Blank alternatives are ignored; an empty
// input yields an empty string.
func SelectAlternative(alternatives []string) string {
	for i := len(alternatives) - 1; i >= 0; i-- {
		if strings.TrimSpace(alternatives[i]) != "" {
			return alternatives[i]
		}
	}
	return ""
}
