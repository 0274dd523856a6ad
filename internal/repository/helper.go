package repository

import "strings"

// placeholders returns a comma-joined list of n SQL parameter placeholders.
func placeholders(n int) string {
	if n == 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}
