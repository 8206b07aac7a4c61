package repositories

import "strings"

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}

func prefixColumns(prefix string, cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = prefix + "." + c
	}
	return out
}
