package api

import "strings"

// TrimToRect cuts s to at most maxHeight lines of maxWidth bytes each,
// marking every cut with "[...]". Queue messages carry user-program output
// verbatim otherwise, and that output can be arbitrarily large.
func TrimToRect(s string, maxHeight int, maxWidth int) string {
	if s == "" {
		return s
	}

	lines := strings.Split(s, "\n")
	if len(lines) > maxHeight {
		lines = lines[:maxHeight]
		lines = append(lines, "[...]")
	}

	res := ""
	for i, line := range lines {
		if i > 0 {
			res += "\n"
		}
		if len(line) > maxWidth {
			res += line[:maxWidth] + "[...]"
		} else {
			res += line
		}
	}
	return res
}
