package utils

import "strings"

func RemoveEmptyStrings(slice []string) []string {
	var result []string

	for _, s := range slice {
		if s != "" {
			result = append(result, s)
		}
	}

	return result
}

// SplitAndTrim splits s by sep and trims whitespace around every part
func SplitAndTrim(s, sep string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, sep)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
