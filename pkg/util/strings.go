package util

import "strings"

// RemoveDuplicateStrings keeps the first occurrence of every non-empty string not in ignoreList
func RemoveDuplicateStrings(strings []string, ignoreList []string) []string {
	presentStrings := make(map[string]bool)
	var list []string

	for _, ignoreString := range ignoreList {
		presentStrings[ignoreString] = true
	}

	for _, item := range strings {
		if _, value := presentStrings[item]; !value && item != "" {
			presentStrings[item] = true
			list = append(list, item)
		}
	}
	return list
}

// TrimString cuts s down to at most length runes
func TrimString(s string, length int) string {
	runes := []rune(s)
	if len(runes) <= length {
		return s
	}

	return string(runes[:length])
}

var controlCharacters = strings.NewReplacer("\r", "", "\n", "", "\t", "")

// StripControlCharacters removes carriage returns, newlines and tabs
func StripControlCharacters(s string) string {
	return controlCharacters.Replace(s)
}

// JoinNonEmpty joins the parts that are not blank with separator
func JoinNonEmpty(separator string, parts ...string) string {
	var kept []string
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			kept = append(kept, part)
		}
	}

	return strings.Join(kept, separator)
}
