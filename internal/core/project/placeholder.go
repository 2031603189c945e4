package project

import "strings"

// Placeholder is the token template authors use in place of the project name.
const Placeholder = "_PROJECT_NAME_PLACEHOLDER_"

// ReplacePlaceholders substitutes every occurrence of Placeholder in text
// with name. An empty text yields an empty string.
func ReplacePlaceholders(text, name string) string {
	if text == "" {
		return ""
	}
	return strings.ReplaceAll(text, Placeholder, name)
}
