package internal

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Version is the application version shown in the window title and --version
const Version = "0.3.1"

// PivotLanguage is the column every dataset carries and every answer side shows
const PivotLanguage = "English"

// LanguageKey normalises a configured language for use in file names
// ("French" -> "french")
func LanguageKey(language string) string {
	return strings.ToLower(strings.TrimSpace(language))
}

// LanguageColumn returns the CSV column name for a configured language
// ("french" -> "French")
func LanguageColumn(language string) string {
	key := LanguageKey(language)
	if key == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(key)
	return string(unicode.ToTitle(r)) + key[size:]
}
