package caseformat

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Format identifies one of the supported identifier case formats.
type Format string

const (
	// Camel is camelCase: firstName, lastName
	Camel Format = "camel"
	// Pascal is PascalCase: FirstName, LastName
	Pascal Format = "pascal"
	// Snake is snake_case: first_name, last_name
	Snake Format = "snake"
	// ScreamingSnake is SCREAMING_SNAKE_CASE: FIRST_NAME, LAST_NAME
	ScreamingSnake Format = "screaming-snake"
	// Kebab is kebab-case: first-name, last-name
	Kebab Format = "kebab"
	// ScreamingKebab is SCREAMING-KEBAB-CASE: FIRST-NAME, LAST-NAME
	ScreamingKebab Format = "screaming-kebab"
)

// Formats returns all supported formats in display order.
func Formats() []Format {
	return []Format{Camel, Pascal, Snake, ScreamingSnake, Kebab, ScreamingKebab}
}

// Valid reports whether f is one of the supported formats.
func (f Format) Valid() bool {
	switch f {
	case Camel, Pascal, Snake, ScreamingSnake, Kebab, ScreamingKebab:
		return true
	}
	return false
}

// Parse resolves a format name to a Format. It accepts the canonical names
// ("camel", "screaming-snake") plus the common written-out aliases
// ("camelCase", "snake_case", "SCREAMING_SNAKE_CASE").
func Parse(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "camel", "camelcase":
		return Camel, nil
	case "pascal", "pascalcase":
		return Pascal, nil
	case "snake", "snake_case", "snakecase":
		return Snake, nil
	case "screaming-snake", "screaming_snake", "screaming_snake_case", "screamingsnakecase":
		return ScreamingSnake, nil
	case "kebab", "kebab-case", "kebabcase":
		return Kebab, nil
	case "screaming-kebab", "screaming-kebab-case", "screamingkebabcase":
		return ScreamingKebab, nil
	}
	return "", fmt.Errorf("caseformat: unknown format %q (valid: %v)", name, Formats())
}

// Detection patterns require at least two word segments so that a bare
// word ("foo") is never reported as belonging to any format. RE2 has no
// lookaround; camel/Pascal decomposition is therefore done by character
// scanning in Split, not by the pattern.
var patterns = map[Format]*regexp.Regexp{
	Camel:          regexp.MustCompile(`\b[a-z]+(?:[A-Z][a-z0-9]*)+\b`),
	Pascal:         regexp.MustCompile(`\b[A-Z][a-z0-9]+(?:[A-Z][a-z0-9]*)+\b`),
	Snake:          regexp.MustCompile(`\b[a-z]+(?:_[a-z0-9]+)+\b`),
	ScreamingSnake: regexp.MustCompile(`\b[A-Z]+(?:_[A-Z0-9]+)+\b`),
	Kebab:          regexp.MustCompile(`\b[a-z]+(?:-[a-z0-9]+)+\b`),
	ScreamingKebab: regexp.MustCompile(`\b[A-Z]+(?:-[A-Z0-9]+)+\b`),
}

// Pattern returns the compiled detection pattern for this format.
// Every match spans a maximal identifier with two or more word segments.
// The returned Regexp is shared; callers must not mutate it.
func (f Format) Pattern() *regexp.Regexp {
	return patterns[f]
}

// titleCaser capitalizes the first letter of a word without lowering the
// rest. Words arriving from Split are already lowercase.
var titleCaser = cases.Title(language.English, cases.NoLower)

// Split decomposes an identifier in this format into its lowercase word
// segments. Separator formats split on their separator; camel/Pascal split
// at case transitions.
//
// Acronym rule: within a run of uppercase letters followed by a lowercase
// letter, the last uppercase letter starts the next word ("HTTPServer"
// yields "http", "server"); a trailing uppercase run is a single word
// ("ParseURL" yields "parse", "url"). Digits stay attached to the word
// they follow ("myVar2Name" yields "my", "var2", "name").
func (f Format) Split(text string) []string {
	switch f {
	case Camel, Pascal:
		return splitCaseBoundaries(text)
	case Snake, ScreamingSnake:
		return splitSeparator(text, "_")
	case Kebab, ScreamingKebab:
		return splitSeparator(text, "-")
	}
	return nil
}

// Join reassembles lowercase word segments into this format, wrapped with
// the literal prefix and suffix (empty string is a no-op). Joining an
// empty word sequence returns an empty string with no wrapping.
func (f Format) Join(words []string, prefix, suffix string) string {
	if len(words) == 0 {
		return ""
	}

	var result string
	switch f {
	case Camel:
		var b strings.Builder
		b.WriteString(strings.ToLower(words[0]))
		for _, w := range words[1:] {
			b.WriteString(titleCaser.String(w))
		}
		result = b.String()
	case Pascal:
		var b strings.Builder
		for _, w := range words {
			b.WriteString(titleCaser.String(w))
		}
		result = b.String()
	case Snake:
		result = strings.ToLower(strings.Join(words, "_"))
	case ScreamingSnake:
		result = strings.ToUpper(strings.Join(words, "_"))
	case Kebab:
		result = strings.ToLower(strings.Join(words, "-"))
	case ScreamingKebab:
		result = strings.ToUpper(strings.Join(words, "-"))
	}

	return prefix + result + suffix
}

// splitSeparator splits on sep, dropping empty segments and lowercasing.
func splitSeparator(text, sep string) []string {
	parts := strings.Split(text, sep)
	words := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			words = append(words, strings.ToLower(p))
		}
	}
	return words
}

// splitCaseBoundaries splits camelCase/PascalCase text at uppercase
// transitions by explicit character scanning (the matching engine has no
// lookaround). See Split for the acronym rule.
func splitCaseBoundaries(text string) []string {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}

	var words []string
	start := 0
	for i := 1; i < len(runes); i++ {
		prev, cur := runes[i-1], runes[i]
		boundary := false
		switch {
		case unicode.IsUpper(cur) && !unicode.IsUpper(prev):
			// lower/digit -> upper transition starts a new word
			boundary = true
		case unicode.IsUpper(prev) && unicode.IsUpper(cur) &&
			i+1 < len(runes) && unicode.IsLower(runes[i+1]):
			// last uppercase of a run followed by lowercase starts a new word
			boundary = true
		}
		if boundary {
			words = append(words, strings.ToLower(string(runes[start:i])))
			start = i
		}
	}
	words = append(words, strings.ToLower(string(runes[start:])))
	return words
}
