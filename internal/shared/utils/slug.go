package utils

import (
	"regexp"
	"strings"
)

var multiHyphen = regexp.MustCompile(`-+`)

// GenerateSlug derives a URL-safe identifier from a title.
// "Sighișoara's Medieval Citadel" -> "sighisoara-s-medieval-citadel"
func GenerateSlug(input string) string {
	ascii := RemoveDiacritics(input)
	lower := strings.ToLower(ascii)

	// Whitespace and punctuation collapse to hyphens so word boundaries
	// survive the character strip.
	hyphenated := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, lower)

	normalized := multiHyphen.ReplaceAllString(hyphenated, "-")

	return strings.Trim(normalized, "-")
}

// RemoveDiacritics folds Romanian diacritics to their ASCII base letters.
// Post titles routinely contain them (Transfăgărășan, Sighișoara, mămăligă).
func RemoveDiacritics(input string) string {
	mappings := map[rune]rune{
		'ă': 'a', 'â': 'a', 'á': 'a', 'à': 'a',
		'é': 'e', 'è': 'e', 'ê': 'e',
		'î': 'i', 'í': 'i', 'ì': 'i',
		'ó': 'o', 'ò': 'o', 'ô': 'o',
		'ú': 'u', 'ù': 'u',
		'ș': 's', 'ş': 's',
		'ț': 't', 'ţ': 't',

		'Ă': 'A', 'Â': 'A', 'Á': 'A', 'À': 'A',
		'É': 'E', 'È': 'E', 'Ê': 'E',
		'Î': 'I', 'Í': 'I', 'Ì': 'I',
		'Ó': 'O', 'Ò': 'O', 'Ô': 'O',
		'Ú': 'U', 'Ù': 'U',
		'Ș': 'S', 'Ş': 'S',
		'Ț': 'T', 'Ţ': 'T',
	}

	result := make([]rune, 0, len(input))
	for _, r := range input {
		if replacement, ok := mappings[r]; ok {
			result = append(result, replacement)
		} else {
			result = append(result, r)
		}
	}

	return string(result)
}
