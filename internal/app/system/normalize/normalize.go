// internal/app/system/normalize/normalize.go
package normalize

import (
	"regexp"
	"strings"
)

// GradeKey canonicalizes a grade/year string for grouping and equality.
//
// Source spreadsheets write the same grade three ways: "5o ano", "5º Ano",
// "5° ANO". The key trims, collapses internal whitespace, lower-cases, and
// unifies the ordinal markers (degree sign, masculine ordinal, literal o)
// to a single "°", so all three spellings produce the same key. Callers
// keep the first-seen original string for display; only the key is used
// for equality.
func GradeKey(s string) string {
	s = strings.ToLower(strings.Join(strings.Fields(s), " "))
	s = strings.ReplaceAll(s, "º", "°")
	return ordinalRe.ReplaceAllString(s, "$1°")
}

// ordinalRe matches a digit followed by an ordinal marker, with optional
// spacing that some workbooks insert ("5 º ano").
var ordinalRe = regexp.MustCompile(`(\d)\s*[o°]`)

// componentNames expands the spreadsheet abbreviations for curricular
// components to their full names.
var componentNames = map[string]string{
	"MAT":  "Matemática",
	"LP":   "Língua Portuguesa",
	"PORT": "Língua Portuguesa",
	"CIE":  "Ciências",
	"HIS":  "História",
	"GEO":  "Geografia",
	"ART":  "Arte",
	"ING":  "Inglês",
	"EDF":  "Educação Física",
	"ER":   "Ensino Religioso",
}

var segmentNames = map[string]string{
	"EI": "Educação Infantil",
	"AI": "Anos Iniciais",
	"AF": "Anos Finais",
	"EM": "Ensino Médio",
}

var brandNames = map[string]string{
	"SPE": "Sistema Positivo",
	"CP":  "Conquista Positivo",
	"APZ": "Aprimora",
}

// Component expands a curricular component abbreviation ("MAT") to its
// full name ("Matemática"). Already-expanded names pass through.
func Component(s string) string { return expand(s, componentNames) }

// Segment expands a segment abbreviation ("EI") to its full name.
func Segment(s string) string { return expand(s, segmentNames) }

// Brand expands a publisher/imprint abbreviation ("SPE") to its full name.
func Brand(s string) string { return expand(s, brandNames) }

// expand applies the abbreviation table. An input that contains a space
// and differs from its own upper-cased form is assumed to already be a
// full name and passes through unchanged; everything else is upper-cased
// and looked up, falling back to the original string when the table has
// no entry. The table is authoritative: ambiguous all-caps multi-word
// inputs that miss the table are returned as-is, never guessed at.
func expand(s string, table map[string]string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if strings.Contains(s, " ") && s != strings.ToUpper(s) {
		return s
	}
	if full, ok := table[strings.ToUpper(s)]; ok {
		return full
	}
	return s
}

// segmentOrder is the fixed pedagogical sequence for segment facet
// options. Segments outside this list sort alphabetically after it.
var segmentOrder = map[string]int{
	"Educação Infantil": 0,
	"Anos Iniciais":     1,
	"Anos Finais":       2,
	"Ensino Médio":      3,
}

// SegmentRank returns the position of a segment in the pedagogical
// sequence, and whether the segment is part of it.
func SegmentRank(segment string) (int, bool) {
	r, ok := segmentOrder[segment]
	return r, ok
}
