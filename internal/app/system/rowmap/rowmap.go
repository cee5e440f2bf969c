// internal/app/system/rowmap/rowmap.go
package rowmap

import (
	"errors"
	"regexp"
	"strings"
)

// Row is a single source row: column name -> raw cell value, already
// stringified by the source reader. No fixed schema is assumed; column
// names vary per vendor spreadsheet, so fields are resolved through
// explicit per-field variant lists.
type Row map[string]string

// Mapping errors. Rows that fail identity resolution are skipped by the
// import pipeline, not stored.
var (
	ErrNoTitle    = errors.New("row has no resolvable title")
	ErrNoIdentity = errors.New("row has neither code nor chapter name")
)

// Find returns the first non-empty, non-whitespace value among the given
// column-name variants, tried in preference order. Variants are exact,
// case-and-accent-sensitive strings; this is an ordered lookup, not fuzzy
// matching, so variant lists must be maintained explicitly per field.
//
// Returns "" (never a sentinel) when no variant resolves, so downstream
// mapping can coalesce safely.
func (r Row) Find(variants ...string) string {
	for _, v := range variants {
		if raw, ok := r[v]; ok {
			if s := strings.TrimSpace(raw); s != "" {
				return s
			}
		}
	}
	return ""
}

// CurriculumCode resolves the BNCC code column. The column name varies in
// case only, so exact matches against the known spellings win; when none
// is present the lookup falls back to any column whose trimmed name
// case-insensitively contains "bncc". Exact matches are unambiguous and
// take precedence; the containment fallback absorbs the arbitrary
// capitalization real-world workbooks arrive with.
func (r Row) CurriculumCode() string {
	if v := r.Find("BNCC", "Bncc", "bncc"); v != "" {
		return v
	}
	for name, raw := range r {
		if strings.Contains(strings.ToLower(strings.TrimSpace(name)), "bncc") {
			if s := strings.TrimSpace(raw); s != "" {
				return s
			}
		}
	}
	return ""
}

// ThumbDir is the fixed thumbnail directory convention.
const ThumbDir = "/thumbs/"

var imageExtRe = regexp.MustCompile(`(?i)\.(webp|jpe?g|png)$`)

// ThumbPath derives the thumbnail path for a natural code: any trailing
// image extension is stripped and ".webp" appended under ThumbDir.
// Returns "" for an empty code; the caller falls back to the default
// stock image.
func ThumbPath(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return ""
	}
	return ThumbDir + imageExtRe.ReplaceAllString(code, "") + ".webp"
}
