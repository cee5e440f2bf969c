// internal/app/system/sqlitesrc/sqlitesrc.go
package sqlitesrc

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// ErrSourceNotFound is returned when no database file exists at any
// candidate path. Callers surface it as a structured failure result, not
// a panic.
var ErrSourceNotFound = errors.New("legacy database not found")

// SkillRow is one BNCC record read from the legacy database, with
// columns already resolved to semantic fields.
type SkillRow struct {
	Code        string
	Skill       string
	Description string
	Component   string
	Grade       string
}

// Per-field column synonyms. Unlike the spreadsheet mapper's exact
// variant lists, legacy column names are discovered by substring match:
// the first column whose lower-cased name contains any synonym wins.
var skillColumnSynonyms = map[string][]string{
	"code":        {"codigo", "code"},
	"skill":       {"habilidade", "skill"},
	"description": {"descricao", "description"},
	"component":   {"componente", "component"},
	"grade":       {"ano", "year", "serie"},
}

// Locate returns the first candidate path that exists on disk.
func Locate(candidates ...string) (string, error) {
	for _, p := range candidates {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrSourceNotFound, strings.Join(candidates, ", "))
}

// LoadSkills opens the legacy database, discovers the skills table and
// its columns, and reads every row. Rows are returned raw; the importer
// decides skip semantics.
func LoadSkills(path string) ([]SkillRow, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	defer db.Close()

	table, err := findSkillsTable(db)
	if err != nil {
		return nil, err
	}

	cols, err := resolveColumns(db, table)
	if err != nil {
		return nil, err
	}

	return readRows(db, table, cols)
}

// findSkillsTable prefers a table whose name mentions bncc or habilidade;
// a single-table database falls back to that table.
func findSkillsTable(db *sql.DB) (string, error) {
	rows, err := db.Query(`SELECT name FROM sqlite_master WHERE type='table' AND name NOT LIKE 'sqlite_%'`)
	if err != nil {
		return "", fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return "", fmt.Errorf("scan table name: %w", err)
		}
		names = append(names, n)
	}
	if err := rows.Err(); err != nil {
		return "", err
	}

	for _, n := range names {
		ln := strings.ToLower(n)
		if strings.Contains(ln, "bncc") || strings.Contains(ln, "habilidade") {
			return n, nil
		}
	}
	if len(names) == 1 {
		return names[0], nil
	}
	return "", fmt.Errorf("no skills table found among %v", names)
}

// resolveColumns maps semantic field -> actual column name via the
// synonym sets. Missing non-key fields are tolerated; a database without
// a resolvable code column is unusable.
func resolveColumns(db *sql.DB, table string) (map[string]string, error) {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%q)", table))
	if err != nil {
		return nil, fmt.Errorf("table info: %w", err)
	}
	defer rows.Close()

	var columns []string
	for rows.Next() {
		var (
			cid     int
			name    string
			ctype   sql.NullString
			notnull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dflt, &pk); err != nil {
			return nil, fmt.Errorf("scan column info: %w", err)
		}
		columns = append(columns, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	resolved := make(map[string]string, len(skillColumnSynonyms))
	for field, synonyms := range skillColumnSynonyms {
		for _, col := range columns {
			lc := strings.ToLower(strings.TrimSpace(col))
			for _, syn := range synonyms {
				if strings.Contains(lc, syn) {
					resolved[field] = col
					break
				}
			}
			if _, ok := resolved[field]; ok {
				break
			}
		}
	}

	if _, ok := resolved["code"]; !ok {
		return nil, fmt.Errorf("table %s has no code column (columns: %v)", table, columns)
	}
	return resolved, nil
}

func readRows(db *sql.DB, table string, cols map[string]string) ([]SkillRow, error) {
	fields := []string{"code", "skill", "description", "component", "grade"}

	var selected []string
	var present []string
	for _, f := range fields {
		if col, ok := cols[f]; ok {
			selected = append(selected, fmt.Sprintf("%q", col))
			present = append(present, f)
		}
	}

	rows, err := db.Query(fmt.Sprintf("SELECT %s FROM %q", strings.Join(selected, ", "), table))
	if err != nil {
		return nil, fmt.Errorf("select skills: %w", err)
	}
	defer rows.Close()

	var out []SkillRow
	for rows.Next() {
		vals := make([]sql.NullString, len(present))
		ptrs := make([]any, len(present))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan skill row: %w", err)
		}

		var sr SkillRow
		for i, f := range present {
			v := strings.TrimSpace(vals[i].String)
			switch f {
			case "code":
				sr.Code = v
			case "skill":
				sr.Skill = v
			case "description":
				sr.Description = v
			case "component":
				sr.Component = v
			case "grade":
				sr.Grade = v
			}
		}
		out = append(out, sr)
	}
	return out, rows.Err()
}
