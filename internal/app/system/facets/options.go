// internal/app/system/facets/options.go
package facets

import (
	"sort"
	"strconv"
	"strings"

	"github.com/acervodigital/oedhub/internal/app/system/normalize"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// allFacets in display order.
var allFacets = []string{
	FacetGrade, FacetComponent, FacetCurriculumCode, FacetSegment,
	FacetCategory, FacetBrand, FacetObjectType, FacetVideoCategory,
	FacetSAMRLevel, FacetVolume, FacetExamBoard, FacetChapter,
}

// ptCollator orders accented Portuguese strings the way a pt-BR reader
// expects ("Álgebra" next to "Algoritmos", not after "Zoologia").
var ptCollator = collate.New(language.BrazilianPortuguese)

// Options computes the facet options worth displaying: the distinct
// canonicalized values present across the content-type-partitioned set.
//
// Options deliberately ignore the active facet selections: narrowing one
// facet must not hide another facet's values, or users deadlock with no
// way to broaden a search. They are recomputed on content-type change
// only.
//
// De-duplication runs on canonical keys (grade keys, expanded names) so
// visually distinct spellings of the same concept collapse to a single
// option; the first-seen display string is kept for rendering.
func Options(entries []Entry, ct ContentType) map[string][]string {
	type seen struct {
		display []string
		keys    map[string]struct{}
	}

	acc := make(map[string]*seen, len(allFacets))
	for _, f := range allFacets {
		acc[f] = &seen{keys: make(map[string]struct{})}
	}

	for i := range entries {
		e := &entries[i]
		if !matchesType(e, ct) {
			continue
		}
		for _, f := range allFacets {
			raw := facetValue(e, f)
			if strings.TrimSpace(raw) == "" {
				continue
			}
			key := facetKey(f, raw)
			if _, dup := acc[f].keys[key]; dup {
				continue
			}
			acc[f].keys[key] = struct{}{}

			display := raw
			switch f {
			case FacetComponent:
				display = normalize.Component(raw)
			case FacetSegment:
				display = normalize.Segment(raw)
			case FacetBrand:
				display = normalize.Brand(raw)
			}
			acc[f].display = append(acc[f].display, display)
		}
	}

	out := make(map[string][]string, len(allFacets))
	for _, f := range allFacets {
		opts := acc[f].display
		switch f {
		case FacetGrade:
			sortGrades(opts)
		case FacetSegment:
			sortSegments(opts)
		default:
			sort.SliceStable(opts, func(i, j int) bool {
				return ptCollator.CompareString(opts[i], opts[j]) < 0
			})
		}
		out[f] = opts
	}
	return out
}

// sortGrades orders numerically by leading integer when one parses,
// falling back to locale-aware lexicographic order. "1º ano" before
// "2º ano" before "10º ano", with non-numeric grades after.
func sortGrades(opts []string) {
	sort.SliceStable(opts, func(i, j int) bool {
		ni, iok := leadingInt(opts[i])
		nj, jok := leadingInt(opts[j])
		switch {
		case iok && jok:
			if ni != nj {
				return ni < nj
			}
			return ptCollator.CompareString(opts[i], opts[j]) < 0
		case iok:
			return true
		case jok:
			return false
		default:
			return ptCollator.CompareString(opts[i], opts[j]) < 0
		}
	})
}

func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	return n, err == nil
}

// sortSegments applies the fixed pedagogical sequence; segments outside
// it sort alphabetically after the known ones.
func sortSegments(opts []string) {
	sort.SliceStable(opts, func(i, j int) bool {
		ri, iok := normalize.SegmentRank(opts[i])
		rj, jok := normalize.SegmentRank(opts[j])
		switch {
		case iok && jok:
			return ri < rj
		case iok:
			return true
		case jok:
			return false
		default:
			return ptCollator.CompareString(opts[i], opts[j]) < 0
		}
	})
}
