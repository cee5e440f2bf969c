// internal/app/system/facets/facets.go
package facets

import (
	"strings"

	"github.com/acervodigital/oedhub/internal/app/system/normalize"
	"github.com/acervodigital/oedhub/internal/domain/models"
)

// ContentType is the coarse partition applied before any facet logic:
// it decides which facets are even relevant (video category is
// meaningless for learning objects).
type ContentType string

const (
	TypeAll         ContentType = "all"
	TypeLearning    ContentType = "oed"
	TypeAudiovisual ContentType = "audiovisual"
)

// Facet names, as exposed to the API and used as Selection keys.
const (
	FacetGrade          = "grade"
	FacetComponent      = "component"
	FacetCurriculumCode = "curriculumCode"
	FacetSegment        = "segment"
	FacetCategory       = "category"
	FacetBrand          = "brand"
	FacetObjectType     = "objectType"
	FacetVideoCategory  = "videoCategory"
	FacetSAMRLevel      = "samrLevel"
	FacetVolume         = "volume"
	FacetExamBoard      = "examBoard"
	FacetChapter        = "chapter"
)

// Selection holds the active per-facet selections. An absent or empty
// set imposes no constraint on that facet.
type Selection map[string][]string

// Entry is the engine's unified view over both record types. It is built
// once per gallery computation from the bulk-fetched records.
type Entry struct {
	Type ContentType

	Title          string
	Component      string
	Grade          string
	CurriculumCode string
	Category       string
	Volume         string
	Segment        string
	Brand          string
	ObjectType     string
	VideoCategory  string
	SAMRLevel      string
	ExamBoard      string
	Chapter        string
	ChapterName    string
	StatementText  string
	Tags           []string

	Object *models.LearningObject  `json:"learningObject,omitempty"`
	Item   *models.AudiovisualItem `json:"audiovisualItem,omitempty"`
}

// FromLearningObject adapts a LearningObject for the engine.
func FromLearningObject(o models.LearningObject) Entry {
	obj := o
	return Entry{
		Type:           TypeLearning,
		Title:          o.Title,
		Component:      o.Component,
		Grade:          o.GradeLevel,
		CurriculumCode: o.CurriculumCode,
		Category:       o.ObjectType,
		Volume:         o.Volume,
		Segment:        o.Segment,
		Brand:          o.Brand,
		ObjectType:     o.ObjectType,
		SAMRLevel:      o.SAMRLevel,
		Tags:           o.ComponentTags,
		Object:         &obj,
	}
}

// FromAudiovisual adapts an AudiovisualItem for the engine.
func FromAudiovisual(a models.AudiovisualItem) Entry {
	item := a
	return Entry{
		Type:          TypeAudiovisual,
		Title:         a.ChapterName,
		Component:     a.Component,
		Grade:         a.GradeModule,
		Category:      a.VideoCategory,
		Volume:        a.Volume,
		Segment:       a.Segment,
		Brand:         a.Brand,
		VideoCategory: a.VideoCategory,
		ExamBoard:     a.ExamBoard,
		Chapter:       a.ChapterNumber,
		ChapterName:   a.ChapterName,
		StatementText: a.StatementText,
		Item:          &item,
	}
}

// facetValue returns an entry's raw value for a facet, and facetKey the
// canonical form used for equality. Facet matching compares canonical
// keys on both sides so that "MAT" and "Matemática", or "5o ano" and
// "5º Ano", select the same records.
func facetValue(e *Entry, facet string) string {
	switch facet {
	case FacetGrade:
		return e.Grade
	case FacetComponent:
		return e.Component
	case FacetCurriculumCode:
		return e.CurriculumCode
	case FacetSegment:
		return e.Segment
	case FacetCategory:
		return e.Category
	case FacetBrand:
		return e.Brand
	case FacetObjectType:
		return e.ObjectType
	case FacetVideoCategory:
		return e.VideoCategory
	case FacetSAMRLevel:
		return e.SAMRLevel
	case FacetVolume:
		return e.Volume
	case FacetExamBoard:
		return e.ExamBoard
	case FacetChapter:
		return e.Chapter
	}
	return ""
}

func facetKey(facet, value string) string {
	switch facet {
	case FacetGrade:
		return normalize.GradeKey(value)
	case FacetComponent:
		return normalize.Component(value)
	case FacetSegment:
		return normalize.Segment(value)
	case FacetBrand:
		return normalize.Brand(value)
	default:
		return strings.TrimSpace(value)
	}
}

// matchesType applies the coarse content-type partition.
func matchesType(e *Entry, ct ContentType) bool {
	return ct == "" || ct == TypeAll || e.Type == ct
}

// matchesQuery is the free-text predicate: case-insensitive substring
// match across the fixed textual field list; a record matches when ANY
// field contains the query. Missing fields never match and never fail.
func matchesQuery(e *Entry, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	fields := []string{
		e.Title, e.Component, e.Grade, e.CurriculumCode, e.Category,
		e.Volume, e.Segment, e.ExamBoard, e.Chapter, e.StatementText,
		e.ChapterName,
	}
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	for _, tag := range e.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// matchesFacets is the conjunctive filter: a record passes only if, for
// every facet with a non-empty selection, the record's canonical value
// is a member of the selection. Pure AND-of-ORs; no ranking, no fuzz.
func matchesFacets(e *Entry, sel Selection) bool {
	for facet, values := range sel {
		if len(values) == 0 {
			continue
		}
		key := facetKey(facet, facetValue(e, facet))
		if key == "" {
			return false
		}
		found := false
		for _, v := range values {
			if facetKey(facet, v) == key {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Filter computes the result set: coarse content-type partition first,
// then free-text conjoined with AND-across-facets. Pure and synchronous;
// it cannot fail.
func Filter(entries []Entry, ct ContentType, query string, sel Selection) []Entry {
	out := make([]Entry, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		if !matchesType(e, ct) {
			continue
		}
		if !matchesQuery(e, query) {
			continue
		}
		if !matchesFacets(e, sel) {
			continue
		}
		out = append(out, *e)
	}
	return out
}
