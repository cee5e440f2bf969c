// internal/app/system/rowmap/learningobject.go
package rowmap

import (
	"github.com/acervodigital/oedhub/internal/app/system/normalize"
	"github.com/acervodigital/oedhub/internal/domain/models"
)

// Column-name variants per semantic field, in preference order. Vendor
// spreadsheets disagree on accents and phrasing, so every observed
// spelling is listed explicitly.
var (
	titleColumns     = []string{"Título recurso", "Titulo recurso", "Título", "Titulo", "Nome"}
	componentColumns = []string{"Componente Curricular", "Componente curricular", "Componente", "Disciplina"}
	gradeColumns     = []string{"Ano/Série", "Ano/Serie", "Ano", "Série", "Serie"}
	volumeColumns    = []string{"Volume", "Vol", "Vol."}
	segmentColumns   = []string{"Segmento", "Etapa"}
	brandColumns     = []string{"Marca", "Selo", "Editora"}
	typeColumns      = []string{"Tipo de objeto", "Tipo do objeto", "Tipo recurso", "Tipo"}
	samrColumns      = []string{"Nível SAMR", "Nivel SAMR", "SAMR"}
	statusColumns    = []string{"Status", "Situação", "Situacao"}
	extCodeColumns   = []string{"Código recurso", "Codigo recurso", "Código", "Codigo", "Cód", "Cod"}
	resourceColumns  = []string{"Link recurso", "Link", "URL", "Endereço", "Endereco"}
)

// Mapper converts source rows into normalized domain records. One Mapper
// serves a whole import run: the CurriculumSkill code set is loaded once
// at run start and consulted per row.
type Mapper struct {
	// DefaultImageURL is the stock image used when a row carries no code
	// to derive a thumbnail path from.
	DefaultImageURL string

	// SkillCodes is the full set of stored CurriculumSkill codes. A
	// resolved BNCC code missing from this set is discarded (nulled),
	// never a row failure, so one bad code cannot block ingestion.
	SkillCodes map[string]struct{}
}

// LearningObject maps a spreadsheet row to a LearningObject. A row whose
// title cannot be resolved returns ErrNoTitle and must be skipped.
func (m *Mapper) LearningObject(row Row) (models.LearningObject, error) {
	title := row.Find(titleColumns...)
	if title == "" {
		return models.LearningObject{}, ErrNoTitle
	}

	component := normalize.Component(row.Find(componentColumns...))

	o := models.LearningObject{
		ExternalCode: row.Find(extCodeColumns...),
		Title:        title,
		Component:    component,
		TagColor:     models.TagColorFor(component),
		GradeLevel:   row.Find(gradeColumns...),
		Volume:       row.Find(volumeColumns...),
		Segment:      normalize.Segment(row.Find(segmentColumns...)),
		Brand:        normalize.Brand(row.Find(brandColumns...)),
		ObjectType:   row.Find(typeColumns...),
		SAMRLevel:    row.Find(samrColumns...),
		Status:       row.Find(statusColumns...),
		ResourceURL:  row.Find(resourceColumns...),
	}

	// ComponentTags is constrained to a single-element mirror of the
	// curricular component.
	if component != "" {
		o.ComponentTags = []string{component}
	}

	if code := row.CurriculumCode(); code != "" {
		if _, ok := m.SkillCodes[code]; ok {
			o.CurriculumCode = code
		}
	}

	if p := ThumbPath(o.ExternalCode); p != "" {
		o.ImageURL = p
	} else {
		o.ImageURL = m.DefaultImageURL
	}

	return o, nil
}
