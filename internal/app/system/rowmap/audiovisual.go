// internal/app/system/rowmap/audiovisual.go
package rowmap

import (
	"strings"

	"github.com/acervodigital/oedhub/internal/app/system/normalize"
	"github.com/acervodigital/oedhub/internal/domain/models"
	"github.com/microcosm-cc/bluemonday"
)

var (
	avCodeColumns        = []string{"Código", "Codigo", "Cód", "Cod"}
	avGradeModuleColumns = []string{"Ano/Módulo", "Ano/Modulo", "Módulo", "Modulo", "Ano"}
	avChapterNumColumns  = []string{"Número do capítulo", "Numero do capitulo", "Nº capítulo", "Capítulo Nº", "Cap"}
	avChapterNameColumns = []string{"Nome do capítulo", "Nome do capitulo", "Capítulo", "Capitulo"}
	avCategoryColumns    = []string{"Categoria do vídeo", "Categoria do video", "Categoria"}
	avExamBoardColumns   = []string{"Vestibular", "Banca"}
	avStatementColumns   = []string{"Enunciado", "Texto do enunciado", "Descrição", "Descricao"}
	avLinkColumns        = []string{"Link do vídeo", "Link do video", "Link", "URL"}
)

// statementPolicy strips markup from statement text. Exam statements come
// out of the workbooks with stray inline HTML.
var statementPolicy = bluemonday.StrictPolicy()

// Audiovisual maps a spreadsheet row to an AudiovisualItem. A row lacking
// both code and chapter name has no stable identity and returns
// ErrNoIdentity.
func (m *Mapper) Audiovisual(row Row) (models.AudiovisualItem, error) {
	code := row.Find(avCodeColumns...)
	chapterName := row.Find(avChapterNameColumns...)
	if code == "" && chapterName == "" {
		return models.AudiovisualItem{}, ErrNoIdentity
	}

	a := models.AudiovisualItem{
		Code:          code,
		Brand:         normalize.Brand(row.Find(brandColumns...)),
		Segment:       normalize.Segment(row.Find(segmentColumns...)),
		GradeModule:   row.Find(avGradeModuleColumns...),
		Volume:        row.Find(volumeColumns...),
		Component:     normalize.Component(row.Find(componentColumns...)),
		ChapterNumber: row.Find(avChapterNumColumns...),
		ChapterName:   chapterName,
		VideoCategory: row.Find(avCategoryColumns...),
		ExamBoard:     row.Find(avExamBoardColumns...),
		StatementText: strings.TrimSpace(statementPolicy.Sanitize(row.Find(avStatementColumns...))),
		Link:          row.Find(avLinkColumns...),
	}

	if p := ThumbPath(code); p != "" {
		a.ImageURL = p
	} else {
		a.ImageURL = m.DefaultImageURL
	}

	return a, nil
}
