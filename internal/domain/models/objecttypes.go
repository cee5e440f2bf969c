// internal/domain/models/objecttypes.go
package models

// Canonical object type identifiers for LearningObject.Type.
//
// These values are stored in the database and used throughout the
// application as stable keys. Human-facing labels come from the source
// spreadsheets and the frontend.
const (
	ObjectTypeAnimation   = "animation"
	ObjectTypeGame        = "game"
	ObjectTypeInfographic = "infographic"
	ObjectTypeSimulation  = "simulation"
	ObjectTypeSlideshow   = "slideshow"
	ObjectTypeVideo       = "video"
	ObjectTypeObject      = "object" // generic catch-all; default
)

// DefaultObjectType is used when no specific type is provided.
const DefaultObjectType = ObjectTypeObject

// SAMR pedagogical classification levels, as they appear in the source
// spreadsheets.
const (
	SAMRSubstitution = "Substituição"
	SAMRAugmentation = "Ampliação"
	SAMRModification = "Modificação"
	SAMRRedefinition = "Redefinição"
)

// Record statuses.
const (
	StatusActive   = "active"
	StatusDisabled = "disabled"
)

// componentTagColors maps known curricular component names to the CSS
// color class persisted on imported records. Presentation metadata, but
// computed at import time so the gallery never derives it per render.
var componentTagColors = map[string]string{
	"Matemática":        "tag-blue",
	"Língua Portuguesa": "tag-red",
	"Ciências":          "tag-green",
	"História":          "tag-amber",
	"Geografia":         "tag-teal",
	"Arte":              "tag-purple",
	"Inglês":            "tag-indigo",
	"Educação Física":   "tag-orange",
	"Ensino Religioso":  "tag-brown",
}

// DefaultTagColor is used for components without a dedicated color.
const DefaultTagColor = "tag-neutral"

// TagColorFor returns the CSS color class for a curricular component.
func TagColorFor(component string) string {
	if c, ok := componentTagColors[component]; ok {
		return c
	}
	return DefaultTagColor
}
