package domain

// Category identifies one of the three aggregate hour buckets.
type Category string

const (
	CategoryOffClient  Category = "off_client"
	CategoryClientWork Category = "client_work"
	CategoryTravel     Category = "travel"
)

// Categories lists the buckets in display order.
var Categories = []Category{CategoryOffClient, CategoryClientWork, CategoryTravel}

// Label returns the French display label used on every output surface.
func (c Category) Label() string {
	switch c {
	case CategoryOffClient:
		return "Hors clientèle"
	case CategoryClientWork:
		return "Travail clientèle"
	case CategoryTravel:
		return "Déplacement"
	default:
		return string(c)
	}
}

type DiagnosticKind string

const (
	DiagStructural   DiagnosticKind = "structural"
	DiagDateParse    DiagnosticKind = "date_parse"
	DiagNumericParse DiagnosticKind = "numeric_parse"
)

type InputSource string

const (
	SourceOffClient InputSource = "off_client"
	SourceOnClient  InputSource = "on_client"
)
