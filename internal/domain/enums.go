package domain

type MaterialType string

const (
	MaterialBook  MaterialType = "book"
	MaterialVideo MaterialType = "video"
	// MaterialCustom exists in the type system but is never scheduled:
	// the plan generator only handles books and videos and skips
	// everything else.
	MaterialCustom MaterialType = "custom"
)

// ValidMaterialTypes is the canonical set of accepted material type strings.
var ValidMaterialTypes = map[string]bool{
	"book": true, "video": true, "custom": true,
}
