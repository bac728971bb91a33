package domain

// CategoryKind names one of the selectable-value lists used to populate
// performance form choices.
type CategoryKind string

const (
	CategoryVenues      CategoryKind = "venues"
	CategoryInstruments CategoryKind = "instruments"
	CategorySubParts    CategoryKind = "sub_parts"
)

// ParseCategoryKind validates a raw kind string.
func ParseCategoryKind(s string) (CategoryKind, bool) {
	switch CategoryKind(s) {
	case CategoryVenues, CategoryInstruments, CategorySubParts:
		return CategoryKind(s), true
	}
	return "", false
}
