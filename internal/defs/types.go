// internal/defs/types.go
package defs

// Category is the color class of a target. It only affects presentation
// and the order targets are dealt out in.
type Category string

const (
	CategoryRed    Category = "red"
	CategoryBlue   Category = "blue"
	CategoryGreen  Category = "green"
	CategoryYellow Category = "yellow"
	CategoryPurple Category = "purple"
)

// Palette is the round-robin order used when assigning categories to spawns.
var Palette = []Category{
	CategoryRed,
	CategoryBlue,
	CategoryGreen,
	CategoryYellow,
	CategoryPurple,
}
