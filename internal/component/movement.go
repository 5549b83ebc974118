// component/movement.go
package component

// Position is the top-left corner of an entity's box, or the center for actors.
type Position struct {
	X, Y float64
}
