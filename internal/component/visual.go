// internal/component/visual.go
package component

// Feedback holds the transient screen effects. Each magnitude is set to 1 when
// triggered and decays to 0.
type Feedback struct {
	ScreenShake float64
	DamageFlash float64
	HealFlash   float64
}
