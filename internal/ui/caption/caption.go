// Package caption composes the text the shells show for a game state. It has
// no drawing code so the terminal and window shells can share it.
package caption

import (
	"fmt"
	"strconv"
	"strings"

	"go-party-arcade/internal/app"
	"go-party-arcade/internal/component"
	"go-party-arcade/internal/config"
)

// Prompt keys shown on the overlays. The shells map them to controls.
const (
	StartPrompt    = "Press SPACE to start"
	ContinuePrompt = "Press SPACE to continue"
	RetryPrompt    = "Press ENTER to retry"
)

// Roman converts a positive integer to roman numerals.
func Roman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// WaveLabel formats a level and wave pair, e.g. "II · III".
func WaveLabel(level, wave int) string {
	if level <= 0 || wave <= 0 {
		return ""
	}
	return Roman(level) + " · " + Roman(wave)
}

// Overlay is what a phase overlay shows: a headline and body lines.
type Overlay struct {
	Title string
	Big   string // large centered text, e.g. the countdown digit
	Lines []string
}

// For returns the overlay for st, or false when the field should be shown
// unobstructed.
func For(st app.State) (Overlay, bool) {
	switch st.Phase {
	case component.PhasePreGame:
		return Overlay{
			Title: "Shooting Gallery",
			Lines: []string{
				"Shooters: Q/W + R, V/B + H, K/L + J",
				"Catchers: arrows, A/D",
				StartPrompt,
			},
		}, true
	case component.PhaseCountdown:
		return Overlay{
			Title: "Level " + Roman(st.Level),
			Big:   strconv.Itoa(st.CountdownSeconds()),
		}, true
	case component.PhaseWaveComplete:
		return Overlay{
			Title: "Wave " + Roman(st.Wave) + " cleared",
			Lines: []string{fmt.Sprintf("Next wave in %d", st.CountdownSeconds())},
		}, true
	case component.PhaseLevelComplete:
		lines := append(StatsLines(st.Stats), "", ContinuePrompt)
		return Overlay{Title: "Level " + Roman(st.Level) + " complete", Lines: lines}, true
	case component.PhaseGameOver:
		lines := append(StatsLines(st.Stats), "", RetryPrompt)
		return Overlay{Title: "Game over", Lines: lines}, true
	case component.PhaseVictory:
		lines := append(StatsLines(st.Stats), "", ContinuePrompt)
		return Overlay{Title: "Victory!", Lines: lines}, true
	}
	return Overlay{}, false
}

// StatsLines formats per-actor statistics for the end-of-level screens.
func StatsLines(s component.Stats) []string {
	lines := make([]string, 0, len(s.Shooters)+len(s.CatcherBodies)+3)
	for i, sh := range s.Shooters {
		lines = append(lines, fmt.Sprintf("%s: %d kills, %d/%d hits (%.0f%%)",
			config.ShooterNames[i], sh.Kills, sh.ShotsHit, sh.ShotsFired, sh.Accuracy()*100))
	}
	for i, n := range s.CatcherBodies {
		lines = append(lines, fmt.Sprintf("%s: %d caught", config.CatcherNames[i], n))
	}
	return append(lines, fmt.Sprintf("Total caught: %d", s.TotalBodiesCaught))
}

// StatusLine is the one-line summary used in the top bar.
func StatusLine(st app.State) string {
	parts := []string{
		fmt.Sprintf("HP %d/%d", st.Health, st.MaxHealth),
		WaveLabel(st.Level, st.Wave),
		fmt.Sprintf("heal %d/%d", st.HealProgress, config.BodiesPerHeal),
	}
	if st.Phase == component.PhasePlaying {
		parts = append(parts, fmt.Sprintf("%02ds", int(st.WaveTimer.Seconds()+0.999)),
			fmt.Sprintf("left %d", st.PendingSpawns+len(st.Targets)))
	}
	return strings.Join(parts, "  ")
}
