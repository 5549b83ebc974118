package component

// Phase is the top-level state of a minigame session.
type Phase int

const (
	PhasePreGame Phase = iota
	PhaseCountdown
	PhasePlaying
	PhaseWaveComplete
	PhaseLevelComplete
	PhaseGameOver
	PhaseVictory
)

var phaseNames = [...]string{
	PhasePreGame:       "pre-game",
	PhaseCountdown:     "countdown",
	PhasePlaying:       "playing",
	PhaseWaveComplete:  "wave-complete",
	PhaseLevelComplete: "level-complete",
	PhaseGameOver:      "game-over",
	PhaseVictory:       "victory",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// ParsePhase is the inverse of String.
func ParsePhase(s string) (Phase, bool) {
	for i, name := range phaseNames {
		if name == s {
			return Phase(i), true
		}
	}
	return 0, false
}
