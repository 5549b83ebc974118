// internal/scene/scene.go
package scene

// Kind tells the scene variants apart.
type Kind int

const (
	KindTransition Kind = iota
	KindDialogue
	KindMinigame
)

func (k Kind) String() string {
	switch k {
	case KindTransition:
		return "transition"
	case KindDialogue:
		return "dialogue"
	case KindMinigame:
		return "minigame"
	}
	return "unknown"
}

// Scene is one step of the presentation. The concrete types are Transition,
// Dialogue and MinigameScene.
type Scene interface {
	ID() string
	Kind() Kind
}

// Minigame is what a minigame scene runs. Update is called once per frame
// while the scene is current.
type Minigame interface {
	Start()
	Update()
	Completed() bool
}

// Transition is a title card between scenes.
type Transition struct {
	SceneID  string
	Title    string
	Subtitle string
}

func (t Transition) ID() string { return t.SceneID }
func (Transition) Kind() Kind   { return KindTransition }

// Line is one line of dialogue.
type Line struct {
	Speaker string
	Text    string
}

// Dialogue is a linear run of lines advanced by the players.
type Dialogue struct {
	SceneID    string
	Title      string
	Background string
	Lines      []Line
}

func (d Dialogue) ID() string { return d.SceneID }
func (Dialogue) Kind() Kind   { return KindDialogue }

// MinigameScene hands control to a minigame until it reports completion.
// New is called each time the scene is entered.
type MinigameScene struct {
	SceneID string
	Title   string
	New     func() Minigame
}

func (m MinigameScene) ID() string { return m.SceneID }
func (MinigameScene) Kind() Kind   { return KindMinigame }
