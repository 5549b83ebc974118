// internal/state/scene_state.go
package state

import (
	"image/color"
	"time"

	"go-party-arcade/internal/app"
	"go-party-arcade/internal/config"
	"go-party-arcade/internal/scene"
	"go-party-arcade/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const charsPerSecond = 45.0

var (
	backgrounds = map[string]color.RGBA{
		"hangar": {30, 34, 48, 255},
	}
	dialogueBoxColor = color.RGBA{0, 0, 0, 200}
	speakerColor     = config.AmmoBarColor
)

// Typewriter reveals a line of text a few characters per second.
type Typewriter struct {
	elapsed float64
	total   int
}

// Reset starts revealing a line of n characters.
func (t *Typewriter) Reset(n int) {
	t.elapsed = 0
	t.total = n
}

// Update advances the reveal by dt seconds.
func (t *Typewriter) Update(dt float64) {
	t.elapsed += dt
}

// Visible returns how many characters are shown.
func (t *Typewriter) Visible() int {
	n := int(t.elapsed * charsPerSecond)
	if n > t.total {
		return t.total
	}
	return n
}

// Done reports whether the whole line is shown.
func (t *Typewriter) Done() bool {
	return t.Visible() >= t.total
}

// Finish reveals the whole line.
func (t *Typewriter) Finish() {
	t.elapsed = float64(t.total) / charsPerSecond
}

// SceneState plays the director's scenes, handing the screen to the arcade
// view during minigames.
type SceneState struct {
	sm       *StateMachine
	shell    *Shell
	director *scene.Director

	typer   Typewriter
	shownAt [2]int // scene index and line the typewriter was reset for
	game    *app.Game
}

func NewSceneState(sm *StateMachine, shell *Shell, director *scene.Director) *SceneState {
	return &SceneState{sm: sm, shell: shell, director: director, shownAt: [2]int{-1, -1}}
}

func (s *SceneState) Enter() {}

func advancePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
}

func (s *SceneState) Update(deltaTime float64) {
	if s.director.Finished() {
		if advancePressed() {
			s.sm.SetState(NewMenuState(s.sm, s.shell))
		}
		return
	}

	switch s.director.Current().(type) {
	case scene.Transition:
		if advancePressed() {
			s.director.Advance()
		}
	case scene.Dialogue:
		line, _ := s.director.Line()
		if at := [2]int{s.director.Index(), s.director.LineIndex()}; at != s.shownAt {
			s.shownAt = at
			s.typer.Reset(len([]rune(line.Text)))
		}
		s.typer.Update(deltaTime)
		if advancePressed() {
			if s.typer.Done() {
				s.director.Advance()
			} else {
				s.typer.Finish()
			}
		}
	case scene.MinigameScene:
		s.updateMinigame(deltaTime)
	}
}

func (s *SceneState) updateMinigame(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.SetState(NewPauseState(s.sm, s, s.shell))
		return
	}

	g, _ := s.director.Minigame().(*app.Game)
	if g != s.game {
		s.game = g
		s.shell.HUD.Popups.Clear()
	}
	s.shell.Keyboard.Poll()
	if g != nil {
		confirm := inpututil.IsKeyJustPressed(ebiten.KeySpace)
		retry := inpututil.IsKeyJustPressed(ebiten.KeyEnter)
		g.Apply(app.ControlFor(g.Phase(), confirm, retry))
	}

	s.director.Update()
	s.shell.HUD.Update(time.Duration(deltaTime * float64(time.Second)))

	if s.director.Minigame() == nil {
		s.shell.Keyboard.ReleaseAll()
	}
}

func (s *SceneState) Draw(screen *ebiten.Image) {
	fonts := s.shell.Fonts
	cx := config.ScreenWidth / 2

	if s.director.Finished() {
		screen.Fill(config.BackgroundColor)
		ui.DrawCentered(screen, "Thanks for playing", fonts.Title, cx, config.ScreenHeight/3, config.TextLightColor)
		ui.DrawCentered(screen, "Press SPACE", fonts.Regular, cx, config.ScreenHeight*2/3, config.TextLightColor)
		return
	}

	switch sc := s.director.Current().(type) {
	case scene.Transition:
		screen.Fill(color.Black)
		ui.DrawCentered(screen, sc.Title, fonts.Title, cx, config.ScreenHeight/3, config.TextLightColor)
		ui.DrawCentered(screen, sc.Subtitle, fonts.Regular, cx, config.ScreenHeight/3+80, config.TextLightColor)
	case scene.Dialogue:
		s.drawDialogue(screen, sc)
	case scene.MinigameScene:
		if s.game == nil {
			screen.Fill(config.BackgroundColor)
			return
		}
		st := s.game.Snapshot()
		s.shell.Renderer.Draw(screen, st)
		s.shell.HUD.Draw(screen, st, time.Now())
	}
}

func (s *SceneState) drawDialogue(screen *ebiten.Image, d scene.Dialogue) {
	bg, ok := backgrounds[d.Background]
	if !ok {
		bg = config.BackgroundColor
	}
	screen.Fill(bg)
	fonts := s.shell.Fonts
	ui.DrawCentered(screen, d.Title, fonts.Title, config.ScreenWidth/2, 80, config.TextLightColor)

	line, ok := s.director.Line()
	if !ok {
		return
	}
	const boxX, boxY, boxW, boxH = 160, config.ScreenHeight - 320, config.ScreenWidth - 320, 220
	vector.DrawFilledRect(screen, boxX, boxY, boxW, boxH, dialogueBoxColor, false)
	vector.StrokeRect(screen, boxX, boxY, boxW, boxH, 2, config.TextLightColor, false)

	text := []rune(line.Text)
	n := s.typer.Visible()
	if n > len(text) {
		n = len(text)
	}
	ui.DrawCentered(screen, line.Speaker, fonts.Title, config.ScreenWidth/2, boxY+24, speakerColor)
	ui.DrawCentered(screen, string(text[:n]), fonts.Regular, config.ScreenWidth/2, boxY+110, config.TextLightColor)
}

func (s *SceneState) Exit() {}
