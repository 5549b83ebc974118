// internal/scene/director.go
package scene

import (
	"errors"
	"fmt"
	"log"
)

// ErrUnknownScene is returned by Jump for an id that is not in the script.
var ErrUnknownScene = errors.New("unknown scene")

// Director walks a fixed script of scenes.
type Director struct {
	scenes []Scene
	index  int
	line   int
	active Minigame
}

func NewDirector(scenes []Scene) *Director {
	d := &Director{scenes: scenes}
	d.enter(0)
	return d
}

// Current returns the current scene, or nil once the script is finished.
func (d *Director) Current() Scene {
	if d.Finished() {
		return nil
	}
	return d.scenes[d.index]
}

// Index returns the position of the current scene in the script.
func (d *Director) Index() int {
	return d.index
}

// Line returns the dialogue line being shown. ok is false outside dialogue scenes.
func (d *Director) Line() (line Line, ok bool) {
	dlg, isDialogue := d.Current().(Dialogue)
	if !isDialogue || d.line >= len(dlg.Lines) {
		return Line{}, false
	}
	return dlg.Lines[d.line], true
}

// LineIndex returns the position of the current dialogue line.
func (d *Director) LineIndex() int {
	return d.line
}

// Minigame returns the running minigame, or nil outside minigame scenes.
func (d *Director) Minigame() Minigame {
	return d.active
}

// Advance responds to the players pressing "next". Dialogue moves one line,
// leaving the scene after its last line; transitions are left at once.
// Minigame scenes ignore it and end only through Update.
func (d *Director) Advance() {
	switch s := d.Current().(type) {
	case Dialogue:
		if d.line+1 < len(s.Lines) {
			d.line++
			return
		}
		d.enter(d.index + 1)
	case Transition:
		d.enter(d.index + 1)
	}
}

// Update drives the running minigame and moves on once it is completed.
func (d *Director) Update() {
	if d.active == nil {
		return
	}
	d.active.Update()
	if d.active.Completed() {
		log.Printf("Minigame %s completed", d.Current().ID())
		d.enter(d.index + 1)
	}
}

// Finished reports whether every scene has been played.
func (d *Director) Finished() bool {
	return d.index >= len(d.scenes)
}

// Jump moves straight to the scene with the given id.
func (d *Director) Jump(id string) error {
	for i, s := range d.scenes {
		if s.ID() == id {
			d.enter(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownScene, id)
}

func (d *Director) enter(i int) {
	d.index = i
	d.line = 0
	d.active = nil
	if d.Finished() {
		return
	}
	if m, ok := d.scenes[i].(MinigameScene); ok && m.New != nil {
		d.active = m.New()
	}
}
