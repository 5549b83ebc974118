package main

import (
	"image/color"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"go-party-arcade/internal/app"
	"go-party-arcade/internal/config"
	"go-party-arcade/internal/defs"
	"go-party-arcade/internal/ui/caption"
)

var (
	baseStyle    = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	barStyle     = baseStyle.Reverse(true)
	breachStyle  = baseStyle.Foreground(tcell.ColorRed)
	shotStyle    = baseStyle.Foreground(tcell.ColorYellow)
	bucketStyle  = baseStyle.Foreground(tcell.ColorOlive)
	shooterStyle = baseStyle.Foreground(tcell.ColorSteelBlue)
	deadStyle    = baseStyle.Foreground(tcell.ColorGray)
	overlayStyle = baseStyle.Foreground(tcell.ColorWhite).Bold(true)
)

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func categoryStyle(c defs.Category) tcell.Style {
	if clr, ok := config.CategoryColors[string(c)]; ok {
		return baseStyle.Foreground(rgb(clr))
	}
	return baseStyle
}

// cell maps a field coordinate onto a grid of n cells.
func cell(v, extent float64, n int) int {
	if n <= 0 {
		return 0
	}
	c := int(v / extent * float64(n))
	if c < 0 {
		return 0
	}
	if c >= n {
		return n - 1
	}
	return c
}

// field maps a point to a screen cell. Row 0 is the status bar.
func field(x, y float64, w, h int) (int, int) {
	return cell(x, config.ScreenWidth, w), 1 + cell(y, config.ScreenHeight, h-1)
}

func putString(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

func putCentered(s tcell.Screen, y int, text string, style tcell.Style) {
	w, _ := s.Size()
	putString(s, (w-len([]rune(text)))/2, y, text, style)
}

// draw paints one frame of st.
func draw(s tcell.Screen, st app.State) {
	s.Clear()
	w, h := s.Size()
	if w <= 0 || h <= 2 {
		s.Show()
		return
	}

	for x := 0; x < w; x++ {
		s.SetContent(x, 0, ' ', nil, barStyle)
	}
	putString(s, 1, 0, caption.StatusLine(st), barStyle)

	_, by := field(0, config.BreachLineY, w, h)
	for x := 0; x < w; x++ {
		s.SetContent(x, by, '─', nil, breachStyle)
	}

	for _, t := range st.Targets {
		x, y := field(t.Position.X+config.TargetSize/2, t.Position.Y+config.TargetSize/2, w, h)
		s.SetContent(x, y, '■', nil, categoryStyle(t.Category))
	}
	for _, b := range st.Bodies {
		x, y := field(b.Position.X+config.TargetSize/2, b.Position.Y+config.TargetSize/2, w, h)
		s.SetContent(x, y, '▼', nil, categoryStyle(b.Category).Dim(true))
	}
	for _, p := range st.Projectiles {
		x, y := field(p.Position.X, p.Position.Y, w, h)
		s.SetContent(x, y, '|', nil, shotStyle)
	}
	for _, c := range st.Catchers {
		x, y := field(c.Position.X, c.Position.Y, w, h)
		putString(s, x-1, y, `\_/`, bucketStyle)
	}
	for i, sh := range st.Shooters {
		style := shooterStyle
		if !sh.Alive {
			style = deadStyle
		}
		x, y := field(sh.Position.X, sh.Position.Y, w, h)
		s.SetContent(x, y, '▲', nil, style)
		label := config.ShooterNames[i]
		if sh.Alive {
			label += " " + strconv.Itoa(sh.Ammo)
		}
		putString(s, x-len(label)/2, h-1, label, style)
	}

	if o, ok := caption.For(st); ok {
		lines := []string{o.Title}
		if o.Big != "" {
			lines = append(lines, "", o.Big)
		}
		lines = append(lines, "")
		lines = append(lines, o.Lines...)
		top := (h - len(lines)) / 2
		for i, line := range lines {
			putCentered(s, top+i, line, overlayStyle)
		}
	}
	s.Show()
}
