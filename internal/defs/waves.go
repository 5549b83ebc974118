package defs

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"go-party-arcade/internal/config"
)

// SpawnEvent describes one target appearing at the top of the field.
type SpawnEvent struct {
	Delay    time.Duration // offset from the start of the wave
	X        float64       // horizontal center of the target
	Category Category
}

// Rand is the random source used by the randomized patterns.
type Rand interface {
	Float64() float64
}

type point struct {
	delayMs float64
	x       float64
}

type patternFunc func(rng Rand) []point

// WavePatterns holds one spatial pattern per level and wave.
var WavePatterns = map[int]map[int]patternFunc{
	1: {1: columns, 2: gentleWave, 3: staggeredDiagonal},
	2: {1: zigzag, 2: vFormation, 3: alternatingColumns},
	3: {1: swarm, 2: pincer, 3: cascade},
}

var lanes = []float64{config.LaneLeftX, config.LaneCenterX, config.LaneRightX}

// Pattern returns the ordered spawn list for a level and wave, truncated to the
// level's target count. Only the swarm pattern reads rng; a nil rng falls back
// to the unseeded global source. Unknown level or wave yields nil.
func Pattern(level, wave int, rng Rand) []SpawnEvent {
	build, ok := WavePatterns[level][wave]
	if !ok {
		return nil
	}
	if rng == nil {
		rng = globalRand{}
	}

	points := build(rng)
	if n := TargetsPerWave(level); len(points) > n {
		points = points[:n]
	}
	sort.SliceStable(points, func(i, j int) bool { return points[i].delayMs < points[j].delayMs })

	events := make([]SpawnEvent, len(points))
	for i, p := range points {
		events[i] = SpawnEvent{
			Delay:    time.Duration(p.delayMs * float64(time.Millisecond)),
			X:        p.x,
			Category: Palette[i%len(Palette)],
		}
	}
	return events
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

func spread(n int, minX, maxX float64) []float64 {
	step := (maxX - minX) / math.Max(1, float64(n-1))
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = minX + float64(i)*step
	}
	return xs
}

// Straight vertical columns, 3 columns of 5.
func columns(Rand) []point {
	var out []point
	delay := 0.0
	for row := 0; row < 5; row++ {
		for _, x := range lanes {
			out = append(out, point{delay, x})
			delay += 400
		}
	}
	return out
}

func gentleWave(Rand) []point {
	var out []point
	for i, x := range spread(15, 300, config.ScreenWidth-300) {
		out = append(out, point{float64(i) * 600, x + math.Sin(float64(i)*0.8)*80})
	}
	return out
}

func staggeredDiagonal(Rand) []point {
	var out []point
	for i := 0; i < 15; i++ {
		offset := float64(i%3)*60 - 60
		out = append(out, point{float64(i) * 500, lanes[i%3] + offset})
	}
	return out
}

// Snake bouncing between the outer lanes.
func zigzag(Rand) []point {
	var out []point
	x, dir := config.LaneLeftX, 1.0
	for i := 0; i < 20; i++ {
		out = append(out, point{float64(i) * 350, x})
		x += dir * 120
		if x >= config.LaneRightX {
			x, dir = config.LaneRightX, -1
		} else if x <= config.LaneLeftX {
			x, dir = config.LaneLeftX, 1
		}
	}
	return out
}

func vFormation(Rand) []point {
	var out []point
	for i, x := range spread(10, 250, config.LaneCenterX-50) {
		out = append(out, point{float64(i) * 300, x})
	}
	for i, x := range spread(10, config.LaneCenterX+50, config.ScreenWidth-250) {
		out = append(out, point{float64(i) * 300, x})
	}
	return out
}

func alternatingColumns(Rand) []point {
	var out []point
	for i := 0; i < 20; i++ {
		out = append(out, point{float64(i) * 400, lanes[i%3]})
	}
	return out
}

// Chaotic swarm, the only randomized pattern.
func swarm(rng Rand) []point {
	const minX, maxX = 150.0, config.ScreenWidth - 150.0
	var out []point
	for i := 0; i < 25; i++ {
		out = append(out, point{float64(i) * 250, minX + rng.Float64()*(maxX-minX)})
	}
	return out
}

func pincer(Rand) []point {
	var out []point
	for i, x := range spread(13, 100, config.LaneCenterX) {
		out = append(out, point{float64(i) * 200, x})
	}
	for i, x := range spread(12, config.LaneCenterX, config.ScreenWidth-100) {
		out = append(out, point{float64(i) * 200, x})
	}
	return out
}

func cascade(Rand) []point {
	var out []point
	for i, x := range spread(25, 100, config.ScreenWidth-100) {
		out = append(out, point{float64(i) * 150, x})
	}
	return out
}
