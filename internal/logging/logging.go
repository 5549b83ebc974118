// internal/logging/logging.go
package logging

import (
	"fmt"
	"io"
	"log"
	"sort"
	"strings"

	"go-party-arcade/internal/event"
)

// EventLogger writes one line per gameplay event:
//
//	[ShotFired] shooter=0 ammo_left=39
type EventLogger struct {
	logger *log.Logger
	skip   map[event.EventType]bool
}

// NewEventLogger logs to w. Event types in quiet are not logged.
func NewEventLogger(w io.Writer, quiet ...event.EventType) *EventLogger {
	skip := make(map[event.EventType]bool, len(quiet))
	for _, t := range quiet {
		skip[t] = true
	}
	return &EventLogger{
		logger: log.New(w, "", log.LstdFlags|log.Lmicroseconds),
		skip:   skip,
	}
}

// Attach subscribes the logger to every event of d.
func (l *EventLogger) Attach(d *event.Dispatcher) {
	d.SubscribeAll(l)
}

func (l *EventLogger) OnEvent(e event.Event) {
	if l.skip[e.Type] {
		return
	}
	l.logger.Print(Format(e))
}

// Format renders an event as a log line without the timestamp.
func Format(e event.Event) string {
	fields := Fields(e)
	if len(fields) == 0 {
		return fmt.Sprintf("[%s]", e.Type)
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	fmt.Fprintf(&b, "[%s]", e.Type)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, fields[k])
	}
	return b.String()
}

// Fields flattens a known event payload into key/value pairs.
func Fields(e event.Event) map[string]any {
	switch d := e.Data.(type) {
	case event.PhaseChange:
		return map[string]any{"from": d.From, "to": d.To, "level": d.Level, "wave": d.Wave}
	case event.WaveStart:
		return map[string]any{"level": d.Level, "wave": d.Wave, "spawns": d.Spawns}
	case event.Shot:
		return map[string]any{"shooter": int(d.Shooter), "ammo_left": d.AmmoLeft}
	case event.Spawn:
		return map[string]any{"target": d.Target, "category": d.Category, "x": fmt.Sprintf("%.0f", d.X), "speed": fmt.Sprintf("%.1f", d.Speed)}
	case event.Breach:
		return map[string]any{"target": d.Target, "health": d.Health}
	case event.Kill:
		return map[string]any{"target": d.Target, "shooter": int(d.Shooter)}
	case event.Catch:
		return map[string]any{"body": d.Body, "catcher": int(d.Catcher)}
	case event.Heal:
		return map[string]any{"amount": d.Amount, "health": d.Health}
	case nil:
		return nil
	default:
		return map[string]any{"payload": fmt.Sprintf("%+v", d)}
	}
}
