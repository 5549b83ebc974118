// internal/scene/content.go
package scene

// Script builds the presentation around the shooting gallery. newGallery
// creates a fresh minigame each time its scene is entered.
func Script(newGallery func() Minigame) []Scene {
	return []Scene{
		Transition{SceneID: "intro", Title: "Chapter One", Subtitle: "The team assembles"},
		Dialogue{
			SceneID:    "briefing",
			Title:      "The Briefing",
			Background: "hangar",
			Lines: []Line{
				{Speaker: "Rab", Text: "They're coming in from the sky. Three lanes, no gaps."},
				{Speaker: "Jenn", Text: "I'll take the middle. Joel, you've got the right."},
				{Speaker: "Joel", Text: "Whatever we knock down has to be picked up."},
				{Speaker: "Elyse", Text: "Debbie and I will work the buckets."},
				{Speaker: "Debbie", Text: "Every ten we catch patches us up. Don't let any through."},
			},
		},
		MinigameScene{SceneID: "gallery", Title: "Shooting Gallery", New: newGallery},
		Dialogue{
			SceneID:    "debrief",
			Title:      "Aftermath",
			Background: "hangar",
			Lines: []Line{
				{Speaker: "Rab", Text: "That's the last of them."},
				{Speaker: "Elyse", Text: "Buckets are full. Somebody else is carrying them."},
			},
		},
		Transition{SceneID: "outro", Title: "To be continued"},
	}
}
