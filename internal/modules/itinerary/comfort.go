package itinerary

type comfortTier struct {
	Name  string
	Emoji string
}

var comfortTiers = [5]comfortTier{
	{Name: "Budget", Emoji: "🎒"},
	{Name: "Economy", Emoji: "💼"},
	{Name: "Standard", Emoji: "⭐"},
	{Name: "Premium", Emoji: "✨"},
	{Name: "Luxury", Emoji: "👑"},
}

// ClampComfortLevel forces a comfort level into 1..5.
func ClampComfortLevel(level int) int {
	switch {
	case level < 1:
		return 1
	case level > len(comfortTiers):
		return len(comfortTiers)
	default:
		return level
	}
}

// ComfortLevelName returns the tier name for a 1..5 comfort level, clamped.
func ComfortLevelName(level int) string {
	return comfortTiers[ClampComfortLevel(level)-1].Name
}

// ComfortLevelEmoji returns the tier emoji for a 1..5 comfort level, clamped.
func ComfortLevelEmoji(level int) string {
	return comfortTiers[ClampComfortLevel(level)-1].Emoji
}
