// Package badges implements levels and the badges unlocked by reaching them.
// levels.go holds the static level table and the pure resolvers.
package badges

// Level is one named milestone of the challenge.
type Level struct {
	Level       int
	Name        string
	Points      int // Cumulative total required
	BadgeSymbol string
	Description string
}

// Levels lists the milestones in ascending points order.
var Levels = []Level{
	{Level: 1, Name: "Mulai Melangkah", Points: 300, BadgeSymbol: "🌱", Description: "Starter"},
	{Level: 2, Name: "Terjaga", Points: 700, BadgeSymbol: "🕊️", Description: "Habit Builder"},
	{Level: 3, Name: "Konsisten", Points: 1500, BadgeSymbol: "🔥", Description: "Consistency Master"},
	{Level: 4, Name: "Istiqomah", Points: 2500, BadgeSymbol: "⭐", Description: "Istiqomah Lillah"},
	{Level: 5, Name: "Perfect", Points: 3500, BadgeSymbol: "👑", Description: "Perfect Achiever"},
}

// CurrentLevel returns the highest level whose requirement is at or below
// totalPoints. ok is false below the first threshold.
func CurrentLevel(totalPoints int) (Level, bool) {
	var current Level
	found := false
	for _, l := range Levels {
		if totalPoints >= l.Points {
			current = l
			found = true
		}
	}
	return current, found
}

// NextLevel returns the lowest level still above totalPoints. ok is false at
// or beyond the maximum level.
func NextLevel(totalPoints int) (Level, bool) {
	for _, l := range Levels {
		if totalPoints < l.Points {
			return l, true
		}
	}
	return Level{}, false
}

// NewlyReached lists the level names whose requirement totalPoints meets and
// that are absent from held (matched by name). Pure core of badge unlocking.
func NewlyReached(totalPoints int, held []string) []string {
	heldSet := make(map[string]struct{}, len(held))
	for _, name := range held {
		heldSet[name] = struct{}{}
	}
	var out []string
	for _, l := range Levels {
		if totalPoints < l.Points {
			continue
		}
		if _, ok := heldSet[l.Name]; !ok {
			out = append(out, l.Name)
		}
	}
	return out
}
