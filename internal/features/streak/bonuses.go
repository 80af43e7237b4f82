// Package streak — bonuses.go holds the static streak bonus table.
package streak

// Bonus is one streak-length bonus: reaching DaysRequired consecutive days
// grants Points, at most once per streak cycle.
type Bonus struct {
	DaysRequired int
	Points       int
	Label        string
}

// Bonuses lists the thresholds in ascending order.
var Bonuses = []Bonus{
	{DaysRequired: 3, Points: 50, Label: "3 hari berturut-turut"},
	{DaysRequired: 7, Points: 150, Label: "7 hari berturut-turut"},
	{DaysRequired: 14, Points: 400, Label: "14 hari berturut-turut"},
	{DaysRequired: 21, Points: 700, Label: "21 hari berturut-turut"},
}

// BonusPoints resolves a set of earned thresholds against the bonus table.
// Unknown thresholds (possible after a config change) resolve to 0.
func BonusPoints(earned []int) int {
	total := 0
	for _, days := range earned {
		for _, b := range Bonuses {
			if b.DaysRequired == days {
				total += b.Points
				break
			}
		}
	}
	return total
}

// NextBonus returns the smallest threshold not yet earned, ok=false when
// every bonus of the cycle is already granted.
func NextBonus(earned []int) (Bonus, bool) {
	for _, b := range Bonuses {
		found := false
		for _, days := range earned {
			if days == b.DaysRequired {
				found = true
				break
			}
		}
		if !found {
			return b, true
		}
	}
	return Bonus{}, false
}
