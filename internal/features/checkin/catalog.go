// Package checkin implements the daily check-in: the activity catalog, the
// day score calculator, the edit-window policy and the submission flow.
// catalog.go holds the static activity definitions and the score calculator.
package checkin

// Activity is one entry of the static activity catalog.
// Defined at process start, never mutated.
type Activity struct {
	ID     string // Unique key, also what users type in /checkin
	Label  string
	Points int
	Icon   string
}

// Catalog lists every activity of the challenge with its point value.
var Catalog = []Activity{
	{ID: "ngaji", Label: "Ngaji (2 halaman mushaf Madinah)", Points: 30, Icon: "📖"},
	{ID: "sedekah", Label: "Sedekah (berapapun)", Points: 15, Icon: "💝"},
	{ID: "dzikir_pagi_petang", Label: "Dzikir pagi/petang", Points: 10, Icon: "🤲"},
	{ID: "tidak_tidur", Label: "Tidak tidur hingga matahari terbit", Points: 10, Icon: "🌅"},
	{ID: "dzikir_tidur", Label: "Dzikir sebelum tidur", Points: 5, Icon: "🌙"},
	{ID: "kebaikan", Label: "Berbuat kebaikan", Points: 10, Icon: "✨"},
}

var catalogByID = func() map[string]Activity {
	m := make(map[string]Activity, len(Catalog))
	for _, a := range Catalog {
		m[a.ID] = a
	}
	return m
}()

// LookupActivity returns the catalog entry for an id.
func LookupActivity(id string) (Activity, bool) {
	a, ok := catalogByID[id]
	return a, ok
}

// ActivityScore sums the point values of the given activity ids.
// Duplicates count once and unknown ids contribute 0, so the function is
// total for any input; a stale id from an old client must not break scoring.
func ActivityScore(ids []string) int {
	seen := make(map[string]struct{}, len(ids))
	total := 0
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if a, ok := catalogByID[id]; ok {
			total += a.Points
		}
	}
	return total
}

// NormalizeActivities deduplicates ids and drops the ones not in the catalog,
// preserving the caller's order. The result is what gets persisted.
func NormalizeActivities(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := catalogByID[id]; ok {
			out = append(out, id)
		}
	}
	return out
}
