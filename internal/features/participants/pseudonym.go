// Package participants — pseudonym.go generates the anonymized names shown
// on the leaderboard. Real names are hidden from other participants to keep
// the charity of the deeds sincere; the combination "adjective noun NNN"
// gives 400 stems times 1000 suffixes, enough that collisions are harmless.
package participants

import (
	"fmt"
	"math/rand"
)

var pseudonymAdjectives = []string{
	"Pejuang", "Pencari", "Cahaya", "Bintang", "Embun",
	"Gema", "Lentera", "Penjaga", "Penyemai", "Pemuda",
	"Mutiara", "Sahabat", "Hamba", "Pecinta", "Sinar",
	"Tunas", "Langkah", "Zikir", "Doa", "Iman",
}

var pseudonymNouns = []string{
	"Ikhlas", "Taqwa", "Ramadhan", "Pahala", "Surga",
	"Kebaikan", "Sabar", "Syukur", "Hidayah", "Berkah",
	"Mulia", "Sholeh", "Istiqomah", "Sunnah", "Umat",
	"Langit", "Fajar", "Senja", "Rahmat", "Cinta",
}

// GeneratePseudonym builds a random leaderboard alias like
// "Pejuang Ikhlas 042". Assigned once at enrollment and kept stable so a row
// stays recognizable to its owner across views.
func GeneratePseudonym() string {
	adj := pseudonymAdjectives[rand.Intn(len(pseudonymAdjectives))]
	noun := pseudonymNouns[rand.Intn(len(pseudonymNouns))]
	return fmt.Sprintf("%s %s %03d", adj, noun, rand.Intn(1000))
}
