package run

import (
	"math/rand"
	"sync"
	"time"
)

var (
	adjectives = []string{
		"autumn", "hidden", "bitter", "misty", "silent", "empty", "dry", "dark",
		"summer", "icy", "quiet", "white", "cool", "spring", "winter", "twilight",
		"crimson", "weathered", "blue", "broken", "cold", "damp", "frosty", "green",
		"long", "late", "bold", "little", "morning", "muddy", "old", "red", "rough",
		"still", "small", "wandering", "wild", "black", "young", "solitary",
		"polished", "purple", "nameless", "lucky", "crystal", "narrow", "hollow",
	}

	nouns = []string{
		"canyon", "corridor", "ridge", "quarry", "tunnel", "hangar", "atrium",
		"cellar", "plaza", "alley", "bridge", "crossing", "harbor", "garage",
		"gallery", "vault", "hall", "stairwell", "courtyard", "dock", "mesa",
		"valley", "cliff", "wall", "field", "meadow", "forest", "glade", "pass",
		"terrace", "warehouse", "platform", "depot", "arcade", "cloister",
	}

	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// GenerateName creates a memorable identifier in the format "adjective-noun"
func GenerateName() string {
	rngMu.Lock()
	defer rngMu.Unlock()
	return adjectives[rng.Intn(len(adjectives))] + "-" + nouns[rng.Intn(len(nouns))]
}

// GenerateID combines a memorable name with the UTC timestamp of t
func GenerateID(t time.Time) string {
	return GenerateName() + "-" + t.UTC().Format("20060102-150405")
}
