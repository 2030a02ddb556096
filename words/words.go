package words

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// adjectives is a curated list of simple, memorable adjectives
var adjectives = []string{
	"azure", "bold", "calm", "daring", "eager",
	"fleet", "gentle", "happy", "jolly", "kind",
	"lively", "merry", "noble", "proud", "quick",
	"quiet", "rapid", "serene", "swift", "wise",
	"bright", "clever", "cosmic", "crystal", "divine",
	"epic", "fair", "golden", "honest", "humble",
	"iron", "jade", "keen", "lunar", "mystic",
	"omega", "pearl", "royal", "sacred", "silver",
	"solar", "stellar", "stoic", "supreme", "tiger",
	"ultra", "valiant", "vivid", "zealous", "zen",
}

// nouns is a curated list of animals and memorable objects
var nouns = []string{
	"aardvark", "badger", "cheetah", "dolphin", "eagle",
	"falcon", "gazelle", "hawk", "iguana", "jaguar",
	"koala", "leopard", "mantis", "narwhal", "otter",
	"panther", "quail", "raven", "shark", "tiger",
	"urchin", "viper", "walrus", "xerus", "yak",
	"zebra", "bear", "cobra", "dragon", "elk",
	"fox", "giraffe", "heron", "ibex", "jackal",
	"kite", "lynx", "moose", "newt", "owl",
	"panda", "python", "rabbit", "swan", "turtle",
	"unicorn", "vulture", "whale", "wolf", "wren",
}

// verbs links adjective/noun pairs into readable filler sentences.
var verbs = []string{
	"chases", "watches", "follows", "greets", "outruns",
	"circles", "ignores", "mimics", "startles", "befriends",
}

// Pair creates a random word pair in the format "adjective_noun" using
// cryptographically secure random number generation. Returns an empty string
// on error.
func Pair() string {
	adj, err := selectRandom(adjectives)
	if err != nil {
		return ""
	}

	noun, err := selectRandom(nouns)
	if err != nil {
		return ""
	}

	return fmt.Sprintf("%s_%s", adj, noun)
}

// Sentence builds a short nonsense sentence, handy for exercising text input
// without reaching for lorem ipsum.
func Sentence() string {
	adj1, err := selectRandom(adjectives)
	if err != nil {
		return ""
	}
	noun1, err := selectRandom(nouns)
	if err != nil {
		return ""
	}
	verb, err := selectRandom(verbs)
	if err != nil {
		return ""
	}
	adj2, err := selectRandom(adjectives)
	if err != nil {
		return ""
	}
	noun2, err := selectRandom(nouns)
	if err != nil {
		return ""
	}

	s := fmt.Sprintf("the %s %s %s a %s %s.", adj1, noun1, verb, adj2, noun2)
	return strings.ToUpper(s[:1]) + s[1:]
}

// Paragraph joins n filler sentences with spaces.
func Paragraph(n int) string {
	if n <= 0 {
		return ""
	}
	sentences := make([]string, n)
	for i := range sentences {
		sentences[i] = Sentence()
	}
	return strings.Join(sentences, " ")
}

// selectRandom selects a random element from a slice using crypto/rand
func selectRandom(words []string) (string, error) {
	if len(words) == 0 {
		return "", fmt.Errorf("empty word list")
	}

	max := big.NewInt(int64(len(words)))
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to generate random number: %w", err)
	}

	return words[n.Int64()], nil
}
