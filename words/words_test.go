package words

import (
	"regexp"
	"strings"
	"testing"
)

func TestPair(t *testing.T) {
	// Test that Pair returns a non-empty string
	result := Pair()
	if result == "" {
		t.Fatal("Pair() returned empty string")
	}

	// Test format: should match "word_word" pattern
	pattern := regexp.MustCompile(`^[a-z]+_[a-z]+$`)
	if !pattern.MatchString(result) {
		t.Errorf("Pair() = %q, expected format 'word_word'", result)
	}
}

func TestPairUniqueness(t *testing.T) {
	// Generate multiple pairs and check for some variety
	// With 50 adjectives and 50 nouns, we should see different results
	results := make(map[string]bool)
	iterations := 100

	for i := 0; i < iterations; i++ {
		result := Pair()
		results[result] = true
	}

	// We should have at least some unique values
	// (Not all will be unique due to randomness, but should have > 50%)
	uniqueCount := len(results)
	if uniqueCount < iterations/2 {
		t.Errorf("Pair() produced %d unique values out of %d iterations, expected more variety", uniqueCount, iterations)
	}
}

func TestSentence(t *testing.T) {
	pattern := regexp.MustCompile(`^The [a-z]+ [a-z]+ [a-z]+ a [a-z]+ [a-z]+\.$`)

	for i := 0; i < 10; i++ {
		result := Sentence()
		if !pattern.MatchString(result) {
			t.Errorf("Sentence() iteration %d = %q, does not match pattern", i, result)
		}
	}
}

func TestParagraph(t *testing.T) {
	if got := Paragraph(0); got != "" {
		t.Errorf("Paragraph(0) = %q, expected empty", got)
	}

	result := Paragraph(3)
	if count := strings.Count(result, "."); count != 3 {
		t.Errorf("Paragraph(3) = %q, expected 3 sentences, found %d", result, count)
	}
}

func TestWordLists(t *testing.T) {
	if len(adjectives) == 0 {
		t.Error("adjectives list is empty")
	}
	for _, adj := range adjectives {
		if len(adj) < 3 {
			t.Errorf("adjective %q is too short (< 3 chars)", adj)
		}
	}

	if len(nouns) == 0 {
		t.Error("nouns list is empty")
	}
	for _, noun := range nouns {
		if len(noun) < 3 {
			t.Errorf("noun %q is too short (< 3 chars)", noun)
		}
	}

	if len(verbs) == 0 {
		t.Error("verbs list is empty")
	}
}

func TestSelectRandom(t *testing.T) {
	testWords := []string{"alpha", "beta", "gamma"}

	// Test successful selection
	result, err := selectRandom(testWords)
	if err != nil {
		t.Fatalf("selectRandom() error = %v", err)
	}

	// Verify result is from the list
	found := false
	for _, word := range testWords {
		if result == word {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("selectRandom() = %q, not in input list", result)
	}

	// Test empty list
	_, err = selectRandom([]string{})
	if err == nil {
		t.Error("selectRandom(empty list) expected error, got nil")
	}
}
