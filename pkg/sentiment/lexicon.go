package sentiment

// Lexicon holds the closed stem vocabularies the scorer matches against.
// It is plain data so tests and callers can substitute their own lists.
type Lexicon struct {
	Positive []string
	Negative []string
}

// DefaultLexicon returns the built-in stem lists. Matching is by substring,
// so "grateful" also catches "gratefulness" and "happy" catches "happier".
func DefaultLexicon() Lexicon {
	return Lexicon{
		Positive: []string{
			"happy", "good", "great", "wonderful", "amazing",
			"love", "joy", "excited", "grateful", "peaceful",
		},
		Negative: []string{
			"sad", "bad", "terrible", "awful", "hate",
			"angry", "depressed", "anxious", "worried", "stressed",
		},
	}
}
