package sentiment

import (
	"math"
	"strings"
)

const (
	LabelPositive = "positive"
	LabelNegative = "negative"
	LabelNeutral  = "neutral"
)

// Label thresholds leave a dead zone around zero so near-balanced text is not
// forced into positive/negative.
const labelThreshold = 0.1

// noEvidenceConfidence is the prior reported when no stem matches at all.
// It reflects "no evidence" rather than "certain neutrality".
const noEvidenceConfidence = 0.5

// Sentiment is the scorer's verdict for one utterance.
type Sentiment struct {
	Score      float64 // [-1.0, 1.0], negative means negative affect
	Label      string  // positive | negative | neutral
	Confidence float64 // [0.0, 1.0]
}

// Scorer maps free text to a valence score. Pure and deterministic; safe for
// concurrent use.
type Scorer struct {
	lexicon Lexicon
}

func NewScorer(lexicon Lexicon) *Scorer {
	return &Scorer{lexicon: lexicon}
}

// Score lowercases the text, splits on whitespace and counts tokens that
// contain a positive or negative stem as a substring. A token increments each
// list's count at most once, even if it contains several stems from that list.
func (s *Scorer) Score(text string) Sentiment {
	tokens := strings.Fields(strings.ToLower(text))

	var positive, negative int
	for _, token := range tokens {
		if matchesAny(token, s.lexicon.Positive) {
			positive++
		}
		if matchesAny(token, s.lexicon.Negative) {
			negative++
		}
	}

	total := positive + negative
	if total == 0 {
		return Sentiment{Score: 0, Label: LabelNeutral, Confidence: noEvidenceConfidence}
	}

	score := float64(positive-negative) / float64(total)

	label := LabelNeutral
	if score > labelThreshold {
		label = LabelPositive
	} else if score < -labelThreshold {
		label = LabelNegative
	}

	return Sentiment{
		Score:      score,
		Label:      label,
		Confidence: math.Abs(score),
	}
}

func matchesAny(token string, stems []string) bool {
	for _, stem := range stems {
		if strings.Contains(token, stem) {
			return true
		}
	}
	return false
}
