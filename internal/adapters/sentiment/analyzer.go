// Package sentiment scores free-text feedback comments with a small polarity
// lexicon. Scores land in [-1, 1]; labels use a +/-0.05 neutral band.
package sentiment

import (
	"strings"

	"eventpulse/internal/domain"
)

// Sentiment labels stored alongside feedback.
const (
	LabelPositive = "Positive"
	LabelNegative = "Negative"
	LabelNeutral  = "Neutral"
)

const neutralBand = 0.05

// lexicon maps a stemmed token to its polarity. Weights are coarse on
// purpose; the label only needs to be directionally right.
var lexicon = map[string]float64{
	"amazing": 0.9, "awesome": 0.9, "excellent": 0.9, "fantastic": 0.9,
	"great": 0.8, "love": 0.8, "loved": 0.8, "perfect": 0.9, "wonderful": 0.9,
	"best": 0.8, "enjoyable": 0.6, "enjoyed": 0.6, "fun": 0.6, "good": 0.5,
	"helpful": 0.5, "informative": 0.5, "interesting": 0.4, "nice": 0.4,
	"well": 0.3, "smooth": 0.3, "clear": 0.3, "friendly": 0.4, "engaging": 0.5,
	"inspiring": 0.6, "useful": 0.5, "recommend": 0.6, "liked": 0.5,

	"awful": -0.9, "terrible": -0.9, "horrible": -0.9, "worst": -0.9,
	"hate": -0.8, "hated": -0.8, "bad": -0.6, "poor": -0.6, "boring": -0.6,
	"disappointing": -0.7, "disappointed": -0.7, "confusing": -0.5,
	"disorganized": -0.6, "late": -0.3, "slow": -0.3, "crowded": -0.3,
	"loud": -0.2, "cold": -0.2, "broken": -0.5, "useless": -0.7,
	"waste": -0.7, "mediocre": -0.4, "chaotic": -0.5, "rude": -0.6,
}

// negations flip the polarity of the following sentiment-bearing word.
var negations = map[string]struct{}{
	"not": {}, "no": {}, "never": {}, "wasnt": {}, "isnt": {}, "didnt": {},
	"dont": {}, "cant": {}, "couldnt": {}, "wouldnt": {}, "hardly": {},
}

type analyzer struct{}

// NewAnalyzer returns a lexicon-backed SentimentAnalyzer.
func NewAnalyzer() domain.SentimentAnalyzer {
	return analyzer{}
}

func (analyzer) Analyze(text string) (float64, string) {
	var sum float64
	var matched int
	negate := false
	for _, tok := range tokenize(text) {
		if _, ok := negations[tok]; ok {
			negate = true
			continue
		}
		if w, ok := lexicon[tok]; ok {
			if negate {
				w = -w
			}
			sum += w
			matched++
		}
		negate = false
	}
	if matched == 0 {
		return 0, LabelNeutral
	}
	score := sum / float64(matched)
	switch {
	case score >= neutralBand:
		return score, LabelPositive
	case score <= -neutralBand:
		return score, LabelNegative
	default:
		return score, LabelNeutral
	}
}

func tokenize(text string) []string {
	text = strings.ToLower(text)
	// Drop apostrophes so contractions like "wasn't" collapse to "wasnt".
	text = strings.ReplaceAll(text, "'", "")
	return strings.FieldsFunc(text, func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})
}
