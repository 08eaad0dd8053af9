package news

import (
	"strings"

	"stamble/internal/types"
)

var positiveCues = []string{
	"surge", "jump", "rise", "gain", "positive", "boost", "up", "growth",
	"profit", "beat", "record", "upgrade", "partnership", "exceeds",
}

var negativeCues = []string{
	"fall", "drop", "decline", "negative", "down", "loss", "crisis",
	"concern", "miss", "lawsuit", "recall", "downgrade", "cut", "probe",
}

// LabelHeadline assigns a sentiment label from cue words in the title and
// summary. Negative cues win ties so bad news is not glossed over.
func LabelHeadline(title, summary string) types.SentimentLabel {
	text := strings.ToLower(title + " " + summary)
	for _, cue := range negativeCues {
		if containsWord(text, cue) {
			return types.SentimentNegative
		}
	}
	for _, cue := range positiveCues {
		if containsWord(text, cue) {
			return types.SentimentPositive
		}
	}
	return types.SentimentNeutral
}

func containsWord(text, word string) bool {
	idx := 0
	for {
		i := strings.Index(text[idx:], word)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(word)
		beforeOK := start == 0 || !isLetter(text[start-1])
		afterOK := end == len(text) || !isLetter(text[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
