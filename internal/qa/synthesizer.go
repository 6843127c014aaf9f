// Package qa turns extracted article information into question/answer pairs.
package qa

import (
	"fmt"
	"strings"

	"medqa/internal/domain"
)

// QuestionFor returns the canned question asked for category c.
func QuestionFor(c domain.Category) string {
	return fmt.Sprintf("What are the %s of this disease?", strings.ToLower(c.String()))
}

// Synthesize emits one pair per category present in info, in category order.
func Synthesize(info domain.InfoMap) []domain.QAPair {
	pairs := make([]domain.QAPair, 0, len(info))
	for _, c := range domain.Categories() {
		answer, ok := info[c]
		if !ok {
			continue
		}
		pairs = append(pairs, domain.QAPair{Category: c, Question: QuestionFor(c), Answer: answer})
	}
	return pairs
}
