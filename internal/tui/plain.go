package tui

import (
	"errors"
	"fmt"
	"strings"

	"medqa/internal/domain"
	"medqa/internal/service"
)

// RenderPlain formats the outcome of one Ask call as plain text for
// non-interactive use.
func RenderPlain(ans *domain.Answer, err error) string {
	if err == nil && ans == nil {
		err = errors.New("empty answer")
	}
	switch service.Classify(err) {
	case service.OutcomeWarning:
		return "Warning: " + warningText
	case service.OutcomeNotFound:
		if errors.Is(err, service.ErrNoInformation) {
			return "Error: " + noInfoText
		}
		return "Error: " + notFoundText
	case service.OutcomeException:
		return "Error: " + err.Error()
	}

	match := ans.Match
	var b strings.Builder
	fmt.Fprintf(&b, "Answer: %s\n", strings.Join(strings.Fields(match.Answer), " "))
	fmt.Fprintf(&b, "Matched Q: %s (Score: %.2f)\n", match.Pair.Question, match.Score)
	if !match.Confident {
		b.WriteString("Low confidence: no section answers this question well enough.\n")
	}
	return b.String()
}
