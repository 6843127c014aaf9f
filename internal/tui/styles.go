package tui

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"medqa/internal/summarizer"
)

var (
	titleStyle           = lipgloss.NewStyle().Bold(true)
	hintStyle            = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	inputBoxStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	focusedInputBoxStyle = inputBoxStyle.BorderForeground(lipgloss.Color("12"))
	buttonStyle          = lipgloss.NewStyle().Padding(0, 1)
	focusedButtonStyle   = buttonStyle.Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("12"))
	panelStyle           = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).BorderForeground(lipgloss.Color("10"))
	answerLabelStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	captionStyle         = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("8"))
	warningStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	spinnerStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	highlightStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	unicodeWordRe        = regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*`)
)

// highlightBestSentence marks the answer sentence sharing most words with the question.
func highlightBestSentence(text, query string) string {
	if strings.TrimSpace(text) == "" {
		return text
	}
	sentences := summarizer.Sentences(text)
	qTokens := toTokenSet(query)
	if len(sentences) < 2 || len(qTokens) == 0 {
		return strings.Join(sentences, " ")
	}
	bestIdx := 0
	bestScore := 0
	for i, s := range sentences {
		score := tokenOverlapScore(qTokens, s)
		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}
	if bestScore > 0 {
		sentences[bestIdx] = highlightStyle.Render(sentences[bestIdx])
	}
	return strings.Join(sentences, " ")
}

func toTokenSet(s string) map[string]struct{} {
	tokens := unicodeWordRe.FindAllString(strings.ToLower(s), -1)
	m := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		m[t] = struct{}{}
	}
	return m
}

func tokenOverlapScore(queryTokens map[string]struct{}, sentence string) int {
	score := 0
	tokens := unicodeWordRe.FindAllString(strings.ToLower(sentence), -1)
	seen := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		if _, ok := queryTokens[t]; ok {
			score++
		}
	}
	return score
}
