// Package extract maps article sections onto the fixed answer categories.
package extract

import (
	"strings"

	"medqa/internal/domain"
)

// Synonyms lists the lowercase title fragments accepted for each category.
var Synonyms = map[domain.Category][]string{
	domain.Symptoms:   {"symptom", "signs", "clinical presentation", "presentation"},
	domain.Causes:     {"cause", "etiology", "aetiology", "risk factor"},
	domain.Treatment:  {"treatment", "management", "therapy"},
	domain.Diagnosis:  {"diagnosis", "diagnostic"},
	domain.Prevention: {"prevention", "prophylaxis", "vaccin"},
}

// Extract walks every section of doc depth-first and records, per category,
// the body of the first section in document order whose title matches one
// of the category's synonyms. Categories with no match hold domain.Unknown.
func Extract(doc *domain.Document) domain.InfoMap {
	info := domain.NewInfoMap()
	if doc == nil {
		return info
	}

	stack := make([]*domain.Section, 0, len(doc.Sections))
	for i := len(doc.Sections) - 1; i >= 0; i-- {
		stack = append(stack, doc.Sections[i])
	}
	for len(stack) > 0 {
		sec := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if sec == nil {
			continue
		}
		text := strings.TrimSpace(sec.Text)
		if text != "" {
			title := strings.ToLower(sec.Title)
			for _, c := range domain.Categories() {
				if info[c] == domain.Unknown && Matches(title, c) {
					info[c] = text
				}
			}
		}
		for i := len(sec.Sections) - 1; i >= 0; i-- {
			stack = append(stack, sec.Sections[i])
		}
	}
	return info
}

// Matches reports whether a lowercase section title names category c.
func Matches(title string, c domain.Category) bool {
	for _, syn := range Synonyms[c] {
		if strings.Contains(title, syn) {
			return true
		}
	}
	return false
}
