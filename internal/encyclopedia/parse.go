package encyclopedia

import (
	"regexp"
	"strings"

	"medqa/internal/domain"
)

var headingRe = regexp.MustCompile(`^(={2,6})\s*(.*?)\s*(={2,6})$`)

// ParseSections splits a plain-text extract with wiki-style headings
// ("== Title ==", "=== Sub ===") into a section forest. Text before the
// first heading is returned as the lead.
func ParseSections(extract string) (lead string, sections []*domain.Section) {
	type frame struct {
		level   int
		section *domain.Section
	}
	var (
		stack   []frame
		current *domain.Section
		body    []string
	)
	flush := func() {
		text := strings.TrimSpace(strings.Join(body, "\n"))
		body = body[:0]
		if current == nil {
			lead = text
			return
		}
		current.Text = text
	}

	for _, line := range strings.Split(extract, "\n") {
		m := headingRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil || len(m[1]) != len(m[3]) || m[2] == "" {
			body = append(body, line)
			continue
		}
		flush()
		level := len(m[1])
		sec := &domain.Section{Title: m[2]}
		for len(stack) > 0 && stack[len(stack)-1].level >= level {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			sections = append(sections, sec)
		} else {
			parent := stack[len(stack)-1].section
			parent.Sections = append(parent.Sections, sec)
		}
		stack = append(stack, frame{level: level, section: sec})
		current = sec
	}
	flush()
	return lead, sections
}
