package domain

import "fmt"

// Unknown is the answer recorded for a category with no usable section,
// and the answer reported for a low-confidence match.
const Unknown = "Unknown"

// Document is the fetched encyclopedia article.
type Document struct {
	Title    string
	Exists   bool
	Sections []*Section
}

// Section is a titled block of article text with nested subsections.
type Section struct {
	Title    string
	Text     string
	Sections []*Section
}

// Category is one of the fixed topics extracted from an article.
type Category int

const (
	Symptoms Category = iota
	Causes
	Treatment
	Diagnosis
	Prevention
)

var categoryNames = [...]string{"Symptoms", "Causes", "Treatment", "Diagnosis", "Prevention"}

// Categories returns every category in enumeration order.
func Categories() []Category {
	return []Category{Symptoms, Causes, Treatment, Diagnosis, Prevention}
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// InfoMap maps each category to the body text extracted for it.
type InfoMap map[Category]string

// NewInfoMap returns a map holding Unknown for every category.
func NewInfoMap() InfoMap {
	m := make(InfoMap, len(categoryNames))
	for _, c := range Categories() {
		m[c] = Unknown
	}
	return m
}

// Found counts the categories holding extracted text.
func (m InfoMap) Found() int {
	n := 0
	for _, v := range m {
		if v != Unknown {
			n++
		}
	}
	return n
}

// QAPair is a synthesized question with the answer it maps to.
type QAPair struct {
	Category Category
	Question string
	Answer   string
}

// MatchResult is the best candidate for a query.
// Answer is Unknown when the match is not confident.
type MatchResult struct {
	Pair      QAPair
	Answer    string
	Score     float64
	Confident bool
}

// Answer is the outcome of a single question-answering run.
type Answer struct {
	RequestID  string
	Topic      string
	Title      string
	Question   string
	Translated string
	Match      MatchResult
	Preview    string
}
