package tools

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// wordsPerMinute is the reading speed behind EstimatedReadingMinutes.
const wordsPerMinute = 200

// TextStats summarizes a block of text.
type TextStats struct {
	Words                   int     `json:"words"`
	Characters              int     `json:"characters"`
	Sentences               int     `json:"sentences"`
	Paragraphs              int     `json:"paragraphs"`
	EstimatedReadingMinutes float64 `json:"estimatedReadingMinutes"`
}

// AnalyzeText counts words (runs of letters, digits and underscores),
// characters (runes after NFC composition), sentences (non-blank pieces
// between runs of '.', '!' and '?') and paragraphs (non-blank lines).
func AnalyzeText(text string) TextStats {
	text = norm.NFC.String(text)

	words := 0
	inWord := false
	for _, r := range text {
		if isWordRune(r) {
			if !inWord {
				words++
				inWord = true
			}
			continue
		}
		inWord = false
	}

	sentences := 0
	for _, piece := range strings.FieldsFunc(text, func(r rune) bool { return r == '.' || r == '!' || r == '?' }) {
		if strings.TrimSpace(piece) != "" {
			sentences++
		}
	}

	paragraphs := 0
	for _, line := range splitLines(text) {
		if strings.TrimSpace(line) != "" {
			paragraphs++
		}
	}

	minutes := 0.0
	if words > 0 {
		minutes = math.Round(float64(words)/wordsPerMinute*100) / 100
	}

	return TextStats{
		Words:                   words,
		Characters:              utf8.RuneCountInString(text),
		Sentences:               sentences,
		Paragraphs:              paragraphs,
		EstimatedReadingMinutes: minutes,
	}
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r) || r == '_'
}

// splitLines splits on \n, \r\n, \r and the Unicode line and paragraph separators.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029'
	})
}
