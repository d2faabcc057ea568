package usecase

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/aalvaropc/kata/internal/domain"
	"github.com/aalvaropc/kata/internal/ports"
	"github.com/aalvaropc/kata/internal/usecase/seq"
	"github.com/aalvaropc/kata/internal/usecase/text"
)

// AnalyzeText builds a word report for a text file and optionally stores it.
type AnalyzeText struct {
	files ports.FileStore
	store ports.ReportStore
	now   func() time.Time
}

type AnalyzeOption func(*AnalyzeText)

// WithClock is useful for tests.
func WithClock(now func() time.Time) AnalyzeOption {
	return func(uc *AnalyzeText) {
		if now != nil {
			uc.now = now
		}
	}
}

// NewAnalyzeText wires the use case. A nil store skips persistence.
func NewAnalyzeText(files ports.FileStore, store ports.ReportStore, opts ...AnalyzeOption) *AnalyzeText {
	uc := &AnalyzeText{
		files: files,
		store: store,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute returns the report and, when a store is configured, the saved id.
func (uc *AnalyzeText) Execute(ctx context.Context, path string) (domain.TextReport, string, error) {
	if err := ctx.Err(); err != nil {
		return domain.TextReport{}, "", err
	}

	content, err := uc.files.ReadText(path)
	if err != nil {
		return domain.TextReport{}, "", err
	}

	report := Summarize(content)
	report.SourcePath = path
	report.CreatedAt = uc.now().UTC()

	if uc.store == nil {
		return report, "", nil
	}
	if err := ctx.Err(); err != nil {
		return report, "", err
	}

	id, err := uc.store.SaveReport(report)
	return report, id, err
}

// Summarize computes the report fields that depend only on content.
func Summarize(content string) domain.TextReport {
	words := strings.Fields(content)

	report := domain.TextReport{
		Characters:  text.Length(content),
		Words:       len(words),
		UniqueWords: len(seq.Unique(words)),
		Vowels:      text.CountVowels(content),
		Frequencies: text.WordFrequencies(content),
	}

	if longest, err := text.LongestWord(words); err == nil {
		report.LongestWord = longest
	}

	var pals []string
	for _, w := range seq.Unique(words) {
		if text.Length(w) > 1 && text.IsPalindrome(w) {
			pals = append(pals, w)
		}
	}
	slices.Sort(pals)
	report.Palindromes = pals

	return report
}
