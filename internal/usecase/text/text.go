// Package text contains string helpers. Input is treated as opaque text:
// no Unicode normalization, and casing follows the unicode package defaults.
package text

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/aalvaropc/kata/internal/domain"
)

const vowels = "aeiouAEIOU"

func Greet(name string) string {
	return "Hello, " + name
}

// GreetAll returns "Hello, <name>!" for every name.
func GreetAll(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = fmt.Sprintf("Hello, %s!", n)
	}
	return out
}

// CapitalizeWords title-cases the first rune of every word and lower-cases the rest.
// Words are re-joined with a single space.
func CapitalizeWords(sentence string) string {
	words := strings.Fields(sentence)
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

func capitalize(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if r == utf8.RuneError && size <= 1 {
		return strings.ToLower(w)
	}
	return string(unicode.ToTitle(r)) + strings.ToLower(w[size:])
}

func Upper(s string) string {
	return strings.ToUpper(s)
}

func CountVowels(s string) int {
	n := 0
	for _, r := range s {
		if strings.ContainsRune(vowels, r) {
			n++
		}
	}
	return n
}

func Contains(s, sub string) bool {
	return strings.Contains(s, sub)
}

// RemoveWhitespace drops every ASCII space. Tabs and newlines are kept.
func RemoveWhitespace(s string) string {
	return strings.ReplaceAll(s, " ", "")
}

// Reverse reverses s by code point.
func Reverse(s string) string {
	runes := []rune(s)
	slices.Reverse(runes)
	return string(runes)
}

func IsPalindrome(s string) bool {
	return s == Reverse(s)
}

// Length counts code points, not bytes.
func Length(s string) int {
	return utf8.RuneCountInString(s)
}

// WordFrequencies counts whitespace-separated words. Case and punctuation are kept.
func WordFrequencies(s string) map[string]int {
	freq := map[string]int{}
	for _, w := range strings.Fields(s) {
		freq[w]++
	}
	return freq
}

// LongestWord returns the first word of maximal length (in code points).
func LongestWord(words []string) (string, error) {
	if len(words) == 0 {
		return "", domain.EmptyInput("text.longest_word")
	}
	best, bestLen := words[0], Length(words[0])
	for _, w := range words[1:] {
		if n := Length(w); n > bestLen {
			best, bestLen = w, n
		}
	}
	return best, nil
}

// ReverseWords reverses word order, collapsing whitespace runs to one space.
func ReverseWords(sentence string) string {
	words := strings.Fields(sentence)
	slices.Reverse(words)
	return strings.Join(words, " ")
}

// Pattern writes n lines forming a left-aligned triangle of stars.
func Pattern(w io.Writer, n int) error {
	for i := 1; i <= n; i++ {
		if _, err := io.WriteString(w, strings.Repeat("*", i)+"\n"); err != nil {
			return err
		}
	}
	return nil
}
