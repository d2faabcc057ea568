package domain

import "time"

// TextReport summarizes the words of a text file.
type TextReport struct {
	SourcePath string `json:"source_path"`

	Characters  int            `json:"characters"`
	Words       int            `json:"words"`
	UniqueWords int            `json:"unique_words"`
	Vowels      int            `json:"vowels"`
	LongestWord string         `json:"longest_word,omitempty"`
	Frequencies map[string]int `json:"frequencies"`
	Palindromes []string       `json:"palindromes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
