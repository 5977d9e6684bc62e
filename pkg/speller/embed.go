package speller

import (
	"bufio"
	"embed"
	"log"
	"strings"
)

//go:embed data/words.txt
var embeddedFS embed.FS

// loadEmbeddedDictionary loads words from the embedded dictionary file
func loadEmbeddedDictionary() []string {
	var words []string

	// Open the embedded words.txt file
	file, err := embeddedFS.Open("data/words.txt")
	if err != nil {
		log.Printf("[Speller] Error opening embedded dictionary: %v", err)
		return words
	}
	defer file.Close()

	// Read each line and collect the word
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			words = append(words, word)
		}
	}

	// Check for scanner errors
	if err := scanner.Err(); err != nil {
		log.Printf("[Speller] Error reading embedded dictionary: %v", err)
	}

	return words
}
