package extractor

import "strings"

// ChunkText splits text into word-boundary chunks of at most maxChunkSize
// characters so each summarization call stays within the model's context.
// Words longer than maxChunkSize become their own chunk rather than being cut.
func ChunkText(text string, maxChunkSize int) []string {
	if maxChunkSize <= 0 {
		return []string{text}
	}

	words := strings.Fields(text)
	var chunks []string
	var current string
	for _, word := range words {
		if current != "" && len(current)+len(word)+1 > maxChunkSize {
			chunks = append(chunks, current)
			current = word
			continue
		}
		if current == "" {
			current = word
		} else {
			current += " " + word
		}
	}
	if current != "" {
		chunks = append(chunks, current)
	}
	return chunks
}
