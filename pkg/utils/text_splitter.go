package utils

// Chunk is a slice of source text plus its rune offset in the original.
type Chunk struct {
	Text   string
	Offset int
}

// SplitText splits a long string into chunks of approximately 'chunkSize' characters.
// It includes an 'overlap' to preserve context at boundaries.
// This is a simple character-based splitter. Ideally, use a tokenizer-aware splitter.
func SplitText(text string, chunkSize int, overlap int) []string {
	chunks := SplitTextWithOffsets(text, chunkSize, overlap)
	out := make([]string, len(chunks))
	for i, c := range chunks {
		out[i] = c.Text
	}
	return out
}

// SplitTextWithOffsets is SplitText but keeps each chunk's position in
// the source, which identifies the chunk after ingestion.
func SplitTextWithOffsets(text string, chunkSize int, overlap int) []Chunk {
	runes := []rune(text)
	totalLen := len(runes)
	if totalLen <= chunkSize {
		return []Chunk{{Text: text, Offset: 0}}
	}

	var chunks []Chunk

	step := chunkSize - overlap
	if step <= 0 {
		step = chunkSize // fallback if overlap >= chunkSize
	}

	for i := 0; i < totalLen; i += step {
		end := i + chunkSize
		if end > totalLen {
			end = totalLen
		}

		chunks = append(chunks, Chunk{Text: string(runes[i:end]), Offset: i})

		if end == totalLen {
			break
		}
	}

	return chunks
}
