package usecase

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// splitText cuts text into overlapping chunks, preferring to break on
// whitespace near the chunk boundary.
func (uc *implUseCase) splitText(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	size := uc.cfg.ChunkSize
	overlap := uc.cfg.ChunkOverlap

	runes := []rune(text)
	if len(runes) <= size {
		return []string{text}
	}

	var chunks []string
	step := size - overlap
	for start := 0; start < len(runes); start += step {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}

		// Break on the last whitespace inside the chunk when possible.
		cut := end
		if end < len(runes) {
			for i := end; i > start+step; i-- {
				if isSpace(runes[i-1]) {
					cut = i
					break
				}
			}
		}

		chunk := strings.TrimSpace(string(runes[start:cut]))
		if chunk != "" {
			chunks = append(chunks, chunk)
		}
		if cut >= len(runes) {
			break
		}
	}
	return chunks
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\n' || r == '\t' || r == '\r'
}

// chunkPointID derives a stable point ID so re-processing a document
// overwrites its previous vectors instead of duplicating them.
func chunkPointID(documentID string, index int) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("%s:%d", documentID, index))).String()
}
