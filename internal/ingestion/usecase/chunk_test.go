package usecase

import (
	"strings"
	"testing"
)

func newChunker(size, overlap int) *implUseCase {
	return &implUseCase{cfg: Config{ChunkSize: size, ChunkOverlap: overlap}}
}

func TestSplitText(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		uc := newChunker(100, 20)
		if chunks := uc.splitText("   \n  "); chunks != nil {
			t.Errorf("splitText on whitespace returned %v, want nil", chunks)
		}
	})

	t.Run("short text is a single chunk", func(t *testing.T) {
		uc := newChunker(100, 20)
		chunks := uc.splitText("short document")
		if len(chunks) != 1 || chunks[0] != "short document" {
			t.Errorf("splitText returned %v, want the text unchanged", chunks)
		}
	})

	t.Run("long text splits within size", func(t *testing.T) {
		uc := newChunker(50, 10)
		text := strings.Repeat("lorem ipsum dolor sit amet ", 20)

		chunks := uc.splitText(text)
		if len(chunks) < 2 {
			t.Fatalf("expected multiple chunks, got %d", len(chunks))
		}
		for i, chunk := range chunks {
			if len([]rune(chunk)) > 50 {
				t.Errorf("chunk %d exceeds size: %d runes", i, len([]rune(chunk)))
			}
		}
	})

	t.Run("breaks on whitespace", func(t *testing.T) {
		uc := newChunker(20, 5)
		text := "alpha beta gamma delta epsilon zeta eta theta"

		chunks := uc.splitText(text)
		for i, chunk := range chunks {
			if strings.HasPrefix(chunk, " ") || strings.HasSuffix(chunk, " ") {
				t.Errorf("chunk %d not trimmed: %q", i, chunk)
			}
			// A chunk that had room to break on whitespace must not cut a word;
			// every chunk here should be made of whole words from the input.
			for _, word := range strings.Fields(chunk) {
				if !strings.Contains(text, word) {
					t.Errorf("chunk %d contains split word %q", i, word)
				}
			}
		}
	})

	t.Run("overlap larger than chunk size is clamped", func(t *testing.T) {
		uc := New(Config{ChunkSize: 100, ChunkOverlap: 150}, nil, nil, nil, nil, nil, nil, nil).(*implUseCase)
		if uc.cfg.ChunkOverlap >= uc.cfg.ChunkSize {
			t.Fatalf("overlap %d not clamped below chunk size %d", uc.cfg.ChunkOverlap, uc.cfg.ChunkSize)
		}

		text := strings.Repeat("word ", 40)
		chunks := uc.splitText(text)
		if len(chunks) < 2 {
			t.Errorf("expected multiple chunks, got %d", len(chunks))
		}
	})

	t.Run("no whitespace still advances", func(t *testing.T) {
		uc := newChunker(10, 3)
		text := strings.Repeat("x", 35)

		chunks := uc.splitText(text)
		if len(chunks) == 0 {
			t.Fatal("expected chunks for unbroken text")
		}
		var total int
		for _, chunk := range chunks {
			total += len(chunk)
		}
		if total < len(text) {
			t.Errorf("chunks cover %d chars of %d", total, len(text))
		}
	})
}

func TestChunkPointID(t *testing.T) {
	t.Run("deterministic per document and index", func(t *testing.T) {
		a := chunkPointID("doc-1", 0)
		b := chunkPointID("doc-1", 0)
		if a != b {
			t.Errorf("same inputs produced different IDs: %s vs %s", a, b)
		}
	})

	t.Run("distinct across indices and documents", func(t *testing.T) {
		ids := map[string]bool{
			chunkPointID("doc-1", 0): true,
			chunkPointID("doc-1", 1): true,
			chunkPointID("doc-2", 0): true,
		}
		if len(ids) != 3 {
			t.Errorf("expected 3 distinct IDs, got %d", len(ids))
		}
	})
}
