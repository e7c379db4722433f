package gemini

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// GenerateStream calls streamGenerateContent with SSE transport and relays
// text deltas as they arrive. The returned channel carries zero or more
// data chunks followed by exactly one terminal chunk, then closes.
func (g *geminiImpl) GenerateStream(ctx context.Context, req Request) (<-chan StreamChunk, error) {
	if g.apiKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}
	if len(req.Contents) == 0 {
		return nil, fmt.Errorf("gemini: at least one content block is required")
	}
	url := fmt.Sprintf("%s/%s:streamGenerateContent?alt=sse&key=%s", BaseURL, g.model, g.apiKey)

	body, statusCode, err := g.httpClient.Stream(ctx, url, req, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call Gemini API: %w", err)
	}
	if statusCode != http.StatusOK {
		data, _ := io.ReadAll(body)
		_ = body.Close()
		return nil, fmt.Errorf("Gemini API returned status: %d, body: %s", statusCode, string(data))
	}

	out := make(chan StreamChunk)
	go func() {
		defer close(out)
		defer body.Close()

		scanner := bufio.NewScanner(body)
		scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

		for scanner.Scan() {
			line := scanner.Text()
			if !strings.HasPrefix(line, "data:") {
				continue
			}
			payload := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
			if payload == "" || payload == "[DONE]" {
				continue
			}

			var resp Response
			if err := json.Unmarshal([]byte(payload), &resp); err != nil {
				g.emit(ctx, out, StreamChunk{Err: fmt.Errorf("failed to unmarshal stream event: %w", err), Done: true})
				return
			}

			var delta strings.Builder
			for _, cand := range resp.Candidates {
				for _, part := range cand.Content.Parts {
					delta.WriteString(part.Text)
				}
			}
			if delta.Len() == 0 {
				continue
			}
			if !g.emit(ctx, out, StreamChunk{Delta: delta.String()}) {
				return
			}
		}

		if err := scanner.Err(); err != nil {
			g.emit(ctx, out, StreamChunk{Err: fmt.Errorf("stream read failed: %w", err), Done: true})
			return
		}
		g.emit(ctx, out, StreamChunk{Done: true})
	}()

	return out, nil
}

// emit sends a chunk unless the context is already cancelled. Returns false
// when the consumer is gone.
func (g *geminiImpl) emit(ctx context.Context, out chan<- StreamChunk, chunk StreamChunk) bool {
	select {
	case out <- chunk:
		return true
	case <-ctx.Done():
		return false
	}
}
