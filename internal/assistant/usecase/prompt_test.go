package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"testing"

	"assistant-srv/internal/assistant"
	"assistant-srv/internal/model"
	"assistant-srv/internal/retrieval"
)

func TestAssemblePrompt(t *testing.T) {
	ctx := context.Background()
	input := assistant.StreamInput{ConversationID: "conv-1", Message: "explain this"}

	t.Run("system prompt from config", func(t *testing.T) {
		uc, _ := newTestUseCase(Config{SystemPrompt: "You are helpful."}, testDeps{})

		req, err := uc.assemblePrompt(ctx, input, nil, nil)
		if err != nil {
			t.Fatalf("assemblePrompt failed: %v", err)
		}
		if req.SystemInstruction == nil || req.SystemInstruction.Parts[0].Text != "You are helpful." {
			t.Errorf("system instruction not set from config: %+v", req.SystemInstruction)
		}
	})

	t.Run("per-request system prompt wins", func(t *testing.T) {
		uc, _ := newTestUseCase(Config{SystemPrompt: "default"}, testDeps{})

		override := input
		override.SystemPrompt = "custom"
		req, err := uc.assemblePrompt(ctx, override, nil, nil)
		if err != nil {
			t.Fatalf("assemblePrompt failed: %v", err)
		}
		if req.SystemInstruction.Parts[0].Text != "custom" {
			t.Errorf("system instruction %q, want custom", req.SystemInstruction.Parts[0].Text)
		}
	})

	t.Run("history replayed with model roles", func(t *testing.T) {
		uc, _ := newTestUseCase(Config{}, testDeps{})

		history := []model.Message{
			{Role: model.RoleUser, Content: "first question"},
			{Role: model.RoleAssistant, Content: "first answer"},
		}
		req, err := uc.assemblePrompt(ctx, input, history, nil)
		if err != nil {
			t.Fatalf("assemblePrompt failed: %v", err)
		}
		if len(req.Contents) != 3 {
			t.Fatalf("got %d contents, want history plus user turn", len(req.Contents))
		}
		if req.Contents[0].Role != "user" || req.Contents[0].Parts[0].Text != "first question" {
			t.Errorf("history user turn wrong: %+v", req.Contents[0])
		}
		if req.Contents[1].Role != "model" || req.Contents[1].Parts[0].Text != "first answer" {
			t.Errorf("history assistant turn wrong: %+v", req.Contents[1])
		}
		if req.Contents[2].Role != "user" || req.Contents[2].Parts[0].Text != "explain this" {
			t.Errorf("current turn wrong: %+v", req.Contents[2])
		}
	})

	t.Run("document inlined with attachment tag", func(t *testing.T) {
		uc, _ := newTestUseCase(Config{}, testDeps{
			extractor: &fakeExtractor{text: "extracted text"},
		})

		attachments := []model.Attachment{
			{ID: "a", FileName: "notes.txt", ContentType: "text/plain", Kind: model.AttachmentKindDocument, Data: []byte("raw")},
		}
		req, err := uc.assemblePrompt(ctx, input, nil, attachments)
		if err != nil {
			t.Fatalf("assemblePrompt failed: %v", err)
		}

		userText := req.Contents[0].Parts[0].Text
		want := fmt.Sprintf(attachmentTemplate, "notes.txt", "extracted text")
		if !strings.Contains(userText, want) {
			t.Errorf("inlined document missing from user text:\n%s", userText)
		}
		if !strings.HasPrefix(userText, "explain this\n") {
			t.Errorf("user message should come before inlined documents:\n%s", userText)
		}
	})

	t.Run("image becomes inline media part", func(t *testing.T) {
		uc, _ := newTestUseCase(Config{}, testDeps{})

		imageBytes := []byte{0x89, 0x50, 0x4e, 0x47}
		attachments := []model.Attachment{
			{ID: "a", FileName: "diagram.png", ContentType: "image/png", Kind: model.AttachmentKindImage, Data: imageBytes},
		}
		req, err := uc.assemblePrompt(ctx, input, nil, attachments)
		if err != nil {
			t.Fatalf("assemblePrompt failed: %v", err)
		}

		parts := req.Contents[0].Parts
		if len(parts) != 2 {
			t.Fatalf("got %d parts, want text plus image", len(parts))
		}
		media := parts[1].InlineData
		if media == nil {
			t.Fatal("image part has no inline data")
		}
		if media.MimeType != "image/png" {
			t.Errorf("mime type %s, want image/png", media.MimeType)
		}
		if media.Data != base64.StdEncoding.EncodeToString(imageBytes) {
			t.Errorf("image bytes not base64 encoded")
		}
	})

	t.Run("extraction failure fails the turn", func(t *testing.T) {
		uc, _ := newTestUseCase(Config{}, testDeps{
			extractor: &fakeExtractor{err: errors.New("tika down")},
		})

		attachments := []model.Attachment{
			{ID: "a", FileName: "report.pdf", ContentType: "application/pdf", Kind: model.AttachmentKindDocument, Data: []byte("pdf")},
		}
		_, err := uc.assemblePrompt(ctx, input, nil, attachments)
		if !errors.Is(err, assistant.ErrExtractionFailed) {
			t.Errorf("assemblePrompt returned %v, want ErrExtractionFailed", err)
		}
	})

	t.Run("retrieved context appended to system prompt", func(t *testing.T) {
		uc, _ := newTestUseCase(Config{SystemPrompt: "base"}, testDeps{
			retrieval: &fakeRetrieval{docs: []retrieval.RetrievedDocument{
				{Content: "chunk one", Score: 0.9},
				{Content: "chunk two", Score: 0.8},
			}},
		})

		req, err := uc.assemblePrompt(ctx, input, nil, nil)
		if err != nil {
			t.Fatalf("assemblePrompt failed: %v", err)
		}

		system := req.SystemInstruction.Parts[0].Text
		if !strings.Contains(system, retrievalPreamble) {
			t.Errorf("retrieval preamble missing:\n%s", system)
		}
		if !strings.Contains(system, "chunk one\n---\nchunk two\n---\n") {
			t.Errorf("retrieved chunks not joined into system prompt:\n%s", system)
		}
	})

	t.Run("retrieval failure degrades to no context", func(t *testing.T) {
		uc, _ := newTestUseCase(Config{SystemPrompt: "base"}, testDeps{
			retrieval: &fakeRetrieval{err: errors.New("qdrant down")},
		})

		req, err := uc.assemblePrompt(ctx, input, nil, nil)
		if err != nil {
			t.Fatalf("assemblePrompt should not fail on retrieval errors: %v", err)
		}
		if req.SystemInstruction.Parts[0].Text != "base" {
			t.Errorf("system prompt changed despite retrieval failure: %q", req.SystemInstruction.Parts[0].Text)
		}
	})
}

func TestClassifyAttachment(t *testing.T) {
	cases := []struct {
		contentType string
		want        model.AttachmentKind
		wantErr     bool
	}{
		{"image/png", model.AttachmentKindImage, false},
		{"image/jpeg", model.AttachmentKindImage, false},
		{"text/plain", model.AttachmentKindDocument, false},
		{"text/markdown", model.AttachmentKindDocument, false},
		{"application/pdf", model.AttachmentKindDocument, false},
		{"application/zip", "", true},
		{"audio/mpeg", "", true},
		{"", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.contentType, func(t *testing.T) {
			got, err := classifyAttachment(tc.contentType)
			if tc.wantErr {
				if !errors.Is(err, assistant.ErrUnsupportedAttachment) {
					t.Errorf("classifyAttachment(%q) returned %v, want ErrUnsupportedAttachment", tc.contentType, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("classifyAttachment(%q) failed: %v", tc.contentType, err)
			}
			if got != tc.want {
				t.Errorf("classifyAttachment(%q) = %s, want %s", tc.contentType, got, tc.want)
			}
		})
	}
}
