package usecase

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"assistant-srv/internal/assistant"
	"assistant-srv/internal/model"
	"assistant-srv/internal/retrieval"
	"assistant-srv/pkg/gemini"
)

// attachmentTemplate wraps an inlined document so the model can tell
// attachment content apart from the user's own words.
const attachmentTemplate = "<attachment filename=\"%s\">\n        %s\n</attachment>\n"

const retrievalPreamble = "Use the following context to answer the question. If the context does not contain the answer, say so.\n\n"

// assemblePrompt builds the full multi-modal request for one turn:
// system prompt (plus retrieved context), replayed history, and the user
// message with inlined documents and image parts.
func (uc *implUseCase) assemblePrompt(ctx context.Context, input assistant.StreamInput, history []model.Message, attachments []model.Attachment) (gemini.Request, error) {
	system := input.SystemPrompt
	if system == "" {
		system = uc.cfg.SystemPrompt
	}

	if retrieved := uc.retrieveContext(ctx, input.Message); retrieved != "" {
		system = system + "\n\n" + retrievalPreamble + retrieved
	}

	userParts, err := uc.buildUserParts(ctx, input.Message, attachments)
	if err != nil {
		return gemini.Request{}, err
	}

	contents := make([]gemini.Content, 0, len(history)+1)
	for _, msg := range history {
		role := "user"
		if msg.Role == model.RoleAssistant {
			role = "model"
		}
		contents = append(contents, gemini.Content{
			Role:  role,
			Parts: []gemini.Part{{Text: msg.Content}},
		})
	}
	contents = append(contents, gemini.Content{Role: "user", Parts: userParts})

	return gemini.Request{
		SystemInstruction: &gemini.Content{Parts: []gemini.Part{{Text: system}}},
		Contents:          contents,
	}, nil
}

// buildUserParts turns the message and its attachments into prompt parts.
// Documents are extracted to text and inlined into the message, images
// become inline media parts.
func (uc *implUseCase) buildUserParts(ctx context.Context, message string, attachments []model.Attachment) ([]gemini.Part, error) {
	var inlined strings.Builder
	var mediaParts []gemini.Part

	for _, att := range attachments {
		switch att.Kind {
		case model.AttachmentKindDocument:
			text, err := uc.extractor.Extract(ctx, bytes.NewReader(att.Data), att.ContentType)
			if err != nil {
				uc.l.Errorf(ctx, "assistant.usecase.buildUserParts: Extract failed for %s: %v", att.FileName, err)
				return nil, fmt.Errorf("%w: %s", assistant.ErrExtractionFailed, att.FileName)
			}
			inlined.WriteString(fmt.Sprintf(attachmentTemplate, att.FileName, text))
		case model.AttachmentKindImage:
			mediaParts = append(mediaParts, gemini.Part{
				InlineData: &gemini.InlineData{
					MimeType: att.ContentType,
					Data:     base64.StdEncoding.EncodeToString(att.Data),
				},
			})
		}
	}

	userText := message
	if inlined.Len() > 0 {
		userText = message + "\n" + inlined.String()
	}

	parts := make([]gemini.Part, 0, len(mediaParts)+1)
	parts = append(parts, gemini.Part{Text: userText})
	parts = append(parts, mediaParts...)
	return parts, nil
}

// retrieveContext searches the shared context collection for chunks
// relevant to the message. Retrieval failures degrade to an empty
// context rather than failing the turn.
func (uc *implUseCase) retrieveContext(ctx context.Context, message string) string {
	if uc.retrievalUC == nil {
		return ""
	}

	out, err := uc.retrievalUC.Search(ctx, retrieval.SearchInput{
		Query:    message,
		TopK:     uc.cfg.RetrievalTopK,
		MinScore: uc.cfg.SimilarityThreshold,
	})
	if err != nil {
		uc.l.Warnf(ctx, "assistant.usecase.retrieveContext: Search failed: %v", err)
		return ""
	}
	if len(out.Documents) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, doc := range out.Documents {
		sb.WriteString(doc.Content)
		sb.WriteString("\n---\n")
	}
	return sb.String()
}
