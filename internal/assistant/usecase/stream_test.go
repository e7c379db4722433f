package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"assistant-srv/internal/assistant"
	"assistant-srv/internal/assistant/repository"
	"assistant-srv/internal/model"
	"assistant-srv/internal/retrieval"
	"assistant-srv/pkg/gemini"
	"assistant-srv/pkg/log"
)

// fakeAttachmentRepo stubs the attachment store for usecase tests.
type fakeAttachmentRepo struct {
	mu          sync.Mutex
	attachments []model.Attachment
	takeCalls   int
}

func (f *fakeAttachmentRepo) Add(ctx context.Context, att model.Attachment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.attachments = append(f.attachments, att)
	return nil
}

func (f *fakeAttachmentRepo) GetAll(ctx context.Context, conversationID string) ([]model.Attachment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.Attachment(nil), f.attachments...), nil
}

func (f *fakeAttachmentRepo) Remove(ctx context.Context, conversationID, attachmentID string) error {
	return repository.ErrAttachmentNotFound
}

func (f *fakeAttachmentRepo) Take(ctx context.Context, conversationID string) ([]model.Attachment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.takeCalls++
	taken := f.attachments
	f.attachments = nil
	return taken, nil
}

func (f *fakeAttachmentRepo) Clear(ctx context.Context, conversationID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.attachments = nil
	return nil
}

// fakeMemoryRepo records appended messages and serves a preset history.
type fakeMemoryRepo struct {
	mu       sync.Mutex
	history  []model.Message
	appended []model.Message
}

func (f *fakeMemoryRepo) Append(ctx context.Context, opt repository.AppendMessageOptions) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.appended = append(f.appended, opt.Message)
	return nil
}

func (f *fakeMemoryRepo) List(ctx context.Context, opt repository.ListMessagesOptions) ([]model.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.Message(nil), f.history...), nil
}

func (f *fakeMemoryRepo) Clear(ctx context.Context, conversationID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.history = nil
	return nil
}

func (f *fakeMemoryRepo) recorded() []model.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.Message(nil), f.appended...)
}

// fakeGemini replays canned chunks and captures the assembled request.
type fakeGemini struct {
	mu      sync.Mutex
	chunks  []gemini.StreamChunk
	err     error
	lastReq gemini.Request
	calls   int
}

func (f *fakeGemini) Generate(ctx context.Context, prompt string) (string, error) {
	return "", errors.New("not implemented")
}

func (f *fakeGemini) GenerateStream(ctx context.Context, req gemini.Request) (<-chan gemini.StreamChunk, error) {
	f.mu.Lock()
	f.lastReq = req
	f.calls++
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := make(chan gemini.StreamChunk, len(f.chunks))
	for _, c := range f.chunks {
		out <- c
	}
	close(out)
	return out, nil
}

func (f *fakeGemini) request() gemini.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastReq
}

func (f *fakeGemini) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// fakeExtractor returns fixed text for every document.
type fakeExtractor struct {
	text string
	err  error
}

func (f *fakeExtractor) Extract(ctx context.Context, reader io.Reader, contentType string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

// fakeRetrieval serves preset documents.
type fakeRetrieval struct {
	docs []retrieval.RetrievedDocument
	err  error
}

func (f *fakeRetrieval) Search(ctx context.Context, input retrieval.SearchInput) (retrieval.SearchOutput, error) {
	if f.err != nil {
		return retrieval.SearchOutput{}, f.err
	}
	return retrieval.SearchOutput{Documents: f.docs}, nil
}

type testDeps struct {
	attachRepo *fakeAttachmentRepo
	memoryRepo *fakeMemoryRepo
	gemini     *fakeGemini
	extractor  *fakeExtractor
	retrieval  *fakeRetrieval
}

func newTestUseCase(cfg Config, deps testDeps) (*implUseCase, testDeps) {
	if deps.attachRepo == nil {
		deps.attachRepo = &fakeAttachmentRepo{}
	}
	if deps.memoryRepo == nil {
		deps.memoryRepo = &fakeMemoryRepo{}
	}
	if deps.gemini == nil {
		deps.gemini = &fakeGemini{chunks: []gemini.StreamChunk{{Done: true}}}
	}
	if deps.extractor == nil {
		deps.extractor = &fakeExtractor{}
	}
	if deps.retrieval == nil {
		deps.retrieval = &fakeRetrieval{}
	}
	uc := New(
		cfg,
		deps.attachRepo,
		deps.memoryRepo,
		deps.retrieval,
		deps.gemini,
		deps.extractor,
		log.Init(log.ZapConfig{Level: "error"}),
	).(*implUseCase)
	return uc, deps
}

func collectEvents(t *testing.T, events <-chan assistant.StreamEvent) []assistant.StreamEvent {
	t.Helper()
	var out []assistant.StreamEvent
	timeout := time.After(2 * time.Second)
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return out
			}
			out = append(out, ev)
		case <-timeout:
			t.Fatal("timed out waiting for stream events")
		}
	}
}

func TestStreamValidation(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCase(Config{}, testDeps{})

	cases := []struct {
		name  string
		input assistant.StreamInput
		want  error
	}{
		{
			name:  "missing conversation id",
			input: assistant.StreamInput{Message: "hello"},
			want:  assistant.ErrConversationRequired,
		},
		{
			name:  "empty message",
			input: assistant.StreamInput{ConversationID: "conv-1", Message: "   "},
			want:  assistant.ErrMessageEmpty,
		},
		{
			name:  "message too long",
			input: assistant.StreamInput{ConversationID: "conv-1", Message: strings.Repeat("a", assistant.MaxMessageLength+1)},
			want:  assistant.ErrMessageTooLong,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Stream(ctx, tc.input)
			if !errors.Is(err, tc.want) {
				t.Errorf("Stream returned %v, want %v", err, tc.want)
			}
		})
	}
}

func TestStreamDeliversDeltasAndRecordsTurn(t *testing.T) {
	ctx := context.Background()
	uc, deps := newTestUseCase(Config{}, testDeps{
		gemini: &fakeGemini{chunks: []gemini.StreamChunk{
			{Delta: "Hello"},
			{Delta: " world"},
			{Done: true},
		}},
	})

	events, err := uc.Stream(ctx, assistant.StreamInput{ConversationID: "conv-1", Message: "hi"})
	if err != nil {
		t.Fatalf("Stream failed: %v", err)
	}

	got := collectEvents(t, events)
	if len(got) != 3 {
		t.Fatalf("got %d events, want 3: %+v", len(got), got)
	}
	if got[0].Delta != "Hello" || got[1].Delta != " world" {
		t.Errorf("unexpected deltas: %+v", got)
	}
	if !got[2].Done || got[2].Err != nil {
		t.Errorf("terminal event should be clean Done, got %+v", got[2])
	}

	recorded := deps.memoryRepo.recorded()
	if len(recorded) != 2 {
		t.Fatalf("recorded %d messages, want 2", len(recorded))
	}
	if recorded[0].Role != model.RoleUser || recorded[0].Content != "hi" {
		t.Errorf("user message not recorded: %+v", recorded[0])
	}
	if recorded[1].Role != model.RoleAssistant || recorded[1].Content != "Hello world" {
		t.Errorf("assistant message not recorded: %+v", recorded[1])
	}
}

func TestStreamLLMFailure(t *testing.T) {
	ctx := context.Background()

	t.Run("stream start failure", func(t *testing.T) {
		uc, _ := newTestUseCase(Config{}, testDeps{
			gemini: &fakeGemini{err: errors.New("boom")},
		})

		_, err := uc.Stream(ctx, assistant.StreamInput{ConversationID: "conv-1", Message: "hi"})
		if !errors.Is(err, assistant.ErrLLMFailed) {
			t.Errorf("Stream returned %v, want ErrLLMFailed", err)
		}

		// Gate must be released after a failed start.
		if !uc.acquireStream("conv-1") {
			t.Error("stream gate still held after failure")
		}
		uc.releaseStream("conv-1")
	})

	t.Run("mid-stream failure emits terminal error", func(t *testing.T) {
		uc, deps := newTestUseCase(Config{}, testDeps{
			gemini: &fakeGemini{chunks: []gemini.StreamChunk{
				{Delta: "partial"},
				{Err: errors.New("connection reset"), Done: true},
			}},
		})

		events, err := uc.Stream(ctx, assistant.StreamInput{ConversationID: "conv-1", Message: "hi"})
		if err != nil {
			t.Fatalf("Stream failed: %v", err)
		}

		got := collectEvents(t, events)
		last := got[len(got)-1]
		if !errors.Is(last.Err, assistant.ErrLLMFailed) || !last.Done {
			t.Errorf("terminal event %+v, want Done with ErrLLMFailed", last)
		}

		// Failed turns are not recorded.
		if recorded := deps.memoryRepo.recorded(); len(recorded) != 0 {
			t.Errorf("failed turn recorded: %+v", recorded)
		}
	})
}

func TestStreamGate(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCase(Config{}, testDeps{})

	if !uc.acquireStream("conv-1") {
		t.Fatal("first acquire should succeed")
	}

	_, err := uc.Stream(ctx, assistant.StreamInput{ConversationID: "conv-1", Message: "hi"})
	if !errors.Is(err, assistant.ErrStreamInProgress) {
		t.Errorf("Stream returned %v, want ErrStreamInProgress", err)
	}

	// Other conversations are unaffected.
	events, err := uc.Stream(ctx, assistant.StreamInput{ConversationID: "conv-2", Message: "hi"})
	if err != nil {
		t.Fatalf("Stream on conv-2 failed: %v", err)
	}
	collectEvents(t, events)

	uc.releaseStream("conv-1")
	events, err = uc.Stream(ctx, assistant.StreamInput{ConversationID: "conv-1", Message: "hi"})
	if err != nil {
		t.Fatalf("Stream after release failed: %v", err)
	}
	collectEvents(t, events)
}

func TestStreamBlockedTerms(t *testing.T) {
	ctx := context.Background()
	uc, deps := newTestUseCase(Config{BlockedTerms: []string{"violence"}}, testDeps{
		attachRepo: &fakeAttachmentRepo{attachments: []model.Attachment{
			{ID: "att-1", ConversationID: "conv-1", FileName: "notes.txt", ContentType: "text/plain", Kind: model.AttachmentKindDocument},
		}},
	})

	events, err := uc.Stream(ctx, assistant.StreamInput{ConversationID: "conv-1", Message: "tell me about VIOLENCE please"})
	if err != nil {
		t.Fatalf("Stream failed: %v", err)
	}

	got := collectEvents(t, events)
	if len(got) != 2 {
		t.Fatalf("got %d events, want refusal delta plus done: %+v", len(got), got)
	}
	if got[0].Delta != blockedResponse {
		t.Errorf("refusal delta %q, want %q", got[0].Delta, blockedResponse)
	}
	if !got[1].Done {
		t.Error("missing terminal Done event")
	}

	// The model is never called for a blocked message.
	if deps.gemini.callCount() != 0 {
		t.Errorf("gemini called %d times for a blocked message", deps.gemini.callCount())
	}

	// The refusal is still part of the conversation history.
	recorded := deps.memoryRepo.recorded()
	if len(recorded) != 2 || recorded[1].Content != blockedResponse {
		t.Errorf("blocked turn not recorded: %+v", recorded)
	}

	// A refused turn still consumes pending attachments so they cannot
	// ride into the next message.
	if deps.attachRepo.takeCalls != 1 {
		t.Errorf("Take called %d times for the blocked turn, want 1", deps.attachRepo.takeCalls)
	}
	if left, _ := deps.attachRepo.GetAll(ctx, "conv-1"); len(left) != 0 {
		t.Errorf("attachments remain after the blocked turn: %+v", left)
	}

	// Gate is free for the next turn.
	events, err = uc.Stream(ctx, assistant.StreamInput{ConversationID: "conv-1", Message: "hello"})
	if err != nil {
		t.Fatalf("Stream after blocked turn failed: %v", err)
	}
	collectEvents(t, events)
}

func TestStreamConsumesAttachmentsOnce(t *testing.T) {
	ctx := context.Background()
	uc, deps := newTestUseCase(Config{}, testDeps{
		attachRepo: &fakeAttachmentRepo{attachments: []model.Attachment{
			{ID: "att-1", ConversationID: "conv-1", FileName: "notes.txt", ContentType: "text/plain", Kind: model.AttachmentKindDocument},
		}},
		extractor: &fakeExtractor{text: "file content"},
	})

	events, err := uc.Stream(ctx, assistant.StreamInput{ConversationID: "conv-1", Message: "summarize"})
	if err != nil {
		t.Fatalf("Stream failed: %v", err)
	}
	collectEvents(t, events)

	if deps.attachRepo.takeCalls != 1 {
		t.Errorf("Take called %d times, want 1", deps.attachRepo.takeCalls)
	}
	if left, _ := deps.attachRepo.GetAll(ctx, "conv-1"); len(left) != 0 {
		t.Errorf("attachments remain after the turn: %+v", left)
	}
}
