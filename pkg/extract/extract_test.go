package extract

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestExtractPlainText(t *testing.T) {
	ctx := context.Background()
	e := NewExtractor(ExtractorConfig{})

	cases := []struct {
		name        string
		contentType string
	}{
		{"text/plain", "text/plain"},
		{"text/markdown", "text/markdown"},
		{"application/json", "application/json"},
		{"application/xml", "application/xml"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := e.Extract(ctx, strings.NewReader("hello world"), tc.contentType)
			if err != nil {
				t.Fatalf("Extract failed: %v", err)
			}
			if got != "hello world" {
				t.Errorf("Extract returned %q, want passthrough", got)
			}
		})
	}
}

func TestExtractUnsupportedWithoutTika(t *testing.T) {
	ctx := context.Background()
	e := NewExtractor(ExtractorConfig{})

	_, err := e.Extract(ctx, strings.NewReader("%PDF-1.4"), "application/pdf")
	if !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("Extract returned %v, want ErrUnsupportedType", err)
	}
}

func TestExtractWithTika(t *testing.T) {
	ctx := context.Background()

	t.Run("binary document goes to tika", func(t *testing.T) {
		var gotPath, gotAccept, gotContentType string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotAccept = r.Header.Get("Accept")
			gotContentType = r.Header.Get("Content-Type")
			io.Copy(io.Discard, r.Body)
			w.Write([]byte("extracted text"))
		}))
		defer srv.Close()

		e := NewExtractor(ExtractorConfig{TikaURL: srv.URL})
		got, err := e.Extract(ctx, strings.NewReader("%PDF-1.4"), "application/pdf")
		if err != nil {
			t.Fatalf("Extract failed: %v", err)
		}
		if got != "extracted text" {
			t.Errorf("Extract returned %q, want tika response", got)
		}
		if gotPath != "/tika" {
			t.Errorf("request path %s, want /tika", gotPath)
		}
		if gotAccept != "text/plain" {
			t.Errorf("Accept header %s, want text/plain", gotAccept)
		}
		if gotContentType != "application/pdf" {
			t.Errorf("Content-Type header %s, want application/pdf", gotContentType)
		}
	})

	t.Run("tika error status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
		}))
		defer srv.Close()

		e := NewExtractor(ExtractorConfig{TikaURL: srv.URL})
		_, err := e.Extract(ctx, strings.NewReader("junk"), "application/pdf")
		if !errors.Is(err, ErrExtractionFailed) {
			t.Errorf("Extract returned %v, want ErrExtractionFailed", err)
		}
	})
}
