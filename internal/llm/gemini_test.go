package llm

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0x0BSoD/moroccoTime/internal/model"
)

const groundedResponse = `{
  "candidates": [{
    "content": {"role": "model", "parts": [{"text": "  3:15 PM  "}]},
    "groundingMetadata": {
      "groundingChunks": [
        {"web": {"uri": "https://a", "title": "A"}},
        {"web": {"uri": "", "title": "B"}},
        {}
      ]
    }
  }]
}`

func TestGeminiGenerator_Generate(t *testing.T) {
	var gotPath, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotPath, gotBody = r.URL.Path, string(body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, groundedResponse)
	}))
	defer srv.Close()

	g, err := NewGeminiGenerator(context.Background(), "test-key", srv.URL)
	require.NoError(t, err)

	resp, err := g.Generate(context.Background(), Request{
		Model:     "gemini-2.5-flash",
		Prompt:    "what time is it",
		WebSearch: true,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(gotPath, "models/gemini-2.5-flash:generateContent"), gotPath)
	assert.Contains(t, gotBody, "googleSearch")
	assert.Contains(t, gotBody, "what time is it")

	assert.Equal(t, "  3:15 PM  ", resp.Text)
	assert.Equal(t, []model.Citation{
		{URI: "https://a", Title: "A"},
		{URI: "", Title: "B"},
		{},
	}, resp.Citations)
}

func TestGeminiGenerator_NoGrounding(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":"noon"}]}}]}`)
	}))
	defer srv.Close()

	g, err := NewGeminiGenerator(context.Background(), "test-key", srv.URL)
	require.NoError(t, err)

	resp, err := g.Generate(context.Background(), Request{Model: "gemini-2.5-flash", Prompt: "p"})
	require.NoError(t, err)

	assert.Equal(t, "noon", resp.Text)
	assert.Empty(t, resp.Citations)
}

func TestGeminiGenerator_ServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"error":{"code":500,"message":"backend exploded","status":"INTERNAL"}}`)
	}))
	defer srv.Close()

	g, err := NewGeminiGenerator(context.Background(), "test-key", srv.URL)
	require.NoError(t, err)

	_, err = g.Generate(context.Background(), Request{Model: "gemini-2.5-flash", Prompt: "p", WebSearch: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backend exploded")
}
