package utils

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingClient struct {
	calls atomic.Int32
}

func (c *countingClient) Generate(ctx context.Context, prompt string, grounded bool) (string, error) {
	c.calls.Add(1)
	return "ok", nil
}

func TestRateLimitedGenerationClient_WaitRespectsContext(t *testing.T) {
	inner := &countingClient{}
	client := NewRateLimitedGenerationClient(inner, 1)

	out, err := client.Generate(context.Background(), "p", true)
	require.NoError(t, err)
	assert.Equal(t, "ok", out)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = client.Generate(ctx, "p", true)
	assert.Error(t, err)
	assert.Equal(t, int32(1), inner.calls.Load())
}

func TestRateLimitedGenerationClient_Disabled(t *testing.T) {
	inner := &countingClient{}
	assert.Same(t, inner, NewRateLimitedGenerationClient(inner, 0))
}

func TestOpenAIGenerationClient_Generate(t *testing.T) {
	var gotSystem atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)

		var body struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		for _, m := range body.Messages {
			if m.Role == "system" {
				gotSystem.Store(true)
			}
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"cmpl-1","object":"chat.completion","created":1,"model":"gpt-4o-mini",
			"choices":[{"index":0,"message":{"role":"assistant","content":"  Day 1: Kakadu National Park  "},"finish_reason":"stop"}]}`))
	}))
	defer srv.Close()

	client := NewOpenAIGenerationClient("test-key", "", srv.URL+"/v1")
	out, err := client.Generate(context.Background(), "plan my trip", true)

	require.NoError(t, err)
	assert.Equal(t, "Day 1: Kakadu National Park", out)
	assert.True(t, gotSystem.Load())
}

func TestOpenAIGenerationClient_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"quota exceeded","type":"rate_limit"}}`))
	}))
	defer srv.Close()

	client := NewOpenAIGenerationClient("test-key", "gpt-4o-mini", srv.URL+"/v1")

	_, err := client.Generate(context.Background(), "plan my trip", false)
	assert.Error(t, err)

	_, err = client.Generate(context.Background(), "   ", false)
	assert.Error(t, err)
}

func TestGeminiText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{genai.Text("Day 1: "), genai.Text("Mindil Beach")}},
		}},
	}
	assert.Equal(t, "Day 1: Mindil Beach", geminiText(resp))
	assert.Equal(t, "", geminiText(&genai.GenerateContentResponse{}))
	assert.Equal(t, "", geminiText(nil))
}
