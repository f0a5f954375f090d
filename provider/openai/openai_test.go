package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openai/openai-go/option"
	"github.com/spetersoncode/imagify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(url string) *Client {
	return New("test-key",
		WithBaseURL(url),
		WithRequestOptions(option.WithMaxRetries(0)),
	)
}

func TestGenerateImage(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "/images/generations")
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"created": 1700000000,
			"data": []map[string]any{
				{
					"url":            "https://cdn.example.com/img.png",
					"revised_prompt": "a detailed red fox in fresh snow",
				},
			},
		})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	result, err := client.GenerateImage(context.Background(), "a red fox in snow",
		imagify.WithImageSize(imagify.ImageSize1792x1024),
		imagify.WithImageQuality(imagify.ImageQualityHD),
		imagify.WithImageStyle(imagify.ImageStyleNatural),
	)
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/img.png", result.ImageURL)
	assert.Equal(t, "a detailed red fox in fresh snow", result.RevisedPrompt)
	assert.Equal(t, imagify.ProviderOpenAI, result.Provider)
	assert.False(t, result.IsMock)

	assert.Equal(t, "dall-e-3", gotBody["model"])
	assert.Equal(t, "a red fox in snow", gotBody["prompt"])
	assert.Equal(t, float64(1), gotBody["n"])
	assert.Equal(t, "1792x1024", gotBody["size"])
	assert.Equal(t, "hd", gotBody["quality"])
	assert.Equal(t, "natural", gotBody["style"])
}

func TestGenerateImage_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": {"message": "overloaded", "type": "server_error"}}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.GenerateImage(context.Background(), "a red fox")
	require.Error(t, err)

	pe, ok := imagify.AsProviderError(err)
	require.True(t, ok)
	assert.Equal(t, imagify.KindHTTPStatus, pe.Kind)
	assert.Equal(t, http.StatusInternalServerError, pe.Status)
	assert.Equal(t, imagify.ProviderOpenAI, pe.Provider)
}

func TestGenerateImage_EmptyData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"created": 1700000000, "data": []}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.GenerateImage(context.Background(), "a red fox")
	require.Error(t, err)

	pe, ok := imagify.AsProviderError(err)
	require.True(t, ok)
	assert.Equal(t, imagify.KindMalformedResponse, pe.Kind)
}

func TestGenerateImage_NetworkFailure(t *testing.T) {
	// Closed server: the request cannot complete at the transport level.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.GenerateImage(context.Background(), "a red fox")
	require.Error(t, err)

	pe, ok := imagify.AsProviderError(err)
	require.True(t, ok)
	assert.Equal(t, imagify.KindNetwork, pe.Kind)
}

func TestGenerateImage_ModelOverride(t *testing.T) {
	var gotModel string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		gotModel, _ = body["model"].(string)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"created": 1, "data": [{"url": "https://cdn.example.com/img.png"}]}`))
	}))
	defer srv.Close()

	client := New("test-key",
		WithBaseURL(srv.URL),
		WithModel("dall-e-2"),
		WithRequestOptions(option.WithMaxRetries(0)),
	)
	_, err := client.GenerateImage(context.Background(), "a red fox",
		imagify.WithImageModel("gpt-image-1"))
	require.NoError(t, err)

	// Per-request model wins over the client default.
	assert.Equal(t, "gpt-image-1", gotModel)
}
