package google

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spetersoncode/imagify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, url string) *Client {
	t.Helper()
	client, err := New(context.Background(), "test-key", WithBaseURL(url))
	require.NoError(t, err)
	return client
}

func TestGenerateImage(t *testing.T) {
	payload := []byte{0x89, 0x50, 0x4e, 0x47}
	var gotPath string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{
					"content": map[string]any{
						"parts": []map[string]any{
							{"text": "Here is your image:"},
							{"inlineData": map[string]any{
								"mimeType": "image/png",
								"data":     base64.StdEncoding.EncodeToString(payload),
							}},
						},
					},
				},
			},
		})
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	result, err := client.GenerateImage(context.Background(), "a watercolor lighthouse")
	require.NoError(t, err)

	want := "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)
	assert.Equal(t, want, result.ImageURL)
	assert.Equal(t, "a watercolor lighthouse", result.RevisedPrompt)
	assert.Equal(t, imagify.ProviderGemini, result.Provider)
	assert.False(t, result.IsMock)

	assert.Contains(t, gotPath, "gemini-2.0-flash-exp-image-generation")

	// The prompt is wrapped in an image generation instruction and both
	// modalities are requested.
	raw, err := json.Marshal(gotBody)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Generate an image of: a watercolor lighthouse")
	assert.Contains(t, string(raw), "Image")
}

func TestGenerateImage_NoImageInResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates": [{"content": {"parts": [{"text": "I cannot draw that."}]}}]}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	_, err := client.GenerateImage(context.Background(), "anything")
	require.Error(t, err)

	pe, ok := imagify.AsProviderError(err)
	require.True(t, ok)
	assert.Equal(t, imagify.KindNoImage, pe.Kind)
	assert.Equal(t, imagify.ProviderGemini, pe.Provider)
}

func TestGenerateImage_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": {"code": 400, "message": "invalid model", "status": "INVALID_ARGUMENT"}}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	_, err := client.GenerateImage(context.Background(), "anything")
	require.Error(t, err)

	pe, ok := imagify.AsProviderError(err)
	require.True(t, ok)
	assert.Equal(t, imagify.KindHTTPStatus, pe.Kind)
	assert.Equal(t, http.StatusBadRequest, pe.Status)
}

func TestGenerateImage_ModelOverride(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates": [{"content": {"parts": [{"inlineData": {"mimeType": "image/png", "data": "iVBO"}}]}}]}`))
	}))
	defer srv.Close()

	client, err := New(context.Background(), "test-key",
		WithBaseURL(srv.URL), WithModel("gemini-test-model"))
	require.NoError(t, err)

	_, err = client.GenerateImage(context.Background(), "anything")
	require.NoError(t, err)
	assert.Contains(t, gotPath, "gemini-test-model")
}
