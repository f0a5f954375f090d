package imagify

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// DownloadImage fetches the image at imageURL and writes it to path.
// Both HTTP(S) URLs and data URIs are supported. If client is nil,
// http.DefaultClient is used.
func DownloadImage(ctx context.Context, client *http.Client, imageURL, path string) error {
	if strings.HasPrefix(imageURL, "data:") {
		data, err := decodeDataURI(imageURL)
		if err != nil {
			return err
		}
		return os.WriteFile(path, data, 0o644)
	}

	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return fmt.Errorf("download image: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("download image: unexpected status %d", resp.StatusCode)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("download image: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		return fmt.Errorf("download image: %w", err)
	}
	return nil
}

// decodeDataURI extracts the payload of a base64 data URI.
func decodeDataURI(uri string) ([]byte, error) {
	_, rest, ok := strings.Cut(uri, ",")
	if !ok {
		return nil, fmt.Errorf("download image: malformed data URI")
	}
	data, err := base64.StdEncoding.DecodeString(rest)
	if err != nil {
		return nil, fmt.Errorf("download image: decode data URI: %w", err)
	}
	return data, nil
}
