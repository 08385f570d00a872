package automation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"jarayid-admin/infrastructure/logger"
)

// ErrNoVideoURL marks a render response that was accepted but carried no
// usable URL; callers treat it the same as a failed render.
var ErrNoVideoURL = errors.New("video generation response missing video url")

type generateNewsRequest struct {
	CountryID int64 `json:"country_id"`
}

// generateNewsResponse is the provider's own shape, not the automation
// envelope: a status word plus a results array.
type generateNewsResponse struct {
	Status  string `json:"status"`
	Results []struct {
		VideoURL string `json:"video_url"`
	} `json:"results"`
}

// GenerateNews triggers the external video render for a country's
// approved bulletin. Success needs HTTP 201, status "SUCCESS" and a
// non-empty results[0].video_url; anything else is a failure.
func (h *Host) GenerateNews(ctx context.Context, countryID int64) (string, error) {
	buf, err := json.Marshal(generateNewsRequest{CountryID: countryID})
	if err != nil {
		return "", fmt.Errorf("marshal generate-news request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.base+"heygen/generate-news", bytes.NewReader(buf))
	if err != nil {
		return "", fmt.Errorf("build generate-news request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("generate-news: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("generate-news: read body: %w", err)
	}

	var out generateNewsResponse
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &out)
	}

	if resp.StatusCode != http.StatusCreated || out.Status != "SUCCESS" {
		logger.GetLogger().
			WithField("country_id", countryID).
			WithField("http_status", resp.StatusCode).
			WithField("provider_status", out.Status).
			Warn("video generation failed")
		return "", fmt.Errorf("generate-news: render failed (http %d, status %q)", resp.StatusCode, out.Status)
	}
	if len(out.Results) == 0 || out.Results[0].VideoURL == "" {
		return "", ErrNoVideoURL
	}
	return out.Results[0].VideoURL, nil
}
