// Package automation is the typed client for the Jarayid automation
// backend. Every mutating call follows one success convention: reads and
// updates need HTTP 200 and a body statusCode of 200, creates need HTTP
// 201 and a body statusCode of 201. Either check failing is an error,
// even when the other holds. There is no retry policy; a failed call
// surfaces directly to the caller.
package automation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"jarayid-admin/domain/model"
	"jarayid-admin/infrastructure/logger"
)

type Host struct {
	base   string
	client *http.Client
}

// NewHost validates the configured base URL up front; a malformed URL is
// a startup-time error, not something to discover on the first call.
func NewHost(base string, timeout time.Duration) (*Host, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parse automation base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return nil, fmt.Errorf("invalid automation base url %q", base)
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Host{
		base:   strings.TrimSuffix(u.String(), "/") + "/",
		client: &http.Client{Timeout: timeout},
	}, nil
}

func (h *Host) do(ctx context.Context, method, path string, body any, wantHTTP, wantBody int) (*model.Envelope, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.base+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: read body: %w", method, path, err)
	}

	var env model.Envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			return nil, fmt.Errorf("%s %s: decode envelope: %w", method, path, err)
		}
	}

	if resp.StatusCode != wantHTTP || env.StatusCode != wantBody {
		logger.GetLogger().
			WithField("method", method).
			WithField("path", path).
			WithField("http_status", resp.StatusCode).
			WithField("body_status", env.StatusCode).
			Warn("automation call failed")
		msg := env.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, fmt.Errorf("%s %s: remote failure (http %d, statusCode %d): %s",
			method, path, resp.StatusCode, env.StatusCode, msg)
	}
	return &env, nil
}

// get fetches a list or detail resource; HTTP 200 exactly.
func (h *Host) get(ctx context.Context, path string, out any) error {
	env, err := h.do(ctx, http.MethodGet, path, nil, http.StatusOK, http.StatusOK)
	if err != nil {
		return err
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("GET %s: decode data: %w", path, err)
	}
	return nil
}

// update issues a PUT; HTTP 200 and body statusCode 200.
func (h *Host) update(ctx context.Context, path string, body any) (*model.Envelope, error) {
	return h.do(ctx, http.MethodPut, path, body, http.StatusOK, http.StatusOK)
}

// create issues a POST; HTTP 201 and body statusCode 201.
func (h *Host) create(ctx context.Context, path string, body any) (*model.Envelope, error) {
	return h.do(ctx, http.MethodPost, path, body, http.StatusCreated, http.StatusCreated)
}

// createdID pulls the new remote identifier out of a create response.
func createdID(env *model.Envelope) (int64, error) {
	var data struct {
		ID int64 `json:"id"`
	}
	if len(env.Data) == 0 {
		return 0, fmt.Errorf("create response carried no data")
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return 0, fmt.Errorf("decode created id: %w", err)
	}
	if data.ID == 0 {
		return 0, fmt.Errorf("create response missing id")
	}
	return data.ID, nil
}
