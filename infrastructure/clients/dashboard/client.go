// Package dashboard is the client for the legacy admin-dashboard API that
// owns the category/country/RSS catalogue. Responses are a bare {data}
// wrapper, not the automation envelope; list fetches require HTTP 200
// exactly.
package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"jarayid-admin/domain/model"
)

type Client struct {
	base   string
	client *http.Client
}

func NewClient(base string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parse dashboard base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return nil, fmt.Errorf("invalid dashboard base url %q", base)
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		base:   strings.TrimSuffix(u.String(), "/") + "/",
		client: &http.Client{Timeout: timeout},
	}, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("GET %s: read body: %w", path, err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: http %d", path, resp.StatusCode)
	}

	var wrapper struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return fmt.Errorf("GET %s: decode body: %w", path, err)
	}
	if len(wrapper.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(wrapper.Data, out); err != nil {
		return fmt.Errorf("GET %s: decode data: %w", path, err)
	}
	return nil
}

func (c *Client) GetCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := c.get(ctx, "admin-dashboard/getCategories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// GetCountries filters the catalogue down to rows typed "country"; the
// legacy API keeps countries and categories in one table.
func (c *Client) GetCountries(ctx context.Context) ([]model.Category, error) {
	categories, err := c.GetCategories(ctx)
	if err != nil {
		return nil, err
	}
	countries := make([]model.Category, 0, len(categories))
	for _, cat := range categories {
		if cat.Type == "country" {
			countries = append(countries, cat)
		}
	}
	return countries, nil
}

func (c *Client) GetRssSourcesByCountry(ctx context.Context, countryID int64) ([]model.RssSource, error) {
	var rows []struct {
		RssCategoriesUrls []model.RssSource `json:"rssCategoriesUrls"`
	}
	if err := c.get(ctx, fmt.Sprintf("admin-dashboard/getRssSourcesByID/%d", countryID), &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0].RssCategoriesUrls, nil
}
