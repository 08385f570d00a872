package automation

import (
	"context"
	"fmt"

	"jarayid-admin/domain/model"
)

func (h *Host) GetCountries(ctx context.Context) ([]model.SavedCountry, error) {
	var countries []model.SavedCountry
	if err := h.get(ctx, "country-sources", &countries); err != nil {
		return nil, err
	}
	return countries, nil
}

type createCountryPayload struct {
	CountryID int64  `json:"country_id"`
	Operator  string `json:"operator"`
}

func (h *Host) CreateCountry(ctx context.Context, countryID int64, operator string) (int64, error) {
	env, err := h.create(ctx, "country-sources", createCountryPayload{CountryID: countryID, Operator: operator})
	if err != nil {
		return 0, err
	}
	return createdID(env)
}

type updateCountryPayload struct {
	Status   model.RowStatus `json:"status"`
	Operator string          `json:"operator"`
}

func (h *Host) UpdateCountry(ctx context.Context, remoteID int64, status model.RowStatus, operator string) error {
	_, err := h.update(ctx, fmt.Sprintf("country-sources/%d", remoteID), updateCountryPayload{Status: status, Operator: operator})
	return err
}

func (h *Host) GetSourcesByCountry(ctx context.Context, countryID int64) ([]model.SavedSource, error) {
	var sources []model.SavedSource
	if err := h.get(ctx, fmt.Sprintf("country-sources/sources/%d", countryID), &sources); err != nil {
		return nil, err
	}
	return sources, nil
}

func (h *Host) CreateSource(ctx context.Context, payload model.CreateSourcePayload) (int64, error) {
	env, err := h.create(ctx, "country-sources/source", payload)
	if err != nil {
		return 0, err
	}
	return createdID(env)
}

func (h *Host) UpdateSource(ctx context.Context, remoteID int64, payload model.ToggleSourcePayload) error {
	_, err := h.update(ctx, fmt.Sprintf("country-sources/sources/%d", remoteID), payload)
	return err
}

type bulkSourcesPayload struct {
	Items []model.SourcePayload `json:"items"`
}

// BulkUpdateSources submits the changed subset of a country's source rows
// in one call. The batch either fully succeeds or fails as a whole; the
// backend does not report per-item outcomes.
func (h *Host) BulkUpdateSources(ctx context.Context, items []model.SourcePayload) (string, error) {
	env, err := h.update(ctx, "country-sources/bulk/sources", bulkSourcesPayload{Items: items})
	if err != nil {
		return "", err
	}
	return env.Message, nil
}
