package repository

import (
	"context"

	"jarayid-admin/domain/model"
)

// IReferenceData reads the legacy admin-dashboard catalogue used to fill
// country and source dropdowns.
type IReferenceData interface {
	GetCategories(ctx context.Context) ([]model.Category, error)
	GetCountries(ctx context.Context) ([]model.Category, error)
	GetRssSourcesByCountry(ctx context.Context, countryID int64) ([]model.RssSource, error)
}

// IReferenceCache caches catalogue responses; reference data changes
// rarely and the legacy API is slow.
type IReferenceCache interface {
	GetCategories(ctx context.Context) ([]model.Category, bool)
	SetCategories(ctx context.Context, categories []model.Category)
}
