package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"jarayid-admin/domain/model"
	"jarayid-admin/domain/repository"
	"jarayid-admin/domain/snapshot"
	"jarayid-admin/infrastructure/logger"
)

var (
	ErrUnknownCountry = errors.New("unknown country")
	ErrUnknownSource  = errors.New("unknown source")

	// ErrSourcesNotLoaded means a save or toggle arrived before the
	// country's sources were loaded, so there is no baseline to diff
	// against.
	ErrSourcesNotLoaded = errors.New("sources not loaded for country")
)

// watchSourceFields is the dirty-detection watch-list for source rows.
// Display fields (name, URL) and the status flag are outside it.
var watchSourceFields = snapshot.WatchFields(
	func(r model.CountrySourceBinding) any { return r.ArticleCount },
	func(r model.CountrySourceBinding) any { return r.Sequence },
	func(r model.CountrySourceBinding) any { return r.Type },
	func(r model.CountrySourceBinding) any { return optInt64(r.JoiningWords) },
	func(r model.CountrySourceBinding) any { return r.IntroMusicPath },
)

func optInt64(p *int64) any {
	if p == nil {
		return nil
	}
	return *p
}

type ISourceUsecase interface {
	LoadCountries(ctx context.Context) ([]model.Country, error)
	ToggleCountry(ctx context.Context, countryID int64, operator string) (model.Country, error)
	LoadSources(ctx context.Context, countryID int64) ([]model.CountrySourceBinding, error)
	ToggleSource(ctx context.Context, countryID, sourceID int64, operator string) (model.CountrySourceBinding, error)
	SaveSources(ctx context.Context, countryID int64, edits []model.SourceEdit, operator string) (int, string, error)
}

type sourceUsecase struct {
	gateway   repository.ICountrySources
	reference repository.IReferenceData
	cache     repository.IReferenceCache
	audit     repository.IAuditLog

	mu        sync.Mutex
	countries map[int64]*model.Country
	order     []int64
	rows      map[int64][]*model.CountrySourceBinding
	baseline  map[int64][]model.CountrySourceBinding
}

func NewSourceUsecase(
	gateway repository.ICountrySources,
	reference repository.IReferenceData,
	cache repository.IReferenceCache,
	audit repository.IAuditLog,
) ISourceUsecase {
	return &sourceUsecase{
		gateway:   gateway,
		reference: reference,
		cache:     cache,
		audit:     audit,
		countries: map[int64]*model.Country{},
		rows:      map[int64][]*model.CountrySourceBinding{},
		baseline:  map[int64][]model.CountrySourceBinding{},
	}
}

func (u *sourceUsecase) countryCatalogue(ctx context.Context) ([]model.Category, error) {
	if u.cache != nil {
		if categories, ok := u.cache.GetCategories(ctx); ok {
			return onlyCountries(categories), nil
		}
	}
	categories, err := u.reference.GetCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	if u.cache != nil {
		u.cache.SetCategories(ctx, categories)
	}
	return onlyCountries(categories), nil
}

func onlyCountries(categories []model.Category) []model.Category {
	out := make([]model.Category, 0, len(categories))
	for _, c := range categories {
		if c.Type == "country" {
			out = append(out, c)
		}
	}
	return out
}

// LoadCountries joins the reference catalogue with the automation
// backend's saved country rows; countries never activated show INACTIVE
// with no remote ref.
func (u *sourceUsecase) LoadCountries(ctx context.Context) ([]model.Country, error) {
	catalogue, err := u.countryCatalogue(ctx)
	if err != nil {
		return nil, err
	}
	saved, err := u.gateway.GetCountries(ctx)
	if err != nil {
		return nil, fmt.Errorf("load saved countries: %w", err)
	}

	savedByCountry := make(map[int64]model.SavedCountry, len(saved))
	for _, s := range saved {
		savedByCountry[s.CountryID] = s
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	u.countries = make(map[int64]*model.Country, len(catalogue))
	u.order = make([]int64, 0, len(catalogue))
	for _, cat := range catalogue {
		country := &model.Country{
			ID:          cat.ID,
			CountryName: cat.Name,
			Status:      model.StatusInactive,
			Type:        "AUTO",
			Remote:      model.UnsavedRef(),
		}
		if s, ok := savedByCountry[cat.ID]; ok {
			country.Status = s.Status
			if s.Type != "" {
				country.Type = s.Type
			}
			country.Remote = model.SavedRef(s.ID)
			remoteID := s.ID
			country.RemoteID = &remoteID
		}
		u.countries[country.ID] = country
		u.order = append(u.order, country.ID)
	}
	return u.countriesLocked(), nil
}

func (u *sourceUsecase) countriesLocked() []model.Country {
	out := make([]model.Country, 0, len(u.order))
	for _, id := range u.order {
		out = append(out, *u.countries[id])
	}
	return out
}

// ToggleCountry performs the upsert-by-activation: first activation
// creates the remote row and remembers its id; later toggles update it.
func (u *sourceUsecase) ToggleCountry(ctx context.Context, countryID int64, operator string) (model.Country, error) {
	u.mu.Lock()
	country, ok := u.countries[countryID]
	u.mu.Unlock()
	if !ok {
		return model.Country{}, ErrUnknownCountry
	}

	if remoteID, saved := country.Remote.ID(); saved {
		next := country.Status.Toggled()
		if err := u.gateway.UpdateCountry(ctx, remoteID, next, operator); err != nil {
			return model.Country{}, err
		}
		u.mu.Lock()
		country.Status = next
		updated := *country
		u.mu.Unlock()
		u.auditAction(ctx, operator, "country.toggle", "country-sources", countryID, nil)
		return updated, nil
	}

	newID, err := u.gateway.CreateCountry(ctx, countryID, operator)
	if err != nil {
		return model.Country{}, err
	}
	u.mu.Lock()
	country.Status = model.StatusActive
	country.Remote = model.SavedRef(newID)
	country.RemoteID = &newID
	updated := *country
	u.mu.Unlock()
	u.auditAction(ctx, operator, "country.activate", "country-sources", countryID, nil)
	return updated, nil
}

// LoadSources merges the RSS catalogue with the automation backend's
// saved rows and captures the baseline snapshot used for dirty-delta
// detection on the next bulk save.
func (u *sourceUsecase) LoadSources(ctx context.Context, countryID int64) ([]model.CountrySourceBinding, error) {
	catalogue, err := u.reference.GetRssSourcesByCountry(ctx, countryID)
	if err != nil {
		return nil, fmt.Errorf("load rss catalogue: %w", err)
	}
	saved, err := u.gateway.GetSourcesByCountry(ctx, countryID)
	if err != nil {
		return nil, fmt.Errorf("load saved sources: %w", err)
	}

	savedBySource := make(map[int64]model.SavedSource, len(saved))
	for _, s := range saved {
		savedBySource[s.JarayidSourceID] = s
	}

	rows := make([]*model.CountrySourceBinding, 0, len(catalogue))
	for _, src := range catalogue {
		row := &model.CountrySourceBinding{
			ID:          src.ID,
			Source:      src.Name,
			NewsSource:  src.SourceURL,
			Status:      model.StatusInactive,
			RssSourceID: src.SourceID,
			Remote:      model.UnsavedRef(),
		}
		if s, ok := savedBySource[src.ID]; ok {
			row.Status = s.Status
			row.ArticleCount = s.ArticleCount
			row.Sequence = s.Sequence
			row.Type = s.Type
			row.JoiningWords = s.JoiningWords
			row.IntroMusicPath = s.IntroMusicPath
			row.Remote = model.SavedRef(s.ID)
			remoteID := s.ID
			row.RemoteID = &remoteID
		}
		rows = append(rows, row)
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	u.rows[countryID] = rows
	u.baseline[countryID] = copyRows(rows)
	return copyRows(rows), nil
}

func copyRows(rows []*model.CountrySourceBinding) []model.CountrySourceBinding {
	out := make([]model.CountrySourceBinding, 0, len(rows))
	for _, r := range rows {
		out = append(out, *r)
	}
	return out
}

// ToggleSource is the per-row upsert-by-activation. The remote id
// returned by the create is written back together with the flipped
// status, and the baseline follows so the toggle itself never shows up
// as a dirty delta.
func (u *sourceUsecase) ToggleSource(ctx context.Context, countryID, sourceID int64, operator string) (model.CountrySourceBinding, error) {
	u.mu.Lock()
	rows, ok := u.rows[countryID]
	u.mu.Unlock()
	if !ok {
		return model.CountrySourceBinding{}, ErrSourcesNotLoaded
	}

	var row *model.CountrySourceBinding
	for _, r := range rows {
		if r.ID == sourceID {
			row = r
			break
		}
	}
	if row == nil {
		return model.CountrySourceBinding{}, ErrUnknownSource
	}

	if remoteID, saved := row.Remote.ID(); saved {
		next := row.Status.Toggled()
		err := u.gateway.UpdateSource(ctx, remoteID, model.ToggleSourcePayload{
			JarayidRssSourceID: row.RssSourceID,
			Status:             next,
			Operator:           operator,
		})
		if err != nil {
			return model.CountrySourceBinding{}, err
		}
		u.mu.Lock()
		row.Status = next
		u.rebaselineLocked(countryID, row)
		updated := *row
		u.mu.Unlock()
		u.auditAction(ctx, operator, "source.toggle", "country-sources/sources", sourceID, nil)
		return updated, nil
	}

	newID, err := u.gateway.CreateSource(ctx, model.CreateSourcePayload{
		JarayidCountryID: countryID,
		JarayidSourceID:  sourceID,
		Operator:         operator,
	})
	if err != nil {
		return model.CountrySourceBinding{}, err
	}
	u.mu.Lock()
	row.Status = model.StatusActive
	row.Remote = model.SavedRef(newID)
	row.RemoteID = &newID
	u.rebaselineLocked(countryID, row)
	updated := *row
	u.mu.Unlock()
	u.auditAction(ctx, operator, "source.activate", "country-sources/source", sourceID, nil)
	return updated, nil
}

// rebaselineLocked folds one row's confirmed remote state back into the
// baseline snapshot.
func (u *sourceUsecase) rebaselineLocked(countryID int64, row *model.CountrySourceBinding) {
	base := u.baseline[countryID]
	for i := range base {
		if base[i].ID == row.ID {
			base[i] = *row
			return
		}
	}
	u.baseline[countryID] = append(base, *row)
}

// SaveSources applies the submitted edits, diffs the result against the
// load-time baseline and bulk-submits only the changed rows, shaped for
// the backend. The batch fully succeeds or fails as a whole.
func (u *sourceUsecase) SaveSources(ctx context.Context, countryID int64, edits []model.SourceEdit, operator string) (int, string, error) {
	u.mu.Lock()
	rows, ok := u.rows[countryID]
	if !ok {
		u.mu.Unlock()
		return 0, "", ErrSourcesNotLoaded
	}
	base := u.baseline[countryID]

	candidate := make([]model.CountrySourceBinding, 0, len(rows))
	index := make(map[int64]int, len(rows))
	for i, r := range rows {
		candidate = append(candidate, *r)
		index[r.ID] = i
	}
	for _, e := range edits {
		i, ok := index[e.ID]
		if !ok {
			u.mu.Unlock()
			return 0, "", ErrUnknownSource
		}
		candidate[i].ArticleCount = e.ArticleCount
		candidate[i].Sequence = e.Sequence
		candidate[i].Type = e.Type
		candidate[i].JoiningWords = e.JoiningWords
		candidate[i].IntroMusicPath = e.IntroMusicPath
	}
	u.mu.Unlock()

	changed := snapshot.Changed(base, candidate,
		func(r model.CountrySourceBinding) int64 { return r.ID },
		watchSourceFields,
	)
	if len(changed) == 0 {
		return 0, "no changes", nil
	}

	payload := make([]model.SourcePayload, 0, len(changed))
	for _, r := range changed {
		item := model.SourcePayload{
			JarayidSourceID:  r.ID,
			JarayidCountryID: countryID,
			ArticleCount:     r.ArticleCount,
			Sequence:         r.Sequence,
			Type:             r.Type,
			JoiningWords:     r.JoiningWords,
			IntroMusicPath:   r.IntroMusicPath,
			Operator:         operator,
		}
		if remoteID, saved := r.Remote.ID(); saved {
			id := remoteID
			item.ID = &id
		}
		payload = append(payload, item)
	}

	message, err := u.gateway.BulkUpdateSources(ctx, payload)
	if err != nil {
		return 0, "", err
	}

	// Commit the edits and advance the baseline only after the backend
	// confirmed the batch.
	u.mu.Lock()
	newRows := make([]*model.CountrySourceBinding, 0, len(candidate))
	for i := range candidate {
		r := candidate[i]
		newRows = append(newRows, &r)
	}
	u.rows[countryID] = newRows
	u.baseline[countryID] = append([]model.CountrySourceBinding(nil), candidate...)
	u.mu.Unlock()

	u.auditAction(ctx, operator, "source.bulk_save", "country-sources/bulk/sources", countryID, &message)
	return len(changed), message, nil
}

func (u *sourceUsecase) auditAction(ctx context.Context, operator, action, resource string, recordID int64, detail *string) {
	if u.audit == nil {
		return
	}
	err := u.audit.Record(ctx, []*model.OperatorAction{{
		Operator:  operator,
		Action:    action,
		Resource:  resource,
		RecordID:  &recordID,
		Detail:    detail,
		CreatedAt: time.Now().UTC(),
	}})
	if err != nil {
		logger.GetLogger().WithField("action", action).WithField("error", err).Warn("audit record failed")
	}
}
