package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"jarayid-admin/domain/model"
	"jarayid-admin/domain/repository"
	"jarayid-admin/domain/snapshot"
	"jarayid-admin/infrastructure/logger"
)

var (
	ErrUnknownSchedulerRow = errors.New("unknown scheduler row")

	// ErrSchedulersNotLoaded means a toggle or save arrived before the
	// scheduler table was loaded.
	ErrSchedulersNotLoaded = errors.New("schedulers not loaded")
)

const (
	keyUploadTime      = "UPLOAD_TIME"
	keyUploadFrequency = "UPLOAD_FREQUENCY"
)

// watchSchedulerFields covers every platform cell of a row. The status
// flag has its own toggle flow and stays outside the watch-list.
var watchSchedulerFields = snapshot.WatchFields(buildSchedulerExtractors()...)

func buildSchedulerExtractors() []func(model.SchedulerRow) any {
	var fields []func(model.SchedulerRow) any
	for _, p := range model.Platforms {
		platform := p
		fields = append(fields,
			func(r model.SchedulerRow) any {
				s := r.Platforms[platform]
				if s == nil || s.UploadTime == nil {
					return nil
				}
				return *s.UploadTime
			},
			func(r model.SchedulerRow) any {
				s := r.Platforms[platform]
				if s == nil || s.UploadFrequency == nil {
					return nil
				}
				return *s.UploadFrequency
			},
		)
	}
	return fields
}

type ISchedulerUsecase interface {
	LoadSchedulers(ctx context.Context) ([]model.SchedulerRow, error)
	ActiveSchedulers(ctx context.Context) ([]model.SchedulerRow, error)
	ToggleSchedule(ctx context.Context, countryID int64, operator string) (model.SchedulerRow, error)
	SaveScheduler(ctx context.Context, edits []model.ScheduleEdit, operator string) (int, error)
}

type schedulerUsecase struct {
	gateway   repository.IUploadScheduler
	reference repository.IReferenceData
	cache     repository.IReferenceCache
	audit     repository.IAuditLog

	mu       sync.Mutex
	rows     map[int64]*model.SchedulerRow
	order    []int64
	baseline map[int64]model.SchedulerRow
}

func NewSchedulerUsecase(
	gateway repository.IUploadScheduler,
	reference repository.IReferenceData,
	cache repository.IReferenceCache,
	audit repository.IAuditLog,
) ISchedulerUsecase {
	return &schedulerUsecase{
		gateway:   gateway,
		reference: reference,
		cache:     cache,
		audit:     audit,
		rows:      map[int64]*model.SchedulerRow{},
		baseline:  map[int64]model.SchedulerRow{},
	}
}

func (u *schedulerUsecase) countryNames(ctx context.Context) (map[int64]string, []int64, error) {
	var categories []model.Category
	var ok bool
	if u.cache != nil {
		categories, ok = u.cache.GetCategories(ctx)
	}
	if !ok {
		var err error
		categories, err = u.reference.GetCategories(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("load categories: %w", err)
		}
		if u.cache != nil {
			u.cache.SetCategories(ctx, categories)
		}
	}

	names := map[int64]string{}
	var order []int64
	for _, c := range categories {
		if c.Type != "country" {
			continue
		}
		names[c.ID] = c.Name
		order = append(order, c.ID)
	}
	return names, order, nil
}

// LoadSchedulers joins every catalogue country with the backend's
// scheduler rows. Countries with no remote row show with RowExists false,
// which routes their first toggle to a create. The merged table is the
// baseline for the next bulk save.
func (u *schedulerUsecase) LoadSchedulers(ctx context.Context) ([]model.SchedulerRow, error) {
	names, order, err := u.countryNames(ctx)
	if err != nil {
		return nil, err
	}
	remote, err := u.gateway.GetSchedulers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load schedulers: %w", err)
	}

	remoteByCountry := make(map[int64]model.RemoteSchedulerRow, len(remote))
	for _, r := range remote {
		remoteByCountry[r.CountryID] = r
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	u.rows = make(map[int64]*model.SchedulerRow, len(order))
	u.order = order
	u.baseline = make(map[int64]model.SchedulerRow, len(order))
	for _, countryID := range order {
		row := &model.SchedulerRow{
			CountryID:   countryID,
			CountryName: names[countryID],
			Platforms:   map[model.Platform]*model.PlatformSchedule{},
			Status:      model.StatusInactive,
		}
		if r, ok := remoteByCountry[countryID]; ok {
			row.Status = r.Status
			row.Platforms = r.Platforms
			row.RowExists = true
		}
		u.rows[countryID] = row
		u.baseline[countryID] = copySchedulerRow(row)
	}
	return u.schedulersLocked(), nil
}

func copySchedulerRow(row *model.SchedulerRow) model.SchedulerRow {
	out := *row
	out.Platforms = make(map[model.Platform]*model.PlatformSchedule, len(row.Platforms))
	for p, s := range row.Platforms {
		if s == nil {
			continue
		}
		c := *s
		out.Platforms[p] = &c
	}
	return out
}

func (u *schedulerUsecase) schedulersLocked() []model.SchedulerRow {
	out := make([]model.SchedulerRow, 0, len(u.order))
	for _, id := range u.order {
		out = append(out, copySchedulerRow(u.rows[id]))
	}
	return out
}

// ActiveSchedulers returns only the countries whose scheduler row is
// live on the backend, with catalogue names attached.
func (u *schedulerUsecase) ActiveSchedulers(ctx context.Context) ([]model.SchedulerRow, error) {
	names, _, err := u.countryNames(ctx)
	if err != nil {
		return nil, err
	}
	remote, err := u.gateway.GetActiveSchedulers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load active schedulers: %w", err)
	}

	out := make([]model.SchedulerRow, 0, len(remote))
	for _, r := range remote {
		out = append(out, model.SchedulerRow{
			CountryID:   r.CountryID,
			CountryName: names[r.CountryID],
			Platforms:   r.Platforms,
			Status:      r.Status,
			RowExists:   true,
		})
	}
	return out, nil
}

// ToggleSchedule creates the remote row on first activation, seeded with
// empty video-platform cells, and flips the status on every later toggle.
func (u *schedulerUsecase) ToggleSchedule(ctx context.Context, countryID int64, operator string) (model.SchedulerRow, error) {
	u.mu.Lock()
	row, ok := u.rows[countryID]
	loaded := len(u.rows) > 0
	u.mu.Unlock()
	if !ok {
		if !loaded {
			return model.SchedulerRow{}, ErrSchedulersNotLoaded
		}
		return model.SchedulerRow{}, ErrUnknownSchedulerRow
	}

	if row.RowExists {
		next := row.Status.Toggled()
		err := u.gateway.UpdateScheduler(ctx, countryID, model.ToggleSchedulePayload{
			Status:   next,
			Operator: operator,
		})
		if err != nil {
			return model.SchedulerRow{}, err
		}
		u.mu.Lock()
		row.Status = next
		u.baseline[countryID] = copySchedulerRow(row)
		updated := copySchedulerRow(row)
		u.mu.Unlock()
		u.auditAction(ctx, operator, "scheduler.toggle", "upload-scheduler", countryID, nil)
		return updated, nil
	}

	seed := []model.SchedulerEntry{
		{CountryID: countryID, Operator: operator, Key: keyUploadTime, Value: nil, Platform: model.PlatformYouTube},
		{CountryID: countryID, Operator: operator, Key: keyUploadFrequency, Value: nil, Platform: model.PlatformYouTube},
	}
	if err := u.gateway.CreateScheduler(ctx, seed); err != nil {
		return model.SchedulerRow{}, err
	}
	u.mu.Lock()
	row.RowExists = true
	row.Status = model.StatusActive
	if row.Platforms[model.PlatformYouTube] == nil {
		row.Platforms[model.PlatformYouTube] = &model.PlatformSchedule{}
	}
	u.baseline[countryID] = copySchedulerRow(row)
	updated := copySchedulerRow(row)
	u.mu.Unlock()
	u.auditAction(ctx, operator, "scheduler.activate", "upload-scheduler", countryID, nil)
	return updated, nil
}

// SaveScheduler applies the submitted platform-cell edits, diffs each
// country against the load-time baseline and submits only the changed
// countries, one batch of key/value entries per country. Baselines
// advance per country, so a mid-batch failure leaves the unsent deltas
// pending for the retry.
func (u *schedulerUsecase) SaveScheduler(ctx context.Context, edits []model.ScheduleEdit, operator string) (int, error) {
	u.mu.Lock()
	if len(u.rows) == 0 {
		u.mu.Unlock()
		return 0, ErrSchedulersNotLoaded
	}
	base := make([]model.SchedulerRow, 0, len(u.order))
	candidate := make([]model.SchedulerRow, 0, len(u.order))
	for _, id := range u.order {
		base = append(base, u.baseline[id])
		candidate = append(candidate, copySchedulerRow(u.rows[id]))
	}
	index := make(map[int64]int, len(candidate))
	for i, r := range candidate {
		index[r.CountryID] = i
	}
	for _, e := range edits {
		i, ok := index[e.CountryID]
		if !ok {
			u.mu.Unlock()
			return 0, ErrUnknownSchedulerRow
		}
		for p, s := range e.Platforms {
			if !model.ValidPlatform(p) {
				continue
			}
			if s == nil {
				delete(candidate[i].Platforms, p)
				continue
			}
			c := *s
			candidate[i].Platforms[p] = &c
		}
	}
	u.mu.Unlock()

	changed := snapshot.Changed(base, candidate,
		func(r model.SchedulerRow) int64 { return r.CountryID },
		watchSchedulerFields,
	)

	submitted := 0
	for _, row := range changed {
		entries := schedulerEntries(row, operator)
		if err := u.gateway.SaveSchedule(ctx, row.CountryID, entries); err != nil {
			return submitted, fmt.Errorf("save schedule for country %d: %w", row.CountryID, err)
		}
		u.mu.Lock()
		saved := row
		u.rows[row.CountryID] = &saved
		u.baseline[row.CountryID] = copySchedulerRow(&saved)
		u.mu.Unlock()
		submitted++
		u.auditAction(ctx, operator, "scheduler.save", "upload-scheduler/country", row.CountryID, nil)
	}
	return submitted, nil
}

// schedulerEntries flattens one row's platform cells into the backend's
// key/value shape, in fixed platform order.
func schedulerEntries(row model.SchedulerRow, operator string) []model.SchedulerEntry {
	var entries []model.SchedulerEntry
	for _, p := range model.Platforms {
		s := row.Platforms[p]
		if s == nil {
			continue
		}
		var timeValue *string
		if s.UploadTime != nil {
			v := strconv.Itoa(*s.UploadTime)
			timeValue = &v
		}
		var freqValue *string
		if s.UploadFrequency != nil {
			v := string(*s.UploadFrequency)
			freqValue = &v
		}
		entries = append(entries,
			model.SchedulerEntry{CountryID: row.CountryID, Operator: operator, Key: keyUploadTime, Value: timeValue, Platform: p},
			model.SchedulerEntry{CountryID: row.CountryID, Operator: operator, Key: keyUploadFrequency, Value: freqValue, Platform: p},
		)
	}
	return entries
}

func (u *schedulerUsecase) auditAction(ctx context.Context, operator, action, resource string, recordID int64, detail *string) {
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
