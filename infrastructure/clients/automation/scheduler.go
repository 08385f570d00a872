package automation

import (
	"context"
	"fmt"

	"jarayid-admin/domain/model"
)

func (h *Host) GetSchedulers(ctx context.Context) ([]model.RemoteSchedulerRow, error) {
	var rows []model.RemoteSchedulerRow
	if err := h.get(ctx, "upload-scheduler", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (h *Host) GetActiveSchedulers(ctx context.Context) ([]model.RemoteSchedulerRow, error) {
	var rows []model.RemoteSchedulerRow
	if err := h.get(ctx, "upload-scheduler/active", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

type createSchedulerPayload struct {
	Schedulers []model.SchedulerEntry `json:"schedulers"`
}

func (h *Host) CreateScheduler(ctx context.Context, entries []model.SchedulerEntry) error {
	_, err := h.create(ctx, "upload-scheduler", createSchedulerPayload{Schedulers: entries})
	return err
}

func (h *Host) UpdateScheduler(ctx context.Context, countryID int64, payload model.ToggleSchedulePayload) error {
	_, err := h.update(ctx, fmt.Sprintf("upload-scheduler/country/%d", countryID), payload)
	return err
}

type saveSchedulePayload struct {
	Schedulers []model.SchedulerEntry `json:"schedulers"`
	Operator   string                 `json:"operator,omitempty"`
}

// SaveSchedule writes the edited time/frequency cells of one country.
func (h *Host) SaveSchedule(ctx context.Context, countryID int64, entries []model.SchedulerEntry) error {
	_, err := h.update(ctx, fmt.Sprintf("upload-scheduler/country/%d", countryID), saveSchedulePayload{Schedulers: entries})
	return err
}
