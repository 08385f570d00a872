package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"jarayid-admin/domain/model"
	"jarayid-admin/usecase"
)

func intPtr(v int) *int { return &v }

func freqPtr(v model.Frequency) *model.Frequency { return &v }

func newSchedulerUsecase(gateway *MockUploadScheduler, reference *MockReferenceData, cache *MockReferenceCache) usecase.ISchedulerUsecase {
	audit := new(MockAuditLog)
	audit.On("Record", mock.Anything, mock.Anything).Return(nil).Maybe()
	return usecase.NewSchedulerUsecase(gateway, reference, cache, audit)
}

func loadSchedulers(t *testing.T, u usecase.ISchedulerUsecase, gateway *MockUploadScheduler, reference *MockReferenceData, cache *MockReferenceCache, remote []model.RemoteSchedulerRow) []model.SchedulerRow {
	t.Helper()
	cache.On("GetCategories", mock.Anything).Return(nil, false).Once()
	reference.On("GetCategories", mock.Anything).
		Return([]model.Category{
			{ID: 7, Name: "Lebanon", Type: "country"},
			{ID: 3, Name: "Egypt", Type: "country"},
		}, nil).
		Once()
	cache.On("SetCategories", mock.Anything, mock.Anything).Once()
	gateway.On("GetSchedulers", mock.Anything).Return(remote, nil).Once()

	rows, err := u.LoadSchedulers(context.Background())
	require.NoError(t, err)
	return rows
}

func TestSchedulerUsecase_LoadSchedulers_MergesRemoteRows(t *testing.T) {
	gateway := new(MockUploadScheduler)
	reference := new(MockReferenceData)
	cache := new(MockReferenceCache)
	u := newSchedulerUsecase(gateway, reference, cache)

	rows := loadSchedulers(t, u, gateway, reference, cache, []model.RemoteSchedulerRow{
		{
			CountryID: 7,
			Status:    model.StatusActive,
			Platforms: map[model.Platform]*model.PlatformSchedule{
				model.PlatformYouTube: {UploadTime: intPtr(34200), UploadFrequency: freqPtr(model.FrequencyDaily)},
			},
		},
	})

	require.Len(t, rows, 2)
	assert.Equal(t, "Lebanon", rows[0].CountryName)
	assert.True(t, rows[0].RowExists)
	assert.Equal(t, model.StatusActive, rows[0].Status)
	require.NotNil(t, rows[0].Platforms[model.PlatformYouTube])
	assert.Equal(t, 34200, *rows[0].Platforms[model.PlatformYouTube].UploadTime)

	assert.Equal(t, "Egypt", rows[1].CountryName)
	assert.False(t, rows[1].RowExists)
	assert.Equal(t, model.StatusInactive, rows[1].Status)
	assert.Empty(t, rows[1].Platforms)
}

func TestSchedulerUsecase_ToggleSchedule_FirstActivationSeedsRow(t *testing.T) {
	gateway := new(MockUploadScheduler)
	reference := new(MockReferenceData)
	cache := new(MockReferenceCache)
	u := newSchedulerUsecase(gateway, reference, cache)

	loadSchedulers(t, u, gateway, reference, cache, nil)

	gateway.On("CreateScheduler", mock.Anything, []model.SchedulerEntry{
		{CountryID: 3, Operator: "admin", Key: "UPLOAD_TIME", Value: nil, Platform: model.PlatformYouTube},
		{CountryID: 3, Operator: "admin", Key: "UPLOAD_FREQUENCY", Value: nil, Platform: model.PlatformYouTube},
	}).Return(nil).Once()

	row, err := u.ToggleSchedule(context.Background(), 3, "admin")
	require.NoError(t, err)
	assert.True(t, row.RowExists)
	assert.Equal(t, model.StatusActive, row.Status)

	// Second toggle updates instead of creating again.
	gateway.On("UpdateScheduler", mock.Anything, int64(3), model.ToggleSchedulePayload{
		Status:   model.StatusInactive,
		Operator: "admin",
	}).Return(nil).Once()

	row, err = u.ToggleSchedule(context.Background(), 3, "admin")
	require.NoError(t, err)
	assert.Equal(t, model.StatusInactive, row.Status)

	gateway.AssertExpectations(t)
}

func TestSchedulerUsecase_ToggleSchedule_NotLoaded(t *testing.T) {
	gateway := new(MockUploadScheduler)
	reference := new(MockReferenceData)
	cache := new(MockReferenceCache)
	u := newSchedulerUsecase(gateway, reference, cache)

	_, err := u.ToggleSchedule(context.Background(), 3, "admin")
	assert.ErrorIs(t, err, usecase.ErrSchedulersNotLoaded)
}

func TestSchedulerUsecase_SaveScheduler_SubmitsOnlyChangedCountries(t *testing.T) {
	gateway := new(MockUploadScheduler)
	reference := new(MockReferenceData)
	cache := new(MockReferenceCache)
	u := newSchedulerUsecase(gateway, reference, cache)

	loadSchedulers(t, u, gateway, reference, cache, []model.RemoteSchedulerRow{
		{
			CountryID: 7,
			Status:    model.StatusActive,
			Platforms: map[model.Platform]*model.PlatformSchedule{
				model.PlatformYouTube: {UploadTime: intPtr(34200), UploadFrequency: freqPtr(model.FrequencyDaily)},
			},
		},
		{
			CountryID: 3,
			Status:    model.StatusActive,
			Platforms: map[model.Platform]*model.PlatformSchedule{
				model.PlatformYouTube: {UploadTime: intPtr(3600), UploadFrequency: freqPtr(model.FrequencyWeekly)},
			},
		},
	})

	timeValue := "43200"
	freqValue := "WEEKLY"
	gateway.On("SaveSchedule", mock.Anything, int64(7), []model.SchedulerEntry{
		{CountryID: 7, Operator: "admin", Key: "UPLOAD_TIME", Value: &timeValue, Platform: model.PlatformYouTube},
		{CountryID: 7, Operator: "admin", Key: "UPLOAD_FREQUENCY", Value: &freqValue, Platform: model.PlatformYouTube},
	}).Return(nil).Once()

	count, err := u.SaveScheduler(context.Background(), []model.ScheduleEdit{
		{
			CountryID: 7,
			Platforms: map[model.Platform]*model.PlatformSchedule{
				model.PlatformYouTube: {UploadTime: intPtr(43200), UploadFrequency: freqPtr(model.FrequencyWeekly)},
			},
		},
		{
			// Unchanged cells stay home.
			CountryID: 3,
			Platforms: map[model.Platform]*model.PlatformSchedule{
				model.PlatformYouTube: {UploadTime: intPtr(3600), UploadFrequency: freqPtr(model.FrequencyWeekly)},
			},
		},
	}, "admin")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	gateway.AssertExpectations(t)
}

func TestSchedulerUsecase_SaveScheduler_NoChangesSkipsNetwork(t *testing.T) {
	gateway := new(MockUploadScheduler)
	reference := new(MockReferenceData)
	cache := new(MockReferenceCache)
	u := newSchedulerUsecase(gateway, reference, cache)

	loadSchedulers(t, u, gateway, reference, cache, []model.RemoteSchedulerRow{
		{
			CountryID: 7,
			Status:    model.StatusActive,
			Platforms: map[model.Platform]*model.PlatformSchedule{
				model.PlatformYouTube: {UploadTime: intPtr(34200), UploadFrequency: freqPtr(model.FrequencyDaily)},
			},
		},
	})

	count, err := u.SaveScheduler(context.Background(), []model.ScheduleEdit{
		{
			CountryID: 7,
			Platforms: map[model.Platform]*model.PlatformSchedule{
				model.PlatformYouTube: {UploadTime: intPtr(34200), UploadFrequency: freqPtr(model.FrequencyDaily)},
			},
		},
	}, "admin")
	require.NoError(t, err)
	assert.Zero(t, count)

	gateway.AssertNotCalled(t, "SaveSchedule", mock.Anything, mock.Anything, mock.Anything)
}

func TestSchedulerUsecase_SaveScheduler_UnknownPlatformDropped(t *testing.T) {
	gateway := new(MockUploadScheduler)
	reference := new(MockReferenceData)
	cache := new(MockReferenceCache)
	u := newSchedulerUsecase(gateway, reference, cache)

	loadSchedulers(t, u, gateway, reference, cache, []model.RemoteSchedulerRow{
		{CountryID: 7, Status: model.StatusActive, Platforms: map[model.Platform]*model.PlatformSchedule{}},
	})

	count, err := u.SaveScheduler(context.Background(), []model.ScheduleEdit{
		{
			CountryID: 7,
			Platforms: map[model.Platform]*model.PlatformSchedule{
				model.Platform("TWITCH"): {UploadTime: intPtr(60)},
			},
		},
	}, "admin")
	require.NoError(t, err)
	assert.Zero(t, count)

	gateway.AssertNotCalled(t, "SaveSchedule", mock.Anything, mock.Anything, mock.Anything)
}

func TestSchedulerUsecase_SaveScheduler_FailureKeepsDeltaPending(t *testing.T) {
	gateway := new(MockUploadScheduler)
	reference := new(MockReferenceData)
	cache := new(MockReferenceCache)
	u := newSchedulerUsecase(gateway, reference, cache)

	loadSchedulers(t, u, gateway, reference, cache, []model.RemoteSchedulerRow{
		{
			CountryID: 7,
			Status:    model.StatusActive,
			Platforms: map[model.Platform]*model.PlatformSchedule{
				model.PlatformYouTube: {UploadTime: intPtr(34200), UploadFrequency: freqPtr(model.FrequencyDaily)},
			},
		},
	})

	edit := model.ScheduleEdit{
		CountryID: 7,
		Platforms: map[model.Platform]*model.PlatformSchedule{
			model.PlatformYouTube: {UploadTime: intPtr(43200), UploadFrequency: freqPtr(model.FrequencyDaily)},
		},
	}

	gateway.On("SaveSchedule", mock.Anything, int64(7), mock.Anything).
		Return(assert.AnError).
		Once()

	count, err := u.SaveScheduler(context.Background(), []model.ScheduleEdit{edit}, "admin")
	assert.ErrorIs(t, err, assert.AnError)
	assert.Zero(t, count)

	gateway.On("SaveSchedule", mock.Anything, int64(7), mock.Anything).
		Return(nil).
		Once()

	count, err = u.SaveScheduler(context.Background(), []model.ScheduleEdit{edit}, "admin")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	gateway.AssertExpectations(t)
}
