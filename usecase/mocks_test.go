package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"jarayid-admin/domain/model"
)

// Mock implementations shared by the usecase tests.

type MockScriptGeneration struct {
	mock.Mock
}

func (m *MockScriptGeneration) GetScripts(ctx context.Context) ([]model.ScriptFragment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ScriptFragment), args.Error(1)
}

func (m *MockScriptGeneration) UpdateApproval(ctx context.Context, id int64, status model.ApprovalStatus, remarks, operator string) error {
	args := m.Called(ctx, id, status, remarks, operator)
	return args.Error(0)
}

type MockVideoGenerator struct {
	mock.Mock
}

func (m *MockVideoGenerator) GenerateNews(ctx context.Context, countryID int64) (string, error) {
	args := m.Called(ctx, countryID)
	return args.String(0), args.Error(1)
}

type MockAuditLog struct {
	mock.Mock
}

func (m *MockAuditLog) Record(ctx context.Context, actions []*model.OperatorAction) error {
	args := m.Called(ctx, actions)
	return args.Error(0)
}

func (m *MockAuditLog) ListRecent(ctx context.Context, limit int) ([]*model.OperatorAction, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.OperatorAction), args.Error(1)
}

type MockCountrySources struct {
	mock.Mock
}

func (m *MockCountrySources) GetCountries(ctx context.Context) ([]model.SavedCountry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SavedCountry), args.Error(1)
}

func (m *MockCountrySources) CreateCountry(ctx context.Context, countryID int64, operator string) (int64, error) {
	args := m.Called(ctx, countryID, operator)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCountrySources) UpdateCountry(ctx context.Context, remoteID int64, status model.RowStatus, operator string) error {
	args := m.Called(ctx, remoteID, status, operator)
	return args.Error(0)
}

func (m *MockCountrySources) GetSourcesByCountry(ctx context.Context, countryID int64) ([]model.SavedSource, error) {
	args := m.Called(ctx, countryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SavedSource), args.Error(1)
}

func (m *MockCountrySources) CreateSource(ctx context.Context, payload model.CreateSourcePayload) (int64, error) {
	args := m.Called(ctx, payload)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCountrySources) UpdateSource(ctx context.Context, remoteID int64, payload model.ToggleSourcePayload) error {
	args := m.Called(ctx, remoteID, payload)
	return args.Error(0)
}

func (m *MockCountrySources) BulkUpdateSources(ctx context.Context, items []model.SourcePayload) (string, error) {
	args := m.Called(ctx, items)
	return args.String(0), args.Error(1)
}

type MockReferenceData struct {
	mock.Mock
}

func (m *MockReferenceData) GetCategories(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *MockReferenceData) GetCountries(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *MockReferenceData) GetRssSourcesByCountry(ctx context.Context, countryID int64) ([]model.RssSource, error) {
	args := m.Called(ctx, countryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RssSource), args.Error(1)
}

type MockReferenceCache struct {
	mock.Mock
}

func (m *MockReferenceCache) GetCategories(ctx context.Context) ([]model.Category, bool) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).([]model.Category), args.Bool(1)
}

func (m *MockReferenceCache) SetCategories(ctx context.Context, categories []model.Category) {
	m.Called(ctx, categories)
}

type MockUploadScheduler struct {
	mock.Mock
}

func (m *MockUploadScheduler) GetSchedulers(ctx context.Context) ([]model.RemoteSchedulerRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RemoteSchedulerRow), args.Error(1)
}

func (m *MockUploadScheduler) GetActiveSchedulers(ctx context.Context) ([]model.RemoteSchedulerRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RemoteSchedulerRow), args.Error(1)
}

func (m *MockUploadScheduler) CreateScheduler(ctx context.Context, entries []model.SchedulerEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockUploadScheduler) UpdateScheduler(ctx context.Context, countryID int64, payload model.ToggleSchedulePayload) error {
	args := m.Called(ctx, countryID, payload)
	return args.Error(0)
}

func (m *MockUploadScheduler) SaveSchedule(ctx context.Context, countryID int64, entries []model.SchedulerEntry) error {
	args := m.Called(ctx, countryID, entries)
	return args.Error(0)
}

type MockSponsorGateway struct {
	mock.Mock
}

func (m *MockSponsorGateway) GetSponsors(ctx context.Context) ([]model.Sponsor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Sponsor), args.Error(1)
}

func (m *MockSponsorGateway) GetActiveSponsors(ctx context.Context) ([]model.Sponsor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Sponsor), args.Error(1)
}

func (m *MockSponsorGateway) CreateSponsor(ctx context.Context, sponsor model.Sponsor, operator string) (int64, error) {
	args := m.Called(ctx, sponsor, operator)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSponsorGateway) UpdateSponsor(ctx context.Context, id int64, sponsor model.Sponsor, operator string) error {
	args := m.Called(ctx, id, sponsor, operator)
	return args.Error(0)
}

type MockConfiguration struct {
	mock.Mock
}

func (m *MockConfiguration) GetJoiningWords(ctx context.Context) ([]model.JoiningWord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.JoiningWord), args.Error(1)
}

func (m *MockConfiguration) GetActiveJoiningWords(ctx context.Context) ([]model.JoiningWord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.JoiningWord), args.Error(1)
}

func (m *MockConfiguration) CreateJoiningWord(ctx context.Context, word model.JoiningWord, operator string) (int64, error) {
	args := m.Called(ctx, word, operator)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockConfiguration) UpdateJoiningWord(ctx context.Context, id int64, word model.JoiningWord, operator string) error {
	args := m.Called(ctx, id, word, operator)
	return args.Error(0)
}

func (m *MockConfiguration) UpdateJoiningWordStatus(ctx context.Context, id int64, payload model.StatusPayload) error {
	args := m.Called(ctx, id, payload)
	return args.Error(0)
}

func (m *MockConfiguration) GetConfigurations(ctx context.Context) ([]model.ConfigurationEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ConfigurationEntry), args.Error(1)
}

func (m *MockConfiguration) CreateConfiguration(ctx context.Context, entry model.ConfigurationEntry, operator string) (int64, error) {
	args := m.Called(ctx, entry, operator)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockConfiguration) UpdateConfiguration(ctx context.Context, id int64, entry model.ConfigurationEntry, operator string) error {
	args := m.Called(ctx, id, entry, operator)
	return args.Error(0)
}

func (m *MockConfiguration) UpdateConfigurationStatus(ctx context.Context, id int64, payload model.StatusPayload) error {
	args := m.Called(ctx, id, payload)
	return args.Error(0)
}
