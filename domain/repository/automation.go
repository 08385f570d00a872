package repository

import (
	"context"

	"jarayid-admin/domain/model"
)

// IScriptGeneration covers the script-generation resource: fragment
// listing plus the approval update.
type IScriptGeneration interface {
	GetScripts(ctx context.Context) ([]model.ScriptFragment, error)
	UpdateApproval(ctx context.Context, id int64, status model.ApprovalStatus, remarks, operator string) error
}

// IVideoGenerator triggers the external video render. The provider is an
// opaque collaborator: it either returns a playable URL or the call fails.
type IVideoGenerator interface {
	GenerateNews(ctx context.Context, countryID int64) (videoURL string, err error)
}

// ICountrySources covers country rows and their per-country source rows.
type ICountrySources interface {
	GetCountries(ctx context.Context) ([]model.SavedCountry, error)
	CreateCountry(ctx context.Context, countryID int64, operator string) (int64, error)
	UpdateCountry(ctx context.Context, remoteID int64, status model.RowStatus, operator string) error

	GetSourcesByCountry(ctx context.Context, countryID int64) ([]model.SavedSource, error)
	CreateSource(ctx context.Context, payload model.CreateSourcePayload) (int64, error)
	UpdateSource(ctx context.Context, remoteID int64, payload model.ToggleSourcePayload) error
	BulkUpdateSources(ctx context.Context, items []model.SourcePayload) (string, error)
}

// IUploadScheduler covers the per-country, per-platform upload schedule.
type IUploadScheduler interface {
	GetSchedulers(ctx context.Context) ([]model.RemoteSchedulerRow, error)
	GetActiveSchedulers(ctx context.Context) ([]model.RemoteSchedulerRow, error)
	CreateScheduler(ctx context.Context, entries []model.SchedulerEntry) error
	UpdateScheduler(ctx context.Context, countryID int64, payload model.ToggleSchedulePayload) error
	SaveSchedule(ctx context.Context, countryID int64, entries []model.SchedulerEntry) error
}

// ISponsor covers sponsor CRUD.
type ISponsor interface {
	GetSponsors(ctx context.Context) ([]model.Sponsor, error)
	GetActiveSponsors(ctx context.Context) ([]model.Sponsor, error)
	CreateSponsor(ctx context.Context, sponsor model.Sponsor, operator string) (int64, error)
	UpdateSponsor(ctx context.Context, id int64, sponsor model.Sponsor, operator string) error
}

// IConfiguration covers joining words and script configuration entries,
// including their dedicated status-toggle endpoints.
type IConfiguration interface {
	GetJoiningWords(ctx context.Context) ([]model.JoiningWord, error)
	GetActiveJoiningWords(ctx context.Context) ([]model.JoiningWord, error)
	CreateJoiningWord(ctx context.Context, word model.JoiningWord, operator string) (int64, error)
	UpdateJoiningWord(ctx context.Context, id int64, word model.JoiningWord, operator string) error
	UpdateJoiningWordStatus(ctx context.Context, id int64, payload model.StatusPayload) error

	GetConfigurations(ctx context.Context) ([]model.ConfigurationEntry, error)
	CreateConfiguration(ctx context.Context, entry model.ConfigurationEntry, operator string) (int64, error)
	UpdateConfiguration(ctx context.Context, id int64, entry model.ConfigurationEntry, operator string) error
	UpdateConfigurationStatus(ctx context.Context, id int64, payload model.StatusPayload) error
}
