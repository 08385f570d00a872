package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"jarayid-admin/domain/model"
	"jarayid-admin/domain/repository"
	"jarayid-admin/infrastructure/logger"
)

var (
	ErrJoiningWordRequired = errors.New("joining word text is required")
	ErrConfigValueRequired = errors.New("configuration value is required")
	ErrInvalidConfigKey    = errors.New("invalid configuration key")
	ErrInvalidStatusValue  = errors.New("status must be ACTIVE or INACTIVE")
)

type IConfigurationUsecase interface {
	JoiningWords(ctx context.Context) ([]model.JoiningWord, error)
	ActiveJoiningWords(ctx context.Context) ([]model.JoiningWord, error)
	CreateJoiningWord(ctx context.Context, word model.JoiningWord, operator string) (model.JoiningWord, error)
	UpdateJoiningWord(ctx context.Context, id int64, word model.JoiningWord, operator string) error
	ToggleJoiningWord(ctx context.Context, id int64, status model.RowStatus, operator string) error

	Configurations(ctx context.Context) ([]model.ConfigurationEntry, error)
	CreateConfiguration(ctx context.Context, entry model.ConfigurationEntry, operator string) (model.ConfigurationEntry, error)
	UpdateConfiguration(ctx context.Context, id int64, entry model.ConfigurationEntry, operator string) error
	ToggleConfiguration(ctx context.Context, id int64, status model.RowStatus, operator string) error
}

type configurationUsecase struct {
	gateway repository.IConfiguration
	audit   repository.IAuditLog
}

func NewConfigurationUsecase(gateway repository.IConfiguration, audit repository.IAuditLog) IConfigurationUsecase {
	return &configurationUsecase{gateway: gateway, audit: audit}
}

func (u *configurationUsecase) JoiningWords(ctx context.Context) ([]model.JoiningWord, error) {
	return u.gateway.GetJoiningWords(ctx)
}

func (u *configurationUsecase) ActiveJoiningWords(ctx context.Context) ([]model.JoiningWord, error) {
	return u.gateway.GetActiveJoiningWords(ctx)
}

func (u *configurationUsecase) CreateJoiningWord(ctx context.Context, word model.JoiningWord, operator string) (model.JoiningWord, error) {
	word.JoiningWord = strings.TrimSpace(word.JoiningWord)
	if word.JoiningWord == "" {
		return model.JoiningWord{}, ErrJoiningWordRequired
	}
	if word.Status == "" {
		word.Status = model.StatusActive
	}

	id, err := u.gateway.CreateJoiningWord(ctx, word, operator)
	if err != nil {
		return model.JoiningWord{}, err
	}
	word.ID = id
	u.auditAction(ctx, operator, "joining_word.create", "joining-words", id)
	return word, nil
}

func (u *configurationUsecase) UpdateJoiningWord(ctx context.Context, id int64, word model.JoiningWord, operator string) error {
	word.JoiningWord = strings.TrimSpace(word.JoiningWord)
	if word.JoiningWord == "" {
		return ErrJoiningWordRequired
	}

	if err := u.gateway.UpdateJoiningWord(ctx, id, word, operator); err != nil {
		return err
	}
	u.auditAction(ctx, operator, "joining_word.update", "joining-words", id)
	return nil
}

func (u *configurationUsecase) ToggleJoiningWord(ctx context.Context, id int64, status model.RowStatus, operator string) error {
	if status != model.StatusActive && status != model.StatusInactive {
		return ErrInvalidStatusValue
	}
	err := u.gateway.UpdateJoiningWordStatus(ctx, id, model.StatusPayload{Status: status, Operator: operator})
	if err != nil {
		return err
	}
	u.auditAction(ctx, operator, "joining_word.toggle", "joining-words", id)
	return nil
}

// Configurations returns script segments ordered for assembly: INTRO
// first, OUTRO last, CUSTOM in between, ties broken by sequence.
func (u *configurationUsecase) Configurations(ctx context.Context) ([]model.ConfigurationEntry, error) {
	entries, err := u.gateway.GetConfigurations(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(entries, func(i, j int) bool {
		ri, rj := keyRank(entries[i].Key), keyRank(entries[j].Key)
		if ri != rj {
			return ri < rj
		}
		return entries[i].Sequence < entries[j].Sequence
	})
	return entries, nil
}

func keyRank(key model.ConfigurationKey) int {
	switch key {
	case model.ConfigIntro:
		return 0
	case model.ConfigOutro:
		return 2
	default:
		return 1
	}
}

func validConfigKey(key model.ConfigurationKey) bool {
	switch key {
	case model.ConfigIntro, model.ConfigOutro, model.ConfigCustom:
		return true
	}
	return false
}

func (u *configurationUsecase) CreateConfiguration(ctx context.Context, entry model.ConfigurationEntry, operator string) (model.ConfigurationEntry, error) {
	entry.Value = strings.TrimSpace(entry.Value)
	if entry.Value == "" {
		return model.ConfigurationEntry{}, ErrConfigValueRequired
	}
	if !validConfigKey(entry.Key) {
		return model.ConfigurationEntry{}, ErrInvalidConfigKey
	}
	if entry.Status == "" {
		entry.Status = model.StatusActive
	}

	id, err := u.gateway.CreateConfiguration(ctx, entry, operator)
	if err != nil {
		return model.ConfigurationEntry{}, err
	}
	entry.ID = id
	u.auditAction(ctx, operator, "configuration.create", "script-configuration", id)
	return entry, nil
}

func (u *configurationUsecase) UpdateConfiguration(ctx context.Context, id int64, entry model.ConfigurationEntry, operator string) error {
	entry.Value = strings.TrimSpace(entry.Value)
	if entry.Value == "" {
		return ErrConfigValueRequired
	}
	if !validConfigKey(entry.Key) {
		return ErrInvalidConfigKey
	}

	if err := u.gateway.UpdateConfiguration(ctx, id, entry, operator); err != nil {
		return err
	}
	u.auditAction(ctx, operator, "configuration.update", "script-configuration", id)
	return nil
}

func (u *configurationUsecase) ToggleConfiguration(ctx context.Context, id int64, status model.RowStatus, operator string) error {
	if status != model.StatusActive && status != model.StatusInactive {
		return ErrInvalidStatusValue
	}
	err := u.gateway.UpdateConfigurationStatus(ctx, id, model.StatusPayload{Status: status, Operator: operator})
	if err != nil {
		return err
	}
	u.auditAction(ctx, operator, "configuration.toggle", "script-configuration", id)
	return nil
}

func (u *configurationUsecase) auditAction(ctx context.Context, operator, action, resource string, recordID int64) {
	if u.audit == nil {
		return
	}
	err := u.audit.Record(ctx, []*model.OperatorAction{{
		Operator:  operator,
		Action:    action,
		Resource:  resource,
		RecordID:  &recordID,
		CreatedAt: time.Now().UTC(),
	}})
	if err != nil {
		logger.GetLogger().WithField("action", action).WithField("error", err).Warn("audit record failed")
	}
}
