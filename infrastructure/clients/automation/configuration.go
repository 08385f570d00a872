package automation

import (
	"context"
	"fmt"

	"jarayid-admin/domain/model"
)

func (h *Host) GetJoiningWords(ctx context.Context) ([]model.JoiningWord, error) {
	var words []model.JoiningWord
	if err := h.get(ctx, "joining-words", &words); err != nil {
		return nil, err
	}
	return words, nil
}

func (h *Host) GetActiveJoiningWords(ctx context.Context) ([]model.JoiningWord, error) {
	var words []model.JoiningWord
	if err := h.get(ctx, "joining-words/active", &words); err != nil {
		return nil, err
	}
	return words, nil
}

type joiningWordPayload struct {
	JoiningWord string `json:"joining_word"`
	Operator    string `json:"operator"`
}

func (h *Host) CreateJoiningWord(ctx context.Context, word model.JoiningWord, operator string) (int64, error) {
	env, err := h.create(ctx, "joining-words", joiningWordPayload{JoiningWord: word.JoiningWord, Operator: operator})
	if err != nil {
		return 0, err
	}
	return createdID(env)
}

func (h *Host) UpdateJoiningWord(ctx context.Context, id int64, word model.JoiningWord, operator string) error {
	_, err := h.update(ctx, fmt.Sprintf("joining-words/%d", id), joiningWordPayload{JoiningWord: word.JoiningWord, Operator: operator})
	return err
}

func (h *Host) UpdateJoiningWordStatus(ctx context.Context, id int64, payload model.StatusPayload) error {
	_, err := h.update(ctx, fmt.Sprintf("joining-words/updateJoiningWords/%d", id), payload)
	return err
}

func (h *Host) GetConfigurations(ctx context.Context) ([]model.ConfigurationEntry, error) {
	var entries []model.ConfigurationEntry
	if err := h.get(ctx, "script-configuration", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

type configurationPayload struct {
	Key      model.ConfigurationKey `json:"key"`
	Value    string                 `json:"value"`
	Sequence int                    `json:"sequence"`
	Operator string                 `json:"operator"`
}

func (h *Host) CreateConfiguration(ctx context.Context, entry model.ConfigurationEntry, operator string) (int64, error) {
	env, err := h.create(ctx, "script-configuration", configurationPayload{
		Key:      entry.Key,
		Value:    entry.Value,
		Sequence: entry.Sequence,
		Operator: operator,
	})
	if err != nil {
		return 0, err
	}
	return createdID(env)
}

func (h *Host) UpdateConfiguration(ctx context.Context, id int64, entry model.ConfigurationEntry, operator string) error {
	_, err := h.update(ctx, fmt.Sprintf("script-configuration/%d", id), configurationPayload{
		Key:      entry.Key,
		Value:    entry.Value,
		Sequence: entry.Sequence,
		Operator: operator,
	})
	return err
}

func (h *Host) UpdateConfigurationStatus(ctx context.Context, id int64, payload model.StatusPayload) error {
	_, err := h.update(ctx, fmt.Sprintf("script-configuration/updateScriptConfiguration/%d", id), payload)
	return err
}
