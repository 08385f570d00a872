package model

type ConfigurationKey string

const (
	ConfigIntro  ConfigurationKey = "INTRO"
	ConfigOutro  ConfigurationKey = "OUTRO"
	ConfigCustom ConfigurationKey = "CUSTOM"
)

// ConfigurationEntry is a reusable script segment (intro/outro/custom text)
// ordered by Sequence when segments tie.
type ConfigurationEntry struct {
	ID       int64            `json:"id"`
	Key      ConfigurationKey `json:"key"`
	Value    string           `json:"value"`
	Sequence int              `json:"sequence"`
	Status   RowStatus        `json:"status"`
}

// JoiningWord is a connective phrase inserted between bulletin segments.
type JoiningWord struct {
	ID          int64     `json:"id"`
	JoiningWord string    `json:"joining_word"`
	Status      RowStatus `json:"status"`
}

// StatusPayload is the body of the dedicated status-toggle endpoints.
type StatusPayload struct {
	Status   RowStatus `json:"status"`
	Operator string    `json:"operator"`
}
