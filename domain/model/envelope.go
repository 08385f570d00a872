package model

import "encoding/json"

// Envelope is the body-level status wrapper the automation backend returns
// on every call. A call is only successful when both the HTTP status and
// StatusCode agree (200 for reads/updates, 201 for creates).
type Envelope struct {
	StatusCode int             `json:"statusCode"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
}
