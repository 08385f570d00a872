package model

import "time"

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "PENDING"
	ApprovalApproved ApprovalStatus = "APPROVED"
	ApprovalRejected ApprovalStatus = "REJECTED"
)

type VideoGenStatus string

const (
	VideoPending    VideoGenStatus = "PENDING"
	VideoGenerating VideoGenStatus = "GENERATING"
	VideoReady      VideoGenStatus = "READY"
	VideoFailed     VideoGenStatus = "FAILED"
)

// ScriptFragment is one row produced by the script-generation job. The
// Prompt field holds a JSON-encoded map of named script fields; fragments
// are immutable and ordered by ascending ID within a country.
type ScriptFragment struct {
	ID          int64  `json:"id"`
	CountryID   int64  `json:"country_id"`
	CountryName string `json:"country_name"`
	Status      string `json:"status"`
	Prompt      string `json:"prompt"`
}

// Bulletin is a reviewable unit assembled from script fragments.
// CancellationRemarks is set if and only if the bulletin was rejected.
type Bulletin struct {
	ID                  int64          `json:"id"`
	CountryID           int64          `json:"country_id"`
	CountryName         string         `json:"country_name"`
	Category            string         `json:"category,omitempty"`
	CreatedAt           time.Time      `json:"created_at"`
	ApprovalStatus      ApprovalStatus `json:"approval_status"`
	VideoGenStatus      VideoGenStatus `json:"video_gen_status"`
	Overview            string         `json:"overview"`
	VideoURL            string         `json:"video_url,omitempty"`
	CancellationRemarks string         `json:"cancellation_remarks,omitempty"`
}
