package model

import (
	"encoding/json"
	"fmt"
)

type Platform string

const (
	PlatformYouTube   Platform = "YOUTUBE"
	PlatformTikTok    Platform = "TIKTOK"
	PlatformInstagram Platform = "INSTAGRAM"
	PlatformFacebook  Platform = "FACEBOOK"
)

// Platforms lists the publishing targets the scheduler knows about, in
// display order. Unknown keys in remote rows are dropped on load.
var Platforms = []Platform{PlatformYouTube, PlatformInstagram, PlatformFacebook, PlatformTikTok}

func ValidPlatform(p Platform) bool {
	for _, v := range Platforms {
		if v == p {
			return true
		}
	}
	return false
}

type Frequency string

const (
	FrequencyDaily   Frequency = "DAILY"
	FrequencyWeekly  Frequency = "WEEKLY"
	FrequencyMonthly Frequency = "MONTHLY"
)

// PlatformSchedule holds the two schedulable cells for one platform.
// UploadTime is seconds since midnight.
type PlatformSchedule struct {
	UploadTime      *int       `json:"UPLOAD_TIME"`
	UploadFrequency *Frequency `json:"UPLOAD_FREQUENCY"`
}

// SchedulerRow is one country's scheduling state across all platforms.
// RowExists distinguishes "never created remotely" from "created but
// inactive", which decides create-vs-update on the next toggle.
type SchedulerRow struct {
	CountryID   int64                          `json:"COUNTRY_ID"`
	CountryName string                         `json:"COUNTRY_NAME"`
	Platforms   map[Platform]*PlatformSchedule `json:"platforms"`
	Status      RowStatus                      `json:"status"`
	RowExists   bool                           `json:"rowExists"`
}

// SchedulerEntry is one key/value cell as the backend stores it.
type SchedulerEntry struct {
	CountryID int64    `json:"country_id"`
	Operator  string   `json:"operator"`
	Key       string   `json:"key"`
	Value     *string  `json:"value"`
	Platform  Platform `json:"platform"`
}

// RemoteSchedulerRow is the backend's shape of one scheduler row: fixed
// country columns plus one object per platform key. Unknown platform keys
// are dropped during unmarshaling.
type RemoteSchedulerRow struct {
	CountryID int64
	Status    RowStatus
	Platforms map[Platform]*PlatformSchedule
}

func (r *RemoteSchedulerRow) UnmarshalJSON(data []byte) error {
	var head struct {
		CountryID int64     `json:"COUNTRY_ID"`
		Status    RowStatus `json:"STATUS"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}
	var cells map[string]json.RawMessage
	if err := json.Unmarshal(data, &cells); err != nil {
		return err
	}

	r.CountryID = head.CountryID
	r.Status = head.Status
	r.Platforms = map[Platform]*PlatformSchedule{}
	for _, p := range Platforms {
		raw, ok := cells[string(p)]
		if !ok || string(raw) == "null" {
			continue
		}
		var sched PlatformSchedule
		if err := json.Unmarshal(raw, &sched); err != nil {
			continue
		}
		r.Platforms[p] = &sched
	}
	return nil
}

// ToggleSchedulePayload flips the status of an existing scheduler row.
type ToggleSchedulePayload struct {
	Status   RowStatus `json:"status"`
	Operator string    `json:"operator"`
}

// ScheduleEdit carries one country's edited platform cells from the
// quick-scheduler table.
type ScheduleEdit struct {
	CountryID int64                          `json:"country_id"`
	Platforms map[Platform]*PlatformSchedule `json:"platforms"`
}

// SecondsToHHMM renders an upload time for display; nil means unset.
func SecondsToHHMM(sec *int) string {
	if sec == nil {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", *sec/3600, (*sec%3600)/60)
}
