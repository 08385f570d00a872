package model

// Category is one row of the legacy dashboard catalogue. Rows with type
// "country" double as the country dropdown.
type Category struct {
	ID         int64  `json:"ID"`
	Name       string `json:"NAME"`
	ArabicName string `json:"ARABIC_NAME"`
	Type       string `json:"TYPE"`
}

// RssSource is one catalogue entry of a country's RSS feeds.
type RssSource struct {
	ID        int64  `json:"ID"`
	Name      string `json:"NAME"`
	SourceURL string `json:"SOURCE_URL"`
	SourceID  int64  `json:"SOURCE_ID"`
}
