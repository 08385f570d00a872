package model

type SponsorCountry struct {
	CountryID   int64  `json:"country_id"`
	CountryName string `json:"country_name"`
}

type Sponsor struct {
	ID        int64            `json:"id"`
	Name      string           `json:"name"`
	Website   string           `json:"website"`
	LogoURL   string           `json:"logo_url"`
	StartDate string           `json:"startdate"`
	EndDate   string           `json:"enddate"`
	Status    RowStatus        `json:"status"`
	Countries []SponsorCountry `json:"countries"`
}
