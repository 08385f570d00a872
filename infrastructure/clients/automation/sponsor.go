package automation

import (
	"context"
	"fmt"

	"jarayid-admin/domain/model"
)

func (h *Host) GetSponsors(ctx context.Context) ([]model.Sponsor, error) {
	var sponsors []model.Sponsor
	if err := h.get(ctx, "sponsor", &sponsors); err != nil {
		return nil, err
	}
	return sponsors, nil
}

func (h *Host) GetActiveSponsors(ctx context.Context) ([]model.Sponsor, error) {
	var sponsors []model.Sponsor
	if err := h.get(ctx, "sponsor/active", &sponsors); err != nil {
		return nil, err
	}
	return sponsors, nil
}

// sponsorPayload drops the local id; it travels in the path on updates
// and does not exist yet on creates.
type sponsorPayload struct {
	Name      string                 `json:"name"`
	Website   string                 `json:"website"`
	LogoURL   string                 `json:"logo_url"`
	StartDate string                 `json:"startdate"`
	EndDate   string                 `json:"enddate"`
	Countries []model.SponsorCountry `json:"countries"`
	Operator  string                 `json:"operator"`
}

func shapeSponsor(sponsor model.Sponsor, operator string) sponsorPayload {
	return sponsorPayload{
		Name:      sponsor.Name,
		Website:   sponsor.Website,
		LogoURL:   sponsor.LogoURL,
		StartDate: sponsor.StartDate,
		EndDate:   sponsor.EndDate,
		Countries: sponsor.Countries,
		Operator:  operator,
	}
}

func (h *Host) CreateSponsor(ctx context.Context, sponsor model.Sponsor, operator string) (int64, error) {
	env, err := h.create(ctx, "sponsor", shapeSponsor(sponsor, operator))
	if err != nil {
		return 0, err
	}
	return createdID(env)
}

func (h *Host) UpdateSponsor(ctx context.Context, id int64, sponsor model.Sponsor, operator string) error {
	_, err := h.update(ctx, fmt.Sprintf("sponsor/%d", id), shapeSponsor(sponsor, operator))
	return err
}
