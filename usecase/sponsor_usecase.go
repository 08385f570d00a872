package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"jarayid-admin/domain/model"
	"jarayid-admin/domain/repository"
	"jarayid-admin/infrastructure/logger"
)

var ErrSponsorNameRequired = errors.New("sponsor name is required")

type ISponsorUsecase interface {
	Sponsors(ctx context.Context) ([]model.Sponsor, error)
	ActiveSponsors(ctx context.Context) ([]model.Sponsor, error)
	CreateSponsor(ctx context.Context, sponsor model.Sponsor, operator string) (model.Sponsor, error)
	UpdateSponsor(ctx context.Context, id int64, sponsor model.Sponsor, operator string) error
}

type sponsorUsecase struct {
	gateway repository.ISponsor
	audit   repository.IAuditLog
}

func NewSponsorUsecase(gateway repository.ISponsor, audit repository.IAuditLog) ISponsorUsecase {
	return &sponsorUsecase{gateway: gateway, audit: audit}
}

func (u *sponsorUsecase) Sponsors(ctx context.Context) ([]model.Sponsor, error) {
	return u.gateway.GetSponsors(ctx)
}

func (u *sponsorUsecase) ActiveSponsors(ctx context.Context) ([]model.Sponsor, error) {
	return u.gateway.GetActiveSponsors(ctx)
}

// CreateSponsor persists a new sponsor, active by default, and returns it
// with the backend-assigned id.
func (u *sponsorUsecase) CreateSponsor(ctx context.Context, sponsor model.Sponsor, operator string) (model.Sponsor, error) {
	sponsor.Name = strings.TrimSpace(sponsor.Name)
	if sponsor.Name == "" {
		return model.Sponsor{}, ErrSponsorNameRequired
	}
	if sponsor.Status == "" {
		sponsor.Status = model.StatusActive
	}

	id, err := u.gateway.CreateSponsor(ctx, sponsor, operator)
	if err != nil {
		return model.Sponsor{}, err
	}
	sponsor.ID = id
	u.auditAction(ctx, operator, "sponsor.create", id, &sponsor.Name)
	return sponsor, nil
}

func (u *sponsorUsecase) UpdateSponsor(ctx context.Context, id int64, sponsor model.Sponsor, operator string) error {
	sponsor.Name = strings.TrimSpace(sponsor.Name)
	if sponsor.Name == "" {
		return ErrSponsorNameRequired
	}

	if err := u.gateway.UpdateSponsor(ctx, id, sponsor, operator); err != nil {
		return err
	}
	u.auditAction(ctx, operator, "sponsor.update", id, &sponsor.Name)
	return nil
}

func (u *sponsorUsecase) auditAction(ctx context.Context, operator, action string, recordID int64, detail *string) {
	if u.audit == nil {
		return
	}
	err := u.audit.Record(ctx, []*model.OperatorAction{{
		Operator:  operator,
		Action:    action,
		Resource:  "sponsor",
		RecordID:  &recordID,
		Detail:    detail,
		CreatedAt: time.Now().UTC(),
	}})
	if err != nil {
		logger.GetLogger().WithField("action", action).WithField("error", err).Warn("audit record failed")
	}
}
