package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"jarayid-admin/domain/bulletin"
	"jarayid-admin/domain/model"
	"jarayid-admin/domain/repository"
	"jarayid-admin/infrastructure/logger"
)

var (
	// ErrBlankRemarks rejects a rejection with empty or whitespace-only
	// remarks before any network call is made.
	ErrBlankRemarks = errors.New("cancellation remarks are required")

	// ErrGenerationInFlight guards the single in-flight video request per
	// bulletin.
	ErrGenerationInFlight = errors.New("video generation already in progress for this bulletin")

	ErrUnknownBulletin = errors.New("unknown bulletin")
)

type IBulletinUsecase interface {
	LoadBulletins(ctx context.Context) ([]model.Bulletin, error)
	Bulletins() []model.Bulletin
	Approve(ctx context.Context, id int64, operator string) error
	Reject(ctx context.Context, id int64, remarks, operator string) error
	RequestVideo(ctx context.Context, id int64, operator string) (string, error)
}

type bulletinUsecase struct {
	scripts      repository.IScriptGeneration
	video        repository.IVideoGenerator
	audit        repository.IAuditLog
	videoTimeout time.Duration

	mu        sync.Mutex
	bulletins map[int64]*model.Bulletin
	order     []int64
	inflight  map[int64]bool
}

func NewBulletinUsecase(
	scripts repository.IScriptGeneration,
	video repository.IVideoGenerator,
	audit repository.IAuditLog,
	videoTimeout time.Duration,
) IBulletinUsecase {
	if videoTimeout <= 0 {
		videoTimeout = 2 * time.Minute
	}
	return &bulletinUsecase{
		scripts:      scripts,
		video:        video,
		audit:        audit,
		videoTimeout: videoTimeout,
		bulletins:    map[int64]*model.Bulletin{},
		inflight:     map[int64]bool{},
	}
}

// LoadBulletins fetches the flat fragment list and assembles it into the
// reviewable bulletin snapshot this usecase operates on. Reloading
// replaces the snapshot; in-flight video flags survive a reload.
func (u *bulletinUsecase) LoadBulletins(ctx context.Context) ([]model.Bulletin, error) {
	fragments, err := u.scripts.GetScripts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load scripts: %w", err)
	}

	rows := bulletin.Assemble(fragments)

	u.mu.Lock()
	defer u.mu.Unlock()
	u.bulletins = make(map[int64]*model.Bulletin, len(rows))
	u.order = make([]int64, 0, len(rows))
	for _, row := range rows {
		b := &model.Bulletin{
			ID:             row.FragmentID,
			CountryID:      row.CountryID,
			CountryName:    row.CountryName,
			CreatedAt:      time.Now().UTC(),
			ApprovalStatus: approvalFromStatus(row.Status),
			VideoGenStatus: model.VideoPending,
			Overview:       row.Overview,
		}
		u.bulletins[b.ID] = b
		u.order = append(u.order, b.ID)
	}
	return u.snapshotLocked(), nil
}

func (u *bulletinUsecase) Bulletins() []model.Bulletin {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.snapshotLocked()
}

func (u *bulletinUsecase) snapshotLocked() []model.Bulletin {
	out := make([]model.Bulletin, 0, len(u.order))
	for _, id := range u.order {
		out = append(out, *u.bulletins[id])
	}
	return out
}

// Approve confirms the remote update before mutating local state; a
// failed call leaves the bulletin untouched.
func (u *bulletinUsecase) Approve(ctx context.Context, id int64, operator string) error {
	u.mu.Lock()
	_, ok := u.bulletins[id]
	u.mu.Unlock()
	if !ok {
		return ErrUnknownBulletin
	}

	if err := u.scripts.UpdateApproval(ctx, id, model.ApprovalApproved, "", operator); err != nil {
		return err
	}

	u.mu.Lock()
	if b, ok := u.bulletins[id]; ok {
		b.ApprovalStatus = model.ApprovalApproved
		b.CancellationRemarks = ""
	}
	u.mu.Unlock()

	u.recordAction(ctx, operator, "bulletin.approve", "script-generation", id, nil)
	return nil
}

// Reject validates remarks locally first: a blank string means zero
// network calls and unchanged state.
func (u *bulletinUsecase) Reject(ctx context.Context, id int64, remarks, operator string) error {
	remarks = strings.TrimSpace(remarks)
	if remarks == "" {
		return ErrBlankRemarks
	}

	u.mu.Lock()
	_, ok := u.bulletins[id]
	u.mu.Unlock()
	if !ok {
		return ErrUnknownBulletin
	}

	if err := u.scripts.UpdateApproval(ctx, id, model.ApprovalRejected, remarks, operator); err != nil {
		return err
	}

	u.mu.Lock()
	if b, ok := u.bulletins[id]; ok {
		b.ApprovalStatus = model.ApprovalRejected
		b.CancellationRemarks = remarks
	}
	u.mu.Unlock()

	u.recordAction(ctx, operator, "bulletin.reject", "script-generation", id, &remarks)
	return nil
}

// RequestVideo triggers the external render with a deadline so a hung
// provider cannot wedge the bulletin forever. One request per bulletin
// may be in flight; the flag is released on every path.
func (u *bulletinUsecase) RequestVideo(ctx context.Context, id int64, operator string) (string, error) {
	u.mu.Lock()
	b, ok := u.bulletins[id]
	if !ok {
		u.mu.Unlock()
		return "", ErrUnknownBulletin
	}
	if u.inflight[id] {
		u.mu.Unlock()
		return "", ErrGenerationInFlight
	}
	u.inflight[id] = true
	b.VideoGenStatus = model.VideoGenerating
	countryID := b.CountryID
	u.mu.Unlock()

	defer func() {
		u.mu.Lock()
		delete(u.inflight, id)
		u.mu.Unlock()
	}()

	genCtx, cancel := context.WithTimeout(ctx, u.videoTimeout)
	defer cancel()

	videoURL, err := u.video.GenerateNews(genCtx, countryID)

	u.mu.Lock()
	b, ok = u.bulletins[id]
	if err != nil {
		if ok {
			b.VideoGenStatus = model.VideoFailed
		}
		u.mu.Unlock()
		return "", err
	}
	if ok {
		b.VideoGenStatus = model.VideoReady
		b.VideoURL = videoURL
	}
	u.mu.Unlock()

	u.recordAction(ctx, operator, "bulletin.generate_video", "heygen/generate-news", id, &videoURL)
	return videoURL, nil
}

func (u *bulletinUsecase) recordAction(ctx context.Context, operator, action, resource string, recordID int64, detail *string) {
	if u.audit == nil {
		return
	}
	err := u.audit.Record(ctx, []*model.OperatorAction{{
		Operator:  operator,
		Action:    action,
		Resource:  resource,
		RecordID:  &recordID,
		Detail:    detail,
		CreatedAt: time.Now().UTC(),
	}})
	if err != nil {
		logger.GetLogger().WithField("action", action).WithField("error", err).Warn("audit record failed")
	}
}

func approvalFromStatus(status string) model.ApprovalStatus {
	switch model.ApprovalStatus(strings.ToUpper(status)) {
	case model.ApprovalApproved:
		return model.ApprovalApproved
	case model.ApprovalRejected:
		return model.ApprovalRejected
	default:
		return model.ApprovalPending
	}
}
