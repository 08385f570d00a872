package http

import (
	"errors"
	"net/http"

	"jarayid-admin/domain/model"
	"jarayid-admin/infrastructure/logger"
	"jarayid-admin/interfaces/middleware"
	"jarayid-admin/usecase"

	"github.com/gin-gonic/gin"
)

type ISponsorHandler interface {
	GetSponsors(ctx *gin.Context)
	GetActiveSponsors(ctx *gin.Context)
	CreateSponsor(ctx *gin.Context)
	UpdateSponsor(ctx *gin.Context)
}

type SponsorHandler struct {
	sponsorUsecase usecase.ISponsorUsecase
}

func NewSponsorHandler(uc usecase.ISponsorUsecase) ISponsorHandler {
	return &SponsorHandler{sponsorUsecase: uc}
}

func (h *SponsorHandler) GetSponsors(ctx *gin.Context) {
	sponsors, err := h.sponsorUsecase.Sponsors(ctx.Request.Context())
	if err != nil {
		logger.GetLogger().WithField("error", err.Error()).Warn("load sponsors failed")
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	if sponsors == nil {
		sponsors = []model.Sponsor{}
	}
	ctx.JSON(http.StatusOK, gin.H{"sponsors": sponsors})
}

func (h *SponsorHandler) GetActiveSponsors(ctx *gin.Context) {
	sponsors, err := h.sponsorUsecase.ActiveSponsors(ctx.Request.Context())
	if err != nil {
		logger.GetLogger().WithField("error", err.Error()).Warn("load active sponsors failed")
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	if sponsors == nil {
		sponsors = []model.Sponsor{}
	}
	ctx.JSON(http.StatusOK, gin.H{"sponsors": sponsors})
}

func (h *SponsorHandler) CreateSponsor(ctx *gin.Context) {
	var req model.Sponsor
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	operator := ctx.GetString(middleware.OperatorKey)

	sponsor, err := h.sponsorUsecase.CreateSponsor(ctx.Request.Context(), req, operator)
	if err != nil {
		sponsorError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"sponsor": sponsor})
}

func (h *SponsorHandler) UpdateSponsor(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req model.Sponsor
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	operator := ctx.GetString(middleware.OperatorKey)

	if err := h.sponsorUsecase.UpdateSponsor(ctx.Request.Context(), id, req, operator); err != nil {
		sponsorError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"id": id, "updated": true})
}

func sponsorError(ctx *gin.Context, err error) {
	if errors.Is(err, usecase.ErrSponsorNameRequired) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	logger.GetLogger().WithField("error", err.Error()).Warn("sponsor operation failed")
	ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
}
