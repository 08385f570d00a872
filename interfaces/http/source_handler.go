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

type ISourceHandler interface {
	GetCountries(ctx *gin.Context)
	ToggleCountry(ctx *gin.Context)
	GetSources(ctx *gin.Context)
	ToggleSource(ctx *gin.Context)
	SaveSources(ctx *gin.Context)
}

type SourceHandler struct {
	sourceUsecase usecase.ISourceUsecase
}

func NewSourceHandler(uc usecase.ISourceUsecase) ISourceHandler {
	return &SourceHandler{sourceUsecase: uc}
}

func (h *SourceHandler) GetCountries(ctx *gin.Context) {
	countries, err := h.sourceUsecase.LoadCountries(ctx.Request.Context())
	if err != nil {
		logger.GetLogger().WithField("error", err.Error()).Warn("load countries failed")
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"countries": countries})
}

func (h *SourceHandler) ToggleCountry(ctx *gin.Context) {
	countryID, ok := pathID(ctx, "countryId")
	if !ok {
		return
	}
	operator := ctx.GetString(middleware.OperatorKey)

	country, err := h.sourceUsecase.ToggleCountry(ctx.Request.Context(), countryID, operator)
	if err != nil {
		sourceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"country": country})
}

func (h *SourceHandler) GetSources(ctx *gin.Context) {
	countryID, ok := pathID(ctx, "countryId")
	if !ok {
		return
	}
	sources, err := h.sourceUsecase.LoadSources(ctx.Request.Context(), countryID)
	if err != nil {
		logger.GetLogger().WithField("country_id", countryID).WithField("error", err.Error()).Warn("load sources failed")
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"country_id": countryID, "sources": sources})
}

func (h *SourceHandler) ToggleSource(ctx *gin.Context) {
	countryID, ok := pathID(ctx, "countryId")
	if !ok {
		return
	}
	sourceID, ok := pathID(ctx, "sourceId")
	if !ok {
		return
	}
	operator := ctx.GetString(middleware.OperatorKey)

	source, err := h.sourceUsecase.ToggleSource(ctx.Request.Context(), countryID, sourceID, operator)
	if err != nil {
		sourceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"source": source})
}

type saveSourcesRequest struct {
	Sources []model.SourceEdit `json:"sources"`
}

func (h *SourceHandler) SaveSources(ctx *gin.Context) {
	countryID, ok := pathID(ctx, "countryId")
	if !ok {
		return
	}
	var req saveSourcesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	operator := ctx.GetString(middleware.OperatorKey)

	count, message, err := h.sourceUsecase.SaveSources(ctx.Request.Context(), countryID, req.Sources, operator)
	if err != nil {
		sourceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"submitted": count, "message": message})
}

func sourceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrUnknownCountry), errors.Is(err, usecase.ErrUnknownSource):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrSourcesNotLoaded):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.GetLogger().WithField("error", err.Error()).Warn("source operation failed")
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	}
}
