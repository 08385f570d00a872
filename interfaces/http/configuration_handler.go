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

type IConfigurationHandler interface {
	GetJoiningWords(ctx *gin.Context)
	GetActiveJoiningWords(ctx *gin.Context)
	CreateJoiningWord(ctx *gin.Context)
	UpdateJoiningWord(ctx *gin.Context)
	ToggleJoiningWord(ctx *gin.Context)

	GetConfigurations(ctx *gin.Context)
	CreateConfiguration(ctx *gin.Context)
	UpdateConfiguration(ctx *gin.Context)
	ToggleConfiguration(ctx *gin.Context)
}

type ConfigurationHandler struct {
	configurationUsecase usecase.IConfigurationUsecase
}

func NewConfigurationHandler(uc usecase.IConfigurationUsecase) IConfigurationHandler {
	return &ConfigurationHandler{configurationUsecase: uc}
}

func (h *ConfigurationHandler) GetJoiningWords(ctx *gin.Context) {
	words, err := h.configurationUsecase.JoiningWords(ctx.Request.Context())
	if err != nil {
		logger.GetLogger().WithField("error", err.Error()).Warn("load joining words failed")
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	if words == nil {
		words = []model.JoiningWord{}
	}
	ctx.JSON(http.StatusOK, gin.H{"joining_words": words})
}

func (h *ConfigurationHandler) GetActiveJoiningWords(ctx *gin.Context) {
	words, err := h.configurationUsecase.ActiveJoiningWords(ctx.Request.Context())
	if err != nil {
		logger.GetLogger().WithField("error", err.Error()).Warn("load active joining words failed")
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	if words == nil {
		words = []model.JoiningWord{}
	}
	ctx.JSON(http.StatusOK, gin.H{"joining_words": words})
}

func (h *ConfigurationHandler) CreateJoiningWord(ctx *gin.Context) {
	var req model.JoiningWord
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	operator := ctx.GetString(middleware.OperatorKey)

	word, err := h.configurationUsecase.CreateJoiningWord(ctx.Request.Context(), req, operator)
	if err != nil {
		configurationError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"joining_word": word})
}

func (h *ConfigurationHandler) UpdateJoiningWord(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req model.JoiningWord
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	operator := ctx.GetString(middleware.OperatorKey)

	if err := h.configurationUsecase.UpdateJoiningWord(ctx.Request.Context(), id, req, operator); err != nil {
		configurationError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"id": id, "updated": true})
}

func (h *ConfigurationHandler) ToggleJoiningWord(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req model.StatusPayload
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	operator := ctx.GetString(middleware.OperatorKey)

	if err := h.configurationUsecase.ToggleJoiningWord(ctx.Request.Context(), id, req.Status, operator); err != nil {
		configurationError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"id": id, "status": req.Status})
}

func (h *ConfigurationHandler) GetConfigurations(ctx *gin.Context) {
	entries, err := h.configurationUsecase.Configurations(ctx.Request.Context())
	if err != nil {
		logger.GetLogger().WithField("error", err.Error()).Warn("load configurations failed")
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	if entries == nil {
		entries = []model.ConfigurationEntry{}
	}
	ctx.JSON(http.StatusOK, gin.H{"configurations": entries})
}

func (h *ConfigurationHandler) CreateConfiguration(ctx *gin.Context) {
	var req model.ConfigurationEntry
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	operator := ctx.GetString(middleware.OperatorKey)

	entry, err := h.configurationUsecase.CreateConfiguration(ctx.Request.Context(), req, operator)
	if err != nil {
		configurationError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"configuration": entry})
}

func (h *ConfigurationHandler) UpdateConfiguration(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req model.ConfigurationEntry
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	operator := ctx.GetString(middleware.OperatorKey)

	if err := h.configurationUsecase.UpdateConfiguration(ctx.Request.Context(), id, req, operator); err != nil {
		configurationError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"id": id, "updated": true})
}

func (h *ConfigurationHandler) ToggleConfiguration(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req model.StatusPayload
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	operator := ctx.GetString(middleware.OperatorKey)

	if err := h.configurationUsecase.ToggleConfiguration(ctx.Request.Context(), id, req.Status, operator); err != nil {
		configurationError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"id": id, "status": req.Status})
}

func configurationError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrJoiningWordRequired),
		errors.Is(err, usecase.ErrConfigValueRequired),
		errors.Is(err, usecase.ErrInvalidConfigKey),
		errors.Is(err, usecase.ErrInvalidStatusValue):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.GetLogger().WithField("error", err.Error()).Warn("configuration operation failed")
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	}
}
