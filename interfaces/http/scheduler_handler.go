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

type ISchedulerHandler interface {
	GetSchedulers(ctx *gin.Context)
	GetActiveSchedulers(ctx *gin.Context)
	ToggleSchedule(ctx *gin.Context)
	SaveScheduler(ctx *gin.Context)
}

type SchedulerHandler struct {
	schedulerUsecase usecase.ISchedulerUsecase
}

func NewSchedulerHandler(uc usecase.ISchedulerUsecase) ISchedulerHandler {
	return &SchedulerHandler{schedulerUsecase: uc}
}

func (h *SchedulerHandler) GetSchedulers(ctx *gin.Context) {
	rows, err := h.schedulerUsecase.LoadSchedulers(ctx.Request.Context())
	if err != nil {
		logger.GetLogger().WithField("error", err.Error()).Warn("load schedulers failed")
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"schedulers": rows})
}

func (h *SchedulerHandler) GetActiveSchedulers(ctx *gin.Context) {
	rows, err := h.schedulerUsecase.ActiveSchedulers(ctx.Request.Context())
	if err != nil {
		logger.GetLogger().WithField("error", err.Error()).Warn("load active schedulers failed")
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"schedulers": rows})
}

func (h *SchedulerHandler) ToggleSchedule(ctx *gin.Context) {
	countryID, ok := pathID(ctx, "countryId")
	if !ok {
		return
	}
	operator := ctx.GetString(middleware.OperatorKey)

	row, err := h.schedulerUsecase.ToggleSchedule(ctx.Request.Context(), countryID, operator)
	if err != nil {
		schedulerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"scheduler": row})
}

type saveSchedulerRequest struct {
	Schedulers []model.ScheduleEdit `json:"schedulers"`
}

func (h *SchedulerHandler) SaveScheduler(ctx *gin.Context) {
	var req saveSchedulerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	operator := ctx.GetString(middleware.OperatorKey)

	count, err := h.schedulerUsecase.SaveScheduler(ctx.Request.Context(), req.Schedulers, operator)
	if err != nil {
		schedulerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"submitted": count})
}

func schedulerError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrUnknownSchedulerRow):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrSchedulersNotLoaded):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.GetLogger().WithField("error", err.Error()).Warn("scheduler operation failed")
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	}
}
