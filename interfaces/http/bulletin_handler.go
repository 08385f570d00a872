package http

import (
	"errors"
	"net/http"
	"strconv"

	"jarayid-admin/infrastructure/logger"
	"jarayid-admin/interfaces/middleware"
	"jarayid-admin/usecase"

	"github.com/gin-gonic/gin"
)

type IBulletinHandler interface {
	GetBulletins(ctx *gin.Context)
	Approve(ctx *gin.Context)
	Reject(ctx *gin.Context)
	GenerateVideo(ctx *gin.Context)
}

type BulletinHandler struct {
	bulletinUsecase usecase.IBulletinUsecase
}

func NewBulletinHandler(uc usecase.IBulletinUsecase) IBulletinHandler {
	return &BulletinHandler{bulletinUsecase: uc}
}

func (h *BulletinHandler) GetBulletins(ctx *gin.Context) {
	bulletins, err := h.bulletinUsecase.LoadBulletins(ctx.Request.Context())
	if err != nil {
		logger.GetLogger().WithField("error", err.Error()).Warn("load bulletins failed")
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"bulletins": bulletins})
}

func (h *BulletinHandler) Approve(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	operator := ctx.GetString(middleware.OperatorKey)

	err := h.bulletinUsecase.Approve(ctx.Request.Context(), id, operator)
	if err != nil {
		bulletinError(ctx, id, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"id": id, "status": "APPROVED"})
}

type rejectRequest struct {
	Remarks string `json:"remarks"`
}

func (h *BulletinHandler) Reject(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req rejectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	operator := ctx.GetString(middleware.OperatorKey)

	err := h.bulletinUsecase.Reject(ctx.Request.Context(), id, req.Remarks, operator)
	if err != nil {
		bulletinError(ctx, id, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"id": id, "status": "REJECTED"})
}

func (h *BulletinHandler) GenerateVideo(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	operator := ctx.GetString(middleware.OperatorKey)

	videoURL, err := h.bulletinUsecase.RequestVideo(ctx.Request.Context(), id, operator)
	if err != nil {
		bulletinError(ctx, id, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"id": id, "status": "READY", "video_url": videoURL})
}

func bulletinError(ctx *gin.Context, id int64, err error) {
	switch {
	case errors.Is(err, usecase.ErrUnknownBulletin):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrBlankRemarks):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrGenerationInFlight):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.GetLogger().WithField("id", id).WithField("error", err.Error()).Warn("bulletin operation failed")
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	}
}

// pathID parses a numeric path parameter, answering 400 itself on garbage.
func pathID(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}
