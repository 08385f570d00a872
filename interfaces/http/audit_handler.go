package http

import (
	"net/http"
	"strconv"

	"jarayid-admin/domain/model"
	"jarayid-admin/domain/repository"
	"jarayid-admin/infrastructure/logger"

	"github.com/gin-gonic/gin"
)

type IAuditHandler interface {
	GetRecentActions(ctx *gin.Context)
}

type AuditHandler struct {
	auditLog repository.IAuditLog
}

func NewAuditHandler(auditLog repository.IAuditLog) IAuditHandler {
	return &AuditHandler{auditLog: auditLog}
}

func (h *AuditHandler) GetRecentActions(ctx *gin.Context) {
	limit := 50
	if v := ctx.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}
	actions, err := h.auditLog.ListRecent(ctx.Request.Context(), limit)
	if err != nil {
		logger.GetLogger().WithField("error", err.Error()).Warn("load audit trail failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if actions == nil {
		actions = []*model.OperatorAction{}
	}
	ctx.JSON(http.StatusOK, gin.H{"actions": actions})
}
