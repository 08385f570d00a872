package http

import (
	"net/http"

	"jarayid-admin/domain/model"
	"jarayid-admin/domain/repository"
	"jarayid-admin/infrastructure/logger"

	"github.com/gin-gonic/gin"
)

type IReferenceHandler interface {
	GetCategories(ctx *gin.Context)
}

// ReferenceHandler exposes the legacy catalogue read-through, cached.
type ReferenceHandler struct {
	reference repository.IReferenceData
	cache     repository.IReferenceCache
}

func NewReferenceHandler(reference repository.IReferenceData, cache repository.IReferenceCache) IReferenceHandler {
	return &ReferenceHandler{reference: reference, cache: cache}
}

func (h *ReferenceHandler) GetCategories(ctx *gin.Context) {
	if h.cache != nil {
		if categories, ok := h.cache.GetCategories(ctx.Request.Context()); ok {
			ctx.JSON(http.StatusOK, gin.H{"categories": categories, "cached": true})
			return
		}
	}
	categories, err := h.reference.GetCategories(ctx.Request.Context())
	if err != nil {
		logger.GetLogger().WithField("error", err.Error()).Warn("load categories failed")
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	if h.cache != nil {
		h.cache.SetCategories(ctx.Request.Context(), categories)
	}
	if categories == nil {
		categories = []model.Category{}
	}
	ctx.JSON(http.StatusOK, gin.H{"categories": categories, "cached": false})
}
