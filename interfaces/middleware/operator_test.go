package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"jarayid-admin/interfaces/middleware"
)

func operatorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.Operator("admin"))
	router.GET("/whoami", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, ctx.GetString(middleware.OperatorKey))
	})
	return router
}

func TestOperator_HeaderWins(t *testing.T) {
	router := operatorRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("X-Operator", "night-shift")
	router.ServeHTTP(w, req)

	assert.Equal(t, "night-shift", w.Body.String())
}

func TestOperator_DefaultWhenMissingOrBlank(t *testing.T) {
	router := operatorRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	assert.Equal(t, "admin", w.Body.String())

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("X-Operator", "   ")
	router.ServeHTTP(w, req)
	assert.Equal(t, "admin", w.Body.String())
}
