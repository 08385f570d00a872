package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// OperatorKey is the gin context key holding the acting operator's name.
const OperatorKey = "operator"

// Operator resolves the acting operator from the X-Operator header, falling
// back to the configured default. Every mutating endpoint reads this value
// for the audit trail and for the operator column on the backend.
func Operator(defaultOperator string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		operator := strings.TrimSpace(ctx.GetHeader("X-Operator"))
		if operator == "" {
			operator = defaultOperator
		}
		ctx.Set(OperatorKey, operator)
		ctx.Next()
	}
}
