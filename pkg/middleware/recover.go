package middleware

import (
	"net/http"

	"usuarios-admin/pkg/utils"

	"go.uber.org/zap"
)

// Recover turns a panic into a logged 500
func Recover(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("PANIC recovered",
						zap.Any("error", err),
						zap.String("path", r.URL.Path),
						zap.String("method", r.Method),
						zap.Stack("stack"),
					)

					utils.ResponseInternalError(w, utils.MsgInternalError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
