package middleware

import (
	"net/http"
	"runtime/debug"

	"ncnews/internal/logger"
	"ncnews/internal/models"
	helpers "ncnews/internal/utils/helpres"

	"go.uber.org/zap"
)

func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.WithCtx(r.Context()).Error("panic recovered",
					zap.Any("panic", rec),
					zap.ByteString("stack", debug.Stack()),
					zap.String("path", r.URL.Path),
					zap.String("method", r.Method),
				)

				helpers.Error(w, models.ErrUnhandledFault.Status, models.ErrUnhandledFault.Msg)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
