package middleware

import (
	"net/http"
	"time"

	"ncnews/internal/logger"

	"go.uber.org/zap"
)

func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(lrw, r)

		fields := []zap.Field{
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("query", r.URL.RawQuery),
			zap.Int("status", lrw.statusCode),
			zap.Duration("duration", time.Since(start)),
		}

		log := logger.WithCtx(r.Context())
		switch {
		case lrw.statusCode >= http.StatusInternalServerError:
			log.Error("HTTP-запрос", fields...)
		case lrw.statusCode >= http.StatusBadRequest:
			log.Warn("HTTP-запрос", fields...)
		default:
			log.Info("HTTP-запрос", fields...)
		}
	})
}

type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}
