package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"ncnews/internal/logger"
	"ncnews/internal/models"
	helpers "ncnews/internal/utils/helpres"

	"go.uber.org/zap"
)

var errTrailingData = errors.New("unexpected data after JSON body")

// errorRule пытается превратить ошибку в ответ. при ok=false ошибка уходит следующему правилу.
type errorRule func(r *http.Request, err error) (status int, msg string, ok bool)

// errorChain проверяется по порядку; последнее правило срабатывает всегда.
var errorChain = []errorRule{
	domainError,
	malformedBody,
	unhandledFault,
}

// WriteError: единственная точка, где ошибка становится HTTP-ответом {msg}.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	for _, rule := range errorChain {
		if status, msg, ok := rule(r, err); ok {
			helpers.Error(w, status, msg)
			return
		}
	}
}

func domainError(r *http.Request, err error) (int, string, bool) {
	apiErr, ok := models.AsAPIError(err)
	if !ok {
		return 0, "", false
	}
	return apiErr.Status, apiErr.Msg, true
}

func malformedBody(r *http.Request, err error) (int, string, bool) {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr),
		errors.As(err, &typeErr),
		errors.Is(err, errTrailingData),
		errors.Is(err, io.EOF),
		errors.Is(err, io.ErrUnexpectedEOF):
		logger.WithCtx(r.Context()).Warn("Невалидный JSON в теле запроса", zap.Error(err))
		return models.ErrMalformedBody.Status, models.ErrMalformedBody.Msg, true
	}
	return 0, "", false
}

// unhandledFault скрывает детали от клиента; сама ошибка уходит только в лог.
func unhandledFault(r *http.Request, err error) (int, string, bool) {
	logger.WithCtx(r.Context()).Error("Необработанная ошибка",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	return models.ErrUnhandledFault.Status, models.ErrUnhandledFault.Msg, true
}

// decodeJSON читает тело в dst. Ошибки разбора классифицирует WriteError.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if dec.More() {
		return errTrailingData
	}
	return nil
}

// NotFound отвечает на пути, которым не нашлось маршрута.
func NotFound(w http.ResponseWriter, r *http.Request) {
	WriteError(w, r, models.ErrInvalidPath)
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	WriteError(w, r, models.ErrMethodNotAllowed)
}
