package utils

import (
	"errors"
	"net/http"
	"simrs-service/internal/pkg/constvars"
	"simrs-service/internal/pkg/dto/responses"
	"simrs-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		log.Error(customErr.DevMessage,
			zap.String("kind", string(customErr.Kind)),
			zap.Any("location", map[string]interface{}{
				"file":          customErr.Location.File,
				"line":          customErr.Location.Line,
				"function_name": customErr.Location.FunctionName,
			}),
		)
	} else {
		log.Error(err.Error())
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	if customErr != nil && customErr.Kind == exceptions.KindRateLimit && customErr.RetryAfter > 0 {
		w.Header().Set(constvars.HeaderRetryAfter, formatSeconds(customErr.RetryAfter))
	}
	w.WriteHeader(code)

	response := responses.ErrorDTO{
		StatusCode: code,
		Success:    false,
		Message:    clientMessage,
	}
	if customErr != nil {
		response.Kind = string(customErr.Kind)
		response.Code = customErr.Code
		if GetEnvString("APP_ENV", "development") != "production" {
			response.DevMessage = customErr.DevMessage
		}
	}
	json.NewEncoder(w).Encode(response)
}
