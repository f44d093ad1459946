package handler

import (
	"URL_Ping_Monitor/pkg/middleware"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	LoggingError(c *gin.Context, err error, errDescription string, logLevel zapcore.Level)
}

type logger struct {
	log *zap.Logger
}

func (l *logger) LoggingError(c *gin.Context, err error, errDescription string, logLevel zapcore.Level) {
	var data []zapcore.Field
	data = append(data, zap.Error(err))
	data = append(data, zap.String("http_method", c.Request.Method))
	data = append(data, zap.String("http_path", c.Request.URL.Path))
	if requestID := c.GetString(middleware.ContextKeyRequestID); requestID != "" {
		data = append(data, zap.String("request_id", requestID))
	}
	l.log.Log(logLevel, errDescription, data...)
}

func NewLogger(l *zap.Logger) Logger {
	return &logger{
		log: l,
	}
}

func formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", err.Field())
	case "email":
		return fmt.Sprintf("The %s field is not a valid email", err.Field())
	case "url":
		return fmt.Sprintf("The %s field is not a valid url", err.Field())
	case "gte":
		return fmt.Sprintf("The %s field must be greater than or equal to %s", err.Field(), err.Param())
	case "max":
		return fmt.Sprintf("The %s field must be at most %s characters", err.Field(), err.Param())
	case "oneof":
		return fmt.Sprintf("The %s field must be one of: %s", err.Field(), err.Param())
	default:
		return fmt.Sprintf("Validation failed for %s with tag %s.", err.Field(), err.Tag())
	}
}
