package context

import (
	"errors"
	"net/http"

	"github.com/TurboProjects/Notes-App-Challenge/pkg/log"
	"github.com/TurboProjects/Notes-App-Challenge/pkg/response"
	"github.com/TurboProjects/Notes-App-Challenge/pkg/validate"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	CtxUserID    = "user_id"
	CtxTokenID   = "token_id"
	CtxTokenExp  = "token_exp"
	CtxRequestID = "request_id"
)

type HandlerFunc func(*gin.Context) error

// Wrap renders the error returned by h: field errors as 400,
// BizError with its own status, anything else as a logged 500.
func Wrap(h HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := h(c)
		if err == nil {
			return
		}

		// 如果已经写过响应，直接返回
		if c.Writer.Written() {
			return
		}

		var fe validate.FieldErrors
		if errors.As(err, &fe) {
			c.JSON(http.StatusBadRequest, fe)
			return
		}

		var be *response.BizError
		if errors.As(err, &be) {
			response.Fail(c, be.Code, be.Msg)
			return
		}

		log.L.Error("request failed",
			zap.String("request_id", c.GetString(CtxRequestID)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		response.Fail(c, http.StatusInternalServerError, response.MsgServerError)
	}
}

// GetUserID returns the principal set by middleware.Auth.
func GetUserID(c *gin.Context) (int64, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, errors.New("user_id not set")
	}

	uid, ok := v.(int64)
	if !ok {
		return 0, errors.New("user_id has wrong type")
	}

	return uid, nil
}
