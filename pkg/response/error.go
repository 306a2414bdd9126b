package response

import (
	"net/http"

	"github.com/TurboProjects/Notes-App-Challenge/pkg/log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	MsgNotAuthenticated = "Authentication credentials were not provided."
	MsgForbidden        = "You do not have permission to perform this action."
	MsgNotFound         = "Not found."
	MsgInvalidPage      = "Invalid page."
	MsgParseError       = "JSON parse error"
	MsgServerError      = "A server error occurred."
)

// BizError carries an HTTP status and a detail message to the client.
type BizError struct {
	Code int
	Msg  string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

func NotFound() *BizError {
	return NewError(http.StatusNotFound, MsgNotFound)
}

func Forbidden() *BizError {
	return NewError(http.StatusForbidden, MsgForbidden)
}

func Unauthorized(msg string) *BizError {
	return NewError(http.StatusUnauthorized, msg)
}

// ErrorMiddleware 捕获 panic，记录堆栈后返回 500
func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.L.Error("panic recovered",
					zap.Any("panic", r),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
				)
				Abort(c, http.StatusInternalServerError, MsgServerError)
			}
		}()

		c.Next()
	}
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Detail{Detail: msg})
}
