package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Detail is the body of every non-validation error.
type Detail struct {
	Detail string `json:"detail"`
}

func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func Fail(c *gin.Context, httpStatus int, msg string) {
	c.JSON(httpStatus, Detail{Detail: msg})
}
