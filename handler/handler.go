package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/TurboProjects/Notes-App-Challenge/pkg/response"
	"github.com/TurboProjects/Notes-App-Challenge/pkg/utils"

	"github.com/gin-gonic/gin"
)

// bindJSON decodes the request body into req. An empty body counts as {} so
// that missing fields are reported per field instead of as a parse error.
func bindJSON(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		return response.NewError(http.StatusBadRequest, response.MsgParseError)
	}
	return nil
}

// pathID reads :id. Anything that is not a positive integer cannot match a row.
func pathID(c *gin.Context) (int64, error) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		return 0, response.NotFound()
	}
	return id, nil
}
