package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/TurboProjects/Notes-App-Challenge/pkg/response"
	"github.com/TurboProjects/Notes-App-Challenge/types"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(target string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c
}

func TestParseListNotes(t *testing.T) {
	req, err := parseListNotes(testContext("/api/v1/notes/"))
	require.NoError(t, err)
	assert.Nil(t, req.CategoryID)
	assert.Equal(t, types.DefaultPage, req.Page)
	assert.Equal(t, types.DefaultPageSize, req.PageSize)

	req, err = parseListNotes(testContext("/api/v1/notes/?category_id=3&page=2&page_size=500"))
	require.NoError(t, err)
	require.NotNil(t, req.CategoryID)
	assert.Equal(t, int64(3), *req.CategoryID)
	assert.Equal(t, 2, req.Page)
	assert.Equal(t, types.MaxPageSize, req.PageSize)

	req, err = parseListNotes(testContext("/api/v1/notes/?page_size=abc"))
	require.NoError(t, err)
	assert.Equal(t, types.DefaultPageSize, req.PageSize)

	for _, target := range []string{
		"/api/v1/notes/?category_id=abc",
		"/api/v1/notes/?category_id=0",
		"/api/v1/notes/?page=0",
		"/api/v1/notes/?page=last",
	} {
		_, err := parseListNotes(testContext(target))
		var biz *response.BizError
		require.ErrorAs(t, err, &biz, target)
		assert.Equal(t, http.StatusNotFound, biz.Code, target)
	}
}

func TestPageLinks(t *testing.T) {
	c := testContext("/api/v1/notes/?category_id=3&page=2")

	next, previous := pageLinks(c, 2, 10, 35)
	require.NotNil(t, next)
	require.NotNil(t, previous)
	assert.Equal(t, "http://example.com/api/v1/notes/?category_id=3&page=3", *next)
	assert.Equal(t, "http://example.com/api/v1/notes/?category_id=3", *previous)

	next, _ = pageLinks(c, 4, 10, 35)
	assert.Nil(t, next)

	c.Request.Header.Set("X-Forwarded-Proto", "https")
	_, previous = pageLinks(c, 2, 10, 35)
	assert.Equal(t, "https://example.com/api/v1/notes/?category_id=3", *previous)
}

func TestPathID(t *testing.T) {
	c := testContext("/")
	c.Params = gin.Params{{Key: "id", Value: "12"}}
	id, err := pathID(c)
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)

	c.Params = gin.Params{{Key: "id", Value: "-1"}}
	_, err = pathID(c)
	assert.Error(t, err)
}
