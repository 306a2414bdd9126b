package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	ctxutil "github.com/TurboProjects/Notes-App-Challenge/pkg/context"
	"github.com/TurboProjects/Notes-App-Challenge/pkg/jwt"
	"github.com/TurboProjects/Notes-App-Challenge/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

var secret = []byte("test-secret")

type revoked map[string]bool

func (r revoked) IsRevoked(_ context.Context, jti string) bool {
	return r[jti]
}

func newEngine(tokens TokenChecker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", Auth(secret, tokens), func(c *gin.Context) {
		uid, err := ctxutil.GetUserID(c)
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": uid, "jti": c.GetString(ctxutil.CtxTokenID)})
	})
	return r
}

func get(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth(t *testing.T) {
	access, claims, err := jwt.GenerateToken(secret, 42, jwt.TypeAccess, time.Hour)
	require.NoError(t, err)
	refresh, _, err := jwt.GenerateToken(secret, 42, jwt.TypeRefresh, time.Hour)
	require.NoError(t, err)
	expired, _, err := jwt.GenerateToken(secret, 42, jwt.TypeAccess, -time.Minute)
	require.NoError(t, err)
	forged, _, err := jwt.GenerateToken([]byte("other"), 42, jwt.TypeAccess, time.Hour)
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		status int
		detail string
	}{
		{"missing header", "", http.StatusUnauthorized, response.MsgNotAuthenticated},
		{"wrong scheme", "Token " + access, http.StatusUnauthorized, MsgTokenInvalid},
		{"refresh token", "Bearer " + refresh, http.StatusUnauthorized, MsgTokenInvalid},
		{"expired", "Bearer " + expired, http.StatusUnauthorized, MsgTokenInvalid},
		{"forged", "Bearer " + forged, http.StatusUnauthorized, MsgTokenInvalid},
		{"valid", "Bearer " + access, http.StatusOK, ""},
	}

	r := newEngine(revoked{})
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := get(r, tc.header)
			assert.Equal(t, tc.status, w.Code)
			if tc.detail != "" {
				assert.Equal(t, tc.detail, gjson.Get(w.Body.String(), "detail").String())
				return
			}
			assert.Equal(t, int64(42), gjson.Get(w.Body.String(), "user_id").Int())
			assert.Equal(t, claims.ID, gjson.Get(w.Body.String(), "jti").String())
		})
	}
}

func TestAuth_Revoked(t *testing.T) {
	access, claims, err := jwt.GenerateToken(secret, 7, jwt.TypeAccess, time.Hour)
	require.NoError(t, err)

	w := get(newEngine(revoked{claims.ID: true}), "Bearer "+access)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, MsgTokenRevoked, gjson.Get(w.Body.String(), "detail").String())
}
