package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/photocards-api/pkg/helpers"
)

func newAuthRouter(jwt *helpers.JWTManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Auth(jwt), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"caller": CallerID(c)})
	})
	return r
}

func doGet(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth_MissingHeader(t *testing.T) {
	jwt := &helpers.JWTManager{Secret: []byte("s"), TTL: time.Hour}
	r := newAuthRouter(jwt)

	w := doGet(r, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_WrongScheme(t *testing.T) {
	jwt := &helpers.JWTManager{Secret: []byte("s"), TTL: time.Hour}
	r := newAuthRouter(jwt)

	tok, _, err := jwt.Generate("u1")
	require.NoError(t, err)

	w := doGet(r, "Token "+tok)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_ValidToken(t *testing.T) {
	jwt := &helpers.JWTManager{Secret: []byte("s"), TTL: time.Hour}
	r := newAuthRouter(jwt)

	tok, _, err := jwt.Generate("u1")
	require.NoError(t, err)

	w := doGet(r, "Bearer "+tok)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"caller":"u1"}`, w.Body.String())
}

// All authentication failures must be indistinguishable to the client: the
// response for an expired or tampered token matches a missing header exactly.
func TestAuth_FailuresAreGeneric(t *testing.T) {
	jwt := &helpers.JWTManager{Secret: []byte("s"), TTL: time.Hour}
	expired := &helpers.JWTManager{Secret: []byte("s"), TTL: -time.Minute}
	r := newAuthRouter(jwt)

	missing := doGet(r, "")
	require.Equal(t, http.StatusUnauthorized, missing.Code)

	expTok, _, err := expired.Generate("u1")
	require.NoError(t, err)

	validTok, _, err := jwt.Generate("u1")
	require.NoError(t, err)
	tampered := validTok[:len(validTok)-4] + "AAAA"

	for _, header := range []string{
		"Bearer " + expTok,
		"Bearer " + tampered,
		"Bearer not.a.jwt",
		"Bearer ",
	} {
		w := doGet(r, header)
		require.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
		require.Equal(t, missing.Body.String(), w.Body.String(), "header %q", header)
	}
}
