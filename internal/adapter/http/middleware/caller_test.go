package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

var testHolder = common.HexToAddress("0x1111111111111111111111111111111111111111")

func signToken(t *testing.T, secret, sub string, method jwt.SigningMethod) string {
	t.Helper()
	tok := jwt.NewWithClaims(method, jwt.RegisteredClaims{
		Subject:   sub,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	s, err := tok.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func newCallerRouter(cfg CallerConfig) *gin.Engine {
	r := gin.New()
	r.GET("/whoami", Caller(cfg), func(c *gin.Context) {
		addr, ok := CallerFrom(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, addr.Hex())
	})
	return r
}

func TestCaller(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name       string
		cfg        CallerConfig
		header     map[string]string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "missing header",
			cfg:        CallerConfig{JWTSecret: testSecret},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid token",
			cfg:        CallerConfig{JWTSecret: testSecret},
			header:     map[string]string{"Authorization": "Bearer " + signToken(t, testSecret, testHolder.Hex(), jwt.SigningMethodHS256)},
			wantStatus: http.StatusOK,
			wantBody:   testHolder.Hex(),
		},
		{
			name:       "wrong secret",
			cfg:        CallerConfig{JWTSecret: testSecret},
			header:     map[string]string{"Authorization": "Bearer " + signToken(t, "other", testHolder.Hex(), jwt.SigningMethodHS256)},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unexpected signing method",
			cfg:        CallerConfig{JWTSecret: testSecret},
			header:     map[string]string{"Authorization": "Bearer " + signToken(t, testSecret, testHolder.Hex(), jwt.SigningMethodHS512)},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "subject is not an address",
			cfg:        CallerConfig{JWTSecret: testSecret},
			header:     map[string]string{"Authorization": "Bearer " + signToken(t, testSecret, "user-42", jwt.SigningMethodHS256)},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "bypass header ignored when disabled",
			cfg:        CallerConfig{JWTSecret: testSecret},
			header:     map[string]string{DevBypassHeader: testHolder.Hex()},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "bypass header accepted when enabled",
			cfg:        CallerConfig{DevBypassAuth: true},
			header:     map[string]string{DevBypassHeader: testHolder.Hex()},
			wantStatus: http.StatusOK,
			wantBody:   testHolder.Hex(),
		},
		{
			name:       "bypass header must be an address",
			cfg:        CallerConfig{DevBypassAuth: true},
			header:     map[string]string{DevBypassHeader: "0x0000000000000000000000000000000000000000"},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newCallerRouter(tc.cfg)
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			for k, v := range tc.header {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d", tc.wantStatus, w.Code)
			}
			if tc.wantBody != "" && w.Body.String() != tc.wantBody {
				t.Fatalf("expected body %s, got %s", tc.wantBody, w.Body.String())
			}
		})
	}
}
