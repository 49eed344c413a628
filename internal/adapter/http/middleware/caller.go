package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"carbody_insurance/pkg"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// DevBypassHeader carries the caller address when DEV_BYPASS_AUTH=true.
	DevBypassHeader = "X-Caller-Address"

	callerKey = "caller"
)

var (
	ErrMissingToken   = errors.New("missing bearer token")
	ErrInvalidToken   = errors.New("invalid token")
	ErrInvalidSubject = errors.New("token subject is not a holder address")
)

var errUnauthenticated = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing or invalid caller identity", http.StatusUnauthorized)

// CallerConfig configures how the caller identity is resolved.
type CallerConfig struct {
	JWTSecret     string
	DevBypassAuth bool
}

// Caller resolves the acting holder address for mutating requests.
//
// The address comes from the "sub" claim of an HS256 bearer token. With
// DevBypassAuth the X-Caller-Address header is accepted instead.
func Caller(cfg CallerConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		addr, err := resolveCaller(c.Request, cfg)
		if err != nil {
			log.Printf("[auth][middleware] caller rejected path=%s err=%v", c.FullPath(), err)
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			return
		}
		c.Set(callerKey, addr)
		c.Next()
	}
}

// CallerFrom returns the address set by Caller.
func CallerFrom(c *gin.Context) (common.Address, bool) {
	v, ok := c.Get(callerKey)
	if !ok {
		return common.Address{}, false
	}
	addr, ok := v.(common.Address)
	return addr, ok
}

func resolveCaller(r *http.Request, cfg CallerConfig) (common.Address, error) {
	if cfg.DevBypassAuth {
		if v := strings.TrimSpace(r.Header.Get(DevBypassHeader)); v != "" {
			return parseAddress(v)
		}
	}

	auth := r.Header.Get("Authorization")
	token := strings.TrimPrefix(auth, "Bearer ")
	if auth == "" || token == auth || cfg.JWTSecret == "" {
		return common.Address{}, ErrMissingToken
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return common.Address{}, ErrInvalidToken
	}
	return parseAddress(claims.Subject)
}

func parseAddress(v string) (common.Address, error) {
	if !common.IsHexAddress(v) {
		return common.Address{}, ErrInvalidSubject
	}
	addr := common.HexToAddress(v)
	if addr == (common.Address{}) {
		return common.Address{}, ErrInvalidSubject
	}
	return addr, nil
}
