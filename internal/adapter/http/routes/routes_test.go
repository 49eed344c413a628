package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"carbody_insurance/internal/adapter/http/handlers"
	"carbody_insurance/internal/adapter/http/middleware"
	"carbody_insurance/internal/adapter/persistence/repository"
	"carbody_insurance/internal/config"
	"carbody_insurance/internal/infrastructure/messaging"
	"carbody_insurance/internal/usecase"

	"github.com/gin-gonic/gin"
)

func TestAddInsuranceRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	uc := usecase.NewInsuranceUseCase(nil, repository.NewLedgerMemoryRepository(), nil, nil)
	r := gin.New()
	v1 := r.Group("/v1")
	addPingRoutes(v1)
	addInsuranceRoutes(v1,
		middleware.Caller(middleware.CallerConfig{DevBypassAuth: true}),
		handlers.NewPolicyHandler(uc),
		handlers.NewClaimHandler(uc),
		handlers.NewCustodyHandler(uc),
	)

	cases := []struct {
		method     string
		path       string
		wantStatus int
	}{
		{http.MethodGet, "/v1/ping/", http.StatusOK},
		{http.MethodGet, "/v1/policies/1", http.StatusNotFound},
		{http.MethodGet, "/v1/claims/1", http.StatusNotFound},
		{http.MethodGet, "/v1/holders/0x1111111111111111111111111111111111111111/tokens", http.StatusOK},
		{http.MethodGet, "/v1/custody", http.StatusOK},
		{http.MethodPost, "/v1/policies", http.StatusUnauthorized},
		{http.MethodPost, "/v1/claims", http.StatusUnauthorized},
		{http.MethodPatch, "/v1/claims/1/approve", http.StatusUnauthorized},
		{http.MethodPatch, "/v1/claims/1/reject", http.StatusUnauthorized},
		{http.MethodPost, "/v1/custody/deposits", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
			if w.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d", tc.wantStatus, w.Code)
			}
		})
	}
}

func TestNewEventPublisher(t *testing.T) {
	pub, closeFn := newEventPublisher(config.Env{})
	defer closeFn()
	if _, ok := pub.(messaging.LogPublisher); !ok {
		t.Fatalf("expected LogPublisher without NATS_URL, got %T", pub)
	}
}

func TestNewLedgerRepository(t *testing.T) {
	repo := newLedgerRepository(config.Env{LedgerStore: config.LedgerStoreMemory})
	if _, ok := repo.(*repository.LedgerMemoryRepository); !ok {
		t.Fatalf("expected memory repository, got %T", repo)
	}
}
