// Package config loads configuration from environment variables.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	LedgerStoreMemory   = "memory"
	LedgerStoreDynamoDB = "dynamodb"
)

// Env holds the configuration values for the API.
type Env struct {
	Port          int
	LedgerStore   string
	NATSURL       string
	EventsSubject string
	NATSTimeout   time.Duration
	JWTSecret     string
	DevBypassAuth bool
	MPAccessToken string
	MPPayerEmail  string
}

// Load reads the environment. Unknown LEDGER_STORE values fall back to memory.
func Load() Env {
	port, err := strconv.Atoi(get("PORT", "8080"))
	if err != nil || port <= 0 {
		port = 8080
	}
	timeoutSec, err := strconv.Atoi(get("NATS_CONNECT_TIMEOUT_SECONDS", "5"))
	if err != nil || timeoutSec <= 0 {
		timeoutSec = 5
	}

	store := strings.ToLower(strings.TrimSpace(get("LEDGER_STORE", LedgerStoreMemory)))
	if store != LedgerStoreDynamoDB {
		store = LedgerStoreMemory
	}

	return Env{
		Port:          port,
		LedgerStore:   store,
		NATSURL:       get("NATS_URL", ""),
		EventsSubject: get("EVENTS_SUBJECT", "carbody.events"),
		NATSTimeout:   time.Duration(timeoutSec) * time.Second,
		JWTSecret:     get("AUTH_JWT_SECRET", ""),
		DevBypassAuth: get("DEV_BYPASS_AUTH", "") == "true",
		MPAccessToken: get("MERCADOPAGO_ACCESS_TOKEN", ""),
		MPPayerEmail:  get("MERCADOPAGO_TEST_PAYER_EMAIL", ""),
	}
}

// get returns the value of the environment variable k or def if not set.
func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
