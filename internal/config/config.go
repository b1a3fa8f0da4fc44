package config

import (
	"fmt"
	"os"
)

// Config holds the environment-driven configuration of the POS API.
type Config struct {
	Port string

	// Store platform (pricing, customers, tax settings)
	StoreAPIURL string
	StoreAPIKey string

	// Draft-order gateway
	OrdersAPIURL string
	OrdersAPIKey string
}

// Load reads configuration from the environment. Required variables that
// are missing produce an error so main can fail fast.
func Load() (*Config, error) {
	cfg := &Config{
		Port:         getEnv("API_PORT", "8000"),
		StoreAPIURL:  os.Getenv("STORE_API_URL"),
		StoreAPIKey:  os.Getenv("STORE_API_KEY"),
		OrdersAPIURL: os.Getenv("ORDERS_API_URL"),
		OrdersAPIKey: os.Getenv("ORDERS_API_KEY"),
	}

	for name, value := range map[string]string{
		"STORE_API_URL":  cfg.StoreAPIURL,
		"STORE_API_KEY":  cfg.StoreAPIKey,
		"ORDERS_API_URL": cfg.OrdersAPIURL,
		"ORDERS_API_KEY": cfg.OrdersAPIKey,
	} {
		if value == "" {
			return nil, fmt.Errorf("%s environment variable is required", name)
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
