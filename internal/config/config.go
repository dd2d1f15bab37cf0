package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/insurewise/policy-portal/internal/constants"
	"github.com/insurewise/policy-portal/internal/utils"
)

type Config struct {
	AppName      string
	AppPort      string
	AppUrl       string
	StoreURL     string
	StoreTimeout time.Duration
}

// build-time override, set with -ldflags
var AppName = "policy-portal"

const (
	defaultAppPort = "8080"
	defaultAppURL  = "http://localhost:8080"
)

// LoadConfig reads an optional .env file and the process environment. Invalid
// values are fatal.
func LoadConfig() *Config {
	utils.Logger.Info("Loading config for app: ", AppName)

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		utils.Logger.WithError(err).Fatal("Failed to read .env file")
	}

	cfg, err := FromEnv(os.Getenv)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Invalid configuration")
	}

	utils.Logger.Infof("Loaded config for %s (store %s, timeout %s)", cfg.AppName, cfg.StoreURL, cfg.StoreTimeout)
	return cfg
}

// FromEnv builds a Config from getenv, applying defaults for unset keys.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(k, def string) string {
		if v := getenv(k); v != "" {
			return v
		}
		return def
	}

	//----------------------------------------------------------------------
	// HTTP surface
	//----------------------------------------------------------------------
	appPort := get("APP_PORT", defaultAppPort)
	if n, err := strconv.Atoi(appPort); err != nil || n <= 0 || n > 65535 {
		return nil, fmt.Errorf("APP_PORT %q is not a valid port", appPort)
	}
	appURL := get("APP_URL", defaultAppURL)

	//----------------------------------------------------------------------
	// Remote collection
	//----------------------------------------------------------------------
	storeURL := get("STORE_URL", constants.DefaultStoreURL)
	u, err := url.Parse(storeURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("STORE_URL %q must be an absolute http(s) URL", storeURL)
	}

	timeout := constants.DefaultStoreTimeout
	if raw := getenv("STORE_TIMEOUT"); raw != "" {
		timeout, err = time.ParseDuration(raw)
		if err != nil || timeout <= 0 {
			return nil, fmt.Errorf("STORE_TIMEOUT %q must be a positive duration", raw)
		}
	}

	return &Config{
		AppName:      AppName,
		AppPort:      appPort,
		AppUrl:       appURL,
		StoreURL:     storeURL,
		StoreTimeout: timeout,
	}, nil
}

func (c *Config) Close() {
}
