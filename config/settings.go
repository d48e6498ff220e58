package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

var (
	AppVersion             = "v1.0.0"
	AppPort                = "3000"
	AppDebug               = false
	AppBasicAuthCredential []string
	AppBasePath            = ""

	// Tropo platform settings. The API token is required before any
	// signal or session-creation call is made.
	TropoBaseURL     = "https://api.tropo.com/1.0"
	TropoAPIToken    = ""
	TropoHTTPTimeout = 30 * time.Second
)

func init() {
	if v := strings.TrimSpace(os.Getenv("TROPO_API_TOKEN")); v != "" {
		TropoAPIToken = v
	}
	if v := strings.TrimSpace(os.Getenv("TROPO_BASE_URL")); v != "" {
		TropoBaseURL = strings.TrimRight(v, "/")
	}
	if v := strings.TrimSpace(os.Getenv("TROPO_HTTP_TIMEOUT_SECONDS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			TropoHTTPTimeout = time.Duration(n) * time.Second
		}
	}
}
