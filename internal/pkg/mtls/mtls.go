package mtls

import (
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// MaterializeFromEnv decodes a base64-encoded environment value into a
// file under the system temp directory and returns its path. The
// partner's mutual-TLS material is delivered this way because hosted
// runtimes only expose environment variables, not mounted files.
func MaterializeFromEnv(envName, filename string) (string, error) {
	encoded := os.Getenv(envName)
	if encoded == "" {
		return "", fmt.Errorf("environment variable %s not found", envName)
	}

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s: %w", envName, err)
	}

	path := filepath.Join(os.TempDir(), filename)
	if err := os.WriteFile(path, decoded, 0600); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	return path, nil
}

// NewHTTPClient builds an HTTP client that presents the given client
// certificate on every connection (mutual TLS).
func NewHTTPClient(certPath, keyPath string, timeout time.Duration) (*http.Client, error) {
	cert, err := tls.LoadX509KeyPair(certPath, keyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load client key pair: %w", err)
	}

	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{
				Certificates: []tls.Certificate{cert},
				MinVersion:   tls.VersionTLS12,
			},
		},
	}, nil
}
