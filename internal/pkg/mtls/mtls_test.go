package mtls

import (
	"encoding/base64"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterializeFromEnv_Success(t *testing.T) {
	content := "-----BEGIN CERTIFICATE-----\nfake\n-----END CERTIFICATE-----\n"
	t.Setenv("TEST_CERT_B64", base64.StdEncoding.EncodeToString([]byte(content)))

	path, err := MaterializeFromEnv("TEST_CERT_B64", "test-inter.crt")
	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(path) })

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(written))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestMaterializeFromEnv_MissingVariable(t *testing.T) {
	_, err := MaterializeFromEnv("TEST_MISSING_B64", "missing.crt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TEST_MISSING_B64 not found")
}

func TestMaterializeFromEnv_InvalidBase64(t *testing.T) {
	t.Setenv("TEST_BAD_B64", "not base64 at all!!!")

	_, err := MaterializeFromEnv("TEST_BAD_B64", "bad.crt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode")
}

func TestNewHTTPClient_InvalidKeyPair(t *testing.T) {
	certPath := t.TempDir() + "/cert.pem"
	keyPath := t.TempDir() + "/key.pem"
	require.NoError(t, os.WriteFile(certPath, []byte("not a cert"), 0600))
	require.NoError(t, os.WriteFile(keyPath, []byte("not a key"), 0600))

	_, err := NewHTTPClient(certPath, keyPath, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load client key pair")
}
