package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	// Set test environment variables
	os.Setenv("SERVER_PORT", "8080")
	os.Setenv("DB_HOST", "localhost")
	os.Setenv("DB_PORT", "5432")
	os.Setenv("DB_USER", "testuser")
	os.Setenv("DB_PASSWORD", "testpass")
	os.Setenv("DB_NAME", "testdb")
	os.Setenv("S3_BUCKET_NAME", "test-bucket")
	os.Setenv("UPLOAD_PLACEHOLDER_FALLBACK", "true")
	os.Setenv("UPLOAD_TIMEOUT_SECONDS", "15")

	// Load config
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// Assertions
	assert.NotNil(t, cfg)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "testuser", cfg.DBUser)
	assert.Equal(t, "testpass", cfg.DBPassword)
	assert.Equal(t, "testdb", cfg.DBName)
	assert.Equal(t, "test-bucket", cfg.S3BucketName)
	assert.True(t, cfg.UploadPlaceholderFallback)
	assert.Equal(t, 15, cfg.UploadTimeoutSeconds)

	// Cleanup
	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("DB_HOST")
	os.Unsetenv("DB_PORT")
	os.Unsetenv("DB_USER")
	os.Unsetenv("DB_PASSWORD")
	os.Unsetenv("DB_NAME")
	os.Unsetenv("S3_BUCKET_NAME")
	os.Unsetenv("UPLOAD_PLACEHOLDER_FALLBACK")
	os.Unsetenv("UPLOAD_TIMEOUT_SECONDS")
}

func TestUploadConfigured(t *testing.T) {
	os.Unsetenv("AWS_ACCESS_KEY_ID")
	os.Unsetenv("AWS_SECRET_ACCESS_KEY")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	assert.False(t, cfg.UploadConfigured())

	os.Setenv("AWS_ACCESS_KEY_ID", "key")
	os.Setenv("AWS_SECRET_ACCESS_KEY", "secret")

	cfg, err = Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	assert.True(t, cfg.UploadConfigured())

	os.Unsetenv("AWS_ACCESS_KEY_ID")
	os.Unsetenv("AWS_SECRET_ACCESS_KEY")
}

func TestGetEnvBool_Invalid(t *testing.T) {
	os.Setenv("UPLOAD_PLACEHOLDER_FALLBACK", "not-a-bool")
	defer os.Unsetenv("UPLOAD_PLACEHOLDER_FALLBACK")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	assert.False(t, cfg.UploadPlaceholderFallback)
}
