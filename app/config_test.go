package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	tempFile, err := os.CreateTemp("", "config*.env")
	if err != nil {
		t.Fatalf("Failed to create temporary config file: %v", err)
	}
	defer os.Remove(tempFile.Name())

	configData := []byte(`
PORT=:8080
ENVIRONMENT=development
RATE_LIMIT_RPS=4
RATE_LIMIT_BURST=8
RATE_LIMIT_ENABLED=true
CORS_TRUSTED_ORIGINS=http://localhost:3000,http://localhost:3001
POSTGRES_HOST=localhost
POSTGRES_PORT=5432
POSTGRES_USER=testuser
POSTGRES_PASSWORD=testpassword
POSTGRES_DB=testdb
JWT_SECRET=0123456789abcdef0123456789abcdef
JWT_ISSUER=blogware
JWT_AUDIENCE=blogware-api
JWT_ACCESS_TTL_MINUTES=15
JWT_REFRESH_TTL_MINUTES=1440
S3_REGION=eu-central-1
S3_BUCKET=blogware-images
S3_ENDPOINT=http://localhost:9000
MAIL_HOST=smtp.example.com
MAIL_PORT=587
MAIL_USER=testuser@example.com
MAIL_PASSWORD=testpassword
MAIL_SENDER=sender@example.com
RABBITMQ_HOST=rabbitmq.example.com
RABBITMQ_PORT=5672
RABBITMQ_USER=testuser
RABBITMQ_PASSWORD=testpassword
`)
	if _, err := tempFile.Write(configData); err != nil {
		t.Fatalf("Failed to write test configuration to temporary file: %v", err)
	}

	config, err := loadConfig(tempFile.Name())
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	assert.Equal(t, ":8080", config.Port)
	assert.Equal(t, "development", config.Environment)
	assert.Equal(t, float64(4), config.RateLimitRPS)
	assert.Equal(t, 8, config.RateLimitBurst)
	assert.True(t, config.RateLimitEnabled)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:3001"}, config.TrustedOrigins)
	assert.Equal(t, "localhost", config.DB.Host)
	assert.Equal(t, "testdb", config.DB.Name)
	assert.Equal(t, "blogware", config.JWT.Issuer)
	assert.Equal(t, 15, config.JWT.AccessTTLMinutes)
	assert.Equal(t, 1440, config.JWT.RefreshTTLMinutes)
	assert.Equal(t, "blogware-images", config.S3.Bucket)
	assert.Equal(t, "http://localhost:9000", config.S3.Endpoint)
	assert.Equal(t, 587, config.Mail.Port)
	assert.Equal(t, "rabbitmq.example.com", config.RabbitMQ.Host)
}
