package bootstrap

import (
	"testing"

	"go.uber.org/zap"
)

func testAppConfig() AppConfig {
	return AppConfig{
		MongoURI:      "mongodb://localhost:27017",
		MongoDatabase: "oedhub_test",
		SessionKey:    "0123456789abcdef0123456789abcdef",
		AdminEmail:    "admin@example.com",
		AdminPassword: "secret",
	}
}

func TestValidateConfig_OK(t *testing.T) {
	if err := ValidateConfig(nil, testAppConfig(), zap.NewNop()); err != nil {
		t.Fatalf("ValidateConfig() = %v, want nil", err)
	}
}

func TestValidateConfig_BadMongoURI(t *testing.T) {
	cfg := testAppConfig()
	cfg.MongoURI = "http://not-a-mongo-uri"

	if err := ValidateConfig(nil, cfg, zap.NewNop()); err == nil {
		t.Fatal("ValidateConfig() = nil, want error for non-mongodb URI")
	}
}

func TestValidateConfig_MissingAdminIsAllowed(t *testing.T) {
	cfg := testAppConfig()
	cfg.AdminEmail = ""
	cfg.AdminPassword = ""

	// A hub without an admin account serves the read-only catalog; the
	// condition is logged, not fatal.
	if err := ValidateConfig(nil, cfg, zap.NewNop()); err != nil {
		t.Fatalf("ValidateConfig() = %v, want nil", err)
	}
}
