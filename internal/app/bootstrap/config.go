// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for the hub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, session_key, etc.
//   - Environment variables: OEDHUB_MONGO_URI, OEDHUB_SESSION_KEY, etc.
//   - Command-line flags: --mongo_uri, --session_key, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "oedhub", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},
	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},

	// Seeded admin account
	{Name: "admin_email", Default: "", Desc: "Login ID (email) of the seeded admin account"},
	{Name: "admin_password", Default: "", Desc: "Password of the seeded admin (bcrypt hash or plaintext, hashed at startup)"},

	// Content configuration
	{Name: "thumbs_dir", Default: "./public/thumbs", Desc: "Local directory served under /thumbs"},
	{Name: "default_image_url", Default: "/static/img/oed-default.webp", Desc: "Stock image for records without a thumbnail"},
	{Name: "bncc_sqlite_path", Default: "", Desc: "Legacy BNCC SQLite database path (optional)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// CoreConfig comes from the shared WAFFLE layer; AppConfig is specific
// to this app. WAFFLE's config.LoadWithAppConfig handles .env files,
// config.yaml/json/toml, environment variables (WAFFLE_* for core,
// OEDHUB_* for app) and command-line flags, merged with precedence:
// flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "OEDHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),
		SessionKey:       appValues.String("session_key"),

		AdminEmail:    appValues.String("admin_email"),
		AdminPassword: appValues.String("admin_password"),

		ThumbsDir:       appValues.String("thumbs_dir"),
		DefaultImageURL: appValues.String("default_image_url"),
		BNCCSQLitePath:  appValues.String("bncc_sqlite_path"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// The MongoDB URI format is checked early, before attempting to connect.
// A missing admin account is allowed (the write surface then simply
// rejects every login) but logged loudly.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.AdminEmail == "" || appCfg.AdminPassword == "" {
		logger.Warn("no admin account configured; imports and edits will be unavailable")
	}

	return nil
}
