// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS,
// logging, CORS); AppConfig is everything specific to the catalog hub.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Session management configuration
	SessionKey string // Secret key for signing session cookies (must be strong in production)

	// Seeded admin account. AdminPassword may be a bcrypt hash or a
	// plaintext value that gets hashed at startup.
	AdminEmail    string
	AdminPassword string

	// Content configuration
	ThumbsDir       string // Local directory served under /thumbs
	DefaultImageURL string // Stock image for records without a thumbnail
	BNCCSQLitePath  string // Legacy BNCC database location (optional)
}
