package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error fatal"`
	// CORSAllowedOrigins lists browser origins allowed to call the API.
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins" validate:"dive,required"`
}

// Supported storage backends.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	Driver string `mapstructure:"driver" validate:"required,oneof=mongo postgres"`
	URL    string `mapstructure:"url"    validate:"required,url"`
	// Name is the MongoDB database name; ignored by the postgres driver,
	// which takes the database from the URL.
	Name string `mapstructure:"name" validate:"required_if=Driver mongo"`
}

// AuthConfig contains all authentication and authorization settings.
// Admin and user tokens are signed with separate secrets so that a token
// minted for one actor type never verifies on the other's routes.
type AuthConfig struct {
	AdminJWTSecret string `mapstructure:"admin_jwt_secret" validate:"required,min=32"`
	UserJWTSecret  string `mapstructure:"user_jwt_secret"  validate:"required,min=32,nefield=AdminJWTSecret"`
	BcryptCost     int    `mapstructure:"bcrypt_cost"      validate:"gte=4,lte=31"`
}
