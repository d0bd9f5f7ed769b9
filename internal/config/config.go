package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port         string `yaml:"port" env:"SERVER_PORT"`
		Mode         string `yaml:"mode" env:"SERVER_MODE"`
		ClientOrigin string `yaml:"client_origin" env:"CLIENT_ORIGIN"`
	} `yaml:"server"`

	Storage struct {
		DataDir   string `yaml:"data_dir" env:"DATA_DIR"`     // JSON collection files
		UploadDir string `yaml:"upload_dir" env:"UPLOAD_DIR"` // Uploaded binaries
	} `yaml:"storage"`

	JWT struct {
		Secret          string `yaml:"secret" env:"JWT_SECRET"`
		TokenExpiration string `yaml:"token_expiration" env:"JWT_EXPIRES_IN"`
		Issuer          string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	Uploads struct {
		MaxFileSize        int64    `yaml:"max_file_size" env:"MAX_FILE_SIZE"` // Bytes
		MaterialExtensions []string `yaml:"material_extensions" env:"MATERIAL_EXTENSIONS"`
		ResumeExtensions   []string `yaml:"resume_extensions" env:"RESUME_EXTENSIONS"`
		ImageExtensions    []string `yaml:"image_extensions" env:"IMAGE_EXTENSIONS"`
	} `yaml:"uploads"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Config file is optional; env vars can carry everything
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := processStructFields(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "5000"
	config.Server.Mode = "development"
	config.Server.ClientOrigin = "http://localhost:3000"

	config.Storage.DataDir = "data"
	config.Storage.UploadDir = "uploads"

	config.JWT.TokenExpiration = "168h" // 7 days
	config.JWT.Issuer = "campusconnect.app"

	config.Uploads.MaxFileSize = 10 * 1024 * 1024
	config.Uploads.MaterialExtensions = []string{"pdf", "doc", "docx", "ppt", "pptx", "txt"}
	config.Uploads.ResumeExtensions = []string{"pdf", "doc", "docx"}
	config.Uploads.ImageExtensions = []string{"jpg", "jpeg", "png"}

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if _, err := time.ParseDuration(config.JWT.TokenExpiration); err != nil {
		return fmt.Errorf("invalid JWT token expiration format: %w", err)
	}
	if config.Storage.DataDir == "" {
		return fmt.Errorf("data directory is required")
	}
	if config.Uploads.MaxFileSize <= 0 {
		return fmt.Errorf("max file size must be positive")
	}
	return nil
}

// TokenExpiration returns the parsed JWT expiry duration.
// validateConfig guarantees the value parses.
func (c *Config) TokenExpiration() time.Duration {
	d, _ := time.ParseDuration(c.JWT.TokenExpiration)
	return d
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Mode == "production"
}
