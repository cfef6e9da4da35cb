package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		// Set default values
		setDefaults()

		// Set up environment variable reading for overrides
		viper.SetEnvPrefix("ACCESS")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		// Load config from fixed location (cleaned for safety)
		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		// Try to read the config file
		if err := viper.ReadInConfig(); err != nil {
			// If the config file doesn't exist, just use defaults and env vars
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}

		// Validate the configuration
		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	if viper.GetInt64("uploads.max_file_size") <= 0 {
		viper.Set("uploads.max_file_size", int64(100*1024*1024))
	}

	if viper.GetInt("processing.frame_interval") <= 0 {
		viper.Set("processing.frame_interval", 5)
	}

	// Required credentials are validated at startup so a missing key fails
	// fast rather than at first use
	return validateCredentials()
}

// placeholders lists values that must never reach production configuration
var placeholders = []string{
	"YOUR_KEY_HERE",
	"YOUR_API_KEY",
	"changeme",
	"CHANGEME",
	"",
}

func isPlaceholder(v string) bool {
	for _, p := range placeholders {
		if v == p {
			return true
		}
	}
	return false
}

// validateCredentials validates that API keys are not using placeholder values
func validateCredentials() error {
	env := viper.GetString("environment")
	isProduction := env == "production" || env == "prod"

	checks := []struct {
		key  string
		name string
	}{
		{"llm.api_key", "language model API key"},
		{"storage.bucket", "storage bucket"},
		{"sign_language.endpoint", "sign language endpoint"},
	}

	for _, c := range checks {
		if isPlaceholder(viper.GetString(c.key)) {
			if isProduction {
				return fmt.Errorf("invalid %s: cannot use placeholder values in production", c.name)
			}
			fmt.Printf("Warning: %s is using a placeholder value\n", c.name)
		}
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Uploads.MaxFileSize <= 0 {
		c.Uploads.MaxFileSize = 100 * 1024 * 1024
	}

	if c.Processing.FrameInterval <= 0 {
		c.Processing.FrameInterval = 5
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Environment defaults
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Upload defaults
	viper.SetDefault("uploads.temp_dir", "./uploads/temp")
	viper.SetDefault("uploads.local_dir", "./uploads")
	viper.SetDefault("uploads.max_file_size", int64(100*1024*1024))

	// Object storage defaults
	viper.SetDefault("storage.bucket", "")
	viper.SetDefault("storage.signed_url_ttl", 7*24*time.Hour)

	// Speech-to-text defaults
	viper.SetDefault("speech.language_code", "en-US")
	viper.SetDefault("speech.sample_rate", 16000)
	viper.SetDefault("speech.model", "latest_long")
	viper.SetDefault("speech.timeout", 3*time.Minute)

	// Text-to-speech defaults
	viper.SetDefault("tts.language_code", "en-US")
	viper.SetDefault("tts.voice_name", "en-US-Neural2-C")
	viper.SetDefault("tts.speaking_rate", 0.9)
	viper.SetDefault("tts.pitch", 0.0)
	viper.SetDefault("tts.volume_gain_db", 2.0)
	viper.SetDefault("tts.audio_encoding", "MP3")
	viper.SetDefault("tts.timeout", 1*time.Minute)

	// Language model defaults
	viper.SetDefault("llm.api_key", "")
	viper.SetDefault("llm.model", "gpt-4o")
	viper.SetDefault("llm.vision_model", "gpt-4o")
	viper.SetDefault("llm.image_size", "512x512")
	viper.SetDefault("llm.timeout", 2*time.Minute)

	// Sign language rendering defaults
	viper.SetDefault("sign_language.endpoint", "")
	viper.SetDefault("sign_language.api_key", "")
	viper.SetDefault("sign_language.timeout", 2*time.Minute)

	// Processing defaults
	viper.SetDefault("processing.ffmpeg_path", "ffmpeg")
	viper.SetDefault("processing.ffprobe_path", "ffprobe")
	viper.SetDefault("processing.ffmpeg_timeout", 5*time.Minute)
	viper.SetDefault("processing.frame_interval", 5)

	// Rate limiting defaults
	viper.SetDefault("rate_limiting.enabled", true)
}
