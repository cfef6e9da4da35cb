package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
)

func TestDefaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	setDefaults()

	if got := GetInt("server.port"); got != 8080 {
		t.Errorf("Expected server.port default 8080, got %d", got)
	}
	if got := GetString("speech.model"); got != "latest_long" {
		t.Errorf("Expected speech.model default latest_long, got %s", got)
	}
	if got := GetString("tts.voice_name"); got != "en-US-Neural2-C" {
		t.Errorf("Expected tts.voice_name default en-US-Neural2-C, got %s", got)
	}
	if got := viper.GetInt64("uploads.max_file_size"); got != 100*1024*1024 {
		t.Errorf("Expected uploads.max_file_size default 100 MiB, got %d", got)
	}
	if got := GetInt("processing.frame_interval"); got != 5 {
		t.Errorf("Expected processing.frame_interval default 5, got %d", got)
	}
}

func TestEnvironmentOverride(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	setDefaults()
	viper.SetEnvPrefix("ACCESS")
	viper.AutomaticEnv()
	os.Setenv("ACCESS_ENVIRONMENT", "production")
	defer os.Unsetenv("ACCESS_ENVIRONMENT")

	if got := GetString("environment"); got != "production" {
		t.Errorf("Expected environment override to production, got %s", got)
	}
}

func TestValidateRejectsBadPort(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	setDefaults()
	viper.Set("server.port", -1)

	if err := validate(); err == nil {
		t.Error("Expected validation error for negative port")
	}
}

func TestValidateCredentialsInProduction(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	setDefaults()
	viper.Set("environment", "production")

	// Placeholder credentials must fail fast in production
	if err := validateCredentials(); err == nil {
		t.Error("Expected credential validation to fail with empty keys in production")
	}

	viper.Set("llm.api_key", "sk-real-key")
	viper.Set("storage.bucket", "content-bucket")
	viper.Set("sign_language.endpoint", "https://render.example.com/v1")

	if err := validateCredentials(); err != nil {
		t.Errorf("Expected credential validation to pass, got %v", err)
	}
}

func TestConfigStructValidate(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for zero port")
	}

	cfg.Server.Port = 8080
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected valid config, got %v", err)
	}
	if cfg.Uploads.MaxFileSize != 100*1024*1024 {
		t.Errorf("Expected max file size backfill, got %d", cfg.Uploads.MaxFileSize)
	}
	if cfg.Processing.FrameInterval != 5 {
		t.Errorf("Expected frame interval backfill, got %d", cfg.Processing.FrameInterval)
	}
}
