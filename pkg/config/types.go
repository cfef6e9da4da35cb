package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment  string             `mapstructure:"environment"`
	Server       ServerConfig       `mapstructure:"server"`
	Uploads      UploadsConfig      `mapstructure:"uploads"`
	Storage      StorageConfig      `mapstructure:"storage"`
	Speech       SpeechConfig       `mapstructure:"speech"`
	TTS          TTSConfig          `mapstructure:"tts"`
	LLM          LLMConfig          `mapstructure:"llm"`
	SignLanguage SignLanguageConfig `mapstructure:"sign_language"`
	Processing   ProcessingConfig   `mapstructure:"processing"`
	RateLimiting RateLimitConfig    `mapstructure:"rate_limiting"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// UploadsConfig holds upload intake configuration
type UploadsConfig struct {
	TempDir     string `mapstructure:"temp_dir"`
	LocalDir    string `mapstructure:"local_dir"`
	MaxFileSize int64  `mapstructure:"max_file_size"`
}

// StorageConfig holds object storage configuration
type StorageConfig struct {
	Bucket       string        `mapstructure:"bucket"`
	SignedURLTTL time.Duration `mapstructure:"signed_url_ttl"`
}

// SpeechConfig holds speech-to-text configuration
type SpeechConfig struct {
	LanguageCode string        `mapstructure:"language_code"`
	SampleRate   int           `mapstructure:"sample_rate"`
	Model        string        `mapstructure:"model"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

// TTSConfig holds speech synthesis configuration
type TTSConfig struct {
	LanguageCode  string        `mapstructure:"language_code"`
	VoiceName     string        `mapstructure:"voice_name"`
	SpeakingRate  float64       `mapstructure:"speaking_rate"`
	Pitch         float64       `mapstructure:"pitch"`
	VolumeGainDb  float64       `mapstructure:"volume_gain_db"`
	AudioEncoding string        `mapstructure:"audio_encoding"`
	Timeout       time.Duration `mapstructure:"timeout"`
}

// LLMConfig holds generative-language configuration
type LLMConfig struct {
	APIKey      string        `mapstructure:"api_key"`
	Model       string        `mapstructure:"model"`
	VisionModel string        `mapstructure:"vision_model"`
	ImageSize   string        `mapstructure:"image_size"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// SignLanguageConfig holds the sign-language rendering service configuration
type SignLanguageConfig struct {
	Endpoint string        `mapstructure:"endpoint"`
	APIKey   string        `mapstructure:"api_key"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// ProcessingConfig holds media processing configuration
type ProcessingConfig struct {
	FFmpegPath    string        `mapstructure:"ffmpeg_path"`
	FFprobePath   string        `mapstructure:"ffprobe_path"`
	FFmpegTimeout time.Duration `mapstructure:"ffmpeg_timeout"`
	FrameInterval int           `mapstructure:"frame_interval"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	Enabled bool `mapstructure:"enabled"`
}
