package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Port               string `mapstructure:"PORT"`
	Env                string `mapstructure:"ENV"`
	DatabaseURL        string `mapstructure:"DATABASE_URL"`
	LLMProvider        string `mapstructure:"LLM_PROVIDER"`
	GeminiAPIURL       string `mapstructure:"GEMINI_API_URL"`
	OpenAIAPIKey       string `mapstructure:"OPENAI_API_KEY"`
	OpenAIModel        string `mapstructure:"OPENAI_MODEL"`
	WhisperURL         string `mapstructure:"WHISPER_URL"`
	WhisperTimeoutSecs int    `mapstructure:"WHISPER_TIMEOUT_SECS"`
	MaxAudioBytes      int64  `mapstructure:"MAX_AUDIO_BYTES"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("LLM_PROVIDER", "hosted")
	v.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	v.SetDefault("WHISPER_URL", "http://localhost:9000/transcribe")
	v.SetDefault("WHISPER_TIMEOUT_SECS", 120)
	v.SetDefault("MAX_AUDIO_BYTES", 25*1024*1024)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("LLM_PROVIDER")
	v.BindEnv("GEMINI_API_URL")
	v.BindEnv("OPENAI_API_KEY")
	v.BindEnv("OPENAI_MODEL")
	v.BindEnv("WHISPER_URL")
	v.BindEnv("WHISPER_TIMEOUT_SECS")
	v.BindEnv("MAX_AUDIO_BYTES")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	switch cfg.LLMProvider {
	case "hosted":
		if cfg.GeminiAPIURL == "" {
			return nil, fmt.Errorf("GEMINI_API_URL is required when LLM_PROVIDER=hosted")
		}
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required when LLM_PROVIDER=openai")
		}
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q (supported: hosted, openai)", cfg.LLMProvider)
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}
