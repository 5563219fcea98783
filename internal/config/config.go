package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Build  BuildConfig
	Gate   GateConfig
	Model  ModelConfig
	GitHub GitHubConfig
	Logger LoggerConfig
}

type BuildConfig struct {
	SourceDir   string
	ArtifactDir string
}

type GateConfig struct {
	LogPath string
}

type ModelConfig struct {
	URL     string
	Dest    string
	MinSize int64
	Timeout time.Duration
}

type GitHubConfig struct {
	Timeout time.Duration
}

type LoggerConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("BUILD_SOURCE_DIR", ".")
	v.SetDefault("ARTIFACT_DIR", "dist")
	v.SetDefault("GATE_LOG_PATH", "/tmp/freescribe-install.log")
	v.SetDefault("MODEL_URL", "https://huggingface.co/ggerganov/whisper.cpp/resolve/main/ggml-small.bin")
	v.SetDefault("MODEL_DEST", "/Library/Application Support/FreeScribe/models/ggml-small.bin")
	v.SetDefault("MODEL_MIN_SIZE", 1048576)
	v.SetDefault("MODEL_TIMEOUT", "15m")
	v.SetDefault("GITHUB_TIMEOUT", "60s")
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "text")

	// Env
	v.AutomaticEnv()

	modelTimeout, err := time.ParseDuration(v.GetString("MODEL_TIMEOUT"))
	if err != nil {
		modelTimeout = 15 * time.Minute
	}
	ghTimeout, err := time.ParseDuration(v.GetString("GITHUB_TIMEOUT"))
	if err != nil {
		ghTimeout = 60 * time.Second
	}

	cfg := &Config{
		Build: BuildConfig{
			SourceDir:   v.GetString("BUILD_SOURCE_DIR"),
			ArtifactDir: v.GetString("ARTIFACT_DIR"),
		},
		Gate: GateConfig{
			LogPath: v.GetString("GATE_LOG_PATH"),
		},
		Model: ModelConfig{
			URL:     v.GetString("MODEL_URL"),
			Dest:    v.GetString("MODEL_DEST"),
			MinSize: v.GetInt64("MODEL_MIN_SIZE"),
			Timeout: modelTimeout,
		},
		GitHub: GitHubConfig{
			Timeout: ghTimeout,
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
	}

	return cfg, nil
}
