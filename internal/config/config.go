// Package config loads the configuration of the things demo from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"go.llib.dev/frameless/pkg/env"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logging"
)

const ErrInvalidConfig errorkit.Error = "invalid configuration"

const defaultHistoryFileName = ".things_history"

type Config struct {
	LogLevel    string `env:"THINGS_LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Interactive bool   `env:"THINGS_INTERACTIVE" default:"false"`
	// HistoryFile is where the shell keeps its command history.
	// Defaults to a file in the temp directory.
	HistoryFile string `env:"THINGS_HISTORY_FILE"`
}

// Level returns LogLevel as a logging level.
func (c Config) Level() logging.Level {
	return logging.Level(c.LogLevel)
}

// Load reads the optional env file named by THINGS_ENV_FILE, then the environment.
// Variables already present in the environment take precedence over the env file.
func Load() (Config, error) {
	envFile, _, err := env.Lookup[string]("THINGS_ENV_FILE", env.DefaultValue(".env"))
	if err != nil {
		return Config{}, ErrInvalidConfig.Wrap(err)
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, ErrInvalidConfig.Wrap(fmt.Errorf("env file %s: %w", envFile, err))
	}

	var c Config
	if err := env.Load(&c); err != nil {
		return Config{}, ErrInvalidConfig.Wrap(err)
	}
	if c.HistoryFile == "" {
		c.HistoryFile = filepath.Join(os.TempDir(), defaultHistoryFileName)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return ErrInvalidConfig.Wrap(err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: %q fails %s=%s", fe.Field(), fe.Value(), fe.Tag(), fe.Param()))
	}
	return ErrInvalidConfig.F("%s", strings.Join(msgs, "; "))
}
