package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the process dependencies of the CLI.
type Config struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Environ is the process environment in KEY=value form.
	Environ []string
	// EnvFile is an optional dotenv file. A missing file is ignored.
	EnvFile string
}

// DefaultConfig returns a Config wired to the real process.
func DefaultConfig() Config {
	return Config{
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Environ: os.Environ(),
		EnvFile: ".env",
	}
}

// Settings are read from CRYPTOKIT_* variables.
type Settings struct {
	Key       string `env:"CRYPTOKIT_KEY"`
	Format    string `env:"CRYPTOKIT_FORMAT" envDefault:"hex"`
	Algorithm string `env:"CRYPTOKIT_ALGORITHM" envDefault:"xsalsa20poly1305"`
	LogLevel  string `env:"CRYPTOKIT_LOG_LEVEL" envDefault:"warn"`
}

// loadSettings merges the dotenv file and the environment. Variables set in
// the environment win over the file.
func loadSettings(environ []string, envFile string) (Settings, error) {
	vars := make(map[string]string)

	if envFile != "" {
		fileVars, err := godotenv.Read(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("read %s: %w", envFile, err)
		}
		for k, v := range fileVars {
			vars[k] = v
		}
	}

	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}

	var s Settings
	if err := env.ParseWithOptions(&s, env.Options{Environment: vars}); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	return s, nil
}

// newLogger returns a text logger on w at the named level.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("CRYPTOKIT_LOG_LEVEL: %w", err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
