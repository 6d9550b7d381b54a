package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"datagrid/internal/input"

	"github.com/joho/godotenv"
)

// Config holds CLI configuration.
type Config struct {
	DBPath       string
	LogPath      string
	Selectable   bool
	InputVariant input.Variant
	InputSize    input.Size
	SeedSample   bool
	ConfigDir    string
	ShowVersion  bool
}

// ParseFlags parses command-line flags and returns configuration.
func ParseFlags(version string) (*Config, error) {
	return parseFlags(flag.CommandLine, os.Args[1:], version, true)
}

func parseFlags(fset *flag.FlagSet, args []string, version string, interactive bool) (*Config, error) {
	config := &Config{}

	// Load .env files first so env-based defaults work with flag parsing.
	if err := loadDotEnv(".env.local", ".env"); err != nil {
		return nil, err
	}

	var variant, size string
	fset.StringVar(&config.DBPath, "db", os.Getenv("DATAGRID_DB"), "Path to SQLite database file (default: ~/.datagrid/datagrid.db)")
	fset.StringVar(&config.LogPath, "log", os.Getenv("DATAGRID_LOG"), "Write debug log to this file")
	fset.BoolVar(&config.Selectable, "selectable", true, "Show row checkboxes")
	fset.StringVar(&variant, "input-variant", "outlined", "Form field variant: filled, outlined or ghost")
	fset.StringVar(&size, "input-size", "md", "Form field size: sm, md or lg")
	fset.BoolVar(&config.ShowVersion, "version", false, "Print version and exit")
	if err := fset.Parse(args); err != nil {
		return nil, err
	}

	if config.ShowVersion {
		fmt.Printf("datagrid %s\n", version)
		return config, nil
	}

	var err error
	if config.InputVariant, err = input.ParseVariant(variant); err != nil {
		return nil, err
	}
	if config.InputSize, err = input.ParseSize(size); err != nil {
		return nil, err
	}

	// Set default DB path if not specified
	if config.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}

		config.ConfigDir = filepath.Join(home, ".datagrid")
		config.DBPath = filepath.Join(config.ConfigDir, "datagrid.db")
	} else {
		config.ConfigDir = filepath.Dir(config.DBPath)
	}
	if err := os.MkdirAll(config.ConfigDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	settings, err := loadOnboardingSettings(config.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load onboarding settings: %w", err)
	}

	if interactive && shouldRunOnboarding(settings) {
		settings, err = runOnboarding(config.ConfigDir)
		if err != nil {
			return nil, fmt.Errorf("failed to run onboarding: %w", err)
		}
	}
	config.SeedSample = settings.SeedSample

	return config, nil
}

// loadDotEnv loads each file that exists. Variables already set win, so
// earlier files take precedence over later ones.
func loadDotEnv(paths ...string) error {
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}
	return nil
}
