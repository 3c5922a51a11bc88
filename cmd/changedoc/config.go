// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/changedoc

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/woozymasta/changedoc"
)

const (
	// configName is the config file base name searched in the working directory.
	configName = "changedoc"
	// envPrefix prefixes environment variable overrides.
	envPrefix = "CHANGEDOC"
)

// settings is the merged file, environment and flag configuration.
type settings struct {
	Root             string           `mapstructure:"root"`
	NavPath          string           `mapstructure:"nav_path"`
	PagesDir         string           `mapstructure:"pages_dir"`
	ToolName         string           `mapstructure:"tool_name"`
	Author           string           `mapstructure:"author"`
	ExampleDatabases []string         `mapstructure:"example_databases"`
	KeepGoing        bool             `mapstructure:"keep_going"`
	PageTemplate     string           `mapstructure:"page_template"`
	NavTemplate      string           `mapstructure:"nav_template"`
	SQLCheck         sqlCheckSettings `mapstructure:"sql_check"`
}

// sqlCheckSettings configures the check-sql command.
type sqlCheckSettings struct {
	Database string `mapstructure:"database"`
	DSN      string `mapstructure:"dsn"`
	Fixture  string `mapstructure:"fixture"`
}

// loadSettings reads changedoc.yaml from configPath or dir and applies
// CHANGEDOC_* environment overrides. A missing default config file is not an error.
func loadSettings(configPath, dir string) (settings, error) {
	v := viper.New()

	v.SetDefault("root", ".")
	v.SetDefault("nav_path", changedoc.DefaultNavPath)
	v.SetDefault("pages_dir", changedoc.DefaultPagesDir)
	v.SetDefault("tool_name", changedoc.DefaultToolName)
	v.SetDefault("author", changedoc.DefaultAuthor)
	v.SetDefault("example_databases", changedoc.DefaultExampleDatabases())
	v.SetDefault("keep_going", false)
	v.SetDefault("page_template", "")
	v.SetDefault("nav_template", "")
	v.SetDefault("sql_check.database", "sqlite")
	v.SetDefault("sql_check.dsn", "")
	v.SetDefault("sql_check.fixture", "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if strings.TrimSpace(configPath) != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return settings{}, fmt.Errorf("read config file %q: %w", configPath, err)
		}
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return settings{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var out settings
	if err := v.Unmarshal(&out); err != nil {
		return settings{}, fmt.Errorf("decode config: %w", err)
	}

	return out, nil
}

// outputFlags selects where and how documentation is generated.
type outputFlags struct {
	Root             string   `short:"r" long:"root" description:"Output root directory (default from config or .)"`
	NavPath          string   `long:"nav-path" description:"Navigation include path relative to root"`
	PagesDir         string   `long:"pages-dir" description:"Change page directory relative to root"`
	ToolName         string   `long:"tool-name" description:"Generator name written into file banners"`
	Author           string   `long:"author" description:"Author of example change sets"`
	ExampleDatabases []string `short:"e" long:"example-database" description:"Database short name tried first for SQL samples (repeatable)"`
	PageTemplate     string   `long:"page-template" description:"Path to custom page template (.gotmpl)"`
	NavTemplate      string   `long:"nav-template" description:"Path to custom navigation template (.gotmpl)"`
}

// apply overrides config values with flags that were set.
func (flags outputFlags) apply(cfg settings) settings {
	cfg.Root = override(cfg.Root, flags.Root)
	cfg.NavPath = override(cfg.NavPath, flags.NavPath)
	cfg.PagesDir = override(cfg.PagesDir, flags.PagesDir)
	cfg.ToolName = override(cfg.ToolName, flags.ToolName)
	cfg.Author = override(cfg.Author, flags.Author)
	cfg.PageTemplate = override(cfg.PageTemplate, flags.PageTemplate)
	cfg.NavTemplate = override(cfg.NavTemplate, flags.NavTemplate)

	if len(flags.ExampleDatabases) > 0 {
		cfg.ExampleDatabases = flags.ExampleDatabases
	}

	if strings.TrimSpace(cfg.Root) == "" {
		cfg.Root = "."
	}

	return cfg
}

// override returns value when set, otherwise current.
func override(current, value string) string {
	if strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}

	return current
}
