package config

import (
	"flag"
	"strings"

	"github.com/rafazafar/nuxt/schema"
)

// sourcemapValue adapts schema.SourcemapInput to the flag.Value interface.
// It accepts the boolean shorthand only; per-target settings belong in a
// config document.
type sourcemapValue struct {
	input *schema.SourcemapInput
}

func (v *sourcemapValue) String() string {
	if v.input == nil || v.input.Server == nil {
		return ""
	}
	if *v.input.Server {
		return "true"
	}
	return "false"
}

func (v *sourcemapValue) Set(s string) error {
	return v.input.UnmarshalText([]byte(s))
}

// transpileValue collects a comma-separated dependency list.
type transpileValue struct {
	entries *[]string
}

func (v *transpileValue) String() string {
	if v.entries == nil {
		return ""
	}
	return strings.Join(*v.entries, ",")
}

func (v *transpileValue) Set(s string) error {
	*v.entries = strings.Split(s, ",")
	return nil
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-builder bundler alias (vite, webpack, rspack) or builder package path
//	-sourcemap boolean shorthand applied to both build targets
//	-log-level build log verbosity (silent, info, verbose)
//	-build-id explicit build identifier
//	-analyze enable bundle analysis
//	-transpile comma-separated dependencies to transpile
//	-c/-config config document path or http(s) URL
//	-dev run in development mode
//	-test run in test mode
//	-root project root directory
func ParseFlags() (*schema.BuildConfig, schema.Environment) {
	cfg := &schema.BuildConfig{}
	var environment schema.Environment
	var analyze bool

	flag.StringVar(&cfg.Builder, "builder", "", "Bundler alias or builder package path")
	flag.Var(&sourcemapValue{input: &cfg.Sourcemap}, "sourcemap", "Sourcemap generation (true/false)")
	flag.StringVar(&cfg.LogLevel, "log-level", "", "Build log verbosity")
	flag.StringVar(&cfg.BuildID, "build-id", "", "Build identifier")
	flag.BoolVar(&analyze, "analyze", false, "Enable bundle analysis")
	flag.Var(&transpileValue{entries: &cfg.Build.Transpile}, "transpile", "Comma-separated dependencies to transpile")
	flag.StringVar(&cfg.ConfigPath, "c", "", "Config document path or URL")
	flag.StringVar(&cfg.ConfigPath, "config", "", "Config document path or URL (alias)")
	flag.BoolVar(&environment.Dev, "dev", false, "Development mode")
	flag.BoolVar(&environment.Test, "test", false, "Test mode")
	flag.StringVar(&environment.RootDir, "root", "", "Project root directory")

	flag.Parse()

	if analyze {
		cfg.Build.Analyze.Enabled = &analyze
	}

	return cfg, environment
}
