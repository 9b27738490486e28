// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rafa Zafar

package schema

// BuildConfig is the user-facing partial build configuration. Every field is
// optional; zero values mean "not set" and are filled in by [Resolve].
//
// The same struct is populated from all configuration sources: config files
// (JSON/YAML tags), environment variables (`env` tags, NUXT_ prefix applied
// by the loader), and command-line flags.
type BuildConfig struct {
	// Builder selects the bundler. Accepts one of the aliases "vite",
	// "webpack" or "rspack", or an explicit builder package path which is
	// passed through untouched.
	// Env: NUXT_BUILDER
	Builder string `env:"BUILDER" json:"builder,omitempty" yaml:"builder,omitempty"`

	// Sourcemap controls sourcemap generation. Accepts a bare boolean
	// (applied to both server and client builds) or an object with
	// independent server/client booleans.
	// Env: NUXT_SOURCEMAP (boolean shorthand only)
	Sourcemap SourcemapInput `env:"SOURCEMAP" json:"sourcemap,omitempty" yaml:"sourcemap,omitempty"`

	// LogLevel sets build-time log verbosity: "silent", "info" or
	// "verbose". Unrecognized values produce a warning during resolution
	// and fall back to a sensible default.
	// Env: NUXT_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" json:"logLevel,omitempty" yaml:"logLevel,omitempty"`

	// BuildID identifies a single build. Defaults to "dev" in dev mode,
	// "test" in test mode, and a random UUID otherwise.
	// Env: NUXT_BUILD_ID
	BuildID string `env:"BUILD_ID" json:"buildId,omitempty" yaml:"buildId,omitempty"`

	// Build holds bundler-facing options: bundle analysis, transpilation
	// targets, and build-time templates.
	Build BuildOptions `envPrefix:"BUILD_" json:"build,omitempty" yaml:"build,omitempty"`

	// Optimization holds compile-time hints consumed by the component
	// compiler: keyed composables, per-target tree-shaking, and async
	// context transforms.
	Optimization OptimizationOptions `json:"optimization,omitempty" yaml:"optimization,omitempty"`

	// ConfigPath is the optional path or http(s) URL of a configuration
	// document. When non-empty the document is parsed and merged on top of
	// the values already loaded from flags and environment variables.
	// Populated via the NUXT_CONFIG environment variable or the -c/-config
	// flag; never part of a config document itself.
	ConfigPath string `env:"CONFIG" json:"-" yaml:"-"`
}

// ResolvedConfig is the fully-populated result of [Resolve]. Every field has
// a concrete value; the object is immutable after resolution.
type ResolvedConfig struct {
	// Builder is the resolved builder package identifier, e.g.
	// "@nuxt/vite-builder".
	Builder string `json:"builder" yaml:"builder"`

	// Sourcemap holds the per-target sourcemap decision.
	Sourcemap SourcemapOptions `json:"sourcemap" yaml:"sourcemap"`

	// LogLevel is the resolved build log verbosity.
	LogLevel LogLevel `json:"logLevel" yaml:"logLevel"`

	// BuildID identifies this build.
	BuildID string `json:"buildId" yaml:"buildId"`

	// Build holds the resolved bundler options.
	Build ResolvedBuildOptions `json:"build" yaml:"build"`

	// Optimization holds the resolved component-compiler hints.
	Optimization ResolvedOptimization `json:"optimization" yaml:"optimization"`
}

// Environment carries the resolution inputs that field defaults may depend
// on. It is assembled by the configuration loader before resolution.
type Environment struct {
	// Dev reports whether the framework runs in development mode.
	// Env: NUXT_DEV
	Dev bool `env:"DEV" json:"dev" yaml:"dev"`

	// Test reports whether the framework runs under a test runner or CI.
	// Env: NUXT_TEST (the loader also honors CI=true)
	Test bool `env:"TEST" json:"test" yaml:"test"`

	// RootDir is the project root. Defaults to the working directory.
	// Env: NUXT_ROOT_DIR
	RootDir string `env:"ROOT_DIR" json:"rootDir" yaml:"rootDir"`

	// AnalyzeDir is where bundle analysis artifacts are written.
	// Defaults to <RootDir>/.nuxt/analyze.
	AnalyzeDir string `env:"ANALYZE_DIR" json:"analyzeDir" yaml:"analyzeDir"`
}
