// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rafa Zafar

package schema

import (
	"fmt"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/google/uuid"

	"github.com/rafazafar/nuxt/internal/logger"
)

// Resolve turns a partial [BuildConfig] into a fully-populated
// [ResolvedConfig]. Each field is resolved independently; defaults may read
// the environment but never another user-supplied field. Bad user values
// never abort resolution: a warning is logged and a fallback applied. The
// only error source is an internal merge failure.
//
// cfg and log may be nil; a nil cfg resolves to the full default
// configuration.
func Resolve(cfg *BuildConfig, env Environment, log *logger.Logger) (*ResolvedConfig, error) {
	if cfg == nil {
		cfg = &BuildConfig{}
	}
	if log == nil {
		log = logger.Nop()
	}
	env = normalizeEnvironment(env)

	resolved := &ResolvedConfig{
		Builder:   resolveBuilder(cfg.Builder),
		Sourcemap: cfg.Sourcemap.resolve(env),
		LogLevel:  resolveLogLevel(cfg.LogLevel, env, log),
		BuildID:   resolveBuildID(cfg.BuildID, env),
	}

	build, err := resolveBuild(cfg.Build, env)
	if err != nil {
		return nil, fmt.Errorf("error resolving build options: %w", err)
	}
	resolved.Build = build

	opt, err := resolveOptimization(cfg.Optimization)
	if err != nil {
		return nil, fmt.Errorf("error resolving optimization options: %w", err)
	}
	resolved.Optimization = opt

	return resolved, nil
}

// normalizeEnvironment fills the directory defaults: project root falls back
// to the working directory, the analyze dir nests under it.
func normalizeEnvironment(env Environment) Environment {
	if env.RootDir == "" {
		if wd, err := os.Getwd(); err == nil {
			env.RootDir = wd
		} else {
			env.RootDir = "."
		}
	}
	if env.AnalyzeDir == "" {
		env.AnalyzeDir = filepath.Join(env.RootDir, ".nuxt", "analyze")
	}
	return env
}

// resolveLogLevel validates the user value, warning and falling back on
// anything unrecognized. Resolution proceeds regardless.
func resolveLogLevel(value string, env Environment, log *logger.Logger) LogLevel {
	if value == "" {
		return defaultLogLevel(env)
	}

	level := LogLevel(value)
	if !level.valid() {
		log.Warn().
			Str("logLevel", value).
			Msgf("invalid log level %q, allowed values are silent, info and verbose", value)
		return defaultLogLevel(env)
	}
	return level
}

// resolveBuildID keeps an explicit id, uses the stable "dev"/"test" ids for
// the respective modes, and mints a random id for production builds.
func resolveBuildID(value string, env Environment) string {
	if value != "" {
		return value
	}
	if env.Dev {
		return "dev"
	}
	if env.Test {
		return "test"
	}
	if v7, err := uuid.NewV7(); err == nil {
		return v7.String()
	}
	return uuid.NewString()
}

func resolveBuild(opts BuildOptions, env Environment) (ResolvedBuildOptions, error) {
	analyze := AnalyzeOptions{
		Template:    opts.Analyze.Template,
		ProjectRoot: opts.Analyze.ProjectRoot,
		Filename:    opts.Analyze.Filename,
	}
	if opts.Analyze.Enabled != nil {
		analyze.Enabled = *opts.Analyze.Enabled
	}
	if err := mergo.Merge(&analyze, defaultAnalyzeOptions(env)); err != nil {
		return ResolvedBuildOptions{}, fmt.Errorf("error merging analyze defaults: %w", err)
	}

	transpile := make([]string, 0, len(opts.Transpile))
	for _, entry := range opts.Transpile {
		if entry != "" {
			transpile = append(transpile, entry)
		}
	}

	templates := opts.Templates
	if templates == nil {
		templates = []Template{}
	}

	return ResolvedBuildOptions{
		Analyze:   analyze,
		Transpile: transpile,
		Templates: templates,
	}, nil
}

func resolveOptimization(opts OptimizationOptions) (ResolvedOptimization, error) {
	// User entries come first so they shadow same-named defaults.
	keyed := append(append([]KeyedComposable{}, opts.KeyedComposables...), defaultKeyedComposables()...)

	treeShake := TreeShakeOptions{
		Composables: ComposableTreeShake{
			Server: copyTreeShakeMap(opts.TreeShake.Composables.Server),
			Client: copyTreeShakeMap(opts.TreeShake.Composables.Client),
		},
	}
	defaults := TreeShakeOptions{
		Composables: ComposableTreeShake{
			Server: defaultServerTreeShake(),
			Client: defaultClientTreeShake(),
		},
	}
	if err := mergo.Merge(&treeShake, defaults); err != nil {
		return ResolvedOptimization{}, fmt.Errorf("error merging tree-shake defaults: %w", err)
	}

	async := AsyncTransformsOptions{
		AsyncFunctions:    append([]string{}, opts.AsyncTransforms.AsyncFunctions...),
		ObjectDefinitions: copyTreeShakeMap(opts.AsyncTransforms.ObjectDefinitions),
	}
	if err := mergo.Merge(&async, defaultAsyncTransforms()); err != nil {
		return ResolvedOptimization{}, fmt.Errorf("error merging async transform defaults: %w", err)
	}

	return ResolvedOptimization{
		KeyedComposables: keyed,
		TreeShake:        treeShake,
		AsyncTransforms:  async,
	}, nil
}

// copyTreeShakeMap clones a source→names map so resolution never aliases a
// user-supplied map.
func copyTreeShakeMap(in map[string][]string) map[string][]string {
	if in == nil {
		return map[string][]string{}
	}
	out := make(map[string][]string, len(in))
	for source, names := range in {
		out[source] = append([]string{}, names...)
	}
	return out
}
