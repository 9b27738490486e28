// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rafa Zafar

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"

	"github.com/rafazafar/nuxt/schema"
)

type configBuilder struct {
	configs []*schema.BuildConfig
	env     schema.Environment
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*schema.BuildConfig, 0, 3),
	}
}

func (b *configBuilder) build() (*schema.BuildConfig, schema.Environment, error) {
	if b.err != nil {
		return nil, schema.Environment{}, fmt.Errorf("error occured during building config: %w", b.err)
	}

	cfg := new(schema.BuildConfig)
	for _, partial := range b.configs {
		if err := mergo.Merge(cfg, partial); err != nil {
			return nil, schema.Environment{}, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return cfg, b.env, nil
}

func (b *configBuilder) withFlags() *configBuilder {
	flagCfg, flagEnv := ParseFlags()

	b.configs = append(b.configs, flagCfg)
	b.env = mergeEnvironment(b.env, flagEnv)
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &schema.BuildConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	environment, err := parseEnvironment()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	b.env = mergeEnvironment(b.env, environment)
	return b
}

func (b *configBuilder) withFile() *configBuilder {
	var configPath string

	for _, cfg := range b.configs {
		if cfg.ConfigPath != "" {
			configPath = cfg.ConfigPath
			break
		}
	}

	if configPath != "" {
		fileCfg, err := loadFile(configPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, fileCfg)
	}

	return b
}

// mergeEnvironment combines two partial environments. Mode booleans are
// sticky (any source may switch them on); directories keep the first
// non-empty value, matching the source priority order.
func mergeEnvironment(dst, src schema.Environment) schema.Environment {
	dst.Dev = dst.Dev || src.Dev
	dst.Test = dst.Test || src.Test
	if dst.RootDir == "" {
		dst.RootDir = src.RootDir
	}
	if dst.AnalyzeDir == "" {
		dst.AnalyzeDir = src.AnalyzeDir
	}
	return dst
}
