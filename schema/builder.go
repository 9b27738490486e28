// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rafa Zafar

package schema

// Builder aliases accepted by [BuildConfig.Builder].
const (
	BuilderVite    = "vite"
	BuilderWebpack = "webpack"
	BuilderRspack  = "rspack"
)

// Builder package identifiers the aliases resolve to.
const (
	ViteBuilderPackage    = "@nuxt/vite-builder"
	WebpackBuilderPackage = "@nuxt/webpack-builder"
	RspackBuilderPackage  = "@nuxt/rspack-builder"
)

// builderPackages maps builder aliases to their package identifiers.
var builderPackages = map[string]string{
	BuilderVite:    ViteBuilderPackage,
	BuilderWebpack: WebpackBuilderPackage,
	BuilderRspack:  RspackBuilderPackage,
}

// resolveBuilder maps a builder alias to its package identifier. An empty
// value selects vite; any other unrecognized value is assumed to be an
// explicit builder package path and passes through untouched.
func resolveBuilder(value string) string {
	if value == "" {
		return ViteBuilderPackage
	}
	if pkg, ok := builderPackages[value]; ok {
		return pkg
	}
	return value
}
