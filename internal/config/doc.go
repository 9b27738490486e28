// Package config loads the user's partial build configuration from all
// available sources and hands it to the schema resolver.
//
// Sources are merged in the following priority order (earlier sources win
// for non-zero fields):
//  1. Command-line flags
//  2. Environment variables (NUXT_ prefix)
//  3. Config document (JSON or YAML, local path or http(s) URL, resolved
//     from sources 1 and 2)
//
// The main entry point is [GetBuildConfig], which returns the merged partial
// configuration together with the resolution environment (dev/test mode,
// project root).
package config
