// Command nuxtconf loads the partial build configuration from flags,
// environment variables and an optional config document, resolves it, and
// prints the fully-populated result on stdout as JSON (or YAML with
// -o yaml).
package main

import (
	"encoding/json"
	"flag"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rafazafar/nuxt/internal/config"
	"github.com/rafazafar/nuxt/internal/logger"
	"github.com/rafazafar/nuxt/schema"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	var output string
	flag.StringVar(&output, "o", "json", "Output format: json or yaml")

	log := logger.NewLogger("nuxtconf")
	log.Debug().
		Str("version", buildVersion).
		Str("date", buildDate).
		Str("commit", buildCommit).
		Msg("build info")

	cfg, environment, err := config.GetBuildConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Any("environment", environment).Msg("received configs")

	resolved, err := schema.Resolve(cfg, environment, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error resolving config")
	}

	logger.SetGlobalLevel(resolved.LogLevel.ZerologLevel())

	if err := print(resolved, output); err != nil {
		log.Fatal().Err(err).Msg("error printing resolved config")
	}
}

func print(resolved *schema.ResolvedConfig, output string) error {
	if output == "yaml" {
		return yaml.NewEncoder(os.Stdout).Encode(resolved)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(resolved)
}
