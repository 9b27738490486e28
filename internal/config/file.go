package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-resty/resty/v2"
	"gopkg.in/yaml.v3"

	"github.com/rafazafar/nuxt/schema"
)

// loadFile reads a config document from a local path or an http(s) URL and
// decodes it into a partial build configuration. The format is chosen by
// file extension: .json, .yaml or .yml.
func loadFile(pathOrURL string) (*schema.BuildConfig, error) {
	data, ext, err := readDocument(pathOrURL)
	if err != nil {
		return nil, err
	}

	cfg := &schema.BuildConfig{}
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFormat, pathOrURL)
	}

	// a document never names another document
	cfg.ConfigPath = ""

	return cfg, nil
}

func readDocument(pathOrURL string) ([]byte, string, error) {
	if isRemote(pathOrURL) {
		u, err := url.Parse(pathOrURL)
		if err != nil {
			return nil, "", fmt.Errorf("error parsing remote config url: %w", err)
		}

		resp, err := resty.New().R().Get(pathOrURL)
		if err != nil {
			return nil, "", fmt.Errorf("error fetching remote config: %w", err)
		}
		if resp.IsError() {
			return nil, "", fmt.Errorf("%w: %s returned %s", ErrRemoteConfigUnavailable, pathOrURL, resp.Status())
		}
		return resp.Body(), strings.ToLower(path.Ext(u.Path)), nil
	}

	data, err := os.ReadFile(pathOrURL)
	if err != nil {
		return nil, "", fmt.Errorf("error reading a config file: %w", err)
	}
	return data, strings.ToLower(filepath.Ext(pathOrURL)), nil
}

func isRemote(pathOrURL string) bool {
	return strings.HasPrefix(pathOrURL, "http://") || strings.HasPrefix(pathOrURL, "https://")
}
