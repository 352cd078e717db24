package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/gophauth/internal/flagx"
	"github.com/dmitrijs2005/gophauth/internal/timex"
	"go.yaml.in/yaml/v4"
)

// JsonConfig is a DTO used exclusively for config file unmarshalling.
type JsonConfig struct {
	ServerBaseURL        string          `json:"server_base_url" yaml:"server_base_url"`
	StoreKind            string          `json:"store_kind" yaml:"store_kind"`
	StorePath            string          `json:"store_path" yaml:"store_path"`
	LogLevel             string          `json:"log_level" yaml:"log_level"`
	LogFormat            string          `json:"log_format" yaml:"log_format"`
	WebListenAddr        string          `json:"web_listen_addr" yaml:"web_listen_addr"`
	WebReadHeaderTimeout *timex.Duration `json:"web_read_header_timeout" yaml:"web_read_header_timeout"`
}

// parseJson overlays Config with values loaded from the file named by
// -c or -config. Files ending in .yaml or .yml are read as YAML, anything
// else as JSON. Keys missing from the file keep their current values.
// Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigPath(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := unmarshalConfigFile(jsonConfigFile, data, &jc); err != nil {
		panic(err)
	}

	setIfNotEmpty(&cfg.ServerBaseURL, jc.ServerBaseURL)
	setIfNotEmpty(&cfg.StoreKind, jc.StoreKind)
	setIfNotEmpty(&cfg.StorePath, jc.StorePath)
	setIfNotEmpty(&cfg.LogLevel, jc.LogLevel)
	setIfNotEmpty(&cfg.LogFormat, jc.LogFormat)
	setIfNotEmpty(&cfg.WebListenAddr, jc.WebListenAddr)
	if jc.WebReadHeaderTimeout != nil {
		cfg.WebReadHeaderTimeout = jc.WebReadHeaderTimeout.Duration
	}
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func unmarshalConfigFile(path string, data []byte, jc *JsonConfig) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, jc)
	default:
		return json.Unmarshal(data, jc)
	}
}
