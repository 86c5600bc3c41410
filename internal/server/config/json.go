package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/gotasks/internal/flagx"
	"github.com/dmitrijs2005/gotasks/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON unmarshalling.
// It uses timex.Duration for interval fields, which allows parsing both
// string values such as "24h" and integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading JSON
// configuration files. After unmarshalling, its fields are copied into the
// runtime Config struct which uses time.Duration.
type JsonConfig struct {
	EndpointAddrHTTP         string         `json:"endpoint_addr_http"`
	DatabaseDSN              string         `json:"database_dsn"`
	SecretKey                string         `json:"secret_key"`
	SessionValidityDuration  timex.Duration `json:"session_validity_duration"`
	RememberValidityDuration timex.Duration `json:"remember_validity_duration"`
	TaskSortOrder            string         `json:"task_sort_order"`
	Debug                    *bool          `json:"debug"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The lookup order for the JSON file path is the -c or -config command-line
// flags; if neither is set, no JSON file is loaded. Keys absent from the
// file keep their current (default) values. If the file cannot be read or
// contains invalid JSON, the function panics.
func parseJson(config *Config) {

	// try flags
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	if c.EndpointAddrHTTP != "" {
		config.EndpointAddrHTTP = c.EndpointAddrHTTP
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.SessionValidityDuration.Duration != 0 {
		config.SessionValidityDuration = time.Duration(c.SessionValidityDuration.Duration)
	}
	if c.RememberValidityDuration.Duration != 0 {
		config.RememberValidityDuration = time.Duration(c.RememberValidityDuration.Duration)
	}
	if c.TaskSortOrder != "" {
		config.TaskSortOrder = c.TaskSortOrder
	}
	if c.Debug != nil {
		config.Debug = *c.Debug
	}
}
