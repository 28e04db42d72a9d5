// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 VineVault

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Duration wraps time.Duration so JSON config files can carry durations as
// human-readable strings ("15s", "24h").
type Duration time.Duration

// UnmarshalJSON accepts either a duration string or a raw nanosecond number.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		parsed, perr := time.ParseDuration(asString)
		if perr != nil {
			return fmt.Errorf("invalid duration %q: %w", asString, perr)
		}
		*d = Duration(parsed)
		return nil
	}

	var asNumber int64
	if err := json.Unmarshal(data, &asNumber); err != nil {
		return fmt.Errorf("invalid duration value: %w", err)
	}
	*d = Duration(asNumber)
	return nil
}

// jsonConfig mirrors StructuredConfig with JSON tags and string durations.
type jsonConfig struct {
	App struct {
		Version           string   `json:"version"`
		BaseURL           string   `json:"base_url"`
		SessionCookieName string   `json:"session_cookie_name"`
		SessionTTL        Duration `json:"session_ttl"`
		OperationTimeout  Duration `json:"operation_timeout"`
		LogoutPolicy      string   `json:"logout_policy"`
		SessionSignKey    string   `json:"session_sign_key"`
	} `json:"app,omitempty"`

	Provider struct {
		Endpoint string   `json:"endpoint"`
		Project  string   `json:"project"`
		Key      string   `json:"key"`
		Database string   `json:"database"`
		Timeout  Duration `json:"timeout"`
	} `json:"provider,omitempty"`

	Locale struct {
		DetectFromHeaders bool `json:"detect_from_headers"`
	} `json:"locale,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		SweepInterval Duration `json:"sweep_interval"`
	} `json:"workers,omitempty"`
}

// parseJSON reads the configuration file at path and converts it into a
// *StructuredConfig suitable for merging.
func parseJSON(path string) (*StructuredConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading json config file: %w", err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(raw, &jc); err != nil {
		return nil, fmt.Errorf("error parsing json config file: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Version:           jc.App.Version,
			BaseURL:           jc.App.BaseURL,
			SessionCookieName: jc.App.SessionCookieName,
			SessionTTL:        time.Duration(jc.App.SessionTTL),
			OperationTimeout:  time.Duration(jc.App.OperationTimeout),
			LogoutPolicy:      jc.App.LogoutPolicy,
			SessionSignKey:    jc.App.SessionSignKey,
		},
		Provider: Provider{
			Endpoint: jc.Provider.Endpoint,
			Project:  jc.Provider.Project,
			Key:      jc.Provider.Key,
			Database: jc.Provider.Database,
			Timeout:  time.Duration(jc.Provider.Timeout),
		},
		Locale: Locale{
			DetectFromHeaders: jc.Locale.DetectFromHeaders,
		},
		Storage: Storage{
			DB: DB{
				Driver: jc.Storage.DB.Driver,
				DSN:    jc.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jc.Server.HTTPAddress,
			RequestTimeout: time.Duration(jc.Server.RequestTimeout),
		},
		Workers: Workers{
			SweepInterval: time.Duration(jc.Workers.SweepInterval),
		},
	}, nil
}
