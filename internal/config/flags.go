// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 VineVault

package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-base-url externally visible site origin
//	-provider-endpoint identity provider base URL
//	-provider-project identity provider project ID
//	-provider-key identity provider API key
//	-provider-database provider database holding catalog collections
//	-db-driver session store driver ("pgx" or "sqlite3")
//	-d session store DSN
//	-c/-config json file path with configs
//	-session-ttl session lifetime (e.g. "24h")
//	-operation-timeout identity-provider call timeout (e.g. "15s")
//	-logout-policy "always-clear" or "clear-on-success"
//	-detect-locale enable Accept-Language locale detection
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("vinevault", flag.ContinueOnError)

	var serverAddress NetAddress
	var baseURL string
	var providerEndpoint, providerProject, providerKey, providerDatabase string
	var dbDriver, databaseDSN string
	var jsonConfigPath string
	var sessionTTL, operationTimeout, requestTimeout, providerTimeout time.Duration
	var logoutPolicy string
	var detectLocale bool

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&baseURL, "base-url", "", "Externally visible site origin")
	fs.StringVar(&providerEndpoint, "provider-endpoint", "", "Identity provider base URL")
	fs.StringVar(&providerProject, "provider-project", "", "Identity provider project ID")
	fs.StringVar(&providerKey, "provider-key", "", "Identity provider API key")
	fs.StringVar(&providerDatabase, "provider-database", "", "Provider database for catalog collections")
	fs.DurationVar(&providerTimeout, "provider-timeout", 0, "Provider call timeout (e.g. 15s)")
	fs.StringVar(&dbDriver, "db-driver", "", "Session store driver (pgx or sqlite3)")
	fs.StringVar(&databaseDSN, "d", "", "Session store DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&sessionTTL, "session-ttl", 0, "Session lifetime (e.g. 24h)")
	fs.DurationVar(&operationTimeout, "operation-timeout", 0, "Identity-provider call timeout (e.g. 15s)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Inbound request timeout (e.g. 30s)")
	fs.StringVar(&logoutPolicy, "logout-policy", "", "Logout policy: always-clear or clear-on-success")
	fs.BoolVar(&detectLocale, "detect-locale", false, "Enable Accept-Language locale detection")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			BaseURL:          baseURL,
			SessionTTL:       sessionTTL,
			OperationTimeout: operationTimeout,
			LogoutPolicy:     logoutPolicy,
		},
		Provider: Provider{
			Endpoint: providerEndpoint,
			Project:  providerProject,
			Key:      providerKey,
			Database: providerDatabase,
			Timeout:  providerTimeout,
		},
		Locale: Locale{
			DetectFromHeaders: detectLocale,
		},
		Storage: Storage{
			DB: DB{
				Driver: dbDriver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
