// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
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

// parseFlags parses the client flags from args (without the program name).
//
// Flags:
//
//	-data-dir          app data directory
//	-d                 SQLite database file
//	-photos-dir        local photos directory
//	-c/-config         json file path with configs
//	-endpoint          BaaS endpoint
//	-project           BaaS project id
//	-request-timeout   outbound request timeout (e.g., "30s")
//	-search-debounce   home search debounce (e.g., "350ms")
//	-page-size         home page size
//	-metrics-address   metrics listener in format [host]:[port]
//	-no-crash-reports  disable error reporting
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("arcent", flag.ContinueOnError)

	var metricsAddress NetAddress
	var dataDir, dsn, photosDir, jsonConfigPath string
	var endpoint, projectID string
	var requestTimeout, searchDebounce time.Duration
	var pageSize int
	var noCrashReports bool

	fs.StringVar(&dataDir, "data-dir", "", "App data directory")
	fs.StringVar(&dsn, "d", "", "SQLite database file")
	fs.StringVar(&photosDir, "photos-dir", "", "Local photos directory")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&endpoint, "endpoint", "", "BaaS endpoint")
	fs.StringVar(&projectID, "project", "", "BaaS project id")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&searchDebounce, "search-debounce", 0, "Search debounce (e.g., 350ms)")
	fs.IntVar(&pageSize, "page-size", 0, "Home page size")
	fs.Var(&metricsAddress, "metrics-address", "Metrics listener host:port")
	fs.BoolVar(&noCrashReports, "no-crash-reports", false, "Disable error reporting")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			DataDir:                dataDir,
			CrashReportingDisabled: noCrashReports,
			MetricsAddress:         metricsAddress.String(),
		},
		Storage: Storage{
			DB:    DB{DSN: dsn},
			Files: Files{PhotosDir: photosDir},
		},
		Remote: Remote{
			Endpoint:       endpoint,
			ProjectID:      projectID,
			RequestTimeout: requestTimeout,
		},
		Home: Home{
			SearchDebounce: searchDebounce,
			PageSize:       pageSize,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
