package database

import (
	"fmt"
	"net/url"

	"github.com/eugenenazirov/login-checker/internal/settings"
)

const (
	// DefaultPort is the standard SQL Server port; every derived Config uses it.
	DefaultPort = 1433
	// AppName identifies this application to the database server.
	AppName = "Login Checker"
)

// Config describes how the hosting application should connect to the database:
// plain username/password authentication, encryption off, and the server's
// certificate trusted unconditionally (self-signed certificates are accepted).
type Config struct {
	Host                   string
	Port                   int
	Database               string
	Username               string
	Password               string
	Encrypt                bool
	TrustServerCertificate bool
	AppName                string
}

// NewConfig derives the connection descriptor from resolved settings. Field
// contents pass through without validation; empty strings are accepted, not
// errors.
func NewConfig(s settings.Settings) Config {
	return Config{
		Host:                   s.DatabaseServer,
		Port:                   DefaultPort,
		Database:               s.DatabaseName,
		Username:               s.DatabaseUsername,
		Password:               s.DatabasePassword,
		Encrypt:                false,
		TrustServerCertificate: true,
		AppName:                AppName,
	}
}

// Addr returns the network address the connection would target, rendered as
// "host:port".
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// URL renders the descriptor as a sqlserver:// connection URL suitable for a
// SQL Server driver DSN.
func (c Config) URL() *url.URL {
	query := url.Values{}
	query.Set("database", c.Database)
	query.Set("app name", c.AppName)
	if c.Encrypt {
		query.Set("encrypt", "true")
	} else {
		query.Set("encrypt", "disable")
	}
	if c.TrustServerCertificate {
		query.Set("trustservercertificate", "true")
	}

	return &url.URL{
		Scheme:   "sqlserver",
		User:     url.UserPassword(c.Username, c.Password),
		Host:     c.Addr(),
		RawQuery: query.Encode(),
	}
}
