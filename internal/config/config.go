// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"time"
)

// Token transport modes. Exactly one is active per deployment: the session
// token travels either in an HTTP-only cookie or in the Authorization
// header, never both.
const (
	TransportCookie = "cookie"
	TransportBearer = "bearer"
)

// StructuredConfig is the top-level configuration container for the
// bncc-backend application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, an optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: token parameters, the cookie
	// attributes, the active token transport, and the API version string.
	App App `envPrefix:"APP_"`

	// Storage holds the MongoDB connection and collection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged behind the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control token
// lifecycle and session transport.
type App struct {
	// TokenSignKey is the secret key used to sign and verify session tokens.
	// Must be kept confidential. Required.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenDuration specifies how long a session token remains valid after
	// issuance (e.g. "1h", "30m"). Defaults to 60 minutes.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// AuthTransport selects where the authentication pipeline reads the
	// session token from: "cookie" (default) or "bearer".
	// Env: APP_AUTH_TRANSPORT
	AuthTransport string `env:"AUTH_TRANSPORT"`

	// CookieName is the name of the HTTP-only session cookie.
	// Defaults to "access_token".
	// Env: APP_COOKIE_NAME
	CookieName string `env:"COOKIE_NAME"`

	// CookieSecure marks the session cookie as Secure (HTTPS-only).
	// Env: APP_COOKIE_SECURE
	CookieSecure bool `env:"COOKIE_SECURE"`

	// CookieSameSite is the SameSite attribute of the session cookie:
	// "lax" (default), "strict" or "none".
	// Env: APP_COOKIE_SAMESITE
	CookieSameSite string `env:"COOKIE_SAMESITE"`

	// Version is the semantic version string of the running application,
	// exposed by the health endpoints.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all persistence backends.
type Storage struct {
	// Mongo holds the document database settings.
	Mongo Mongo `envPrefix:"MONGO_"`
}

// Mongo holds connection and collection settings for the MongoDB backend.
type Mongo struct {
	// URI is the full connection string. When set it takes precedence over
	// the User/Password/Host triple.
	// Env: STORAGE_MONGO_URI
	URI string `env:"URI"`

	// User, Password and Host assemble an Atlas-style mongodb+srv URI when
	// URI itself is empty.
	// Env: STORAGE_MONGO_USER / STORAGE_MONGO_PASSWORD / STORAGE_MONGO_HOST
	User     string `env:"USER"`
	Password string `env:"PASSWORD"`
	Host     string `env:"HOST"`

	// Database is the database name. Defaults to "appDB".
	// Env: STORAGE_MONGO_DATABASE
	Database string `env:"DATABASE"`

	// Collection names, defaulting to USUARIOS / QUESTOES / RESULTADOS / LOGS.
	UsersCollection      string `env:"USERS_COLLECTION"`
	QuestoesCollection   string `env:"QUESTOES_COLLECTION"`
	ResultadosCollection string `env:"RESULTADOS_COLLECTION"`
	LogsCollection       string `env:"LOGS_COLLECTION"`
}

// ConnectionURI returns the URI the Mongo client should dial: the explicit
// URI when provided, otherwise one assembled from User/Password/Host.
func (m Mongo) ConnectionURI() string {
	if m.URI != "" {
		return m.URI
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s", m.User, m.Password, m.Host)
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
