// SPDX-License-Identifier: Apache-2.0

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.App.AuthTransport != TransportCookie && cfg.App.AuthTransport != TransportBearer {
		return ErrInvalidAppConfigs
	}

	mongo := cfg.Storage.Mongo
	if mongo.URI == "" && (mongo.User == "" || mongo.Password == "" || mongo.Host == "") {
		return ErrInvalidStorageConfigs
	}
	if mongo.Database == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
