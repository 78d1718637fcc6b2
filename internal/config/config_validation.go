// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikita Danilenko

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Token signing parameters are fatal misconfiguration when absent: no
// per-request recovery is possible without them. The Redis address is
// required only when concurrent-login limiting is enabled, since the
// session cache is not consulted otherwise.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration == 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.LimitConcurrentLogin && cfg.Storage.Redis.Address == "" {
		return ErrInvalidSessionCacheConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
