package config

import "log/slog"

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile.
// NOTE: Values in the config file override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	UI          UIConfig          `toml:"ui"`
	Listing     ListingConfig     `toml:"listing"`
	Filesystem  FilesystemConfig  `toml:"filesystem"`
	Digest      DigestConfig      `toml:"digest"`
	Compression CompressionConfig `toml:"compression"`
	Log         LogConfig         `toml:"log"`
}

type UIConfig struct {
	Color bool `toml:"color"` // Default: true
}

type ListingConfig struct {
	// Locale is a BCP-47 tag used to collate entry names. Empty means byte order.
	Locale string `toml:"locale"` // Default: "en"
}

type FilesystemConfig struct {
	// ResolveRenamePaths makes rn resolve both paths against the session directory
	// instead of the process working directory.
	ResolveRenamePaths bool `toml:"resolve_rename_paths"` // Default: false
}

type DigestConfig struct {
	Algorithm string `toml:"algorithm"` // Default: "sha256"
}

type CompressionConfig struct {
	Level int `toml:"level"` // Default: 11 (brotli quality)
}

type LogConfig struct {
	Level string `toml:"level"` // Default: "warn"
}

// SlogLevel maps Level to a slog level. Unknown values map to warn.
func (c LogConfig) SlogLevel() slog.Level {
	switch c.Level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Color: true,
		},
		Listing: ListingConfig{
			Locale: "en",
		},
		Filesystem: FilesystemConfig{
			ResolveRenamePaths: false,
		},
		Digest: DigestConfig{
			Algorithm: "sha256",
		},
		Compression: CompressionConfig{
			Level: 11,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}
