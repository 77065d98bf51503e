// Package config provides configuration management for the chess engine
// server and CLI: HTTP server settings, logging settings, and the
// variant-geometry overlay a deployment can supply instead of the
// built-in standard-chess rules.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"go.eastwood.dev/chessboard/board"
	"go.eastwood.dev/chessboard/castling"
	"go.eastwood.dev/chessboard/color"
	"go.eastwood.dev/chessboard/piece"
	"go.eastwood.dev/chessboard/square"
)

// Config represents the application configuration.
type Config struct {
	Server  ServerConfig  `json:"server"`
	Logging LoggingConfig `json:"logging"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Host            string        `json:"host"`
	Port            int           `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	IdleTimeout     time.Duration `json:"idle_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
	CORSEnabled     bool          `json:"cors_enabled"`
	AllowedOrigins  []string      `json:"allowed_origins"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level      string `json:"level"`
	Format     string `json:"format"`
	OutputPath string `json:"output_path"`
	ErrorPath  string `json:"error_path"`
}

// Default returns a default configuration, with every field overridable
// by the matching CHESS_* environment variable.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            getEnvString("CHESS_HOST", "localhost"),
			Port:            getEnvInt("CHESS_PORT", 8080),
			ReadTimeout:     getEnvDuration("CHESS_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:    getEnvDuration("CHESS_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:     getEnvDuration("CHESS_IDLE_TIMEOUT", 120*time.Second),
			ShutdownTimeout: getEnvDuration("CHESS_SHUTDOWN_TIMEOUT", 10*time.Second),
			CORSEnabled:     getEnvBool("CHESS_CORS_ENABLED", true),
			AllowedOrigins:  getEnvStringSlice("CHESS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Logging: LoggingConfig{
			Level:      getEnvString("CHESS_LOG_LEVEL", "info"),
			Format:     getEnvString("CHESS_LOG_FORMAT", "json"),
			OutputPath: getEnvString("CHESS_LOG_OUTPUT_PATH", "stdout"),
			ErrorPath:  getEnvString("CHESS_LOG_ERROR_PATH", "stderr"),
		},
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d (must be between 0 and 65535)", c.Server.Port)
	}
	if c.Server.ReadTimeout <= 0 {
		return fmt.Errorf("invalid server read timeout: %v (must be positive)", c.Server.ReadTimeout)
	}
	if c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("invalid server write timeout: %v (must be positive)", c.Server.WriteTimeout)
	}
	return nil
}

// GetServerAddress returns the full server address.
func (c *Config) GetServerAddress() string {
	return c.Server.Host + ":" + strconv.Itoa(c.Server.Port)
}

// VariantFile is the on-disk shape of a variant-geometry overlay: board
// size and the castling home/target squares for both colors. A deployment
// that wants a non-standard board supplies this instead of touching Go
// code, mirroring how FrankyGo's config package overlays a TOML file onto
// its built-in defaults.
type VariantFile struct {
	Files int `toml:"files"`
	Ranks int `toml:"ranks"`

	Castling struct {
		White CastlingFile `toml:"white"`
		Black CastlingFile `toml:"black"`
	} `toml:"castling"`
}

// CastlingFile describes one color's castling geometry in a VariantFile.
type CastlingFile struct {
	KingHome      string `toml:"king_home"`
	KingShort     string `toml:"king_short"`
	KingLong      string `toml:"king_long"`
	RookShortHome string `toml:"rook_short_home"`
	RookShortDest string `toml:"rook_short_dest"`
	RookLongHome  string `toml:"rook_long_home"`
	RookLongDest  string `toml:"rook_long_dest"`
}

// LoadVariantFile decodes a TOML variant overlay from path. A missing or
// malformed file, or one that leaves files or ranks unset, is returned as
// an error; no default variant is substituted.
func LoadVariantFile(path string) (VariantFile, error) {
	var vf VariantFile
	if _, err := os.Stat(path); err != nil {
		return vf, fmt.Errorf("config: variant file %q: %w", path, err)
	}
	if _, err := toml.DecodeFile(path, &vf); err != nil {
		return vf, fmt.Errorf("config: decoding variant file %q: %w", path, err)
	}
	if vf.Files == 0 || vf.Ranks == 0 {
		return vf, fmt.Errorf("config: variant file %q: files/ranks must be set", path)
	}
	return vf, nil
}

// Variant builds a board.Variant from this overlay: a square.Size of the
// declared dimensions and a castling.Rule built from the per-color entries,
// wired to a fresh piece.Factory exactly as board.Standard() wires the
// built-in 8x8 rule.
func (vf VariantFile) Variant() board.Variant {
	sz := square.Size{Files: vf.Files, Ranks: vf.Ranks}
	rule := castling.New(map[color.Color]map[castling.Side]castling.Entry{
		color.W: vf.Castling.White.entries(),
		color.B: vf.Castling.Black.entries(),
	})
	return board.Variant{
		Size:    sz,
		Rule:    rule,
		Factory: piece.NewFactory(rule),
	}
}

func (cf CastlingFile) entries() map[castling.Side]castling.Entry {
	return map[castling.Side]castling.Entry{
		castling.Short: {
			King: castling.Squares{Current: cf.KingHome, Next: cf.KingShort},
			Rook: castling.Squares{Current: cf.RookShortHome, Next: cf.RookShortDest},
		},
		castling.Long: {
			King: castling.Squares{Current: cf.KingHome, Next: cf.KingLong},
			Rook: castling.Squares{Current: cf.RookLongHome, Next: cf.RookLongDest},
		},
	}
}

// Helper functions for environment variable parsing.

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvStringSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return []string{value}
	}
	return defaultValue
}
