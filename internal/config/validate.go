package config

import (
	"fmt"
	"regexp"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Corpus.validate(); err != nil {
		return fmt.Errorf("corpus: %w", err)
	}

	if c.Corpus.Source == SourcePostgres && c.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required when corpus.source is %q", SourcePostgres)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Server.MaxFrames <= 0 {
		return fmt.Errorf("server.max_frames must be > 0 (got %d)", c.Server.MaxFrames)
	}
	if c.Server.FramesPerMinute < 0 {
		return fmt.Errorf("server.frames_per_minute must be >= 0 (got %d)", c.Server.FramesPerMinute)
	}
	if c.CORS.MaxAge < 0 {
		return fmt.Errorf("cors.max_age must be >= 0 (got %d)", c.CORS.MaxAge)
	}

	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (c *CorpusConfig) validate() error {
	switch c.Source {
	case SourceFiles:
		if c.Root == "" {
			return fmt.Errorf("root is required for source %q", SourceFiles)
		}
	case SourcePostgres:
	default:
		return fmt.Errorf("source must be %q or %q (got %q)", SourceFiles, SourcePostgres, c.Source)
	}

	switch c.IndexMode {
	case IndexQuick, IndexFull:
	default:
		return fmt.Errorf("index_mode must be %q or %q (got %q)", IndexQuick, IndexFull, c.IndexMode)
	}

	if c.FilePattern != "" {
		if _, err := regexp.Compile(c.FilePattern); err != nil {
			return fmt.Errorf("file_pattern: %w", err)
		}
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("cache_size must be >= 0 (got %d)", c.CacheSize)
	}
	return nil
}
