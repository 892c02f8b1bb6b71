package common

import (
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	Pipeline PipelineConfig
	Patterns PatternsConfig
	Log      LogConfig
}

// PipelineConfig tunes the processing pipeline
type PipelineConfig struct {
	MinClassifyConfidence float64
	SecondaryThreshold    float64
	MaxEntities           int
	NormalizeInput        bool
}

// PatternsConfig points at optional external pattern and schema files
type PatternsConfig struct {
	PatternTablePath string
	SchemaDir        string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Pipeline: PipelineConfig{
			MinClassifyConfidence: getEnvAsFloat64("CLASSIFY_MIN_CONFIDENCE", 0.15),
			SecondaryThreshold:    getEnvAsFloat64("LANG_SECONDARY_THRESHOLD", 0.10),
			MaxEntities:           getEnvAsInt("MAX_ENTITIES", 20),
			NormalizeInput:        getEnvAsBool("NORMALIZE_INPUT", true),
		},
		Patterns: PatternsConfig{
			PatternTablePath: getEnv("PATTERN_TABLE_PATH", ""),
			SchemaDir:        getEnv("SCHEMA_DIR", ""),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Pipeline.MinClassifyConfidence < 0 || c.Pipeline.MinClassifyConfidence > 1 {
		return NewAppError("CONFIG_ERROR", "CLASSIFY_MIN_CONFIDENCE must be in [0,1]", ErrInvalidInput)
	}
	if c.Pipeline.SecondaryThreshold < 0 || c.Pipeline.SecondaryThreshold > 1 {
		return NewAppError("CONFIG_ERROR", "LANG_SECONDARY_THRESHOLD must be in [0,1]", ErrInvalidInput)
	}
	if c.Pipeline.MaxEntities <= 0 {
		return NewAppError("CONFIG_ERROR", "MAX_ENTITIES must be positive", ErrInvalidInput)
	}
	return nil
}
