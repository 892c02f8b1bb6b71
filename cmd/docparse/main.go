package main

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/azzindani/06-Nanonets-OCRs/internal/common"
	"github.com/azzindani/06-Nanonets-OCRs/internal/export"
	"github.com/azzindani/06-Nanonets-OCRs/internal/fields"
	"github.com/azzindani/06-Nanonets-OCRs/internal/structured"
)

func logLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func main() {
	cfg := common.LoadConfig()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.Log.Level),
	}))
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	if len(os.Args) < 2 || len(os.Args) > 3 {
		logger.Error("usage", "cmd", "docparse <ocr-text-file> [export-dir]")
		os.Exit(2)
	}

	raw, err := os.ReadFile(os.Args[1])
	if err != nil {
		logger.Error("read input", "path", os.Args[1], "error", err)
		os.Exit(1)
	}

	patterns := fields.DefaultPatternTable()
	if path := cfg.Patterns.PatternTablePath; path != "" {
		patterns, err = fields.LoadPatternTable(path)
		if err != nil {
			logger.Error("load pattern table", "path", path, "error", err)
			os.Exit(1)
		}
	}

	processor := structured.NewProcessor(structured.Config{
		NormalizeInput:        cfg.Pipeline.NormalizeInput,
		MaxEntities:           cfg.Pipeline.MaxEntities,
		MinClassifyConfidence: cfg.Pipeline.MinClassifyConfidence,
		SecondaryThreshold:    cfg.Pipeline.SecondaryThreshold,
	}, patterns, logger)

	start := time.Now()
	out := processor.Process(string(raw), nil)

	result := struct {
		Document     structured.StructuredOutput `json:"document"`
		SchemaFields map[string]any              `json:"schema_fields,omitempty"`
		Validation   *fields.ValidationReport    `json:"validation,omitempty"`
	}{Document: out}

	if schema, ok := resolveSchema(out.DocumentType, cfg.Patterns.SchemaDir, logger); ok {
		extracted := fields.NewSchemaExtractor(logger).Extract(out.Raw.Text, schema)
		report := fields.BuildReport(extracted, schema, logger)
		result.SchemaFields = fields.Values(extracted)
		result.Validation = &report
	}

	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		logger.Error("encode output", "error", err)
		os.Exit(1)
	}
	if _, err := os.Stdout.Write(append(encoded, '\n')); err != nil {
		logger.Error("write output", "error", err)
		os.Exit(1)
	}

	if len(os.Args) == 3 {
		if err := writeExports(os.Args[2], out, logger); err != nil {
			logger.Error("write exports", "error", err)
			os.Exit(1)
		}
	}

	logger.Info("document processed",
		"run_id", out.Raw.RunID,
		"document_type", out.DocumentType,
		"language", out.Language,
		"line_items", len(out.LineItems),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}

// resolveSchema picks the extraction schema for a document type: a
// user-supplied <type>.yaml in the schema directory wins over the predefined
// schema; types without either get no schema pass.
func resolveSchema(docType, schemaDir string, logger *slog.Logger) (fields.Schema, bool) {
	if schemaDir != "" {
		path := filepath.Join(schemaDir, docType+".yaml")
		if _, err := os.Stat(path); err == nil {
			schema, err := fields.LoadSchema(path)
			if err != nil {
				logger.Warn("ignoring unreadable schema file", "path", path, "error", err)
			} else {
				return schema, true
			}
		}
	}
	return fields.SchemaByName(docType)
}

func writeExports(dir string, out structured.StructuredOutput, logger *slog.Logger) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	svc := export.NewService(logger)

	csvData, err := svc.LineItemsCSV(out)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, "line_items.csv"), csvData, 0o644); err != nil {
		return err
	}

	xlsxData, err := svc.LineItemsXLSX(out)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "document.xlsx"), xlsxData, 0o644)
}
