// Package main provides the CLI entry point for servqual-go.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/aprofam/servqual-go/pkg/servqual"
	"github.com/aprofam/servqual-go/pkg/servqual/config"
	"github.com/aprofam/servqual-go/pkg/servqual/models"
	"github.com/aprofam/servqual-go/pkg/servqual/output"
	"github.com/aprofam/servqual-go/pkg/servqual/store"
	"github.com/aprofam/servqual-go/pkg/servqual/suggest"
)

var (
	outputPath  string
	format      string
	configPath  string
	demo        bool
	runSuggest  bool
	addBlank    bool
	filterSuc   string
	filterEst   string
	filterResp  string
	searchText  string
	verbose     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "servqual [input.xlsx]",
		Short: "Track SERVQUAL survey nonconformities",
		Long: `servqual-go normalizes survey-nonconformity workbooks into a canonical
record set, proposes corrective actions for active findings, and re-exports
the filtered working set as xlsx or JSON.`,
		Args: cobra.MaximumNArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout for json, SEGUIMIENTO_SERVQUAL.xlsx for xlsx)")
	rootCmd.Flags().StringVar(&format, "format", "json", "Export format: json, xlsx")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Optional YAML config with extra rules and catalog fallbacks")
	rootCmd.Flags().BoolVar(&demo, "demo", false, "Use the built-in sample working set instead of loading a workbook")
	rootCmd.Flags().BoolVar(&runSuggest, "suggest", false, "Fill corrective actions for active records without one")
	rootCmd.Flags().BoolVar(&addBlank, "add-blank", false, "Prepend a blank record seeded from the catalog heads")
	rootCmd.Flags().StringVar(&filterSuc, "sucursal", store.Wildcard, "Filter by branch")
	rootCmd.Flags().StringVar(&filterEst, "estado", store.Wildcard, "Filter by status")
	rootCmd.Flags().StringVar(&filterResp, "responsable", store.Wildcard, "Filter by responsible party")
	rootCmd.Flags().StringVar(&searchText, "buscar", "", "Free-text search over codes, questions, branch and responsible")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	rules, err := cfg.CompileRules()
	if err != nil {
		return err
	}

	records, catalogs, err := loadWorkingSet(args, cfg, rules, logger)
	if err != nil {
		return err
	}

	st := store.New()
	if err := st.Seed(records); err != nil {
		return fmt.Errorf("seeding working set: %w", err)
	}
	logger.Info("Working set seeded", zap.Int("records", st.Len()))

	if addBlank {
		blank := models.NewManualRecord(catalogs)
		if err := st.Add(blank); err != nil {
			return fmt.Errorf("adding blank record: %w", err)
		}
		logger.Debug("Blank record added", zap.String("id", blank.ID))
	}

	if runSuggest {
		engine := suggest.NewEngine(rules)
		enriched := engine.BulkSuggest(st.All())
		for _, r := range enriched {
			if err := st.Update(r.ID, r); err != nil {
				return fmt.Errorf("applying suggestion: %w", err)
			}
		}
		logger.Info("Suggestions applied", zap.Int("records", len(enriched)))
	}

	view := store.Filter(st.All(), store.Criteria{
		Branch:           filterSuc,
		Status:           filterEst,
		ResponsibleParty: filterResp,
		SearchText:       searchText,
	})
	logger.Info("Working set filtered",
		zap.Int("matched", len(view)),
		zap.Int("total", st.Len()))

	return export(view, logger)
}

func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

func loadWorkingSet(args []string, cfg *config.Config, rules []suggest.Rule, logger *zap.Logger) ([]models.CanonicalRecord, models.Catalogs, error) {
	if demo {
		records, catalogs := models.Sample()
		logger.Info("Sample working set loaded", zap.Int("records", len(records)))
		return records, catalogs, nil
	}

	if len(args) == 0 {
		return nil, models.Catalogs{}, fmt.Errorf("an input workbook is required unless --demo is set")
	}
	inputPath := args[0]
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return nil, models.Catalogs{}, fmt.Errorf("file not found: %s", inputPath)
	}

	opts := servqual.Options{
		Rules:                rules,
		FallbackResponsibles: cfg.Catalogs.Responsibles,
		FallbackStatuses:     cfg.Catalogs.Statuses,
		FallbackBranches:     cfg.Catalogs.Branches,
	}
	wb, err := servqual.Load(inputPath, opts)
	if err != nil {
		return nil, models.Catalogs{}, fmt.Errorf("loading workbook: %w", err)
	}
	logger.Info("Workbook loaded",
		zap.String("book", wb.BookName),
		zap.String("base_sheet", wb.Location.BaseSheet),
		zap.Int("records", len(wb.Records)),
		zap.Int("branches", len(wb.Catalogs.Branches)),
		zap.Int("statuses", len(wb.Catalogs.Statuses)),
		zap.Int("responsibles", len(wb.Catalogs.ResponsibleParties)))
	return wb.Records, wb.Catalogs, nil
}

func export(records []models.CanonicalRecord, logger *zap.Logger) error {
	switch format {
	case "json":
		doc, err := output.ToDocument(records)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		if outputPath == "" {
			fmt.Println(string(doc))
			return nil
		}
		if err := os.WriteFile(outputPath, doc, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		logger.Info("Document written", zap.String("path", outputPath))
		return nil
	case "xlsx":
		path := outputPath
		if path == "" {
			path = "SEGUIMIENTO_SERVQUAL.xlsx"
		}
		sheet := output.ToTabular(records)
		if err := output.WriteXLSX(sheet, path); err != nil {
			return fmt.Errorf("failed to write workbook: %w", err)
		}
		logger.Info("Workbook written", zap.String("path", path), zap.Int("rows", len(sheet.Rows)))
		return nil
	default:
		return fmt.Errorf("invalid format: %s (must be json or xlsx)", format)
	}
}
