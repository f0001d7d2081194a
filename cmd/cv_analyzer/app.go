package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/cv-analyzer/internal/config"
	"github.com/jonathan/cv-analyzer/internal/logger"
	"github.com/jonathan/cv-analyzer/internal/pipeline"
	"github.com/jonathan/cv-analyzer/internal/reference"
	internalschemas "github.com/jonathan/cv-analyzer/internal/schemas"
	"github.com/jonathan/cv-analyzer/internal/store"
	"github.com/jonathan/cv-analyzer/internal/types"
	"github.com/jonathan/cv-analyzer/schemas"
)

// distributionLimit caps how many stored scores feed the percentile distribution
const distributionLimit = 10000

// app holds everything a command needs, built once from configuration
type app struct {
	cfg       *config.Config
	logger    *zap.Logger
	reference *reference.Store
	analyzer  *pipeline.Analyzer
	store     store.Store
	closers   []func()
}

// loadSettings loads the config file and applies persistent flag overrides
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(rootConfigPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("verbose") {
		cfg.Logging.Debug = rootVerbose
	}
	if flags.Changed("json-logs") {
		cfg.Logging.JSON = rootJSONLogs
	}
	if flags.Changed("database-url") {
		cfg.DatabaseURL = rootDatabaseURL
	}
	if flags.Lookup("workers") != nil && flags.Changed("workers") {
		cfg.Pipeline.Workers = batchWorkers
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newApp wires logger, reference data, analyzer and, when withStore is set and a
// database URL is configured, the Postgres store.
func newApp(ctx context.Context, cmd *cobra.Command, withStore bool) (*app, error) {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Logging.JSON, cfg.Logging.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	a := &app{cfg: cfg, logger: log}
	a.closers = append(a.closers, func() { _ = log.Sync() })

	snap, err := reference.LoadSnapshot(cfg.Reference.DistributionPath, cfg.Reference.InstitutionsPath)
	if err != nil {
		a.close()
		return nil, err
	}
	a.reference = reference.NewStore(snap)

	if withStore && cfg.DatabaseURL != "" {
		pg, err := store.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Warn("continuing without database persistence", zap.Error(err))
		} else {
			a.closers = append(a.closers, pg.Close)
			a.store = pg
			n, err := store.RefreshDistribution(ctx, pg, a.reference, distributionLimit)
			if err != nil {
				log.Warn("score distribution not refreshed", zap.Error(err))
			} else {
				log.Debug("score distribution refreshed", zap.Int("scores", n))
			}
		}
	}

	opts := cfg.AnalyzerOptions()
	opts.Reference = a.reference
	opts.Logger = log
	if rootVerbose {
		progress := cmd.ErrOrStderr()
		var mu sync.Mutex
		opts.OnProgress = func(event pipeline.ProgressEvent) {
			mu.Lock()
			defer mu.Unlock()
			_, _ = fmt.Fprintf(progress, "[%s] %s: %s\n", event.Stage, event.Filename, event.Message)
		}
	}
	a.analyzer, err = pipeline.NewAnalyzer(opts)
	if err != nil {
		a.close()
		return nil, &config.ConfigurationError{Message: "failed to build analyzer", Cause: err}
	}
	return a, nil
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// readRequirements loads job requirements from a JSON file validated against the
// job requirements schema. An empty path means no requirements.
func readRequirements(path string) (*types.JobRequirements, error) {
	if path == "" {
		return nil, nil
	}
	var req types.JobRequirements
	if err := readValidatedJSON(path, schemas.JobRequirements, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// readProfile loads a CV profile, either bare or wrapped in an analysis result
func readProfile(path string) (*types.CVProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}
	var wrapped struct {
		Profile *types.CVProfile `json:"profile"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Profile != nil {
		return wrapped.Profile, nil
	}
	var profile types.CVProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile JSON: %w", err)
	}
	return &profile, nil
}

func readValidatedJSON(path, schemaName string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := internalschemas.Validate(schemaName, data); err != nil {
		return fmt.Errorf("invalid %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", path, err)
	}
	return nil
}

// writeJSON writes v as indented JSON to path, or to out when path is empty
func writeJSON(out io.Writer, path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	if path == "" {
		_, err = fmt.Fprintln(out, string(data))
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
