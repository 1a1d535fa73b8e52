// Package analysis runs the exploratory pass over a dataset: load, describe,
// plot and ask the model assistant where to start.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/davidbz/glass/internal/dataset"
	"github.com/davidbz/glass/internal/domain"
	"github.com/davidbz/glass/internal/observability"
	"github.com/davidbz/glass/internal/plot"
	"github.com/davidbz/glass/internal/report"
)

const headRows = 5

// ErrDataNotFound is returned when the configured data file does not exist.
var ErrDataNotFound = errors.New("data file not found")

//nolint:gochecknoglobals // Read-only replacer
var fileNameReplacer = strings.NewReplacer("/", "_", "\\", "_", " ", "_")

// Runner runs one analysis pass.
type Runner struct {
	config    *Config
	workspace *Workspace
	assistant *domain.AssistantService
	printer   *report.Printer
}

// NewRunner creates a new runner (DI constructor). assistant may be nil,
// which skips the AI step.
func NewRunner(cfg *Config, assistant *domain.AssistantService, printer *report.Printer) *Runner {
	return &Runner{
		config:    cfg,
		workspace: NewWorkspace(cfg.Root),
		assistant: assistant,
		printer:   printer,
	}
}

// Run prepares the workspace, loads the dataset and reports on it. Figure and
// AI failures are reported as warnings; only a missing or unreadable data
// file fails the run.
func (r *Runner) Run(ctx context.Context) (*dataset.Frame, error) {
	logger := observability.FromContext(ctx)

	if err := r.workspace.Prepare(); err != nil {
		return nil, fmt.Errorf("failed to prepare workspace: %w", err)
	}
	r.printer.Success("Project directories created")

	r.printer.Title("Glass Data Science Project")

	dataPath := r.workspace.Path(r.config.DataPath)
	if _, err := os.Stat(dataPath); err != nil {
		r.printer.Failure("Data file not found: %s", dataPath)
		r.printer.Info("Please make sure your data file is in the %s/ directory", filepath.Dir(dataPath))
		return nil, fmt.Errorf("%w: %s", ErrDataNotFound, dataPath)
	}

	r.printer.Info("Loading data from %s...", dataPath)
	frame, err := dataset.Load(dataPath)
	if err != nil {
		r.printer.Failure("Error loading data: %v", err)
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	r.printer.Success("Data loaded successfully!")

	rows, cols := frame.Shape()
	logger.Info("dataset loaded",
		observability.String("path", dataPath),
		observability.Int("rows", rows),
		observability.Int("columns", cols),
		observability.Float64("memory_mb", float64(frame.MemoryUsage())/(1024*1024)))

	r.printer.DatasetInfo(frame)
	r.printer.Head(frame, headRows)
	r.printer.Describe(frame.Describe())
	r.printer.Missing(frame)
	r.printer.DTypes(frame)

	if r.config.PlotsEnabled {
		if figErr := r.figures(frame); figErr != nil {
			logger.Warn("figure rendering failed", observability.Error(figErr))
			r.printer.Warn("Could not create visualizations: %v", figErr)
		}
	}

	if r.config.AIEnabled && r.assistant != nil {
		r.suggest(ctx, frame)
	}

	r.printer.NextSteps(r.workspace.FiguresDir(), r.workspace.NotebooksDir())

	return frame, nil
}

// figures renders the first numeric column's histogram and, with more than
// one numeric column, the correlation heatmap.
func (r *Runner) figures(frame *dataset.Frame) error {
	numeric := frame.NumericColumns()
	if len(numeric) == 0 {
		return nil
	}

	r.printer.Info("\nCreating basic visualizations...")

	dir := r.workspace.FiguresDir()
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("failed to create figures directory: %w", err)
	}

	first, _ := frame.Column(numeric[0])
	histPath := filepath.Join(dir, fileNameReplacer.Replace(first.Name)+"_distribution.png")
	if err := plot.Histogram(first.Values, first.Name, histPath); err != nil {
		return fmt.Errorf("histogram of %s: %w", first.Name, err)
	}
	r.printer.Success("Saved plot: %s", histPath)

	if len(numeric) < 2 {
		return nil
	}

	corrPath := filepath.Join(dir, "correlation_matrix.png")
	if err := plot.CorrelationHeatmap(frame.Correlation(), corrPath); err != nil {
		return fmt.Errorf("correlation heatmap: %w", err)
	}
	r.printer.Success("Saved correlation plot: %s", corrPath)

	return nil
}

func (r *Runner) suggest(ctx context.Context, frame *dataset.Frame) {
	logger := observability.FromContext(ctx)

	r.printer.Info("\nTesting AI integration...")

	readiness := r.assistant.Setup(ctx, r.config.Model)
	logger.Info("model setup finished", observability.String("readiness", readiness.String()))
	if !readiness.Ready() {
		r.printer.Warn("AI service not available")
		return
	}

	answer, err := r.assistant.SuggestFirstSteps(ctx, frame.Summary(r.config.DatasetName), r.config.Model)
	if err != nil {
		logger.Warn("suggestion request failed", observability.Error(err))
	}
	if err != nil || strings.TrimSpace(answer) == "" {
		r.printer.Warn("AI service not available")
		return
	}

	r.printer.Suggestion(answer)
}
