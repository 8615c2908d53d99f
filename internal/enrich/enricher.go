// Package enrich runs the per-row enrichment stage: three sequential
// generative queries per game title (genre, short description, player
// mode), with fixed pacing between requests and soft per-field failures.
package enrich

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gamedex/internal/llm"
	"gamedex/internal/table"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrorValue is the sentinel recorded for a field whose generation failed.
// It counts as a value: row parity is preserved across failures.
const ErrorValue = "Error"

// Generated column names, in merge order.
const (
	ColumnGenre       = "genre"
	ColumnDescription = "short_description"
	ColumnPlayerMode  = "player_mode"
)

// GeneratedColumns lists the columns the stage appends to the table.
var GeneratedColumns = []string{ColumnGenre, ColumnDescription, ColumnPlayerMode}

// Result holds the three generated-field sequences, one value per input row.
type Result struct {
	Genres       []string
	Descriptions []string
	PlayerModes  []string
}

// Enricher drives the enrichment stage against an injected client.
type Enricher struct {
	client llm.Client
	logger *zap.Logger

	afterGenre       time.Duration
	afterDescription time.Duration
	afterPlayerMode  time.Duration

	progress io.Writer
}

// Option configures an Enricher.
type Option func(*Enricher)

// WithPacing overrides the fixed sleeps applied after each request.
func WithPacing(afterGenre, afterDescription, afterPlayerMode time.Duration) Option {
	return func(e *Enricher) {
		e.afterGenre = afterGenre
		e.afterDescription = afterDescription
		e.afterPlayerMode = afterPlayerMode
	}
}

// WithProgress redirects console progress output (default: stdout).
func WithProgress(w io.Writer) Option {
	return func(e *Enricher) {
		e.progress = w
	}
}

// New creates an Enricher. Every log entry of a run carries a correlation
// id so interleaved runs can be told apart in shared log sinks.
func New(client llm.Client, logger *zap.Logger, opts ...Option) *Enricher {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Enricher{
		client:           client,
		logger:           logger.With(zap.String("run_id", uuid.NewString())),
		afterGenre:       3 * time.Second,
		afterDescription: 3 * time.Second,
		afterPlayerMode:  6 * time.Second,
		progress:         os.Stdout,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run processes titles strictly in input order; within a row the three
// fields are generated strictly in sequence. A per-field failure records
// the Error sentinel and the run continues. Run returns early only when
// the context is cancelled, in which case the result sequences may be
// shorter than the input.
func (e *Enricher) Run(ctx context.Context, titles []string) (*Result, error) {
	total := len(titles)
	res := &Result{
		Genres:       make([]string, 0, total),
		Descriptions: make([]string, 0, total),
		PlayerModes:  make([]string, 0, total),
	}

	for i, title := range titles {
		fmt.Fprintf(e.progress, "\nProcessing (%d/%d): %s\n", i+1, total, title)

		genre := e.generate(ctx, ColumnGenre, title, genrePrompt(title))
		res.Genres = append(res.Genres, genre)
		fmt.Fprintf(e.progress, "  Genre: %s\n", genre)
		if err := e.pause(ctx, e.afterGenre); err != nil {
			return res, err
		}

		description := e.generate(ctx, ColumnDescription, title, descriptionPrompt(title))
		if description != ErrorValue {
			description = cleanDescription(description)
		}
		res.Descriptions = append(res.Descriptions, description)
		fmt.Fprintf(e.progress, "  Description: %s\n", description)
		if err := e.pause(ctx, e.afterDescription); err != nil {
			return res, err
		}

		mode := e.generate(ctx, ColumnPlayerMode, title, playerModePrompt(title))
		if mode != ErrorValue && !isKnownPlayerMode(mode) {
			e.logger.Warn("unexpected player mode response, storing as received",
				zap.String("title", title),
				zap.String("response", mode))
		}
		res.PlayerModes = append(res.PlayerModes, mode)
		fmt.Fprintf(e.progress, "  Player Mode: %s\n", mode)
		if err := e.pause(ctx, e.afterPlayerMode); err != nil {
			return res, err
		}
	}

	return res, nil
}

// EnrichTable runs the stage over the table's title column and merges the
// generated columns. The merge is all-or-nothing: on any sequence-length
// mismatch (an interrupted run) the table is left unmodified.
func (e *Enricher) EnrichTable(ctx context.Context, t *table.Table, titleColumn string) error {
	titles, err := t.Column(titleColumn)
	if err != nil {
		return err
	}

	res, runErr := e.Run(ctx, titles)

	columns := [][]string{res.Genres, res.Descriptions, res.PlayerModes}
	if err := t.AppendColumns(GeneratedColumns, columns); err != nil {
		if runErr != nil {
			return fmt.Errorf("merge aborted after interrupted run: %w", runErr)
		}
		return fmt.Errorf("merge aborted: %w", err)
	}
	return runErr
}

// generate issues one request and maps any failure to the Error sentinel.
// Safety feedback attached to a blocked request is logged best-effort.
func (e *Enricher) generate(ctx context.Context, field, title, prompt string) string {
	text, err := e.client.Complete(ctx, prompt)
	if err != nil {
		e.logger.Error("generation failed",
			zap.String("field", field),
			zap.String("title", title),
			zap.Error(err))

		var safety *llm.SafetyError
		if errors.As(err, &safety) {
			e.logger.Warn("safety feedback",
				zap.String("field", field),
				zap.String("title", title),
				zap.String("feedback", safety.Feedback()))
		}
		return ErrorValue
	}
	return strings.TrimSpace(text)
}

// pause applies a fixed pacing delay, honoring context cancellation.
func (e *Enricher) pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
