// Package linedb stores the results of segmentation runs in a sqlite
// catalog so batch jobs can be audited and re-sliced later without
// re-reading the trace containers.
package linedb

import (
	"database/sql"
	_ "embed"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/banshee-data/survey.lines/internal/monitoring"
	"github.com/banshee-data/survey.lines/internal/seg"
)

type LineDB struct {
	*sql.DB
}

// schema.sql contains the SQL statements for creating the catalog schema:
// segmentation runs and their per-line result rows.
//
//go:embed schema.sql
var schemaSQL string

// NewLineDB opens (or creates) the catalog database at path and applies
// the embedded schema.
func NewLineDB(path string) (*LineDB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply catalog schema: %w", err)
	}

	monitoring.Logf("linedb: initialized catalog schema at %s", path)
	return &LineDB{db}, nil
}

// Run describes one segmentation run over a single input file.
type Run struct {
	ID          string // uuid; generated by RecordRun when empty
	SourceFile  string
	CoordSource string
	TraceCount  int
	Params      seg.Params
}

// LineRecord is one output line of a run. OutputFile may be empty when the
// run did not write containers (dry runs).
type LineRecord struct {
	Index      int
	First      int
	Last       int
	LengthM    float64
	OutputFile string
}

// RecordRun inserts the run and its lines in a single transaction and
// returns the run ID.
func (db *LineDB) RecordRun(run Run, lines []seg.Line, outputs []string) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if outputs != nil && len(outputs) != len(lines) {
		return "", fmt.Errorf("got %d output paths for %d lines", len(outputs), len(lines))
	}

	tx, err := db.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO segmentation_runs (
			id, source_file, coord_source, trace_count, line_count,
			critical_radius_m, min_turn_distance_m, max_gap_m,
			min_line_length_m, stride
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.SourceFile, run.CoordSource, run.TraceCount, len(lines),
		run.Params.CriticalRadius, run.Params.MinTurnDistance, run.Params.MaxGap,
		run.Params.MinLineLength, run.Params.Stride,
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert run: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO survey_lines (
			run_id, line_index, first_trace, last_trace, trace_count, length_m, output_file
		) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("failed to prepare line insert: %w", err)
	}
	defer stmt.Close()

	for i, l := range lines {
		var out any
		if outputs != nil && outputs[i] != "" {
			out = outputs[i]
		}
		if _, err := stmt.Exec(run.ID, i, l.First, l.Last, l.TraceCount(), l.Length, out); err != nil {
			return "", fmt.Errorf("failed to insert line %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit run: %w", err)
	}
	return run.ID, nil
}

// LinesForRun returns the recorded lines of a run in line order.
func (db *LineDB) LinesForRun(runID string) ([]LineRecord, error) {
	rows, err := db.Query(`
		SELECT line_index, first_trace, last_trace, length_m, COALESCE(output_file, '')
		FROM survey_lines WHERE run_id = ? ORDER BY line_index`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines: %w", err)
	}
	defer rows.Close()

	var out []LineRecord
	for rows.Next() {
		var r LineRecord
		if err := rows.Scan(&r.Index, &r.First, &r.Last, &r.LengthM, &r.OutputFile); err != nil {
			return nil, fmt.Errorf("failed to scan line: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// ListRuns returns the IDs and source files of all recorded runs, newest
// first.
func (db *LineDB) ListRuns() ([]Run, error) {
	rows, err := db.Query(`
		SELECT id, source_file, coord_source, trace_count,
			critical_radius_m, min_turn_distance_m, max_gap_m, min_line_length_m, stride
		FROM segmentation_runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.SourceFile, &r.CoordSource, &r.TraceCount,
			&r.Params.CriticalRadius, &r.Params.MinTurnDistance, &r.Params.MaxGap,
			&r.Params.MinLineLength, &r.Params.Stride); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
