package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/gestemps/internal/db"
	"github.com/alexanderramin/gestemps/internal/domain"
)

// SQLiteRunRepo implements RunRepo on top of a DBTX. Create issues several
// statements; callers wanting atomicity pass a transaction.
type SQLiteRunRepo struct {
	db db.DBTX
}

func NewSQLiteRunRepo(db db.DBTX) *SQLiteRunRepo {
	return &SQLiteRunRepo{db: db}
}

func (r *SQLiteRunRepo) Create(ctx context.Context, run *domain.Run) error {
	query := `INSERT INTO runs (id, computed_at, off_client_hours, client_work_hours, travel_hours, diagnostics_count)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		run.ID,
		formatTimestamp(run.ComputedAt),
		run.Result.OffClient,
		run.Result.ClientWork,
		run.Result.Travel,
		run.DiagnosticsCount,
	)
	if err != nil {
		return fmt.Errorf("inserting run: %w", err)
	}

	for _, d := range run.Days {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO run_days (run_id, day, hours) VALUES (?, ?, ?)`,
			run.ID, formatDay(d.Day), d.Hours,
		)
		if err != nil {
			return fmt.Errorf("inserting run day %s: %w", formatDay(d.Day), err)
		}
	}

	for i, e := range run.Result.OffClientDetails {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO run_entries (run_id, position, description, start_text, end_text, hours)
			VALUES (?, ?, ?, ?, ?, ?)`,
			run.ID, i, e.Description, e.Start, e.End, e.Hours,
		)
		if err != nil {
			return fmt.Errorf("inserting run entry %d: %w", i, err)
		}
	}

	return nil
}

func (r *SQLiteRunRepo) GetByID(ctx context.Context, id string) (*domain.Run, error) {
	query := `SELECT id, computed_at, off_client_hours, client_work_hours, travel_hours, diagnostics_count
		FROM runs WHERE id = ?`
	run, err := r.scanRun(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}

	if run.Days, err = r.listDays(ctx, id); err != nil {
		return nil, err
	}
	if run.Result.OffClientDetails, err = r.listEntries(ctx, id); err != nil {
		return nil, err
	}
	return run, nil
}

// List returns the most recent runs first, without days or entries. Runs
// with the same timestamp list in reverse insertion order. A non-positive
// limit returns every run.
func (r *SQLiteRunRepo) List(ctx context.Context, limit int) ([]*domain.Run, error) {
	if limit <= 0 {
		limit = -1
	}
	query := `SELECT id, computed_at, off_client_hours, client_work_hours, travel_hours, diagnostics_count
		FROM runs ORDER BY computed_at DESC, rowid DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []*domain.Run
	for rows.Next() {
		run, err := r.scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	return runs, nil
}

func (r *SQLiteRunRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting run: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("run %s: %w", id, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteRunRepo) scanRun(row rowScanner) (*domain.Run, error) {
	var run domain.Run
	var computedAtStr string

	err := row.Scan(
		&run.ID, &computedAtStr,
		&run.Result.OffClient, &run.Result.ClientWork, &run.Result.Travel,
		&run.DiagnosticsCount,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("run: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning run: %w", err)
	}

	run.ComputedAt, err = parseTimestamp(computedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing computed_at: %w", err)
	}
	return &run, nil
}

func (r *SQLiteRunRepo) listDays(ctx context.Context, runID string) ([]domain.DayTotal, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT day, hours FROM run_days WHERE run_id = ? ORDER BY day`, runID)
	if err != nil {
		return nil, fmt.Errorf("listing run days: %w", err)
	}
	defer rows.Close()

	var days []domain.DayTotal
	for rows.Next() {
		var dayStr string
		var d domain.DayTotal
		if err := rows.Scan(&dayStr, &d.Hours); err != nil {
			return nil, fmt.Errorf("scanning run day: %w", err)
		}
		if d.Day, err = parseDay(dayStr); err != nil {
			return nil, fmt.Errorf("parsing run day: %w", err)
		}
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating run days: %w", err)
	}
	return days, nil
}

func (r *SQLiteRunRepo) listEntries(ctx context.Context, runID string) ([]domain.OffClientEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT description, start_text, end_text, hours FROM run_entries WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("listing run entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.OffClientEntry
	for rows.Next() {
		var e domain.OffClientEntry
		if err := rows.Scan(&e.Description, &e.Start, &e.End, &e.Hours); err != nil {
			return nil, fmt.Errorf("scanning run entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating run entries: %w", err)
	}
	return entries, nil
}
