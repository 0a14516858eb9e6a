package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/hdmiprobe/internal/domain/entity"
	"github.com/bnema/hdmiprobe/internal/domain/repository"
	"github.com/bnema/hdmiprobe/internal/logging"
)

const reportColumns = `id, fingerprint, created_at, platform, os_version,
	display_count, test_count, overall_quality, report_json`

type reportRepo struct {
	db *sql.DB
}

// NewReportRepository creates a SQLite-backed report history repository.
// The full aggregate is stored as JSON next to denormalized summary columns
// so listings never have to decode it.
func NewReportRepository(db *sql.DB) repository.ReportRepository {
	return &reportRepo{db: db}
}

func (r *reportRepo) Save(ctx context.Context, report *entity.StoredReport) (int64, error) {
	log := logging.FromContext(ctx)

	payload, err := json.Marshal(report.Report)
	if err != nil {
		return 0, fmt.Errorf("encode report: %w", err)
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO reports
		 (fingerprint, created_at, platform, os_version, display_count, test_count, overall_quality, report_json)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		report.Fingerprint,
		report.CreatedAt.UTC(),
		report.Platform,
		report.OSVersion,
		report.DisplayCount,
		report.TestCount,
		string(report.OverallQuality),
		string(payload),
	)
	if err != nil {
		return 0, err
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if inserted == 0 {
		// Same fingerprint already stored: re-running an identical report
		// must not grow history.
		var existing int64
		if err := r.db.QueryRowContext(ctx,
			`SELECT id FROM reports WHERE fingerprint = ?`, report.Fingerprint,
		).Scan(&existing); err != nil {
			return 0, err
		}
		log.Debug().Int64("id", existing).Msg("duplicate report fingerprint, keeping existing row")
		return existing, nil
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	log.Debug().
		Int64("id", id).
		Str("quality", string(report.OverallQuality)).
		Msg("report saved to history")
	return id, nil
}

func (r *reportRepo) FindByID(ctx context.Context, id int64) (*entity.StoredReport, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+reportColumns+` FROM reports WHERE id = ?`, id)

	stored, err := scanStoredReport(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return stored, err
}

func (r *reportRepo) GetRecent(ctx context.Context, limit int) ([]*entity.StoredReport, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+reportColumns+` FROM reports ORDER BY created_at DESC, id DESC LIMIT ?`,
		limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var reports []*entity.StoredReport
	for rows.Next() {
		stored, err := scanStoredReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, stored)
	}
	return reports, rows.Err()
}

func (r *reportRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reports WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("report %d not found", id)
	}
	return nil
}

func (r *reportRepo) DeleteOlderThan(ctx context.Context, before time.Time) (int64, error) {
	log := logging.FromContext(ctx)

	res, err := r.db.ExecContext(ctx,
		`DELETE FROM reports WHERE created_at < ?`, before.UTC())
	if err != nil {
		return 0, err
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		log.Debug().Int64("deleted", deleted).Time("cutoff", before).Msg("pruned old reports")
	}
	return deleted, nil
}

func (r *reportRepo) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reports`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *reportRepo) GetStats(ctx context.Context) (*entity.HistoryStats, error) {
	var (
		total int64
		first sql.NullTime
		last  sql.NullTime
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), MIN(created_at), MAX(created_at) FROM reports`,
	).Scan(&total, &first, &last)
	if err != nil {
		return nil, err
	}

	stats := &entity.HistoryStats{TotalReports: total}
	if first.Valid {
		stats.FirstRun = first.Time.UTC()
	}
	if last.Valid {
		stats.LastRun = last.Time.UTC()
	}
	return stats, nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanStoredReport(row rowScanner) (*entity.StoredReport, error) {
	var (
		stored     entity.StoredReport
		quality    string
		reportJSON string
	)
	if err := row.Scan(
		&stored.ID,
		&stored.Fingerprint,
		&stored.CreatedAt,
		&stored.Platform,
		&stored.OSVersion,
		&stored.DisplayCount,
		&stored.TestCount,
		&quality,
		&reportJSON,
	); err != nil {
		return nil, err
	}

	stored.CreatedAt = stored.CreatedAt.UTC()
	stored.OverallQuality = entity.QualityTier(quality)
	if err := json.Unmarshal([]byte(reportJSON), &stored.Report); err != nil {
		return nil, fmt.Errorf("decode report %d: %w", stored.ID, err)
	}
	return &stored, nil
}
