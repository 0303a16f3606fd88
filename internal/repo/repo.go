package repo

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
)

// Record is one generated report.
type Record struct {
	ID           int       `json:"id"`
	FileName     string    `json:"file_name"`
	ReportNumber string    `json:"report_number"`
	Client       string    `json:"client"`
	MaxDepth     float64   `json:"max_depth"`
	Layers       int       `json:"layers"`
	Samples      int       `json:"samples"`
	CreatedAt    time.Time `json:"created_at"`
}

type Repository interface {
	SaveReport(ctx context.Context, rec Record) (int, error)
	ListReports(ctx context.Context, limit int) ([]Record, error)
}

type PostgresReportRepository struct {
	db *sql.DB
}

func NewPostgresReportDB(db *sql.DB) *PostgresReportRepository {
	return &PostgresReportRepository{db: db}
}

const schema = `CREATE TABLE IF NOT EXISTS spt_reports (
	id            SERIAL PRIMARY KEY,
	file_name     TEXT NOT NULL,
	report_number TEXT NOT NULL DEFAULT '',
	client        TEXT NOT NULL DEFAULT '',
	max_depth     DOUBLE PRECISION NOT NULL,
	layers        INTEGER NOT NULL,
	samples       INTEGER NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Migrate creates the reports table if it does not exist.
func (r *PostgresReportRepository) Migrate(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, schema)
	return err
}

func (r *PostgresReportRepository) SaveReport(ctx context.Context, rec Record) (int, error) {
	var id int
	query := `INSERT INTO spt_reports (file_name, report_number, client, max_depth, layers, samples)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		rec.FileName, rec.ReportNumber, rec.Client, rec.MaxDepth, rec.Layers, rec.Samples,
	).Scan(&id)
	return id, err
}

func (r *PostgresReportRepository) ListReports(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT id, file_name, report_number, client, max_depth, layers, samples, created_at
		FROM spt_reports ORDER BY created_at DESC LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.FileName, &rec.ReportNumber, &rec.Client,
			&rec.MaxDepth, &rec.Layers, &rec.Samples, &rec.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// OpenPostgres opens and pings the database at connStr. sslmode=require is
// added when the string does not set a mode.
func OpenPostgres(connStr string) (*sql.DB, error) {
	if !strings.Contains(connStr, "sslmode=") {
		if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
			sep := "?"
			if strings.Contains(connStr, "?") {
				sep = "&"
			}
			connStr = connStr + sep + "sslmode=require"
		} else {
			connStr = connStr + " sslmode=require"
		}
	}
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("db config: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}
	return db, nil
}
