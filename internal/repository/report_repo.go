package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"

	"psymetric/internal/domain"
)

// SimilarReport is one nearest-neighbor hit from the trait vector index.
type SimilarReport struct {
	ReportID string  `json:"report_id"`
	UserID   string  `json:"user_id"`
	TypeCode string  `json:"type_code,omitempty"`
	Distance float64 `json:"distance"`
}

// ReportRepository persists assembled personality reports. The report value
// itself is stored as an opaque JSON payload; a few columns are duplicated
// for querying, plus the 5-dim trait percentile vector for similarity.
type ReportRepository interface {
	Create(ctx context.Context, report domain.PersonalityReport, traitVector *pgvector.Vector) error
	GetByID(ctx context.Context, id string) (domain.PersonalityReport, error)
	ListByUser(ctx context.Context, userID string) ([]domain.PersonalityReport, error)
	FindSimilar(ctx context.Context, reportID string, k int) ([]SimilarReport, error)
}

type PgReportRepository struct {
	pool *pgxpool.Pool
}

func NewPgReportRepository(pool *pgxpool.Pool) *PgReportRepository {
	return &PgReportRepository{pool: pool}
}

func (r *PgReportRepository) Create(ctx context.Context, report domain.PersonalityReport, traitVector *pgvector.Vector) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report %s: %w", report.ID, err)
	}

	var typeCode, primaryStyle any
	if report.Type != nil {
		typeCode = report.Type.Code
	}
	if report.Style != nil {
		primaryStyle = report.Style.PrimaryStyle
	}
	var vec any
	if traitVector != nil {
		vec = *traitVector
	}

	const query = `
		INSERT INTO reports (id, user_id, bank_version, type_code, primary_style, payload, trait_vector, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = r.pool.Exec(ctx, query,
		report.ID,
		report.UserID,
		report.BankVersion,
		typeCode,
		primaryStyle,
		payload,
		vec,
		report.CreatedAt,
	)
	return err
}

func (r *PgReportRepository) GetByID(ctx context.Context, id string) (domain.PersonalityReport, error) {
	const query = `
		SELECT payload
		FROM reports
		WHERE id = $1
	`
	var payload []byte
	if err := r.pool.QueryRow(ctx, query, id).Scan(&payload); err != nil {
		return domain.PersonalityReport{}, err
	}

	var report domain.PersonalityReport
	if err := json.Unmarshal(payload, &report); err != nil {
		return domain.PersonalityReport{}, fmt.Errorf("unmarshal report %s: %w", id, err)
	}
	return report, nil
}

func (r *PgReportRepository) ListByUser(ctx context.Context, userID string) ([]domain.PersonalityReport, error) {
	const query = `
		SELECT payload
		FROM reports
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []domain.PersonalityReport
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var report domain.PersonalityReport
		if err := json.Unmarshal(payload, &report); err != nil {
			return nil, fmt.Errorf("unmarshal report for user %s: %w", userID, err)
		}
		reports = append(reports, report)
	}
	return reports, rows.Err()
}

// FindSimilar orders other trait-bearing reports by cosine distance from the
// given report's trait vector.
func (r *PgReportRepository) FindSimilar(ctx context.Context, reportID string, k int) ([]SimilarReport, error) {
	if k <= 0 {
		k = 5
	}
	const query = `
		SELECT r.id, r.user_id, COALESCE(r.type_code, ''), r.trait_vector <=> s.trait_vector
		FROM reports r,
			(SELECT trait_vector FROM reports WHERE id = $1) s
		WHERE r.id <> $1
		  AND r.trait_vector IS NOT NULL
		  AND s.trait_vector IS NOT NULL
		ORDER BY r.trait_vector <=> s.trait_vector
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, reportID, k)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hits []SimilarReport
	for rows.Next() {
		var hit SimilarReport
		if err := rows.Scan(&hit.ReportID, &hit.UserID, &hit.TypeCode, &hit.Distance); err != nil {
			return nil, err
		}
		hits = append(hits, hit)
	}
	return hits, rows.Err()
}
