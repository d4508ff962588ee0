package postgres

import (
	"context"
	"strings"
	"time"

	"go-bidtrack-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type companyHistoryRepo struct {
	db *pgxpool.Pool
}

// NewCompanyHistoryRepository creates a postgres-backed company failure
// history. Keys are normalized to lowercase on write so lookups stay
// case-insensitive regardless of the case used when recording.
func NewCompanyHistoryRepository(db *pgxpool.Pool) domain.CompanyHistory {
	return &companyHistoryRepo{db: db}
}

func (r *companyHistoryRepo) RecordFailure(ctx context.Context, company, role string, record domain.FailureRecord) error {
	query := `
		INSERT INTO company_failure_records (
			id, company_key, role_key, company, role,
			interview_id, recruiter, attendees, failed_at, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`

	_, err := r.db.Exec(ctx, query,
		uuid.NewString(),
		strings.ToLower(company), strings.ToLower(role),
		company, role,
		record.InterviewID, record.Recruiter, pq.Array(record.Attendees),
		record.Date, time.Now(),
	)
	return err
}

func (r *companyHistoryRepo) GetHistory(ctx context.Context, company, role string) (*domain.CompanyRoleHistory, error) {
	query := `
		SELECT company, role, interview_id, recruiter, attendees, failed_at
		FROM company_failure_records
		WHERE company_key = $1 AND role_key = $2
		ORDER BY failed_at ASC, created_at ASC`

	rows, err := r.db.Query(ctx, query, strings.ToLower(company), strings.ToLower(role))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history *domain.CompanyRoleHistory
	for rows.Next() {
		var storedCompany, storedRole string
		var record domain.FailureRecord
		var attendees []string
		if err := rows.Scan(&storedCompany, &storedRole,
			&record.InterviewID, &record.Recruiter, pq.Array(&attendees), &record.Date); err != nil {
			return nil, err
		}
		record.Attendees = attendees
		if history == nil {
			history = &domain.CompanyRoleHistory{Company: storedCompany, Role: storedRole}
		}
		history.Failures = append(history.Failures, record)
	}
	return history, rows.Err()
}

func (r *companyHistoryRepo) HasFailures(ctx context.Context, company, role string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM company_failure_records WHERE company_key = $1 AND role_key = $2)`,
		strings.ToLower(company), strings.ToLower(role),
	).Scan(&exists)
	return exists, err
}

func (r *companyHistoryRepo) GetWarningMessage(ctx context.Context, company, role string) (string, error) {
	history, err := r.GetHistory(ctx, company, role)
	if err != nil {
		return "", err
	}
	return history.WarningMessage(), nil
}
