package postgres

import (
	"context"
	"errors"
	"time"

	"go-bidtrack-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// The schema carries a partial unique index to make the schedule-interview
// idempotency guard safe under concurrent requests:
//
//	CREATE UNIQUE INDEX interviews_one_scheduled_per_stage
//	ON interviews (bid_id, type) WHERE status = 'SCHEDULED';
type interviewRepo struct {
	db *pgxpool.Pool
}

// NewInterviewRepository creates a new interview repository
func NewInterviewRepository(db *pgxpool.Pool) domain.InterviewRepository {
	return &interviewRepo{db: db}
}

const interviewColumns = `
	id, base, company, client, role, job_description, resume, type, recruiter,
	attendees, detail, bid_id, date, status, next_scheduled, created_at, updated_at`

func (r *interviewRepo) Save(ctx context.Context, iv *domain.Interview) error {
	now := time.Now()
	iv.CreatedAt = now
	iv.UpdatedAt = now

	query := `
		INSERT INTO interviews (
			id, base, company, client, role, job_description, resume, type, recruiter,
			attendees, detail, bid_id, date, status, next_scheduled, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)`

	_, err := r.db.Exec(ctx, query,
		iv.ID, iv.Base, iv.Company, iv.Client, iv.Role, iv.JobDescription, iv.Resume,
		iv.Type, iv.Recruiter, pq.Array(iv.Attendees), iv.Detail, iv.BidID,
		iv.Date, iv.Status, iv.NextScheduled, iv.CreatedAt, iv.UpdatedAt,
	)
	return err
}

func (r *interviewRepo) FindByID(ctx context.Context, id string) (*domain.Interview, error) {
	query := `SELECT` + interviewColumns + ` FROM interviews WHERE id = $1`
	iv, err := scanInterview(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return iv, err
}

func (r *interviewRepo) FindAll(ctx context.Context) ([]domain.Interview, error) {
	query := `SELECT` + interviewColumns + ` FROM interviews ORDER BY date DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectInterviews(rows)
}

func (r *interviewRepo) FindByBidID(ctx context.Context, bidID string) ([]domain.Interview, error) {
	query := `SELECT` + interviewColumns + ` FROM interviews WHERE bid_id = $1 ORDER BY date ASC`
	rows, err := r.db.Query(ctx, query, bidID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectInterviews(rows)
}

func (r *interviewRepo) Update(ctx context.Context, iv *domain.Interview) error {
	iv.UpdatedAt = time.Now()
	query := `
		UPDATE interviews SET
			recruiter = $2, attendees = $3, detail = $4, date = $5,
			status = $6, next_scheduled = $7, updated_at = $8
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		iv.ID, iv.Recruiter, pq.Array(iv.Attendees), iv.Detail, iv.Date,
		iv.Status, iv.NextScheduled, iv.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *interviewRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM interviews WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanInterview(row pgx.Row) (*domain.Interview, error) {
	var iv domain.Interview
	var attendees []string
	err := row.Scan(
		&iv.ID, &iv.Base, &iv.Company, &iv.Client, &iv.Role, &iv.JobDescription,
		&iv.Resume, &iv.Type, &iv.Recruiter, pq.Array(&attendees), &iv.Detail,
		&iv.BidID, &iv.Date, &iv.Status, &iv.NextScheduled, &iv.CreatedAt, &iv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	iv.Attendees = attendees
	return &iv, nil
}

func collectInterviews(rows pgx.Rows) ([]domain.Interview, error) {
	var interviews []domain.Interview
	for rows.Next() {
		iv, err := scanInterview(rows)
		if err != nil {
			return nil, err
		}
		interviews = append(interviews, *iv)
	}
	return interviews, rows.Err()
}
