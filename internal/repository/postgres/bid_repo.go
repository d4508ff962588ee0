package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-bidtrack-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type bidRepo struct {
	db *pgxpool.Pool
}

// NewBidRepository creates a new bid repository
func NewBidRepository(db *pgxpool.Pool) domain.BidRepository {
	return &bidRepo{db: db}
}

const bidColumns = `
	id, bid_date, link, company, client, role, skills, layer_weights,
	job_description_path, resume_path, origin, recruiter, jd_specification_id,
	status, interview_winning, bid_detail, resume_checker, rejection_reason,
	original_bid_id, has_been_rebid, created_at, updated_at`

// Save inserts a new bid. Skill data and layer weights go into jsonb columns
// so both skill formats share one schema.
func (r *bidRepo) Save(ctx context.Context, bid *domain.Bid) error {
	skills, err := json.Marshal(bid.Skills)
	if err != nil {
		return fmt.Errorf("marshal skills: %w", err)
	}
	var layerWeights []byte
	if bid.LayerWeights != nil {
		layerWeights, err = json.Marshal(bid.LayerWeights)
		if err != nil {
			return fmt.Errorf("marshal layer weights: %w", err)
		}
	}

	now := time.Now()
	bid.CreatedAt = now
	bid.UpdatedAt = now

	query := `
		INSERT INTO bids (
			id, bid_date, link, company, client, role, skills, layer_weights,
			job_description_path, resume_path, origin, recruiter, jd_specification_id,
			status, interview_winning, bid_detail, resume_checker, rejection_reason,
			original_bid_id, has_been_rebid, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22)`

	_, err = r.db.Exec(ctx, query,
		bid.ID, bid.BidDate, bid.Link, bid.Company, bid.Client, bid.Role,
		skills, layerWeights,
		bid.JobDescriptionPath, bid.ResumePath, bid.Origin, bid.Recruiter, bid.JDSpecificationID,
		bid.Status, bid.InterviewWinning, bid.BidDetail, bid.ResumeChecker, bid.RejectionReason,
		bid.OriginalBidID, bid.HasBeenRebid, bid.CreatedAt, bid.UpdatedAt,
	)
	return err
}

func (r *bidRepo) FindByID(ctx context.Context, id string) (*domain.Bid, error) {
	query := `SELECT` + bidColumns + ` FROM bids WHERE id = $1`
	bid, err := scanBid(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return bid, err
}

func (r *bidRepo) FindAll(ctx context.Context, filter *domain.BidFilter) ([]domain.Bid, error) {
	query := `SELECT` + bidColumns + ` FROM bids WHERE 1=1`
	args := []interface{}{}
	if filter != nil {
		if filter.Status != "" {
			args = append(args, filter.Status)
			query += fmt.Sprintf(" AND status = $%d", len(args))
		}
		if filter.Company != "" {
			args = append(args, filter.Company)
			query += fmt.Sprintf(" AND LOWER(company) = LOWER($%d)", len(args))
		}
		if filter.Role != "" {
			args = append(args, filter.Role)
			query += fmt.Sprintf(" AND LOWER(role) = LOWER($%d)", len(args))
		}
	}
	query += " ORDER BY bid_date DESC, created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBids(rows)
}

func (r *bidRepo) FindByCompanyAndRole(ctx context.Context, company, role string) ([]domain.Bid, error) {
	return r.FindAll(ctx, &domain.BidFilter{Company: company, Role: role})
}

func (r *bidRepo) FindByLink(ctx context.Context, link string) (*domain.Bid, error) {
	query := `SELECT` + bidColumns + ` FROM bids WHERE link = $1 LIMIT 1`
	bid, err := scanBid(r.db.QueryRow(ctx, query, link))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return bid, err
}

func (r *bidRepo) Update(ctx context.Context, bid *domain.Bid) error {
	skills, err := json.Marshal(bid.Skills)
	if err != nil {
		return fmt.Errorf("marshal skills: %w", err)
	}
	var layerWeights []byte
	if bid.LayerWeights != nil {
		layerWeights, err = json.Marshal(bid.LayerWeights)
		if err != nil {
			return fmt.Errorf("marshal layer weights: %w", err)
		}
	}
	bid.UpdatedAt = time.Now()

	query := `
		UPDATE bids SET
			link = $2, company = $3, client = $4, role = $5, skills = $6,
			layer_weights = $7, job_description_path = $8, resume_path = $9,
			status = $10, interview_winning = $11, bid_detail = $12,
			resume_checker = $13, rejection_reason = $14, has_been_rebid = $15,
			updated_at = $16
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		bid.ID, bid.Link, bid.Company, bid.Client, bid.Role, skills,
		layerWeights, bid.JobDescriptionPath, bid.ResumePath,
		bid.Status, bid.InterviewWinning, bid.BidDetail,
		bid.ResumeChecker, bid.RejectionReason, bid.HasBeenRebid,
		bid.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *bidRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM bids WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanBid(row pgx.Row) (*domain.Bid, error) {
	var bid domain.Bid
	var skills []byte
	var layerWeights []byte
	err := row.Scan(
		&bid.ID, &bid.BidDate, &bid.Link, &bid.Company, &bid.Client, &bid.Role,
		&skills, &layerWeights,
		&bid.JobDescriptionPath, &bid.ResumePath, &bid.Origin, &bid.Recruiter, &bid.JDSpecificationID,
		&bid.Status, &bid.InterviewWinning, &bid.BidDetail, &bid.ResumeChecker, &bid.RejectionReason,
		&bid.OriginalBidID, &bid.HasBeenRebid, &bid.CreatedAt, &bid.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(skills, &bid.Skills); err != nil {
		return nil, fmt.Errorf("unmarshal skills: %w", err)
	}
	if len(layerWeights) > 0 {
		bid.LayerWeights = &domain.LayerWeights{}
		if err := json.Unmarshal(layerWeights, bid.LayerWeights); err != nil {
			return nil, fmt.Errorf("unmarshal layer weights: %w", err)
		}
	}
	return &bid, nil
}

func collectBids(rows pgx.Rows) ([]domain.Bid, error) {
	var bids []domain.Bid
	for rows.Next() {
		bid, err := scanBid(rows)
		if err != nil {
			return nil, err
		}
		bids = append(bids, *bid)
	}
	return bids, rows.Err()
}
