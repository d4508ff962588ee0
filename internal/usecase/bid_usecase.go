package usecase

import (
	"context"
	"net/http"
	"time"

	"go-bidtrack-backend/internal/domain"
	"go-bidtrack-backend/pkg/apperror"
	"go-bidtrack-backend/pkg/logger"
)

type bidUsecase struct {
	bidRepo   domain.BidRepository
	staleDays int
}

// NewBidUsecase creates the bid query/transition usecase. staleDays is the
// auto-reject age threshold, normally domain.AutoRejectAfterDays.
func NewBidUsecase(bidRepo domain.BidRepository, staleDays int) domain.BidUsecase {
	if staleDays <= 0 {
		staleDays = domain.AutoRejectAfterDays
	}
	return &bidUsecase{bidRepo: bidRepo, staleDays: staleDays}
}

func (uc *bidUsecase) GetBid(ctx context.Context, id string) (*domain.Bid, error) {
	bid, err := uc.bidRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Bid not found")
	}
	return bid, nil
}

func (uc *bidUsecase) ListBids(ctx context.Context, filter *domain.BidFilter) ([]domain.Bid, error) {
	bids, err := uc.bidRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return bids, nil
}

func (uc *bidUsecase) SubmitBid(ctx context.Context, id string) (*domain.Bid, error) {
	return uc.transition(ctx, id, func(b *domain.Bid) error { return b.MarkAsSubmitted() })
}

func (uc *bidUsecase) RejectBid(ctx context.Context, id, reason string) (*domain.Bid, error) {
	switch reason {
	case domain.RejectionUnsatisfiedResume, domain.RejectionRoleClosed, domain.RejectionAutoRejected:
	default:
		return nil, apperror.BadRequest("unknown rejection reason: " + reason)
	}
	return uc.transition(ctx, id, func(b *domain.Bid) error { return b.MarkAsRejected(reason) })
}

func (uc *bidUsecase) CloseBid(ctx context.Context, id string) (*domain.Bid, error) {
	return uc.transition(ctx, id, func(b *domain.Bid) error { return b.MarkAsClosed() })
}

func (uc *bidUsecase) RestoreBid(ctx context.Context, id string) (*domain.Bid, error) {
	return uc.transition(ctx, id, func(b *domain.Bid) error { return b.RestoreFromRejection() })
}

// AutoRejectStale rejects every NEW or SUBMITTED bid older than the
// threshold and returns how many were rejected. Used by the cron sweep and
// the admin endpoint.
func (uc *bidUsecase) AutoRejectStale(ctx context.Context) (int, error) {
	bids, err := uc.bidRepo.FindAll(ctx, nil)
	if err != nil {
		return 0, apperror.Internal(err)
	}

	now := time.Now()
	rejected := 0
	for i := range bids {
		bid := &bids[i]
		if !bid.ShouldAutoReject(now, uc.staleDays) {
			continue
		}
		if err := bid.MarkAsRejected(domain.RejectionAutoRejected); err != nil {
			continue
		}
		if err := uc.bidRepo.Update(ctx, bid); err != nil {
			return rejected, apperror.Internal(err)
		}
		logger.Log.Info("bid auto-rejected", "bid_id", bid.ID, "bid_date", bid.BidDate)
		rejected++
	}
	return rejected, nil
}

func (uc *bidUsecase) transition(ctx context.Context, id string, fn func(*domain.Bid) error) (*domain.Bid, error) {
	bid, err := uc.bidRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Bid not found")
	}
	if err := fn(bid); err != nil {
		return nil, apperror.New(http.StatusConflict, err.Error(), err)
	}
	if err := uc.bidRepo.Update(ctx, bid); err != nil {
		return nil, apperror.Internal(err)
	}
	return bid, nil
}
