package usecase_test

import (
	"context"

	"go-bidtrack-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Mock Repositories

type MockBidRepo struct {
	mock.Mock
}

func (m *MockBidRepo) Save(ctx context.Context, bid *domain.Bid) error {
	return m.Called(ctx, bid).Error(0)
}

func (m *MockBidRepo) FindByID(ctx context.Context, id string) (*domain.Bid, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bid), args.Error(1)
}

func (m *MockBidRepo) FindAll(ctx context.Context, filter *domain.BidFilter) ([]domain.Bid, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bid), args.Error(1)
}

func (m *MockBidRepo) FindByCompanyAndRole(ctx context.Context, company, role string) ([]domain.Bid, error) {
	args := m.Called(ctx, company, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bid), args.Error(1)
}

func (m *MockBidRepo) FindByLink(ctx context.Context, link string) (*domain.Bid, error) {
	args := m.Called(ctx, link)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bid), args.Error(1)
}

func (m *MockBidRepo) Update(ctx context.Context, bid *domain.Bid) error {
	return m.Called(ctx, bid).Error(0)
}

func (m *MockBidRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockInterviewRepo struct {
	mock.Mock
}

func (m *MockInterviewRepo) Save(ctx context.Context, interview *domain.Interview) error {
	return m.Called(ctx, interview).Error(0)
}

func (m *MockInterviewRepo) FindByID(ctx context.Context, id string) (*domain.Interview, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Interview), args.Error(1)
}

func (m *MockInterviewRepo) FindAll(ctx context.Context) ([]domain.Interview, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Interview), args.Error(1)
}

func (m *MockInterviewRepo) FindByBidID(ctx context.Context, bidID string) ([]domain.Interview, error) {
	args := m.Called(ctx, bidID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Interview), args.Error(1)
}

func (m *MockInterviewRepo) Update(ctx context.Context, interview *domain.Interview) error {
	return m.Called(ctx, interview).Error(0)
}

func (m *MockInterviewRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockResumeRepo struct {
	mock.Mock
}

func (m *MockResumeRepo) GetAllResumeMetadata(ctx context.Context) ([]domain.ResumeMetadata, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ResumeMetadata), args.Error(1)
}

func (m *MockResumeRepo) FileExists(path string) bool {
	return m.Called(path).Bool(0)
}
