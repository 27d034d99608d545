package handlers

import (
	"context"
	"io"
	"time"

	"designmeta/internal/models"
	"designmeta/internal/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockResolverService struct {
	mock.Mock
}

func (m *MockResolverService) Record(ctx context.Context, productID int64) *models.DesignImageRecord {
	args := m.Called(ctx, productID)
	return args.Get(0).(*models.DesignImageRecord)
}

func (m *MockResolverService) Resolve(ctx context.Context, productID int64) *models.Resolution {
	args := m.Called(ctx, productID)
	return args.Get(0).(*models.Resolution)
}

type MockDesignImageService struct {
	mock.Mock
}

func (m *MockDesignImageService) Save(ctx context.Context, productID int64, submittedID, submittedURL *string) error {
	args := m.Called(ctx, productID, submittedID, submittedURL)
	return args.Error(0)
}

func (m *MockDesignImageService) DownloadOriginal(ctx context.Context, productID int64) (*services.DownloadDescriptor, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.DownloadDescriptor), args.Error(1)
}

type MockCapabilityService struct {
	mock.Mock
}

func (m *MockCapabilityService) UserCan(ctx context.Context, userID uuid.UUID, capability string) (bool, error) {
	args := m.Called(ctx, userID, capability)
	return args.Bool(0), args.Error(1)
}

type MockAttachmentService struct {
	mock.Mock
}

func (m *MockAttachmentService) Upload(ctx context.Context, filename, contentType string, reader io.Reader, size int64) (*models.Attachment, string, error) {
	args := m.Called(ctx, filename, contentType, reader, size)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.Attachment), args.String(1), args.Error(2)
}

func (m *MockAttachmentService) Get(ctx context.Context, id int64) (*models.Attachment, string, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.Attachment), args.String(1), args.Error(2)
}

type MockCacheService struct {
	mock.Mock
}

func (m *MockCacheService) GetDesignImage(ctx context.Context, productID int64) (*models.DesignImageRecord, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DesignImageRecord), args.Error(1)
}

func (m *MockCacheService) SetDesignImage(ctx context.Context, record *models.DesignImageRecord, ttl time.Duration) error {
	args := m.Called(ctx, record, ttl)
	return args.Error(0)
}

func (m *MockCacheService) DeleteDesignImage(ctx context.Context, productID int64) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

func (m *MockCacheService) IssueNonce(ctx context.Context, userID uuid.UUID, ttl time.Duration) (string, error) {
	args := m.Called(ctx, userID, ttl)
	return args.String(0), args.Error(1)
}

func (m *MockCacheService) VerifyNonce(ctx context.Context, userID uuid.UUID, nonce string) (bool, error) {
	args := m.Called(ctx, userID, nonce)
	return args.Bool(0), args.Error(1)
}

func (m *MockCacheService) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
