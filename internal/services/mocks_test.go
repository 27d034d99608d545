package services

import (
	"context"
	"io"
	"time"

	"designmeta/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockProductMetaRepository struct {
	mock.Mock
}

func (m *MockProductMetaRepository) Get(ctx context.Context, productID int64, key string) (string, error) {
	args := m.Called(ctx, productID, key)
	return args.String(0), args.Error(1)
}

func (m *MockProductMetaRepository) Set(ctx context.Context, productID int64, key, value string) error {
	args := m.Called(ctx, productID, key, value)
	return args.Error(0)
}

func (m *MockProductMetaRepository) Delete(ctx context.Context, productID int64, key string) error {
	args := m.Called(ctx, productID, key)
	return args.Error(0)
}

type MockAttachmentRepository struct {
	mock.Mock
}

func (m *MockAttachmentRepository) Create(ctx context.Context, attachment *models.Attachment) error {
	args := m.Called(ctx, attachment)
	return args.Error(0)
}

func (m *MockAttachmentRepository) GetByID(ctx context.Context, id int64) (*models.Attachment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Attachment), args.Error(1)
}

func (m *MockAttachmentRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCapabilityRepository struct {
	mock.Mock
}

func (m *MockCapabilityRepository) UserHasCapability(ctx context.Context, userID uuid.UUID, capability string) (bool, error) {
	args := m.Called(ctx, userID, capability)
	return args.Bool(0), args.Error(1)
}

type MockMinioService struct {
	mock.Mock
}

func (m *MockMinioService) UploadObject(ctx context.Context, bucketName, objectName, contentType string, reader io.Reader, objectSize int64) error {
	args := m.Called(ctx, bucketName, objectName, contentType, reader, objectSize)
	return args.Error(0)
}

func (m *MockMinioService) PresignedURL(ctx context.Context, bucketName, objectName string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, bucketName, objectName, expiry)
	return args.String(0), args.Error(1)
}

func (m *MockMinioService) RemoveObject(ctx context.Context, bucketName, objectName string) error {
	args := m.Called(ctx, bucketName, objectName)
	return args.Error(0)
}

func (m *MockMinioService) EnsureBucketExists(ctx context.Context, bucketName string) error {
	args := m.Called(ctx, bucketName)
	return args.Error(0)
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
