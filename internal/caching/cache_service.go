package caching

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"designmeta/internal/models"

	"github.com/google/uuid"
	"github.com/labstack/gommon/random"
	"github.com/redis/go-redis/v9"
)

type CacheService interface {
	// Design image record caching
	GetDesignImage(ctx context.Context, productID int64) (*models.DesignImageRecord, error)
	SetDesignImage(ctx context.Context, record *models.DesignImageRecord, ttl time.Duration) error
	DeleteDesignImage(ctx context.Context, productID int64) error

	// Nonce (anti-forgery token) management
	IssueNonce(ctx context.Context, userID uuid.UUID, ttl time.Duration) (string, error)
	VerifyNonce(ctx context.Context, userID uuid.UUID, nonce string) (bool, error)

	Ping(ctx context.Context) error
}

type redisCacheService struct {
	client *redis.Client
}

func NewRedisCacheService(addr, password string, db int) CacheService {
	// Accept redis://host:port style addresses as well as bare host:port
	parsedAddr := addr
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		if hostPort := strings.TrimPrefix(strings.TrimPrefix(addr, "redis://"), "rediss://"); hostPort != addr {
			parsedAddr = hostPort
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     parsedAddr,
		Password: password,
		DB:       db,
	})

	if pingErr := client.Ping(context.Background()).Err(); pingErr != nil {
		log.Printf("WARN: Redis ping failed on initialization: %v (address: %s)", pingErr, parsedAddr)
	}

	return &redisCacheService{client: client}
}

func designImageKey(productID int64) string {
	return fmt.Sprintf("designmeta:design:%d", productID)
}

func nonceKey(userID uuid.UUID, nonce string) string {
	return fmt.Sprintf("designmeta:nonce:%s:%s", userID.String(), nonce)
}

func (r *redisCacheService) GetDesignImage(ctx context.Context, productID int64) (*models.DesignImageRecord, error) {
	data, err := r.client.Get(ctx, designImageKey(productID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, err
	}

	var record models.DesignImageRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *redisCacheService) SetDesignImage(ctx context.Context, record *models.DesignImageRecord, ttl time.Duration) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, designImageKey(record.ProductID), data, ttl).Err()
}

func (r *redisCacheService) DeleteDesignImage(ctx context.Context, productID int64) error {
	return r.client.Del(ctx, designImageKey(productID)).Err()
}

func (r *redisCacheService) IssueNonce(ctx context.Context, userID uuid.UUID, ttl time.Duration) (string, error) {
	nonce := random.String(32, random.Alphanumeric)
	if err := r.client.Set(ctx, nonceKey(userID, nonce), "1", ttl).Err(); err != nil {
		return "", err
	}
	return nonce, nil
}

func (r *redisCacheService) VerifyNonce(ctx context.Context, userID uuid.UUID, nonce string) (bool, error) {
	if nonce == "" {
		return false, nil
	}
	_, err := r.client.Get(ctx, nonceKey(userID, nonce)).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *redisCacheService) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
