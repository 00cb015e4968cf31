package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"pawsconnect-http-service/internal/domain/models"
)

// InterfaceRedisService defines the Redis service interface
type InterfaceRedisService interface {
	Set(key string, value interface{}, expiration time.Duration) error
	Get(key string, dest interface{}) error
	Delete(key string) error
	CacheReportByTicket(report *models.Report, expiration time.Duration) error
	GetReportByTicket(ticketID string) (*models.Report, error)
}

// RedisService handles Redis operations
type RedisService struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisService creates a new Redis service
func NewRedisService(client *redis.Client) InterfaceRedisService {
	return &RedisService{
		Client: client,
		Ctx:    context.Background(),
	}
}

// 1 Set sets a key-value pair in Redis with expiration
func (s *RedisService) Set(key string, value interface{}, expiration time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return s.Client.Set(s.Ctx, key, jsonValue, expiration).Err()
}

// 2 Get gets a value from Redis by key
func (s *RedisService) Get(key string, dest interface{}) error {
	val, err := s.Client.Get(s.Ctx, key).Result()
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(val), dest)
}

// 3 Delete deletes a key from Redis
func (s *RedisService) Delete(key string) error {
	return s.Client.Del(s.Ctx, key).Err()
}

// 4 CacheReportByTicket caches a report keyed by its ticket ID
func (s *RedisService) CacheReportByTicket(report *models.Report, expiration time.Duration) error {
	key := fmt.Sprintf("report:ticket:%s", report.TicketID)
	return s.Set(key, report, expiration)
}

// 5 GetReportByTicket gets a cached report by ticket ID
func (s *RedisService) GetReportByTicket(ticketID string) (*models.Report, error) {
	var report models.Report
	key := fmt.Sprintf("report:ticket:%s", ticketID)
	if err := s.Get(key, &report); err != nil {
		return nil, err
	}
	return &report, nil
}
