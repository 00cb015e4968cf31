package services

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"pawsconnect-http-service/internal/infrastructure/config"
)

// InterfaceRateLimitService 定义报告提交限流服务接口
// 每个键同时受短窗口和长窗口约束，两个窗口的计数相互独立
type InterfaceRateLimitService interface {
	AllowReport(key string) (bool, error)
}

// WindowPolicy 滑动窗口策略
type WindowPolicy struct {
	Window time.Duration // 窗口时长
	Limit  int           // 窗口内允许的事件数
	Prefix string        // 计数键前缀
}

// RateLimitService 基于Redis有序集合实现跨实例一致的滑动窗口计数
// Redis不可用时退化为进程内计数（仅适用于单实例部署）
type RateLimitService struct {
	Client *redis.Client
	Ctx    context.Context
	Short  WindowPolicy
	Long   WindowPolicy

	memory *memoryWindows
}

// NewRateLimitService 创建限流服务，redisClient为nil时使用进程内回退
func NewRateLimitService(cfg *config.Config, redisClient *redis.Client) InterfaceRateLimitService {
	s := &RateLimitService{
		Client: redisClient,
		Ctx:    context.Background(),
		Short: WindowPolicy{
			Window: cfg.ReportShortWindow,
			Limit:  cfg.ReportShortWindowLimit,
			Prefix: "rl:report10m:",
		},
		Long: WindowPolicy{
			Window: cfg.ReportLongWindow,
			Limit:  cfg.ReportLongWindowLimit,
			Prefix: "rl:report1d:",
		},
	}

	if redisClient == nil {
		s.memory = newMemoryWindows(time.Now)
	}

	return s
}

// AllowReport 检查两个窗口，任一窗口超限即拒绝
func (s *RateLimitService) AllowReport(key string) (bool, error) {
	for _, policy := range []WindowPolicy{s.Short, s.Long} {
		allowed, err := s.allow(policy, key)
		if err != nil {
			return false, err
		}
		if !allowed {
			return false, nil
		}
	}
	return true, nil
}

// allow 对单个窗口记一次事件并判断是否超限
func (s *RateLimitService) allow(policy WindowPolicy, key string) (bool, error) {
	if s.memory != nil {
		return s.memory.allow(policy, key), nil
	}

	now := time.Now().UnixNano()
	cutoff := now - policy.Window.Nanoseconds()
	counterKey := policy.Prefix + key

	pipe := s.Client.TxPipeline()
	pipe.ZRemRangeByScore(s.Ctx, counterKey, "0", strconv.FormatInt(cutoff, 10))
	pipe.ZAdd(s.Ctx, counterKey, &redis.Z{
		Score:  float64(now),
		Member: uuid.NewString(),
	})
	card := pipe.ZCard(s.Ctx, counterKey)
	pipe.Expire(s.Ctx, counterKey, policy.Window)

	if _, err := pipe.Exec(s.Ctx); err != nil {
		return false, err
	}

	return card.Val() <= int64(policy.Limit), nil
}

// memoryWindows 进程内滑动窗口计数，行为与Redis实现保持一致：
// 先记录本次事件，再判断窗口内事件总数是否超限
type memoryWindows struct {
	mu     sync.Mutex
	events map[string][]int64
	now    func() time.Time
}

func newMemoryWindows(now func() time.Time) *memoryWindows {
	return &memoryWindows{
		events: make(map[string][]int64),
		now:    now,
	}
}

func (m *memoryWindows) allow(policy WindowPolicy, key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	nowNano := m.now().UnixNano()
	cutoff := nowNano - policy.Window.Nanoseconds()
	counterKey := policy.Prefix + key

	// 清理窗口外的事件
	kept := m.events[counterKey][:0]
	for _, ts := range m.events[counterKey] {
		if ts > cutoff {
			kept = append(kept, ts)
		}
	}

	kept = append(kept, nowNano)
	m.events[counterKey] = kept

	return len(kept) <= policy.Limit
}
