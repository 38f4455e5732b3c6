package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

// StashedSearch 多命中搜索的暂存内容：命中商品 ID 集合与原始搜索词
type StashedSearch struct {
	ProductIDs []uint `json:"product_ids"`
	Query      string `json:"query"`
}

// SearchStash 搜索多结果暂存（按会话键保存，取回一次即失效）
type SearchStash interface {
	Put(ctx context.Context, sessionKey string, entry StashedSearch) error
	Take(ctx context.Context, sessionKey string) (StashedSearch, bool, error)
}

type redisSearchStash struct {
	ttl time.Duration
}

// NewSearchStash 创建搜索暂存，Redis 不可用时退化为进程内存
func NewSearchStash(ttl time.Duration) SearchStash {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	if Enabled() {
		return &redisSearchStash{ttl: ttl}
	}
	return newMemorySearchStash(ttl)
}

func (s *redisSearchStash) Put(ctx context.Context, sessionKey string, entry StashedSearch) error {
	key := searchStashKey(sessionKey)
	if key == "" {
		return nil
	}
	if len(entry.ProductIDs) == 0 {
		return Del(ctx, key)
	}
	return SetJSON(ctx, key, entry, s.ttl)
}

func (s *redisSearchStash) Take(ctx context.Context, sessionKey string) (StashedSearch, bool, error) {
	key := searchStashKey(sessionKey)
	if key == "" {
		return StashedSearch{}, false, nil
	}
	var entry StashedSearch
	found, err := GetJSON(ctx, key, &entry)
	if err != nil || !found {
		return StashedSearch{}, false, err
	}
	// 一次性消费
	_ = Del(ctx, key)
	return entry, true, nil
}

func searchStashKey(sessionKey string) string {
	trimmed := strings.TrimSpace(sessionKey)
	if trimmed == "" {
		return ""
	}
	return fmt.Sprintf("search:%s", trimmed)
}

type memoryStashEntry struct {
	entry     StashedSearch
	expiresAt time.Time
}

type memorySearchStash struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]memoryStashEntry
}

func newMemorySearchStash(ttl time.Duration) *memorySearchStash {
	return &memorySearchStash{
		ttl:     ttl,
		entries: make(map[string]memoryStashEntry),
	}
}

func (s *memorySearchStash) Put(_ context.Context, sessionKey string, entry StashedSearch) error {
	key := strings.TrimSpace(sessionKey)
	if key == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(entry.ProductIDs) == 0 {
		delete(s.entries, key)
		return nil
	}
	stored := entry
	stored.ProductIDs = append([]uint(nil), entry.ProductIDs...)
	s.entries[key] = memoryStashEntry{
		entry:     stored,
		expiresAt: time.Now().Add(s.ttl),
	}
	return nil
}

func (s *memorySearchStash) Take(_ context.Context, sessionKey string) (StashedSearch, bool, error) {
	key := strings.TrimSpace(sessionKey)
	if key == "" {
		return StashedSearch{}, false, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.entries[key]
	if !ok {
		return StashedSearch{}, false, nil
	}
	delete(s.entries, key)
	if time.Now().After(stored.expiresAt) {
		return StashedSearch{}, false, nil
	}
	return stored.entry, true, nil
}
