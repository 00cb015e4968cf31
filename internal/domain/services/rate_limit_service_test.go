package services

import (
	"testing"
	"time"
)

func testPolicies() (WindowPolicy, WindowPolicy) {
	short := WindowPolicy{Window: 10 * time.Minute, Limit: 3, Prefix: "rl:report10m:"}
	long := WindowPolicy{Window: 24 * time.Hour, Limit: 10, Prefix: "rl:report1d:"}
	return short, long
}

func TestMemoryWindowsShortWindow(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	m := newMemoryWindows(clock)
	short, _ := testPolicies()

	// 窗口内前3次放行，第4次拒绝
	for i := 0; i < 3; i++ {
		if !m.allow(short, "k1") {
			t.Fatalf("request %d should be allowed", i+1)
		}
		now = now.Add(time.Minute)
	}
	if m.allow(short, "k1") {
		t.Fatal("4th request within the short window must be denied")
	}

	// 最早的事件滑出窗口后恢复放行
	now = now.Add(8 * time.Minute)
	if !m.allow(short, "k1") {
		t.Fatal("request should be allowed after the oldest event slides out")
	}
}

func TestMemoryWindowsKeysIndependent(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	m := newMemoryWindows(func() time.Time { return now })
	short, _ := testPolicies()

	for i := 0; i < 3; i++ {
		m.allow(short, "a")
	}
	if m.allow(short, "a") {
		t.Fatal("key a should be exhausted")
	}
	if !m.allow(short, "b") {
		t.Fatal("key b must not be affected by key a")
	}
}

func TestMemoryWindowsLongWindow(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	m := newMemoryWindows(func() time.Time { return now })
	_, long := testPolicies()

	// 间隔足够大避开短窗口语义，验证24小时内第11次被拒
	for i := 0; i < 10; i++ {
		if !m.allow(long, "k") {
			t.Fatalf("request %d should be allowed", i+1)
		}
		now = now.Add(time.Hour)
	}
	if m.allow(long, "k") {
		t.Fatal("11th request within 24h must be denied")
	}

	now = now.Add(15 * time.Hour)
	if !m.allow(long, "k") {
		t.Fatal("request should be allowed after early events expire")
	}
}

func TestAllowReportChecksBothWindows(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := &RateLimitService{
		Short:  WindowPolicy{Window: 10 * time.Minute, Limit: 3, Prefix: "rl:report10m:"},
		Long:   WindowPolicy{Window: 24 * time.Hour, Limit: 10, Prefix: "rl:report1d:"},
		memory: newMemoryWindows(func() time.Time { return now }),
	}

	for i := 0; i < 3; i++ {
		allowed, err := s.AllowReport("key")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !allowed {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}

	allowed, err := s.AllowReport("key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if allowed {
		t.Fatal("short window must deny the 4th request")
	}
}
