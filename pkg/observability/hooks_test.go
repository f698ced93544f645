package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Renumber hooks
	r := NoopRenumberHooks{}
	r.OnStart(100, 60, 4)
	r.OnConnectivityCleared(1, 1)
	r.OnComplete(100, 60, time.Second, nil)

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "mesh")
	c.OnCacheMiss(ctx, "mesh")
	c.OnCacheSet(ctx, "mesh", 1024)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Renumber().(NoopRenumberHooks); !ok {
		t.Error("Renumber() should return NoopRenumberHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	// Set custom hooks
	customRenumber := &testRenumberHooks{}
	SetRenumberHooks(customRenumber)
	if Renumber() != customRenumber {
		t.Error("SetRenumberHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Renumber().(NoopRenumberHooks); !ok {
		t.Error("Reset() should restore NoopRenumberHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testRenumberHooks{}
	SetRenumberHooks(custom)

	// Setting nil should be ignored
	SetRenumberHooks(nil)

	if Renumber() != custom {
		t.Error("SetRenumberHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testRenumberHooks struct{ NoopRenumberHooks }
type testCacheHooks struct{ NoopCacheHooks }
