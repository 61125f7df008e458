package kvstore

import (
	"testing"

	"github.com/brewnext/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupGormStoreTest(t *testing.T) *GormStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.KVEntry{}); err != nil {
		t.Fatalf("migrate kv_entries failed: %v", err)
	}
	return NewGormStore(db)
}

func TestGormStoreSetGetDelete(t *testing.T) {
	store := setupGormStoreTest(t)

	if _, found, err := store.Get("orders"); err != nil || found {
		t.Fatalf("expected miss on empty store, found=%v err=%v", found, err)
	}

	if err := store.Set("orders", []byte(`[]`)); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	value, found, err := store.Get("orders")
	if err != nil || !found {
		t.Fatalf("expected hit after set, found=%v err=%v", found, err)
	}
	if string(value) != `[]` {
		t.Fatalf("unexpected value: %s", value)
	}

	// 覆盖写入
	if err := store.Set("orders", []byte(`[{"id":"ORD-1001"}]`)); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	value, _, _ = store.Get("orders")
	if string(value) != `[{"id":"ORD-1001"}]` {
		t.Fatalf("overwrite not applied: %s", value)
	}

	if err := store.Delete("orders"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, found, _ := store.Get("orders"); found {
		t.Fatalf("expected miss after delete")
	}
	// 重复删除静默成功
	if err := store.Delete("orders"); err != nil {
		t.Fatalf("second delete failed: %v", err)
	}
}

func TestScopedStoreIsolatesNamespaces(t *testing.T) {
	store := NewMemoryStore()
	alice := Scoped(store, "u:1")
	bob := Scoped(store, "u:2")

	if err := alice.Set("cart", []byte(`{"items":[]}`)); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if _, found, _ := bob.Get("cart"); found {
		t.Fatalf("namespace leak: bob sees alice's cart")
	}
	if _, found, _ := store.Get("u:1/cart"); !found {
		t.Fatalf("expected physical key u:1/cart")
	}
}

func TestLoadJSONFallsBackOnBadPayload(t *testing.T) {
	store := NewMemoryStore()

	type doc struct {
		Items []string `json:"items"`
	}
	validate := func(d *doc) bool { return d.Items != nil }

	// 未命中
	if _, ok := LoadJSON(store, "cart", validate); ok {
		t.Fatalf("expected miss")
	}

	// JSON 损坏
	_ = store.Set("cart", []byte(`{not-json`))
	if _, ok := LoadJSON(store, "cart", validate); ok {
		t.Fatalf("expected malformed payload rejected")
	}

	// 形状不对
	_ = store.Set("cart", []byte(`{"items":null}`))
	if _, ok := LoadJSON(store, "cart", validate); ok {
		t.Fatalf("expected invalid shape rejected")
	}

	// 正常
	_ = store.Set("cart", []byte(`{"items":["a"]}`))
	loaded, ok := LoadJSON(store, "cart", validate)
	if !ok || len(loaded.Items) != 1 {
		t.Fatalf("expected valid payload loaded, got ok=%v items=%v", ok, loaded.Items)
	}
}

func TestNoopStoreNeverHits(t *testing.T) {
	store := NewNoopStore()
	if err := store.Set("cart", []byte(`{}`)); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if _, found, _ := store.Get("cart"); found {
		t.Fatalf("noop store must never hit")
	}
	if err := store.Delete("cart"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
}
