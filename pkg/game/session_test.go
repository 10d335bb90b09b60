package game

import (
	"errors"
	"testing"

	"github.com/decker502/duckclicker/pkg/economy"
	"github.com/decker502/duckclicker/pkg/store"
)

func testCatalog(t *testing.T) *economy.Catalog {
	t.Helper()
	c, err := economy.NewCatalog(
		economy.Upgrade{ID: "better_finger", Name: "Stronger Finger", UnlockAt: 0, BaseCost: 25, CostGrowth: 1.15, Effect: economy.Effect{Kind: economy.EffectActionPower, Amount: 1}},
		economy.Upgrade{ID: "coffee", Name: "Office Coffee", UnlockAt: 30, BaseCost: 60, CostGrowth: 1.17, Effect: economy.Effect{Kind: economy.EffectAutoRate, Amount: 0.5}},
	)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	return c
}

// quackRecorder 记录收到的叫声次数
type quackRecorder struct {
	calls []int
	total int
}

func (r *quackRecorder) Quack(n int) {
	r.calls = append(r.calls, n)
	r.total += n
}

// flakyStore 可以模拟读写失败的存储
type flakyStore struct {
	*store.MemoryStore
	failGet bool
	failSet bool
	sets    int
}

func (f *flakyStore) Get(key string) ([]byte, bool, error) {
	if f.failGet {
		return nil, false, errors.New("disk on fire")
	}
	return f.MemoryStore.Get(key)
}

func (f *flakyStore) Set(key string, data []byte) error {
	f.sets++
	if f.failSet {
		return errors.New("disk full")
	}
	return f.MemoryStore.Set(key, data)
}

func newFlakyStore() *flakyStore {
	return &flakyStore{MemoryStore: store.NewMemoryStore()}
}

func TestSessionLoadsSave(t *testing.T) {
	st := store.NewMemoryStore()
	_ = st.Set(store.SaveKey, []byte(`{"points":40,"totalQuacks":90,"clickPower":2,"autoQps":0.5,"owned":{"coffee":1,"better_finger":1}}`))

	s := NewSession(testCatalog(t), st, nil)
	snap := s.Snapshot()
	if snap.Points != 40 || snap.LifetimePoints != 90 || snap.ActionPower != 2 || snap.AutoRate != 0.5 {
		t.Errorf("unexpected state: %+v", snap)
	}
	if s.Title() != "Junior Quacker" {
		t.Errorf("title: got %q", s.Title())
	}
}

func TestSessionLoadFailures(t *testing.T) {
	t.Run("读取失败使用默认状态", func(t *testing.T) {
		st := newFlakyStore()
		st.failGet = true
		s := NewSession(testCatalog(t), st, nil)
		if snap := s.Snapshot(); snap.Points != 0 || snap.ActionPower != 1 {
			t.Errorf("unexpected state: %+v", snap)
		}
	})

	t.Run("存档损坏使用默认状态", func(t *testing.T) {
		st := store.NewMemoryStore()
		_ = st.Set(store.SaveKey, []byte("}{"))
		s := NewSession(testCatalog(t), st, nil)
		if snap := s.Snapshot(); snap.Points != 0 || snap.LifetimePoints != 0 {
			t.Errorf("unexpected state: %+v", snap)
		}
	})

	t.Run("无存储", func(t *testing.T) {
		s := NewSession(testCatalog(t), nil, nil)
		s.Click()
		s.Flush()
		if s.Snapshot().Points != 1 {
			t.Errorf("click without store should still count")
		}
	})
}

func TestSessionClickPersistsAndQuacks(t *testing.T) {
	st := store.NewMemoryStore()
	rec := &quackRecorder{}
	s := NewSession(testCatalog(t), st, rec)

	s.Click()
	s.Click()

	if rec.total != 2 {
		t.Errorf("quacks: got %d, want 2", rec.total)
	}

	raw, ok, _ := st.Get(store.SaveKey)
	if !ok {
		t.Fatal("click was not persisted")
	}
	if loaded := economy.LoadState(raw); loaded.Points != 2 || loaded.LifetimePoints != 2 {
		t.Errorf("persisted state: %+v", loaded)
	}
}

func TestSessionTickAccruesAndDebouncesSaves(t *testing.T) {
	st := newFlakyStore()
	_ = st.MemoryStore.Set(store.SaveKey, []byte(`{"points":0,"totalQuacks":41.7,"autoQps":1}`))
	rec := &quackRecorder{}
	s := NewSession(testCatalog(t), st, rec)

	// 0.5 秒：累积但尚未到自动保存间隔
	for i := 0; i < 30; i++ {
		s.Tick(1.0 / 60)
	}
	if st.sets != 0 {
		t.Errorf("saved %d times before AutoSaveInterval", st.sets)
	}

	// 再 2 秒：41.7 -> 44.2，跨过 42、43、44 三个边界
	for i := 0; i < 120; i++ {
		s.Tick(1.0 / 60)
	}
	if rec.total != 3 {
		t.Errorf("quacks: got %d (%v), want 3", rec.total, rec.calls)
	}
	if st.sets == 0 {
		t.Error("accrual was never persisted")
	}
	if st.sets > 3 {
		t.Errorf("saved %d times in 2.5s, expected debounced saves", st.sets)
	}

	// 没有自动收益时 Tick 不写存档
	idle := newFlakyStore()
	s2 := NewSession(testCatalog(t), idle, nil)
	for i := 0; i < 300; i++ {
		s2.Tick(1.0 / 60)
	}
	if idle.sets != 0 {
		t.Errorf("idle session saved %d times", idle.sets)
	}
}

func TestSessionWriteFailureIsAbsorbed(t *testing.T) {
	st := newFlakyStore()
	st.failSet = true
	s := NewSession(testCatalog(t), st, nil)

	s.Click()
	if s.Snapshot().Points != 1 {
		t.Error("state should change even when persistence fails")
	}

	// 下一次变更重新尝试写入
	st.failSet = false
	s.Click()
	raw, ok, _ := st.Get(store.SaveKey)
	if !ok || economy.LoadState(raw).Points != 2 {
		t.Errorf("expected retry on next mutation, got %q", raw)
	}
}

func TestSessionBuy(t *testing.T) {
	st := store.NewMemoryStore()
	s := NewSession(testCatalog(t), st, nil)

	if _, err := s.Buy("better_finger"); !errors.Is(err, economy.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if s.Toast() != ToastNotEnough {
		t.Errorf("toast: got %q", s.Toast())
	}

	if _, err := s.Buy("coffee"); !errors.Is(err, economy.ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
	if s.Toast() != ToastLocked {
		t.Errorf("toast: got %q", s.Toast())
	}

	for i := 0; i < 25; i++ {
		s.Click()
	}
	receipt, err := s.Buy("better_finger")
	if err != nil {
		t.Fatalf("Buy failed: %v", err)
	}
	if receipt.Name != "Stronger Finger" || receipt.Cost != 25 {
		t.Errorf("receipt: %+v", receipt)
	}
	if s.Toast() != "Bought: Stronger Finger" {
		t.Errorf("toast: got %q", s.Toast())
	}

	raw, _, _ := st.Get(store.SaveKey)
	loaded := economy.LoadState(raw)
	if loaded.Points != 0 || loaded.ActionPower != 2 || loaded.Owned["better_finger"] != 1 {
		t.Errorf("persisted state after purchase: %+v", loaded)
	}

	// 提示在 ToastDuration 后消失
	s.Tick(ToastDuration / 2)
	if s.Toast() == "" {
		t.Error("toast cleared too early")
	}
	s.Tick(ToastDuration)
	if s.Toast() != "" {
		t.Errorf("toast not cleared: %q", s.Toast())
	}

	if _, err := s.Buy("unicorn"); !errors.Is(err, economy.ErrUnknownUpgrade) {
		t.Errorf("expected ErrUnknownUpgrade, got %v", err)
	}
}

func TestSessionReset(t *testing.T) {
	st := store.NewMemoryStore()
	rec := &quackRecorder{}
	s := NewSession(testCatalog(t), st, rec)
	for i := 0; i < 10; i++ {
		s.Click()
	}

	var prompt string
	declined := s.Reset(ConfirmFunc(func(msg string) bool {
		prompt = msg
		return false
	}))
	if declined {
		t.Error("Reset should not run when declined")
	}
	if prompt != ResetPrompt {
		t.Errorf("prompt: got %q", prompt)
	}
	if s.Snapshot().Points != 10 {
		t.Error("declined reset changed state")
	}
	if s.Reset(nil) {
		t.Error("Reset without confirmer should not run")
	}

	if !s.Reset(ConfirmFunc(func(string) bool { return true })) {
		t.Fatal("confirmed reset did not run")
	}
	if snap := s.Snapshot(); snap.Points != 0 || snap.LifetimePoints != 0 || snap.ActionPower != 1 {
		t.Errorf("state after reset: %+v", snap)
	}
	if _, ok, _ := st.Get(store.SaveKey); ok {
		t.Error("save still present after reset")
	}

	// 重置后从 0 重新计数叫声
	before := rec.total
	s.Click()
	if rec.total-before != 1 {
		t.Errorf("quacks after reset: got %d, want 1", rec.total-before)
	}
}
