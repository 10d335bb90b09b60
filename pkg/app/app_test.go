package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/decker502/duckclicker/pkg/embedded"
)

func TestFrameDelta(t *testing.T) {
	a := &App{}
	start := time.Unix(1000, 0)

	if got := a.frameDelta(start); got != 0 {
		t.Errorf("first frame: got %v, want 0", got)
	}
	if got := a.frameDelta(start.Add(16 * time.Millisecond)); got != 0.016 {
		t.Errorf("second frame: got %v, want 0.016", got)
	}

	t.Run("长时间间隔不截断", func(t *testing.T) {
		if got := a.frameDelta(start.Add(2016 * time.Millisecond)); got != 2 {
			t.Errorf("got %v, want 2", got)
		}
	})

	t.Run("时钟回拨返回0", func(t *testing.T) {
		if got := a.frameDelta(start); got != 0 {
			t.Errorf("got %v, want 0", got)
		}
	})
}

func TestLoadCatalog(t *testing.T) {
	t.Run("外部文件", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "upgrades.yaml")
		data := []byte(`upgrades:
  - id: rubber_band
    name: Rubber Band
    description: +1 quack per click
    unlockAt: 0
    baseCost: 5
    costGrowth: 1.1
    effect: actionPower
    amount: 1
`)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			t.Fatal(err)
		}

		catalog, err := loadCatalog(path)
		if err != nil {
			t.Fatalf("loadCatalog: %v", err)
		}
		if catalog.Len() != 1 {
			t.Errorf("Len: got %d, want 1", catalog.Len())
		}
	})

	t.Run("文件不存在", func(t *testing.T) {
		if _, err := loadCatalog(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
			t.Error("expected error for missing catalog")
		}
	})

	t.Run("内置资源未初始化", func(t *testing.T) {
		if embedded.IsInitialized() {
			t.Skip("embedded already initialized")
		}
		if _, err := loadCatalog(""); err == nil {
			t.Error("expected error when embedded resources are missing")
		}
	})
}
