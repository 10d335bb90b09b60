package scenes

import (
	"testing"

	"github.com/decker502/duckclicker/pkg/config"
	"github.com/decker502/duckclicker/pkg/economy"
	"github.com/decker502/duckclicker/pkg/game"
	"github.com/decker502/duckclicker/pkg/store"
)

func newTestScene(t *testing.T) (*ClickerScene, *store.MemoryStore) {
	t.Helper()
	catalog, err := economy.NewCatalog(
		economy.Upgrade{ID: "better_finger", Name: "Stronger Finger", UnlockAt: 0, BaseCost: 25, CostGrowth: 1.15, Effect: economy.Effect{Kind: economy.EffectActionPower, Amount: 1}},
		economy.Upgrade{ID: "coffee", Name: "Office Coffee", UnlockAt: 30, BaseCost: 60, CostGrowth: 1.17, Effect: economy.Effect{Kind: economy.EffectAutoRate, Amount: 0.5}},
	)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	st := store.NewMemoryStore()
	scene, err := NewClickerScene(game.NewSession(catalog, st, nil), game.NewSettingsManager(nil))
	if err != nil {
		t.Fatalf("NewClickerScene: %v", err)
	}
	return scene, st
}

func TestBuyLabelAndCostLine(t *testing.T) {
	tests := []struct {
		name      string
		view      economy.UpgradeView
		wantLabel string
		wantCost  string
	}{
		{
			name:      "未解锁",
			view:      economy.UpgradeView{Upgrade: economy.Upgrade{UnlockAt: 1200}, Cost: 2500},
			wantLabel: buyLabelLocked,
			wantCost:  "Unlock at 1200 total",
		},
		{
			name:      "点数不足",
			view:      economy.UpgradeView{Cost: 60, Unlocked: true},
			wantLabel: buyLabelNeed,
			wantCost:  "Cost: 60",
		},
		{
			name:      "可以购买",
			view:      economy.UpgradeView{Cost: 7000, Unlocked: true, Affordable: true},
			wantLabel: buyLabelBuy,
			wantCost:  "Cost: 7.00K",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buyLabel(tt.view); got != tt.wantLabel {
				t.Errorf("buyLabel: got %q, want %q", got, tt.wantLabel)
			}
			if got := costLine(tt.view); got != tt.wantCost {
				t.Errorf("costLine: got %q, want %q", got, tt.wantCost)
			}
		})
	}
}

func TestLayoutFitsWindow(t *testing.T) {
	t.Run("商店六行在窗口内且不重叠", func(t *testing.T) {
		for i := 0; i < 6; i++ {
			row := shopRowRect(i)
			if row.Y+row.H > config.GameWindowHeight || row.X+row.W > config.GameWindowWidth {
				t.Errorf("row %d out of window: %+v", i, row)
			}
			if i > 0 && shopRowRect(i-1).Y+shopRowRect(i-1).H > row.Y {
				t.Errorf("row %d overlaps previous row", i)
			}
			btn := buyButtonRect(i)
			cx, cy := btn.Center()
			if !row.Contains(cx, cy) {
				t.Errorf("button %d not inside its row", i)
			}
			if got := shopRowAt(cx, cy, 6); got != i {
				t.Errorf("shopRowAt(button %d): got %d", i, got)
			}
		}
	})

	t.Run("状态栏在窗口内", func(t *testing.T) {
		last := statBoxRect(config.StatBoxNums - 1)
		if last.X+last.W > config.GameWindowWidth {
			t.Errorf("stat box out of window: %+v", last)
		}
	})

	t.Run("鸭子与商店不重叠", func(t *testing.T) {
		if duckHit(config.ShopX, config.DuckCenterY) {
			t.Error("duck hit area reaches the shop")
		}
		if !duckHit(config.DuckCenterX, config.DuckCenterY) {
			t.Error("duck center is not clickable")
		}
	})
}

func TestStatValues(t *testing.T) {
	got := statValues(&economy.State{Points: 1234.9, LifetimePoints: 999.99, ActionPower: 3, AutoRate: 0.5})
	want := [config.StatBoxNums]string{"1.23K", "999", "3", "0.5"}
	if got != want {
		t.Errorf("statValues: got %q, want %q", got, want)
	}
}

func TestDuckScale(t *testing.T) {
	if duckScale(0) != 1 {
		t.Error("idle duck should not be squished")
	}
	if duckScale(config.DuckSquishDuration) != config.DuckSquishScale {
		t.Error("clicked duck should be squished")
	}
}

func TestClickerScenePointer(t *testing.T) {
	t.Run("点击鸭子", func(t *testing.T) {
		scene, st := newTestScene(t)
		scene.handlePointer(config.DuckCenterX, config.DuckCenterY)

		if got := scene.session.Snapshot().Points; got != 1 {
			t.Errorf("points: got %v, want 1", got)
		}
		if scene.squishLeft <= 0 {
			t.Error("duck should squish after click")
		}
		if _, ok, _ := st.Get(store.SaveKey); !ok {
			t.Error("click was not persisted")
		}

		scene.advance(config.DuckSquishDuration * 2)
		if duckScale(scene.squishLeft) != 1 {
			t.Error("squish should end after DuckSquishDuration")
		}
	})

	t.Run("购买按钮", func(t *testing.T) {
		scene, _ := newTestScene(t)
		cx, cy := buyButtonRect(0).Center()

		scene.handlePointer(cx, cy)
		if scene.session.Toast() != game.ToastNotEnough {
			t.Errorf("toast: got %q", scene.session.Toast())
		}

		for i := 0; i < 25; i++ {
			scene.clickDuck(config.DuckCenterX, config.DuckCenterY)
		}
		scene.handlePointer(cx, cy)
		snap := scene.session.Snapshot()
		if snap.OwnedCount("better_finger") != 1 || snap.ActionPower != 2 {
			t.Errorf("purchase did not apply: %+v", snap)
		}
	})

	t.Run("空白处不做任何事", func(t *testing.T) {
		scene, _ := newTestScene(t)
		scene.handlePointer(5, 5)
		if scene.session.Snapshot().Points != 0 || scene.dialog.open {
			t.Error("click on empty space changed something")
		}
	})
}

func TestClickerSceneReset(t *testing.T) {
	scene, st := newTestScene(t)
	for i := 0; i < 5; i++ {
		scene.clickDuck(config.DuckCenterX, config.DuckCenterY)
	}

	rx, ry := resetButtonRect().Center()
	scene.handlePointer(rx, ry)
	if !scene.dialog.open || scene.dialog.message != game.ResetPrompt {
		t.Fatalf("reset should open the confirmation dialog, got %+v", scene.dialog)
	}

	// 对话框打开时点击鸭子不计数（点在面板外视为取消）
	scene.handlePointer(config.DuckCenterX, config.DuckCenterY)
	if scene.dialog.open {
		t.Error("click outside dialog should cancel it")
	}
	if scene.session.Snapshot().Points != 5 {
		t.Errorf("cancelled reset changed points: %v", scene.session.Snapshot().Points)
	}

	scene.handlePointer(rx, ry)
	nx, ny := scene.dialog.noRect().Center()
	scene.handlePointer(nx, ny)
	if scene.dialog.open || scene.session.Snapshot().Points != 5 {
		t.Error("No should close the dialog without resetting")
	}

	scene.handlePointer(rx, ry)
	yx, yy := scene.dialog.yesRect().Center()
	scene.handlePointer(yx, yy)
	if scene.dialog.open {
		t.Error("dialog still open after Yes")
	}
	if snap := scene.session.Snapshot(); snap.Points != 0 || snap.LifetimePoints != 0 {
		t.Errorf("state after reset: %+v", snap)
	}
	if _, ok, _ := st.Get(store.SaveKey); ok {
		t.Error("save still present after reset")
	}
}

func TestConfirmDialogHit(t *testing.T) {
	var d confirmDialog
	d.show("Reset all duck progress?")

	p := d.panelRect()
	cx, _ := p.Center()
	if got := d.hit(cx, p.Y+10); got != dialogNone {
		t.Errorf("click on panel body: got %v, want dialogNone", got)
	}
	if got := d.hit(0, 0); got != dialogNo {
		t.Errorf("click outside: got %v, want dialogNo", got)
	}
	if d.yesRect().X+d.yesRect().W > d.noRect().X {
		t.Error("Yes and No buttons overlap")
	}
}

func TestClickerSceneFloatingText(t *testing.T) {
	scene, _ := newTestScene(t)

	scene.handlePointer(config.DuckCenterX, config.DuckCenterY)
	if got := scene.entityManager.EntityCount(); got != 1 {
		t.Fatalf("click popups: got %d, want 1", got)
	}

	// 被拒绝的购买不弹出花费
	cx, cy := buyButtonRect(0).Center()
	scene.handlePointer(cx, cy)
	if got := scene.entityManager.EntityCount(); got != 1 {
		t.Errorf("rejected buy spawned a popup, count=%d", got)
	}

	for i := 0; i < 24; i++ {
		scene.clickDuck(config.DuckCenterX, config.DuckCenterY)
	}
	scene.handlePointer(cx, cy)
	if got := scene.entityManager.EntityCount(); got != 26 {
		t.Errorf("popups after purchase: got %d, want 26", got)
	}

	// 上浮文字在 FloatingTextLifetime 后消失
	scene.advance(config.FloatingTextLifetime + 0.1)
	if got := scene.entityManager.EntityCount(); got != 0 {
		t.Errorf("popups not removed after lifetime, count=%d", got)
	}
}
