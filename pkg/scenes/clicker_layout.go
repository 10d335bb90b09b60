package scenes

import (
	"fmt"
	"math"
	"strconv"

	"github.com/decker502/duckclicker/pkg/config"
	"github.com/decker502/duckclicker/pkg/economy"
	"github.com/decker502/duckclicker/pkg/utils"
)

// 商店按钮文字
const (
	buyLabelBuy    = "Buy"
	buyLabelLocked = "Locked"
	buyLabelNeed   = "Need more quacks"
)

// footerTip 底部提示
const footerTip = "Pro tip: leave it open and let auto-quacks do their thing."

// statLabels 状态栏四个格子的标题，顺序与 statValues 一致
var statLabels = [config.StatBoxNums]string{"Quacks", "Total", "Per Click", "Auto / sec"}

// statValues 返回状态栏四个格子的数值文字
func statValues(s *economy.State) [config.StatBoxNums]string {
	return [config.StatBoxNums]string{
		economy.FormatCompact(math.Floor(s.Points)),
		economy.FormatCompact(math.Floor(s.LifetimePoints)),
		economy.FormatCompact(s.ActionPower),
		economy.FormatRate(s.AutoRate),
	}
}

// statBoxRect 返回第 i 个状态格子的区域
func statBoxRect(i int) utils.Rect {
	return utils.Rect{
		X: config.StatBoxX + float64(i)*(config.StatBoxW+config.StatBoxGap),
		Y: config.StatBoxY,
		W: config.StatBoxW,
		H: config.StatBoxH,
	}
}

// shopRowRect 返回第 i 行商店条目的区域
func shopRowRect(i int) utils.Rect {
	return utils.Rect{
		X: config.ShopX,
		Y: config.ShopY + config.ShopHeaderH + float64(i)*(config.ShopRowH+config.ShopRowGap),
		W: config.ShopW,
		H: config.ShopRowH,
	}
}

// buyButtonRect 返回第 i 行的购买按钮区域（行内右侧垂直居中）
func buyButtonRect(i int) utils.Rect {
	row := shopRowRect(i)
	return utils.Rect{
		X: row.X + row.W - config.ShopPaddingX - config.BuyButtonW,
		Y: row.Y + (row.H-config.BuyButtonH)/2,
		W: config.BuyButtonW,
		H: config.BuyButtonH,
	}
}

// resetButtonRect 重置按钮区域
func resetButtonRect() utils.Rect {
	return utils.Rect{X: config.ResetButtonX, Y: config.ResetButtonY, W: config.ResetButtonW, H: config.ResetButtonH}
}

// shopRowAt 返回点击位置所在购买按钮的行号，没有命中返回 -1
func shopRowAt(x, y float64, rows int) int {
	for i := 0; i < rows; i++ {
		if buyButtonRect(i).Contains(x, y) {
			return i
		}
	}
	return -1
}

// duckHit 判断点击是否落在鸭子上
func duckHit(x, y float64) bool {
	return utils.InCircle(x, y, config.DuckCenterX, config.DuckCenterY, config.DuckRadius)
}

// buyLabel 返回商店条目按钮上的文字
func buyLabel(v economy.UpgradeView) string {
	switch {
	case !v.Unlocked:
		return buyLabelLocked
	case !v.Affordable:
		return buyLabelNeed
	default:
		return buyLabelBuy
	}
}

// costLine 返回商店条目的价格行：已解锁显示价格，否则显示解锁条件
func costLine(v economy.UpgradeView) string {
	if !v.Unlocked {
		return "Unlock at " + strconv.FormatFloat(v.UnlockAt, 'f', -1, 64) + " total"
	}
	return "Cost: " + economy.FormatCompact(float64(v.Cost))
}

// ownedLine 返回已拥有数量
func ownedLine(v economy.UpgradeView) string {
	return fmt.Sprintf("Owned: %d", v.Owned)
}

// duckScale 返回鸭子当前的挤压缩放比例
//
// 参数：
//   - squishLeft: 挤压动画剩余秒数
func duckScale(squishLeft float64) float64 {
	if squishLeft > 0 {
		return config.DuckSquishScale
	}
	return 1
}
