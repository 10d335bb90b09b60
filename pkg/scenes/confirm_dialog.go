package scenes

import (
	"github.com/decker502/duckclicker/pkg/config"
	"github.com/decker502/duckclicker/pkg/utils"
)

// dialogAnswer 对话框点击结果
type dialogAnswer int

const (
	dialogNone dialogAnswer = iota // 没有点中按钮
	dialogYes
	dialogNo
)

// confirmDialog 模态确认对话框
//
// 打开时遮挡场景的其它输入，只有 "Yes" 和 "No" 两个按钮。
type confirmDialog struct {
	open    bool
	message string
}

func (d *confirmDialog) show(message string) {
	d.open = true
	d.message = message
}

func (d *confirmDialog) close() {
	d.open = false
	d.message = ""
}

// panelRect 对话框面板区域（屏幕居中）
func (d *confirmDialog) panelRect() utils.Rect {
	return utils.Rect{
		X: (config.GameWindowWidth - config.DialogW) / 2,
		Y: (config.GameWindowHeight - config.DialogH) / 2,
		W: config.DialogW,
		H: config.DialogH,
	}
}

// yesRect / noRect 按钮区域，位于面板底部两侧
func (d *confirmDialog) yesRect() utils.Rect {
	p := d.panelRect()
	return utils.Rect{
		X: p.X + p.W/2 - config.DialogButtonW - 10,
		Y: p.Y + p.H - config.DialogButtonH - 18,
		W: config.DialogButtonW,
		H: config.DialogButtonH,
	}
}

func (d *confirmDialog) noRect() utils.Rect {
	yes := d.yesRect()
	yes.X += config.DialogButtonW + 20
	return yes
}

// hit 根据点击位置返回结果；点在面板外视为取消
func (d *confirmDialog) hit(x, y float64) dialogAnswer {
	switch {
	case d.yesRect().Contains(x, y):
		return dialogYes
	case d.noRect().Contains(x, y):
		return dialogNo
	case !d.panelRect().Contains(x, y):
		return dialogNo
	default:
		return dialogNone
	}
}
