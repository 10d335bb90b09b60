// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Rect 屏幕上的矩形区域（逻辑像素）
type Rect struct {
	X, Y, W, H float64
}

// Contains 判断点是否在矩形内（包含左上边界，不包含右下边界）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Center 返回矩形中心点
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// InCircle 判断点是否在圆内
func InCircle(x, y, cx, cy, radius float64) bool {
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= radius*radius
}

// Pointer 本帧的指针状态（触摸优先于鼠标）
type Pointer struct {
	X, Y    float64
	Pressed bool // 本帧刚按下
}

// PollPointer 读取本帧的指针位置和按下事件
//
// 有新触摸时返回该触摸点；否则有持续触摸时返回其位置（用于悬停）；
// 再否则使用鼠标。
func PollPointer() Pointer {
	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		return Pointer{X: float64(x), Y: float64(y), Pressed: true}
	}
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		return Pointer{X: float64(x), Y: float64(y)}
	}

	x, y := ebiten.CursorPosition()
	return Pointer{
		X:       float64(x),
		Y:       float64(y),
		Pressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	}
}
