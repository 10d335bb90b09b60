// Package components 定义 ECS 组件（纯数据，不含逻辑）
package components

import "image/color"

// PositionComponent 实体的屏幕坐标（逻辑像素）
type PositionComponent struct {
	X, Y float64
}

// FloatingTextComponent 上浮并淡出的提示文字
// 用于点击鸭子时的 "+N" 和购买时的 "-花费"
type FloatingTextComponent struct {
	Text      string
	Color     color.RGBA
	RiseSpeed float64 // 上浮速度（像素/秒）
}

// LifetimeComponent 管理实体的生命周期
// 存在时间达到上限后实体被销毁
type LifetimeComponent struct {
	MaxLifetime     float64 // 最大生命周期(秒)
	CurrentLifetime float64 // 当前已存在时间(秒)
	IsExpired       bool    // 是否已过期
}

// Progress 返回 [0,1] 的生命进度，MaxLifetime 无效时视为已结束
func (l *LifetimeComponent) Progress() float64 {
	if l.MaxLifetime <= 0 {
		return 1
	}
	p := l.CurrentLifetime / l.MaxLifetime
	if p > 1 {
		return 1
	}
	return p
}
