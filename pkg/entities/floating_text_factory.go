// Package entities 提供实体工厂：把组件组合成游戏中出现的对象
package entities

import (
	"image/color"

	"github.com/decker502/duckclicker/pkg/components"
	"github.com/decker502/duckclicker/pkg/config"
	"github.com/decker502/duckclicker/pkg/ecs"
)

// NewFloatingTextEntity 创建一个上浮文字实体
//
// 参数：
//   - em: 实体管理器
//   - x, y: 文字中心的初始位置
//   - text: 显示内容，例如 "+3" 或 "-25"
//   - clr: 文字颜色
//
// 返回：
//   - ecs.EntityID: 新实体ID，到期后由 LifetimeSystem 销毁
func NewFloatingTextEntity(em *ecs.EntityManager, x, y float64, text string, clr color.RGBA) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.FloatingTextComponent{
		Text:      text,
		Color:     clr,
		RiseSpeed: config.FloatingTextRiseSpeed,
	})
	em.AddComponent(id, &components.LifetimeComponent{MaxLifetime: config.FloatingTextLifetime})
	return id
}
