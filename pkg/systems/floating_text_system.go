package systems

import (
	"github.com/decker502/duckclicker/pkg/components"
	"github.com/decker502/duckclicker/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// FloatingTextSystem 移动并绘制上浮文字
//
// 生命周期由 LifetimeSystem 管理；本系统根据生命进度计算透明度。
type FloatingTextSystem struct {
	entityManager *ecs.EntityManager
	face          *text.GoTextFace
}

// NewFloatingTextSystem 创建上浮文字系统
//
// 参数：
//   - em: 实体管理器
//   - face: 绘制使用的字体
func NewFloatingTextSystem(em *ecs.EntityManager, face *text.GoTextFace) *FloatingTextSystem {
	return &FloatingTextSystem{entityManager: em, face: face}
}

// Update 按上浮速度移动文字
func (s *FloatingTextSystem) Update(deltaTime float64) {
	ids := ecs.GetEntitiesWith2[*components.PositionComponent, *components.FloatingTextComponent](s.entityManager)
	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		ft, _ := ecs.GetComponent[*components.FloatingTextComponent](s.entityManager, id)
		pos.Y -= ft.RiseSpeed * deltaTime
	}
}

// Alpha 返回文字当前的不透明度：前半程不透明，后半程线性淡出
func Alpha(lifetime *components.LifetimeComponent) float32 {
	p := lifetime.Progress()
	if p < 0.5 {
		return 1
	}
	return float32((1 - p) * 2)
}

// Draw 绘制所有上浮文字，坐标为文字中心
func (s *FloatingTextSystem) Draw(screen *ebiten.Image) {
	ids := ecs.GetEntitiesWith3[*components.PositionComponent, *components.FloatingTextComponent, *components.LifetimeComponent](s.entityManager)
	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		ft, _ := ecs.GetComponent[*components.FloatingTextComponent](s.entityManager, id)
		lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)

		op := &text.DrawOptions{}
		op.GeoM.Translate(pos.X, pos.Y)
		op.ColorScale.ScaleWithColor(ft.Color)
		op.ColorScale.ScaleAlpha(Alpha(lifetime))
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		text.Draw(screen, ft.Text, s.face, op)
	}
}
