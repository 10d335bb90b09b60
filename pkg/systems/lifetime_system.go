// Package systems 实现 ECS 系统（每帧处理拥有特定组件的实体）
package systems

import (
	"github.com/decker502/duckclicker/pkg/components"
	"github.com/decker502/duckclicker/pkg/ecs"
)

// LifetimeSystem 累计实体存在时间，到期后标记销毁
type LifetimeSystem struct {
	entityManager *ecs.EntityManager
}

// NewLifetimeSystem 创建一个新的生命周期系统
func NewLifetimeSystem(em *ecs.EntityManager) *LifetimeSystem {
	return &LifetimeSystem{entityManager: em}
}

// Update 推进所有 LifetimeComponent；实际删除由 EntityManager.RemoveMarkedEntities 完成
func (s *LifetimeSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.LifetimeComponent](s.entityManager) {
		lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		if !ok || lifetime.IsExpired {
			continue
		}

		lifetime.CurrentLifetime += deltaTime
		if lifetime.CurrentLifetime >= lifetime.MaxLifetime {
			lifetime.IsExpired = true
			s.entityManager.DestroyEntity(id)
		}
	}
}
