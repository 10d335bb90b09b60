package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 一个可以独立更新和绘制的画面
type Scene interface {
	// Update 推进场景，deltaTime 为距上一帧的真实秒数
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
}

// Saveable 需要在离开或退出前写入存档的场景
type Saveable interface {
	SaveOnExit()
}

// SceneManager 持有当前场景并转发帧循环调用
//
// 切换场景或程序退出时，实现了 Saveable 的场景会先被保存。
type SceneManager struct {
	current Scene
}

// NewSceneManager 创建没有活动场景的管理器
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo 切换到 scene；旧场景实现 Saveable 时先保存
func (sm *SceneManager) SwitchTo(scene Scene) {
	if sm.current != nil && sm.current != scene {
		sm.SaveOnExit()
	}
	sm.current = scene
}

// Current 返回当前场景，没有时为 nil
func (sm *SceneManager) Current() Scene {
	return sm.current
}

func (sm *SceneManager) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

// SaveOnExit 保存当前场景（如果它实现了 Saveable）
func (sm *SceneManager) SaveOnExit() {
	saveable, ok := sm.current.(Saveable)
	if !ok {
		return
	}
	log.Printf("[SceneManager] Saving %T", sm.current)
	saveable.SaveOnExit()
}
