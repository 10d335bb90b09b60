package game

import (
	"fmt"
	"log"
	"math"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Settings 玩家偏好（与进度存档分开保存，重置进度不影响设置）
type Settings struct {
	SoundVolume  float64 `yaml:"soundVolume"`  // 叫声音量 0.0 ~ 1.0
	SoundEnabled bool    `yaml:"soundEnabled"` // 叫声开关
	Fullscreen   bool    `yaml:"fullscreen"`   // 启动时是否全屏
}

// DefaultSettings 返回默认设置，音量与网页版相同
func DefaultSettings() Settings {
	return Settings{
		SoundVolume:  0.6,
		SoundEnabled: true,
	}
}

// sanitize 修正越界或非法的字段
func (s *Settings) sanitize() {
	if math.IsNaN(s.SoundVolume) {
		s.SoundVolume = DefaultSettings().SoundVolume
	}
	s.SoundVolume = clampVolume(s.SoundVolume)
}

// PropStorage 设置持久化所需的最小接口，*gdata.Manager 满足该接口
type PropStorage interface {
	ObjectPropExists(objectKey, propKey string) bool
	LoadObjectProp(objectKey, propKey string) ([]byte, error)
	SaveObjectProp(objectKey, propKey string, data []byte) error
}

func isNilStorage(s PropStorage) bool {
	if s == nil {
		return true
	}
	m, ok := s.(*gdata.Manager)
	return ok && m == nil
}

// 设置在 gdata 中的位置
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// SettingsManager 保存和读取玩家偏好
//
// 存储为 nil 时只在内存中生效；Set* 方法只修改内存，调用 Save 才写入。
type SettingsManager struct {
	storage  PropStorage
	settings Settings
}

// NewSettingsManager 创建设置管理器并立即加载
//
// 参数：
//   - storage: 通常是 *gdata.Manager；为 nil 时降级为内存设置
//
// 读取失败只记录日志并使用默认设置。
func NewSettingsManager(storage PropStorage) *SettingsManager {
	sm := &SettingsManager{settings: DefaultSettings()}
	// nil *gdata.Manager 装进接口后不是 nil，这里统一处理
	if !isNilStorage(storage) {
		sm.storage = storage
	}
	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: %v (using defaults)", err)
	}
	return sm
}

// Load 重新读取设置，缺失的字段保持默认值
func (sm *SettingsManager) Load() error {
	sm.settings = DefaultSettings()
	if sm.storage == nil || !sm.storage.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := sm.storage.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to parse settings: %w", err)
	}
	loaded.sanitize()
	sm.settings = loaded

	log.Printf("[SettingsManager] Loaded: volume=%.2f sound=%v fullscreen=%v",
		loaded.SoundVolume, loaded.SoundEnabled, loaded.Fullscreen)
	return nil
}

// Save 写入当前设置；降级模式下什么也不做
func (sm *SettingsManager) Save() error {
	if sm.storage == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := sm.storage.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// Current 返回当前设置的拷贝
func (sm *SettingsManager) Current() Settings {
	return sm.settings
}

// SetSoundVolume 设置叫声音量，限制在 0.0 ~ 1.0
func (sm *SettingsManager) SetSoundVolume(volume float64) {
	sm.settings.SoundVolume = volume
	sm.settings.sanitize()
}

// SetSoundEnabled 设置叫声开关
func (sm *SettingsManager) SetSoundEnabled(enabled bool) {
	sm.settings.SoundEnabled = enabled
}

// ToggleSound 切换叫声开关并返回新状态
func (sm *SettingsManager) ToggleSound() bool {
	sm.settings.SoundEnabled = !sm.settings.SoundEnabled
	return sm.settings.SoundEnabled
}

// SetFullscreen 设置启动时是否全屏
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

func clampVolume(volume float64) float64 {
	return math.Max(0, math.Min(1, volume))
}
