// Package economy 实现点击游戏的成长/经济模型
//
// 包含：
//   - State：当前点数、累计点数、每次点击收益、每秒自动收益、已购升级
//   - Catalog：静态升级目录（启动时定义，不持久化）
//   - Engine：所有状态变更操作（点击、自动累积、购买、重置）
//
// 本包不做任何 I/O，也不依赖 ebiten，由 pkg/game 的 Session 驱动。
package economy

import (
	"fmt"
)

// EffectKind 升级效果类型
type EffectKind int

const (
	// EffectActionPower 增加每次点击获得的点数
	EffectActionPower EffectKind = iota + 1
	// EffectAutoRate 增加每秒自动获得的点数
	EffectAutoRate
)

// String 返回效果类型的配置名（与 upgrades.yaml 中的 effect 字段一致）
func (k EffectKind) String() string {
	switch k {
	case EffectActionPower:
		return "actionPower"
	case EffectAutoRate:
		return "autoRate"
	default:
		return fmt.Sprintf("EffectKind(%d)", int(k))
	}
}

// ParseEffectKind 将配置名解析为 EffectKind
func ParseEffectKind(s string) (EffectKind, error) {
	switch s {
	case "actionPower":
		return EffectActionPower, nil
	case "autoRate":
		return EffectAutoRate, nil
	}
	return 0, fmt.Errorf("unknown effect kind %q", s)
}

// Effect 升级效果：对 ActionPower 或 AutoRate 增加固定数值
type Effect struct {
	Kind   EffectKind
	Amount float64
}

// apply 将效果作用到状态上
func (e Effect) apply(s *State) {
	switch e.Kind {
	case EffectActionPower:
		s.ActionPower += e.Amount
	case EffectAutoRate:
		s.AutoRate += e.Amount
	}
}

// Upgrade 静态升级定义
type Upgrade struct {
	ID          string
	Name        string
	Description string
	UnlockAt    float64 // 解锁所需的累计点数
	BaseCost    float64
	CostGrowth  float64 // 每拥有一个后价格的倍数，必须 > 1
	Effect      Effect
}

// Catalog 不可变的升级目录，保持定义顺序
type Catalog struct {
	upgrades []Upgrade
	index    map[string]int
}

// NewCatalog 创建升级目录并校验每个定义
//
// 参数：
//   - upgrades: 升级定义（顺序即商店显示顺序）
//
// 返回：
//   - *Catalog: 升级目录
//   - error: 存在重复ID或非法参数时返回错误
func NewCatalog(upgrades ...Upgrade) (*Catalog, error) {
	c := &Catalog{
		upgrades: make([]Upgrade, 0, len(upgrades)),
		index:    make(map[string]int, len(upgrades)),
	}

	for _, u := range upgrades {
		if err := validateUpgrade(u); err != nil {
			return nil, err
		}
		if _, dup := c.index[u.ID]; dup {
			return nil, fmt.Errorf("duplicate upgrade id %q", u.ID)
		}
		c.index[u.ID] = len(c.upgrades)
		c.upgrades = append(c.upgrades, u)
	}

	return c, nil
}

func validateUpgrade(u Upgrade) error {
	if u.ID == "" {
		return fmt.Errorf("upgrade id is required")
	}
	// 比较写成正向形式，NaN 不满足任何比较，会在这里被拒绝
	if !(u.BaseCost > 0) || !isFinite(u.BaseCost) {
		return fmt.Errorf("upgrade %s: baseCost must be positive and finite, got %v", u.ID, u.BaseCost)
	}
	if !(u.CostGrowth > 1) || !isFinite(u.CostGrowth) {
		return fmt.Errorf("upgrade %s: costGrowth must be a finite number greater than 1, got %v", u.ID, u.CostGrowth)
	}
	if !(u.UnlockAt >= 0) || !isFinite(u.UnlockAt) {
		return fmt.Errorf("upgrade %s: unlockAt must be non-negative and finite, got %v", u.ID, u.UnlockAt)
	}
	if u.Effect.Kind != EffectActionPower && u.Effect.Kind != EffectAutoRate {
		return fmt.Errorf("upgrade %s: unknown effect %v", u.ID, u.Effect.Kind)
	}
	if !(u.Effect.Amount > 0) || !isFinite(u.Effect.Amount) {
		return fmt.Errorf("upgrade %s: effect amount must be positive and finite, got %v", u.ID, u.Effect.Amount)
	}
	return nil
}

// Lookup 根据ID查找升级定义
func (c *Catalog) Lookup(id string) (Upgrade, bool) {
	i, ok := c.index[id]
	if !ok {
		return Upgrade{}, false
	}
	return c.upgrades[i], true
}

// All 返回所有升级定义的副本（按定义顺序）
func (c *Catalog) All() []Upgrade {
	out := make([]Upgrade, len(c.upgrades))
	copy(out, c.upgrades)
	return out
}

// Len 返回升级数量
func (c *Catalog) Len() int {
	return len(c.upgrades)
}
