package economy

import (
	"math"
)

// Receipt 购买成功后的回执
type Receipt struct {
	UpgradeID string
	Name      string // 用于确认提示的显示名
	Cost      int64
	Owned     int // 购买后的数量
}

// UpgradeView 商店列表中一行的派生数据
type UpgradeView struct {
	Upgrade
	Owned      int
	Cost       int64
	Unlocked   bool
	Affordable bool
}

// Engine 成长引擎，单一所有者持有 State 和 Catalog
//
// 所有方法都在同一个逻辑线程中调用（帧循环），因此不加锁。
type Engine struct {
	catalog  *Catalog
	state    *State
	feedback FeedbackCounter
}

// NewEngine 创建成长引擎
//
// 参数：
//   - catalog: 静态升级目录
//   - state: 初始状态，为 nil 时使用 NewState()
func NewEngine(catalog *Catalog, state *State) *Engine {
	if state == nil {
		state = NewState()
	}
	if state.Owned == nil {
		state.Owned = map[string]int{}
	}
	e := &Engine{
		catalog: catalog,
		state:   state,
	}
	// 以加载时的累计点数为基准，避免加载存档时一次性触发大量反馈
	e.feedback.Rebase(state.LifetimePoints)
	return e
}

// Catalog 返回升级目录
func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

// Snapshot 返回当前状态的拷贝
func (e *Engine) Snapshot() *State {
	return e.state.Clone()
}

// RecordAction 手动点击一次：Points 和 LifetimePoints 都增加 ActionPower
//
// 返回：
//   - float64: 本次获得的点数
func (e *Engine) RecordAction() float64 {
	gain := e.state.ActionPower
	e.state.earn(gain)
	return gain
}

// Accrue 按经过的时间累积自动收益
//
// 每帧调用一次，elapsedSeconds 为距上次调用的秒数。
// AutoRate 为 0 或 elapsedSeconds <= 0 时不做任何事。
//
// 返回：
//   - float64: 本次累积的点数
func (e *Engine) Accrue(elapsedSeconds float64) float64 {
	if e.state.AutoRate <= 0 || !(elapsedSeconds > 0) {
		return 0
	}
	gain := e.state.AutoRate * elapsedSeconds
	if gain <= 0 || math.IsInf(gain, 0) {
		return 0
	}
	e.state.earn(gain)
	return gain
}

// DrainFeedback 返回自上次调用以来 floor(LifetimePoints) 跨过的整数边界数
//
// 例如累计点数从 41.7 变为 44.2，返回 3。
func (e *Engine) DrainFeedback() int {
	return e.feedback.Observe(e.state.LifetimePoints)
}

// OwnedCount 返回某个升级的已购数量
func (e *Engine) OwnedCount(id string) int {
	return e.state.OwnedCount(id)
}

// UpgradeCost 计算升级的当前价格：ceil(baseCost * costGrowth^owned)
//
// 返回：
//   - int64: 当前价格
//   - error: 升级不存在时返回 ErrUnknownUpgrade
func (e *Engine) UpgradeCost(id string) (int64, error) {
	u, ok := e.catalog.Lookup(id)
	if !ok {
		return 0, &PurchaseError{UpgradeID: id, Err: ErrUnknownUpgrade}
	}
	return CostAt(u, e.state.OwnedCount(id)), nil
}

// IsUnlocked 判断升级是否已解锁：floor(LifetimePoints) >= UnlockAt
func (e *Engine) IsUnlocked(id string) (bool, error) {
	u, ok := e.catalog.Lookup(id)
	if !ok {
		return false, &PurchaseError{UpgradeID: id, Err: ErrUnknownUpgrade}
	}
	return unlocked(u, e.state.LifetimePoints), nil
}

// Affordable 判断当前点数是否足够购买（不检查解锁状态）
func (e *Engine) Affordable(id string) (bool, error) {
	cost, err := e.UpgradeCost(id)
	if err != nil {
		return false, err
	}
	return e.state.Points >= float64(cost), nil
}

// Purchase 购买一个升级
//
// 按顺序检查：升级存在、已解锁、点数足够。
// 成功时扣除价格、已购数量加一并应用升级效果。
//
// 返回：
//   - Receipt: 购买回执（含显示名）
//   - error: *PurchaseError，包装 ErrUnknownUpgrade / ErrLocked / ErrInsufficientFunds
func (e *Engine) Purchase(id string) (Receipt, error) {
	u, ok := e.catalog.Lookup(id)
	if !ok {
		return Receipt{}, &PurchaseError{UpgradeID: id, Err: ErrUnknownUpgrade}
	}

	cost := CostAt(u, e.state.OwnedCount(id))

	if !unlocked(u, e.state.LifetimePoints) {
		return Receipt{}, &PurchaseError{UpgradeID: id, Cost: cost, UnlockAt: u.UnlockAt, Err: ErrLocked}
	}

	if e.state.Points < float64(cost) {
		return Receipt{}, &PurchaseError{UpgradeID: id, Cost: cost, UnlockAt: u.UnlockAt, Err: ErrInsufficientFunds}
	}

	e.state.Points -= float64(cost)
	e.state.Owned[id]++
	u.Effect.apply(e.state)

	return Receipt{
		UpgradeID: id,
		Name:      u.Name,
		Cost:      cost,
		Owned:     e.state.Owned[id],
	}, nil
}

// Upgrades 返回商店列表（按目录顺序）
func (e *Engine) Upgrades() []UpgradeView {
	views := make([]UpgradeView, 0, e.catalog.Len())
	for _, u := range e.catalog.upgrades {
		owned := e.state.OwnedCount(u.ID)
		cost := CostAt(u, owned)
		views = append(views, UpgradeView{
			Upgrade:    u,
			Owned:      owned,
			Cost:       cost,
			Unlocked:   unlocked(u, e.state.LifetimePoints),
			Affordable: e.state.Points >= float64(cost),
		})
	}
	return views
}

// Reset 恢复默认状态（不可撤销）
//
// 持久化数据的清除由调用方（Session）负责。
func (e *Engine) Reset() {
	e.state = NewState()
	e.feedback.Rebase(0)
}

// CostAt 计算拥有 owned 个时的价格
//
// 超出 int64 范围时返回 math.MaxInt64。
func CostAt(u Upgrade, owned int) int64 {
	if owned < 0 {
		owned = 0
	}
	cost := math.Ceil(u.BaseCost * math.Pow(u.CostGrowth, float64(owned)))
	if cost >= math.MaxInt64 || math.IsInf(cost, 0) || math.IsNaN(cost) {
		return math.MaxInt64
	}
	return int64(cost)
}

func unlocked(u Upgrade, lifetime float64) bool {
	return math.Floor(lifetime) >= u.UnlockAt
}
