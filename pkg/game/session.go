package game

import (
	"errors"
	"log"

	"github.com/decker502/duckclicker/pkg/economy"
	"github.com/decker502/duckclicker/pkg/store"
)

// 提示文字
const (
	ToastNotEnough    = "Not enough quacks"
	ToastLocked       = "Locked"
	ToastBoughtPrefix = "Bought: "
	ResetPrompt       = "Reset all duck progress?"
)

// AutoSaveInterval 自动累积产生的变化最多每隔多少秒写一次存档
// 点击、购买、重置会立即写入
const AutoSaveInterval = 1.0

// ToastDuration 提示显示时长（秒）
const ToastDuration = 0.9

// FeedbackSink 接收叫声反馈（每跨过一个整数累计点数触发一次）
type FeedbackSink interface {
	Quack(n int)
}

// Confirmer 不可撤销操作前的确认
type Confirmer interface {
	Confirm(message string) bool
}

// ConfirmFunc 函数形式的 Confirmer
type ConfirmFunc func(message string) bool

// Confirm 实现 Confirmer
func (f ConfirmFunc) Confirm(message string) bool {
	return f(message)
}

// Session 一局游戏会话
//
// 职责：
//   - 持有成长引擎、键值存储和反馈接收者
//   - 每次状态变更后写入存档（写入失败只记录日志，下一次变更会重试）
//   - 管理购买后的短暂提示
//
// 只在帧循环所在的单个线程中使用，不加锁。
type Session struct {
	engine *economy.Engine
	store  store.Store
	sink   FeedbackSink

	dirty         bool    // 自动累积后尚未写入存档
	sinceLastSave float64 // 距上次写入的秒数

	toast     string
	toastLeft float64
}

// NewSession 创建会话并从存储加载存档
//
// 存储为 nil 时不持久化；读取失败或存档损坏时使用默认状态。
//
// 参数：
//   - catalog: 静态升级目录
//   - st: 键值存储，可为 nil
//   - sink: 叫声反馈接收者，可为 nil
func NewSession(catalog *economy.Catalog, st store.Store, sink FeedbackSink) *Session {
	state := loadFromStore(st)
	return &Session{
		engine: economy.NewEngine(catalog, state),
		store:  st,
		sink:   sink,
	}
}

func loadFromStore(st store.Store) *economy.State {
	if st == nil {
		return economy.NewState()
	}

	raw, ok, err := st.Get(store.SaveKey)
	if err != nil {
		log.Printf("[Session] Warning: failed to read save: %v (starting fresh)", err)
		return economy.NewState()
	}
	if !ok {
		log.Printf("[Session] No save found, starting fresh")
		return economy.NewState()
	}

	state := economy.LoadState(raw)
	log.Printf("[Session] Save loaded: points=%.2f total=%.2f power=%v auto=%v",
		state.Points, state.LifetimePoints, state.ActionPower, state.AutoRate)
	return state
}

// Snapshot 返回当前状态的拷贝
func (s *Session) Snapshot() *economy.State {
	return s.engine.Snapshot()
}

// Upgrades 返回商店列表
func (s *Session) Upgrades() []economy.UpgradeView {
	return s.engine.Upgrades()
}

// Title 返回当前称号
func (s *Session) Title() string {
	return economy.TitleFor(s.engine.Snapshot().LifetimePoints)
}

// Click 点击鸭子一次
func (s *Session) Click() {
	s.engine.RecordAction()
	s.emitFeedback()
	s.persist()
}

// Tick 每帧调用一次
//
// 参数：
//   - dt: 距上一帧经过的秒数
func (s *Session) Tick(dt float64) {
	if dt > 0 {
		if s.toastLeft > 0 {
			s.toastLeft -= dt
			if s.toastLeft <= 0 {
				s.toast = ""
				s.toastLeft = 0
			}
		}
		s.sinceLastSave += dt
	}

	if s.engine.Accrue(dt) > 0 {
		s.dirty = true
		s.emitFeedback()
	}

	if s.dirty && s.sinceLastSave >= AutoSaveInterval {
		s.persist()
	}
}

// Buy 购买一个升级
//
// 成功时提示 "Bought: <名称>"；点数不足或未解锁时提示拒绝原因。
//
// 返回：
//   - economy.Receipt: 购买回执
//   - error: 来自 economy.Engine.Purchase 的 *economy.PurchaseError
func (s *Session) Buy(id string) (economy.Receipt, error) {
	receipt, err := s.engine.Purchase(id)
	if err != nil {
		switch {
		case errors.Is(err, economy.ErrInsufficientFunds):
			s.showToast(ToastNotEnough)
		case errors.Is(err, economy.ErrLocked):
			s.showToast(ToastLocked)
		default:
			log.Printf("[Session] Error: %v", err)
		}
		return economy.Receipt{}, err
	}

	log.Printf("[Session] Bought %s (#%d) for %d", receipt.UpgradeID, receipt.Owned, receipt.Cost)
	s.showToast(ToastBoughtPrefix + receipt.Name)
	s.persist()
	return receipt, nil
}

// Reset 重置所有进度（不可撤销）
//
// 只有 confirm 返回 true 时才执行；同时删除已保存的存档。
//
// 返回：
//   - bool: 是否执行了重置
func (s *Session) Reset(confirm Confirmer) bool {
	if confirm == nil || !confirm.Confirm(ResetPrompt) {
		return false
	}

	s.engine.Reset()
	s.dirty = false
	s.sinceLastSave = 0
	s.toast = ""
	s.toastLeft = 0

	if s.store != nil {
		if err := s.store.Remove(store.SaveKey); err != nil {
			log.Printf("[Session] Warning: failed to remove save: %v", err)
		}
	}
	log.Printf("[Session] Progress reset")
	return true
}

// Flush 立即写入存档（退出时调用）
func (s *Session) Flush() {
	s.persist()
}

// Toast 返回当前提示文字，没有提示时为空
func (s *Session) Toast() string {
	return s.toast
}

func (s *Session) showToast(msg string) {
	s.toast = msg
	s.toastLeft = ToastDuration
}

func (s *Session) emitFeedback() {
	n := s.engine.DrainFeedback()
	if n > 0 && s.sink != nil {
		s.sink.Quack(n)
	}
}

// persist 写入完整状态；失败只记录日志
func (s *Session) persist() {
	s.dirty = false
	s.sinceLastSave = 0
	if s.store == nil {
		return
	}

	data, err := economy.MarshalState(s.engine.Snapshot())
	if err != nil {
		log.Printf("[Session] Warning: failed to encode save: %v", err)
		return
	}
	if err := s.store.Set(store.SaveKey, data); err != nil {
		log.Printf("[Session] Warning: failed to write save: %v", err)
	}
}
