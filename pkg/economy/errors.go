package economy

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownUpgrade 升级ID不在静态目录中（编程错误，UI 不应触发）
	ErrUnknownUpgrade = errors.New("unknown upgrade")
	// ErrLocked 累计点数未达到解锁门槛
	ErrLocked = errors.New("upgrade locked")
	// ErrInsufficientFunds 当前点数不足以支付价格
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// PurchaseError 购买失败的详细信息
//
// 通过 errors.Is 判断具体原因：
//
//	if errors.Is(err, economy.ErrLocked) { ... }
type PurchaseError struct {
	UpgradeID string
	Cost      int64   // 当时的价格（UnknownUpgrade 时为 0）
	UnlockAt  float64 // 解锁门槛（UnknownUpgrade 时为 0）
	Err       error
}

func (e *PurchaseError) Error() string {
	switch {
	case errors.Is(e.Err, ErrInsufficientFunds):
		return fmt.Sprintf("purchase %s: %v (cost %d)", e.UpgradeID, e.Err, e.Cost)
	case errors.Is(e.Err, ErrLocked):
		return fmt.Sprintf("purchase %s: %v (unlock at %v total)", e.UpgradeID, e.Err, e.UnlockAt)
	default:
		return fmt.Sprintf("purchase %s: %v", e.UpgradeID, e.Err)
	}
}

func (e *PurchaseError) Unwrap() error {
	return e.Err
}
