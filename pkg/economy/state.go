package economy

// 默认状态值
const (
	DefaultActionPower = 1.0
	DefaultAutoRate    = 0.0
)

// State 游戏经济状态（由 Engine 原地修改）
//
// LifetimePoints 只增不减；Points 与 LifetimePoints 增加相同的数值，
// 购买时额外减少。
type State struct {
	Points         float64        // 当前可花费点数，永不为负
	LifetimePoints float64        // 累计获得点数，驱动解锁和称号
	ActionPower    float64        // 每次点击获得的点数，初始为 1
	AutoRate       float64        // 每秒自动获得的点数，初始为 0
	Owned          map[string]int // 升级ID -> 已购数量，仅在购买后出现
}

// NewState 返回首次运行时的默认状态
func NewState() *State {
	return &State{
		Points:         0,
		LifetimePoints: 0,
		ActionPower:    DefaultActionPower,
		AutoRate:       DefaultAutoRate,
		Owned:          map[string]int{},
	}
}

// Clone 返回状态的深拷贝
func (s *State) Clone() *State {
	c := *s
	c.Owned = make(map[string]int, len(s.Owned))
	for id, n := range s.Owned {
		c.Owned[id] = n
	}
	return &c
}

// OwnedCount 返回某个升级的已购数量，未购买时为 0
func (s *State) OwnedCount(id string) int {
	return s.Owned[id]
}

// earn 同时增加当前点数和累计点数
func (s *State) earn(amount float64) {
	s.Points += amount
	s.LifetimePoints += amount
}
