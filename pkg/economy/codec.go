package economy

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// savedState 持久化的 JSON 结构（字段名与旧版网页存档保持一致）
type savedState struct {
	Points      float64        `json:"points"`
	TotalQuacks float64        `json:"totalQuacks"`
	ClickPower  float64        `json:"clickPower"`
	AutoQps     float64        `json:"autoQps"`
	Owned       map[string]int `json:"owned"`
}

// MarshalState 将完整状态序列化为存档 JSON
func MarshalState(s *State) ([]byte, error) {
	owned := make(map[string]int, len(s.Owned))
	for id, n := range s.Owned {
		if n > 0 {
			owned[id] = n
		}
	}
	return json.Marshal(savedState{
		Points:      s.Points,
		TotalQuacks: s.LifetimePoints,
		ClickPower:  s.ActionPower,
		AutoQps:     s.AutoRate,
		Owned:       owned,
	})
}

// LoadState 从存档 JSON 恢复状态，永不失败
//
// 缺失、无法解析或非对象的输入返回默认状态。每个字段单独解析：
// 类型错误、负数、非有限值都回退到该字段的默认值；未知字段被忽略。
//
//   - points：缺失时读取旧字段 quacks，默认 0
//   - totalQuacks：缺失时等于 points
//   - clickPower：默认 1，小于 1 视为无效
//   - autoQps：默认 0
//   - owned：只保留非负整数计数
func LoadState(raw []byte) *State {
	s := NewState()
	if len(bytes.TrimSpace(raw)) == 0 {
		return s
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return s
	}

	if v, ok := decodeNumber(fields["points"]); ok && v >= 0 {
		s.Points = v
	} else if v, ok := decodeNumber(fields["quacks"]); ok && v >= 0 {
		s.Points = v
	}

	s.LifetimePoints = s.Points
	if v, ok := decodeNumber(fields["totalQuacks"]); ok && v >= 0 {
		s.LifetimePoints = v
	}

	if v, ok := decodeNumber(fields["clickPower"]); ok && v >= DefaultActionPower {
		s.ActionPower = v
	}

	if v, ok := decodeNumber(fields["autoQps"]); ok && v >= 0 {
		s.AutoRate = v
	}

	s.Owned = decodeOwned(fields["owned"])
	return s
}

// decodeNumber 解析 JSON 数字或数字字符串
func decodeNumber(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 || string(bytes.TrimSpace(raw)) == "null" {
		return 0, false
	}

	var v float64
	if err := json.Unmarshal(raw, &v); err == nil {
		return v, isFinite(v)
	}

	var str string
	if err := json.Unmarshal(raw, &str); err != nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
	if err != nil {
		return 0, false
	}
	return v, isFinite(v)
}

func decodeOwned(raw json.RawMessage) map[string]int {
	owned := map[string]int{}
	if len(raw) == 0 {
		return owned
	}

	var entries map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return owned
	}

	for id, val := range entries {
		n, ok := decodeNumber(val)
		if !ok || n <= 0 || n != math.Trunc(n) || n > math.MaxInt32 {
			continue
		}
		owned[id] = int(n)
	}
	return owned
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
