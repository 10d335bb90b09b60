package economy

import (
	"math"
	"math/big"
	"strconv"
)

var compactUnits = []string{"K", "M", "B", "T"}

// FormatCompact 将大数字格式化为紧凑形式
//
//	999     -> "999"
//	1234    -> "1.23K"
//	15400   -> "15.4K"
//	999999  -> "1000K"
//
// 小于 1000 时向下取整显示。否则每次除以 1000 并选择单位，
// 直到数值小于 1000 或已到最大单位 "T"。缩放后的值 < 10 保留两位小数，
// < 100 保留一位，否则不保留小数。
//
// 注意：像 999999 这样缩放后为 999.999 的值会四舍五入成 "1000K"，
// 不会进位到下一个单位，这是有意保留的行为。
// NaN 显示为 "0"，正负无穷直接显示为 "Inf" / "-Inf"，不附加单位。
func FormatCompact(n float64) string {
	switch {
	case math.IsNaN(n):
		return "0"
	case math.IsInf(n, 1):
		return "Inf"
	case math.IsInf(n, -1):
		return "-Inf"
	}
	if n < 1000 {
		return strconv.FormatFloat(math.Floor(n), 'f', 0, 64)
	}

	num := n
	i := -1
	for num >= 1000 && i < len(compactUnits)-1 {
		num /= 1000
		i++
	}

	decimals := 0
	switch {
	case num < 10:
		decimals = 2
	case num < 100:
		decimals = 1
	}
	return toFixed(num, decimals) + compactUnits[i]
}

// FormatRate 格式化每秒自动收益，固定一位小数（0.5 -> "0.5"，3 -> "3.0"）
func FormatRate(r float64) string {
	return toFixed(r, 1)
}

// toFixed 保留 decimals 位小数，恰好落在中点时向上取（远离零）
//
// strconv 在精确中点上使用银行家舍入（1.125 -> "1.12"），
// 这里改为 1.125 -> "1.13"。
func toFixed(x float64, decimals int) string {
	if math.IsInf(x, 0) || math.IsNaN(x) || x < 0 {
		return strconv.FormatFloat(x, 'f', decimals, 64)
	}

	scaled := new(big.Float).SetPrec(256).SetFloat64(x)
	scaled.Mul(scaled, new(big.Float).SetPrec(256).SetFloat64(math.Pow10(decimals)))

	whole, _ := scaled.Int(nil)
	frac := new(big.Float).SetPrec(256).Sub(scaled, new(big.Float).SetPrec(256).SetInt(whole))
	if frac.Cmp(big.NewFloat(0.5)) != 0 {
		return strconv.FormatFloat(x, 'f', decimals, 64)
	}

	whole.Add(whole, big.NewInt(1))
	digits := whole.String()
	if decimals == 0 {
		return digits
	}
	for len(digits) <= decimals {
		digits = "0" + digits
	}
	cut := len(digits) - decimals
	return digits[:cut] + "." + digits[cut:]
}
