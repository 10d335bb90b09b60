package economy

import "math"

// titleBand 称号门槛
type titleBand struct {
	min   float64
	title string
}

// titleBands 按门槛从高到低排列，返回第一个满足的称号
var titleBands = []titleBand{
	{5000, "Duck Overlord"},
	{2000, "Senior Quacker"},
	{800, "Principal Duck"},
	{250, "Rubber Duck Consultant"},
	{50, "Junior Quacker"},
}

// DefaultTitle 累计点数低于所有门槛时的称号
const DefaultTitle = "Intern Duck"

// TitleFor 根据累计点数（向下取整）返回称号
func TitleFor(lifetime float64) string {
	t := math.Floor(lifetime)
	for _, b := range titleBands {
		if t >= b.min {
			return b.title
		}
	}
	return DefaultTitle
}
