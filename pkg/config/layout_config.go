package config

// 布局配置常量
// 本文件定义了点击场景中各 UI 元素的位置和尺寸（逻辑像素）

// Window Configuration (窗口配置)
const (
	// GameWindowWidth 逻辑屏幕宽度
	GameWindowWidth = 960
	// GameWindowHeight 逻辑屏幕高度
	GameWindowHeight = 640
	// GameWindowTitle 窗口标题
	GameWindowTitle = "Rubber Duck Clicker"
)

// Header Configuration (标题栏配置)
const (
	HeaderX     = 32.0
	HeaderY     = 24.0
	TitleSize   = 30.0 // 标题字号
	BodySize    = 16.0 // 正文字号
	SmallSize   = 13.0 // 次要文字字号
	StatBoxX    = 420.0
	StatBoxY    = 20.0
	StatBoxW    = 124.0
	StatBoxH    = 58.0
	StatBoxGap  = 8.0
	StatBoxNums = 4
)

// Duck Configuration (鸭子按钮配置)
const (
	// DuckCenterX 鸭子中心X坐标
	DuckCenterX = 250.0
	// DuckCenterY 鸭子中心Y坐标
	DuckCenterY = 330.0
	// DuckRadius 鸭子身体半径，同时是可点击区域半径
	DuckRadius = 105.0
	// DuckSquishDuration 点击后挤压动画持续时间（秒）
	DuckSquishDuration = 0.09
	// DuckSquishScale 挤压时的缩放比例
	DuckSquishScale = 0.92
)

// Shop Configuration (商店配置)
const (
	ShopX        = 520.0
	ShopY        = 110.0
	ShopW        = 410.0
	ShopHeaderH  = 52.0
	ShopRowH     = 72.0
	ShopRowGap   = 6.0
	BuyButtonW   = 132.0
	BuyButtonH   = 30.0
	ShopPaddingX = 12.0
)

// Toast / Dialog Configuration (提示和对话框配置)
const (
	// ToastY 购买提示的纵坐标，显示时长见 game.ToastDuration
	ToastY = 480.0

	ResetButtonX = 32.0
	ResetButtonY = 588.0
	ResetButtonW = 120.0
	ResetButtonH = 30.0

	DialogW       = 380.0
	DialogH       = 150.0
	DialogButtonW = 110.0
	DialogButtonH = 34.0
)

// Floating Text Configuration (上浮文字配置)
const (
	// FloatingTextLifetime 点击/购买时上浮文字存在的秒数
	FloatingTextLifetime = 0.8
	// FloatingTextRiseSpeed 上浮速度（像素/秒）
	FloatingTextRiseSpeed = 60.0
)
