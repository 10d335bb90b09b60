// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"time"

	"github.com/decker502/duckclicker/pkg/config"
	"github.com/decker502/duckclicker/pkg/economy"
	"github.com/decker502/duckclicker/pkg/game"
	"github.com/decker502/duckclicker/pkg/scenes"
	"github.com/decker502/duckclicker/pkg/store"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// StoreKind 存档后端：gdata（默认）、sqlite 或 memory
	StoreKind store.Kind
	// DBPath SQLite 数据库路径（StoreKind 为 sqlite 时使用）
	DBPath string
	// CatalogPath 外部升级目录文件，为空则使用内置的 data/upgrades.yaml
	CatalogPath string
	// QuackSound 自定义叫声文件（.mp3/.ogg/.wav/.au），为空则使用合成叫声
	QuackSound string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	store           store.Store

	lastUpdate               time.Time
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
	closed                   bool
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	catalog, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("升级目录加载失败: %w", err)
	}
	log.Printf("[App] Loaded %d upgrades", catalog.Len())

	st, err := store.Open(store.Options{Kind: cfg.StoreKind, AppName: store.DefaultAppName, DBPath: cfg.DBPath})
	if err != nil {
		return nil, fmt.Errorf("存档初始化失败: %w", err)
	}

	gdataManager, err := store.ManagerFor(st, store.DefaultAppName)
	if err != nil {
		// 设置只在内存中生效
		log.Printf("[App] Warning: settings will not persist: %v", err)
	}
	settingsManager := game.NewSettingsManager(gdataManager)

	// 初始化音频上下文
	audioContext := audio.NewContext(game.SampleRate)
	audioManager := game.NewAudioManager(audioContext, settingsManager)
	if cfg.QuackSound != "" {
		if err := audioManager.LoadQuackFile(cfg.QuackSound); err != nil {
			// 自定义叫声失败不影响游戏，继续使用合成叫声
			log.Printf("[App] Warning: %v", err)
		}
	}
	log.Printf("[App] AudioManager initialized")

	session := game.NewSession(catalog, st, audioManager)

	clicker, err := scenes.NewClickerScene(session, settingsManager)
	if err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("场景初始化失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(clicker)

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		store:           st,
	}, nil
}

// loadCatalog 读取升级目录：指定了外部文件时从磁盘读取，否则读取内置资源
func loadCatalog(path string) (*economy.Catalog, error) {
	if path == "" {
		return config.LoadUpgradeCatalog(config.UpgradeCatalogPath)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read upgrade catalog %s: %w", path, err)
	}
	catalog, err := config.ParseUpgradeCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("invalid upgrade catalog in %s: %w", path, err)
	}
	return catalog, nil
}

// ApplyWindowSettings 设置窗口属性（桌面端在 RunGame 之前调用）
func (a *App) ApplyWindowSettings() {
	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.GameWindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetFullscreen(a.settingsManager.Current().Fullscreen)
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() {
		a.Shutdown()
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	a.sceneManager.Update(a.frameDelta(time.Now()))
	return nil
}

// frameDelta 返回距上一次 Update 的秒数（第一帧为 0）
//
// 使用真实经过的时间而不是固定的 1/60 秒，掉帧或窗口被拖动时
// 自动收益也按墙上时间累积。
func (a *App) frameDelta(now time.Time) float64 {
	if a.lastUpdate.IsZero() {
		a.lastUpdate = now
		return 0
	}
	dt := now.Sub(a.lastUpdate).Seconds()
	a.lastUpdate = now
	if dt < 0 {
		return 0
	}
	return dt
}

func (a *App) toggleFullscreen() {
	fullscreen := ebiten.IsFullscreen()
	if fullscreen {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}

	a.settingsManager.SetFullscreen(!fullscreen)
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	// 使用线性滤波绘制游戏画面，提高缩放质量
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Shutdown 保存存档并关闭存储，可重复调用
func (a *App) Shutdown() {
	if a.closed {
		return
	}
	a.closed = true

	a.sceneManager.SaveOnExit()
	if err := a.store.Close(); err != nil {
		log.Printf("[App] Warning: failed to close store: %v", err)
	}
	log.Printf("[App] Shutdown complete")
}
