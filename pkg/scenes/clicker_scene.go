// Package scenes 提供 Ebitengine 场景实现
package scenes

import (
	"image/color"
	"log"

	"github.com/decker502/duckclicker/pkg/components"
	"github.com/decker502/duckclicker/pkg/config"
	"github.com/decker502/duckclicker/pkg/ecs"
	"github.com/decker502/duckclicker/pkg/economy"
	"github.com/decker502/duckclicker/pkg/entities"
	"github.com/decker502/duckclicker/pkg/game"
	"github.com/decker502/duckclicker/pkg/systems"
	"github.com/decker502/duckclicker/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 配色
var (
	colorBackground = color.RGBA{R: 255, G: 248, B: 220, A: 255}
	colorPanel      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorBorder     = color.RGBA{R: 226, G: 205, B: 140, A: 255}
	colorText       = color.RGBA{R: 51, G: 41, B: 20, A: 255}
	colorMuted      = color.RGBA{R: 128, G: 112, B: 80, A: 255}
	colorDuck       = color.RGBA{R: 255, G: 214, B: 10, A: 255}
	colorDuckShade  = color.RGBA{R: 240, G: 180, B: 0, A: 255}
	colorBeak       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	colorEye        = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	colorButton     = color.RGBA{R: 255, G: 196, B: 0, A: 255}
	colorButtonHot  = color.RGBA{R: 255, G: 170, B: 0, A: 255}
	colorDisabled   = color.RGBA{R: 225, G: 220, B: 205, A: 255}
	colorDanger     = color.RGBA{R: 214, G: 69, B: 65, A: 255}
	colorToast      = color.RGBA{R: 51, G: 41, B: 20, A: 230}
	colorOverlay    = color.RGBA{R: 0, G: 0, B: 0, A: 140}
	colorGain       = color.RGBA{R: 196, G: 120, B: 0, A: 255}
)

// ClickerScene 点击游戏主场景
//
// 职责：
//   - 把指针和键盘输入转成 Session 操作（点击鸭子、购买、重置）
//   - 每帧推进 Session（自动收益、提示计时、存档节流）
//   - 绘制鸭子、状态栏、称号、商店、提示和重置确认框
//   - 通过 ECS 驱动点击 "+N" 和购买 "-花费" 的上浮文字
type ClickerScene struct {
	session  *game.Session
	settings *game.SettingsManager // 可为 nil
	fonts    *fontSet

	entityManager      *ecs.EntityManager
	lifetimeSystem     *systems.LifetimeSystem
	floatingTextSystem *systems.FloatingTextSystem

	squishLeft float64 // 挤压动画剩余秒数
	hoverRow   int     // 指针悬停的购买按钮行号，-1 表示没有
	dialog     confirmDialog
}

// NewClickerScene 创建点击场景
//
// 参数：
//   - session: 游戏会话
//   - settings: 设置管理器（用于 M 键切换叫声），可为 nil
func NewClickerScene(session *game.Session, settings *game.SettingsManager) (*ClickerScene, error) {
	fonts, err := loadFonts()
	if err != nil {
		return nil, err
	}
	em := ecs.NewEntityManager()
	return &ClickerScene{
		session:            session,
		settings:           settings,
		fonts:              fonts,
		entityManager:      em,
		lifetimeSystem:     systems.NewLifetimeSystem(em),
		floatingTextSystem: systems.NewFloatingTextSystem(em, fonts.bold),
		hoverRow:           -1,
	}, nil
}

// Update 处理输入并推进会话
func (s *ClickerScene) Update(deltaTime float64) {
	pointer := utils.PollPointer()
	s.hoverRow = shopRowAt(pointer.X, pointer.Y, len(s.session.Upgrades()))
	if pointer.Pressed {
		s.handlePointer(pointer.X, pointer.Y)
	}
	s.handleKeys()

	s.advance(deltaTime)
}

// advance 推进动画计时和会话
func (s *ClickerScene) advance(deltaTime float64) {
	if s.squishLeft > 0 {
		s.squishLeft -= deltaTime
	}
	s.session.Tick(deltaTime)

	s.floatingTextSystem.Update(deltaTime)
	s.lifetimeSystem.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()
}

// handlePointer 处理一次点击或触摸
func (s *ClickerScene) handlePointer(x, y float64) {
	if s.dialog.open {
		switch s.dialog.hit(x, y) {
		case dialogYes:
			s.answerReset(true)
		case dialogNo:
			s.answerReset(false)
		}
		return
	}

	switch {
	case duckHit(x, y):
		s.clickDuck(x, y)
	case resetButtonRect().Contains(x, y):
		s.requestReset()
	default:
		if row := shopRowAt(x, y, len(s.session.Upgrades())); row >= 0 {
			s.buyRow(row)
		}
	}
}

// handleKeys 键盘快捷键：空格点击，数字键购买，R 重置，M 开关叫声
func (s *ClickerScene) handleKeys() {
	if s.dialog.open {
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyY), inpututil.IsKeyJustPressed(ebiten.KeyEnter):
			s.answerReset(true)
		case inpututil.IsKeyJustPressed(ebiten.KeyN), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
			s.answerReset(false)
		}
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.clickDuck(config.DuckCenterX, config.DuckCenterY-config.DuckRadius*0.5)
	}
	for i := 0; i < 9; i++ {
		if inpututil.IsKeyJustPressed(ebiten.Key1 + ebiten.Key(i)) {
			s.buyRow(i)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.requestReset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		s.toggleSound()
	}
}

// clickDuck 点击鸭子，并在 (x, y) 处弹出本次获得的点数
func (s *ClickerScene) clickDuck(x, y float64) {
	gain := s.session.Snapshot().ActionPower
	s.session.Click()
	s.squishLeft = config.DuckSquishDuration
	entities.NewFloatingTextEntity(s.entityManager, x, y, "+"+economy.FormatCompact(gain), colorGain)
}

// buyRow 购买商店第 row 行的升级；行号越界时忽略
func (s *ClickerScene) buyRow(row int) {
	upgrades := s.session.Upgrades()
	if row < 0 || row >= len(upgrades) {
		return
	}
	// 拒绝原因已经通过提示显示给玩家
	receipt, err := s.session.Buy(upgrades[row].ID)
	if err != nil {
		return
	}
	cx, cy := buyButtonRect(row).Center()
	entities.NewFloatingTextEntity(s.entityManager, cx, cy-config.BuyButtonH, "-"+economy.FormatCompact(float64(receipt.Cost)), colorDanger)
}

func (s *ClickerScene) requestReset() {
	s.dialog.show(game.ResetPrompt)
}

// answerReset 关闭确认框，并把玩家的选择交给 Session.Reset
func (s *ClickerScene) answerReset(yes bool) {
	s.dialog.close()
	if s.session.Reset(game.ConfirmFunc(func(string) bool { return yes })) {
		s.squishLeft = 0
		for _, id := range ecs.GetEntitiesWith1[*components.LifetimeComponent](s.entityManager) {
			s.entityManager.DestroyEntity(id)
		}
		s.entityManager.RemoveMarkedEntities()
	}
}

func (s *ClickerScene) toggleSound() {
	if s.settings == nil {
		return
	}
	enabled := s.settings.ToggleSound()
	if err := s.settings.Save(); err != nil {
		log.Printf("[ClickerScene] Warning: failed to save settings: %v", err)
	}
	log.Printf("[ClickerScene] Sound enabled: %v", enabled)
}

// SaveOnExit 实现 game.Saveable，退出前写入存档
func (s *ClickerScene) SaveOnExit() {
	s.session.Flush()
}

// Draw 绘制场景
func (s *ClickerScene) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	state := s.session.Snapshot()
	s.drawHeader(screen, state)
	s.drawDuck(screen)
	s.drawShop(screen, s.session.Upgrades())
	s.drawFooter(screen)
	s.floatingTextSystem.Draw(screen)
	s.drawToast(screen)

	if s.dialog.open {
		s.drawDialog(screen)
	}
}

func (s *ClickerScene) drawHeader(screen *ebiten.Image, state *economy.State) {
	drawText(screen, config.GameWindowTitle, s.fonts.title, config.HeaderX, config.HeaderY, colorText)

	// 称号
	y := config.HeaderY + 44
	drawText(screen, "Title:", s.fonts.body, config.HeaderX, y+4, colorMuted)
	title := s.session.Title()
	pill := utils.Rect{X: config.HeaderX + utils.MeasureText("Title:", s.fonts.body) + 8, Y: y, W: utils.MeasureText(title, s.fonts.bold) + 24, H: 26}
	fillRect(screen, pill, colorButton)
	drawTextCentered(screen, title, s.fonts.bold, pill, colorText)

	values := statValues(state)
	for i := range statLabels {
		r := statBoxRect(i)
		fillRect(screen, r, colorPanel)
		strokeRect(screen, r, colorBorder)
		drawText(screen, statLabels[i], s.fonts.small, r.X+10, r.Y+8, colorMuted)
		drawText(screen, values[i], s.fonts.bold, r.X+10, r.Y+30, colorText)
	}
}

func (s *ClickerScene) drawDuck(screen *ebiten.Image) {
	scale := duckScale(s.squishLeft)
	cx, cy := float32(config.DuckCenterX), float32(config.DuckCenterY)
	r := float32(config.DuckRadius * scale)

	// 身体
	vector.DrawFilledCircle(screen, cx, cy+4, r, colorDuckShade, true)
	vector.DrawFilledCircle(screen, cx, cy, r, colorDuck, true)
	// 头
	hx, hy, hr := cx+r*0.35, cy-r*0.55, r*0.48
	vector.DrawFilledCircle(screen, hx, hy, hr, colorDuck, true)
	// 嘴
	vector.DrawFilledRect(screen, hx+hr*0.6, hy, hr*0.7, hr*0.3, colorBeak, true)
	// 眼睛
	vector.DrawFilledCircle(screen, hx+hr*0.3, hy-hr*0.3, hr*0.12, colorEye, true)

	hint := utils.Rect{X: config.DuckCenterX - 200, Y: config.DuckCenterY + config.DuckRadius + 16, W: 400, H: 20}
	drawTextCentered(screen, duckHint, s.fonts.body, hint, colorMuted)
}

func (s *ClickerScene) drawShop(screen *ebiten.Image, upgrades []economy.UpgradeView) {
	drawText(screen, shopTitle, s.fonts.bold, config.ShopX, config.ShopY+6, colorText)
	drawText(screen, shopSub, s.fonts.small, config.ShopX, config.ShopY+28, colorMuted)

	descWidth := config.ShopW - config.BuyButtonW - 3*config.ShopPaddingX
	for i, u := range upgrades {
		row := shopRowRect(i)
		fillRect(screen, row, colorPanel)
		strokeRect(screen, row, colorBorder)

		x := row.X + config.ShopPaddingX
		nameColor := colorText
		if !u.Unlocked {
			nameColor = colorMuted
		}
		drawText(screen, u.Name, s.fonts.bold, x, row.Y+8, nameColor)
		drawText(screen, ownedLine(u), s.fonts.small, x+utils.MeasureText(u.Name, s.fonts.bold)+10, row.Y+11, colorMuted)

		lines := utils.WrapText(u.Description, s.fonts.small, descWidth, 2)
		for j, line := range lines {
			drawText(screen, line, s.fonts.small, x, row.Y+28+float64(j)*14, colorMuted)
		}
		drawText(screen, costLine(u), s.fonts.small, x, row.Y+row.H-20, colorText)

		btn := buyButtonRect(i)
		label := buyLabel(u)
		switch {
		case label != buyLabelBuy:
			fillRect(screen, btn, colorDisabled)
		case s.hoverRow == i:
			fillRect(screen, btn, colorButtonHot)
		default:
			fillRect(screen, btn, colorButton)
		}
		drawTextCentered(screen, label, s.fonts.small, btn, colorText)
	}
}

func (s *ClickerScene) drawFooter(screen *ebiten.Image) {
	reset := resetButtonRect()
	fillRect(screen, reset, colorDanger)
	drawTextCentered(screen, "Reset", s.fonts.bold, reset, colorPanel)

	tip := footerTip
	if s.settings != nil && !s.settings.Current().SoundEnabled {
		tip += "  (sound off, M to toggle)"
	}
	drawText(screen, tip, s.fonts.small, reset.X, reset.Y-28, colorMuted)
}

func (s *ClickerScene) drawToast(screen *ebiten.Image) {
	msg := s.session.Toast()
	if msg == "" {
		return
	}
	w := utils.MeasureText(msg, s.fonts.body) + 40
	r := utils.Rect{X: config.DuckCenterX - w/2, Y: config.ToastY, W: w, H: 34}
	fillRect(screen, r, colorToast)
	drawTextCentered(screen, msg, s.fonts.body, r, colorPanel)
}

func (s *ClickerScene) drawDialog(screen *ebiten.Image) {
	fillRect(screen, utils.Rect{W: config.GameWindowWidth, H: config.GameWindowHeight}, colorOverlay)

	panel := s.dialog.panelRect()
	fillRect(screen, panel, colorPanel)
	strokeRect(screen, panel, colorBorder)
	msg := utils.Rect{X: panel.X, Y: panel.Y + 24, W: panel.W, H: 40}
	drawTextCentered(screen, s.dialog.message, s.fonts.bold, msg, colorText)

	yes, no := s.dialog.yesRect(), s.dialog.noRect()
	fillRect(screen, yes, colorDanger)
	drawTextCentered(screen, "Yes", s.fonts.bold, yes, colorPanel)
	fillRect(screen, no, colorDisabled)
	drawTextCentered(screen, "No", s.fonts.bold, no, colorText)
}

// drawText 在 (x, y) 处绘制文字，(x, y) 为文字左上角
func drawText(screen *ebiten.Image, str string, face *text.GoTextFace, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// drawTextCentered 在矩形中居中绘制文字
func drawTextCentered(screen *ebiten.Image, str string, face *text.GoTextFace, r utils.Rect, clr color.Color) {
	cx, cy := r.Center()
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, str, face, op)
}

func fillRect(screen *ebiten.Image, r utils.Rect, clr color.Color) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

func strokeRect(screen *ebiten.Image, r utils.Rect, clr color.Color) {
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, clr, false)
}
