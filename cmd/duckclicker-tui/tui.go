package main

import (
	"fmt"
	"log"
	"math"
	"strconv"
	"time"

	"github.com/decker502/duckclicker/pkg/economy"
	"github.com/decker502/duckclicker/pkg/game"
	"github.com/gdamore/tcell/v2"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

const (
	footerTip = "Pro tip: leave it open and let auto-quacks do their thing."
	keysHelp  = "[space] quack  [1-9] buy  [r] reset  [m] sound  [q] quit"
)

var duckArt = []string{
	`    __     `,
	`  <(o )___ `,
	`   ( ._> / `,
	"    `---'  ",
}

var (
	styleDefault = tcell.StyleDefault
	styleTitle   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleMuted   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleDuck    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleBuy     = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleToast   = tcell.StyleDefault.Reverse(true)
	styleDanger  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// tui 终端版主循环
//
// 会话只在 run 所在的 goroutine 中访问；按键通过 channel 从
// PollEvent goroutine 传入。
type tui struct {
	screen   tcell.Screen
	session  *game.Session
	settings *game.SettingsManager // 可为 nil

	confirming bool // 正在等待重置确认
	squish     int  // 鸭子按下效果剩余帧数
	lastTick   time.Time
}

func newTUI(screen tcell.Screen, session *game.Session, settings *game.SettingsManager) *tui {
	return &tui{screen: screen, session: session, settings: settings}
}

// run 运行直到玩家退出
func (t *tui) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return // screen 已关闭
			}
			events <- ev
		}
	}()

	t.lastTick = time.Now()
	t.draw()
	for {
		select {
		case ev := <-events:
			if !t.handleEvent(ev) {
				return
			}
			t.draw()
		case now := <-ticker.C:
			t.tick(now)
			t.draw()
		}
	}
}

// tick 按真实经过的时间推进会话
func (t *tui) tick(now time.Time) {
	dt := now.Sub(t.lastTick).Seconds()
	t.lastTick = now
	if t.squish > 0 {
		t.squish--
	}
	t.session.Tick(dt)
}

// handleEvent 处理一个事件，返回 false 表示退出
func (t *tui) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

// handleKey 处理一次按键，返回 false 表示退出
func (t *tui) handleKey(k tcell.Key, r rune) bool {
	switch k {
	case tcell.KeyEscape:
		if t.confirming {
			t.answerReset(false)
			return true
		}
		return false
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
		return t.handleRune(r)
	}
	return true
}

func (t *tui) handleRune(r rune) bool {
	if t.confirming {
		switch r {
		case 'y', 'Y':
			t.answerReset(true)
		case 'n', 'N':
			t.answerReset(false)
		}
		return true
	}

	switch {
	case r == ' ':
		t.session.Click()
		t.squish = 6
	case r >= '1' && r <= '9':
		upgrades := t.session.Upgrades()
		if i := int(r - '1'); i < len(upgrades) {
			// 拒绝原因通过提示显示
			_, _ = t.session.Buy(upgrades[i].ID)
		}
	case r == 'r' || r == 'R':
		t.confirming = true
	case r == 'm' || r == 'M':
		t.toggleSound()
	case r == 'q' || r == 'Q':
		return false
	}
	return true
}

func (t *tui) answerReset(yes bool) {
	t.confirming = false
	t.session.Reset(game.ConfirmFunc(func(string) bool { return yes }))
}

func (t *tui) toggleSound() {
	if t.settings == nil {
		return
	}
	t.settings.ToggleSound()
	if err := t.settings.Save(); err != nil {
		log.Printf("[TUI] Warning: failed to save settings: %v", err)
	}
}

func (t *tui) soundEnabled() bool {
	return t.settings == nil || t.settings.Current().SoundEnabled
}

func (t *tui) draw() {
	s := t.screen
	s.Clear()

	state := t.session.Snapshot()
	y := 0
	drawString(s, 1, y, styleTitle, "Rubber Duck Clicker")
	drawString(s, 24, y, styleMuted, "Title: ")
	drawString(s, 31, y, styleToast, " "+t.session.Title()+" ")
	y += 2

	drawString(s, 1, y, styleDefault, statsLine(state))
	y += 2

	duckStyle := styleDuck
	if t.squish > 0 {
		duckStyle = duckStyle.Bold(true).Reverse(true)
	}
	for i, line := range duckArt {
		drawString(s, 4, y+i, duckStyle, line)
	}
	drawString(s, 18, y+1, styleMuted, "Click the duck to quack. Spend quacks on upgrades.")
	y += len(duckArt) + 1

	drawString(s, 1, y, styleTitle, "Upgrades")
	drawString(s, 11, y, styleMuted, "Unlocks are based on total quacks.")
	y++
	for i, u := range t.session.Upgrades() {
		style := styleDefault
		switch {
		case !u.Unlocked:
			style = styleMuted
		case u.Affordable:
			style = styleBuy
		}
		drawString(s, 1, y, style, shopLine(i, u))
		y++
	}
	y++

	if msg := t.session.Toast(); msg != "" {
		drawString(s, 1, y, styleToast, " "+msg+" ")
	}
	y += 2

	if t.confirming {
		drawString(s, 1, y, styleDanger, game.ResetPrompt+" (y/n)")
	} else {
		help := keysHelp
		if !t.soundEnabled() {
			help += "  (sound off)"
		}
		drawString(s, 1, y, styleMuted, help)
	}
	drawString(s, 1, y+1, styleMuted, footerTip)

	s.Show()
}

// statsLine 状态栏：点数和累计点数向下取整后显示
func statsLine(s *economy.State) string {
	return fmt.Sprintf("Quacks %-8s Total %-8s Per Click %-6s Auto / sec %s",
		economy.FormatCompact(math.Floor(s.Points)),
		economy.FormatCompact(math.Floor(s.LifetimePoints)),
		economy.FormatCompact(s.ActionPower),
		economy.FormatRate(s.AutoRate))
}

// shopLine 商店一行：编号、名称、描述、拥有数量、价格或解锁条件、按钮
func shopLine(i int, u economy.UpgradeView) string {
	price := "Cost: " + economy.FormatCompact(float64(u.Cost))
	button := "[Buy]"
	switch {
	case !u.Unlocked:
		price = "Unlock at " + strconv.FormatFloat(u.UnlockAt, 'f', -1, 64) + " total"
		button = "[Locked]"
	case !u.Affordable:
		button = "[Need more quacks]"
	}
	return fmt.Sprintf("%d  %-22s %-24s Owned: %-4d %-22s %s", i+1, u.Name, u.Description, u.Owned, price, button)
}

func drawString(s tcell.Screen, x, y int, style tcell.Style, str string) {
	for _, r := range str {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
