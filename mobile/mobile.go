//go:build mobile

// Package mobile 是 ebitenmobile 的绑定入口（Android .aar / iOS .xcframework）
//
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.duckclicker -o build/android/duckclicker.aar ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/ios/DuckClicker.xcframework ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/duckclicker/data"
	"github.com/decker502/duckclicker/pkg/app"
	"github.com/decker502/duckclicker/pkg/embedded"
	"github.com/decker502/duckclicker/pkg/store"
)

func init() {
	embedded.Init(data.FS)

	// 移动端日志进入系统日志（logcat / Console），始终开启
	gameApp, err := app.NewApp(app.Config{Verbose: true, StoreKind: store.KindGdata})
	if err != nil {
		// 存档目录不可用时仍然让玩家能玩，只是不保存进度
		log.Printf("[Mobile] gdata store unavailable, progress will not persist: %v", err)
		gameApp, err = app.NewApp(app.Config{Verbose: true, StoreKind: store.KindMemory})
	}
	if err != nil {
		log.Fatalf("[Mobile] failed to start: %v", err)
	}

	mobile.SetGame(gameApp)
}

// Dummy 让 ebitenmobile 能识别这个包
func Dummy() {}
