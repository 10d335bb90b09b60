package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/decker502/duckclicker/data"
	"github.com/decker502/duckclicker/pkg/app"
	"github.com/decker502/duckclicker/pkg/embedded"
	"github.com/decker502/duckclicker/pkg/store"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	storeKind := flag.String("store", string(store.KindGdata), "存档后端: gdata, sqlite 或 memory")
	dbPath := flag.String("db", "duckclicker.db", "SQLite 数据库路径（-store sqlite 时使用）")
	catalogPath := flag.String("catalog", "", "外部升级目录 YAML 文件（默认使用内置目录）")
	quackSound := flag.String("quack", "", "自定义叫声文件 (.mp3/.ogg/.wav/.au)")
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(data.FS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:     *verbose,
		StoreKind:   store.Kind(*storeKind),
		DBPath:      *dbPath,
		CatalogPath: *catalogPath,
		QuackSound:  *quackSound,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "游戏初始化失败: %v\n", err)
		os.Exit(1)
	}

	gameApp.ApplyWindowSettings()

	err = ebiten.RunGame(gameApp)
	gameApp.Shutdown()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		fmt.Fprintf(os.Stderr, "游戏异常退出: %v\n", err)
		os.Exit(1)
	}
}
