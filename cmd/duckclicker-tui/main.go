// duckclicker-tui 终端版 Rubber Duck Clicker
//
// 与桌面版共用存档（同一个 gdata 应用目录和存档键）、升级目录和设置。
//
// 用法：
//
//	go run ./cmd/duckclicker-tui
//	go run ./cmd/duckclicker-tui -store sqlite -db duckclicker.db
//	go run ./cmd/duckclicker-tui -log tui.log    # 详细日志写入文件
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/duckclicker/data"
	"github.com/decker502/duckclicker/pkg/config"
	"github.com/decker502/duckclicker/pkg/embedded"
	"github.com/decker502/duckclicker/pkg/game"
	"github.com/decker502/duckclicker/pkg/store"
	"github.com/gdamore/tcell/v2"
)

func main() {
	logFile := flag.String("log", "", "详细日志输出文件（终端被界面占用，日志不能写到 stderr）")
	storeKind := flag.String("store", string(store.KindGdata), "存档后端: gdata, sqlite 或 memory")
	dbPath := flag.String("db", "duckclicker.db", "SQLite 数据库路径（-store sqlite 时使用）")
	flag.Parse()

	if err := setupLogging(*logFile); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}

	if err := run(store.Kind(*storeKind), *dbPath); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func setupLogging(path string) error {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	log.SetOutput(f)
	return nil
}

func run(kind store.Kind, dbPath string) error {
	embedded.Init(data.FS)

	catalog, err := config.LoadUpgradeCatalog(config.UpgradeCatalogPath)
	if err != nil {
		return fmt.Errorf("failed to load upgrades: %w", err)
	}

	st, err := store.Open(store.Options{Kind: kind, AppName: store.DefaultAppName, DBPath: dbPath})
	if err != nil {
		return fmt.Errorf("failed to open save store: %w", err)
	}
	defer st.Close()

	gdataManager, err := store.ManagerFor(st, store.DefaultAppName)
	if err != nil {
		log.Printf("[TUI] Warning: settings will not persist: %v", err)
	}
	settings := game.NewSettingsManager(gdataManager)

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	sink := newBeepSink(settings, func() { _ = screen.Beep() })
	if err := sink.open(); err != nil {
		// 没有音频设备时退回终端响铃
		log.Printf("[TUI] Audio initialization failed: %v", err)
	}
	defer sink.close()

	session := game.NewSession(catalog, st, sink)
	defer session.Flush()

	newTUI(screen, session, settings).run()
	return nil
}
