// verify_save 检查 Rubber Duck Clicker 存档
//
// 读取存档（文件或存储后端），按 data/save.schema.json 校验，
// 再用游戏的宽松解码打印实际会加载的状态。
//
// 用法：
//
//	go run ./cmd/verify_save                       # 读取 gdata 存档
//	go run ./cmd/verify_save -store sqlite -db duckclicker.db
//	go run ./cmd/verify_save -file save.json
//
// 退出码：0 通过校验，1 读取失败，2 不符合 Schema（仍会打印解码结果）
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/decker502/duckclicker/data"
	"github.com/decker502/duckclicker/pkg/config"
	"github.com/decker502/duckclicker/pkg/economy"
	"github.com/decker502/duckclicker/pkg/embedded"
	"github.com/decker502/duckclicker/pkg/store"
)

func main() {
	file := flag.String("file", "", "从 JSON 文件读取存档（优先于 -store）")
	storeKind := flag.String("store", string(store.KindGdata), "存档后端: gdata 或 sqlite")
	dbPath := flag.String("db", "duckclicker.db", "SQLite 数据库路径")
	flag.Parse()

	embedded.Init(data.FS)

	raw, err := readSave(*file, store.Kind(*storeKind), *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	schema, err := config.LoadSaveSchema()
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	exitCode := 0
	if err := config.ValidateSave(schema, raw); err != nil {
		fmt.Printf("⚠️  %v\n", err)
		exitCode = 2
	} else {
		fmt.Println("✅ save matches schema")
	}

	printState(economy.LoadState(raw))
	os.Exit(exitCode)
}

// readSave 读取存档原始数据
func readSave(file string, kind store.Kind, dbPath string) ([]byte, error) {
	if file != "" {
		raw, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}
		return raw, nil
	}

	st, err := store.Open(store.Options{Kind: kind, AppName: store.DefaultAppName, DBPath: dbPath})
	if err != nil {
		return nil, err
	}
	defer st.Close()

	raw, ok, err := st.Get(store.SaveKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read save: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("no save found under key %q", store.SaveKey)
	}
	return raw, nil
}

func printState(s *economy.State) {
	fmt.Println("\n=== Decoded state ===")
	fmt.Printf("  Quacks:     %s (%v)\n", economy.FormatCompact(s.Points), s.Points)
	fmt.Printf("  Total:      %s (%v)\n", economy.FormatCompact(s.LifetimePoints), s.LifetimePoints)
	fmt.Printf("  Per Click:  %s\n", economy.FormatCompact(s.ActionPower))
	fmt.Printf("  Auto / sec: %s\n", economy.FormatRate(s.AutoRate))
	fmt.Printf("  Title:      %s\n", economy.TitleFor(s.LifetimePoints))

	ids := make([]string, 0, len(s.Owned))
	for id := range s.Owned {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	fmt.Println("  Owned:")
	if len(ids) == 0 {
		fmt.Println("    (none)")
	}
	for _, id := range ids {
		fmt.Printf("    %-16s x%d\n", id, s.Owned[id])
	}
}
