//go:build ignore

// validate_yaml 检查升级目录 YAML 并打印前几次购买的价格表
//
// 用法：
//
//	go run tools/validate_yaml.go                  # 检查 data/upgrades.yaml
//	go run tools/validate_yaml.go path/to/file.yaml
package main

import (
	"fmt"
	"os"

	"github.com/decker502/duckclicker/pkg/config"
	"github.com/decker502/duckclicker/pkg/economy"
	"gopkg.in/yaml.v3"
)

// 价格表显示的购买次数
const priceColumns = 6

var requiredFields = []string{"id", "name", "unlockAt", "baseCost", "costGrowth", "effect", "amount"}

func main() {
	path := config.UpgradeCatalogPath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("❌ 读取文件失败: %v\n", err)
		os.Exit(1)
	}

	// 先按通用结构检查字段，报告所有缺失项
	var raw struct {
		Upgrades []map[string]interface{} `yaml:"upgrades"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		fmt.Printf("❌ YAML 解析失败: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ YAML 格式正确\n")
	fmt.Printf("✅ 升级数量: %d\n", len(raw.Upgrades))

	missing := 0
	for i, u := range raw.Upgrades {
		for _, field := range requiredFields {
			if _, ok := u[field]; !ok {
				fmt.Printf("❌ 第 %d 个升级缺少 %s\n", i+1, field)
				missing++
			}
		}
	}
	if missing > 0 {
		fmt.Printf("❌ 共缺少 %d 个字段\n", missing)
		os.Exit(1)
	}

	// 再用游戏的加载逻辑做完整校验
	catalog, err := config.ParseUpgradeCatalog(data)
	if err != nil {
		fmt.Printf("❌ 升级目录无效: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ 所有升级都通过校验\n\n")

	fmt.Printf("%-16s %8s", "id", "unlock")
	for n := 0; n < priceColumns; n++ {
		fmt.Printf(" %8s", fmt.Sprintf("#%d", n+1))
	}
	fmt.Println()
	for _, u := range catalog.All() {
		fmt.Printf("%-16s %8s", u.ID, economy.FormatCompact(u.UnlockAt))
		for n := 0; n < priceColumns; n++ {
			fmt.Printf(" %8s", economy.FormatCompact(float64(economy.CostAt(u, n))))
		}
		fmt.Println()
	}
}
