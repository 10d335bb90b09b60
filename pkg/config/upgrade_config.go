package config

import (
	"fmt"

	"github.com/decker502/duckclicker/pkg/economy"
	"github.com/decker502/duckclicker/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// UpgradeCatalogPath 内置升级目录的路径
const UpgradeCatalogPath = "data/upgrades.yaml"

// UpgradeEntry 单个升级的 YAML 配置
type UpgradeEntry struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	UnlockAt    float64 `yaml:"unlockAt"`   // 解锁所需累计点数
	BaseCost    float64 `yaml:"baseCost"`   // 初始价格
	CostGrowth  float64 `yaml:"costGrowth"` // 价格增长倍数（> 1）
	Effect      string  `yaml:"effect"`     // actionPower | autoRate
	Amount      float64 `yaml:"amount"`     // 每次购买增加的数值
}

// UpgradeCatalogConfig 升级目录配置文件结构
type UpgradeCatalogConfig struct {
	Upgrades []UpgradeEntry `yaml:"upgrades"`
}

// LoadUpgradeCatalog 从嵌入资源加载升级目录
// 参数：
//
//	filepath - 配置文件路径（以 "data/" 开头）
//
// 返回：
//
//	*economy.Catalog - 校验后的升级目录
//	error - 如果文件读取、解析或校验失败，返回错误信息
func LoadUpgradeCatalog(filepath string) (*economy.Catalog, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read upgrade catalog %s: %w", filepath, err)
	}

	catalog, err := ParseUpgradeCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("invalid upgrade catalog in %s: %w", filepath, err)
	}
	return catalog, nil
}

// ParseUpgradeCatalog 解析 YAML 数据并构建升级目录
func ParseUpgradeCatalog(data []byte) (*economy.Catalog, error) {
	var cfg UpgradeCatalogConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse upgrade catalog YAML: %w", err)
	}

	if len(cfg.Upgrades) == 0 {
		return nil, fmt.Errorf("at least one upgrade is required")
	}

	upgrades := make([]economy.Upgrade, 0, len(cfg.Upgrades))
	for i, entry := range cfg.Upgrades {
		u, err := entry.toUpgrade()
		if err != nil {
			return nil, fmt.Errorf("upgrade #%d: %w", i, err)
		}
		upgrades = append(upgrades, u)
	}

	return economy.NewCatalog(upgrades...)
}

func (e UpgradeEntry) toUpgrade() (economy.Upgrade, error) {
	kind, err := economy.ParseEffectKind(e.Effect)
	if err != nil {
		return economy.Upgrade{}, fmt.Errorf("upgrade %s: %w", e.ID, err)
	}
	if e.Name == "" {
		return economy.Upgrade{}, fmt.Errorf("upgrade %s: name is required", e.ID)
	}
	return economy.Upgrade{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		UnlockAt:    e.UnlockAt,
		BaseCost:    e.BaseCost,
		CostGrowth:  e.CostGrowth,
		Effect:      economy.Effect{Kind: kind, Amount: e.Amount},
	}, nil
}
