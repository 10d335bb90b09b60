// Package data 内置的游戏数据文件
//
//   - upgrades.yaml: 商店升级目录
//   - save.schema.json: 存档 JSON 的 Schema（cmd/verify_save 使用）
//
// 桌面端、终端版、移动端和工具都通过 embedded.Init(data.FS) 使用同一份数据。
package data

import "embed"

// FS 以 data/ 目录为根的嵌入文件系统
//
//go:embed upgrades.yaml save.schema.json
var FS embed.FS
