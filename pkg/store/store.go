// Package store 提供存档使用的键值存储
//
// 存档以一个 JSON blob 的形式保存在固定键下，整体读写。
// 后端：
//   - GdataStore：quasilyte/gdata 跨平台存储（桌面和移动端默认）
//   - SQLiteStore：单文件 SQLite 数据库（modernc.org/sqlite，纯 Go）
//   - MemoryStore：内存存储（测试和 -store memory）
package store

import (
	"fmt"
)

// SaveKey 存档使用的固定键
const SaveKey = "rubber_duck_clicker_v1"

// Store 键值存储接口
type Store interface {
	// Get 读取键对应的数据，不存在时 ok 为 false
	Get(key string) (data []byte, ok bool, err error)
	// Set 写入键对应的数据（整体覆盖）
	Set(key string, data []byte) error
	// Remove 删除键，键不存在不视为错误
	Remove(key string) error
	// Close 释放底层资源
	Close() error
}

// Kind 存储后端类型
type Kind string

const (
	KindGdata  Kind = "gdata"
	KindSQLite Kind = "sqlite"
	KindMemory Kind = "memory"
)

// Options 打开存储的参数
type Options struct {
	Kind    Kind
	AppName string // gdata 应用名（决定存储目录）
	DBPath  string // SQLite 数据库文件路径
}

// Open 根据 Options 打开对应的存储后端
func Open(opts Options) (Store, error) {
	switch opts.Kind {
	case KindGdata, "":
		return OpenGdata(opts.AppName)
	case KindSQLite:
		return OpenSQLite(opts.DBPath)
	case KindMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store kind %q (want gdata, sqlite or memory)", opts.Kind)
	}
}
