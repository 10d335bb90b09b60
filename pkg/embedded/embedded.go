// Package embedded 提供嵌入资源的统一访问接口
//
// 嵌入文件系统声明在 data 包（data/embed.go），以 data/ 目录为根。
// 本包保存该文件系统，让 config 等包可以按 "data/..." 路径读取，
// 路径与仓库中的文件位置一致。
//
// 使用前必须调用 Init() 初始化。测试可以传入 fstest.MapFS 或 os.DirFS("data")。
package embedded

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

var (
	dataFS      fs.FS
	initialized bool
)

// ErrNotInitialized 未调用 Init() 时返回
var ErrNotInitialized = fmt.Errorf("embedded package not initialized, call Init() first")

// Init 设置资源文件系统（根目录对应仓库的 data/ 目录）
// 必须在 main() 开始时、任何配置加载之前调用
func Init(data fs.FS) {
	dataFS = data
	initialized = data != nil
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// normalize 标准化路径并去掉 "data/" 前缀
// 路径必须以 "data/" 开头
func normalize(path string) (string, error) {
	if !initialized {
		return "", ErrNotInitialized
	}

	// embed.FS 使用正斜杠
	path = filepath.ToSlash(path)
	path = strings.TrimPrefix(path, "./")

	rel, ok := strings.CutPrefix(path, "data/")
	if !ok {
		return "", fmt.Errorf("unknown resource path prefix: %s (must start with 'data/')", path)
	}
	return rel, nil
}

// ReadFile 读取资源文件内容
func ReadFile(path string) ([]byte, error) {
	p, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(dataFS, p)
}

// Exists 检查资源文件是否存在
func Exists(path string) bool {
	p, err := normalize(path)
	if err != nil {
		return false
	}
	_, err = fs.Stat(dataFS, p)
	return err == nil
}
