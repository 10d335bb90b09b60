package store

import (
	"bytes"
	"fmt"
	"path/filepath"
)

// androidDataRoot Android 应用私有数据的根目录
const androidDataRoot = "/data/data"

// packageFromCmdline 从 /proc/self/cmdline 的内容中取出应用包名
//
// cmdline 以 NUL 分隔各个参数，只取 argv[0]。
// 子进程的进程名形如 "com.example.duck:remote"，冒号后的部分会被去掉。
func packageFromCmdline(data []byte) (string, error) {
	argv0 := bytes.SplitN(data, []byte{0}, 2)[0]
	argv0 = bytes.TrimSpace(argv0)
	if i := bytes.IndexByte(argv0, ':'); i >= 0 {
		argv0 = argv0[:i]
	}
	if len(argv0) == 0 {
		return "", fmt.Errorf("no process name in cmdline")
	}
	return string(argv0), nil
}

// androidSavesDir 返回应用的存档目录
func androidSavesDir(pkg string) string {
	return filepath.Join(androidDataRoot, pkg, "saves")
}
