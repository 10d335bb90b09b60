//go:build android

package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// ensureStorageDir 在 gdata.Open 之前创建存档目录
//
// gdata 在 Android 上把数据写到应用私有目录下，但不会创建 saves 子目录。
// 目录创建后写入一个临时文件，确认确实可写。
func ensureStorageDir() error {
	cmdline, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return fmt.Errorf("failed to read process name: %w", err)
	}
	pkg, err := packageFromCmdline(cmdline)
	if err != nil {
		return err
	}

	dir := androidSavesDir(pkg)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	marker := filepath.Join(dir, ".duck")
	if err := os.WriteFile(marker, nil, 0644); err != nil {
		return fmt.Errorf("%s is not writable: %w", dir, err)
	}
	return os.Remove(marker)
}
