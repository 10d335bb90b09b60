//go:build !android

package store

// ensureStorageDir 非 Android 平台的空实现
// gdata 在桌面平台上会自动创建存储目录
func ensureStorageDir() error {
	return nil
}
