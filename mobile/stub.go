//go:build !mobile

// Package mobile 在没有 mobile 标签的构建（桌面端、go test ./...）中只有这个占位函数。
package mobile

// Dummy 与 mobile.go 中的同名函数保持一致
func Dummy() {}
