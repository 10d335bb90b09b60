package embedded

import (
	"errors"
	"testing"
	"testing/fstest"
)

// reset 恢复包级状态以避免影响其他测试
func reset() {
	dataFS = nil
	initialized = false
}

func TestReadFileNotInitialized(t *testing.T) {
	reset()

	_, err := ReadFile("data/upgrades.yaml")
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("expected ErrNotInitialized, got %v", err)
	}
	if Exists("data/upgrades.yaml") {
		t.Error("Exists() should be false before Init()")
	}
}

func TestReadFile(t *testing.T) {
	defer reset()
	Init(fstest.MapFS{
		"upgrades.yaml": {Data: []byte("upgrades: []\n")},
	})

	if !IsInitialized() {
		t.Fatal("expected IsInitialized() after Init()")
	}

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"标准路径", "data/upgrades.yaml", false},
		{"带./前缀", "./data/upgrades.yaml", false},
		{"未知前缀", "assets/duck.png", true},
		{"文件不存在", "data/missing.yaml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%s): err=%v, wantErr=%v", tt.path, err, tt.wantErr)
			}
			if !tt.wantErr && string(data) != "upgrades: []\n" {
				t.Errorf("unexpected content %q", data)
			}
			if Exists(tt.path) == tt.wantErr {
				t.Errorf("Exists(%s) disagrees with ReadFile", tt.path)
			}
		})
	}
}
