package game

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// TestDecodeSound 测试自定义叫声文件的解码
func TestDecodeSound(t *testing.T) {
	t.Run("AU文件", func(t *testing.T) {
		var buf bytes.Buffer
		// .snd 头：magic, offset, size, encoding(μ-law), rate, channels
		for _, v := range []uint32{0x2e736e64, 24, 4, 1, 8000, 1} {
			_ = binary.Write(&buf, binary.BigEndian, v)
		}
		buf.Write([]byte{0x00, 0x80, 0xFF, 0x7F})

		pcm, err := decodeSound(SampleRate, ".AU", buf.Bytes())
		if err != nil {
			t.Fatalf("decodeSound failed: %v", err)
		}
		// 4 帧 8kHz -> 24 帧 48kHz，每帧 4 字节
		if len(pcm) != 24*4 {
			t.Errorf("pcm length: got %d, want %d", len(pcm), 24*4)
		}
	})

	t.Run("不支持的格式", func(t *testing.T) {
		if _, err := decodeSound(SampleRate, ".flac", []byte("fLaC")); err == nil {
			t.Error("expected error for .flac")
		}
	})

	t.Run("损坏的WAV", func(t *testing.T) {
		if _, err := decodeSound(SampleRate, ".wav", []byte("not a wav")); err == nil {
			t.Error("expected error for corrupt wav")
		}
	})
}
