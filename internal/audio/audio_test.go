package audio

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestSynthQuack(t *testing.T) {
	clip := SynthQuack(48000)

	if clip.Channels != 1 || clip.SampleRate != 48000 {
		t.Fatalf("unexpected format: %d ch @ %d Hz", clip.Channels, clip.SampleRate)
	}
	if got := clip.Frames(); got != int(quackDuration*48000) {
		t.Errorf("frames: got %d, want %d", got, int(quackDuration*48000))
	}
	if d := clip.Seconds(); d < quackDuration-0.001 || d > quackDuration+0.001 {
		t.Errorf("duration: got %v, want %v", d, quackDuration)
	}

	var peak int16
	for _, s := range clip.Samples {
		if s > peak {
			peak = s
		}
	}
	if peak == 0 {
		t.Error("synthesised quack is silent")
	}

	// 包络衰减：结尾应明显比开头安静
	tail := clip.Samples[len(clip.Samples)-100:]
	for _, s := range tail {
		if s > peak/4 || s < -peak/4 {
			t.Fatalf("tail sample %d too loud relative to peak %d", s, peak)
		}
	}

	if empty := SynthQuack(0); empty.Frames() != 0 {
		t.Errorf("SynthQuack(0) should be empty")
	}
}

func TestPCM16Stereo(t *testing.T) {
	t.Run("单声道复制到双声道", func(t *testing.T) {
		clip := &Clip{Samples: []int16{100, -200, 300}, SampleRate: 48000, Channels: 1}
		pcm := clip.PCM16Stereo(48000)
		if len(pcm) != 3*4 {
			t.Fatalf("len: got %d, want 12", len(pcm))
		}
		for i, want := range []int16{100, -200, 300} {
			l := int16(binary.LittleEndian.Uint16(pcm[i*4:]))
			r := int16(binary.LittleEndian.Uint16(pcm[i*4+2:]))
			if l != want || r != want {
				t.Errorf("frame %d: got (%d,%d), want %d", i, l, r, want)
			}
		}
	})

	t.Run("重采样", func(t *testing.T) {
		clip := &Clip{Samples: make([]int16, 8000), SampleRate: 8000, Channels: 1}
		pcm := clip.PCM16Stereo(48000)
		if frames := len(pcm) / 4; frames != 48000 {
			t.Errorf("frames: got %d, want 48000", frames)
		}
	})

	t.Run("空片段", func(t *testing.T) {
		clip := &Clip{SampleRate: 48000, Channels: 2}
		if pcm := clip.PCM16Stereo(48000); pcm != nil {
			t.Errorf("expected nil, got %d bytes", len(pcm))
		}
	})
}

// buildAU 构造一个最小的 .au 文件
func buildAU(encoding, rate, channels uint32, payload []byte) []byte {
	var buf bytes.Buffer
	for _, v := range []uint32{auMagic, auHeaderSize, uint32(len(payload)), encoding, rate, channels} {
		_ = binary.Write(&buf, binary.BigEndian, v)
	}
	buf.Write(payload)
	return buf.Bytes()
}

func TestDecodeAU(t *testing.T) {
	t.Run("μ-law", func(t *testing.T) {
		clip, err := DecodeAU(bytes.NewReader(buildAU(auEncodingULaw, 8000, 1, []byte{0x00, 0xFF, 0x80})))
		if err != nil {
			t.Fatalf("DecodeAU failed: %v", err)
		}
		want := []int16{-32124, 0, 32124}
		for i, w := range want {
			if clip.Samples[i] != w {
				t.Errorf("sample %d: got %d, want %d", i, clip.Samples[i], w)
			}
		}
		if clip.SampleRate != 8000 {
			t.Errorf("sample rate: got %d", clip.SampleRate)
		}
	})

	t.Run("PCM16立体声", func(t *testing.T) {
		payload := []byte{0x01, 0x00, 0xFF, 0xFF, 0x7F, 0xFF} // 256, -1, 不完整帧
		clip, err := DecodeAU(bytes.NewReader(buildAU(auEncodingPCM16, 44100, 2, payload)))
		if err != nil {
			t.Fatalf("DecodeAU failed: %v", err)
		}
		if len(clip.Samples) != 2 || clip.Samples[0] != 256 || clip.Samples[1] != -1 {
			t.Errorf("samples: got %v", clip.Samples)
		}
	})

	invalid := map[string][]byte{
		"太短":    {0x2e, 0x73},
		"魔数错误":  append([]byte{0, 0, 0, 0}, make([]byte, 20)...),
		"不支持编码": buildAU(27, 8000, 1, []byte{1, 2}),
		"声道数错误": buildAU(auEncodingULaw, 8000, 6, []byte{1, 2}),
	}
	for name, data := range invalid {
		t.Run(name, func(t *testing.T) {
			if _, err := DecodeAU(bytes.NewReader(data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}
