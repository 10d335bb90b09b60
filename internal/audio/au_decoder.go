package audio

import (
	"encoding/binary"
	"fmt"
	"io"
)

// AU (Sun/NeXT .snd) 文件头，24 字节，大端
const (
	auMagic         = 0x2e736e64 // ".snd"
	auHeaderSize    = 24
	auEncodingULaw  = 1 // 8 位 μ-law
	auEncodingPCM16 = 3 // 16 位线性 PCM
)

// DecodeAU 解码 .au 文件，支持 μ-law 和 16 位线性 PCM，单声道或立体声
//
// 参数：
//   - r: AU 文件数据
//
// 返回：
//   - *Clip: 解码后的 PCM 片段
//   - error: 文件格式不支持或损坏时返回错误
func DecodeAU(r io.Reader) (*Clip, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read AU file: %w", err)
	}
	if len(data) < auHeaderSize {
		return nil, fmt.Errorf("AU file too short: %d bytes (minimum %d)", len(data), auHeaderSize)
	}

	be := binary.BigEndian
	magic := be.Uint32(data[0:])
	offset := int(be.Uint32(data[4:]))
	size := be.Uint32(data[8:])
	encoding := be.Uint32(data[12:])
	sampleRate := int(be.Uint32(data[16:]))
	channels := int(be.Uint32(data[20:]))

	if magic != auMagic {
		return nil, fmt.Errorf("invalid AU magic number: 0x%08x (expected 0x%08x)", magic, auMagic)
	}
	if channels < 1 || channels > 2 {
		return nil, fmt.Errorf("unsupported channel count: %d (only 1-2 supported)", channels)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate: %d", sampleRate)
	}
	if offset < auHeaderSize || offset > len(data) {
		return nil, fmt.Errorf("invalid data offset: %d (file size: %d)", offset, len(data))
	}

	payload := data[offset:]
	// 0xFFFFFFFF 表示长度未知，读到文件末尾
	if size != 0xFFFFFFFF && int(size) < len(payload) {
		payload = payload[:size]
	}

	clip := &Clip{SampleRate: sampleRate, Channels: channels}
	switch encoding {
	case auEncodingULaw:
		clip.Samples = make([]int16, len(payload))
		for i, b := range payload {
			clip.Samples[i] = ulawToLinear(b)
		}
	case auEncodingPCM16:
		clip.Samples = make([]int16, len(payload)/2)
		for i := range clip.Samples {
			clip.Samples[i] = int16(be.Uint16(payload[i*2:]))
		}
	default:
		return nil, fmt.Errorf("unsupported AU encoding: %d (μ-law [1] and PCM16 [3] are supported)", encoding)
	}

	// 截掉不完整的最后一帧
	clip.Samples = clip.Samples[:clip.Frames()*channels]
	return clip, nil
}

// ulawToLinear G.711 μ-law 解码
func ulawToLinear(u byte) int16 {
	u = ^u
	sign := u & 0x80
	exponent := (u >> 4) & 0x07
	mantissa := u & 0x0F
	magnitude := ((int32(mantissa) << 3) + 0x84) << exponent
	magnitude -= 0x84
	if sign != 0 {
		return int16(-magnitude)
	}
	return int16(magnitude)
}
