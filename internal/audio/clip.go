// Package audio 提供叫声音效的 PCM 数据
//
// 播放由 ebiten 的 audio.Context 完成，输出格式统一为
// 16 位有符号小端、双声道交错 PCM。
package audio

import (
	"encoding/binary"
)

// Clip 解码后的 PCM 片段（16 位有符号，按声道交错）
type Clip struct {
	Samples    []int16
	SampleRate int
	Channels   int // 1=单声道, 2=立体声
}

// Frames 返回帧数（每帧包含所有声道的一个采样）
func (c *Clip) Frames() int {
	if c.Channels <= 0 {
		return 0
	}
	return len(c.Samples) / c.Channels
}

// Seconds 返回片段时长（秒）
func (c *Clip) Seconds() float64 {
	if c.SampleRate <= 0 {
		return 0
	}
	return float64(c.Frames()) / float64(c.SampleRate)
}

// PCM16Stereo 转换为目标采样率的双声道 16 位小端 PCM
//
// 单声道复制到左右声道；采样率不同时使用线性插值重采样。
func (c *Clip) PCM16Stereo(targetRate int) []byte {
	frames := c.Frames()
	if frames == 0 || targetRate <= 0 || c.SampleRate <= 0 {
		return nil
	}

	outFrames := frames
	if c.SampleRate != targetRate {
		outFrames = int(int64(frames) * int64(targetRate) / int64(c.SampleRate))
	}

	out := make([]byte, outFrames*4)
	step := float64(c.SampleRate) / float64(targetRate)
	for i := 0; i < outFrames; i++ {
		pos := float64(i) * step
		l, r := c.frameAt(pos)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(l))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(r))
	}
	return out
}

// frameAt 在小数位置 pos 处线性插值取左右声道采样
func (c *Clip) frameAt(pos float64) (int16, int16) {
	frames := c.Frames()
	i := int(pos)
	if i >= frames-1 {
		return c.channelSample(frames-1, 0), c.channelSample(frames-1, 1)
	}
	t := pos - float64(i)
	lerp := func(ch int) int16 {
		a := float64(c.channelSample(i, ch))
		b := float64(c.channelSample(i+1, ch))
		return int16(a + (b-a)*t)
	}
	return lerp(0), lerp(1)
}

func (c *Clip) channelSample(frame, ch int) int16 {
	if ch >= c.Channels {
		ch = c.Channels - 1
	}
	return c.Samples[frame*c.Channels+ch]
}
