package main

import (
	"log"
	"math"
	"time"

	quack "github.com/decker502/duckclicker/internal/audio"
	"github.com/decker502/duckclicker/pkg/game"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// maxQuacksPerTick 一次 tick 内最多叠加的叫声
const maxQuacksPerTick = 6

// beepSink 终端版的叫声输出（实现 game.FeedbackSink）
//
// 扬声器可用时把合成叫声加入混音器；打不开音频设备时退回终端响铃。
type beepSink struct {
	settings *game.SettingsManager // 可为 nil
	clip     *quack.Clip
	mixer    *beep.Mixer
	ready    bool
	bell     func()
}

func newBeepSink(settings *game.SettingsManager, bell func()) *beepSink {
	return &beepSink{
		settings: settings,
		clip:     quack.SynthQuack(int(sampleRate)),
		mixer:    &beep.Mixer{},
		bell:     bell,
	}
}

// open 初始化扬声器；失败时保持响铃模式
func (s *beepSink) open() error {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.ready = true
	return nil
}

func (s *beepSink) close() {
	if s.ready {
		speaker.Close()
		s.ready = false
	}
}

// Quack 播放 n 次叫声
func (s *beepSink) Quack(n int) {
	if n <= 0 {
		return
	}
	settings := game.DefaultSettings()
	if s.settings != nil {
		settings = s.settings.Current()
	}
	if !settings.SoundEnabled {
		return
	}

	if !s.ready {
		if s.bell != nil {
			s.bell()
		}
		return
	}

	if n > maxQuacksPerTick {
		n = maxQuacksPerTick
	}
	speaker.Lock()
	for i := 0; i < n; i++ {
		s.mixer.Add(newVolume(newClipStreamer(s.clip), settings.SoundVolume))
	}
	speaker.Unlock()
	log.Printf("[Sound] queued %d quack(s)", n)
}

// clipStreamer 把 16 位 PCM 片段转换为 beep.Streamer
type clipStreamer struct {
	clip *quack.Clip
	pos  int // 帧位置
}

func newClipStreamer(clip *quack.Clip) *clipStreamer {
	return &clipStreamer{clip: clip}
}

func (c *clipStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	frames := c.clip.Frames()
	if c.pos >= frames {
		return 0, false
	}

	ch := c.clip.Channels
	for n < len(samples) && c.pos < frames {
		left := float64(c.clip.Samples[c.pos*ch]) / 32768
		right := left
		if ch > 1 {
			right = float64(c.clip.Samples[c.pos*ch+1]) / 32768
		}
		samples[n][0] = left
		samples[n][1] = right
		n++
		c.pos++
	}
	return n, true
}

func (c *clipStreamer) Err() error {
	return nil
}

// newVolume 线性音量 [0,1] 转换为 effects.Volume；log2(0) 为 -Inf，0 直接静音
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
