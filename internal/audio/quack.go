package audio

import (
	"math"
)

// 合成叫声的参数
const (
	quackDuration  = 0.16  // 秒
	quackStartFreq = 720.0 // 起始基频（Hz）
	quackEndFreq   = 430.0 // 结束基频（Hz）
	quackFormant   = 1250.0
	quackGain      = 0.55
)

// SynthQuack 合成一声橡皮鸭叫声
//
// 基频从 quackStartFreq 滑落到 quackEndFreq 的锯齿波，
// 叠加一个固定共振峰，带快速起音和指数衰减包络。
//
// 返回：
//   - *Clip: 单声道片段，采样率为 sampleRate
func SynthQuack(sampleRate int) *Clip {
	if sampleRate <= 0 {
		return &Clip{SampleRate: sampleRate, Channels: 1}
	}

	n := int(quackDuration * float64(sampleRate))
	samples := make([]int16, n)

	phase := 0.0
	formantPhase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		progress := t / quackDuration

		freq := quackStartFreq + (quackEndFreq-quackStartFreq)*progress
		phase += freq / float64(sampleRate)
		phase -= math.Floor(phase)
		formantPhase += quackFormant / float64(sampleRate)
		formantPhase -= math.Floor(formantPhase)

		saw := 2*phase - 1
		formant := math.Sin(2 * math.Pi * formantPhase)
		v := 0.7*saw + 0.3*saw*formant

		v *= envelope(t) * quackGain
		samples[i] = int16(clampUnit(v) * math.MaxInt16)
	}

	return &Clip{Samples: samples, SampleRate: sampleRate, Channels: 1}
}

// envelope 5ms 线性起音，之后指数衰减
func envelope(t float64) float64 {
	const attack = 0.005
	if t < attack {
		return t / attack
	}
	return math.Exp(-(t - attack) * 18)
}

func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
