package game

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	quack "github.com/decker502/duckclicker/internal/audio"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// SampleRate 音频上下文采样率
const SampleRate = 48000

// 同时播放的叫声上限；一帧内跨过很多整数边界时只播放这么多
const (
	maxQuacksPerFrame = 6
	maxActiveVoices   = 24
)

// AudioManager 音频管理器
// 职责：
//   - 播放叫声（每次都创建新的播放器，允许声音重叠）
//   - 从 SettingsManager 读取音量和开关
//   - 回收播放完毕的播放器
//
// 实现 FeedbackSink，由 Session 在累计点数跨过整数边界时调用。
type AudioManager struct {
	context         *audio.Context
	settingsManager *SettingsManager // 可为 nil
	quackPCM        []byte           // 16 位双声道 PCM
	voices          []*audio.Player  // 正在播放的叫声
}

// NewAudioManager 创建音频管理器，默认使用合成的叫声
//
// 参数：
//   - ctx: ebiten 音频上下文（采样率应为 SampleRate）
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		context:         ctx,
		settingsManager: sm,
		quackPCM:        quack.SynthQuack(ctx.SampleRate()).PCM16Stereo(ctx.SampleRate()),
	}
}

// LoadQuackFile 用自定义音频文件替换合成叫声
// 支持 .mp3 / .ogg / .wav / .au
func (am *AudioManager) LoadQuackFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read quack sound %s: %w", path, err)
	}

	pcm, err := decodeSound(am.context.SampleRate(), filepath.Ext(path), data)
	if err != nil {
		return fmt.Errorf("failed to decode quack sound %s: %w", path, err)
	}
	if len(pcm) == 0 {
		return fmt.Errorf("quack sound %s is empty", path)
	}

	am.quackPCM = pcm
	log.Printf("[AudioManager] Loaded quack sound: %s (%d bytes)", path, len(pcm))
	return nil
}

// decodeSound 按扩展名解码为目标采样率的 16 位双声道 PCM
func decodeSound(sampleRate int, ext string, data []byte) ([]byte, error) {
	reader := bytes.NewReader(data)

	var stream io.Reader
	switch strings.ToLower(ext) {
	case ".mp3":
		s, err := mp3.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3: %w", err)
		}
		stream = s
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG: %w", err)
		}
		stream = s
	case ".wav":
		s, err := wav.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV: %w", err)
		}
		stream = s
	case ".au":
		clip, err := quack.DecodeAU(reader)
		if err != nil {
			return nil, err
		}
		return clip.PCM16Stereo(sampleRate), nil
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg, .wav, .au)", ext)
	}

	return io.ReadAll(stream)
}

// Quack 播放 n 次叫声（实现 FeedbackSink）
//
// 每次叫声使用独立的播放器，可以互相重叠。
func (am *AudioManager) Quack(n int) {
	am.reap()

	if n <= 0 || !am.soundEnabled() {
		return
	}
	if n > maxQuacksPerFrame {
		n = maxQuacksPerFrame
	}

	volume := am.soundVolume()
	for i := 0; i < n && len(am.voices) < maxActiveVoices; i++ {
		player := am.context.NewPlayerFromBytes(am.quackPCM)
		player.SetVolume(volume)
		player.Play()
		am.voices = append(am.voices, player)
	}
}

// reap 关闭并移除已播放完毕的播放器
func (am *AudioManager) reap() {
	alive := am.voices[:0]
	for _, p := range am.voices {
		if p.IsPlaying() {
			alive = append(alive, p)
			continue
		}
		if err := p.Close(); err != nil {
			log.Printf("[AudioManager] Warning: failed to close player: %v", err)
		}
	}
	for i := len(alive); i < len(am.voices); i++ {
		am.voices[i] = nil
	}
	am.voices = alive
}

func (am *AudioManager) soundEnabled() bool {
	if am.settingsManager == nil {
		return true
	}
	return am.settingsManager.Current().SoundEnabled
}

func (am *AudioManager) soundVolume() float64 {
	if am.settingsManager == nil {
		return DefaultSettings().SoundVolume
	}
	return am.settingsManager.Current().SoundVolume
}
