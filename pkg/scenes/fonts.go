package scenes

import (
	"bytes"
	"fmt"

	"github.com/decker502/duckclicker/pkg/config"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// fontSet 点击场景使用的字体
type fontSet struct {
	title *text.GoTextFace
	body  *text.GoTextFace
	bold  *text.GoTextFace
	small *text.GoTextFace
}

// loadFonts 从内置的 Go 字体创建各字号字体
func loadFonts() (*fontSet, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load bold font: %w", err)
	}

	return &fontSet{
		title: &text.GoTextFace{Source: bold, Size: config.TitleSize},
		body:  &text.GoTextFace{Source: regular, Size: config.BodySize},
		bold:  &text.GoTextFace{Source: bold, Size: config.BodySize},
		small: &text.GoTextFace{Source: regular, Size: config.SmallSize},
	}, nil
}
