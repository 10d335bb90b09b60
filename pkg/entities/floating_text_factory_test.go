package entities

import (
	"image/color"
	"testing"

	"github.com/decker502/duckclicker/pkg/components"
	"github.com/decker502/duckclicker/pkg/config"
	"github.com/decker502/duckclicker/pkg/ecs"
)

func TestNewFloatingTextEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	clr := color.RGBA{R: 10, G: 20, B: 30, A: 255}

	id := NewFloatingTextEntity(em, 120, 80, "+2", clr)

	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok || pos.X != 120 || pos.Y != 80 {
		t.Errorf("position: %+v, ok=%v", pos, ok)
	}

	ft, ok := ecs.GetComponent[*components.FloatingTextComponent](em, id)
	if !ok || ft.Text != "+2" || ft.Color != clr || ft.RiseSpeed != config.FloatingTextRiseSpeed {
		t.Errorf("floating text: %+v, ok=%v", ft, ok)
	}

	lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](em, id)
	if !ok || lifetime.MaxLifetime != config.FloatingTextLifetime || lifetime.IsExpired {
		t.Errorf("lifetime: %+v, ok=%v", lifetime, ok)
	}
}
