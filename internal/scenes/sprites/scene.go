// Package sprites provides a scene with several translucent sprites
// orbiting the buffer center. It exercises ordered front-to-back alpha
// compositing and multi-frame sprite animation.
package sprites

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-blit/internal/core"
	"github.com/vovakirdan/tui-blit/internal/engine"
	"github.com/vovakirdan/tui-blit/internal/registry"
)

const (
	orbiterCount = 5
	orbiterSize  = 10
)

type orbiter struct {
	sprite *core.Sprite
	phase  float64
	speed  float64
	radius float64
}

// Scene animates translucent orbiting squares over a dark background.
type Scene struct {
	width    int
	height   int
	orbiters []*orbiter
}

// New creates a sprite orbit scene.
func New() *Scene {
	return &Scene{}
}

func init() {
	registry.Register("sprites", func() registry.Scene {
		return New()
	})
}

// ID returns the scene identifier.
func (s *Scene) ID() string {
	return "sprites"
}

// Title returns the display name.
func (s *Scene) Title() string {
	return "Sprite Orbit"
}

// Reset implements registry.Scene. The seed fixes each orbiter's phase
// and speed, so runs with the same config are identical.
func (s *Scene) Reset(cfg core.SceneConfig) {
	s.width = cfg.Width
	s.height = cfg.Height

	rng := rand.New(rand.NewSource(cfg.Seed))
	maxRadius := float64(core.Min(cfg.Width, cfg.Height))/2 - orbiterSize

	s.orbiters = make([]*orbiter, 0, orbiterCount)
	for i := 0; i < orbiterCount; i++ {
		hue := float64(i) / orbiterCount
		bright := orbiterImage(pixelFromPhase(hue, 200))
		dim := orbiterImage(pixelFromPhase(hue, 120))

		sprite := &core.Sprite{
			Frames:    map[string]*core.SpriteImage{"bright": bright, "dim": dim},
			ActiveKey: "bright",
		}
		s.orbiters = append(s.orbiters, &orbiter{
			sprite: sprite,
			phase:  rng.Float64() * 2 * math.Pi,
			speed:  0.01 + rng.Float64()*0.03,
			radius: maxRadius * (0.4 + rng.Float64()*0.6),
		})
	}
}

// Step advances each orbiter along its circle, flipping between its two
// frames every half second worth of ticks. Orbiters are emitted in a
// fixed order, so overlaps composite deterministically.
func (s *Scene) Step(tick int) engine.Frame {
	cx := float64(s.width) / 2
	cy := float64(s.height) / 2

	blits := make([]core.BlitRequest, 0, len(s.orbiters))
	for _, o := range s.orbiters {
		angle := o.phase + float64(tick)*o.speed
		o.sprite.X = int(cx+o.radius*math.Cos(angle)) - orbiterSize/2
		o.sprite.Y = int(cy+o.radius*math.Sin(angle)) - orbiterSize/2

		if (tick/30)%2 == 0 {
			o.sprite.ActiveKey = "bright"
		} else {
			o.sprite.ActiveKey = "dim"
		}

		req, err := o.sprite.Request()
		if err != nil {
			continue
		}
		blits = append(blits, req)
	}

	return engine.Frame{
		Background: core.RGB(8, 8, 16),
		Blits:      blits,
	}
}

// orbiterImage builds a translucent square frame image.
func orbiterImage(p core.Pixel) *core.SpriteImage {
	img, err := core.NewSolidSprite(orbiterSize, orbiterSize, p)
	if err != nil {
		panic(err) // orbiterSize is a positive constant
	}
	return img
}

// pixelFromPhase picks a saturated color for a hue fraction in [0,1) with
// the given alpha.
func pixelFromPhase(hue float64, alpha uint8) core.Pixel {
	r := uint8(127.5 * (1 + math.Sin(2*math.Pi*hue)))
	g := uint8(127.5 * (1 + math.Sin(2*math.Pi*hue+2*math.Pi/3)))
	b := uint8(127.5 * (1 + math.Sin(2*math.Pi*hue+4*math.Pi/3)))
	return core.RGBA(r, g, b, alpha)
}
