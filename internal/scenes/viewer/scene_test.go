package viewer

import (
	"testing"

	"github.com/vovakirdan/tui-blit/internal/core"
)

func TestViewerCentersImage(t *testing.T) {
	img, err := core.NewSolidSprite(10, 6, core.RGB(250, 250, 0))
	if err != nil {
		t.Fatalf("NewSolidSprite: %v", err)
	}

	scene := New(img, "test.png", core.RGB(24, 24, 24))
	scene.Reset(core.SceneConfig{Width: 40, Height: 20, TickRate: 60})

	frame := scene.Step(0)
	if len(frame.Blits) != 1 {
		t.Fatalf("expected 1 blit, got %d", len(frame.Blits))
	}
	if frame.Blits[0].X != 15 || frame.Blits[0].Y != 7 {
		t.Errorf("blit at (%d,%d), want (15,7)", frame.Blits[0].X, frame.Blits[0].Y)
	}

	buf, _ := core.NewPixelBuffer(40, 20, core.Black)
	if err := frame.Blits[0].Execute(buf); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	got, _ := buf.At(20, 10)
	if got != core.RGB(250, 250, 0) {
		t.Errorf("center pixel = %+v, want the image color", got)
	}
}

func TestViewerUsesConfiguredBackground(t *testing.T) {
	img, err := core.NewSolidSprite(2, 2, core.White)
	if err != nil {
		t.Fatalf("NewSolidSprite: %v", err)
	}

	bg := core.RGB(10, 80, 40)
	scene := New(img, "test.png", bg)
	scene.Reset(core.SceneConfig{Width: 20, Height: 10, TickRate: 60})

	frame := scene.Step(0)
	if frame.Background != bg {
		t.Errorf("frame background = %+v, want %+v", frame.Background, bg)
	}
}

func TestViewerOversizedImageStillBlits(t *testing.T) {
	img, err := core.NewSolidSprite(30, 30, core.White)
	if err != nil {
		t.Fatalf("NewSolidSprite: %v", err)
	}

	scene := New(img, "big.png", core.Black)
	scene.Reset(core.SceneConfig{Width: 10, Height: 10, TickRate: 60})

	frame := scene.Step(0)
	buf, _ := core.NewPixelBuffer(10, 10, core.Black)
	for _, req := range frame.Blits {
		if err := req.Execute(buf); err != nil {
			t.Fatalf("Execute: %v", err)
		}
	}

	got, _ := buf.At(5, 5)
	if got != core.White {
		t.Errorf("visible pixel = %+v, want white", got)
	}
}
