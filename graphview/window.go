package graphview

import (
	"github.com/hajimehoshi/ebiten/v2"

	"ti84/graph"
)

const (
	viewWidth  = 480
	viewHeight = 320
)

// Run opens a desktop window displaying the plot scene at 2x scale. It blocks
// until the window is closed (or Escape/Q is pressed).
func Run(p graph.Plot, title string) error {
	d := newImageDisplay(viewWidth, viewHeight)
	newRenderer(d, p).render()

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(viewWidth*2, viewHeight*2)
	ebiten.SetTPS(30)
	if err := ebiten.RunGame(&game{d: d}); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}

type game struct {
	d   *imageDisplay
	img *ebiten.Image
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.img == nil {
		// The scene is static; upload the framebuffer once.
		g.img = ebiten.NewImage(viewWidth, viewHeight)
		g.img.WritePixels(g.d.img.Pix)
	}
	screen.DrawImage(g.img, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewWidth, viewHeight
}
