//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"turing-rd/internal/core"
	"turing-rd/internal/render"
)

type stepCounter interface {
	State() *core.State
}

// Overlay draws an optional HUD on top of the simulation: step counter,
// activator value range, and the configured parameters.
type Overlay struct {
	sim core.Sim

	showHUD    bool
	showParams bool
}

// NewOverlay constructs an overlay for the given simulation.
func NewOverlay(sim core.Sim) *Overlay {
	return &Overlay{sim: sim, showHUD: true}
}

// Update handles HUD toggle keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showHUD = !o.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		o.showParams = !o.showParams
	}
}

// Draw renders the HUD text.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showHUD {
		return
	}

	face := basicfont.Face7x13
	white := color.White

	lines := []string{o.sim.Name()}
	if sc, ok := o.sim.(stepCounter); ok {
		lines[0] = fmt.Sprintf("%s  step %d", o.sim.Name(), sc.State().Steps)
	}
	lo, hi := render.FieldRange(o.sim.Activator().Values())
	lines = append(lines, fmt.Sprintf("a: [%.4f, %.4f]", lo, hi))

	if o.showParams {
		if sp, ok := o.sim.(core.SnapshotProvider); ok {
			for _, group := range sp.ParameterSnapshot().Groups {
				lines = append(lines, group.Name)
				for _, p := range group.Params {
					lines = append(lines, fmt.Sprintf("  %s = %s", p.Key, p.Value))
				}
			}
		}
	}

	y := 16
	for _, line := range lines {
		text.Draw(screen, line, face, 6, y, white)
		y += 14
	}
}
