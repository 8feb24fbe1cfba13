// Package hud renders the scoreboard consumer surface: a small ebitenui
// panel listing score-tracked entities. It only reads the entity list it is
// handed after each step; it never mutates the simulation.
package hud

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/scenekit/scene"
)

// Scoreboard is a top-left panel showing name, team, rounded health, and
// score for each tracked entity, in the ranking order it was handed.
type Scoreboard struct {
	ui   *ebitenui.UI
	text *widget.Text
}

func NewScoreboard() *Scoreboard {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{A: 170})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	text := widget.NewText(
		widget.TextOpts.Text("", &face, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionStart})),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 8, Bottom: 8, Left: 10, Right: 10}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	panel.AddChild(text)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &Scoreboard{
		ui:   &ebitenui.UI{Container: root},
		text: text,
	}
}

// SetEntries rebuilds the panel text from the ranked entities.
func (s *Scoreboard) SetEntries(ranked []*scene.Entity) {
	var b strings.Builder
	for _, e := range ranked {
		hp := math.Max(0, math.Round(e.Health))
		if e.Team != "" {
			fmt.Fprintf(&b, "%s [%s]  hp %.0f  score %.0f\n", e.Name, e.Team, hp, e.Score)
		} else {
			fmt.Fprintf(&b, "%s  hp %.0f  score %.0f\n", e.Name, hp, e.Score)
		}
	}
	s.text.Label = strings.TrimRight(b.String(), "\n")
}

// Update advances the UI; call once per frame.
func (s *Scoreboard) Update() {
	s.ui.Update()
}

// Draw paints the panel onto the screen, outside the simulation step.
func (s *Scoreboard) Draw(screen *ebiten.Image) {
	s.ui.Draw(screen)
}
