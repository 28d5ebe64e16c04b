package gridworld

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"github.com/samuelfneumann/gomdp/mdp"
)

// Arrow returns the arrow drawn for action a
func (a Action) Arrow() string {
	switch a {
	case Down:
		return "↓"
	case Left:
		return "←"
	case Right:
		return "→"
	case Up:
		return "↑"
	default:
		return "?"
	}
}

// angle returns the direction of action a in image coordinates, where
// the y axis points down
func (a Action) angle() float64 {
	switch a {
	case Down:
		return math.Pi / 2
	case Left:
		return math.Pi
	case Up:
		return -math.Pi / 2
	default:
		return 0
	}
}

// Format returns a text rendering of the GridWorld with the action of
// policy and the value of values in every open cell. Either of policy
// or values may be nil. If colors is true, the rendering contains
// terminal colour codes.
func (g *GridWorld) Format(policy *mdp.Policy[State, Action],
	values *mdp.StateValue[State], colors bool) string {
	au := aurora.NewAurora(colors)
	var b strings.Builder

	for i := 0; i < g.rows; i++ {
		for j := 0; j < g.cols; j++ {
			state := State{i, j}
			switch g.cells[i][j] {
			case Wall:
				b.WriteString(au.BrightBlack(" ####### ").String())

			case End:
				b.WriteString(au.Green(au.Bold(fmt.Sprintf(" %-7s ",
					"GOAL"))).String())

			default:
				arrow := " "
				if policy != nil {
					if a, err := policy.Get(state); err == nil {
						arrow = a.Arrow()
					}
				}
				value := ""
				if values != nil {
					if v, err := values.Get(state); err == nil {
						value = fmt.Sprintf("%.2f", v)
					}
				}
				b.WriteString(au.Yellow(" " + arrow).String())
				b.WriteString(au.Blue(fmt.Sprintf(" %6s ", value)).String())
			}
			b.WriteString(au.White("|").String())
		}
		b.WriteString("\n")
	}

	return b.String()
}

// Render draws the GridWorld and the actions of policy as a PNG image
// to w. Each cell is drawn as a square of cellSize pixels. policy may
// be nil, in which case only the grid is drawn.
func (g *GridWorld) Render(w io.Writer, policy *mdp.Policy[State, Action],
	cellSize int) error {
	if cellSize <= 0 {
		return errors.Errorf("render: cell size %d must be positive",
			cellSize)
	}

	dc := g.draw(policy, float64(cellSize))
	if err := dc.EncodePNG(w); err != nil {
		return errors.Wrap(err, "render")
	}
	return nil
}

// SavePNG draws the GridWorld and the actions of policy to a PNG file
func (g *GridWorld) SavePNG(path string, policy *mdp.Policy[State, Action],
	cellSize int) error {
	if cellSize <= 0 {
		return errors.Errorf("render: cell size %d must be positive",
			cellSize)
	}

	dc := g.draw(policy, float64(cellSize))
	if err := dc.SavePNG(path); err != nil {
		return errors.Wrapf(err, "save %v", path)
	}
	return nil
}

func (g *GridWorld) draw(policy *mdp.Policy[State, Action],
	size float64) *gg.Context {
	dc := gg.NewContext(int(size)*g.cols, int(size)*g.rows)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	for i := 0; i < g.rows; i++ {
		for j := 0; j < g.cols; j++ {
			x, y := float64(j)*size, float64(i)*size

			switch g.cells[i][j] {
			case Wall:
				dc.SetHexColor("#404040")
				dc.DrawRectangle(x, y, size, size)
				dc.Fill()

			case End:
				dc.SetHexColor("#4caf50")
				dc.DrawRectangle(x, y, size, size)
				dc.Fill()

			default:
				if policy == nil {
					break
				}
				action, err := policy.Get(State{i, j})
				if err != nil {
					break
				}
				drawArrow(dc, action, x+size/2, y+size/2, size)
			}

			// Grid lines
			dc.SetRGB(0.6, 0.6, 0.6)
			dc.SetLineWidth(1)
			dc.DrawRectangle(x, y, size, size)
			dc.Stroke()
		}
	}

	return dc
}

// drawArrow draws an arrow centred on (cx, cy) pointing in the
// direction of action
func drawArrow(dc *gg.Context, action Action, cx, cy, size float64) {
	dc.Push()
	defer dc.Pop()

	dc.RotateAbout(action.angle(), cx, cy)
	dc.SetHexColor("#1e3a8a")
	dc.SetLineWidth(math.Max(1, size/20))
	dc.MoveTo(cx-size*0.3, cy)
	dc.LineTo(cx+size*0.15, cy)
	dc.Stroke()

	// Arrow head points along the positive x axis before rotation
	dc.DrawRegularPolygon(3, cx+size*0.2, cy, size*0.15, math.Pi/2)
	dc.Fill()
}
