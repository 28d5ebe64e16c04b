package gridworld

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/samuelfneumann/gomdp/mdp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	topLeft     = State{0, 0}
	topRight    = State{0, 1}
	bottomRight = State{1, 1}
)

func small(t *testing.T) *GridWorld {
	t.Helper()
	cells, err := Parse(Layouts["small"])
	require.NoError(t, err)
	g, err := New(cells, 1)
	require.NoError(t, err)
	return g
}

func TestStatesAndActions(t *testing.T) {
	g := small(t)
	assert.Equal(t, []State{topLeft, topRight, bottomRight}, g.States().Items())
	assert.Equal(t, []Action{Down, Left, Right, Up}, g.Actions().Items())

	r, c := g.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, Wall, g.At(1, 0))
}

func TestTransition(t *testing.T) {
	g := small(t)

	tests := []struct {
		name   string
		state  State
		action Action
		next   State
		reward float64
	}{
		{"boundary", topLeft, Left, topLeft, -1},
		{"air", topLeft, Right, topRight, -1},
		{"wall", topLeft, Down, topLeft, -1},
		{"end", topRight, Down, bottomRight, 100},
		{"from terminal", bottomRight, Up, bottomRight, 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			next, reward := g.Transition(test.state, test.action)
			assert.Equal(t, test.next, next)
			assert.Equal(t, test.reward, reward)
		})
	}
}

func TestIsTerminal(t *testing.T) {
	g := small(t)
	assert.False(t, g.IsTerminal(topLeft))
	assert.False(t, g.IsTerminal(topRight))
	assert.True(t, g.IsTerminal(bottomRight))
}

func TestNewWithGoal(t *testing.T) {
	cells, err := Parse(Layouts["corridor"])
	require.NoError(t, err)
	g, err := NewWithGoal(cells, Goal{StepReward: 0, GoalReward: 1}, 3)
	require.NoError(t, err)

	_, reward := g.Transition(State{0, 7}, Right)
	assert.Equal(t, 1.0, reward)
	_, reward = g.Transition(State{0, 0}, Right)
	assert.Equal(t, 0.0, reward)
}

func TestNewErrors(t *testing.T) {
	_, err := New(nil, 0)
	assert.Error(t, err)

	_, err = New([][]Cell{{Air, Air}, {Air}}, 0)
	assert.Error(t, err)

	_, err = New([][]Cell{{Wall, Wall}}, 0)
	assert.Error(t, err)
}

func TestParse(t *testing.T) {
	cells, err := Parse([]string{"", " .# ", " G. ", ""})
	require.NoError(t, err)
	assert.Equal(t, [][]Cell{{Air, Wall}, {End, Air}}, cells)

	_, err = Parse([]string{".x"})
	assert.Error(t, err)

	_, err = Parse([]string{"..", "."})
	assert.Error(t, err)

	_, err = Parse(nil)
	assert.Error(t, err)

	cells, err = Read(strings.NewReader("..\n#G\n"))
	require.NoError(t, err)
	assert.Equal(t, [][]Cell{{Air, Air}, {Wall, End}}, cells)
}

func TestLayouts(t *testing.T) {
	for _, name := range LayoutNames() {
		cells, err := Parse(Layouts[name])
		require.NoError(t, err, name)
		_, err = New(cells, 0)
		require.NoError(t, err, name)
	}
}

func TestFormat(t *testing.T) {
	g := small(t)
	policy := mdp.NewConstantPolicy(g.States(), Right)
	values := mdp.NewStateValue(g.States())
	require.NoError(t, values.Insert(topRight, 100))

	out := g.Format(policy, values, false)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "→")
	assert.Contains(t, lines[0], "100.00")
	assert.Contains(t, lines[1], "GOAL")
	assert.Contains(t, lines[1], "####")
	assert.NotContains(t, out, "\x1b[")

	assert.Contains(t, g.Format(nil, nil, true), "\x1b[")
}

func TestRender(t *testing.T) {
	g := small(t)
	policy := mdp.NewConstantPolicy(g.States(), Down)

	var buf bytes.Buffer
	require.NoError(t, g.Render(&buf, policy, 20))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, 40, img.Bounds().Dy())

	assert.Error(t, g.Render(&buf, policy, 0))
}
