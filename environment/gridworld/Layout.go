package gridworld

import (
	"bufio"
	"io"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Layout characters used by Parse
const (
	AirRune  = '.'
	WallRune = '#'
	EndRune  = 'G'
)

// Layouts holds named gridworld layouts which can be passed to Parse
var Layouts = map[string][]string{
	"small": {
		"..",
		"#G",
	},
	"corridor": {
		"........G",
	},
	"rooms": {
		".....#.....",
		".....#.....",
		"...........",
		".....#.....",
		".....#.....",
		"##.####.###",
		".....#.....",
		".....#.....",
		"...........",
		".....#....G",
	},
	"cliff": {
		"........",
		"........",
		".######G",
	},
}

// LayoutNames returns the names of all Layouts in sorted order
func LayoutNames() []string {
	names := make([]string, 0, len(Layouts))
	for name := range Layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Parse converts a text layout into a grid of cells. Each line is a
// row of the grid: '.' is Air, '#' is a Wall, and 'G' is an End cell.
// Surrounding whitespace and blank lines are ignored.
func Parse(lines []string) ([][]Cell, error) {
	var cells [][]Cell
	for n, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		row := make([]Cell, 0, len(line))
		for _, r := range line {
			switch r {
			case AirRune:
				row = append(row, Air)
			case WallRune:
				row = append(row, Wall)
			case EndRune:
				row = append(row, End)
			default:
				return nil, errors.Errorf("parse: line %d: unknown cell %q",
					n+1, r)
			}
		}

		if len(cells) > 0 && len(row) != len(cells[0]) {
			return nil, errors.Errorf("parse: line %d: has %d cells, "+
				"expected %d", n+1, len(row), len(cells[0]))
		}
		cells = append(cells, row)
	}

	if len(cells) == 0 {
		return nil, errors.New("parse: empty layout")
	}
	return cells, nil
}

// Read parses a text layout from r, see Parse
func Read(r io.Reader) ([][]Cell, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read layout")
	}
	return Parse(lines)
}
