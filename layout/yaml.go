package layout

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mazerunner/boundary"
	"github.com/katalvlaran/mazerunner/core"
)

// ErrInvalidFile indicates a malformed or incomplete layout document.
var ErrInvalidFile = errors.New("layout: invalid layout file")

//go:embed default.yaml
var defaultYAML []byte

type yamlLayout struct {
	Name  string     `yaml:"name"`
	Start *yamlCell  `yaml:"start"`
	Exit  *yamlCell  `yaml:"exit"`
	Voids []yamlVoid `yaml:"voids"`
	Grid  string     `yaml:"grid"`
}

type yamlCell struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

type yamlVoid struct {
	Row int    `yaml:"row"`
	Col int    `yaml:"col"`
	Dir string `yaml:"dir"`
}

// Default returns the embedded demo maze.
func Default() (*Layout, error) {
	return decode("default.yaml", bytes.NewReader(defaultYAML))
}

// Load reads and validates the layout file at path.
func Load(path string) (*Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("layout: open %s: %w", path, err)
	}
	defer f.Close()

	return decode(path, f)
}

// Decode reads a layout document from r.
func Decode(r io.Reader) (*Layout, error) {
	return decode("<reader>", r)
}

func decode(source string, r io.Reader) (*Layout, error) {
	var dto yamlLayout
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&dto); err != nil {
		return nil, fmt.Errorf("%w (%s): %v", ErrInvalidFile, source, err)
	}

	return mapLayout(source, dto)
}

// mapLayout turns the YAML DTO into a validated Layout.
func mapLayout(source string, dto yamlLayout) (*Layout, error) {
	name := strings.TrimSpace(dto.Name)
	if name == "" {
		return nil, invalidField(source, "name", "maze name is required")
	}
	if dto.Start == nil {
		return nil, invalidField(source, "start", "start cell is required")
	}
	if dto.Exit == nil {
		return nil, invalidField(source, "exit", "exit cell is required")
	}

	voids := make([]boundary.Rule, 0, len(dto.Voids))
	for i, v := range dto.Voids {
		d, err := core.ParseDirection(v.Dir)
		if err != nil {
			return nil, invalidField(source, fmt.Sprintf("voids[%d].dir", i), err.Error())
		}
		voids = append(voids, boundary.Rule{Cell: core.Cell{Row: v.Row, Col: v.Col}, Dir: d})
	}

	l, err := New(name, gridLines(dto.Grid), dto.Start.cell(), dto.Exit.cell(), voids)
	if err != nil {
		return nil, fmt.Errorf("layout %s (%s): %w", name, source, err)
	}

	return l, nil
}

func (c *yamlCell) cell() core.Cell {
	return core.Cell{Row: c.Row, Col: c.Col}
}

// gridLines splits a block scalar into lines, dropping blank ones.
func gridLines(grid string) []string {
	raw := strings.Split(grid, "\n")
	out := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimRight(line, " \t\r")
		if line != "" {
			out = append(out, line)
		}
	}

	return out
}

func invalidField(source, field, msg string) error {
	return fmt.Errorf("%w (%s): %s: %s", ErrInvalidFile, source, field, msg)
}
