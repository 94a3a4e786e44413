package main

import (
	"fmt"
	"strings"

	"reelnorm/encoding"
	"reelnorm/internal/longsymbol"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	outputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))
)

type ExpandCmd struct {
	Reels []string `arg:"" help:"Reels as comma separated symbol ids, e.g. 1,5,5,5,5"`
	JSON  bool     `help:"Print the result as JSON"`
}

func (c *ExpandCmd) Run(g *Globals) error {
	n, _, err := g.normalizer()
	if err != nil {
		return err
	}
	m, err := parseMatrix(c.Reels)
	if err != nil {
		return err
	}
	out := n.ExpandMatrix(m)
	if c.JSON {
		fmt.Println(encoding.ToJson(out))
		return nil
	}
	printMatrix("expand", m, out)
	return nil
}

type RestoreCmd struct {
	Reels []string `arg:"" help:"Reels as comma separated cell ids"`
	JSON  bool     `help:"Print the result as JSON"`
}

func (c *RestoreCmd) Run(g *Globals) error {
	n, _, err := g.normalizer()
	if err != nil {
		return err
	}
	m, err := parseMatrix(c.Reels)
	if err != nil {
		return err
	}
	out := n.RestoreMatrix(m)
	if c.JSON {
		fmt.Println(encoding.ToJson(out))
		return nil
	}
	printMatrix("restore", m, out)
	return nil
}

type ContentsCmd struct {
	Window string `arg:"" help:"Visible window as comma separated ids"`
}

func (c *ContentsCmd) Run(g *Globals) error {
	n, _, err := g.normalizer()
	if err != nil {
		return err
	}
	window, err := parseReel(c.Window)
	if err != nil {
		return err
	}
	printMatrix("contents", longsymbol.Matrix{window}, longsymbol.Matrix{n.UpdateContents(window)})
	return nil
}

type RollingCmd struct {
	Mode     string `short:"m" help:"Rolling mode" enum:"fake,true" default:"fake"`
	Strip    string `arg:"" help:"Rolling strip as comma separated ids"`
	Contents string `arg:"" help:"Visible contents as comma separated ids"`
}

func (c *RollingCmd) Run(g *Globals) error {
	n, _, err := g.normalizer()
	if err != nil {
		return err
	}
	mode, ok := longsymbol.RollingModeByName(c.Mode)
	if !ok {
		return fmt.Errorf("unknown rolling mode %q", c.Mode)
	}
	strip, err := parseReel(c.Strip)
	if err != nil {
		return err
	}
	contents, err := parseReel(c.Contents)
	if err != nil {
		return err
	}
	out, err := n.Rolling(mode, strip, contents)
	if err != nil {
		return err
	}
	printMatrix(mode.Name+" rolling", longsymbol.Matrix{strip}, longsymbol.Matrix{out})
	return nil
}

type FiguresCmd struct{}

func (c *FiguresCmd) Run(g *Globals) error {
	n, cfg, err := g.normalizer()
	if err != nil {
		return err
	}
	fmt.Println(headerStyle.Render(fmt.Sprintf("figures of game %d", cfg.GameID)))
	for _, f := range n.AdditionalFigures(cfg.Figures) {
		pays := make([]string, len(f.Paytable))
		for i, p := range f.Paytable {
			pays[i] = p.String()
		}
		fmt.Printf("  %s mask=%d paytable=[%s]\n", outputStyle.Render(fmt.Sprint(f.ID)), f.Mask, strings.Join(pays, " "))
	}
	return nil
}

func printMatrix(title string, in, out longsymbol.Matrix) {
	fmt.Println(headerStyle.Render(title))
	for i := range out {
		fmt.Printf("  %d: %s -> %s\n", i+1, inputStyle.Render(formatReel(in[i])), outputStyle.Render(formatReel(out[i])))
	}
}
