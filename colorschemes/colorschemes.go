// Package colorschemes holds the named palettes applied to gauges and to the
// terminal chrome around them.
package colorschemes

import (
	"encoding/json"
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/shibukawa/configdir"

	"github.com/xxxserxxx/gogauge/gauge"
)

// Colorscheme is a palette. Gauge colours are "#rrggbb" or "#rrggbbaa"
// strings; an empty string keeps the gauge default. Terminal colours are
// 256-colour indices, with -1 meaning the terminal's own colour.
type Colorscheme struct {
	Name   string
	Author string

	Background string
	Needle     string
	Tick       string
	ValueText  string
	Title      string
	Safe       string
	Warning    string
	Danger     string

	Fg          int
	Bg          int
	BorderLabel int
	BorderLine  int
}

var registry = make(map[string]Colorscheme)

func register(name string, c Colorscheme) {
	c.Name = name
	registry[name] = c
}

// Names lists the built-in schemes.
func Names() []string {
	rv := make([]string, 0, len(registry))
	for n := range registry {
		rv = append(rv, n)
	}
	sort.Strings(rv)
	return rv
}

// FromName returns the built-in scheme called name, or else loads
// name.json from the first config folder that has one.
func FromName(cd configdir.ConfigDir, name string) (Colorscheme, error) {
	if cs, ok := registry[name]; ok {
		return cs, nil
	}
	cs, err := getCustomColorscheme(cd, name)
	if err != nil {
		return cs, err
	}
	return cs, cs.Validate()
}

func getCustomColorscheme(cd configdir.ConfigDir, name string) (Colorscheme, error) {
	var cs Colorscheme
	fn := name + ".json"
	folder := cd.QueryFolderContainsFile(fn)
	if folder == nil {
		paths := make([]string, 0)
		for _, d := range cd.QueryFolders(configdir.Existing) {
			paths = append(paths, d.Path)
		}
		return cs, fmt.Errorf("failed to find colorscheme file %s in %s", fn, strings.Join(paths, ", "))
	}
	dat, err := folder.ReadFile(fn)
	if err != nil {
		return cs, fmt.Errorf("failed to read colorscheme file %s: %w", fn, err)
	}
	if err = json.Unmarshal(dat, &cs); err != nil {
		return cs, fmt.Errorf("failed to parse colorscheme file %s: %w", fn, err)
	}
	if cs.Name == "" {
		cs.Name = name
	}
	return cs, nil
}

// Validate checks that every gauge colour parses.
func (cs Colorscheme) Validate() error {
	for _, s := range cs.gaugeColors() {
		if s == "" {
			continue
		}
		if _, err := ParseColor(s); err != nil {
			return fmt.Errorf("colorscheme %s: %w", cs.Name, err)
		}
	}
	return nil
}

func (cs Colorscheme) gaugeColors() []string {
	return []string{cs.Background, cs.Needle, cs.Tick, cs.ValueText, cs.Title, cs.Safe, cs.Warning, cs.Danger}
}

// Apply sets every gauge colour from the scheme. Empty entries restore the
// gauge defaults.
func (cs Colorscheme) Apply(g *gauge.Gauge) error {
	var cols [8]color.Color
	for i, s := range cs.gaugeColors() {
		if s == "" {
			continue
		}
		c, err := ParseColor(s)
		if err != nil {
			return fmt.Errorf("colorscheme %s: %w", cs.Name, err)
		}
		cols[i] = c
	}
	g.SetBackgroundColor(cols[0])
	g.SetNeedleColor(cols[1])
	g.SetTickColor(cols[2])
	g.SetValueTextColor(cols[3])
	g.SetTitleColor(cols[4])
	g.SetSafeZoneColor(cols[5])
	g.SetWarningZoneColor(cols[6])
	g.SetDangerZoneColor(cols[7])
	return nil
}

// ParseColor reads "#rgb", "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	alpha := uint8(0xFF)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("bad alpha in %q: %w", s, err)
		}
		alpha = uint8(a)
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}
