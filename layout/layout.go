package layout

import (
	"errors"
	"image"
	"log"
	"math"
	"strings"

	"github.com/gizak/termui/v3"
	"github.com/xxxserxxx/lingo/v2"

	"github.com/xxxserxxx/gogauge"
	"github.com/xxxserxxx/gogauge/devices"
	"github.com/xxxserxxx/gogauge/gauge"
	"github.com/xxxserxxx/gogauge/widgets"
)

type Layout struct {
	Rows [][]widgetRule
}

type widgetRule struct {
	Widget string
	Weight float64
	Height int
	// Type is only meaningful when Typed is set
	Type  gauge.Type
	Typed bool
}

// Screen is the termui grid built from a Layout, along with the widgets
// that need sampling and the gauges that need animating.
type Screen struct {
	*termui.Grid
	Widgets widgets.Widgets
	Gauges  []*widgets.GaugeWidget
}

// Placement is where one widget of a layout lands inside a rectangle.
type Placement struct {
	Widget string
	Type   gauge.Type
	Typed  bool
	Bounds image.Rectangle
}

// TypeOr returns the layout's gauge type for the widget, or def if the
// layout did not name one.
func (p Placement) TypeOr(def gauge.Type) gauge.Type {
	if p.Typed {
		return p.Type
	}
	return def
}

var tr lingo.Translations

// SetTr sets the translations used for layout error messages.
func SetTr(t lingo.Translations) {
	tr = t
}

// WidgetNames lists the widget names a layout may use.
func WidgetNames() []string {
	return append(gogauge.AllDevices(), "power")
}

func validWidget(n string) bool {
	for _, w := range WidgetNames() {
		if w == n {
			return true
		}
	}
	return false
}

// Names returns the distinct widget names used by the layout, in order of
// first appearance. Unknown names are logged and left out.
func (wl Layout) Names() []string {
	seen := make(map[string]bool)
	rv := make([]string, 0)
	for _, row := range wl.Rows {
		for _, w := range row {
			if seen[w.Widget] {
				continue
			}
			seen[w.Widget] = true
			if !validWidget(w.Widget) {
				log.Print(tr.Value("layout.error.widget", w.Widget, strings.Join(WidgetNames(), ",")))
				continue
			}
			rv = append(rv, w.Widget)
		}
	}
	return rv
}

func NewLayout(wl Layout, c gogauge.Config, devs map[string]devices.Device) (*Screen, error) {
	tr = c.Tr
	widgets.SetTr(c.Tr)
	rows, maxHeight := plan(wl)
	if maxHeight == 0 {
		return nil, errors.New(tr.Value("layout.error.empty"))
	}
	grid := &Screen{Grid: termui.NewGrid()}
	rgs := make([]interface{}, 0, len(rows))
	for _, row := range rows {
		cols := make([]interface{}, 0, len(row.cols))
		for _, col := range row.cols {
			items := make([]interface{}, 0, len(col.items))
			for _, it := range col.items {
				var entry interface{}
				w, g := makeWidget(c, devs, it.rule)
				if w == nil {
					entry = placeholder(it.rule)
				} else {
					grid.Widgets = append(grid.Widgets, w)
					grid.Gauges = append(grid.Gauges, g)
					entry = w
				}
				items = append(items, termui.NewRow(float64(it.rule.Height)/float64(row.height), entry))
			}
			cols = append(cols, termui.NewCol(col.weight, items...))
		}
		rgs = append(rgs, termui.NewRow(float64(row.height)/float64(maxHeight), cols...))
	}
	grid.Set(rgs...)
	if c.MetricsFile != "" {
		for i, g := range grid.Gauges {
			g.Register(c.Metrics, i)
		}
	}
	return grid, nil
}

// Arrange lays the widgets of wl over r the same way NewLayout lays them
// over the terminal, and returns their rectangles. Rows are scaled by their
// height and columns by their weight.
func Arrange(wl Layout, r image.Rectangle) []Placement {
	rows, maxHeight := plan(wl)
	rv := make([]Placement, 0)
	if maxHeight == 0 {
		return rv
	}
	edge := func(lo, span int, frac float64) int {
		return lo + int(math.Round(float64(span)*frac))
	}
	rowTop := 0
	for _, row := range rows {
		y0 := edge(r.Min.Y, r.Dy(), float64(rowTop)/float64(maxHeight))
		y1 := edge(r.Min.Y, r.Dy(), float64(rowTop+row.height)/float64(maxHeight))
		rowTop += row.height
		colLeft := 0.0
		for _, col := range row.cols {
			x0 := edge(r.Min.X, r.Dx(), colLeft)
			colLeft += col.weight
			x1 := edge(r.Min.X, r.Dx(), colLeft)
			itemTop := 0
			for _, it := range col.items {
				iy0 := edge(y0, y1-y0, float64(itemTop)/float64(row.height))
				itemTop += it.rule.Height
				iy1 := edge(y0, y1-y0, float64(itemTop)/float64(row.height))
				rv = append(rv, Placement{
					Widget: it.rule.Widget,
					Type:   it.rule.Type,
					Typed:  it.rule.Typed,
					Bounds: image.Rect(x0, iy0, x1, iy1),
				})
			}
		}
	}
	return rv
}

// NewHost builds the layout's gauges without a terminal, each placed at its
// Arrange rectangle inside r. Widgets whose device is missing are left out.
// The returned widgets feed the gauges from their devices.
func NewHost(wl Layout, c gogauge.Config, devs map[string]devices.Device, r image.Rectangle) (*gauge.Host, widgets.Widgets) {
	tr = c.Tr
	widgets.SetTr(c.Tr)
	host := &gauge.Host{}
	ws := make(widgets.Widgets, 0)
	for _, p := range Arrange(wl, r) {
		rule := widgetRule{Widget: p.Widget, Type: p.Type, Typed: p.Typed}
		w, g := makeWidget(c, devs, rule)
		if w == nil {
			log.Print(tr.Value("layout.error.nodevice", p.Widget))
			continue
		}
		if c.MetricsFile != "" {
			g.Register(c.Metrics, host.Len())
		}
		ws = append(ws, w)
		host.Add(g.Gauge, p.Bounds)
	}
	return host, ws
}

type plannedRow struct {
	height int
	cols   []plannedCol
}

type plannedCol struct {
	weight float64
	items  []plannedItem
}

type plannedItem struct {
	rule widgetRule
}

// plan groups the layout rows into grid rows, and returns them along with
// the total height in layout rows. Unknown widgets are dropped.
func plan(wl Layout) ([]plannedRow, int) {
	rowDefs := make([][]widgetRule, 0, len(wl.Rows))
	for _, row := range wl.Rows {
		kept := make([]widgetRule, 0, len(row))
		weightTotal := 0.0
		for _, w := range row {
			if validWidget(w.Widget) {
				kept = append(kept, w)
				weightTotal += w.Weight
			}
		}
		if len(kept) == 0 {
			continue
		}
		for i := range kept {
			kept[i].Weight /= weightTotal
		}
		rowDefs = append(rowDefs, kept)
	}
	rows := make([]plannedRow, 0)
	total := 0
	for len(rowDefs) > 0 {
		var pr plannedRow
		pr, rowDefs = processRow(rowDefs)
		total += pr.height
		rows = append(rows, pr)
	}
	return rows, total
}

// processRow eats a single row from the input list of rows and returns a
// grid row for it, along with a slice without that row.
//
// It does more than that, actually, because it may consume more than one row
// if there's a row span widget in the row; in this case, it'll consume as many
// rows as the largest row span object in the row, and produce an uber-row
// containing all that stuff. It returns a slice without the consumed elements.
func processRow(rowDefs [][]widgetRule) (plannedRow, [][]widgetRule) {
	// The height of the tallest widget in this row; the number of rows that
	// will be consumed, and the overall height of the row that will be
	// produced.
	maxHeight := countMaxHeight(rowDefs[0])
	var processing [][]widgetRule
	if maxHeight < len(rowDefs) {
		processing = rowDefs[0:maxHeight]
		rowDefs = rowDefs[maxHeight:]
	} else {
		processing = rowDefs[0:]
		rowDefs = [][]widgetRule{}
	}
	pr := plannedRow{height: maxHeight}
	for _, rd := range processing[0] {
		pr.cols = append(pr.cols, plannedCol{weight: rd.Weight})
	}
	colHeights := make([]int, len(pr.cols))
outer:
	for i, row := range processing {
		// A definition may fill up the columns before all rows are consumed,
		// e.g. cpu/2 net/2.  This block checks for that and, if it occurs,
		// prepends the remaining rows to the "remainder" return value.
		full := true
		for _, ch := range colHeights {
			if ch < maxHeight {
				full = false
				break
			}
		}
		if full {
			rowDefs = concatRows(processing[i:], rowDefs)
			break
		}
		// Not all rows have been consumed, so go ahead and place the row's
		// widgets in columns
		for w, widg := range row {
			placed := false
			for k := w; k < len(colHeights); k++ {
				if colHeights[k]+widg.Height <= maxHeight {
					pr.cols[k].items = append(pr.cols[k].items, plannedItem{rule: widg})
					colHeights[k] += widg.Height
					placed = true
					break
				}
			}
			// If all columns are full, break out, return the row, and continue processing
			if !placed {
				rest := concatRows([][]widgetRule{row[w:]}, processing[i+1:])
				rowDefs = concatRows(rest, rowDefs)
				break outer
			}
		}
	}
	cols := pr.cols[:0]
	for _, c := range pr.cols {
		if len(c.items) > 0 {
			cols = append(cols, c)
		}
	}
	pr.cols = cols
	return pr, rowDefs
}

// concatRows joins two row lists into a fresh slice; the inputs may share a
// backing array.
func concatRows(a, b [][]widgetRule) [][]widgetRule {
	rv := make([][]widgetRule, 0, len(a)+len(b))
	rv = append(rv, a...)
	return append(rv, b...)
}

// countMaxHeight returns the tallest widget height in a row.
func countMaxHeight(row []widgetRule) int {
	h := 1
	for _, c := range row {
		if c.Height > h {
			h = c.Height
		}
	}
	return h
}

// makeWidget builds the gauge for a rule. It returns nils when the device
// feeding the widget did not start.
func makeWidget(c gogauge.Config, devs map[string]devices.Device, rule widgetRule) (widgets.Widget, *widgets.GaugeWidget) {
	t := c.GaugeType
	if rule.Typed {
		t = rule.Type
	}
	switch rule.Widget {
	case "cpu":
		if d, ok := devs["cpu"].(*devices.CPUs); ok {
			w := widgets.NewCPUGauge(c, t, d)
			return w, w.GaugeWidget
		}
	case "mem", "swap":
		if d, ok := devs["mem"].(devices.Memory); ok {
			w := widgets.NewMemGauge(c, t, d, rule.Widget == "swap")
			return w, w.GaugeWidget
		}
	case "temp":
		if d, ok := devs["temp"].(*devices.Temperature); ok {
			w := widgets.NewTempGauge(c, t, d)
			return w, w.GaugeWidget
		}
	case "batt", "power":
		if d, ok := devs["batt"].(*devices.Batteries); ok {
			w := widgets.NewBatteryGauge(c, t, d)
			return w, w.GaugeWidget
		}
	case "disk":
		if d, ok := devs["disk"].(devices.Disk); ok {
			w := widgets.NewDiskGauge(c, t, d)
			return w, w.GaugeWidget
		}
	case "net":
		if d, ok := devs["net"].(*devices.Network); ok {
			w := widgets.NewNetGauge(c, t, d)
			return w, w.GaugeWidget
		}
	}
	return nil, nil
}

// placeholder keeps the grid shape for a widget whose device is missing.
func placeholder(rule widgetRule) *termui.Block {
	b := termui.NewBlock()
	b.Title = tr.Value("layout.error.nodevice", rule.Widget)
	return b
}
