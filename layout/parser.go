package layout

import (
	"bufio"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/xxxserxxx/gogauge/gauge"
)

// ParseLayout parses a layout description. Each line is a row; each
// whitespace-separated token on a line is a widget, written
//
//	[weight:]widget[@type][/height]
//
// weight is the widget's share of the row width, relative to the other
// widgets on the row, and defaults to 1. type is one of the gauge type
// names and defaults to the configured type. height is the number of rows
// the widget spans and defaults to 1. Malformed parts are logged and
// replaced by their defaults; blank lines and lines starting with # are
// skipped.
func ParseLayout(i io.Reader) Layout {
	r := bufio.NewScanner(i)
	rv := Layout{Rows: make([][]widgetRule, 0)}
	var lineNo int
	for r.Scan() {
		lineNo++
		l := strings.TrimSpace(r.Text())
		if l == "" || l[0] == '#' {
			continue
		}
		row := make([]widgetRule, 0)
		ws := strings.Fields(l)
		weightTotal := 0.0
		for _, w := range ws {
			wr := parseRule(w, lineNo)
			weightTotal += wr.Weight
			row = append(row, wr)
		}
		// normalize weights
		for i, w := range row {
			row[i].Weight = w.Weight / weightTotal
		}
		rv.Rows = append(rv.Rows, row)
	}
	return rv
}

func parseRule(w string, lineNo int) widgetRule {
	wr := widgetRule{Weight: 1, Height: 1}
	if ks := strings.SplitN(w, ":", 2); len(ks) == 2 {
		weight, err := strconv.ParseFloat(ks[0], 64)
		if err != nil || weight <= 0 {
			log.Print(tr.Value("layout.error.format", "weight", strconv.Itoa(lineNo), ks[0], "1"))
			weight = 1
		}
		wr.Weight = weight
		w = ks[1]
	}
	if ks := strings.SplitN(w, "/", 2); len(ks) == 2 {
		height, err := strconv.Atoi(ks[1])
		if err != nil || height < 1 {
			log.Print(tr.Value("layout.error.format", "height", strconv.Itoa(lineNo), ks[1], "1"))
			height = 1
		}
		wr.Height = height
		w = ks[0]
	}
	if ks := strings.SplitN(w, "@", 2); len(ks) == 2 {
		t, ok := gauge.ParseType(ks[1])
		if ok {
			wr.Type = t
			wr.Typed = true
		} else {
			log.Print(tr.Value("layout.error.format", "type", strconv.Itoa(lineNo), ks[1], strings.Join(gauge.Types(), "|")))
		}
		w = ks[0]
	}
	wr.Widget = strings.ToLower(w)
	return wr
}
