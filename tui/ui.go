package tui

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gizak/termui/v3"

	"github.com/xxxserxxx/gogauge"
	"github.com/xxxserxxx/gogauge/devices"
	"github.com/xxxserxxx/gogauge/layout"
	"github.com/xxxserxxx/gogauge/widgets"
)

const (
	speedFactor = 1.5
	minSpeed    = 0.1
	maxSpeed    = 60
)

type TUI struct {
	conf gogauge.Config
	devs map[string]devices.Device
	grid *layout.Screen
	help *widgets.HelpMenu
	bar  *widgets.StatusBar
}

func New(conf gogauge.Config) (*TUI, error) {
	return &TUI{conf: conf}, termui.Init()
}

func (t *TUI) ShutdownUI() {
	termui.Close()
}

func (t *TUI) LoopUI() error {
	lstream, err := layout.GetLayout(t.conf)
	if err != nil {
		return err
	}
	ly := layout.ParseLayout(lstream)

	// device start-up errors are not fatal; the widget shows as empty
	devInsts, errs := devices.Startup(ly.Names(), t.conf)
	for _, err := range errs {
		log.Print(err)
	}
	t.devs = devInsts
	setDefaultTermuiColors(t.conf) // done before initializing widgets to allow inheriting colors
	t.help = widgets.NewHelpMenu(t.conf.Tr)
	if t.conf.Statusbar {
		t.bar = widgets.NewStatusBar()
	}

	t.grid, err = layout.NewLayout(ly, t.conf, devInsts)
	if err != nil {
		return err
	}

	termWidth, termHeight := termui.TerminalDimensions()
	t.resize(termWidth, termHeight)
	t.render()
	t.eventLoop()
	return nil
}

func setDefaultTermuiColors(c gogauge.Config) {
	termui.Theme.Default = termui.NewStyle(termui.Color(c.Colorscheme.Fg), termui.Color(c.Colorscheme.Bg))
	termui.Theme.Block.Title = termui.NewStyle(termui.Color(c.Colorscheme.BorderLabel), termui.Color(c.Colorscheme.Bg))
	termui.Theme.Block.Border = termui.NewStyle(termui.Color(c.Colorscheme.BorderLine), termui.Color(c.Colorscheme.Bg))
}

func (t *TUI) resize(termWidth, termHeight int) {
	if t.conf.Statusbar {
		t.grid.SetRect(0, 0, termWidth, termHeight-1)
		t.bar.SetRect(0, termHeight-1, termWidth, termHeight)
	} else {
		t.grid.SetRect(0, 0, termWidth, termHeight)
	}
	t.help.Resize(termWidth, termHeight)
}

func (t *TUI) render() {
	if t.conf.HelpVisible {
		termui.Render(t.help)
		return
	}
	termui.Render(t.grid)
	if t.conf.Statusbar {
		termui.Render(t.bar)
	}
}

// sample reads every device and pushes the readings into the gauges.
func (t *TUI) sample() {
	for _, err := range devices.UpdateAll(t.devs) {
		log.Print(err)
	}
	t.grid.Widgets.Update()
}

// advance moves every gauge's animation on by dt, or by one fixed frame
// when fixed stepping is configured. It reports whether anything moved.
func (t *TUI) advance(dt time.Duration) bool {
	moved := false
	for _, g := range t.grid.Gauges {
		before := g.Gauge.Value()
		if t.conf.FixedStep {
			g.Gauge.Update()
		} else {
			g.Gauge.Advance(dt)
		}
		if g.Gauge.Value() != before {
			moved = true
		}
	}
	return moved
}

func (t *TUI) eventLoop() {
	frameTicker := time.NewTicker(t.conf.FrameInterval())
	defer frameTicker.Stop()
	sampleTicker := time.NewTicker(t.conf.UpdateInterval)
	defer sampleTicker.Stop()

	// handles kill signal sent to gogauge
	sigTerm := make(chan os.Signal, 2)
	signal.Notify(sigTerm, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigTerm)

	uiEvents := termui.PollEvents()
	last := time.Now()

	for {
		select {
		case <-sigTerm:
			return
		case now := <-frameTicker.C:
			dt := now.Sub(last)
			last = now
			if t.advance(dt) && !t.conf.HelpVisible {
				termui.Render(t.grid)
			}
		case <-sampleTicker.C:
			t.sample()
			t.render()
		case e := <-uiEvents:
			if t.handleEvent(e) {
				return
			}
		}
	}
}

// handleEvent applies a key or resize event and reports whether the UI
// should exit.
func (t *TUI) handleEvent(e termui.Event) bool {
	switch e.ID {
	case "q", "<C-c>":
		return true
	case "?":
		t.conf.HelpVisible = !t.conf.HelpVisible
		termui.Clear()
	case "<Escape>":
		if t.conf.HelpVisible {
			t.conf.HelpVisible = false
			termui.Clear()
		}
	case "<Resize>":
		payload := e.Payload.(termui.Resize)
		t.resize(payload.Width, payload.Height)
		termui.Clear()
	case "a":
		for _, g := range t.grid.Gauges {
			g.Gauge.SetAnimationEnabled(!g.Gauge.AnimationEnabled())
		}
	case "t":
		for _, g := range t.grid.Gauges {
			g.Gauge.SetGaugeType(g.Gauge.GaugeType().Next())
		}
	case "l":
		for _, g := range t.grid.Gauges {
			g.Gauge.SetShowTickLabels(!g.Gauge.ShowTickLabels())
		}
	case "z":
		t.conf.Zones = !t.conf.Zones
		for _, g := range t.grid.Gauges {
			g.SetZonesEnabled(t.conf.Zones)
		}
	case "+", "=":
		t.scaleSpeed(speedFactor)
	case "-":
		t.scaleSpeed(1 / speedFactor)
	default:
		return false
	}
	t.render()
	return false
}

func (t *TUI) scaleSpeed(f float64) {
	for _, g := range t.grid.Gauges {
		s := g.Gauge.AnimationSpeed() * f
		if s < minSpeed {
			s = minSpeed
		}
		if s > maxSpeed {
			s = maxSpeed
		}
		g.Gauge.SetAnimationSpeed(s)
	}
}
