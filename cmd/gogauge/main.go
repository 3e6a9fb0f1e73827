package main

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cloudfoundry-attic/jibber_jabber"
	"github.com/droundy/goopt"
	"github.com/shibukawa/configdir"
	"github.com/xxxserxxx/lingo/v2"

	"github.com/xxxserxxx/gogauge"
	"github.com/xxxserxxx/gogauge/colorschemes"
	"github.com/xxxserxxx/gogauge/devices"
	"github.com/xxxserxxx/gogauge/gauge"
	"github.com/xxxserxxx/gogauge/layout"
	"github.com/xxxserxxx/gogauge/logging"
	"github.com/xxxserxxx/gogauge/raster"
	"github.com/xxxserxxx/gogauge/tui"
	"github.com/xxxserxxx/gogauge/widgets"
)

// snapshotFrames is enough fixed frames for a needle at the default speed
// to settle.
const snapshotFrames = 120

var (
	// Version of the program; set during build from git tags
	Version = "0.0.0"
	// BuildDate when the program was compiled; set during build
	BuildDate    = "Hadean"
	conf         gogauge.Config
	stderrLogger = log.New(os.Stderr, "", 0)
	tr           lingo.Translations
)

func parseArgs() error {
	goopt.Summary = tr.Value("usage", filepath.Base(os.Args[0]))
	color := goopt.String([]string{"-c", "--color"}, conf.Colorscheme.Name, tr.Value("args.color"))
	lay := goopt.String([]string{"-l", "--layout"}, conf.Layout, tr.Value("args.layout"))
	rate := goopt.String([]string{"-r", "--rate"}, conf.UpdateInterval.String(), tr.Value("args.rate"))
	fps := goopt.Int([]string{"--fps"}, conf.FrameRate, tr.Value("args.fps"))
	gtype := goopt.String([]string{"-t", "--type"}, conf.GaugeType.String(), tr.Value("args.type", strings.Join(gauge.Types(), "|")))
	style := goopt.String([]string{"--style"}, conf.GaugeStyle.String(), tr.Value("args.style"))
	noAnimation := goopt.Flag([]string{"--no-animation"}, nil, tr.Value("args.noanimation"), "")
	speed := goopt.String([]string{"--speed"}, strconv.FormatFloat(conf.AnimationSpeed, 'g', -1, 64), tr.Value("args.speed"))
	fixedStep := goopt.Flag([]string{"--fixed-step"}, nil, tr.Value("args.fixedstep"), "")
	fahrenheit := goopt.Flag([]string{"-f", "--fahrenheit"}, nil, tr.Value("args.temp"), "")
	statusbar := goopt.Flag([]string{"-s", "--statusbar"}, nil, tr.Value("args.statusbar"), "")
	zonesOn := goopt.Flag([]string{"--zones"}, nil, tr.Value("args.zones"), "")
	zonesOff := goopt.Flag([]string{"--no-zones"}, nil, tr.Value("args.nozones"), "")
	ifaces := goopt.String([]string{"--interface"}, "", tr.Value("args.net"))
	disk := goopt.String([]string{"--disk"}, conf.DiskMount, tr.Value("args.disk"))
	metricsFile := goopt.String([]string{"--metrics-file"}, conf.MetricsFile, tr.Value("args.metricsfile"))
	snapshot := goopt.String([]string{"--snapshot"}, "", tr.Value("args.snapshot"))
	snapshotSize := goopt.String([]string{"--snapshot-size"}, fmt.Sprintf("%dx%d", conf.SnapshotSize.X, conf.SnapshotSize.Y), tr.Value("args.snapshotsize"))
	list := goopt.String([]string{"--list"}, "", tr.Value("args.list"))
	wc := goopt.Flag([]string{"--write-config"}, nil, tr.Value("args.write"), "")
	goopt.String([]string{"-C"}, "", tr.Value("args.conffile"))
	version := goopt.Flag([]string{"-v", "--version"}, nil, tr.Value("args.version"), "")
	goopt.Parse(nil)

	if *version {
		fmt.Printf("gogauge %s (%s)\n", Version, BuildDate)
		os.Exit(0)
	}
	cs, err := colorschemes.FromName(conf.ConfigDir, *color)
	if err != nil {
		return err
	}
	conf.Colorscheme = cs
	conf.Layout = *lay
	if conf.UpdateInterval, err = time.ParseDuration(*rate); err != nil {
		return err
	}
	if *fps <= 0 {
		return errors.New(tr.Value("config.err.framerate", strconv.Itoa(*fps)))
	}
	conf.FrameRate = *fps
	t, ok := gauge.ParseType(*gtype)
	if !ok {
		return errors.New(tr.Value("config.err.gaugetype", *gtype, strings.Join(gauge.Types(), ", ")))
	}
	conf.GaugeType = t
	s, ok := gauge.ParseStyle(*style)
	if !ok {
		return errors.New(tr.Value("config.err.gaugestyle", *style))
	}
	conf.GaugeStyle = s
	if *noAnimation {
		conf.Animation = false
	}
	if conf.AnimationSpeed, err = gogauge.ParseSpeed(*speed); err != nil {
		return errors.New(tr.Value("config.err.speed", *speed))
	}
	if *fixedStep {
		conf.FixedStep = true
	}
	if *fahrenheit {
		conf.TempScale = gogauge.Fahrenheit
	}
	if *statusbar {
		conf.Statusbar = true
	}
	if *zonesOn {
		conf.Zones = true
	}
	if *zonesOff {
		conf.Zones = false
	}
	if *ifaces != "" {
		conf.NetInterface = strings.Split(*ifaces, ",")
	}
	conf.DiskMount = *disk
	conf.MetricsFile = *metricsFile
	conf.Snapshot = *snapshot
	if conf.SnapshotSize, err = gogauge.ParseSize(*snapshotSize); err != nil {
		return err
	}
	if *list != "" {
		if err := listItems(*list); err != nil {
			return err
		}
		os.Exit(0)
	}
	if *wc {
		path, err := conf.Write()
		if err != nil {
			fmt.Println(tr.Value("error.writefail", err.Error()))
			os.Exit(1)
		}
		fmt.Println(tr.Value("help.written", path))
		os.Exit(0)
	}
	return nil
}

func listItems(what string) error {
	switch what {
	case "layouts":
		fmt.Println(tr.Value("help.layouts"))
		for _, n := range layout.Builtins() {
			fmt.Printf("\t%s\n", n)
		}
	case "colorschemes":
		fmt.Println(tr.Value("help.colorschemes"))
		for _, n := range colorschemes.Names() {
			fmt.Printf("\t%s\n", n)
		}
	case "paths":
		fmt.Println(tr.Value("help.paths"))
		paths := make([]string, 0)
		for _, d := range conf.ConfigDir.QueryFolders(configdir.All) {
			paths = append(paths, d.Path)
		}
		fmt.Println(strings.Join(paths, "\n"))
		fmt.Println()
		fmt.Println(tr.Value("help.log", filepath.Join(conf.ConfigDir.QueryCacheFolder().Path, logging.LOGFILE)))
	case "devices":
		listDevices()
	case "keys":
		fmt.Println(tr.Value("help.menu"))
	case "types":
		fmt.Println(tr.Value("help.types"))
		for _, n := range gauge.Types() {
			fmt.Printf("\t%s\n", n)
		}
	case "langs":
		return fs.WalkDir(gogauge.Dicts, ".", func(pth string, info fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() { // We skip these
				return nil
			}
			fileName := info.Name()
			if strings.HasSuffix(fileName, ".toml") {
				fmt.Println(strings.TrimSuffix(fileName, ".toml"))
			}
			return nil
		})
	default:
		fmt.Println(tr.Value("error.unknownopt", what))
		os.Exit(1)
	}
	return nil
}

// configFlag finds the value of -C, which must be known before the config
// file is loaded and the remaining flags are parsed over it.
func configFlag(args []string) string {
	for i, a := range args {
		if a == "-C" && i+1 < len(args) {
			return args[i+1]
		}
		if strings.HasPrefix(a, "-C=") {
			return strings.TrimPrefix(a, "-C=")
		}
	}
	return ""
}

func main() {
	var ec int
	defer func() {
		if ec > 0 {
			if ec < 2 {
				logpath := filepath.Join(conf.ConfigDir.QueryCacheFolder().Path, logging.LOGFILE)
				fmt.Println(tr.Value("error.checklog", logpath))
				bs, _ := os.ReadFile(logpath)
				fmt.Println(string(bs))
			}
		}
		os.Exit(ec)
	}()

	ling, err := lingo.New("en_US", ".", gogauge.Dicts)
	if err != nil {
		fmt.Printf("failed to load language files: %s\n", err)
		ec = 2
		return
	}
	lang, err := jibber_jabber.DetectIETF()
	if err != nil {
		lang = "en_US"
	}
	lang = strings.Replace(lang, "-", "_", -1)
	// Get the locale from the os
	tr = ling.TranslationsForLocale(lang)
	widgets.SetTr(tr)
	layout.SetTr(tr)
	conf = gogauge.NewConfig()
	conf.Tr = tr
	// Find the config file; look in (1) local, (2) user, (3) global
	if cfg := configFlag(os.Args[1:]); cfg != "" {
		conf.ConfigFile = cfg
	}
	err = conf.Load()
	if err != nil {
		fmt.Println(tr.Value("error.configparse", err.Error()))
		ec = 2
		return
	}
	// Override with command line arguments
	err = parseArgs()
	if err != nil {
		fmt.Println(tr.Value("error.cliparse", err.Error()))
		ec = 2
		return
	}

	logfile, err := logging.New(conf)
	if err != nil {
		fmt.Println(tr.Value("logsetup", err.Error()))
		ec = 2
		return
	}
	defer logfile.Close()

	if conf.Snapshot != "" {
		err = writeSnapshot()
	} else {
		err = runUI()
	}
	if err != nil {
		stderrLogger.Print(err)
		ec = 1
		return
	}
	if err = writeMetrics(); err != nil {
		stderrLogger.Print(err)
		ec = 1
		return
	}
	ec = 0
}

func runUI() error {
	ui, err := tui.New(conf)
	if err != nil {
		return err
	}
	defer ui.ShutdownUI()
	return ui.LoopUI()
}

// writeSnapshot samples the layout's devices once and draws the gauges,
// settled, into a PNG.
func writeSnapshot() error {
	lstream, err := layout.GetLayout(conf)
	if err != nil {
		return err
	}
	ly := layout.ParseLayout(lstream)
	devs, errs := devices.Startup(ly.Names(), conf)
	for _, err := range errs {
		log.Print(err)
	}
	// rates and CPU load need a second sample to mean anything
	time.Sleep(conf.UpdateInterval)
	for _, err := range devices.UpdateAll(devs) {
		log.Print(err)
	}
	size := conf.SnapshotSize
	host, ws := layout.NewHost(ly, conf, devs, image.Rect(0, 0, size.X, size.Y))
	ws.Update()
	img := raster.Snapshot(size.X, size.Y, host, snapshotFrames)
	f, err := os.Create(conf.Snapshot)
	if err != nil {
		return err
	}
	if err := raster.WritePNG(f, img); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", conf.Snapshot, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Println(tr.Value("help.snapshot", conf.Snapshot))
	return nil
}

// writeMetrics dumps the metrics set in the Prometheus text format.
func writeMetrics() error {
	if conf.MetricsFile == "" {
		return nil
	}
	f, err := os.Create(conf.MetricsFile)
	if err != nil {
		return err
	}
	conf.Metrics.WritePrometheus(f)
	return f.Close()
}

func listDevices() {
	ms := devices.Domains()
	sort.Strings(ms)
	for _, m := range ms {
		fmt.Printf("%s:\n", m)
		for _, d := range devices.Devices(m) {
			fmt.Printf("\t%s\n", d)
		}
	}
}
