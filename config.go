package gogauge

import (
	"bufio"
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/shibukawa/configdir"
	"github.com/xxxserxxx/lingo/v2"

	"github.com/xxxserxxx/gogauge/colorschemes"
	"github.com/xxxserxxx/gogauge/gauge"
)

//go:embed "dicts/*.toml"
var Dicts embed.FS

// CONFFILE is the name of the default config file
const CONFFILE = "gogauge.conf"

type Config struct {
	ConfigDir   configdir.ConfigDir
	ConfigFile  string
	Colorscheme colorschemes.Colorscheme
	Layout      string

	UpdateInterval time.Duration
	FrameRate      int
	FixedStep      bool

	GaugeType      gauge.Type
	GaugeStyle     gauge.Style
	Animation      bool
	AnimationSpeed float64
	MajorTicks     int
	MinorTicks     int
	TickLabels     bool
	NeedleLength   float64
	NeedleWidth    float64
	Zones          bool

	TempScale    TempScale
	Temps        []string
	NetInterface []string
	DiskMount    string

	Statusbar   bool
	HelpVisible bool

	MaxLogSize   int64
	MetricsFile  string
	Snapshot     string
	SnapshotSize image.Point

	Tr      lingo.Translations
	Metrics *metrics.Set
}

type TempScale rune

const (
	Celsius    TempScale = 'C'
	Fahrenheit TempScale = 'F'
)

// AllDevices lists the widget names a layout may use. Each name is also the
// device that feeds it, except swap, which reads the mem device.
func AllDevices() []string {
	return []string{"batt", "cpu", "disk", "mem", "net", "swap", "temp"}
}

func NewConfig() Config {
	cd := configdir.New("", "gogauge")
	cd.LocalPath, _ = filepath.Abs(".")
	conf := Config{
		ConfigDir:      cd,
		Layout:         "default",
		UpdateInterval: time.Second,
		FrameRate:      60,
		GaugeType:      gauge.Circular,
		GaugeStyle:     gauge.Modern,
		Animation:      true,
		AnimationSpeed: 5,
		MajorTicks:     10,
		MinorTicks:     5,
		TickLabels:     true,
		NeedleLength:   0.8,
		NeedleWidth:    3,
		Zones:          true,
		TempScale:      Celsius,
		NetInterface:   make([]string, 0),
		DiskMount:      "/",
		MaxLogSize:     5000000,
		SnapshotSize:   image.Pt(800, 600),
		Metrics:        metrics.NewSet(),
	}
	conf.Colorscheme, _ = colorschemes.FromName(conf.ConfigDir, "default")
	folder := conf.ConfigDir.QueryFolderContainsFile(CONFFILE)
	if folder != nil {
		conf.ConfigFile = filepath.Join(folder.Path, CONFFILE)
	}
	return conf
}

// FrameInterval is the time between rendered frames.
func (conf Config) FrameInterval() time.Duration {
	if conf.FrameRate <= 0 {
		return gauge.FixedFrameDelta
	}
	return time.Second / time.Duration(conf.FrameRate)
}

// Load reads ConfigFile, if one is set. A relative name that does not exist
// is looked up in the config folders.
func (conf *Config) Load() error {
	if conf.ConfigFile == "" {
		return nil
	}
	if _, err := os.Stat(conf.ConfigFile); os.IsNotExist(err) {
		folder := conf.ConfigDir.QueryFolderContainsFile(conf.ConfigFile)
		if folder == nil {
			return nil
		}
		conf.ConfigFile = filepath.Join(folder.Path, conf.ConfigFile)
	}
	in, err := os.ReadFile(conf.ConfigFile)
	if err != nil {
		return err
	}
	return load(bytes.NewReader(in), conf)
}

func load(in io.Reader, conf *Config) error {
	r := bufio.NewScanner(in)
	var lineNo int
	for r.Scan() {
		lineNo++
		l := strings.TrimSpace(r.Text())
		if len(l) == 0 || l[0] == '#' {
			continue
		}
		kv := strings.SplitN(l, "=", 2)
		if len(kv) != 2 {
			return errors.New(conf.Tr.Value("config.err.configsyntax", l))
		}
		key := strings.ToLower(strings.TrimSpace(kv[0]))
		val := strings.TrimSpace(kv[1])
		ln := strconv.Itoa(lineNo)
		if err := conf.set(key, val, ln); err != nil {
			return err
		}
	}
	return r.Err()
}

func (conf *Config) set(key, val, ln string) error {
	var err error
	switch key {
	default:
		log.Print(conf.Tr.Value("config.err.unknown", key))
	case colorscheme:
		var cs colorschemes.Colorscheme
		if cs, err = colorschemes.FromName(conf.ConfigDir, val); err == nil {
			conf.Colorscheme = cs
		}
	case layout:
		conf.Layout = val
	case updateinterval:
		conf.UpdateInterval, err = parseDuration(val)
	case framerate:
		conf.FrameRate, err = strconv.Atoi(val)
		if err == nil && conf.FrameRate <= 0 {
			err = errors.New(conf.Tr.Value("config.err.framerate", val))
		}
	case fixedstep:
		conf.FixedStep, err = strconv.ParseBool(val)
	case gaugetype:
		t, ok := gauge.ParseType(val)
		if !ok {
			err = errors.New(conf.Tr.Value("config.err.gaugetype", val, strings.Join(gauge.Types(), ", ")))
		}
		conf.GaugeType = t
	case gaugestyle:
		s, ok := gauge.ParseStyle(val)
		if !ok {
			err = errors.New(conf.Tr.Value("config.err.gaugestyle", val))
		}
		conf.GaugeStyle = s
	case animation:
		conf.Animation, err = strconv.ParseBool(val)
	case animationspeed:
		var speed float64
		if speed, err = ParseSpeed(val); err == nil {
			conf.AnimationSpeed = speed
		} else {
			err = errors.New(conf.Tr.Value("config.err.speed", val))
		}
	case majorticks:
		conf.MajorTicks, err = strconv.Atoi(val)
	case minorticks:
		conf.MinorTicks, err = strconv.Atoi(val)
	case ticklabels:
		conf.TickLabels, err = strconv.ParseBool(val)
	case needlelength:
		conf.NeedleLength, err = strconv.ParseFloat(val, 64)
	case needlewidth:
		conf.NeedleWidth, err = strconv.ParseFloat(val, 64)
	case zones:
		conf.Zones, err = strconv.ParseBool(val)
	case tempscale:
		switch val {
		case "C":
			conf.TempScale = Celsius
		case "F":
			conf.TempScale = Fahrenheit
		default:
			conf.TempScale = Celsius
			return errors.New(conf.Tr.Value("config.err.tempscale", val))
		}
	case temperatures:
		conf.Temps = splitList(val)
	case netinterface:
		conf.NetInterface = splitList(val)
	case diskmount:
		conf.DiskMount = val
	case statusbar:
		conf.Statusbar, err = strconv.ParseBool(val)
	case helpvisible:
		conf.HelpVisible, err = strconv.ParseBool(val)
	case maxlogsize:
		conf.MaxLogSize, err = strconv.ParseInt(val, 10, 64)
	case metricsfile:
		conf.MetricsFile = val
	case snapshotsize:
		conf.SnapshotSize, err = ParseSize(val)
	case "configdir", "logdir", "logfile":
		log.Print(conf.Tr.Value("config.err.deprecation", ln, key, val))
	}
	if err != nil {
		return fmt.Errorf("%s: %w", conf.Tr.Value("config.err.line", ln), err)
	}
	return nil
}

// parseDuration accepts Go duration strings and, for older files, a bare
// number of nanoseconds.
func parseDuration(s string) (time.Duration, error) {
	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	return time.Duration(n), nil
}

// ParseSpeed reads an animation speed, which must be a non-negative finite
// number.
func ParseSpeed(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid speed %q", s)
	}
	return v, nil
}

// ParseSize reads a "WxH" pixel size.
func ParseSize(s string) (image.Point, error) {
	parts := strings.SplitN(strings.ToLower(s), "x", 2)
	if len(parts) != 2 {
		return image.Point{}, fmt.Errorf("invalid size %q, want WxH", s)
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil {
		return image.Point{}, fmt.Errorf("invalid size %q: %w", s, err)
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil {
		return image.Point{}, fmt.Errorf("invalid size %q: %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return image.Point{}, fmt.Errorf("invalid size %q, both sides must be positive", s)
	}
	return image.Pt(w, h), nil
}

func splitList(s string) []string {
	if s == "" {
		return []string{}
	}
	rv := strings.Split(s, ",")
	for i := range rv {
		rv[i] = strings.TrimSpace(rv[i])
	}
	return rv
}

// Write serializes the configuration to a file.
// The configuration written is based on the loaded configuration, plus any
// command-line changes, so it can be used to update an existing configuration
// file. The file will be written to the `-C` file, if one is set; otherwise,
// it'll create one in the user's config directory.
func (conf *Config) Write() (string, error) {
	var dir *configdir.Config
	file := CONFFILE
	if conf.ConfigFile == "" {
		ds := conf.ConfigDir.QueryFolders(configdir.Global)
		if len(ds) == 0 {
			ds = conf.ConfigDir.QueryFolders(configdir.Local)
			if len(ds) == 0 {
				return "", errors.New(conf.Tr.Value("config.err.nofolders"))
			}
		}
		if err := ds[0].CreateParentDir(CONFFILE); err != nil {
			return "", err
		}
		dir = ds[0]
	} else {
		dir = &configdir.Config{Path: filepath.Dir(conf.ConfigFile)}
		file = filepath.Base(conf.ConfigFile)
	}
	if err := dir.WriteFile(file, marshal(conf)); err != nil {
		return "", err
	}
	return filepath.Join(dir.Path, file), nil
}

func marshal(c *Config) []byte {
	buff := bytes.NewBuffer(nil)
	fmt.Fprintln(buff, "# The color scheme to use.  See `--list colorschemes`")
	fmt.Fprintf(buff, "%s=%s\n", colorscheme, c.Colorscheme.Name)
	fmt.Fprintln(buff, "# A layout name. See `--list layouts`")
	fmt.Fprintf(buff, "%s=%s\n", layout, c.Layout)
	fmt.Fprintln(buff, "# How often devices are sampled, e.g. 1s or 500ms")
	fmt.Fprintf(buff, "%s=%s\n", updateinterval, c.UpdateInterval)
	fmt.Fprintln(buff, "# Frames drawn per second")
	fmt.Fprintf(buff, "%s=%d\n", framerate, c.FrameRate)
	fmt.Fprintln(buff, "# If true, animate by a fixed 1/60s per frame instead of the measured frame time")
	fmt.Fprintf(buff, "%s=%t\n", fixedstep, c.FixedStep)
	fmt.Fprintln(buff, "# Gauge type used when the layout does not name one. See `--list types`")
	fmt.Fprintf(buff, "%s=%s\n", gaugetype, c.GaugeType)
	fmt.Fprintln(buff, "# Gauge style: modern, classic, digital or minimalist")
	fmt.Fprintf(buff, "%s=%s\n", gaugestyle, c.GaugeStyle)
	fmt.Fprintln(buff, "# If false, needles jump straight to new values")
	fmt.Fprintf(buff, "%s=%t\n", animation, c.Animation)
	fmt.Fprintln(buff, "# Fraction of the remaining distance covered per second")
	fmt.Fprintf(buff, "%s=%s\n", animationspeed, strconv.FormatFloat(c.AnimationSpeed, 'g', -1, 64))
	fmt.Fprintln(buff, "# Number of major tick intervals, and minor ticks per interval")
	fmt.Fprintf(buff, "%s=%d\n", majorticks, c.MajorTicks)
	fmt.Fprintf(buff, "%s=%d\n", minorticks, c.MinorTicks)
	fmt.Fprintln(buff, "# If true, label the major ticks")
	fmt.Fprintf(buff, "%s=%t\n", ticklabels, c.TickLabels)
	fmt.Fprintln(buff, "# Needle length as a fraction of the radius, and stroke width")
	fmt.Fprintf(buff, "%s=%s\n", needlelength, strconv.FormatFloat(c.NeedleLength, 'g', -1, 64))
	fmt.Fprintf(buff, "%s=%s\n", needlewidth, strconv.FormatFloat(c.NeedleWidth, 'g', -1, 64))
	fmt.Fprintln(buff, "# If true, colour the safe, warning and danger bands")
	fmt.Fprintf(buff, "%s=%t\n", zones, c.Zones)
	fmt.Fprintln(buff, "# Temperature units. C for Celsius, F for Fahrenheit")
	fmt.Fprintf(buff, "%s=%c\n", tempscale, c.TempScale)
	fmt.Fprintln(buff, "# A list of enabled temp sensors.  See `--list devices`")
	if len(c.Temps) == 0 {
		fmt.Fprint(buff, "#")
	}
	fmt.Fprintf(buff, "%s=%s\n", temperatures, strings.Join(c.Temps, ","))
	fmt.Fprintln(buff, "# The network interfaces to monitor; prefix with ! to exclude")
	fmt.Fprintf(buff, "%s=%s\n", netinterface, strings.Join(c.NetInterface, ","))
	fmt.Fprintln(buff, "# Mount point shown by the disk gauge")
	fmt.Fprintf(buff, "%s=%s\n", diskmount, c.DiskMount)
	fmt.Fprintln(buff, "# If true, display a status bar")
	fmt.Fprintf(buff, "%s=%t\n", statusbar, c.Statusbar)
	fmt.Fprintln(buff, "# If true, start the UI with the help visible")
	fmt.Fprintf(buff, "%s=%t\n", helpvisible, c.HelpVisible)
	fmt.Fprintln(buff, "# The maximum log file size, in bytes")
	fmt.Fprintf(buff, "%s=%d\n", maxlogsize, c.MaxLogSize)
	fmt.Fprintln(buff, "# If set, write Prometheus metrics to this file on exit")
	if c.MetricsFile == "" {
		fmt.Fprint(buff, "#")
	}
	fmt.Fprintf(buff, "%s=%s\n", metricsfile, c.MetricsFile)
	fmt.Fprintln(buff, "# Image size used by --snapshot")
	fmt.Fprintf(buff, "%s=%dx%d\n", snapshotsize, c.SnapshotSize.X, c.SnapshotSize.Y)
	return buff.Bytes()
}

const (
	colorscheme    = "colorscheme"
	layout         = "layout"
	updateinterval = "updateinterval"
	framerate      = "framerate"
	fixedstep      = "fixedstep"
	gaugetype      = "gaugetype"
	gaugestyle     = "gaugestyle"
	animation      = "animation"
	animationspeed = "animationspeed"
	majorticks     = "majorticks"
	minorticks     = "minorticks"
	ticklabels     = "ticklabels"
	needlelength   = "needlelength"
	needlewidth    = "needlewidth"
	zones          = "zones"
	tempscale      = "tempscale"
	temperatures   = "temperatures"
	netinterface   = "netinterface"
	diskmount      = "diskmount"
	statusbar      = "statusbar"
	helpvisible    = "helpvisible"
	maxlogsize     = "maxlogsize"
	metricsfile    = "metricsfile"
	snapshotsize   = "snapshotsize"
)
