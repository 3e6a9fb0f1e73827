package devices

import (
	"fmt"
	"log"
	"sort"

	"github.com/VictoriaMetrics/metrics"
	"github.com/jaypipes/ghw"

	"github.com/xxxserxxx/gogauge"
)

type Device interface {
	Update() error
	EnableMetrics(*metrics.Set)
}

// Startup is called after configuration has been parsed, and initializes
// devices.
//
// names is the list of widget names in the layout; each maps to the device
// that feeds it. Startup attempts to start everything and continues when it
// encounters errors; any collected errors are returned, and devices which
// fail their first Update are not included in the returned map.
//
// Devices are not polled in the background. The caller samples them with
// UpdateAll from the goroutine that owns the gauges.
func Startup(names []string, c gogauge.Config) (map[string]Device, []error) {
	devs := make(map[string]Device)
	var errs []error
	for _, n := range names {
		key := DeviceFor(n)
		if _, ok := devs[key]; ok {
			continue
		}
		var d Device
		switch key {
		case "batt":
			bat := LocalBatteries()
			d = &bat
		case "cpu":
			cpu := LocalCPUs(false)
			d = &cpu
		case "disk":
			d = LocalDisk()
		case "mem":
			d = LocalMemory()
		case "net":
			net := LocalNetwork(c.NetInterface, false)
			d = &net
		case "temp":
			tmp := LocalTemperature(c.Temps)
			d = &tmp
		default:
			log.Print(c.Tr.Value("error.unknowndevice", n))
			continue
		}
		if err := d.Update(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
			continue
		}
		if c.MetricsFile != "" && c.Metrics != nil {
			d.EnableMetrics(c.Metrics)
		}
		devs[key] = d
	}
	return devs, errs
}

// DeviceFor maps a widget name to the device that feeds it.
func DeviceFor(widget string) string {
	switch widget {
	case "swap":
		return "mem"
	case "power":
		return "batt"
	}
	return widget
}

// UpdateAll samples every device once, in name order. Errors are returned
// rather than stopping the remaining updates.
func UpdateAll(devs map[string]Device) []error {
	names := make([]string, 0, len(devs))
	for n := range devs {
		names = append(names, n)
	}
	sort.Strings(names)
	var errs []error
	for _, n := range names {
		if err := devs[n].Update(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", n, err))
		}
	}
	return errs
}

// Domains lists the device groups that Devices can enumerate.
func Domains() []string {
	return []string{"CPU", "Disk", "Network", "Temperatures"}
}

// Devices returns the names of the devices available under domain, e.g. the
// sensor names under "Temperatures". The names are the ones the config
// filters match against.
func Devices(domain string) []string {
	switch domain {
	case "CPU":
		return cpuModels()
	case "Temperatures":
		return thermalSensorNames()
	case "Disk":
		ps, _ := mountPoints()
		return ps
	case "Network":
		is, _ := interfaces()
		return is
	default:
		return []string{}
	}
}

// cpuModels returns the model name of each physical processor package.
func cpuModels() []string {
	info, err := ghw.CPU()
	if err != nil {
		log.Printf("cpu info: %s", err)
		return []string{}
	}
	rv := make([]string, 0, len(info.Processors))
	for _, p := range info.Processors {
		rv = append(rv, fmt.Sprintf("%s (%d cores, %d threads)", p.Model, p.NumCores, p.NumThreads))
	}
	return rv
}
