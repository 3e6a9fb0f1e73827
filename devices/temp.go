package devices

import (
	"log"
	"sort"
	"strings"

	"github.com/VictoriaMetrics/metrics"
	"github.com/shirou/gopsutil/v3/host"
)

type Temperature struct {
	temps  map[string]float64
	filter filter
}

func NewTemperature() Temperature {
	return Temperature{temps: make(map[string]float64)}
}

// LocalTemperature sets up tracking for a filtered list of thermal sensors;
// see filter for the rule syntax. Sensor names are the ones listed by
// `--list devices`.
func LocalTemperature(rules []string) Temperature {
	t := NewTemperature()
	t.filter = newFilter(rules)
	return t
}

func (t *Temperature) Update() error {
	sensors, err := host.SensorsTemperatures()
	// some platforms return partial readings along with a warning
	if err != nil && len(sensors) == 0 {
		return err
	}
	t.update(sensors, smartTemps())
	return nil
}

func (t *Temperature) update(sensors []host.TemperatureStat, extra map[string]float64) {
	tmps := make(map[string]float64, len(sensors)+len(extra))
	for _, sensor := range sensors {
		name := sensorLabel(sensor.SensorKey)
		if t.filter.match(name) {
			tmps[name] = sensor.Temperature
		}
	}
	for name, v := range extra {
		if t.filter.match(name) {
			tmps[name] = v
		}
	}
	t.temps = tmps
}

// Temps returns a copy of the latest readings in °C, keyed by sensor name.
func (t *Temperature) Temps() map[string]float64 {
	rv := make(map[string]float64, len(t.temps))
	for k, v := range t.temps {
		rv[k] = v
	}
	return rv
}

// Hottest returns the sensor with the highest reading. Ties go to the name
// that sorts first.
func (t *Temperature) Hottest() (string, float64, bool) {
	names := make([]string, 0, len(t.temps))
	for k := range t.temps {
		names = append(names, k)
	}
	if len(names) == 0 {
		return "", 0, false
	}
	sort.Strings(names)
	best := names[0]
	for _, n := range names[1:] {
		if t.temps[n] > t.temps[best] {
			best = n
		}
	}
	return best, t.temps[best], true
}

func (t *Temperature) EnableMetrics(s *metrics.Set) {
	for k := range t.temps {
		kc := k
		s.NewGauge(makeName("temp", k), func() float64 {
			return t.temps[kc]
		})
	}
}

func sensorLabel(key string) string {
	label := strings.TrimSuffix(key, "_input")
	return strings.TrimSuffix(label, "_thermal")
}

// All possible thermometers
func thermalSensorNames() []string {
	sensors, err := host.SensorsTemperatures()
	if err != nil && len(sensors) == 0 {
		log.Printf("no temperature sensors returned: %s", err)
	}
	rv := make([]string, 0, len(sensors))
	for _, sensor := range sensors {
		rv = append(rv, sensorLabel(sensor.SensorKey))
	}
	for name := range smartTemps() {
		rv = append(rv, name)
	}
	sort.Strings(rv)
	return rv
}
