package devices

import (
	"errors"

	"github.com/VictoriaMetrics/metrics"
	"github.com/jaypipes/ghw"
	"github.com/shirou/gopsutil/v3/cpu"
)

type CPUs struct {
	// Name is the processor model, or "CPU" if it cannot be read
	Name string
	// Data holds one load percentage per logical CPU when Logical is set,
	// otherwise a single combined value
	Data    []float64
	Average float64
	Logical bool
}

func NewCPUs(name string, logical bool) CPUs {
	return CPUs{
		Name:    name,
		Data:    make([]float64, 0),
		Logical: logical,
	}
}

func LocalCPUs(logical bool) CPUs {
	name := "CPU"
	if info, err := ghw.CPU(); err == nil && len(info.Processors) > 0 && info.Processors[0].Model != "" {
		name = info.Processors[0].Model
	}
	return NewCPUs(name, logical)
}

// Update samples the load since the previous call, per CPU or combined.
func (c *CPUs) Update() error {
	vals, err := cpu.Percent(0, c.Logical)
	if err != nil {
		return err
	}
	return c.set(vals)
}

func (c *CPUs) set(vals []float64) error {
	if len(vals) == 0 {
		return errors.New("no cpu load reported")
	}
	c.Data = vals
	c.Average = 0
	for _, v := range vals {
		c.Average += v
	}
	c.Average = c.Average / float64(len(vals))
	return nil
}

func (c *CPUs) EnableMetrics(s *metrics.Set) {
	s.NewGauge(makeName("cpu", "avg"), func() float64 {
		return c.Average
	})
	for i := range c.Data {
		idx := i
		s.NewGauge(makeName("cpu", i), func() float64 {
			if idx >= len(c.Data) {
				return 0
			}
			return c.Data[idx]
		})
	}
}
