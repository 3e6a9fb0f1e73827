package devices

import (
	"github.com/VictoriaMetrics/metrics"
	"github.com/shirou/gopsutil/v3/mem"
)

type MemoryInfo struct {
	Total       uint64
	Used        uint64
	UsedPercent float64
}

// Memory is keyed by "Main" and "Swap".
type Memory map[string]*MemoryInfo

func NewMemory() Memory {
	return make(Memory)
}

func LocalMemory() Memory {
	m := NewMemory()
	m["Main"] = &MemoryInfo{}
	m["Swap"] = &MemoryInfo{}
	return m
}

func (m Memory) Update() error {
	mainMemory, err := mem.VirtualMemory()
	if err != nil {
		return err
	}
	me := m["Main"]
	me.Total = mainMemory.Total
	me.Used = mainMemory.Used
	me.UsedPercent = mainMemory.UsedPercent
	return m.UpdateSwap()
}

// UpdateSwap refreshes the "Swap" entry.
func (m Memory) UpdateSwap() error {
	swap, err := mem.SwapMemory()
	if err != nil {
		return err
	}
	me := m["Swap"]
	me.Total = swap.Total
	me.Used = swap.Used
	me.UsedPercent = swap.UsedPercent
	return nil
}

func (m Memory) EnableMetrics(s *metrics.Set) {
	for k, v := range m {
		vp := v
		s.NewGauge(makeName("memory", "total", k), func() float64 {
			return float64(vp.Total)
		})
		s.NewGauge(makeName("memory", "used", k), func() float64 {
			return float64(vp.Used)
		})
		s.NewGauge(makeName("memory", "usedpc", k), func() float64 {
			return vp.UsedPercent
		})
	}
}
