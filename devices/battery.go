package devices

import (
	"errors"
	"fmt"

	"github.com/VictoriaMetrics/metrics"
	"github.com/distatus/battery"
)

type BatteryInfo struct {
	Full       float64
	Current    float64
	ChargeRate float64
	Design     float64
}

type Batteries struct {
	Data []BatteryInfo
	// PercentFull is [0,100], weighted by battery capacity
	PercentFull float64
}

func NewBatteries() Batteries {
	return Batteries{Data: make([]BatteryInfo, 0)}
}

// LocalBatteries tracks the batteries of this host.
func LocalBatteries() Batteries {
	return NewBatteries()
}

func (b *Batteries) Update() error {
	bats, err := battery.GetAll()
	if err != nil && len(bats) == 0 {
		return fmt.Errorf("error reading batteries: %w", err)
	}
	infos := make([]BatteryInfo, 0, len(bats))
	for _, bat := range bats {
		// partial results leave a nil for every battery that failed
		if bat == nil {
			continue
		}
		infos = append(infos, BatteryInfo{
			Full:       bat.Full,
			Current:    bat.Current,
			ChargeRate: bat.ChargeRate,
			Design:     bat.Design,
		})
	}
	return b.set(infos)
}

func (b *Batteries) set(infos []BatteryInfo) error {
	if len(infos) < 1 {
		return errors.New("no batteries")
	}
	var fullSum, currentSum float64
	for _, bat := range infos {
		fullSum += bat.Full
		currentSum += bat.Current
	}
	// keep the slice header so metric closures see new values
	b.Data = append(b.Data[:0], infos...)
	if fullSum == 0 {
		b.PercentFull = 0
		return nil
	}
	b.PercentFull = currentSum / fullSum * 100
	return nil
}

func (b *Batteries) EnableMetrics(s *metrics.Set) {
	s.NewGauge(makeName("batt", "percent"), func() float64 {
		return b.PercentFull
	})
	batsSeen := make(map[float64]int)
	for i, bat := range b.Data {
		// the library has no battery id, so the immutable design capacity stands in for one
		key := fmt.Sprintf("%d:%.0f", batsSeen[bat.Design], bat.Design)
		batsSeen[bat.Design]++
		idx := i
		s.NewGauge(makeName("batt", key, "total"), func() float64 {
			if idx >= len(b.Data) {
				return 0
			}
			d := b.Data[idx]
			if d.Current == 0 || d.Full == 0 {
				return 0.0
			}
			return d.Current / d.Full
		})
	}
}
