package devices

import (
	"fmt"
	"log"
	"strings"

	"github.com/VictoriaMetrics/metrics"
	"github.com/shirou/gopsutil/v3/disk"
)

// Partition represents a mounted partition.
type Partition struct {
	// Device is the operating system's name for the raw device
	Device string
	// MountPoint is where the operating systems mounts the device
	MountPoint string
	// BytesRead is the total number of bytes read through the device
	BytesRead uint64
	// BytesWritten is the total number of bytes written through the device
	BytesWritten uint64
	// UsedPercent is in [0,100]
	UsedPercent float64
	// Free is how many bytes are free on the partition
	Free uint64
}

// Disk is a set of all partitions, keyed by mount point
type Disk map[string]*Partition

func NewDisk() Disk {
	return make(Disk)
}

// LocalDisk creates a new local disk device
func LocalDisk() Disk {
	return NewDisk()
}

// skipPartition reports whether a partition is never shown: loop devices and
// docker container filesystems.
func skipPartition(p disk.PartitionStat) bool {
	return strings.HasPrefix(p.Device, "/dev/loop") ||
		strings.HasPrefix(p.Mountpoint, "/var/lib/docker/")
}

// Update refreshes partition information, adding newly discovered partitions
// and removing ones that have disappeared.
//
// Recoverable errors get logged, not returned
func (dsk Disk) Update() error {
	ps, err := disk.Partitions(false)
	if err != nil {
		return fmt.Errorf("disk partitions setup error: %w", err)
	}
	seen := make(map[string]bool, len(ps))
	for _, p := range ps {
		if skipPartition(p) {
			continue
		}
		seen[p.Mountpoint] = true
		part, ok := dsk[p.Mountpoint]
		if !ok {
			part = &Partition{Device: p.Device, MountPoint: p.Mountpoint}
			dsk[p.Mountpoint] = part
		}

		usage, err := disk.Usage(part.MountPoint)
		if err != nil {
			log.Printf("recoverable error fetching disk usage for partition %s: %v", part.MountPoint, err)
			continue
		}
		part.UsedPercent = usage.UsedPercent
		part.Free = usage.Free

		ioCounters, err := disk.IOCounters(part.Device)
		if err != nil {
			continue
		}
		ioCounter := ioCounters[strings.TrimPrefix(part.Device, "/dev/")]
		part.BytesRead, part.BytesWritten = ioCounter.ReadBytes, ioCounter.WriteBytes
	}
	for mp := range dsk {
		if !seen[mp] {
			delete(dsk, mp)
		}
	}
	return nil
}

// EnableMetrics creates usage gauges for the partitions known at call time.
func (dsk Disk) EnableMetrics(s *metrics.Set) {
	for key, part := range dsk {
		pc := part
		s.NewGauge(makeName("disk", "usedpc", key), func() float64 {
			return pc.UsedPercent
		})
		s.NewGauge(makeName("disk", "free", key), func() float64 {
			return float64(pc.Free)
		})
		s.NewGauge(makeName("disk", "read", key), func() float64 {
			return float64(pc.BytesRead)
		})
		s.NewGauge(makeName("disk", "write", key), func() float64 {
			return float64(pc.BytesWritten)
		})
	}
}

func mountPoints() ([]string, error) {
	ps, err := disk.Partitions(false)
	if err != nil {
		return nil, fmt.Errorf("disk partitions setup error: %w", err)
	}
	rv := make([]string, 0, len(ps))
	for _, p := range ps {
		if !skipPartition(p) {
			rv = append(rv, p.Mountpoint)
		}
	}
	return rv, nil
}
