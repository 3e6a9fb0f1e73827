//go:build linux

package devices

import (
	"os"
	"strings"

	"github.com/anatol/smart.go"
)

// smartSkip remembers drives that could not be opened, usually for lack of
// privileges, so they are not retried on every sample.
var smartSkip = make(map[string]bool)

// smartTemps reads drive temperatures from NVMe and SATA SMART data, keyed
// "smart:<device>".
func smartTemps() map[string]float64 {
	rv := make(map[string]float64)
	entries, err := os.ReadDir("/sys/block")
	if err != nil {
		return rv
	}
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, "nvme") && !strings.HasPrefix(name, "sd") {
			continue
		}
		if smartSkip[name] {
			continue
		}
		dev, err := smart.Open("/dev/" + name)
		if err != nil {
			smartSkip[name] = true
			continue
		}
		attrs, err := dev.ReadGenericAttributes()
		dev.Close()
		if err != nil {
			smartSkip[name] = true
			continue
		}
		rv["smart:"+name] = float64(attrs.Temperature)
	}
	return rv
}
