//go:build !linux

package devices

func smartTemps() map[string]float64 {
	return nil
}
