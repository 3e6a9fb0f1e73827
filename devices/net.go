package devices

import (
	"log"
	"strings"
	"time"

	"github.com/VictoriaMetrics/metrics"
	psnet "github.com/shirou/gopsutil/v3/net"
)

// Interface represents a network interface
type Interface struct {
	// The OS-defined interface name
	IFace string
	// IsVPN will be set to true if the interface name begins with "tun", e.g. "tun0"
	IsVPN bool
	// BytesRecv is the OS-reported sum of bytes received over the interface
	BytesRecv uint64
	// BytesSent is the OS-reported sum of bytes sent over the interface
	BytesSent uint64
	// recvMetric is the metrics counter for received bytes (total)
	recvMetric *metrics.Counter
	// sentMetric is the metrics counter for sent bytes (total)
	sentMetric *metrics.Counter
}

type Network struct {
	// Data is the list of filtered interfaces, indexed by the interface name
	Data map[string]Interface
	// TotalBytesRecv is the last seen total number of bytes received, across all interfaces
	TotalBytesRecv uint64
	// TotalBytesSent is the last seen total number of bytes sent, across all interfaces
	TotalBytesSent uint64
	// RecentBytesRecv is the number of bytes received between the last two updates
	RecentBytesRecv uint64
	// RecentBytesSent is the number of bytes sent between the last two updates
	RecentBytesSent uint64
	// RecvRate and SentRate are the recent byte counts per second
	RecvRate float64
	SentRate float64

	last time.Time
}

func NewNetwork() Network {
	return Network{Data: make(map[string]Interface)}
}

// LocalNetwork sets up tracking for a filtered list of interfaces; see filter
// for the rule syntax. If the interface name begins with "tun", and
// `excludeVPNs` is true, then the interface is excluded.
func LocalNetwork(rules []string, excludeVPNs bool) Network {
	nw := NewNetwork()
	interfaces, err := psnet.IOCounters(true)
	if err != nil {
		return nw
	}
	f := newFilter(rules)
	for _, iface := range interfaces {
		vpn := strings.HasPrefix(iface.Name, "tun")
		if vpn && excludeVPNs {
			continue
		}
		if !f.match(iface.Name) {
			continue
		}
		nw.Data[iface.Name] = Interface{IFace: iface.Name, IsVPN: vpn}
	}
	return nw
}

func (n *Network) Update() error {
	interfaces, err := psnet.IOCounters(true)
	if err != nil {
		return err
	}
	n.update(interfaces, time.Now())
	return nil
}

func (n *Network) update(interfaces []psnet.IOCountersStat, now time.Time) {
	// Total sent & received across all devices this update
	var ttlRecv, ttlSent uint64
	for _, iface := range interfaces {
		intf, ok := n.Data[iface.Name]
		if !ok {
			continue
		}
		if intf.recvMetric != nil && iface.BytesRecv >= intf.BytesRecv && iface.BytesSent >= intf.BytesSent {
			intf.recvMetric.Add(int(iface.BytesRecv - intf.BytesRecv))
			intf.sentMetric.Add(int(iface.BytesSent - intf.BytesSent))
		}
		intf.BytesRecv = iface.BytesRecv
		intf.BytesSent = iface.BytesSent
		ttlRecv += iface.BytesRecv
		ttlSent += iface.BytesSent
		n.Data[iface.Name] = intf
	}

	first := n.last.IsZero()
	n.RecentBytesRecv, n.RecentBytesSent = 0, 0
	switch {
	case first:
	case ttlRecv < n.TotalBytesRecv || ttlSent < n.TotalBytesSent:
		// counters wrap or reset when interfaces go away
		log.Printf("illogical network totals; previous %d/%d > new %d/%d", n.TotalBytesRecv, n.TotalBytesSent, ttlRecv, ttlSent)
	default:
		n.RecentBytesRecv = ttlRecv - n.TotalBytesRecv
		n.RecentBytesSent = ttlSent - n.TotalBytesSent
	}

	n.RecvRate, n.SentRate = 0, 0
	if !first {
		if secs := now.Sub(n.last).Seconds(); secs > 0 {
			n.RecvRate = float64(n.RecentBytesRecv) / secs
			n.SentRate = float64(n.RecentBytesSent) / secs
		}
	}

	// Set the TX memory ("previous" values)
	n.TotalBytesRecv = ttlRecv
	n.TotalBytesSent = ttlSent
	n.last = now
}

// EnableMetrics creates two counters -- recv and sent -- which tally the total
// bytes sent and received through the filtered interfaces.
func (n *Network) EnableMetrics(s *metrics.Set) {
	for k, v := range n.Data {
		v.recvMetric = s.NewCounter(makeName("net", k, "recv"))
		v.sentMetric = s.NewCounter(makeName("net", k, "sent"))
		n.Data[k] = v
	}
}

func interfaces() ([]string, error) {
	interfaces, err := psnet.IOCounters(true)
	if err != nil {
		return nil, err
	}
	rv := make([]string, len(interfaces))
	for i, intf := range interfaces {
		rv[i] = intf.Name
	}
	return rv, nil
}
