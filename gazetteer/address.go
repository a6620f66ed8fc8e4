package gazetteer

import (
	"net"
	"strings"
)

// Ranges which never identify a single public host: private use,
// loopback, link-local, documentation/benchmarking blocks and
// everything from multicast upwards (which also covers the reserved
// 240/4 block and the all-ones broadcast address). CGNAT shared
// space (100.64/10) is routable through carrier networks and stays
// out of the list, and only the IETF protocol assignments sub-block
// of 192.0.0.0/24 counts.
var nonPublicNetworks = []*net.IPNet{
	mustCIDR("0.0.0.0/8"),
	mustCIDR("10.0.0.0/8"),
	mustCIDR("127.0.0.0/8"),
	mustCIDR("169.254.0.0/16"),
	mustCIDR("172.16.0.0/12"),
	mustCIDR("192.0.0.0/29"),
	mustCIDR("192.0.2.0/24"),
	mustCIDR("192.168.0.0/16"),
	mustCIDR("198.18.0.0/15"),
	mustCIDR("198.51.100.0/24"),
	mustCIDR("203.0.113.0/24"),
	mustCIDR("224.0.0.0/3"),
}

func mustCIDR(value string) *net.IPNet {
	_, network, err := net.ParseCIDR(value)
	if err != nil {
		panic(err)
	}

	return network
}

// Address is a validated public IPv4 address. A zero Address is never
// produced by ParseAddress; holders can rely on the invariant that the
// wrapped value parsed as a dotted quad outside every non-public
// range.
type Address struct {
	ip net.IP
}

func (a Address) String() string {
	return a.ip.String()
}

func (a Address) IP() net.IP {
	return append(net.IP(nil), a.ip...)
}

// ParseAddress validates raw as a public IPv4 address. It fails with
// KindInvalidIP for anything which is not a dotted-quad literal
// (including IPv6 and IPv4-mapped forms) and with KindPrivateIP for
// syntactically valid addresses inside a non-public range.
func ParseAddress(raw string) (Address, error) {
	parsed := net.ParseIP(raw)

	if parsed == nil || strings.Contains(raw, ":") {
		return Address{}, NewInvalidIPError(raw)
	}

	ip := parsed.To4()
	if ip == nil {
		return Address{}, NewInvalidIPError(raw)
	}

	for _, network := range nonPublicNetworks {
		if network.Contains(ip) {
			return Address{}, NewPrivateIPError(raw)
		}
	}

	return Address{ip: ip}, nil
}

// IsPublicIPv4 collapses both validation failure kinds to false.
func IsPublicIPv4(raw string) bool {
	_, err := ParseAddress(raw)

	return err == nil
}
