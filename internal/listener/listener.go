// Package listener owns the passive socket the server accepts on and the
// lookup of the address printed in the startup banner.
package listener

import (
	"fmt"
	"net"
)

// OutboundIP returns the local address the host would use to reach probeAddr.
// Dialing UDP only picks a route; nothing is sent.
func OutboundIP(probeAddr string) (net.IP, error) {
	conn, err := net.Dial("udp4", probeAddr)
	if err != nil {
		return nil, fmt.Errorf("could not probe outbound interface: %w", err)
	}
	defer conn.Close()

	addr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok {
		return nil, fmt.Errorf("unexpected local address type %T", conn.LocalAddr())
	}
	return addr.IP, nil
}

// BannerHost picks the host to print in the banner, falling back to loopback
// when the outbound lookup failed.
func BannerHost(ip net.IP, err error) string {
	if err != nil || ip == nil || ip.IsUnspecified() {
		return "127.0.0.1"
	}
	return ip.String()
}
