//go:build !unix

package listener

import (
	"context"
	"fmt"
	"net"
)

// Listen binds an IPv4 TCP socket to port on all interfaces. The backlog
// cannot be chosen through the net package here and is left to the OS.
func Listen(port, backlog int) (net.Listener, error) {
	_ = backlog
	var lc net.ListenConfig
	return lc.Listen(context.Background(), "tcp4", fmt.Sprintf("0.0.0.0:%d", port))
}
