package probe

import (
	"context"
	"net"
	"strconv"
	"time"
)

// tcpPinger measures latency as the time to complete a TCP handshake with
// the configured port. A refused connection still proves the host is up, so
// it counts as success.
type tcpPinger struct {
	port int
}

func (p *tcpPinger) Ping(ctx context.Context, address string, timeout time.Duration) (time.Duration, error) {
	target := net.JoinHostPort(address, strconv.Itoa(p.port))

	dialer := net.Dialer{Timeout: timeout}
	start := time.Now()

	conn, err := dialer.DialContext(ctx, "tcp", target)
	if err != nil {
		probeErr := categorize(address, err)
		if probeErr.Reason == FailRefused {
			// RST came back from the host, it is reachable.
			return time.Since(start), nil
		}
		return 0, probeErr
	}
	defer conn.Close()

	return time.Since(start), nil
}
