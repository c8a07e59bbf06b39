package probe

import (
	"bytes"
	"context"
	"net"
	"os"
	"sync/atomic"
	"time"

	"golang.org/x/net/icmp"
	"golang.org/x/net/ipv4"
	"golang.org/x/net/ipv6"
)

// IANA protocol numbers for parsing ICMP replies.
const (
	protocolICMP     = 1
	protocolICMPv6   = 58
	icmpPayloadMagic = "pingwatch"
)

// seqCounter hands out echo sequence numbers across all probers.
var seqCounter atomic.Uint32

// icmpPinger sends ICMP echo requests. It first attempts a privileged raw
// socket and transparently retries with an unprivileged datagram socket,
// which Linux permits for users within net.ipv4.ping_group_range.
type icmpPinger struct{}

func (p *icmpPinger) Ping(ctx context.Context, address string, timeout time.Duration) (time.Duration, error) {
	ip, err := resolveIP(ctx, address)
	if err != nil {
		return 0, categorize(address, err)
	}

	conn, dst, proto, err := openEcho(ip)
	if err != nil {
		return 0, categorize(address, err)
	}
	defer conn.Close()

	seq := int(seqCounter.Add(1) & 0xffff)
	msg := icmp.Message{
		Type: echoTypeFor(proto),
		Body: &icmp.Echo{
			ID:   os.Getpid() & 0xffff,
			Seq:  seq,
			Data: []byte(icmpPayloadMagic),
		},
	}

	wire, err := msg.Marshal(nil)
	if err != nil {
		return 0, categorize(address, err)
	}

	deadline := time.Now().Add(timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := conn.SetReadDeadline(deadline); err != nil {
		return 0, categorize(address, err)
	}

	start := time.Now()
	if _, err := conn.WriteTo(wire, dst); err != nil {
		return 0, categorize(address, err)
	}

	buf := make([]byte, 1500)
	for {
		n, _, err := conn.ReadFrom(buf)
		if err != nil {
			return 0, categorize(address, err)
		}
		latency := time.Since(start)

		reply, err := icmp.ParseMessage(proto, buf[:n])
		if err != nil {
			continue
		}
		echo, ok := reply.Body.(*icmp.Echo)
		if !ok || !isEchoReply(reply.Type) {
			continue
		}
		// Unprivileged sockets rewrite the echo ID, so match on
		// sequence and payload only.
		if echo.Seq != seq || !bytes.Equal(echo.Data, []byte(icmpPayloadMagic)) {
			continue
		}
		return latency, nil
	}
}

// resolveIP looks up address and prefers an IPv4 result.
func resolveIP(ctx context.Context, address string) (net.IP, error) {
	if ip := net.ParseIP(address); ip != nil {
		return ip, nil
	}

	addrs, err := net.DefaultResolver.LookupIPAddr(ctx, address)
	if err != nil {
		return nil, err
	}
	for _, a := range addrs {
		if v4 := a.IP.To4(); v4 != nil {
			return v4, nil
		}
	}
	return addrs[0].IP, nil
}

// openEcho opens an ICMP socket for the address family of ip. The raw
// socket is tried first; a permission failure falls through to the
// unprivileged datagram flavor.
func openEcho(ip net.IP) (*icmp.PacketConn, net.Addr, int, error) {
	if ip.To4() != nil {
		if conn, err := icmp.ListenPacket("ip4:icmp", "0.0.0.0"); err == nil {
			return conn, &net.IPAddr{IP: ip}, protocolICMP, nil
		}
		conn, err := icmp.ListenPacket("udp4", "0.0.0.0")
		if err != nil {
			return nil, nil, 0, err
		}
		return conn, &net.UDPAddr{IP: ip}, protocolICMP, nil
	}

	if conn, err := icmp.ListenPacket("ip6:ipv6-icmp", "::"); err == nil {
		return conn, &net.IPAddr{IP: ip}, protocolICMPv6, nil
	}
	conn, err := icmp.ListenPacket("udp6", "::")
	if err != nil {
		return nil, nil, 0, err
	}
	return conn, &net.UDPAddr{IP: ip}, protocolICMPv6, nil
}

func echoTypeFor(proto int) icmp.Type {
	if proto == protocolICMPv6 {
		return ipv6.ICMPTypeEchoRequest
	}
	return ipv4.ICMPTypeEcho
}

func isEchoReply(t icmp.Type) bool {
	return t == ipv4.ICMPTypeEchoReply || t == ipv6.ICMPTypeEchoReply
}
