// Package probe measures host reachability and round-trip latency. It
// provides ICMP echo and TCP connect pingers behind a common interface, and
// an auto mode that prefers ICMP but degrades to TCP when raw sockets are
// not available.
package probe

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"
)

// Pinger measures the round-trip latency to a single address. A zero
// latency with a non-nil error means the host did not respond in time.
type Pinger interface {
	Ping(ctx context.Context, address string, timeout time.Duration) (time.Duration, error)
}

// Probe modes accepted by NewPinger.
const (
	ModeAuto = "auto"
	ModeICMP = "icmp"
	ModeTCP  = "tcp"
)

// NewPinger returns a Pinger for the given mode. tcpPort is the target port
// for TCP connect probes (and for auto mode's fallback).
func NewPinger(mode string, tcpPort int) (Pinger, error) {
	switch mode {
	case ModeICMP:
		return &icmpPinger{}, nil
	case ModeTCP:
		return &tcpPinger{port: tcpPort}, nil
	case ModeAuto:
		return &autoPinger{icmp: &icmpPinger{}, tcp: &tcpPinger{port: tcpPort}}, nil
	default:
		return nil, fmt.Errorf("unknown probe mode %q", mode)
	}
}

// ProbeError represents a failed probe with a categorized failure reason.
type ProbeError struct {
	Address string
	Reason  FailReason
	Cause   error
}

// FailReason categorizes why a probe failed.
type FailReason int

const (
	FailUnknown FailReason = iota
	FailTimeout
	FailRefused
	FailUnreachable
	FailResolve
	FailPermission
)

// String returns a human-readable description of the failure reason.
func (r FailReason) String() string {
	switch r {
	case FailTimeout:
		return "timed out"
	case FailRefused:
		return "connection refused"
	case FailUnreachable:
		return "host unreachable"
	case FailResolve:
		return "name resolution failed"
	case FailPermission:
		return "insufficient privileges"
	default:
		return "unknown error"
	}
}

func (e *ProbeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("probe %s failed: %s (%v)", e.Address, e.Reason, e.Cause)
	}
	return fmt.Sprintf("probe %s failed: %s", e.Address, e.Reason)
}

func (e *ProbeError) Unwrap() error {
	return e.Cause
}

// categorize converts a generic network error into a ProbeError.
func categorize(address string, err error) *ProbeError {
	if err == nil {
		return nil
	}

	probeErr := &ProbeError{
		Address: address,
		Reason:  FailUnknown,
		Cause:   err,
	}

	errStr := strings.ToLower(err.Error())

	if strings.Contains(errStr, "timeout") || strings.Contains(errStr, "i/o timeout") ||
		strings.Contains(errStr, "deadline exceeded") {
		probeErr.Reason = FailTimeout
		return probeErr
	}

	if strings.Contains(errStr, "connection refused") {
		probeErr.Reason = FailRefused
		return probeErr
	}

	if strings.Contains(errStr, "no route to host") ||
		strings.Contains(errStr, "network is unreachable") ||
		strings.Contains(errStr, "host is down") {
		probeErr.Reason = FailUnreachable
		return probeErr
	}

	if strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "server misbehaving") {
		probeErr.Reason = FailResolve
		return probeErr
	}

	if strings.Contains(errStr, "operation not permitted") ||
		strings.Contains(errStr, "permission denied") {
		probeErr.Reason = FailPermission
		return probeErr
	}

	return probeErr
}

// autoPinger prefers ICMP echo and falls back to TCP connect once ICMP
// proves unavailable (raw socket creation denied). The fallback decision is
// sticky: after the first permission failure all probes use TCP.
type autoPinger struct {
	icmp     *icmpPinger
	tcp      *tcpPinger
	fellBack atomic.Bool
}

func (p *autoPinger) Ping(ctx context.Context, address string, timeout time.Duration) (time.Duration, error) {
	if p.fellBack.Load() {
		return p.tcp.Ping(ctx, address, timeout)
	}

	latency, err := p.icmp.Ping(ctx, address, timeout)
	if err != nil {
		var probeErr *ProbeError
		if errors.As(err, &probeErr) && probeErr.Reason == FailPermission {
			p.fellBack.Store(true)
			return p.tcp.Ping(ctx, address, timeout)
		}
		return 0, err
	}
	return latency, nil
}
