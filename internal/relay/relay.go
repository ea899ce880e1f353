// Package relay forwards raw DNS query bytes to an upstream resolver over a
// transient UDP round trip bounded by a timeout.
package relay

import (
	"context"
	"errors"
	"net"
	"time"

	"go.uber.org/zap"
)

// ErrNoResponse signals that the upstream resolver produced no usable reply
// within the timeout. It covers timeouts and transport errors alike.
var ErrNoResponse = errors.New("no response from upstream resolver")

// maxResponseSize bounds a single upstream datagram.
const maxResponseSize = 4096

// Relay forwards queries to a single upstream resolver. The upstream address
// is fixed at construction.
type Relay struct {
	upstream string
	timeout  time.Duration
	logger   *zap.Logger
}

// New creates a Relay targeting the given upstream "host:port" address.
func New(upstream string, timeout time.Duration, logger *zap.Logger) *Relay {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Relay{
		upstream: upstream,
		timeout:  timeout,
		logger:   logger,
	}
}

// Upstream returns the configured upstream resolver address.
func (r *Relay) Upstream() string {
	return r.upstream
}

// Forward sends query verbatim to the upstream resolver over a transient UDP
// socket and waits for a single reply datagram. It returns ErrNoResponse on
// timeout or any transport error. The socket is released on every exit path.
func (r *Relay) Forward(ctx context.Context, query []byte) ([]byte, error) {
	conn, err := net.Dial("udp", r.upstream)
	if err != nil {
		r.logger.Warn("upstream dial failed",
			zap.String("upstream", r.upstream),
			zap.Error(err),
		)
		return nil, ErrNoResponse
	}
	defer conn.Close()

	deadline := time.Now().Add(r.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	if err := conn.SetDeadline(deadline); err != nil {
		r.logger.Warn("failed to set upstream deadline", zap.Error(err))
		return nil, ErrNoResponse
	}

	if _, err := conn.Write(query); err != nil {
		r.logger.Warn("upstream write failed",
			zap.String("upstream", r.upstream),
			zap.Error(err),
		)
		return nil, ErrNoResponse
	}

	buffer := make([]byte, maxResponseSize)
	n, err := conn.Read(buffer)
	if err != nil {
		r.logger.Warn("upstream read failed",
			zap.String("upstream", r.upstream),
			zap.Error(err),
		)
		return nil, ErrNoResponse
	}

	return buffer[:n], nil
}
