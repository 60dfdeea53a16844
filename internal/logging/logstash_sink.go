package logging

import (
	"context"
	"errors"
	"io"
	"net"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap/zapcore"
)

type LogstashConfig struct {
	Addr         string
	DialTimeout  time.Duration
	WriteTimeout time.Duration
	// Reconnect attempts back off from MinBackoff, doubling up to MaxBackoff.
	MinBackoff time.Duration
	MaxBackoff time.Duration
	QueueSize  int
}

func (c LogstashConfig) withDefaults() LogstashConfig {
	if c.DialTimeout <= 0 {
		c.DialTimeout = 2 * time.Second
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = time.Second
	}
	if c.MinBackoff < 0 {
		c.MinBackoff = 0
	}
	if c.MaxBackoff < c.MinBackoff {
		c.MaxBackoff = c.MinBackoff
	}
	if c.QueueSize <= 0 {
		c.QueueSize = 256
	}
	return c
}

// LogstashSink ships zap entries to a Logstash TCP input, one JSON document
// per line. Write only enqueues, so a slow or absent Logstash never stalls
// the request path; entries that cannot be queued or sent are dropped.
type LogstashSink struct {
	cfg  LogstashConfig
	dial func(ctx context.Context, network, addr string) (net.Conn, error)

	queue   chan []byte
	flushes chan chan struct{}
	done    chan struct{}
	stopped chan struct{}

	closed    atomic.Bool
	closeOnce sync.Once

	dropped   atomic.Uint64
	reported  uint64 // owned by the shipping goroutine
	onRecover atomic.Pointer[func(dropped uint64)]
}

func NewLogstashSink(cfg LogstashConfig) (*LogstashSink, error) {
	if strings.TrimSpace(cfg.Addr) == "" {
		return nil, errors.New("logstash: empty address")
	}
	cfg = cfg.withDefaults()

	dialer := &net.Dialer{Timeout: cfg.DialTimeout}
	s := &LogstashSink{
		cfg:     cfg,
		dial:    dialer.DialContext,
		queue:   make(chan []byte, cfg.QueueSize),
		flushes: make(chan chan struct{}),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go s.run()
	return s, nil
}

func (s *LogstashSink) Write(p []byte) (int, error) {
	if s.closed.Load() {
		return 0, io.ErrClosedPipe
	}
	if len(p) == 0 {
		return 0, nil
	}

	// zap reuses p after Write returns.
	entry := make([]byte, len(p), len(p)+1)
	copy(entry, p)
	if entry[len(entry)-1] != '\n' {
		entry = append(entry, '\n')
	}

	select {
	case s.queue <- entry:
	default:
		s.dropped.Add(1)
	}
	return len(p), nil
}

// Sync waits until everything queued before the call has been sent or
// dropped.
func (s *LogstashSink) Sync() error {
	if s.closed.Load() {
		return nil
	}
	ack := make(chan struct{})
	select {
	case s.flushes <- ack:
	case <-s.stopped:
		return nil
	}
	select {
	case <-ack:
	case <-s.stopped:
	}
	return nil
}

// OnRecover registers fn to run on the shipping goroutine once an entry gets
// through after drops, with the number dropped since the last report. fn may
// log through a logger that writes to this sink.
func (s *LogstashSink) OnRecover(fn func(dropped uint64)) {
	s.onRecover.Store(&fn)
}

// Dropped is the running total of entries that never reached Logstash.
func (s *LogstashSink) Dropped() uint64 {
	return s.dropped.Load()
}

// Close sends what is still queued and tears down the connection.
func (s *LogstashSink) Close() error {
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		close(s.done)
	})
	<-s.stopped
	return nil
}

// link is the shipping goroutine's connection state.
type link struct {
	conn    net.Conn
	backoff time.Duration
	retryAt time.Time
}

func (s *LogstashSink) run() {
	defer close(s.stopped)

	l := &link{backoff: s.cfg.MinBackoff}
	defer func() {
		if l.conn != nil {
			_ = l.conn.Close()
		}
	}()

	for {
		select {
		case entry := <-s.queue:
			s.send(l, entry)
		case ack := <-s.flushes:
			s.drain(l)
			close(ack)
		case <-s.done:
			s.drain(l)
			return
		}
	}
}

func (s *LogstashSink) drain(l *link) {
	for {
		select {
		case entry := <-s.queue:
			s.send(l, entry)
		default:
			return
		}
	}
}

func (s *LogstashSink) send(l *link, entry []byte) {
	if l.conn == nil {
		if time.Now().Before(l.retryAt) {
			s.dropped.Add(1)
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), s.cfg.DialTimeout)
		conn, err := s.dial(ctx, "tcp", s.cfg.Addr)
		cancel()
		if err != nil {
			s.dropped.Add(1)
			s.backOff(l)
			return
		}
		l.conn = conn
	}

	_ = l.conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout))
	if _, err := l.conn.Write(entry); err != nil {
		s.dropped.Add(1)
		_ = l.conn.Close()
		l.conn = nil
		s.backOff(l)
		return
	}

	l.backoff = s.cfg.MinBackoff
	l.retryAt = time.Time{}
	if total := s.dropped.Load(); total > s.reported {
		missed := total - s.reported
		s.reported = total
		if fn := s.onRecover.Load(); fn != nil {
			(*fn)(missed)
		}
	}
}

func (s *LogstashSink) backOff(l *link) {
	l.retryAt = time.Now().Add(l.backoff)
	l.backoff = min(max(2*l.backoff, s.cfg.MinBackoff), s.cfg.MaxBackoff)
}

var _ zapcore.WriteSyncer = (*LogstashSink)(nil)
