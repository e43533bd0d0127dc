package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	// ErrNoHandler is returned by Dispatch for a tag nothing was registered for.
	ErrNoHandler = errors.New("no handler registered")
	// ErrHandlerPanic wraps a panic recovered from a handler.
	ErrHandlerPanic = errors.New("handler panicked")
)

// Packet is one framed message of the event stream.
type Packet struct {
	Index   int
	Tag     uint8
	Payload []byte
}

// HandlerFunc decodes a packet and returns its details record.
type HandlerFunc func(Packet) (any, error)

// Logger interface for pluggable logging.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

// Option configures handler registration.
type Option func(*config)

type config struct {
	name   string
	logged bool
}

// Named sets the message name used in logs and metric attributes.
func Named(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// Logged adds debug logging to the handler.
func Logged() Option {
	return func(c *config) {
		c.logged = true
	}
}

// Dispatcher routes packets to the handler registered for their tag. It is
// built once and only read afterwards, so one Dispatcher may serve many
// concurrent decode sessions.
type Dispatcher struct {
	handlers map[uint8]HandlerFunc
	names    map[uint8]string
	logger   Logger

	// OTEL metrics
	decoded metric.Int64Counter
	unknown metric.Int64Counter
	failed  metric.Int64Counter
}

// New creates a new Dispatcher with the given logger.
// Uses the global OTel meter for metrics (no-op if not configured).
func New(logger Logger) (*Dispatcher, error) {
	d := &Dispatcher{
		handlers: make(map[uint8]HandlerFunc),
		names:    make(map[uint8]string),
		logger:   logger,
	}

	m := meter()

	var err error

	d.decoded, err = m.Int64Counter(
		"dispatcher.packets.decoded",
		metric.WithDescription("Total packets decoded into details"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating decoded counter: %w", err)
	}

	d.unknown, err = m.Int64Counter(
		"dispatcher.packets.unknown",
		metric.WithDescription("Total packets without a registered decoder"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating unknown counter: %w", err)
	}

	d.failed, err = m.Int64Counter(
		"dispatcher.packets.failed",
		metric.WithDescription("Total packets whose decoder returned an error"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating failed counter: %w", err)
	}

	return d, nil
}

// Register adds a handler for the given tag with optional configuration.
// A later registration for the same tag replaces the earlier one.
func (d *Dispatcher) Register(tag uint8, h HandlerFunc, opts ...Option) {
	cfg := &config{name: "tag_" + strconv.Itoa(int(tag))}
	for _, opt := range opts {
		opt(cfg)
	}

	handler := d.withRecover(h)

	if cfg.logged {
		handler = d.withLogging(cfg.name, handler)
	}

	d.handlers[tag] = handler
	d.names[tag] = cfg.name
}

// Dispatch routes a packet to its registered handler.
func (d *Dispatcher) Dispatch(p Packet) (any, error) {
	h, ok := d.handlers[p.Tag]
	if !ok {
		d.unknown.Add(context.Background(), 1,
			metric.WithAttributes(attribute.Int("tag", int(p.Tag))))
		return nil, fmt.Errorf("%w: tag %d", ErrNoHandler, p.Tag)
	}

	attrs := metric.WithAttributes(attribute.String("message", d.names[p.Tag]))
	result, err := h(p)
	if err != nil {
		d.failed.Add(context.Background(), 1, attrs)
		return nil, err
	}
	d.decoded.Add(context.Background(), 1, attrs)
	return result, nil
}

// HasHandler returns true if a handler is registered for the tag.
func (d *Dispatcher) HasHandler(tag uint8) bool {
	_, ok := d.handlers[tag]
	return ok
}

// Tags returns the registered tags in ascending order.
func (d *Dispatcher) Tags() []uint8 {
	tags := make([]uint8, 0, len(d.handlers))
	for tag := range d.handlers {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	return tags
}

func (d *Dispatcher) withRecover(h HandlerFunc) HandlerFunc {
	return func(p Packet) (result any, err error) {
		defer func() {
			if r := recover(); r != nil {
				result = nil
				err = fmt.Errorf("%w: %v", ErrHandlerPanic, r)
			}
		}()
		return h(p)
	}
}

func (d *Dispatcher) withLogging(name string, h HandlerFunc) HandlerFunc {
	return func(p Packet) (any, error) {
		start := time.Now()
		d.logger.Debug("decoding packet", "message", name, "index", p.Index, "length", len(p.Payload))

		result, err := h(p)

		if err != nil {
			d.logger.Error("packet failed", "message", name, "index", p.Index, "duration", time.Since(start), "error", err)
		} else {
			d.logger.Debug("packet decoded", "message", name, "index", p.Index, "duration", time.Since(start))
		}

		return result, err
	}
}
