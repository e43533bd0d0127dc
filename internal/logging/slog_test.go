package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdklog "go.opentelemetry.io/otel/sdk/log"
)

// captureStdout redirects osStdout to a pipe until the returned func is
// called, which yields everything written meanwhile.
func captureStdout(t *testing.T) func() string {
	t.Helper()

	r, w, err := osPipe()
	require.NoError(t, err)
	orig := osStdout
	osStdout = w

	return func() string {
		w.Close()
		osStdout = orig
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(r)
		r.Close()
		return buf.String()
	}
}

func TestSetup_Destination(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		stop := captureStdout(t)
		var file bytes.Buffer
		m := NewSlogManager()
		m.Setup(&file, "debug", nil)
		m.Logger().Info("replay stored", "id", "abc")

		assert.Empty(t, stop(), "records go to the file only")
		assert.Contains(t, file.String(), "replay stored")
	})

	t.Run("stdout", func(t *testing.T) {
		stop := captureStdout(t)
		m := NewSlogManager()
		m.Setup(nil, "info", nil)
		m.Logger().Info("decoding 3 files")

		assert.Contains(t, stop(), "decoding 3 files")
	})
}

func TestSetup_Levels(t *testing.T) {
	tests := []struct {
		level   string
		visible []string
		hidden  []string
	}{
		{"debug", []string{"dbg", "inf", "wrn"}, nil},
		{"info", []string{"inf", "wrn"}, []string{"dbg"}},
		{"WARN", []string{"wrn"}, []string{"dbg", "inf"}},
		{"bogus", []string{"inf", "wrn"}, []string{"dbg"}},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			m := NewSlogManager()
			m.Setup(&buf, tt.level, nil)
			m.Logger().Debug("dbg")
			m.Logger().Info("inf")
			m.Logger().Warn("wrn")

			for _, msg := range tt.visible {
				assert.Contains(t, buf.String(), `"msg":"`+msg+`"`)
			}
			for _, msg := range tt.hidden {
				assert.NotContains(t, buf.String(), `"msg":"`+msg+`"`)
			}
		})
	}
}

func TestSetup_JSONRecord(t *testing.T) {
	var buf bytes.Buffer
	m := NewSlogManager()
	m.Setup(&buf, "info", nil)
	m.Logger().Info("decoded", "events", 12)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "decoded", entry["msg"])
	assert.Equal(t, float64(12), entry["events"])
	assert.Regexp(t, `Z$`, entry["time"])
}

func TestSetup_Reconfigure(t *testing.T) {
	var early, late bytes.Buffer
	m := NewSlogManager()
	assert.Equal(t, slog.Default(), m.Logger())

	m.Setup(&early, "info", nil)
	m.Logger().Info("before log file")
	m.Setup(&late, "info", nil)
	m.Logger().Info("after log file")

	assert.Contains(t, early.String(), "before log file")
	assert.NotContains(t, early.String(), "after log file")
	assert.Contains(t, late.String(), "after log file")
}

func TestSetup_ExtraHandlers(t *testing.T) {
	var file, extra bytes.Buffer
	m := NewSlogManager()
	m.Setup(&file, "warn", nil, slog.NewTextHandler(&extra, HandlerOptions("debug")))

	m.Logger().Debug("only extra")
	m.Logger().Warn("both")

	assert.NotContains(t, file.String(), "only extra")
	assert.Contains(t, file.String(), "both")
	assert.Contains(t, extra.String(), "only extra")
	assert.Contains(t, extra.String(), "both")
}

func TestSetup_OTelProvider(t *testing.T) {
	var buf bytes.Buffer
	m := NewSlogManager()
	assert.NoError(t, m.Flush(context.Background()))

	m.Setup(&buf, "info", sdklog.NewLoggerProvider())
	m.Logger().Info("bridged")

	assert.Contains(t, buf.String(), "bridged")
	assert.NoError(t, m.Flush(context.Background()))
}

func TestNewGELFHandler(t *testing.T) {
	h, closer, err := NewGELFHandler("127.0.0.1:12201", "info")
	require.NoError(t, err)
	t.Cleanup(func() { _ = closer.Close() })

	assert.True(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
	slog.New(h).Info("sent over udp")

	_, _, err = NewGELFHandler("not-an-address", "info")
	assert.Error(t, err)
}

type failingHandler struct {
	slog.Handler
}

func (failingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (failingHandler) Handle(context.Context, slog.Record) error {
	return errors.New("graylog unreachable")
}

func TestMultiHandler(t *testing.T) {
	t.Run("fan out and skip nil", func(t *testing.T) {
		var a, b bytes.Buffer
		multi := NewMultiHandler(nil, slog.NewTextHandler(&a, nil), nil, slog.NewTextHandler(&b, nil))
		require.Len(t, multi.handlers, 2)

		slog.New(multi).Info("fanned out")
		assert.Contains(t, a.String(), "fanned out")
		assert.Contains(t, b.String(), "fanned out")
	})

	t.Run("enabled if any handler is", func(t *testing.T) {
		info := slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelInfo})
		debug := slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelDebug})
		ctx := context.Background()

		assert.False(t, NewMultiHandler().Enabled(ctx, slog.LevelInfo))
		assert.False(t, NewMultiHandler(info).Enabled(ctx, slog.LevelDebug))
		assert.True(t, NewMultiHandler(info, debug).Enabled(ctx, slog.LevelDebug))
	})

	t.Run("attrs and groups", func(t *testing.T) {
		var buf bytes.Buffer
		multi := NewMultiHandler(slog.NewTextHandler(&buf, nil))

		slog.New(multi.WithAttrs([]slog.Attr{slog.String("component", "tracker")})).Info("a")
		slog.New(multi.WithGroup("replay")).Info("b", "id", "r1")

		assert.Contains(t, buf.String(), "component=tracker")
		assert.Contains(t, buf.String(), "replay.id=r1")
		assert.Equal(t, multi, multi.WithGroup(""))
	})

	t.Run("error does not stop fan out", func(t *testing.T) {
		var buf bytes.Buffer
		multi := NewMultiHandler(failingHandler{}, slog.NewTextHandler(&buf, nil))

		r := slog.NewRecord(time.Now(), slog.LevelInfo, "still delivered", 0)
		assert.EqualError(t, multi.Handle(context.Background(), r), "graylog unreachable")
		assert.Contains(t, buf.String(), "still delivered")
	})
}
