package influx

import (
	"compress/gzip"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/duellog/yrpdecode/internal/config"
	"github.com/duellog/yrpdecode/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReplay() *core.Replay {
	return &core.Replay{
		Header: core.Header{Kind: "YRPX", Layout: "primary"},
		Params: core.Params{DuelMode: "MR5"},
		Stats: core.Stats{
			Events:           40,
			Decoded:          37,
			Unknown:          2,
			Failed:           1,
			InstancesCreated: 12,
			BodySize:         2048,
			Duration:         1500 * time.Microsecond,
		},
	}
}

func TestDecodePoint(t *testing.T) {
	at := time.Unix(1700000000, 0)
	p := DecodePoint(testReplay(), at)

	assert.Equal(t, Measurement, p.Name())
	assert.Equal(t, at, p.Time())

	tags := map[string]string{}
	for _, tag := range p.TagList() {
		tags[tag.Key] = tag.Value
	}
	assert.Equal(t, map[string]string{"kind": "YRPX", "layout": "primary", "duelMode": "MR5"}, tags)

	fields := map[string]any{}
	for _, f := range p.FieldList() {
		fields[f.Key] = f.Value
	}
	assert.Equal(t, int64(40), fields["events"])
	assert.Equal(t, int64(1), fields["failed"])
	assert.Equal(t, 1.5, fields["durationMs"])
}

func TestConnect_Disabled(t *testing.T) {
	m := NewManager(config.InfluxConfig{}, slog.Default(), "")
	assert.ErrorIs(t, m.Connect(context.Background()), ErrDisabled)
	assert.Error(t, m.WriteReplay(testReplay()))
	assert.NoError(t, m.Close())
}

func TestConnect_FallsBackToBackup(t *testing.T) {
	backup := filepath.Join(t.TempDir(), "influx-backup.lp.gz")
	cfg := config.InfluxConfig{
		Enabled:  true,
		Protocol: "http",
		Host:     "127.0.0.1",
		Port:     "1",
		Org:      "yrpdecode",
		Bucket:   "decode",
	}
	m := NewManager(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), backup)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, m.Connect(ctx))
	require.NoError(t, m.WriteReplay(testReplay()))
	require.NoError(t, m.Close())

	f, err := os.Open(backup)
	require.NoError(t, err)
	defer f.Close()
	gz, err := gzip.NewReader(f)
	require.NoError(t, err)
	data, err := io.ReadAll(gz)
	require.NoError(t, err)

	assert.Contains(t, string(data), "replay_decode,")
	assert.Contains(t, string(data), "events=40i")
}
