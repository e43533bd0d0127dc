// Package influx records one summary point per decoded replay.
package influx

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/duellog/yrpdecode/internal/config"
	"github.com/duellog/yrpdecode/pkg/core"
	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	influxdb2_api "github.com/influxdata/influxdb-client-go/v2/api"
	influxdb2_write "github.com/influxdata/influxdb-client-go/v2/api/write"
	"github.com/influxdata/influxdb-client-go/v2/domain"
)

const Measurement = "replay_decode"

var ErrDisabled = errors.New("influx is disabled")

// Manager handles InfluxDB connections and writes. When the server cannot
// be reached, points go to a gzip line-protocol backup file instead.
type Manager struct {
	cfg    config.InfluxConfig
	logger *slog.Logger

	client     influxdb2.Client
	writer     influxdb2_api.WriteAPI
	backupPath string
	backupFile *os.File
	backup     *gzip.Writer
	valid      bool
}

func NewManager(cfg config.InfluxConfig, logger *slog.Logger, backupPath string) *Manager {
	return &Manager{
		cfg:        cfg,
		logger:     logger,
		backupPath: backupPath,
	}
}

// Connect establishes a connection to InfluxDB, falling back to the backup
// file if the server does not answer a ping.
func (m *Manager) Connect(ctx context.Context) error {
	if !m.cfg.Enabled {
		return ErrDisabled
	}

	m.client = influxdb2.NewClientWithOptions(
		fmt.Sprintf("%s://%s:%s", m.cfg.Protocol, m.cfg.Host, m.cfg.Port),
		m.cfg.Token,
		influxdb2.DefaultOptions().
			SetBatchSize(500).
			SetFlushInterval(1000),
	)

	running, err := m.client.Ping(ctx)
	if err != nil || !running {
		m.valid = false
		m.logger.Warn("InfluxDB unreachable, writing to backup file",
			"backupPath", m.backupPath, "error", err)
		return m.openBackup()
	}

	m.valid = true
	if err := m.ensureBucket(ctx); err != nil {
		return err
	}
	m.writer = m.client.WriteAPI(m.cfg.Org, m.cfg.Bucket)
	go func(errorsCh <-chan error) {
		for writeErr := range errorsCh {
			m.logger.Error("Error sending data to InfluxDB", "bucket", m.cfg.Bucket, "error", writeErr)
		}
	}(m.writer.Errors())

	m.logger.Info("InfluxDB client initialized", "bucket", m.cfg.Bucket)
	return nil
}

func (m *Manager) openBackup() error {
	if m.backup != nil {
		return nil
	}
	file, err := os.OpenFile(m.backupPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("error creating backup file: %w", err)
	}
	m.backupFile = file
	m.backup = gzip.NewWriter(file)
	return nil
}

func (m *Manager) ensureBucket(ctx context.Context) error {
	orgs := m.client.OrganizationsAPI()
	org, err := orgs.FindOrganizationByName(ctx, m.cfg.Org)
	if err != nil {
		m.logger.Info("Organization not found, creating", "org", m.cfg.Org)
		if org, err = orgs.CreateOrganizationWithName(ctx, m.cfg.Org); err != nil {
			return fmt.Errorf("error creating organization %s: %w", m.cfg.Org, err)
		}
	}

	if _, err = m.client.BucketsAPI().FindBucketByName(ctx, m.cfg.Bucket); err == nil {
		return nil
	}
	m.logger.Info("Bucket not found, creating", "bucket", m.cfg.Bucket)
	rule := domain.RetentionRuleTypeExpire
	_, err = m.client.BucketsAPI().CreateBucketWithName(ctx, org, m.cfg.Bucket, domain.RetentionRule{
		Type:         &rule,
		EverySeconds: 60 * 60 * 24 * 90,
	})
	if err != nil {
		return fmt.Errorf("error creating bucket %s: %w", m.cfg.Bucket, err)
	}
	return nil
}

// DecodePoint summarises a decoded replay.
func DecodePoint(r *core.Replay, at time.Time) *influxdb2_write.Point {
	p := influxdb2_write.NewPointWithMeasurement(Measurement).
		AddTag("kind", r.Header.Kind).
		AddTag("layout", r.Header.Layout).
		AddField("events", r.Stats.Events).
		AddField("decoded", r.Stats.Decoded).
		AddField("unknown", r.Stats.Unknown).
		AddField("failed", r.Stats.Failed).
		AddField("instances", r.Stats.InstancesCreated).
		AddField("resolveMisses", r.Stats.ResolveMisses).
		AddField("bodySize", r.Stats.BodySize).
		AddField("durationMs", float64(r.Stats.Duration.Microseconds())/1000).
		SetTime(at)
	if r.Params.DuelMode != "" {
		p.AddTag("duelMode", r.Params.DuelMode)
	}
	return p
}

// WriteReplay writes the summary point of r.
func (m *Manager) WriteReplay(r *core.Replay) error {
	return m.WritePoint(DecodePoint(r, time.Now()))
}

// WritePoint writes a point to InfluxDB or the backup file.
func (m *Manager) WritePoint(point *influxdb2_write.Point) error {
	if m.valid {
		m.writer.WritePoint(point)
		return nil
	}
	if m.backup == nil {
		return fmt.Errorf("influxDB client not initialized and backup writer not available")
	}
	line := influxdb2_write.PointToLineProtocol(point, time.Nanosecond)
	if _, err := m.backup.Write([]byte(line + "\n")); err != nil {
		return fmt.Errorf("error writing to InfluxDB backup file: %w", err)
	}
	return nil
}

// Close flushes pending points and closes the backup file.
func (m *Manager) Close() error {
	if m.writer != nil {
		m.writer.Flush()
	}
	if m.client != nil {
		m.client.Close()
	}
	if m.backup == nil {
		return nil
	}
	err := errors.Join(m.backup.Close(), m.backupFile.Close())
	m.backup, m.backupFile = nil, nil
	return err
}
