// Package monitor reports decode progress while a batch is running.
package monitor

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"time"

	influxdb2_write "github.com/influxdata/influxdb-client-go/v2/api/write"
)

const Measurement = "decode_progress"

// Progress counts finished files. It is safe for concurrent use.
type Progress struct {
	start  time.Time
	total  int64
	done   atomic.Int64
	failed atomic.Int64
	events atomic.Int64
}

func NewProgress(total int) *Progress {
	return &Progress{start: time.Now(), total: int64(total)}
}

// Finish records one processed file.
func (p *Progress) Finish(events int, err error) {
	p.done.Add(1)
	p.events.Add(int64(events))
	if err != nil {
		p.failed.Add(1)
	}
}

// Snapshot is a point-in-time view of a Progress.
type Snapshot struct {
	Time        time.Time `json:"time"`
	Total       int64     `json:"total"`
	Done        int64     `json:"done"`
	Failed      int64     `json:"failed"`
	Events      int64     `json:"events"`
	ElapsedMs   float64   `json:"elapsedMs"`
	FilesPerSec float64   `json:"filesPerSec"`
}

func (p *Progress) Snapshot() Snapshot {
	now := time.Now()
	elapsed := now.Sub(p.start)
	s := Snapshot{
		Time:      now,
		Total:     p.total,
		Done:      p.done.Load(),
		Failed:    p.failed.Load(),
		Events:    p.events.Load(),
		ElapsedMs: float64(elapsed.Microseconds()) / 1000,
	}
	if elapsed > 0 {
		s.FilesPerSec = float64(s.Done) / elapsed.Seconds()
	}
	return s
}

// Point converts s to an influx point.
func (s Snapshot) Point() *influxdb2_write.Point {
	return influxdb2_write.NewPoint(Measurement,
		map[string]string{},
		map[string]interface{}{
			"total":         s.Total,
			"done":          s.Done,
			"failed":        s.Failed,
			"events":        s.Events,
			"elapsed_ms":    s.ElapsedMs,
			"files_per_sec": s.FilesPerSec,
		},
		s.Time,
	)
}

// PointWriter is satisfied by influx.Manager.
type PointWriter interface {
	WritePoint(point *influxdb2_write.Point) error
}

// Dependencies holds all dependencies for the monitor service
type Dependencies struct {
	Logger     *slog.Logger
	Progress   *Progress
	Points     PointWriter
	StatusPath string
	Interval   time.Duration
}

// Service periodically writes the progress snapshot to the status file and
// the point writer.
type Service struct {
	deps      Dependencies
	isRunning bool
	mu        sync.RWMutex
	stopChan  chan struct{}
	stopped   chan struct{}
}

// NewService creates a new monitor service
func NewService(deps Dependencies) *Service {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Interval <= 0 {
		deps.Interval = time.Second
	}
	return &Service{deps: deps}
}

// IsRunning returns whether the status monitor is running
func (s *Service) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// Status returns the current snapshot and its indented JSON form.
func (s *Service) Status() (string, Snapshot) {
	snap := s.deps.Progress.Snapshot()
	out, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		out = []byte(fmt.Sprintf(`{"error": "%s"}`, err))
	}
	return string(out), snap
}

// Start starts the status monitor goroutine
func (s *Service) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.isRunning {
		return
	}
	s.isRunning = true
	s.stopChan = make(chan struct{})
	s.stopped = make(chan struct{})

	go s.loop(s.stopChan, s.stopped)
}

func (s *Service) loop(stop <-chan struct{}, stopped chan<- struct{}) {
	defer close(stopped)
	logger := s.deps.Logger
	logger.Debug("Starting status monitor", "interval", s.deps.Interval, "status", s.deps.StatusPath)

	ticker := time.NewTicker(s.deps.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			s.report()
			return
		case <-ticker.C:
			s.report()
		}
	}
}

func (s *Service) report() {
	status, snap := s.Status()
	if s.deps.StatusPath != "" {
		if err := os.WriteFile(s.deps.StatusPath, []byte(status+"\n"), 0644); err != nil {
			s.deps.Logger.Error("Error writing status file", "error", err)
		}
	}
	if s.deps.Points != nil {
		if err := s.deps.Points.WritePoint(snap.Point()); err != nil {
			s.deps.Logger.Debug("Progress point not written", "error", err)
		}
	}
	s.deps.Logger.Debug("Decode progress", "done", snap.Done, "total", snap.Total, "failed", snap.Failed)
}

// Stop stops the status monitor after a final report.
func (s *Service) Stop() {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return
	}
	s.isRunning = false
	close(s.stopChan)
	stopped := s.stopped
	s.mu.Unlock()
	<-stopped
}
