package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/duellog/yrpdecode/internal/config"
	"github.com/duellog/yrpdecode/internal/monitor"
	"github.com/duellog/yrpdecode/internal/queue"
	"github.com/duellog/yrpdecode/pkg/core"
	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"
	"github.com/remeh/sizedwaitgroup"
)

var shortUnits, _ = durafmt.DefaultUnitsCoder.Decode("y:yrs,wk:wks,d:d,h:h,m:m,s:s,ms:ms,us:us")

// result is the outcome of one replay file.
type result struct {
	index  int
	path   string
	size   int64
	replay *core.Replay
	err    error
}

func isReplayFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yrp", ".yrpx":
		return true
	}
	return false
}

// collectFiles expands directories into the replay files below them. Files
// named explicitly are kept whatever their extension.
func collectFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		var found []string
		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && isReplayFile(d.Name()) {
				found = append(found, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", arg, err)
		}
		slices.Sort(found)
		files = append(files, found...)
	}
	if len(files) == 0 {
		return nil, errors.New("no replay files found")
	}
	return files, nil
}

// decodeAll decodes files on a bounded set of goroutines and stores each
// replay as it completes. Results come back in input order.
func (a *app) decodeAll(ctx context.Context, files []string) []result {
	done := queue.New[result]()
	swg := sizedwaitgroup.New(a.workers)

	progress := monitor.NewProgress(len(files))
	deps := monitor.Dependencies{
		Logger:     a.logger,
		Progress:   progress,
		StatusPath: filepath.Join(config.GetString("logsDir"), "status.txt"),
		Interval:   config.GetDuration("monitor.interval"),
	}
	if a.influx != nil && config.GetBool("influx.enabled") {
		deps.Points = a.influx
	}
	status := monitor.NewService(deps)
	status.Start()
	defer status.Stop()

	for i, path := range files {
		if ctx.Err() != nil {
			done.Push(result{index: i, path: path, err: ctx.Err()})
			continue
		}
		swg.Add()
		go func(i int, path string) {
			defer swg.Done()
			res := a.process(ctx, i, path)
			events := 0
			if res.replay != nil {
				events = res.replay.Stats.Events
			}
			progress.Finish(events, res.err)
			done.Push(res)
		}(i, path)
	}
	swg.Wait()

	results := done.GetAndEmpty()
	slices.SortFunc(results, func(x, y result) int { return x.index - y.index })
	return results
}

func (a *app) process(ctx context.Context, i int, path string) result {
	res := result{index: i, path: path}
	if info, err := os.Stat(path); err == nil {
		res.size = info.Size()
	}

	replay, err := a.decoder.DecodeFile(ctx, path)
	if err != nil {
		a.logger.Error("Failed to decode replay", "file", path, "error", err)
		res.err = err
		return res
	}
	res.replay = replay

	if err := a.backend.SaveReplay(replay); err != nil {
		a.logger.Error("Failed to save replay", "file", path, "id", replay.ID, "error", err)
		res.err = fmt.Errorf("save: %w", err)
		return res
	}
	if a.influx != nil {
		if err := a.influx.WriteReplay(replay); err != nil {
			a.logger.Debug("Influx write skipped", "error", err)
		}
	}
	a.logger.Info("Replay decoded",
		"file", path,
		"id", replay.ID,
		"events", replay.Stats.Events,
		"failed", replay.Stats.Failed,
		"duration", replay.Stats.Duration)
	return res
}

// printSummary writes one line per file plus a total and returns the
// number of failed files.
func printSummary(w io.Writer, results []result, elapsed time.Duration) int {
	var failed, events int
	var bytes uint64
	for _, r := range results {
		bytes += uint64(r.size)
		if r.err != nil {
			failed++
			fmt.Fprintf(w, "FAIL %s: %v\n", r.path, r.err)
			continue
		}
		s := r.replay.Stats
		events += s.Events
		fmt.Fprintf(w, "ok   %s  %s  %s  events=%d decoded=%d unknown=%d failed=%d cards=%d steps=%d  %s\n",
			r.path,
			r.replay.Header.Kind,
			humanize.Bytes(uint64(r.size)),
			s.Events, s.Decoded, s.Unknown, s.Failed,
			len(r.replay.Cards), len(r.replay.Steps),
			formatDuration(s.Duration))
	}
	fmt.Fprintf(w, "%d files, %d failed, %s read, %s events in %s\n",
		len(results), failed,
		humanize.Bytes(bytes),
		humanize.Comma(int64(events)),
		formatDuration(elapsed))
	return failed
}

func formatDuration(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}
	return durafmt.Parse(d).LimitFirstN(2).Format(shortUnits)
}
