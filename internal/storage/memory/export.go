// internal/storage/memory/export.go
package memory

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/duellog/yrpdecode/pkg/core"
	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"
)

type encodeFunc func(w io.Writer, r *core.Replay) error

var encoders = map[string]encodeFunc{
	"json": encodeJSON,
	"yaml": encodeYAML,
}

type compression struct {
	ext  string
	wrap func(w io.Writer) (io.WriteCloser, error)
}

var compressions = map[string]compression{
	"none": {ext: "", wrap: func(w io.Writer) (io.WriteCloser, error) { return nopCloser{w}, nil }},
	"gzip": {ext: ".gz", wrap: func(w io.Writer) (io.WriteCloser, error) { return gzip.NewWriter(w), nil }},
	"zstd": {ext: ".zst", wrap: func(w io.Writer) (io.WriteCloser, error) {
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	}},
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func encodeJSON(w io.Writer, r *core.Replay) error {
	return json.NewEncoder(w).Encode(r)
}

// encodeYAML goes through JSON so YAML keys match the JSON field names.
func encodeYAML(w io.Writer, r *core.Replay) error {
	raw, err := json.Marshal(r)
	if err != nil {
		return err
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

// FileName builds the export file name of r: the source file stem and the
// first id block, then the format and compression extensions.
func FileName(r *core.Replay, format, compressionKind string) string {
	stem := strings.TrimSuffix(r.Source, filepath.Ext(r.Source))
	stem = strings.ReplaceAll(stem, " ", "_")
	stem = strings.ReplaceAll(stem, ":", "_")
	id, _, _ := strings.Cut(r.ID, "-")
	switch {
	case stem == "":
		stem = id
	case id != "":
		stem = stem + "_" + id
	}
	if stem == "" {
		stem = "replay"
	}
	return stem + "." + format + compressions[compressionKind].ext
}

// Export writes every collected replay to its own file in dir and forgets
// it. It returns dir.
func (b *Backend) Export(dir string) (string, error) {
	if err := b.Init(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	for !b.replays.Empty() {
		r := b.replays.Pop()
		path := filepath.Join(dir, FileName(r, b.cfg.Format, b.cfg.Compression))
		if err := b.writeFile(path, r); err != nil {
			return "", err
		}
		b.mu.Lock()
		b.lastExportPath = path
		b.mu.Unlock()
		b.logger.Debug("Replay exported", "id", r.ID, "path", path)
	}
	return dir, nil
}

func (b *Backend) writeFile(path string, r *core.Replay) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w, err := compressions[b.cfg.Compression].wrap(f)
	if err != nil {
		return fmt.Errorf("failed to create %s writer: %w", b.cfg.Compression, err)
	}
	if err := encoders[b.cfg.Format](w, r); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return w.Close()
}
