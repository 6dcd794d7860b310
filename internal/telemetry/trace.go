// Package telemetry records per-tick growth statistics as zstd-compressed JSON lines.
package telemetry

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/klauspost/compress/zstd"

	"islands/internal/world"
)

// TerritoryEntry is the per-territory part of a TickEntry.
type TerritoryEntry struct {
	ID       uint16 `json:"id"`
	Area     int    `json:"area"`
	Frontier int    `json:"frontier"`
	Done     bool   `json:"done,omitempty"`
}

// TickEntry is one JSONL record.
type TickEntry struct {
	Tick        int              `json:"tick"`
	ElapsedMS   int64            `json:"elapsed_ms"`
	Claimed     int              `json:"claimed"`
	Territories []TerritoryEntry `json:"territories"`
}

// EntryFromReport converts a world report into a TickEntry.
func EntryFromReport(r world.Report) TickEntry {
	e := TickEntry{
		Tick:        r.Ticks,
		ElapsedMS:   r.Elapsed.Milliseconds(),
		Claimed:     r.Claimed,
		Territories: make([]TerritoryEntry, 0, len(r.Territories)),
	}
	for _, t := range r.Territories {
		e.Territories = append(e.Territories, TerritoryEntry{
			ID:       uint16(t.ID),
			Area:     t.Area,
			Frontier: t.Frontier,
			Done:     t.Done,
		})
	}
	return e
}

// Writer appends JSONL records to a zstd stream.
type Writer struct {
	mu  sync.Mutex
	c   io.Closer
	enc *zstd.Encoder
	w   *bufio.Writer
}

// Create opens path for writing a new trace.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create trace: %w", err)
	}
	w, err := NewWriter(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	w.c = f
	return w, nil
}

// NewWriter wraps dst. Closing the Writer does not close dst.
func NewWriter(dst io.Writer) (*Writer, error) {
	enc, err := zstd.NewWriter(dst, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, fmt.Errorf("zstd encoder: %w", err)
	}
	return &Writer{enc: enc, w: bufio.NewWriterSize(enc, 64*1024)}, nil
}

// Write appends v as one JSON line.
func (w *Writer) Write(v any) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := w.w.Write(b); err != nil {
		return err
	}
	return w.w.WriteByte('\n')
}

// Close flushes buffered records and finishes the zstd frame.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	err := w.w.Flush()
	if cerr := w.enc.Close(); err == nil {
		err = cerr
	}
	if w.c != nil {
		if cerr := w.c.Close(); err == nil {
			err = cerr
		}
		w.c = nil
	}
	return err
}

// ReadAll decodes every TickEntry from a trace stream.
func ReadAll(src io.Reader) ([]TickEntry, error) {
	dec, err := zstd.NewReader(src)
	if err != nil {
		return nil, fmt.Errorf("zstd decoder: %w", err)
	}
	defer dec.Close()

	var out []TickEntry
	jd := json.NewDecoder(dec)
	for {
		var e TickEntry
		if err := jd.Decode(&e); err == io.EOF {
			return out, nil
		} else if err != nil {
			return out, fmt.Errorf("decode entry %d: %w", len(out), err)
		}
		out = append(out, e)
	}
}
