package store

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"
)

const backupFormatVersion = 1

// ErrBadBackup is returned when an import stream is not a blob backup.
var ErrBadBackup = errors.New("invalid backup")

type backupRecord struct {
	Type       string      `json:"type"`
	Version    int         `json:"version,omitempty"`
	ExportedAt *time.Time  `json:"exported_at,omitempty"`
	Keys       []string    `json:"keys,omitempty"`
	Payload    *backupBlob `json:"payload,omitempty"`
}

type backupBlob struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Export writes every blob in repo to w as NDJSON: one meta record
// followed by one record per blob. Returns the number of blobs written.
func Export(ctx context.Context, repo BlobRepo, w io.Writer) (int, error) {
	blobs, err := repo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("export: %w", err)
	}

	writer := bufio.NewWriter(w)
	enc := json.NewEncoder(writer)

	now := time.Now().UTC()
	keys := make([]string, len(blobs))
	for i, b := range blobs {
		keys[i] = b.Key
	}
	if err := enc.Encode(backupRecord{Type: "meta", Version: backupFormatVersion, ExportedAt: &now, Keys: keys}); err != nil {
		return 0, fmt.Errorf("write meta: %w", err)
	}

	for i, b := range blobs {
		rec := backupRecord{Type: "blob", Payload: &backupBlob{Key: b.Key, Value: b.Value, UpdatedAt: b.UpdatedAt.UTC()}}
		if err := enc.Encode(rec); err != nil {
			return i, fmt.Errorf("write blob %q: %w", b.Key, err)
		}
	}
	if err := writer.Flush(); err != nil {
		return len(blobs), fmt.Errorf("flush backup: %w", err)
	}
	return len(blobs), nil
}

// Import reads an NDJSON backup produced by Export and writes each blob
// into repo, replacing existing values. The whole stream is validated
// before the first write, so a bad backup leaves repo untouched.
// Returns the number of blobs imported.
func Import(ctx context.Context, repo BlobRepo, r io.Reader) (int, error) {
	blobs, err := decodeBackup(r)
	if err != nil {
		return 0, err
	}
	for i, b := range blobs {
		if err := repo.Put(ctx, b.Key, b.Value); err != nil {
			return i, fmt.Errorf("import blob %q: %w", b.Key, err)
		}
	}
	return len(blobs), nil
}

func decodeBackup(r io.Reader) ([]backupBlob, error) {
	dec := json.NewDecoder(bufio.NewReader(r))

	var meta backupRecord
	if err := dec.Decode(&meta); err != nil {
		return nil, fmt.Errorf("%w: read meta: %v", ErrBadBackup, err)
	}
	if meta.Type != "meta" {
		return nil, fmt.Errorf("%w: first record is %q, want meta", ErrBadBackup, meta.Type)
	}
	if meta.Version != backupFormatVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrBadBackup, meta.Version)
	}

	var blobs []backupBlob
	for {
		var rec backupRecord
		err := dec.Decode(&rec)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrBadBackup, len(blobs)+1, err)
		}
		if rec.Type != "blob" || rec.Payload == nil || rec.Payload.Key == "" {
			return nil, fmt.Errorf("%w: record %d is not a blob", ErrBadBackup, len(blobs)+1)
		}
		blobs = append(blobs, *rec.Payload)
	}
	return blobs, nil
}
