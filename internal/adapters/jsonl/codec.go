// Package jsonl implements the interchange representation: one JSON record
// per line, UTF-8, newline-terminated. The file is a complete, derived
// snapshot of the relational store, rewritten in full after every mutation
// so it is always independently valid and diff-friendly under version
// control.
package jsonl

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/example/wrk/internal/core/item"
	"github.com/example/wrk/internal/models"
)

// Encode serializes items one record per line. An empty collection encodes
// to empty text, not a single blank line.
func Encode(items []*models.WorkItem) ([]byte, error) {
	var buf bytes.Buffer
	for _, it := range items {
		line, err := json.Marshal(it)
		if err != nil {
			return nil, err
		}
		buf.Write(line)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// Decode parses interchange text. Each line is an independently parseable
// record; a malformed line fails with a CorruptRecordError carrying its
// 1-based line number. A single trailing newline is tolerated; empty input
// decodes to an empty sequence.
func Decode(data []byte) ([]*models.WorkItem, error) {
	text := string(data)
	if text == "" {
		return nil, nil
	}

	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil, nil
	}

	lines := strings.Split(text, "\n")
	items := make([]*models.WorkItem, 0, len(lines))

	for i, line := range lines {
		var it models.WorkItem
		if err := json.Unmarshal([]byte(line), &it); err != nil {
			return nil, &item.CorruptRecordError{Line: i + 1, Err: err}
		}

		// Normalize empty lists to absent so decode(encode(x)) == x.
		if len(it.BlockedBy) == 0 {
			it.BlockedBy = nil
		}
		if len(it.Labels) == 0 {
			it.Labels = nil
		}
		if len(it.Log) == 0 {
			it.Log = nil
		}

		items = append(items, &it)
	}

	return items, nil
}
