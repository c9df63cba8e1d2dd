// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"encoding/csv"
	"fmt"
	"github.com/SoftbearStudios/terragen/server/worldgen"
	"io"
	"os"
	"strconv"
	"time"
)

// LogHeader names the columns written by AppendLog.
var LogHeader = []string{"created", "id", "seed", "width", "height", "scale", "octaves", "persistence", "lacunarity", "chunks", "millis"}

// LogEntry is one row of a generation log.
type LogEntry struct {
	Created     time.Time
	ID          string
	Seed        int64
	Width       int
	Height      int
	Scale       float32
	Octaves     int
	Persistence float32
	Lacunarity  float32
	Chunks      int
	Millis      int64
}

// AppendLog appends a CSV row describing model to filename.
func AppendLog(filename string, model *worldgen.Model) (err error) {
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err = w.Write(logFields(model)); err != nil {
		return
	}

	w.Flush()
	// Error from flush
	return w.Error()
}

func logFields(model *worldgen.Model) []string {
	noise := model.Config.Noise
	fields := []interface{}{
		model.Created.UTC().Format(time.RFC3339),
		model.ID,
		noise.Seed,
		noise.Width,
		noise.Height,
		noise.Scale,
		noise.Octaves,
		noise.Persistence,
		noise.Lacunarity,
		model.Layout().Chunks(),
		model.Duration.Milliseconds(),
	}

	fieldStrings := make([]string, 0, len(fields))
	for _, field := range fields {
		var fieldString string

		switch v := field.(type) {
		case float32, float64:
			fieldString = fmt.Sprintf("%.2f", v)
		default:
			fieldString = fmt.Sprint(v)
		}

		fieldStrings = append(fieldStrings, fieldString)
	}
	return fieldStrings
}

// ReadLog parses every row written by AppendLog.
func ReadLog(r io.Reader) ([]LogEntry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(LogHeader)

	var entries []LogEntry
	for line := 1; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			return entries, nil
		}
		if err != nil {
			return nil, err
		}

		entry, err := parseLogEntry(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		entries = append(entries, entry)
	}
}

func parseLogEntry(record []string) (entry LogEntry, err error) {
	if entry.Created, err = time.Parse(time.RFC3339, record[0]); err != nil {
		return
	}
	entry.ID = record[1]

	ints := []*int{&entry.Width, &entry.Height, nil, &entry.Octaves, nil, nil, &entry.Chunks}
	floats := []*float32{nil, nil, &entry.Scale, nil, &entry.Persistence, &entry.Lacunarity, nil}
	for i, field := range record[3:10] {
		if ints[i] != nil {
			if *ints[i], err = strconv.Atoi(field); err != nil {
				return
			}
			continue
		}
		var f float64
		if f, err = strconv.ParseFloat(field, 32); err != nil {
			return
		}
		*floats[i] = float32(f)
	}

	if entry.Seed, err = strconv.ParseInt(record[2], 10, 64); err != nil {
		return
	}
	entry.Millis, err = strconv.ParseInt(record[10], 10, 64)
	return
}
