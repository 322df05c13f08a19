// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"time"
)

// ParseFlags parses command-line arguments into a partial config.
//
// Flags:
//
//	-driver       storage driver: file | sqlite
//	-d            storage DSN (JSON file path or SQLite database path)
//	-kdf-time     Argon2id passes
//	-kdf-memory   Argon2id memory in KiB
//	-kdf-threads  Argon2id parallelism
//	-capture      run the clipboard capture worker
//	-poll         clipboard poll interval (e.g. "500ms", "2s")
//	-export       import/export file path
//	-c/-config    JSON file path with configs
func ParseFlags(name string, args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	var (
		driver, dsn    string
		kdfTime        uint
		kdfMemory      uint
		kdfThreads     uint
		captureEnabled bool
		pollInterval   time.Duration
		exportPath     string
		jsonConfigPath string
	)

	fs.StringVar(&driver, "driver", "", "Storage driver (file, sqlite)")
	fs.StringVar(&dsn, "d", "", "Storage DSN")
	fs.UintVar(&kdfTime, "kdf-time", 0, "Argon2id time cost")
	fs.UintVar(&kdfMemory, "kdf-memory", 0, "Argon2id memory cost in KiB")
	fs.UintVar(&kdfThreads, "kdf-threads", 0, "Argon2id parallelism")
	fs.BoolVar(&captureEnabled, "capture", false, "Run the clipboard capture worker")
	fs.DurationVar(&pollInterval, "poll", 0, "Clipboard poll interval (e.g., 1s)")
	fs.StringVar(&exportPath, "export", "", "Import/export file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	if kdfThreads > 255 {
		return nil, fmt.Errorf("error parsing flags: kdf-threads %d out of range", kdfThreads)
	}

	return &StructuredConfig{
		Storage: Storage{
			Driver: driver,
			DSN:    dsn,
		},
		KDF: KDF{
			Time:      uint32(kdfTime),
			MemoryKiB: uint32(kdfMemory),
			Threads:   uint8(kdfThreads),
		},
		Capture: Capture{
			Enabled:      captureEnabled,
			PollInterval: pollInterval,
		},
		Transfer: Transfer{
			ExportPath: exportPath,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
