// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// clip-vault binaries.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Storage selects and locates the vault persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// KDF holds the Argon2id parameters used to turn a PIN into a key.
	KDF KDF `envPrefix:"KDF_"`

	// Capture configures the background clipboard capture worker.
	Capture Capture `envPrefix:"CAPTURE_"`

	// Transfer configures plaintext import/export of the collection.
	Transfer Transfer `envPrefix:"TRANSFER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage holds the vault persistence settings.
type Storage struct {
	// Driver is "file" (single JSON document) or "sqlite".
	// Env: STORAGE_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the path of the JSON file or of the SQLite database.
	// Env: STORAGE_DSN
	DSN string `env:"DSN"`
}

// KDF holds Argon2id tuning parameters.
type KDF struct {
	// Time is the number of Argon2id passes.
	// Env: KDF_TIME
	Time uint32 `env:"TIME"`

	// MemoryKiB is the Argon2id memory cost in KiB.
	// Env: KDF_MEMORY_KIB
	MemoryKiB uint32 `env:"MEMORY_KIB"`

	// Threads is the Argon2id parallelism.
	// Env: KDF_THREADS
	Threads uint8 `env:"THREADS"`
}

// Capture holds settings of the clipboard capture worker.
type Capture struct {
	// Enabled starts the capture worker inside the interactive client.
	// Env: CAPTURE_ENABLED
	Enabled bool `env:"ENABLED"`

	// PollInterval is how often the system clipboard is read.
	// Env: CAPTURE_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`
}

// Transfer holds import/export settings.
type Transfer struct {
	// ExportPath is where the plaintext collection is written on export and
	// read from on import.
	// Env: TRANSFER_EXPORT_PATH
	ExportPath string `env:"EXPORT_PATH"`
}

// Default values applied to fields left empty by every other source.
const (
	DefaultStorageDriver = "file"
	DefaultStorageDSN    = "clipvault.json"
	DefaultKDFTime       = 3
	DefaultKDFMemoryKiB  = 64 * 1024
	DefaultKDFThreads    = 4
	DefaultPollInterval  = time.Second
	DefaultExportPath    = "clipvault-export.json"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		Storage:  Storage{Driver: DefaultStorageDriver, DSN: DefaultStorageDSN},
		KDF:      KDF{Time: DefaultKDFTime, MemoryKiB: DefaultKDFMemoryKiB, Threads: DefaultKDFThreads},
		Capture:  Capture{PollInterval: DefaultPollInterval},
		Transfer: Transfer{ExportPath: DefaultExportPath},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all sources using the process arguments.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(".env").
		withEnv().
		withFlags(os.Args[0], os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}
