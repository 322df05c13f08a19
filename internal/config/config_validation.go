// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// MinPollInterval keeps the capture worker from spinning on the clipboard.
const MinPollInterval = 100 * time.Millisecond

// Argon2id floors. A PIN has only 10^6 values, so every guess must stay
// expensive even when the defaults are overridden.
const (
	MinKDFTime      = 2
	MinKDFMemoryKiB = 19 * 1024
)

// validate checks that the final merged [StructuredConfig] is usable.
// Each failing group is reported with its own sentinel.
func (cfg *StructuredConfig) validate() error {
	s := &cfg.Storage
	if err := validation.ValidateStruct(s,
		validation.Field(&s.Driver, validation.Required, validation.In("file", "sqlite")),
		validation.Field(&s.DSN, validation.Required),
	); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidStorageConfigs, err)
	}

	k := &cfg.KDF
	if err := validation.ValidateStruct(k,
		validation.Field(&k.Time, validation.Required, validation.Min(uint32(MinKDFTime))),
		validation.Field(&k.Threads, validation.Required),
		validation.Field(&k.MemoryKiB, validation.Required, validation.Min(uint32(MinKDFMemoryKiB))),
	); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidKDFConfigs, err)
	}

	c := &cfg.Capture
	if err := validation.ValidateStruct(c,
		validation.Field(&c.PollInterval, validation.Required, validation.Min(MinPollInterval)),
	); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCaptureConfigs, err)
	}

	t := &cfg.Transfer
	if err := validation.ValidateStruct(t,
		validation.Field(&t.ExportPath, validation.Required),
	); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTransferConfigs, err)
	}

	return nil
}
