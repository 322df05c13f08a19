// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared across the application:
// snippet id generation and keyed fingerprints of clipboard text.
package utils
