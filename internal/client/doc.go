// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive clip-vault application runtime.
//
// It wires the vault store, the vault session, the terminal UI and the
// optional clipboard capture worker into a single process lifecycle: the
// capture worker runs for as long as the UI does.
package client
