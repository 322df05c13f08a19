// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/clip-vault/models"
)

// screen identifies the page shown by the root model.
type screen int

const (
	screenPIN screen = iota
	screenList
)

// navigateMsg switches the root model to another page.
type navigateMsg struct {
	screen screen
	mode   pinMode
	status string
	errMsg string
}

// pinDoneMsg reports the outcome of Setup, Unlock or Rekey.
type pinDoneMsg struct {
	mode pinMode
	err  error
}

type snippetsLoadedMsg struct {
	items models.Collection
	err   error
}

type monitoringMsg struct {
	enabled bool
	err     error
}

// actionDoneMsg reports the outcome of a list action. When reload is set
// the list re-reads the collection even if err is not nil, since the
// session may keep a change in memory after a failed write.
type actionDoneMsg struct {
	status string
	err    error
	reload bool
}

type resetDoneMsg struct {
	err error
}
