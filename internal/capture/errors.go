// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package capture

import "errors"

// ErrClipboardUnavailable is returned when the system clipboard can't be read
// or written.
var ErrClipboardUnavailable = errors.New("clipboard unavailable")
