// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"
)

var ErrUserQuit = errors.New("user quit the program")

func humanizeClipboardError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "no clipboard utilities available") ||
		strings.Contains(s, "executable file not found") {
		return "Clipboard is not available on this system"
	}

	return "Copy failed: " + err.Error()
}
