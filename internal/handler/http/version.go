// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
)

func (h *Handler) version(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintf(w, "%s (%s, %s)", h.buildInfo.BuildVersion(), h.buildInfo.BuildCommit(), h.buildInfo.BuildDate())
}
