// Copyright (c) 2026 Playdeck. All rights reserved.
// Author: minh.vo.dev@gmail.com

package mockapi

import (
	"net/http"

	"github.com/minhvo-dev/playdeck/internal/platform/respond"
)

// healthHandler handles GET /health. The mock API has no external
// dependencies, so liveness is the only probe it offers.
func healthHandler(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, map[string]string{"status": "ok"})
}
