package http

import (
	"net/http"
)

//	GET /api/version => "1.0.0"
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

//	GET /api/build => "Build version: ...\nBuild date: ...\nBuild commit: ...\n"
func (h *Handler) getBuildInfo(w http.ResponseWriter, r *http.Request) {
	buildInfo := h.services.AppInfoService.GetBuildInfo(r.Context())
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(buildInfo.String()))
}
