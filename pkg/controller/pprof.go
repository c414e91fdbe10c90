package controller

import (
	"net/http"
	"net/http/pprof"
)

// PprofMux returns a ServeMux serving the runtime profiling endpoints. The
// handlers are registered under their full /debug/pprof/ paths so the mux
// can be mounted on the main server without prefix stripping; the non-profile
// endpoints (cmdline, profile, symbol, trace) stay reachable that way.
func PprofMux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

	return mux
}
