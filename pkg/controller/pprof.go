package controller

import (
	"net/http"
	"net/http/pprof"
)

// profiles served through pprof.Handler in addition to the index.
var profiles = []string{"allocs", "block", "goroutine", "heap", "mutex", "threadcreate"} //nolint: gochecknoglobals

// PprofMux returns an http.ServeMux exposing net/http/pprof handlers relative
// to prefix, e.g. "/debug/pprof". The index links resolve because pprof.Index
// strips the conventional "/debug/pprof/" prefix itself.
func PprofMux(prefix string) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc(prefix+"/", pprof.Index)
	mux.HandleFunc(prefix+"/cmdline", pprof.Cmdline)
	mux.HandleFunc(prefix+"/profile", pprof.Profile)
	mux.HandleFunc(prefix+"/symbol", pprof.Symbol)
	mux.HandleFunc(prefix+"/trace", pprof.Trace)
	for _, name := range profiles {
		mux.Handle(prefix+"/"+name, pprof.Handler(name))
	}

	return mux
}
