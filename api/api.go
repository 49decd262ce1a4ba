// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package api

import (
	"net/http"
	"net/http/pprof"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/Ministry-of-Decentralization/token-curation/api/accounts"
	"github.com/Ministry-of-Decentralization/token-curation/api/events"
	"github.com/Ministry-of-Decentralization/token-curation/api/middleware"
	"github.com/Ministry-of-Decentralization/token-curation/api/staking"
	"github.com/Ministry-of-Decentralization/token-curation/api/subscriptions"
	"github.com/Ministry-of-Decentralization/token-curation/api/targets"
	"github.com/Ministry-of-Decentralization/token-curation/log"
	"github.com/Ministry-of-Decentralization/token-curation/runtime"
)

var logger = log.WithContext("pkg", "api")

const (
	DefaultEventsLimit    = 1000
	DefaultBacktraceLimit = 10000
)

type Options struct {
	AllowedOrigins       string
	EventsLimit          uint64
	BacktraceLimit       uint64
	PprofOn              bool
	EnableReqLogger      *atomic.Bool
	SlowQueriesThreshold time.Duration
	Log5xxErrors         bool
	EnableMetrics        bool
}

// New return api router
func New(rt *runtime.Runtime, opts Options) (http.HandlerFunc, func()) {
	origins := strings.Split(strings.TrimSpace(opts.AllowedOrigins), ",")
	for i, o := range origins {
		origins[i] = strings.ToLower(strings.TrimSpace(o))
	}
	if opts.EventsLimit == 0 {
		opts.EventsLimit = DefaultEventsLimit
	}
	if opts.BacktraceLimit == 0 {
		opts.BacktraceLimit = DefaultBacktraceLimit
	}
	if opts.EnableReqLogger == nil {
		opts.EnableReqLogger = &atomic.Bool{}
	}

	router := mux.NewRouter()

	targets.New(rt).
		Mount(router, "/targets")
	accounts.New(rt).
		Mount(router, "/accounts")
	staking.New(rt).
		Mount(router, "/staking")
	events.New(rt.LogDB(), opts.EventsLimit).
		Mount(router, "/events")
	subs := subscriptions.New(rt, origins, opts.BacktraceLimit)
	subs.Mount(router, "/subscriptions")

	if opts.PprofOn {
		router.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
		router.HandleFunc("/debug/pprof/profile", pprof.Profile)
		router.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
		router.HandleFunc("/debug/pprof/trace", pprof.Trace)
		router.PathPrefix("/debug/pprof/").HandlerFunc(pprof.Index)
	}

	if opts.EnableMetrics {
		router.Use(middleware.MetricsMiddleware)
	}
	router.Use(middleware.RequestLoggerMiddleware(logger, opts.EnableReqLogger, opts.SlowQueriesThreshold, opts.Log5xxErrors))

	handler := handlers.CompressHandler(router)
	handler = handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedHeaders([]string{"content-type"}),
	)(handler)

	return handler.ServeHTTP, subs.Close // subscriptions handles hijacked conns, which need to be closed
}
