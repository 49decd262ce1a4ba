// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"gopkg.in/natefinch/lumberjack.v2"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/Ministry-of-Decentralization/token-curation/genesis"
	"github.com/Ministry-of-Decentralization/token-curation/log"
	"github.com/Ministry-of-Decentralization/token-curation/logdb"
	"github.com/Ministry-of-Decentralization/token-curation/lvldb"
	"github.com/Ministry-of-Decentralization/token-curation/metrics"
	"github.com/Ministry-of-Decentralization/token-curation/state"
)

// initLogger installs the root logger and returns a func flushing the log file.
func initLogger(ctx *cli.Context) func() {
	var lvl slog.LevelVar
	lvl.Set(log.FromLegacyLevel(ctx.Int(verbosityFlag.Name)))

	var (
		out     io.Writer = os.Stderr
		closeFn           = func() {}
		colored           = isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	)
	if path := ctx.String(logFileFlag.Name); path != "" {
		rotating := &lumberjack.Logger{
			Filename: path,
			MaxSize:  ctx.Int(logFileMaxSizeFlag.Name),
			Compress: true,
		}
		out = io.MultiWriter(os.Stderr, rotating)
		closeFn = func() { rotating.Close() }
		// escape codes end up in the file otherwise
		colored = false
	}

	var handler slog.Handler
	if ctx.Bool(jsonLogsFlag.Name) {
		handler = log.JSONHandlerWithLevel(out, &lvl)
	} else {
		handler = log.NewTerminalHandlerWithLevel(out, &lvl, colored)
	}
	log.SetDefault(log.NewLogger(handler))
	return closeFn
}

func loadGenesis(ctx *cli.Context) *genesis.Genesis {
	path := ctx.String(genesisFlag.Name)
	if path == "" {
		return genesis.NewDevnet()
	}
	gen, err := genesis.Load(path)
	if err != nil {
		fatal(fmt.Sprintf("load genesis: %v", err))
	}
	return gen
}

func makeDataDir(ctx *cli.Context) string {
	dataDir := ctx.String(dataDirFlag.Name)
	if dataDir == "" {
		fatal(fmt.Sprintf("unable to infer default data dir, use -%s to specify", dataDirFlag.Name))
	}
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		fatal(fmt.Sprintf("create data dir [%v]: %v", dataDir, err))
	}
	return dataDir
}

func openMainDB(ctx *cli.Context, dataDir string) *lvldb.LevelDB {
	dir := filepath.Join(dataDir, "main.db")
	db, err := lvldb.New(dir, lvldb.Options{
		CacheSize:              ctx.Int(cacheFlag.Name),
		OpenFilesCacheCapacity: 256,
	})
	if err != nil {
		fatal(fmt.Sprintf("open chain database [%v]: %v", dir, err))
	}
	return db
}

func openMemMainDB() *lvldb.LevelDB {
	db, err := lvldb.NewMem()
	if err != nil {
		fatal(fmt.Sprintf("open chain database: %v", err))
	}
	return db
}

func openLogDB(dataDir string) *logdb.LogDB {
	path := filepath.Join(dataDir, "events.db")
	db, err := logdb.New(path)
	if err != nil {
		fatal(fmt.Sprintf("open log database [%v]: %v", path, err))
	}
	return db
}

func openMemLogDB() *logdb.LogDB {
	db, err := logdb.NewMem()
	if err != nil {
		fatal(fmt.Sprintf("open log database: %v", err))
	}
	return db
}

func newStater(ctx *cli.Context, mainDB *lvldb.LevelDB) *state.Stater {
	stater, err := state.NewStater(mainDB, ctx.Int(slotCacheFlag.Name))
	if err != nil {
		fatal(err)
	}
	return stater
}

func newAPIServer(ctx *cli.Context, handler http.Handler) (net.Listener, *http.Server) {
	addr := ctx.String(apiAddrFlag.Name)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		fatal(fmt.Sprintf("listen API addr [%v]: %v", addr, err))
	}
	if timeout := ctx.Uint64(apiTimeoutFlag.Name); timeout > 0 {
		handler = handleAPITimeout(handler, time.Duration(timeout)*time.Millisecond)
	}
	handler = requestBodyLimit(handler)
	return listener, &http.Server{Handler: handler, ReadHeaderTimeout: time.Second}
}

func newMetricsServer(ctx *cli.Context) (net.Listener, *http.Server, error) {
	addr := ctx.String(metricsAddrFlag.Name)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "listen metrics API addr [%v]", addr)
	}

	router := mux.NewRouter()
	router.PathPrefix("/metrics").Handler(metrics.HTTPHandler())
	handler := handlers.CompressHandler(router)

	return listener, &http.Server{Handler: handler, ReadHeaderTimeout: time.Second, ReadTimeout: 5 * time.Second}, nil
}

func printStartupMessage(gen *genesis.Genesis, dataDir, apiURL, metricsURL string) {
	if metricsURL == "" {
		metricsURL = "Disabled"
	}
	fmt.Printf(`Starting %v
    Authority    [ %v ]
    Weighting    [ %v ]
    Targets      [ %v ]
    Data dir     [ %v ]
    API portal   [ %v ]
    Metrics      [ %v ]
`,
		fullVersion(),
		gen.Authority,
		gen.Weighting,
		len(gen.Targets),
		dataDir,
		apiURL,
		metricsURL,
	)
}
