// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/Ministry-of-Decentralization/token-curation/api"
	"github.com/Ministry-of-Decentralization/token-curation/log"
	"github.com/Ministry-of-Decentralization/token-curation/logdb"
	"github.com/Ministry-of-Decentralization/token-curation/lvldb"
	"github.com/Ministry-of-Decentralization/token-curation/metrics"
	"github.com/Ministry-of-Decentralization/token-curation/runtime"
)

var (
	version   string
	gitCommit string
	gitTag    string

	logger = log.WithContext("pkg", "main")
)

func fullVersion() string {
	versionMeta := "release"
	if gitTag == "" {
		versionMeta = "dev"
	}
	return fmt.Sprintf("%s-%s-%s", version, gitCommit, versionMeta)
}

func main() {
	app := cli.App{
		Version: fullVersion(),
		Name:    "tcr",
		Usage:   "Staking ledger of a token curated registry",
		Flags: []cli.Flag{
			dataDirFlag,
			genesisFlag,
			persistFlag,
			cacheFlag,
			slotCacheFlag,
			apiAddrFlag,
			apiCorsFlag,
			apiTimeoutFlag,
			apiEventsLimitFlag,
			apiBacktraceLimitFlag,
			enableAPILogsFlag,
			apiSlowQueriesThresholdFlag,
			apiLog5xxErrorsFlag,
			pprofFlag,
			verbosityFlag,
			jsonLogsFlag,
			logFileFlag,
			logFileMaxSizeFlag,
			enableMetricsFlag,
			metricsAddrFlag,
		},
		Action: defaultAction,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func defaultAction(ctx *cli.Context) error {
	closeLog := initLogger(ctx)
	defer closeLog()
	defer func() { logger.Info("exited") }()

	exitCtx := handleExitSignal()

	if ctx.Bool(enableMetricsFlag.Name) {
		metrics.InitializePrometheusMetrics()
	}

	gen := loadGenesis(ctx)
	strategy, err := gen.Strategy()
	if err != nil {
		return err
	}

	var (
		mainDB  *lvldb.LevelDB
		logDB   *logdb.LogDB
		dataDir string
	)
	if ctx.Bool(persistFlag.Name) {
		dataDir = makeDataDir(ctx)
		mainDB = openMainDB(ctx, dataDir)
		logDB = openLogDB(dataDir)
	} else {
		dataDir = "Memory"
		mainDB = openMemMainDB()
		logDB = openMemLogDB()
	}
	defer func() { logger.Info("closing main database..."); mainDB.Close() }()
	defer func() { logger.Info("closing log database..."); logDB.Close() }()

	rt := runtime.New(newStater(ctx, mainDB), logDB, strategy)
	defer rt.Close()

	if _, err := rt.Execute(exitCtx, gen.Op()); err != nil {
		return errors.WithMessage(err, "launch ledger")
	}

	enableReqLogger := &atomic.Bool{}
	enableReqLogger.Store(ctx.Bool(enableAPILogsFlag.Name))
	handler, closeSubs := api.New(rt, api.Options{
		AllowedOrigins:       ctx.String(apiCorsFlag.Name),
		EventsLimit:          ctx.Uint64(apiEventsLimitFlag.Name),
		BacktraceLimit:       ctx.Uint64(apiBacktraceLimitFlag.Name),
		PprofOn:              ctx.Bool(pprofFlag.Name),
		EnableReqLogger:      enableReqLogger,
		SlowQueriesThreshold: time.Duration(ctx.Uint64(apiSlowQueriesThresholdFlag.Name)) * time.Millisecond,
		Log5xxErrors:         ctx.Bool(apiLog5xxErrorsFlag.Name),
		EnableMetrics:        ctx.Bool(enableMetricsFlag.Name),
	})

	group, groupCtx := errgroup.WithContext(exitCtx)
	servers := make([]*http.Server, 0, 2)

	apiListener, apiSrv := newAPIServer(ctx, handler)
	servers = append(servers, apiSrv)
	group.Go(func() error {
		if err := apiSrv.Serve(apiListener); !errors.Is(err, http.ErrServerClosed) {
			return errors.WithMessage(err, "api server")
		}
		return nil
	})
	apiURL := "http://" + apiListener.Addr().String() + "/"

	var metricsURL string
	if ctx.Bool(enableMetricsFlag.Name) {
		metricsListener, metricsSrv, err := newMetricsServer(ctx)
		if err != nil {
			apiSrv.Close()
			return err
		}
		servers = append(servers, metricsSrv)
		group.Go(func() error {
			if err := metricsSrv.Serve(metricsListener); !errors.Is(err, http.ErrServerClosed) {
				return errors.WithMessage(err, "metrics server")
			}
			return nil
		})
		metricsURL = "http://" + metricsListener.Addr().String() + "/metrics"
	}

	printStartupMessage(gen, dataDir, apiURL, metricsURL)

	group.Go(func() error {
		<-groupCtx.Done()
		logger.Info("stopping API server...")
		// hijacked subscription conns are not tracked by the server
		closeSubs()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		for _, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Warn("server shutdown", "err", err)
			}
		}
		return nil
	})
	return group.Wait()
}
