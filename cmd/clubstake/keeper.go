package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/furysport/furycontracts-sub000/keeper"
	"github.com/furysport/furycontracts-sub000/logger"
	"github.com/furysport/furycontracts-sub000/metrics"
)

func keeperAction(ctx *cli.Context) error {
	n, err := openNode(ctx)
	if err != nil {
		return err
	}
	defer n.close()

	k, err := keeper.New(n.svc, keeper.Config{
		Admin:              n.cfg.Admin,
		DistributeSchedule: n.cfg.DistributeSchedule,
		SweepSchedule:      n.cfg.SweepSchedule,
	}, logger.Default())
	if err != nil {
		return err
	}

	addr := n.cfg.MetricsAddr
	if ctx.IsSet(metricsAddrFlag.Name) {
		addr = ctx.String(metricsAddrFlag.Name)
	}
	var srv *http.Server
	if addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		srv = &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error(err, zap.String("addr", addr))
			}
		}()
		logger.Info("metrics server started", zap.String("addr", addr))
	}

	if err := k.Start(); err != nil {
		return err
	}
	<-handleExitSignal().Done()

	stopCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if srv != nil {
		if err := srv.Shutdown(stopCtx); err != nil {
			logger.Warn("metrics server shutdown", zap.Error(err))
		}
	}
	return k.Stop(stopCtx)
}
