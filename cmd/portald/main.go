// Copyright (C) 2025 Claimgate Project
//
// This file is part of claimgate-go.
//
// claimgate-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// claimgate-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with claimgate-go.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/claimgate/claimgate-go/pkg/config"
	"github.com/claimgate/claimgate-go/pkg/log"
	"github.com/claimgate/claimgate-go/pkg/server"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.L(ctx).WithError(err).Fatal("invalid configuration")
	}
	log.InitConfig(cfg.LogLevel)

	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           server.NewServer(cfg).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		log.L(ctx).Infof("verification portal listening on %s", cfg.Address)
		errs <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errs:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.L(ctx).WithError(err).Fatal("server failed")
		}
	case sig := <-stop:
		log.L(ctx).Infof("received %s, shutting down", sig)
		shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.L(ctx).WithError(err).Error("shutdown did not complete cleanly")
		}
	}
}
