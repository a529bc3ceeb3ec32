// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cityjson/cjval/internal/cache"
	"github.com/cityjson/cjval/internal/server"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve validation over HTTP",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "address to listen on")
	serveCmd.Flags().Bool("no-cache", false, "do not read or write the result cache")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("addr") {
		if cfg.Server.Addr, err = cmd.Flags().GetString("addr"); err != nil {
			return fmt.Errorf("failed to get addr flag: %w", err)
		}
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	if noCache {
		cfg.Cache.Enabled = false
	}
	logf, err := logger(cmd)
	if err != nil {
		return err
	}
	v, err := verbose(cmd)
	if err != nil {
		return err
	}

	opts := server.Options{MaxBody: cfg.Server.MaxBody, Version: version}
	if v {
		opts.Logger = gin.Logger()
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.Cache.Enabled {
		c, err := cache.Open(cfg.Cache.Dir)
		if err != nil {
			logf("cache disabled: %v", err)
		} else {
			opts.Cache = c
		}
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           server.New(opts),
		ReadHeaderTimeout: 10 * time.Second,
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		logf("listening on %s", cfg.Server.Addr)
		errc <- srv.ListenAndServe()
	}()
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
