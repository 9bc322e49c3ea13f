/*
 * Copyright 2025 The x10mon Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/eufydev/x10mon/pkg/config"
	"github.com/eufydev/x10mon/pkg/fetcher"
	"github.com/eufydev/x10mon/pkg/logger"
	"github.com/eufydev/x10mon/pkg/monitor"
)

var (
	errFailedToLoadConfig = fmt.Errorf("failed to load config")
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	configPath := flag.String("config", "/etc/x10mon/x10mon.json", "Path to monitor config file")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfgLoader := config.NewConfig(nil)

	var cfg monitor.Config

	if err := cfgLoader.LoadAndValidate(ctx, *configPath, &cfg); err != nil {
		return fmt.Errorf("%w: %w", errFailedToLoadConfig, err)
	}

	logConfig := cfg.Logging
	if logConfig == nil {
		logConfig = &logger.Config{
			Level:  "info",
			Output: "stdout",
		}
	}

	monitorLogger, err := logger.New(logConfig)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	// No endpoint means no live device; run against the simulated payload
	// so the decode pipeline can still be exercised end to end.
	var fetch monitor.Fetcher
	if cfg.Endpoint != "" {
		fetch = fetcher.NewHTTP(cfg.Endpoint, nil)
	} else {
		fetch = fetcher.NewSimulated(0)
	}

	m, err := monitor.New(&cfg, fetch, nil, nil, monitorLogger) // nil clock defaults to the real clock
	if err != nil {
		return err
	}

	err = m.Start(ctx)
	if errors.Is(err, context.Canceled) {
		err = nil
	}

	if stopErr := m.Stop(context.Background()); stopErr != nil {
		return stopErr
	}

	return err
}
