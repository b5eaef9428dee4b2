/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-logr/logr"

	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/sap/manifest-decoration-runtime/decorate/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	// the root command installs the real logger, according to --verbosity
	log.SetLogger(logr.Discard())

	err := cmd.Execute(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
