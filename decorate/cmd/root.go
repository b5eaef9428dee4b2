/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

const shortName = "decorate"

const rootUsage = `Generate decorated deployment manifests for a project

Common actions for decorate:
- decorate generate      Generate manifests for one or more deployment targets
- decorate version       Show version
`

type rootOptions struct {
	verbosity int
}

func newRootCmd() *cobra.Command {
	options := &rootOptions{}

	cmd := &cobra.Command{
		Use:          shortName,
		Short:        "A deployment manifest generator",
		Long:         rootUsage,
		SilenceUsage: true,
		PersistentPreRun: func(c *cobra.Command, args []string) {
			log.SetLogger(zap.New(zap.UseDevMode(true), zap.Level(zapcore.Level(-options.verbosity))))
		},
	}

	cmd.Flags().SortFlags = false
	cmd.PersistentFlags().IntVarP(&options.verbosity, "verbosity", "v", 0, "Log verbosity (0 logs errors and info messages only, 1 also logs decorator details)")

	cmd.AddCommand(
		newVersionCmd(),
		newGenerateCmd(),
	)

	return cmd
}

// Run the decorate command line; ctx carries cancellation and is handed to the commands.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}
