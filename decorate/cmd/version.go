/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/sap/go-generics/maps"
	"github.com/sap/go-generics/slices"
	"github.com/spf13/cobra"

	kyaml "sigs.k8s.io/yaml"

	"github.com/sap/manifest-decoration-runtime/internal/version"
)

const versionUsage = `Show version and build information of decorate`

var versionFormatters = map[string]func(buildInfo version.BuildInfo) ([]byte, error){
	"short": func(buildInfo version.BuildInfo) ([]byte, error) {
		return []byte(buildInfo.Version + "\n"), nil
	},
	"yaml": func(buildInfo version.BuildInfo) ([]byte, error) {
		return kyaml.Marshal(buildInfo)
	},
	"json": func(buildInfo version.BuildInfo) ([]byte, error) {
		raw, err := json.MarshalIndent(buildInfo, "", "  ")
		return append(raw, '\n'), err
	},
}

type versionOptions struct {
	outputFormat string
}

func newVersionCmd() *cobra.Command {
	options := &versionOptions{}
	formats := slices.Sort(maps.Keys(versionFormatters))

	cmd := &cobra.Command{
		Use:          "version",
		Short:        "Show version",
		Long:         versionUsage,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PreRunE: func(c *cobra.Command, args []string) error {
			if _, ok := versionFormatters[options.outputFormat]; !ok {
				return fmt.Errorf("invalid value for flag --%s: %s", "output", options.outputFormat)
			}
			return nil
		},
		RunE: func(c *cobra.Command, args []string) error {
			raw, err := versionFormatters[options.outputFormat](version.GetBuildInfo())
			if err != nil {
				return err
			}
			_, err = c.OutOrStdout().Write(raw)
			return err
		},
		ValidArgsFunction: func(c *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&options.outputFormat, "output", "o", "short", fmt.Sprintf("Output format; one of %v", formats))

	if err := cmd.RegisterFlagCompletionFunc("output", func(c *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return formats, cobra.ShellCompDirectiveNoFileComp
	}); err != nil {
		panic(err)
	}

	return cmd
}
