/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sap/go-generics/slices"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"k8s.io/cli-runtime/pkg/printers"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/sap/manifest-decoration-runtime/internal/fileutils"
	"github.com/sap/manifest-decoration-runtime/pkg/config"
	"github.com/sap/manifest-decoration-runtime/pkg/manifests"
	"github.com/sap/manifest-decoration-runtime/pkg/manifests/kubernetes"
	"github.com/sap/manifest-decoration-runtime/pkg/manifests/openshift"
	"github.com/sap/manifest-decoration-runtime/pkg/project"
	"github.com/sap/manifest-decoration-runtime/pkg/types"
)

const generateUsage = `Generate deployment manifests for the project located at --project-root

For each given --target, the fallback configuration of the target type is composed with the fragments
given by --fragment (files, or directories containing yaml/json files) and --template (go templates
rendered over the project facts), in order of appearance. Fragments may reference environment variables
in the form ${VAR}.

The resulting resource groups are written as <group>.yml into --output-dir, or to stdout if no
output directory is given.`

type generateOptions struct {
	targets        []string
	fragments      []string
	templates      []string
	projectRoot    string
	projectName    string
	projectVersion string
	remote         string
	httpsPreferred bool
	outputDir      string
}

func newGenerateCmd() *cobra.Command {
	options := &generateOptions{}

	cmd := &cobra.Command{
		Use:          "generate",
		Short:        "Generate manifests",
		Long:         generateUsage,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PreRunE: func(c *cobra.Command, args []string) error {
			if len(options.targets) == 0 {
				return fmt.Errorf("at least one target must be specified")
			}
			for _, target := range options.targets {
				if !slices.Contains(configTypeNames(), target) {
					return fmt.Errorf("invalid value for flag --%s: %s", "target", target)
				}
			}
			return nil
		},
		RunE: func(c *cobra.Command, args []string) error {
			return runGenerate(c.Context(), options, c.OutOrStdout())
		},
		ValidArgsFunction: func(c *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
	}

	options.addFlags(cmd.Flags())

	if err := cmd.RegisterFlagCompletionFunc("target", func(c *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return configTypeNames(), cobra.ShellCompDirectiveNoFileComp
	}); err != nil {
		panic(err)
	}

	return cmd
}

func (o *generateOptions) addFlags(flags *pflag.FlagSet) {
	flags.SortFlags = false
	flags.StringArrayVarP(&o.targets, "target", "t", []string{string(config.TypeKubernetes)}, "Deployment target type (can be repeated)")
	flags.StringArrayVarP(&o.fragments, "fragment", "f", nil, "Path to configuration fragment file or directory (can be repeated, fragments will be merged in order of appearance)")
	flags.StringArrayVar(&o.templates, "template", nil, "Path to configuration fragment template (can be repeated, rendered fragments are merged after the ones given by --fragment)")
	flags.StringVar(&o.projectRoot, "project-root", ".", "Root directory of the project")
	flags.StringVar(&o.projectName, "name", "", "Override for the project name (default is derived from go.mod or the project root directory)")
	flags.StringVar(&o.projectVersion, "version", "", "Override for the project version")
	flags.StringVar(&o.remote, "remote", types.DefaultRemote, "Git remote whose URL is recorded in the manifests")
	flags.BoolVar(&o.httpsPreferred, "https-preferred", false, "Rewrite ssh git remote URLs to https")
	flags.StringVarP(&o.outputDir, "output-dir", "o", "", "Directory to write the manifests to (default is stdout)")
}

func runGenerate(ctx context.Context, options *generateOptions, out io.Writer) error {
	log := log.FromContext(ctx)

	p, err := project.Probe(options.projectRoot, project.ProbeOptions{
		Name:    options.projectName,
		Version: options.projectVersion,
	})
	if err != nil {
		return err
	}
	log.V(1).Info("probed project", "root", p.Root, "name", p.BuildInfo.Name, "version", p.BuildInfo.Version)

	fragments, err := loadFragments(options.fragments, options.templates, p)
	if err != nil {
		return err
	}

	session := manifests.NewSession(p, manifests.VcsOptions{
		Remote:         options.remote,
		HttpsPreferred: options.httpsPreferred,
	})
	for _, generator := range []manifests.Generator{kubernetes.NewGenerator(), openshift.NewGenerator()} {
		if err := session.Register(generator); err != nil {
			return err
		}
	}

	targets := slices.Collect(options.targets, func(target string) manifests.Target {
		return manifests.Target{Type: config.Type(target), Fragments: fragments}
	})
	result, err := session.Run(ctx, targets...)
	if err != nil {
		return err
	}

	// on stdout, all groups form one yaml stream
	printer := &printers.YAMLPrinter{}
	for _, group := range result.GroupOrder {
		if options.outputDir == "" {
			if err := printObjects(printer, result.Documents(group), out); err != nil {
				return errors.Wrapf(err, "error writing group %s", group)
			}
			continue
		}
		if err := writeGroup(group, result.Documents(group), options.outputDir); err != nil {
			return err
		}
		log.Info("wrote resource group", "group", group, "documents", len(result.Documents(group)))
	}
	return nil
}

func loadFragments(fragmentPaths []string, templatePaths []string, p *project.Project) ([]*config.Fragment, error) {
	var fragments []*config.Fragment

	fsys, paths, err := rootFS(fragmentPaths)
	if err != nil {
		return nil, err
	}
	files, err := fileutils.ExpandPaths(fsys, paths)
	if err != nil {
		return nil, err
	}
	for _, file := range files {
		raw, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, errors.Wrapf(err, "error reading fragment /%s", file)
		}
		fragment, err := config.LoadFragment(raw, os.Getenv)
		if err != nil {
			return nil, errors.Wrapf(err, "error loading fragment /%s", file)
		}
		fragments = append(fragments, fragment)
	}

	for _, path := range templatePaths {
		source, err := config.NewTemplateFragmentSource(nil, path)
		if err != nil {
			return nil, err
		}
		fragment, err := source.Render(p, os.Getenv)
		if err != nil {
			return nil, err
		}
		fragments = append(fragments, fragment)
	}

	return fragments, nil
}

func writeGroup(group string, objects []client.Object, outputDir string) (err error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return errors.Wrapf(err, "error creating output directory %s", outputDir)
	}
	path := filepath.Join(outputDir, group+".yml")
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "error creating %s", path)
	}
	defer func() {
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
	}()
	if err := printObjects(&printers.YAMLPrinter{}, objects, file); err != nil {
		return errors.Wrapf(err, "error writing %s", path)
	}
	return nil
}

func printObjects(printer printers.ResourcePrinter, objects []client.Object, out io.Writer) error {
	for _, object := range objects {
		if err := printer.PrintObj(object, out); err != nil {
			return err
		}
	}
	return nil
}
