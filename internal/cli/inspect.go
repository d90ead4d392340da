package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"hkgbuild/internal/app"
)

type inspectOptions struct {
	Output string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect <pkgname>",
		Short: "Show the fields of a previously generated PKGBUILD",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, opts, args[0])
		},
	}
	cmd.Flags().StringVar(&opts.Output, "output", ".", "Directory holding <pkgname>/PKGBUILD")
	_ = viper.BindPFlag("inspect_output", cmd.Flags().Lookup("output"))
	return cmd
}

func runInspect(cmd *cobra.Command, opts inspectOptions, pkgname string) error {
	service, err := newAppService()
	if err != nil {
		return err
	}
	result, err := service.Inspect(app.InspectRequest{
		OutputDir: resolveString(cmd, opts.Output, "inspect_output", "output"),
		PkgName:   pkgname,
	})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n", result.Path)
	for _, key := range result.Keys {
		fmt.Fprintf(out, "  %s: %s\n", key, result.Record[key])
	}
	return nil
}
