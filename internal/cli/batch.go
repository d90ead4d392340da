package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"hkgbuild/internal/app"
)

type batchOptions struct {
	Packages string
	Report   string
}

func newBatchCommand() *cobra.Command {
	opts := batchOptions{}
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Look up every package of a yaml list and write a report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBatch(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Packages, "packages", "packages.yaml", "Yaml file listing package names under 'packages'")
	cmd.Flags().StringVar(&opts.Report, "report", "batch-report.yaml", "Output path for the batch report")

	_ = viper.BindPFlag("batch_packages", cmd.Flags().Lookup("packages"))
	_ = viper.BindPFlag("batch_report", cmd.Flags().Lookup("report"))

	return cmd
}

func runBatch(ctx context.Context, cmd *cobra.Command, opts batchOptions) error {
	service, err := newAppService()
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	result, err := service.Batch(ctx, app.BatchRequest{
		ListPath:   resolveString(cmd, opts.Packages, "batch_packages", "packages"),
		ReportPath: resolveString(cmd, opts.Report, "batch_report", "report"),
	})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, pkg := range result.Report.Packages {
		if pkg.Error != "" {
			fmt.Fprintf(out, "%s: FAILED %s\n", pkg.Name, pkg.Error)
			continue
		}
		fmt.Fprintf(out, "%s: %s %s\n", pkg.Name, pkg.Version, pkg.License)
	}
	fmt.Fprintf(out, "wrote batch report: %s (%d failed)\n", result.ReportPath, result.Failed)
	return nil
}
