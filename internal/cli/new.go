package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"hkgbuild/internal/app"
)

type newOptions struct {
	Output         string
	NonInteractive bool
	DryRun         bool
}

func newNewCommand() *cobra.Command {
	opts := newOptions{}
	cmd := &cobra.Command{
		Use:   "new [hackage-name]",
		Short: "Interactively create a PKGBUILD and install script",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			return runNew(cmd.Context(), cmd, opts, name)
		},
	}

	cmd.Flags().StringVar(&opts.Output, "output", ".", "Directory that receives <pkgname>/PKGBUILD")
	cmd.Flags().BoolVar(&opts.NonInteractive, "non-interactive", false, "Accept every default without prompting")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Print the rendered files instead of writing them")

	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("non_interactive", cmd.Flags().Lookup("non-interactive"))
	_ = viper.BindPFlag("dry_run", cmd.Flags().Lookup("dry-run"))

	return cmd
}

func runNew(ctx context.Context, cmd *cobra.Command, opts newOptions, name string) error {
	service, err := newAppService()
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()
	nonInteractive := resolveBool(cmd, opts.NonInteractive, "non_interactive", "non-interactive")
	dryRun := resolveBool(cmd, opts.DryRun, "dry_run", "dry-run")
	outputDir := resolveString(cmd, opts.Output, "output", "output")
	prompter := app.NewPrompter(cmd.InOrStdin(), out, nonInteractive)

	fmt.Fprintln(out, "hkgbuild - From Hackage to Package!")
	for {
		result, err := service.Session(ctx, app.SessionRequest{
			Prompter:  prompter,
			Package:   name,
			OutputDir: outputDir,
			DryRun:    dryRun,
		})
		switch {
		case err == nil:
			printSession(out, result, dryRun)
		case app.IsSessionAbort(err):
			if !app.IsCancelled(err) {
				log.Error().Str("package", name).Msg(errorMessage(err))
			}
			fmt.Fprintln(out, "Cancelled.")
			if nonInteractive {
				return err
			}
		default:
			return err
		}
		if nonInteractive {
			return nil
		}
		again, err := prompter.Confirm("\nCreate another?", true)
		if err != nil || !again {
			return nil
		}
		name = ""
	}
}

func printSession(out io.Writer, result app.SessionResult, dryRun bool) {
	if dryRun {
		fmt.Fprintf(out, "\n# PKGBUILD\n%s\n# %s.install\n%s", result.PKGBUILD, result.Info.PkgName, result.Install)
		return
	}
	fmt.Fprintf(out, "\nSaved %s\n", result.Written.PKGBUILDPath)
	fmt.Fprintf(out, "Saved %s\n", result.Written.InstallPath)
}
