package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"hkgbuild/internal/app"
	"hkgbuild/internal/types"
)

type lookupOptions struct {
	Fields []string
}

func newLookupCommand() *cobra.Command {
	opts := lookupOptions{}
	cmd := &cobra.Command{
		Use:   "lookup <hackage-name>",
		Short: "Print the latest version, license and normalized dependencies of a package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd.Context(), cmd, opts, args[0])
		},
	}

	cmd.Flags().StringSliceVar(&opts.Fields, "field", nil, "Limit the lookup to Versions, License or Dependencies")
	_ = viper.BindPFlag("lookup_fields", cmd.Flags().Lookup("field"))

	return cmd
}

func runLookup(ctx context.Context, cmd *cobra.Command, opts lookupOptions, name string) error {
	labels, err := parseLabels(resolveStrings(cmd, opts.Fields, "lookup_fields", "field"))
	if err != nil {
		return err
	}
	service, err := newAppService()
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	result, err := service.Lookup(ctx, app.LookupRequest{Package: name, Labels: labels})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "package: %s\n", result.Package)
	fmt.Fprintf(out, "url: %s\n", result.URL)
	if result.Version != "" {
		fmt.Fprintf(out, "version: %s\n", result.Version)
		fmt.Fprintf(out, "versions: %s\n", strings.Join(result.Versions, ", "))
	}
	if result.License != "" {
		fmt.Fprintf(out, "license: %s\n", result.License)
	}
	if result.Depends != "" {
		fmt.Fprintf(out, "depends: %s\n", result.Depends)
	}
	for _, diag := range result.Diagnostics {
		fmt.Fprintf(out, "warning: %q: %s\n", diag.Entry, diag.Reason)
	}
	return nil
}

// parseLabels accepts field names in any case.
func parseLabels(values []string) ([]types.FieldLabel, error) {
	var labels []types.FieldLabel
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		matched := false
		for _, label := range types.FieldLabels {
			if strings.EqualFold(value, string(label)) {
				labels = append(labels, label)
				matched = true
				break
			}
		}
		if !matched {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("unknown field: %s", value))
		}
	}
	return labels, nil
}
