package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	pkgApp "github.com/mateusmacedo/go-airline/pkg/application"
	pkgInfra "github.com/mateusmacedo/go-airline/pkg/infrastructure"
)

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the booking walkthrough and print the transcript",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runDemo(cmd)
		},
	}
}

func (a *app) runDemo(cmd *cobra.Command) (err error) {
	ctx := pkgApp.WithRequestID(cmd.Context(), pkgInfra.GenerateUUID())

	slice, b, err := a.newSlice()
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, b.Close())
	}()

	pkgApp.LogInfo(ctx, a.logger, "running demo", map[string]interface{}{
		"transport": string(a.cfg.Transport),
	})
	slice.RunDemo(ctx)
	return nil
}
