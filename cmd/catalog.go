package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ProfeJavix/lua-localizer/internal/controller"
	"github.com/ProfeJavix/lua-localizer/internal/domain"
)

const formatFlagName = "format"

var formatFlag string

// catalogCmd represents the catalog command.
var catalogCmd = newCatalogCmd()

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the library functions that can be localized",
		Long:  catalogLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := controller.ParseCatalogFormat(formatFlag)
			if err != nil {
				return err
			}

			return workflow.ListCatalog(cmd.Context(), domain.CatalogArgs{
				SourceArgs: sourceArgs(),
				Format:     format,
			})
		},
	}

	cmd.Flags().StringVarP(&formatFlag, formatFlagName, "f", string(controller.CatalogTable), "output format: table or yaml")

	return cmd
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}
