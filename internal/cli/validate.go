package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yigit/coursecatalog/internal/catalog"
	"github.com/yigit/coursecatalog/internal/seed"
)

var errInvalidCatalogs = errors.New("one or more catalogs are invalid")

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file...]",
		Short: "Check catalog files",
		Long: `Load catalog files and report every problem found. Without arguments the
built-in catalogs are checked. Exits non-zero when any catalog is invalid.

Examples:
  coursecatalog validate
  coursecatalog validate catalogs/deepjyoti.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			failed := false

			report := func(name string, cat *catalog.Catalog, err error) {
				if err != nil {
					failed = true
					fmt.Fprintf(out, "FAIL %s: %v\n", name, err)
					return
				}
				fmt.Fprintf(out, "ok   %s: %s, %d courses, %d toppers, %d posts\n",
					name, cat.Institute.Name, cat.Registry.Len(), len(cat.Toppers), len(cat.Posts))
			}

			if len(args) == 0 {
				for _, brand := range seed.Brands() {
					cat, err := seed.Catalog(brand)
					report(string(brand), cat, err)
				}
			}
			for _, path := range args {
				cat, err := catalog.LoadFile(path)
				report(path, cat, err)
			}

			if failed {
				return errInvalidCatalogs
			}
			return nil
		},
	}
}
