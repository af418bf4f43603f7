package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yigit/coursecatalog/internal/app/models"
	"github.com/yigit/coursecatalog/internal/catalog"
	"github.com/yigit/coursecatalog/internal/config"
	"github.com/yigit/coursecatalog/internal/pkg/logger"
	"github.com/yigit/coursecatalog/internal/seed"
)

type coursesOptions struct {
	filter  catalog.Filter
	brand   string
	catalog string
	format  string
}

func newCoursesCmd(root *rootOptions) *cobra.Command {
	opts := &coursesOptions{}

	cmd := &cobra.Command{
		Use:     "courses",
		Aliases: []string{"c"},
		Short:   "List the courses matching a filter",
		Long: `List the courses of a catalog matching the same filters as the courses page.
--select picks one course by id and ignores every other filter.

Examples:
  coursecatalog courses                          # Every course
  coursecatalog courses --q maths                # Title contains "maths"
  coursecatalog courses --class 12 --stream Commerce
  coursecatalog courses --brand anupama -f json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCourses(cmd, root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.filter.Query, catalog.ParamQuery, "", "case-insensitive title substring")
	cmd.Flags().StringVar(&opts.filter.SelectID, catalog.ParamSelect, "", "course id to show on its own")
	cmd.Flags().StringVar(&opts.filter.Class, catalog.ParamClass, "", "class level, e.g. 11")
	cmd.Flags().StringVar(&opts.filter.Stream, catalog.ParamStream, "", "stream, e.g. Commerce")
	cmd.Flags().StringVar(&opts.brand, "brand", "", "built-in catalog to use (deepjyoti, anupama, chanakya)")
	cmd.Flags().StringVar(&opts.catalog, "catalog", "", "catalog file to use instead of a built-in one")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "table", "output format (table, json, yaml)")

	return cmd
}

func runCourses(cmd *cobra.Command, root *rootOptions, opts *coursesOptions) error {
	switch opts.format {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("unsupported format %q (use table, json or yaml)", opts.format)
	}

	cfg, err := config.LoadConfig(root.configPath)
	if err != nil {
		return err
	}

	// Logs go to stderr so stdout stays parseable.
	logCfg := cfg.LoggerConfig()
	logCfg.Output = cmd.ErrOrStderr()
	logger.Configure(logCfg)

	brand, path := cfg.Brand(), cfg.Site.CatalogPath
	if opts.brand != "" {
		brand, path = models.Brand(opts.brand), ""
	}
	if opts.catalog != "" {
		path = opts.catalog
	}

	cat, err := seed.Load(brand, path, logger.WithField("command", "courses"))
	if err != nil {
		return err
	}

	return writeCourses(cmd.OutOrStdout(), opts.format, catalog.Apply(cat.Registry, opts.filter))
}

func writeCourses(w io.Writer, format string, courses []models.Course) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(courses)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(courses); err != nil {
			return err
		}
		return enc.Close()
	}

	if len(courses) == 0 {
		_, err := fmt.Fprintln(w, "No courses found")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCLASS\tSTREAM\tTITLE")
	for _, c := range courses {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", c.ID, c.ClassLevel, c.Stream, c.Title)
	}
	return tw.Flush()
}
