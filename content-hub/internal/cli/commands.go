package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/content-hub/internal/media"
	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/content-hub/internal/models"
	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/content-hub/internal/repository"
	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/content-hub/internal/visibility"
)

func parseSiteFlag(raw string) (models.SiteID, error) {
	if raw == "" {
		return models.SiteAll, nil
	}
	return models.ParseSite(raw)
}

func newListCommand(d *deps) *cobra.Command {
	var (
		site   string
		drafts bool
	)
	cmd := &cobra.Command{
		Use:   "list <resource>",
		Short: "List content as a site sees it",
		Long: `List published content visible on --site. Without --site every site's
content is listed. --drafts includes unpublished items.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			siteID, err := parseSiteFlag(site)
			if err != nil {
				return err
			}
			res, err := d.services.Catalog.Resource(args[0])
			if err != nil {
				return err
			}
			items, err := res.ListItems(cmd.Context(), repository.ListOptions{Site: siteID, IncludeDrafts: drafts})
			if err != nil {
				return fmt.Errorf("list %s: %w", args[0], err)
			}
			return d.renderer().Items(items)
		},
	}
	cmd.Flags().StringVar(&site, "site", "", "Site to resolve visibility for")
	cmd.Flags().BoolVar(&drafts, "drafts", false, "Include unpublished items")
	return cmd
}

func newGetCommand(d *deps) *cobra.Command {
	var site string
	cmd := &cobra.Command{
		Use:   "get <resource> <id>",
		Short: "Show one item",
		Long:  `Show one item. With --site the item must be published and visible on that site.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := d.services.Catalog.Resource(args[0])
			if err != nil {
				return err
			}
			var item any
			if site == "" {
				item, err = res.GetItem(cmd.Context(), args[1])
			} else {
				siteID, perr := parseSiteFlag(site)
				if perr != nil {
					return perr
				}
				item, err = res.GetVisibleItem(cmd.Context(), args[1], siteID, visibility.Options{})
			}
			if err != nil {
				return fmt.Errorf("get %s %s: %w", args[0], args[1], err)
			}
			return d.renderer().Item(item)
		},
	}
	cmd.Flags().StringVar(&site, "site", "", "Require visibility on this site")
	return cmd
}

func newMediaCommand(d *deps) *cobra.Command {
	site := string(models.SiteRealty)
	cmd := &cobra.Command{
		Use:   "media <property-id>",
		Short: "Show a listing's unified media gallery",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			siteID, err := parseSiteFlag(site)
			if err != nil {
				return err
			}
			p, err := d.services.Catalog.Properties.GetVisible(cmd.Context(), args[0], siteID, visibility.Options{})
			if err != nil {
				return fmt.Errorf("get property %s: %w", args[0], err)
			}
			return d.renderer().Media(media.BuildMediaItems(&p))
		},
	}
	cmd.Flags().StringVar(&site, "site", site, "Site to resolve visibility for")
	return cmd
}

func newImportCommand(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.xlsx>",
		Short: "Create property listings from a spreadsheet",
		Long: `Create one property listing per row of the first sheet. The header row
names the columns; title and price are required.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer func() { _ = f.Close() }()

			res, err := d.services.Importer.Import(cmd.Context(), f)
			if err != nil {
				return fmt.Errorf("import %s: %w", args[0], err)
			}
			return d.renderer().Import(res)
		},
	}
}

func newResourcesCommand(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "resources",
		Short: "List the content resources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return d.renderer().Names(d.services.Catalog.ResourceNames())
		},
	}
}
