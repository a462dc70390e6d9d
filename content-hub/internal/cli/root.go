// Package cli implements contentctl, the command-line client for the content
// hub's facades.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/content-hub/internal/bootstrap"
	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/content-hub/internal/config"
	infraconfig "github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/infrastructure/config"
	infralogger "github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/infrastructure/logger"
)

const (
	outputTable = "table"
	outputJSON  = "json"
)

var errBadOutput = errors.New("output must be table or json")

// deps is filled by the root command before any subcommand runs.
type deps struct {
	out      io.Writer
	output   string
	services *bootstrap.Services
	log      infralogger.Logger
}

func (d *deps) renderer() *Renderer {
	return NewRenderer(d.out, d.output == outputJSON)
}

// NewRootCommand builds contentctl writing results to out.
func NewRootCommand(out io.Writer) *cobra.Command {
	var (
		cfgFile string
		debug   bool
		d       = &deps{out: out}
	)

	root := &cobra.Command{
		Use:           "contentctl",
		Short:         "Inspect and load site content",
		Long:          `contentctl reads content the way each site sees it and bulk-loads property listings.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if d.output != outputTable && d.output != outputJSON {
				return errBadOutput
			}
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			level := "warn"
			if debug {
				level = "debug"
			}
			log, err := infralogger.New(infralogger.Config{
				Level:       level,
				Format:      infralogger.FormatConsole,
				OutputPaths: []string{"stderr"},
				Service:     "contentctl",
			})
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}
			d.log = log
			d.services = bootstrap.NewServices(cmd.Context(), cfg, log)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if d.services != nil {
				d.services.Close()
			}
			if d.log != nil {
				_ = d.log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", infraconfig.GetConfigPath("config.yml"), "Path to configuration file")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVarP(&d.output, "output", "o", outputTable, "Output format: table or json")

	root.AddCommand(
		newListCommand(d),
		newGetCommand(d),
		newMediaCommand(d),
		newImportCommand(d),
		newResourcesCommand(d),
	)
	return root
}
