package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"image-labeler/internal/app"
	"image-labeler/internal/config"
	"image-labeler/internal/logger"
)

type rootOptions struct {
	configPath  string
	dir         string
	mode        string
	labelsFile  string
	xlsx        bool
	parquet     bool
	autoAdvance bool
	logLevel    string
	jsonLogs    bool
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "image-labeler",
		Short: "Label a folder of images for supervised learning",
		Long: `Image Labeler assigns one class label to each image in a folder.

Labels are recorded in a csv file only, or the images are copied or moved
into one sub-folder per label. A one-hot csv (optionally xlsx and parquet)
is written to <folder>/output on demand and automatically on exit.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			_ = godotenv.Load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}

			level, _ := logger.ParseLevel(cfg.LogLevel)
			log := logger.New(level, cfg.JSONLogs)

			application, err := app.NewApplication(cfg, log)
			if err != nil {
				log.Error("main", err, nil)
				return err
			}
			return application.Run(cmd.Context())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", fmt.Sprintf("config file (default %s if present)", config.DefaultConfigFile))
	flags.StringVarP(&opts.dir, "dir", "d", "", "folder with the images to label")
	flags.StringVarP(&opts.mode, "mode", "m", "", "how labels are stored: csv, copy or move")
	flags.StringVarP(&opts.labelsFile, "labels-file", "l", "", "text file with one label per line")
	flags.BoolVar(&opts.xlsx, "xlsx", false, "also write an xlsx next to the csv")
	flags.BoolVar(&opts.parquet, "parquet", false, "also write a parquet file next to the csv")
	flags.BoolVar(&opts.autoAdvance, "auto-advance", false, "go to the next image after labeling")
	flags.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error")
	flags.BoolVar(&opts.jsonLogs, "json-logs", false, "log as JSON instead of console text")

	return cmd
}

// load reads the config and overrides it with the flags the user set.
func (o *rootOptions) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("dir") {
		cfg.InputDir = o.dir
	}
	if flags.Changed("mode") {
		cfg.Mode = o.mode
	}
	if flags.Changed("labels-file") {
		cfg.LabelsFile = o.labelsFile
	}
	if flags.Changed("xlsx") {
		cfg.GenerateXLSX = o.xlsx
	}
	if flags.Changed("parquet") {
		cfg.GenerateParquet = o.parquet
	}
	if flags.Changed("auto-advance") {
		cfg.AutoAdvance = o.autoAdvance
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("json-logs") {
		cfg.JSONLogs = o.jsonLogs
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
