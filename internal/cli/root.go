package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev" // semantic version, injected via ldflags
	commit  = "unknown"
	date    = "unknown"
)

// SetVersion sets the version information displayed by --version. Typically
// called by the main package with values injected at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// rootOptions holds flags shared by every subcommand.
type rootOptions struct {
	verbose    bool
	seed       int64
	configPath string
	resample   string
	outPath    string
}

// Execute runs the image-augment CLI and returns an error if any command
// fails.
func Execute() error {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:          "image-augment",
		Short:        "image-augment applies geometric augmentation transforms to images",
		Long:         `image-augment computes parametrized 2D geometric transforms used for dataset augmentation: perspective skew, rotation with fill-crop, shear, and localized elastic grid distortion.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if opts.verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("image-augment %s\ncommit: %s\nbuilt: %s\n", version, commit, date))

	pf := root.PersistentFlags()
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	pf.Int64Var(&opts.seed, "seed", 0, "random seed (0 seeds from the clock)")
	pf.StringVar(&opts.configPath, "config", "", "TOML file with parameter defaults")
	pf.StringVar(&opts.resample, "resample", "bicubic", "resampling mode: bicubic, bilinear or nearest")
	pf.StringVarP(&opts.outPath, "out", "o", "", "output path (default: input name with operation suffix)")

	root.AddCommand(newSkewCmd(opts))
	root.AddCommand(newRotateCmd(opts))
	root.AddCommand(newShearCmd(opts))
	root.AddCommand(newDistortCmd(opts))

	return root.ExecuteContext(context.Background())
}
