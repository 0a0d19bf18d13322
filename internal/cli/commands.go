package cli

import (
	"fmt"
	"image/color"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"github.com/ironsheep/image-augment/internal/transform"
	"github.com/ironsheep/image-augment/internal/warp"
)

func newSkewCmd(opts *rootOptions) *cobra.Command {
	var (
		mode      string
		magnitude float64
	)
	cmd := &cobra.Command{
		Use:   "skew <image>",
		Short: "Apply a random perspective skew",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.configPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("mode") && cfg.Skew.Mode != "" {
				mode = cfg.Skew.Mode
			}
			if !cmd.Flags().Changed("magnitude") && cfg.Skew.Magnitude != 0 {
				magnitude = cfg.Skew.Magnitude
			}

			skewMode, err := parseSkewMode(mode)
			if err != nil {
				return err
			}
			resample, err := parseResample(opts.resample)
			if err != nil {
				return err
			}
			return runTransform(cmd, opts, args[0], "skew", transform.Skew{
				Mode:      skewMode,
				Magnitude: magnitude,
				Resample:  resample,
			})
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "tilt", "skew mode: tilt, tilt-left-right, tilt-top-bottom or corner")
	cmd.Flags().Float64Var(&magnitude, "magnitude", 0, "inverse skew intensity; 0 draws a random distance")
	return cmd
}

func newRotateCmd(opts *rootOptions) *cobra.Command {
	var (
		angle    float64
		maxLeft  float64
		maxRight float64
		fill     string
	)
	cmd := &cobra.Command{
		Use:   "rotate <image>",
		Short: "Rotate with canvas expansion, fill-crop and resize back",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.configPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("angle") && cfg.Rotate.Angle != 0 {
				angle = cfg.Rotate.Angle
			}
			if !cmd.Flags().Changed("max-left") && cfg.Rotate.MaxLeft != 0 {
				maxLeft = cfg.Rotate.MaxLeft
			}
			if !cmd.Flags().Changed("max-right") && cfg.Rotate.MaxRight != 0 {
				maxRight = cfg.Rotate.MaxRight
			}
			if !cmd.Flags().Changed("fill") && cfg.Rotate.Fill != "" {
				fill = cfg.Rotate.Fill
			}

			fillColor, err := parseFill(fill)
			if err != nil {
				return err
			}
			resample, err := parseResample(opts.resample)
			if err != nil {
				return err
			}
			return runTransform(cmd, opts, args[0], "rotate", transform.Rotate{
				Angle:    angle,
				MaxLeft:  maxLeft,
				MaxRight: maxRight,
				Fill:     fillColor,
				Resample: resample,
			})
		},
	}
	cmd.Flags().Float64Var(&angle, "angle", 0, "fixed rotation in degrees, positive counter-clockwise")
	cmd.Flags().Float64Var(&maxLeft, "max-left", 0, "random draw bound for counter-clockwise rotation (degrees)")
	cmd.Flags().Float64Var(&maxRight, "max-right", 0, "random draw bound for clockwise rotation (degrees)")
	cmd.Flags().StringVar(&fill, "fill", "", "hex color behind expanded corners, e.g. #000000 (default transparent)")
	return cmd
}

func newShearCmd(opts *rootOptions) *cobra.Command {
	var (
		angle    float64
		maxLeft  float64
		maxRight float64
		axis     string
	)
	cmd := &cobra.Command{
		Use:   "shear <image>",
		Short: "Shear along one axis, cropping the blank wedge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.configPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("angle") && cfg.Shear.Angle != 0 {
				angle = cfg.Shear.Angle
			}
			if !cmd.Flags().Changed("max-left") && cfg.Shear.MaxLeft != 0 {
				maxLeft = cfg.Shear.MaxLeft
			}
			if !cmd.Flags().Changed("max-right") && cfg.Shear.MaxRight != 0 {
				maxRight = cfg.Shear.MaxRight
			}
			if !cmd.Flags().Changed("axis") && cfg.Shear.Axis != "" {
				axis = cfg.Shear.Axis
			}

			shearAxis, err := parseAxis(axis)
			if err != nil {
				return err
			}
			resample, err := parseResample(opts.resample)
			if err != nil {
				return err
			}
			return runTransform(cmd, opts, args[0], "shear", transform.Shear{
				Angle:    angle,
				MaxLeft:  maxLeft,
				MaxRight: maxRight,
				Axis:     shearAxis,
				Resample: resample,
			})
		},
	}
	cmd.Flags().Float64Var(&angle, "angle", 0, "fixed shear angle in degrees")
	cmd.Flags().Float64Var(&maxLeft, "max-left", 0, "random draw bound for negative shear (degrees)")
	cmd.Flags().Float64Var(&maxRight, "max-right", 0, "random draw bound for positive shear (degrees)")
	cmd.Flags().StringVar(&axis, "axis", "random", "shear axis: x, y or random")
	return cmd
}

func newDistortCmd(opts *rootOptions) *cobra.Command {
	var (
		gridWidth   int
		gridHeight  int
		magnitude   int
		overlayPath string
	)
	cmd := &cobra.Command{
		Use:   "distort <image>",
		Short: "Apply a localized elastic grid distortion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.configPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("grid-width") && cfg.Distort.GridWidth != 0 {
				gridWidth = cfg.Distort.GridWidth
			}
			if !cmd.Flags().Changed("grid-height") && cfg.Distort.GridHeight != 0 {
				gridHeight = cfg.Distort.GridHeight
			}
			if !cmd.Flags().Changed("magnitude") && cfg.Distort.Magnitude != 0 {
				magnitude = cfg.Distort.Magnitude
			}

			resample, err := parseResample(opts.resample)
			if err != nil {
				return err
			}
			if overlayPath == "" {
				return runTransform(cmd, opts, args[0], "distort", transform.Distort{
					GridWidth:  gridWidth,
					GridHeight: gridHeight,
					Magnitude:  magnitude,
					Resample:   resample,
				})
			}
			return runDistortWithOverlay(cmd, opts, args[0], overlayPath,
				gridWidth, gridHeight, magnitude, resample)
		},
	}
	cmd.Flags().IntVar(&gridWidth, "grid-width", 4, "number of grid cells across")
	cmd.Flags().IntVar(&gridHeight, "grid-height", 4, "number of grid cells down")
	cmd.Flags().IntVar(&magnitude, "magnitude", 1, "maximum vertex displacement in pixels")
	cmd.Flags().StringVar(&overlayPath, "mesh-overlay", "", "also write a mesh visualization to this path")
	return cmd
}

// runDistortWithOverlay generates the mesh once so the warp and the debug
// overlay show the same displacement field.
func runDistortWithOverlay(cmd *cobra.Command, opts *rootOptions, input, overlayPath string, gridW, gridH, magnitude int, resample warp.Resample) error {
	logger := loggerFromContext(cmd.Context())
	start := time.Now()

	img, err := openImage(input)
	if err != nil {
		return err
	}
	b := img.Bounds()
	logger.Debug("loaded image", "path", input, "width", b.Dx(), "height", b.Dy())

	rng := newRNG(opts.seed)
	mesh, err := transform.GenerateMesh(b.Dx(), b.Dy(), gridW, gridH, magnitude, rng)
	if err != nil {
		return err
	}
	out, err := warp.MeshWarp(img, mesh, b.Dx(), b.Dy(), resample)
	if err != nil {
		return err
	}
	overlay, err := warp.DrawMeshOverlay(img, mesh, "#FF0000")
	if err != nil {
		return err
	}

	dst := outputPath(opts.outPath, input, "distort")
	if err := saveImage(out, dst); err != nil {
		return err
	}
	if err := saveImage(overlay, overlayPath); err != nil {
		return err
	}
	logger.Info("wrote augmented image", "op", "distort", "path", dst,
		"overlay", overlayPath, "took", elapsed(start))
	return nil
}

// runTransform is the shared load/apply/save path for every command.
func runTransform(cmd *cobra.Command, opts *rootOptions, input, op string, t transform.Transform) error {
	logger := loggerFromContext(cmd.Context())
	start := time.Now()

	img, err := openImage(input)
	if err != nil {
		return err
	}
	b := img.Bounds()
	logger.Debug("loaded image", "path", input, "width", b.Dx(), "height", b.Dy())

	out, err := t.Apply(img, newRNG(opts.seed))
	if err != nil {
		return err
	}

	dst := outputPath(opts.outPath, input, op)
	if err := saveImage(out, dst); err != nil {
		return err
	}
	logger.Info("wrote augmented image", "op", op, "path", dst, "took", elapsed(start))
	return nil
}

func parseSkewMode(s string) (transform.SkewMode, error) {
	switch s {
	case "", "tilt":
		return transform.SkewTilt, nil
	case "tilt-left-right":
		return transform.SkewTiltLeftRight, nil
	case "tilt-top-bottom":
		return transform.SkewTiltTopBottom, nil
	case "corner":
		return transform.SkewCorner, nil
	default:
		return 0, fmt.Errorf("unknown skew mode %q", s)
	}
}

func parseAxis(s string) (transform.Axis, error) {
	switch s {
	case "", "random":
		return transform.AxisRandom, nil
	case "x":
		return transform.AxisX, nil
	case "y":
		return transform.AxisY, nil
	default:
		return 0, fmt.Errorf("unknown shear axis %q", s)
	}
}

func parseResample(s string) (warp.Resample, error) {
	switch s {
	case "", "bicubic":
		return warp.Bicubic, nil
	case "bilinear":
		return warp.Bilinear, nil
	case "nearest":
		return warp.Nearest, nil
	default:
		return 0, fmt.Errorf("unknown resample mode %q", s)
	}
}

// parseFill converts a hex color like "#RRGGBB" to a color. An empty string
// means fully transparent fill.
func parseFill(s string) (color.Color, error) {
	if s == "" {
		return color.Transparent, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("invalid fill color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}
