// Command whitted-raytracer renders one of the built-in demo scenes with a
// recursive Whitted-style ray tracer and writes the image as PPM or PNG.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// options holds everything the render command reads from its flags
type options struct {
	width      int
	height     int
	sceneID    string
	reflection bool
	textures   bool
	output     string
	format     string
	workers    int
}

var opts options

var cmdRoot = &cobra.Command{
	Use:   "whitted-raytracer",
	Short: "Render a built-in scene with a Whitted-style ray tracer",
	Long: "Render a built-in scene with a Whitted-style ray tracer.\n\n" +
		"The image is written to stdout unless --output is given.\n" +
		"Progress is logged at -v=1.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		if opts.output == "" {
			return run(ctx, opts, os.Stdout)
		}

		f, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("while creating output file: %w", err)
		}
		if err := run(ctx, opts, f); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("while closing output file: %w", err)
		}
		return nil
	},
}

var cmdScenes = &cobra.Command{
	Use:   "scenes",
	Short: "List the built-in scenes",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, info := range scene.ListScenes() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s: %s\n", info.ID, info.DisplayName, info.Description)
		}
		return nil
	},
}

func init() {
	defaults := renderer.DefaultConfig()

	flags := cmdRoot.Flags()
	flags.IntVarP(&opts.width, "width", "w", defaults.Width, "Image width in pixels")
	flags.IntVar(&opts.height, "height", defaults.Height, "Image height in pixels")
	flags.StringVarP(&opts.sceneID, "scene", "s", scene.DefaultSceneID, "Scene to render (see the scenes command)")
	flags.BoolVarP(&opts.reflection, "reflection", "r", false, "Enable mirror reflections")
	flags.BoolVarP(&opts.textures, "textures", "t", false, "Enable textures (no built-in material is textured)")
	flags.StringVarP(&opts.output, "output", "o", "", "Output file (default stdout)")
	flags.StringVar(&opts.format, "format", string(renderer.FormatPPM), "Output format: ppm or png")
	flags.IntVar(&opts.workers, "workers", 0, "Concurrent rows (0 = one per CPU)")

	cmdRoot.PersistentFlags().AddGoFlagSet(flag.CommandLine)
}

// createScene builds the requested scene, falling back to the default scene
// for unknown IDs
func createScene(id string, aspectRatio float64) *scene.Scene {
	s, ok := scene.Create(id, aspectRatio)
	if !ok {
		glog.Warningf("Unknown scene %q, using %s", id, scene.DefaultSceneID)
	}
	return s
}

// optionWarnings lists accepted flags that have no effect on the render
func optionWarnings(o options) []string {
	var warnings []string
	if o.textures {
		warnings = append(warnings, "Textures requested but no material is textured; ignoring --textures")
	}
	return warnings
}

// run renders the scene selected by o and encodes it to out
func run(ctx context.Context, o options, out io.Writer) error {
	format, err := renderer.ParseFormat(o.format)
	if err != nil {
		return fmt.Errorf("while parsing flags: %w", err)
	}
	if o.width <= 0 || o.height <= 0 {
		return fmt.Errorf("while parsing flags: %dx%d: %w", o.width, o.height, renderer.ErrInvalidDimensions)
	}
	for _, w := range optionWarnings(o) {
		glog.Warning(w)
	}

	config := renderer.DefaultConfig()
	config.Width = o.width
	config.Height = o.height
	config.EnableReflection = o.reflection
	config.EnableTextures = o.textures
	if o.workers > 0 {
		config.NumWorkers = o.workers
	}

	s := createScene(o.sceneID, config.AspectRatio())

	glog.Infof("Rendering %s at %dx%d (reflection=%v)", o.sceneID, o.width, o.height, o.reflection)
	img, stats, err := renderer.NewRaytracer(s, config, renderer.NewGlogLogger()).Render(ctx)
	if err != nil {
		return fmt.Errorf("while rendering %s: %w", o.sceneID, err)
	}
	glog.Infof("Rendered %v (%.0f pixels/s)", stats, stats.PixelsPerSecond())

	if err := renderer.Encode(out, img, format); err != nil {
		return fmt.Errorf("while writing image: %w", err)
	}
	return nil
}

func main() {
	glog.CopyStandardLogTo("INFO")
	defer glog.Flush()

	cmdRoot.AddCommand(cmdScenes)

	if err := cmdRoot.Execute(); err != nil {
		glog.Exitf("%v", err)
	}
}
