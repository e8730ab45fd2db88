package commands

import (
	"github.com/slab-sh/slab/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [resources...]",
		Short: "Build the application's functions and layers",
		Long: `Build every function and layer declared in the application template,
or only the named resources when any are given. Resources sharing the
same source and runtime are built once and the artifact is reused.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			templatePath, _ := cmd.Flags().GetString("template")
			baseDir, _ := cmd.Flags().GetString("base-dir")
			buildDir, _ := cmd.Flags().GetString("build-dir")
			cacheDir, _ := cmd.Flags().GetString("cache-dir")
			cached, _ := cmd.Flags().GetBool("cached")
			parallel, _ := cmd.Flags().GetBool("parallel")
			workers, _ := cmd.Flags().GetInt("workers")
			progress, _ := cmd.Flags().GetBool("progress")

			_, err := c.app.Build(cmd.Context(), app.BuildOptions{
				TemplatePath: templatePath,
				BaseDir:      baseDir,
				BuildDir:     buildDir,
				CacheDir:     cacheDir,
				Cached:       cached,
				Parallel:     parallel,
				Workers:      workers,
				Progress:     progress,
				Resources:    args,
			})
			return err
		},
	}
	cmd.Flags().StringP("template", "t", "slab.yaml", "Path to the application template")
	cmd.Flags().String("base-dir", "", "Directory relative code URIs resolve against (defaults to the template's directory)")
	cmd.Flags().StringP("build-dir", "b", ".slab/build", "Directory receiving built artifacts")
	cmd.Flags().String("cache-dir", "", "Directory holding cached artifacts (defaults to a sibling of the build dir)")
	cmd.Flags().BoolP("cached", "c", false, "Reuse cached artifacts for unchanged sources")
	cmd.Flags().BoolP("parallel", "p", false, "Build independent definitions concurrently")
	cmd.Flags().Int("workers", 0, "Bound the parallel worker pool (0 means one per CPU)")
	cmd.Flags().Bool("progress", false, "Record live build progress for rendering")
	return cmd
}
