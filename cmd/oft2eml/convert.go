package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/oft2eml/internal/engine"
	"github.com/pdiddy/oft2eml/internal/orchestrate"
	"github.com/pdiddy/oft2eml/internal/runtimeenv"
	"github.com/pdiddy/oft2eml/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [files...]",
	Short: "Convert OFT/MSG files to EML",
	Long: `Convert translates each input file into an RFC 5322 EML file with the
same stem and the .eml extension, next to the input unless --out-dir is
given. An existing output file is overwritten. Files are converted
concurrently up to --jobs; each file's outcome is independent.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := convertConfig(cmd)

		resolver, err := newResolver(cfg.Resolver)
		if err != nil {
			return err
		}

		orch := orchestrate.New(resolver, func(runtimePath string) engine.Engine {
			return engine.NewSubprocess(runtimePath, cfg.Engine.EntryPoint)
		}, cfg)

		res := orch.Run(cmd.Context(), args, cfg.Jobs, os.Stdout)
		if res.HasFailures() {
			return fmt.Errorf("%d of %d conversions failed", res.Failed, res.Total())
		}
		return nil
	},
}

func init() {
	convertCmd.Flags().String("out-dir", "", "directory for converted files (default: next to each input)")
	convertCmd.Flags().String("runtime", "", "explicit interpreter path, skipping candidate probing")
	convertCmd.Flags().String("candidates-file", "", "YAML file listing interpreter candidates")
	convertCmd.Flags().String("entry-point", "", "conversion entry-point script (default: scripts/oft_to_eml.py next to the executable)")
	convertCmd.Flags().Bool("require-capability", false, "probe the interpreter for extract-msg before converting")
	convertCmd.Flags().Int("jobs", 4, "maximum concurrent conversions")

	rootCmd.AddCommand(convertCmd)
}

// convertConfig assembles the full conversion configuration for one run.
func convertConfig(cmd *cobra.Command) types.ConvertConfig {
	cfg := types.ConvertConfig{
		Resolver: resolverConfig(cmd),
		Engine: types.EngineConfig{
			EntryPoint: stringSetting(cmd, "entry-point", "engine.entry_point"),
		},
		OutDir: stringSetting(cmd, "out-dir", "out_dir"),
		Jobs:   intSetting(cmd, "jobs", "jobs"),
	}
	if cfg.Engine.EntryPoint == "" {
		cfg.Engine.EntryPoint = defaultEntryPoint()
	}
	return cfg
}

// newResolver builds the interpreter resolver from config: an explicit
// runtime pin wins, then a candidates file, then configured paths, then
// the built-in defaults.
func newResolver(cfg types.ResolverConfig) (*runtimeenv.Resolver, error) {
	switch {
	case cfg.Runtime != "":
		return runtimeenv.New(runtimeenv.FromPaths([]string{cfg.Runtime}, "flag")), nil
	case cfg.CandidatesFile != "":
		cands, err := runtimeenv.ReadCandidatesFile(cfg.CandidatesFile)
		if err != nil {
			return nil, err
		}
		return runtimeenv.New(cands), nil
	case len(cfg.Candidates) > 0:
		return runtimeenv.New(runtimeenv.FromPaths(cfg.Candidates, "config")), nil
	default:
		return runtimeenv.New(runtimeenv.DefaultCandidates(exeDir())), nil
	}
}
