package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/oft2eml/internal/runtimeenv"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose interpreter discovery",
	Long: `Doctor prints every interpreter candidate in probe order, whether it
exists on disk, and which one would be selected. With --probe it also runs
the capability check: launching the selected interpreter to import the
extract-msg parsing library.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver, err := newResolver(resolverConfig(cmd))
		if err != nil {
			return err
		}
		probe, _ := cmd.Flags().GetBool("probe")
		return runDoctor(resolver, probe, os.Stdout)
	},
}

func init() {
	doctorCmd.Flags().String("runtime", "", "explicit interpreter path, skipping candidate probing")
	doctorCmd.Flags().String("candidates-file", "", "YAML file listing interpreter candidates")
	doctorCmd.Flags().Bool("require-capability", false, "unused by doctor; accepted for config parity")
	doctorCmd.Flags().Bool("probe", false, "run the extract-msg capability probe on the selected interpreter")

	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(resolver *runtimeenv.Resolver, probe bool, w io.Writer) error {
	for i, c := range resolver.Candidates() {
		status := "missing"
		if runtimeenv.Exists(c.Path) {
			status = "exists"
		}
		fmt.Fprintf(w, "%3d. %-50s (%s) %s\n", i+1, c.Path, c.Source, status)
	}

	cand, ok := resolver.Resolve()
	if !ok {
		fmt.Fprintln(w, "\nselected: none — no candidate exists")
		return fmt.Errorf("no Python interpreter found")
	}
	fmt.Fprintf(w, "\nselected: %s\n", cand.Path)

	if probe {
		if err := resolver.Validate(cand.Path); err != nil {
			fmt.Fprintf(w, "capability: FAILED — %v\n", err)
			return fmt.Errorf("capability probe failed")
		}
		fmt.Fprintln(w, "capability: ok (extract-msg importable)")
	}
	return nil
}
