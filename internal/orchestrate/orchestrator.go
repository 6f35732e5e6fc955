// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package orchestrate sequences interpreter resolution, optional
// capability validation, and entry-point invocation into one conversion
// operation per input file. Each request is independent and self-contained:
// simultaneous conversions share no mutable state and each completion
// channel receives only its own outcome.
// See docs/ARCHITECTURE § Components, § Concurrency.
package orchestrate

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/oft2eml/internal/engine"
	"github.com/pdiddy/oft2eml/internal/runtimeenv"
	"github.com/pdiddy/oft2eml/pkg/types"
)

// outputExt is the extension substituted for the input's when deriving
// the output path.
const outputExt = ".eml"

const defaultJobs = 4

// EngineFactory builds an Engine for a resolved interpreter. Injected so
// tests can substitute stub engines without spawning processes.
type EngineFactory func(runtimePath string) engine.Engine

// Orchestrator drives the resolve → invoke → verify sequence. It holds
// no per-request state; every Convert call builds and discards its own
// Request/Outcome pair.
type Orchestrator struct {
	resolver          *runtimeenv.Resolver
	newEngine         EngineFactory
	requireCapability bool
	outDir            string
}

// New builds an Orchestrator. cfg.OutDir redirects outputs; empty keeps
// them next to each input. When cfg.Resolver.RequireCapability is set,
// the capability probe gates the resolved interpreter instead of
// existence alone.
func New(resolver *runtimeenv.Resolver, newEngine EngineFactory, cfg types.ConvertConfig) *Orchestrator {
	return &Orchestrator{
		resolver:          resolver,
		newEngine:         newEngine,
		requireCapability: cfg.Resolver.RequireCapability,
		outDir:            cfg.OutDir,
	}
}

// OutputPath derives the EML path from an input path: same stem, .eml
// extension. An existing file at the derived path is overwritten, never
// uniquified.
func (o *Orchestrator) OutputPath(input string) string {
	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	dir := o.outDir
	if dir == "" {
		dir = filepath.Dir(input)
	}
	return filepath.Join(dir, stem+outputExt)
}

// Convert runs one conversion to its terminal outcome. No interpreter is
// spawned when the input kind is unsupported or no candidate resolves.
func (o *Orchestrator) Convert(input string) types.Outcome {
	req := types.NewRequest(input, o.OutputPath(input))

	if Classify(input) == KindUnknown {
		return types.Failure(req, types.InputNotFound,
			fmt.Sprintf("unsupported file type %q: expected .oft or .msg", filepath.Base(input)))
	}

	cand, ok := o.resolver.Resolve()
	if !ok {
		return types.Failure(req, types.RuntimeNotFound,
			"no Python interpreter found; run `oft2eml doctor` to see the probed locations")
	}
	if o.requireCapability {
		if err := o.resolver.Validate(cand.Path); err != nil {
			return types.Failure(req, types.RuntimeNotFound, err.Error())
		}
	}

	return o.newEngine(cand.Path).Convert(req)
}

// Submit runs the conversion on its own goroutine and delivers the single
// terminal outcome on the returned channel. This is the fire-and-forget
// path the drop-target UI uses: the caller's thread stays free and
// completion is marshaled back through the channel.
func (o *Orchestrator) Submit(input string) <-chan types.Outcome {
	done := make(chan types.Outcome, 1)
	go func() {
		done <- o.Convert(input)
		close(done)
	}()
	return done
}

// ConvertAll converts the inputs with at most jobs running concurrently
// and returns the outcomes in input order. Inputs not yet started when
// ctx is cancelled fail with the context error; running conversions are
// not interrupted.
func (o *Orchestrator) ConvertAll(ctx context.Context, inputs []string, jobs int) []types.Outcome {
	if jobs <= 0 {
		jobs = defaultJobs
	}

	outcomes := make([]types.Outcome, len(inputs))
	var g errgroup.Group
	g.SetLimit(jobs)
	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				req := types.NewRequest(input, o.OutputPath(input))
				outcomes[i] = types.Failure(req, types.ConversionFailed, err.Error())
				return nil
			}
			outcomes[i] = o.Convert(input)
			return nil
		})
	}
	_ = g.Wait()
	return outcomes
}

// BatchResult summarizes a batch conversion run.
type BatchResult struct {
	Converted int
	Failed    int
}

// Total returns the number of inputs processed.
func (r BatchResult) Total() int { return r.Converted + r.Failed }

// HasFailures reports whether any input failed.
func (r BatchResult) HasFailures() bool { return r.Failed > 0 }

// Run converts the inputs, printing a status line per file to w and the
// full diagnostic for each failure, then a summary.
func (o *Orchestrator) Run(ctx context.Context, inputs []string, jobs int, w io.Writer) BatchResult {
	var res BatchResult
	for _, out := range o.ConvertAll(ctx, inputs, jobs) {
		if out.OK() {
			fmt.Fprintf(w, "converted: %s (%d bytes)\n", out.OutputPath, out.Size)
			res.Converted++
			continue
		}
		fmt.Fprintf(w, "failed:  %s (%s) [request %s]\n", filepath.Base(out.Request.Input), out.Kind, out.Request.ID)
		for _, line := range strings.Split(strings.TrimRight(out.Diagnostic, "\n"), "\n") {
			fmt.Fprintf(w, "  %s\n", line)
		}
		res.Failed++
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d failed (total: %d)\n",
		res.Converted, res.Failed, res.Total())
	return res
}
