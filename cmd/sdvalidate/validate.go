package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/jonathan/structured-data-validator/internal/config"
	"github.com/jonathan/structured-data-validator/internal/crawling"
	"github.com/jonathan/structured-data-validator/internal/document"
	"github.com/jonathan/structured-data-validator/internal/observability"
	"github.com/jonathan/structured-data-validator/internal/registry"
	"github.com/jonathan/structured-data-validator/internal/resolver"
	"github.com/jonathan/structured-data-validator/internal/schemas"
	"github.com/jonathan/structured-data-validator/internal/types"
	"github.com/jonathan/structured-data-validator/internal/validation"
)

const stdinName = "-"

var validateCmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate JSON-LD documents",
	Long: "Validates JSON-LD files (or stdin when no file is given). With --html, every " +
		`<script type="application/ld+json"> block of each HTML file is validated separately. ` +
		"Exits with status 1 when any error is found.",
	RunE: runValidate,
}

var (
	validateHTML             bool
	validateFormat           string
	validateCheckHTTP        bool
	validateCheckRecommended bool
	validateGraphRecommended bool
	validateFallbackUnknown  bool
	validateDocLinks         string
	validateCrossCheck       bool
	validateConcurrency      int
)

func init() {
	validateCmd.Flags().BoolVar(&validateHTML, "html", false, "Treat inputs as HTML and validate every ld+json block")
	validateCmd.Flags().StringVarP(&validateFormat, "format", "f", "text", "Output format: text or json")
	validateCmd.Flags().BoolVar(&validateCheckHTTP, "check-http", true, "Report http:// URLs as errors")
	validateCmd.Flags().BoolVar(&validateCheckRecommended, "check-recommended", true, "Warn about missing recommended properties")
	validateCmd.Flags().BoolVar(&validateGraphRecommended, "graph-recommended", false, "Also check recommended properties on @graph members")
	validateCmd.Flags().BoolVar(&validateFallbackUnknown, "fallback-unknown", false, "Check unrecognized @type values against identity only")
	validateCmd.Flags().StringVar(&validateDocLinks, "doc-links", "html", "Documentation links in warnings: html, text or none")
	validateCmd.Flags().BoolVar(&validateCrossCheck, "cross-check", false, "Also run the exported JSON Schema and report disagreements on stderr")
	validateCmd.Flags().IntVar(&validateConcurrency, "concurrency", 0, "Maximum blocks validated in parallel (0 = unbounded)")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := validateConfig(cmd)
	if err != nil {
		return err
	}

	job := &validateJob{
		html:       validateHTML,
		format:     cfg.Format,
		crossCheck: validateCrossCheck,
		opts:       cfg.ToOptions(),
		logger:     slog.Default(),
	}

	summary, err := job.run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args)
	if err != nil {
		return err
	}
	if summary.Errors > 0 {
		return fmt.Errorf("validation failed: %d error(s) in %d of %d block(s)", summary.Errors, summary.Invalid, summary.Blocks)
	}
	return nil
}

// validateConfig applies explicitly set flags over the loaded config.
func validateConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := currentConfig()
	flags := cmd.Flags()

	if flags.Changed("format") {
		cfg.Format = validateFormat
	}
	if flags.Changed("check-http") {
		cfg.CheckHTTPURLs = config.Bool(validateCheckHTTP)
	}
	if flags.Changed("check-recommended") {
		cfg.CheckRecommended = config.Bool(validateCheckRecommended)
	}
	if flags.Changed("graph-recommended") {
		cfg.GraphRecommended = config.Bool(validateGraphRecommended)
	}
	if flags.Changed("fallback-unknown") {
		cfg.FallbackUnknownTypes = config.Bool(validateFallbackUnknown)
	}
	if flags.Changed("doc-links") {
		cfg.DocLinks = validateDocLinks
	}
	if flags.Changed("concurrency") {
		cfg.Concurrency = validateConcurrency
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// validateJob validates a set of inputs and reports on them.
type validateJob struct {
	html       bool
	format     string
	crossCheck bool
	opts       validation.Options
	logger     *slog.Logger
}

type source struct {
	name    string
	content string
}

// readSources reads every named file; "-" or no names at all means stdin.
func readSources(in io.Reader, names []string) ([]source, error) {
	if len(names) == 0 {
		names = []string{stdinName}
	}

	sources := make([]source, 0, len(names))
	for _, name := range names {
		var (
			data []byte
			err  error
		)
		if name == stdinName {
			data, err = io.ReadAll(in)
		} else {
			data, err = os.ReadFile(name)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		sources = append(sources, source{name: name, content: string(data)})
	}
	return sources, nil
}

func (j *validateJob) run(ctx context.Context, in io.Reader, out, errOut io.Writer, args []string) (observability.Summary, error) {
	summary := observability.Summary{}
	if ctx == nil {
		ctx = context.Background()
	}

	sources, err := readSources(in, args)
	if err != nil {
		return summary, err
	}
	summary.Sources = len(sources)

	v := validation.New(j.opts)
	printer := observability.NewPrinter(out)

	var checks *crossChecker
	if j.crossCheck {
		checks = newCrossChecker(j.opts)
	}
	errPrinter := observability.NewPrinter(errOut)

	for _, src := range sources {
		if !j.html {
			res := v.Validate(src.content)
			summary.Add(res)
			if err := j.emit(out, printer, src.name, res, nil); err != nil {
				return summary, err
			}
			if checks != nil {
				errPrinter.PrintConformance(src.name, checks.check(src.content, j.logger))
			}
			continue
		}

		blocks, err := crawling.ExtractJSONLD(src.content)
		if err != nil {
			return summary, fmt.Errorf("%s: %w", src.name, err)
		}
		contents := crawling.Contents(blocks)
		results, err := v.ValidateBlocks(ctx, contents)
		if err != nil {
			return summary, fmt.Errorf("%s: %w", src.name, err)
		}
		for _, r := range results {
			summary.Add(r.Result)
		}
		if err := j.emit(out, printer, src.name, nil, results); err != nil {
			return summary, err
		}
		if checks != nil {
			for i, c := range contents {
				errPrinter.PrintConformance(fmt.Sprintf("%s#%d", src.name, i), checks.check(c, j.logger))
			}
		}
	}

	if j.format != "json" {
		printer.PrintSummary(summary)
	}
	return summary, nil
}

// batchOutput is the JSON shape emitted for one HTML input.
type batchOutput struct {
	Blocks []types.BlockResult `json:"blocks"`
}

// emit writes one source's results. JSON output is one document per line and is
// checked against the published result schemas; a mismatch is logged, never fatal.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (j *validateJob) emit(out io.Writer, printer *observability.Printer, name string, res *types.ValidationResult, blocks []types.BlockResult) error {
	if j.format != "json" {
		if res != nil {
			printer.PrintResult(name, res)
		} else {
			printer.PrintBlocks(name, blocks)
		}
		return nil
	}

	var (
		payload    any = res
		schemaPath     = schemas.ResultSchemaPath
	)
	if res == nil {
		payload = batchOutput{Blocks: blocks}
		schemaPath = schemas.BatchResultSchemaPath
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	fmt.Fprintf(out, "%s\n", data)

	j.checkOutput(schemaPath, data)
	return nil
}

func (j *validateJob) checkOutput(schemaPath string, data []byte) {
	resolved := schemas.ResolveSchemaPath(schemaPath)
	if resolved == "" {
		j.logger.Debug("output schema not found, skipping check", "schema", schemaPath)
		return
	}
	if err := schemas.ValidateJSONBytes(resolved, data); err != nil {
		j.logger.Warn("output does not match published schema", "schema", schemaPath, "error", err)
	}
}

// crossChecker runs each entity through the exported JSON Schema of its resolved type.
type crossChecker struct {
	checker  *schemas.Checker
	resolver *resolver.Resolver
	registry *registry.Registry
	fallback bool
}

func newCrossChecker(opts validation.Options) *crossChecker {
	reg := opts.Registry
	if reg == nil {
		reg = registry.Default()
	}
	return &crossChecker{
		checker:  schemas.NewChecker(opts.Cache),
		resolver: resolver.New(reg, opts.Logger),
		registry: reg,
		fallback: opts.UseFallbackForUnknownTypes,
	}
}

// check returns one conformance record per entity. Unparseable text yields nothing;
// the syntax error is already part of the validation result.
func (c *crossChecker) check(text string, logger *slog.Logger) []*schemas.Conformance {
	doc, err := document.Parse(text)
	if err != nil {
		return nil
	}

	var out []*schemas.Conformance
	for _, entity := range entities(doc) {
		typ, _ := entity.Get("@type")
		resolution := c.resolver.Resolve(typ)
		def := resolution.Definition
		if !resolution.Matched && c.fallback {
			def = c.registry.Fallback()
		}

		conf, err := c.checker.Check(def, entity)
		if err != nil {
			logger.Warn("cross-check failed", "type", def.Name, "error", err)
			continue
		}
		out = append(out, conf)
	}
	return out
}

// entities lists the objects validated as independent entities: the elements of a
// top-level array, the members of an @graph array, or the document itself.
func entities(doc *document.Value) []*document.Value {
	var candidates []*document.Value
	switch doc.Kind() {
	case document.KindArray:
		candidates = doc.Items()
	case document.KindObject:
		if graph, ok := doc.Get("@graph"); ok && graph.Kind() == document.KindArray {
			candidates = graph.Items()
		} else {
			candidates = []*document.Value{doc}
		}
	}

	out := make([]*document.Value, 0, len(candidates))
	for _, c := range candidates {
		if c.Kind() == document.KindObject {
			out = append(out, c)
		}
	}
	return out
}
