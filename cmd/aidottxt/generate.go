// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/aidottxt/internal/answers"
	"github.com/pdiddy/aidottxt/internal/ledger"
	"github.com/pdiddy/aidottxt/internal/normalize"
	"github.com/pdiddy/aidottxt/internal/output"
	"github.com/pdiddy/aidottxt/internal/prompt"
	"github.com/pdiddy/aidottxt/internal/render"
	"github.com/pdiddy/aidottxt/pkg/types"
)

func init() {
	f := rootCmd.Flags()
	f.String("out", ".", "output directory (site root)")
	f.Bool("ai-only", false, "generate only ai.txt")
	f.Bool("llms-only", false, "generate only .well-known/llms.txt")
	f.Bool("robots-only", false, "generate only robots.txt")
	f.Bool("humans-only", false, "generate only humans.txt")
	f.StringSlice("format", nil, "formats to generate: ai, llms, robots, humans (repeatable or comma-separated)")
	f.Bool("dry-run", false, "print documents instead of writing them")
	f.String("answers", "", "answers YAML file")
	f.String("save-answers", "", "write the final answers to this YAML file")
	f.Bool("no-input", false, "never prompt; use config, environment, and defaults")
	f.Bool("no-ledger", false, "do not record this run in the ledger (dry runs are never recorded)")
	f.Bool("accessible", false, "use plain line-based prompts suited to screen readers")

	_ = viper.BindPFlag("out_dir", f.Lookup("out"))
	_ = viper.BindPFlag("accessible", f.Lookup("accessible"))
}

// onlyFlags maps each --<format>-only flag to its format.
var onlyFlags = []struct {
	name   string
	format types.Format
}{
	{"llms-only", types.FormatLLMs},
	{"ai-only", types.FormatAI},
	{"robots-only", types.FormatRobots},
	{"humans-only", types.FormatHumans},
}

// formatsFromFlags returns the union of the formats whose -only flag is set
// and the formats named in names. The result is empty when neither selects
// anything.
func formatsFromFlags(set func(name string) bool, names []string) (types.FormatSet, error) {
	var fs []types.Format
	for _, o := range onlyFlags {
		if set(o.name) {
			fs = append(fs, o.format)
		}
	}
	for _, n := range names {
		f, err := types.ParseFormat(n)
		if err != nil {
			return nil, err
		}
		fs = append(fs, f)
	}
	return types.NewFormatSet(fs...), nil
}

// newAsker returns the terminal prompter configured by --accessible or
// AIDOTTXT_ACCESSIBLE.
func newAsker() prompt.HuhAsker {
	return prompt.HuhAsker{Accessible: viper.GetBool("accessible")}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	dryRun, _ := flags.GetBool("dry-run")
	noInput, _ := flags.GetBool("no-input")
	noLedger, _ := flags.GetBool("no-ledger")
	answersPath, _ := flags.GetString("answers")
	savePath, _ := flags.GetString("save-answers")
	names, _ := flags.GetStringSlice("format")

	formats, err := formatsFromFlags(func(name string) bool {
		v, _ := flags.GetBool(name)
		return v
	}, names)
	if err != nil {
		return err
	}

	gen := types.GeneratorConfig{
		OutDir:      viper.GetString("out_dir"),
		Formats:     formats,
		DryRun:      dryRun,
		Interactive: !noInput && prompt.ShouldPrompt(),
		AnswersPath: savePath,
	}
	if gen.OutDir == "" {
		gen.OutDir = "."
	}
	if !noLedger {
		gen.LedgerPath = ledgerPath()
	}

	a, err := resolveAnswers(answersPath)
	if err != nil {
		return err
	}

	if gen.Interactive {
		ask := newAsker()
		if len(gen.Formats) == 0 {
			if gen.Formats, err = prompt.ChooseFormats(ask); err != nil {
				return promptError(err)
			}
		}
		if a, err = prompt.Collect(ask, a, gen.Formats); err != nil {
			return promptError(err)
		}
	} else if len(gen.Formats) == 0 {
		gen.Formats = types.NewFormatSet(types.AllFormats...)
	}

	return generate(cmd.Context(), gen, a, cmd.OutOrStdout())
}

// resolveAnswers layers defaults, environment and config file values, and
// an optional answers file, in that order.
func resolveAnswers(answersPath string) (types.Answers, error) {
	a, err := answers.FromViper(viper.GetViper(), answers.Defaults(time.Now()))
	if err != nil {
		return a, fmt.Errorf("reading configuration: %w", err)
	}
	if answersPath == "" {
		return a, nil
	}
	logger.Info("loading answers", "path", answersPath)
	return answers.Load(answersPath, a)
}

func promptError(err error) error {
	if errors.Is(err, prompt.ErrAborted) {
		return errors.New("cancelled")
	}
	return fmt.Errorf("prompting: %w", err)
}

// generate renders the selected documents from a and writes or previews
// them, then records the run in the ledger.
func generate(ctx context.Context, gen types.GeneratorConfig, a types.Answers, w io.Writer) error {
	if len(gen.Formats) == 0 {
		return output.ErrNoFormats
	}

	if gen.AnswersPath != "" {
		if err := answers.Save(gen.AnswersPath, a); err != nil {
			return err
		}
		logger.Info("saved answers", "path", gen.AnswersPath)
	}

	started := time.Now()
	cfg := normalize.Normalize(a, gen.Formats)
	docs := render.Documents(cfg, gen.Formats)
	logger.Debug("rendered documents", "count", len(docs), "formats", gen.Formats.Strings())

	var (
		result output.WriteResult
		err    error
	)
	if gen.DryRun {
		result, err = output.Preview(docs, w)
	} else {
		result, err = output.WriteAll(ctx, docs, gen.OutDir)
		if err == nil {
			output.Report(result, w)
		}
	}
	if err != nil {
		return err
	}

	recordRun(ctx, gen, started, result)

	if result.HasFailures() {
		return fmt.Errorf("%d file(s) could not be written", result.Count(output.StatusFailed))
	}
	return nil
}

// recordRun appends the run to the ledger. Dry runs are not recorded, and
// ledger problems never fail a run.
func recordRun(ctx context.Context, gen types.GeneratorConfig, started time.Time, result output.WriteResult) {
	if gen.LedgerPath == "" || gen.DryRun {
		return
	}
	store, err := ledger.Open(gen.LedgerPath)
	if err != nil {
		logger.Warn("ledger unavailable", "path", gen.LedgerPath, "err", err)
		return
	}
	defer store.Close()

	run := ledger.NewRun(started, gen.OutDir, gen.DryRun, gen.Formats.Strings(), result)
	if err := store.Record(ctx, run); err != nil {
		logger.Warn("recording run", "err", err)
		return
	}
	logger.Debug("recorded run", "id", run.ID)
}

// ledgerPath returns the configured ledger location or the default one.
func ledgerPath() string {
	if p := viper.GetString("ledger_path"); p != "" {
		return p
	}
	p, err := ledger.DefaultPath()
	if err != nil {
		logger.Warn("ledger disabled", "err", err)
		return ""
	}
	return p
}
