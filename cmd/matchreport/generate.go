// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"matchperf/benchagg"
	"matchperf/benchchart"
	"matchperf/benchcmp"
	"matchperf/benchsel"
	"matchperf/benchtab"
	"matchperf/internal/config"
)

// Chart algorithm sets. These name which algorithms each comparison is
// about; they are presentation scope, not analysis policy.
var (
	literalAlgos     = []string{"KMP", "Boyer-Moore"}
	structureAlgos   = []string{"NFA", "DFA", "min-DFA"}
	automataAlgos    = []string{"NFA", "NFA+DFA-cache", "DFA", "min-DFA"}
	alternationAlgos = []string{"Aho-Corasick", "NFA", "NFA+DFA-cache", "DFA", "min-DFA"}
	prefilterBases   = []string{"NFA", "DFA"}
)

func newGenerateCmd() *cobra.Command {
	var (
		cfgPath string
		outDir  string
		pattern string
	)
	cmd := &cobra.Command{
		Use:   "generate [table.csv]",
		Short: "derive all comparison series and render the chart set",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if outDir != "" {
				cfg.OutDir = outDir
			}
			if pattern != "" {
				cfg.PrefilterPatterns = []string{pattern}
			}
			return generate(tableArg(args), cfg)
		},
	}
	cmd.Flags().StringVar(&cfgPath, "config", "", "config file (JSON or YAML)")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (overrides config)")
	cmd.Flags().StringVar(&pattern, "pattern", "", "representative pattern for the prefilter chart")
	return cmd
}

// generate runs the batch pipeline: load once, derive every artifact,
// render, exit. Load problems are fatal; an empty selection only skips
// its own chart so the rest of the report still renders.
func generate(path string, cfg *config.Config) error {
	tbl, err := benchtab.Load(path)
	if err != nil {
		return err
	}
	log.Info().Str("table", path).Int("records", tbl.Len()).Msg("loaded measurements")

	style, err := cfg.Style()
	if err != nil {
		return err
	}
	rep := &benchchart.Report{Style: style, Dir: cfg.OutDir}

	render := func(name string, err error) {
		if err != nil {
			log.Error().Err(err).Str("chart", name).Msg("chart not rendered")
			return
		}
		log.Info().Str("chart", name).Str("dir", cfg.OutDir).Msg("chart written")
	}

	// Literal patterns: KMP vs Boyer-Moore.
	lit := benchsel.Select(tbl,
		benchsel.AlgorithmIn(literalAlgos...),
		benchsel.Class(benchtab.ClassLiteral),
	)
	if warnEmpty(lit, "literal comparison") {
		byLen := algSeries(lit, literalAlgos, func(sub *benchtab.Table) benchagg.Series {
			return benchagg.Mean(sub, benchagg.ByPatternLen, benchagg.MatchTime)
		})
		byPattern := algSeries(lit, literalAlgos, func(sub *benchtab.Table) benchagg.Series {
			return benchagg.MeanBy(sub, benchagg.ByPattern, benchagg.MatchTime, cfg.LiteralPatterns)
		})
		render(benchchart.LiteralPNG, rep.Literal(byLen, byPattern))
	}

	// Structure size: NFA vs DFA vs min-DFA.
	structTbl := benchsel.Select(tbl,
		benchsel.AlgorithmIn(structureAlgos...),
		benchsel.HasStructure(),
		benchsel.Not(benchsel.Class(benchtab.ClassPrefilter)),
	)
	if warnEmpty(structTbl, "structure size") {
		nodes := algSeries(structTbl, structureAlgos, func(sub *benchtab.Table) benchagg.Series {
			return benchagg.MeanBy(sub, benchagg.ByScenario, benchagg.StructureNodes, cfg.StructureScenarios)
		})
		sizes := algSeries(structTbl, structureAlgos, func(sub *benchtab.Table) benchagg.Series {
			return benchagg.MeanBy(sub, benchagg.ByScenario, benchagg.StructureSize, cfg.StructureScenarios)
		})
		render(benchchart.StructurePNG, rep.StructureSize(nodes, sizes))
	}

	// Prefilter impact per base algorithm.
	regex := benchsel.Select(tbl, benchsel.Class(benchtab.ClassRegex))
	var impacts []benchchart.PrefilterSeries
	for _, base := range prefilterBases {
		p := pickPrefilterPattern(regex, base, cfg.PrefilterPatterns)
		if p == "" {
			log.Warn().Str("algorithm", base).Msg("no prefiltered measurements, skipping impact row")
			continue
		}
		pts := benchcmp.Prefilter(regex, base, p)
		if len(pts) == 0 {
			log.Warn().Str("algorithm", base).Str("pattern", p).Msg("empty prefilter pairing")
			continue
		}
		impacts = append(impacts, benchchart.PrefilterSeries{Algorithm: base, Pattern: p, Points: pts})
	}
	if len(impacts) > 0 {
		render(benchchart.PrefilterPNG, rep.PrefilterImpact(impacts))
	} else {
		log.Warn().Msg("empty selection for prefilter impact, chart skipped")
	}

	// Automata trade-off.
	automata := benchsel.Select(tbl,
		benchsel.AlgorithmIn(automataAlgos...),
		benchsel.Not(benchsel.Class(benchtab.ClassPrefilter)),
	)
	if warnEmpty(automata, "automata comparison") {
		var scatter []benchchart.XYSeries
		for _, algo := range automataAlgos {
			sub := benchsel.Select(automata, benchsel.AlgorithmIn(algo))
			s := benchchart.XYSeries{Algorithm: algo}
			for _, r := range sub.Records() {
				s.Points = append(s.Points, benchchart.XY{X: r.BuildTimeMS, Y: r.MatchTimeMS})
			}
			scatter = append(scatter, s)
		}
		totals := algSeries(automata, automataAlgos, func(sub *benchtab.Table) benchagg.Series {
			return benchagg.MeanBy(sub, benchagg.ByScenario, benchagg.TotalTime, cfg.ComplexityScenarios)
		})
		render(benchchart.AutomataPNG, rep.AutomataComparison(scatter, totals))
	}

	// Aho-Corasick on alternations.
	alts := benchsel.Select(tbl,
		benchsel.Class(benchtab.ClassAlternation),
		benchsel.Not(benchsel.Class(benchtab.ClassPrefilter)),
		benchsel.ExcludePrefiltered(),
	)
	if warnEmpty(alts, "alternation comparison") {
		amorts := benchcmp.Amortize(alts, alternationAlgos)
		totals := benchagg.MeanBy(alts, benchagg.ByAlgorithm, benchagg.TotalTime, alternationAlgos)
		render(benchchart.AlternationPNG, rep.Alternation(amorts, totals))
	}

	// Decision matrix over the full table.
	decisions := benchcmp.DecisionMatrix(tbl)
	dist := benchcmp.Distribution(decisions)
	render(benchchart.DecisionPNG, rep.DecisionPie(dist))

	err = rep.WriteIndex(benchchart.IndexData{
		Title:  "Pattern-matching benchmark report",
		Source: path,
		Charts: []benchchart.IndexChart{
			{File: benchchart.LiteralPNG, Caption: "KMP vs Boyer-Moore on literal patterns"},
			{File: benchchart.StructurePNG, Caption: "Automaton structure size: NFA vs DFA vs min-DFA"},
			{File: benchchart.PrefilterPNG, Caption: "Prefiltering gain/loss by text size"},
			{File: benchchart.AutomataPNG, Caption: "Automata construction/matching trade-off"},
			{File: benchchart.AlternationPNG, Caption: "Aho-Corasick vs automata on alternations"},
			{File: benchchart.DecisionPNG, Caption: "Fastest algorithm by scenario"},
		},
		Decisions: decisions,
	})
	render(benchchart.IndexHTML, err)
	return nil
}

// algSeries derives one series per algorithm from its subset of t.
// Empty subsets still contribute a series (of undefined points) so the
// chart keeps its legend entry.
func algSeries(t *benchtab.Table, algos []string, derive func(*benchtab.Table) benchagg.Series) []benchchart.AlgSeries {
	out := make([]benchchart.AlgSeries, 0, len(algos))
	for _, algo := range algos {
		sub := benchsel.Select(t, benchsel.AlgorithmIn(algo))
		if sub.Len() == 0 {
			log.Warn().Str("algorithm", algo).Msg("empty selection, series will be zero-valued")
		}
		out = append(out, benchchart.AlgSeries{Algorithm: algo, Series: derive(sub)})
	}
	return out
}

// pickPrefilterPattern returns the first preferred pattern with
// prefiltered measurements for base, falling back to any pattern in t
// that has them.
func pickPrefilterPattern(t *benchtab.Table, base string, prefs []string) string {
	for _, p := range prefs {
		if benchcmp.HasPrefiltered(t, base, p) {
			return p
		}
	}
	for _, p := range t.Patterns() {
		if benchcmp.HasPrefiltered(t, base, p) {
			return p
		}
	}
	return ""
}

func warnEmpty(t *benchtab.Table, what string) bool {
	if t.Len() == 0 {
		log.Warn().Str("analysis", what).Msg("empty selection, chart skipped")
		return false
	}
	return true
}
