// BatiCost CLI - Construction & Renovation Cost Estimation
//
// Usage:
//   baticost estimate --answers answers.json [options]
//   baticost quick --answers answers.json
//   baticost steps --answers answers.json
//   baticost analyze --text "Je veux construire une maison de 120m² à Marseille"
//   baticost serve --port 8080
package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"

	"bati-cost/api"
	"bati-cost/decision/estimation"
	"bati-cost/decision/flow"
	"bati-cost/decision/intake"
	"bati-cost/decision/record"
	"bati-cost/pkg/platform"
	"bati-cost/pkg/util"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	app := &cli.App{
		Name:    "baticost",
		Usage:   "Construction & Renovation Cost Estimation - Adaptive Questionnaire and Pricing Engine",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"BATICOST_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "rates",
				Usage:   "Path to a YAML rate book overriding the compiled-in rates",
				EnvVars: []string{"BATICOST_RATES"},
			},
		},

		Commands: []*cli.Command{
			estimateCommand(),
			quickCommand(),
			stepsCommand(),
			analyzeCommand(),
			suggestCommand(),
			serveCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// ESTIMATE COMMAND
// =============================================================================

func estimateCommand() *cli.Command {
	return &cli.Command{
		Name:  "estimate",
		Usage: "Produce the itemized multi-trade estimate for an answer file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "answers",
				Aliases:  []string{"a"},
				Usage:    "Path to the answer record JSON",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "table",
				Usage:   "Output format (table, json)",
			},
			&cli.BoolFlag{
				Name:  "with-land",
				Usage: "Include the land purchase addendum when a land price is answered",
			},
		},
		Action: runEstimate,
	}
}

func runEstimate(c *cli.Context) error {
	rec, err := loadRecord(c.String("answers"))
	if err != nil {
		return err
	}
	engine, err := buildEngine(c)
	if err != nil {
		return err
	}

	var result estimation.EstimationResult
	if c.Bool("with-land") {
		result = engine.ComputeWithLand(rec)
	} else {
		result = engine.Compute(rec)
	}

	switch c.String("format") {
	case "json":
		return outputJSON(result)
	default:
		return outputTable(result)
	}
}

// =============================================================================
// QUICK COMMAND
// =============================================================================

func quickCommand() *cli.Command {
	return &cli.Command{
		Name:  "quick",
		Usage: "Produce the single-figure quick estimate for an answer file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "answers",
				Aliases:  []string{"a"},
				Usage:    "Path to the answer record JSON",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			rec, err := loadRecord(c.String("answers"))
			if err != nil {
				return err
			}
			engine, err := buildEngine(c)
			if err != nil {
				return err
			}
			total := engine.ComputeQuick(rec)
			fmt.Printf("Estimation rapide : %s\n", util.FormatEUR(decimal.NewFromFloat(total)))
			return nil
		},
	}
}

// =============================================================================
// STEPS COMMAND
// =============================================================================

func stepsCommand() *cli.Command {
	return &cli.Command{
		Name:  "steps",
		Usage: "Show the questionnaire steps visible for an answer file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "answers",
				Aliases: []string{"a"},
				Usage:   "Path to the answer record JSON (empty record if omitted)",
			},
		},
		Action: func(c *cli.Context) error {
			rec := &record.AnswerRecord{}
			if path := c.String("answers"); path != "" {
				var err error
				if rec, err = loadRecord(path); err != nil {
					return err
				}
			}
			for i, step := range flow.ResolveVisibleSteps(rec) {
				v := flow.ValidateStep(i, rec)
				mark := "✓"
				if !v.IsValid {
					mark = "·"
				}
				fmt.Printf("%3d %s %s\n", i, mark, step.Title)
			}
			return nil
		},
	}
}

// =============================================================================
// ANALYZE & SUGGEST COMMANDS
// =============================================================================

func analyzeCommand() *cli.Command {
	return &cli.Command{
		Name:  "analyze",
		Usage: "Analyze a free-text input into an intent and record patch",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "text",
				Aliases:  []string{"t"},
				Usage:    "Free-text input to analyze",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			analysis := intake.AnalyzeInput(c.String("text"))
			return outputJSON(struct {
				intake.Analysis
				Patch *record.AnswerRecord `json:"patch"`
			}{Analysis: analysis, Patch: analysis.Entities.Patch()})
		},
	}
}

func suggestCommand() *cli.Command {
	return &cli.Command{
		Name:  "suggest",
		Usage: "Suggest what to answer next for an answer file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "answers",
				Aliases: []string{"a"},
				Usage:   "Path to the answer record JSON (empty record if omitted)",
			},
		},
		Action: func(c *cli.Context) error {
			rec := &record.AnswerRecord{}
			if path := c.String("answers"); path != "" {
				var err error
				if rec, err = loadRecord(path); err != nil {
					return err
				}
			}
			for _, s := range intake.GenerateSuggestions(rec) {
				fmt.Println("•", s)
			}
			return nil
		},
	}
}

// =============================================================================
// SERVE COMMAND
// =============================================================================

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the estimation HTTP API",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Value:   platform.GetEnvInt("PORT", 8080),
				Usage:   "HTTP listen port",
				EnvVars: []string{"BATICOST_PORT"},
			},
		},
		Action: func(c *cli.Context) error {
			log := platform.InitLogger(c.String("log-level"))
			rates, err := loadRates(c)
			if err != nil {
				return err
			}
			srv := api.NewServer(api.Config{
				Host:  platform.GetEnv("BATICOST_HOST", ""),
				Port:  c.Int("port"),
				Rates: rates,
			}, log)
			return srv.ListenAndServe()
		},
	}
}

// =============================================================================
// OUTPUT FORMATTERS
// =============================================================================

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func outputTable(result estimation.EstimationResult) error {
	fmt.Println()
	fmt.Println("╔══════════════════════════════════════════════════════════════╗")
	fmt.Println("║                  🏠 ESTIMATION DÉTAILLÉE                      ║")
	fmt.Println("╠══════════════════════════════════════════════════════════════╣")
	for _, trade := range result.Trades {
		fmt.Printf("║  %-36s %21s  ║\n", trade.Name, util.FormatEUR(trade.AmountHT))
	}
	fmt.Println("╠══════════════════════════════════════════════════════════════╣")
	fmt.Printf("║  %-36s %21s  ║\n", "Total travaux HT", util.FormatEUR(result.TotalHT))
	fmt.Printf("║  %-36s %21s  ║\n", "TVA", util.FormatEUR(result.VAT))
	fmt.Printf("║  %-36s %21s  ║\n", "Total travaux TTC", util.FormatEUR(result.TotalTTC))
	fmt.Printf("║  %-36s %21s  ║\n", "Honoraires HT", util.FormatEUR(result.FeesHT))
	fmt.Printf("║  %-36s %21s  ║\n", "Taxe d'aménagement", util.FormatEUR(result.DevelopmentTax))
	fmt.Printf("║  %-36s %21s  ║\n", "Étude géotechnique", util.FormatEUR(result.GeotechnicalStudy))
	fmt.Printf("║  %-36s %21s  ║\n", "Étude thermique", util.FormatEUR(result.ThermalStudy))
	fmt.Printf("║  %-36s %21s  ║\n", "Garantie décennale", util.FormatEUR(result.DecennialGuarantee))
	fmt.Println("╠══════════════════════════════════════════════════════════════╣")
	fmt.Printf("║  %-36s %21s  ║\n", "COÛT GLOBAL HT", util.FormatEUR(result.GlobalCostHT))
	fmt.Printf("║  %-36s %21s  ║\n", "COÛT GLOBAL TTC", util.FormatEUR(result.GlobalCostTTC))
	if result.GlobalCostWithLand != nil {
		fmt.Printf("║  %-36s %21s  ║\n", "Terrain", util.FormatEUR(*result.LandPrice))
		fmt.Printf("║  %-36s %21s  ║\n", "Frais de notaire", util.FormatEUR(*result.NotaryFee))
		fmt.Printf("║  %-36s %21s  ║\n", "COÛT GLOBAL AVEC TERRAIN", util.FormatEUR(*result.GlobalCostWithLand))
	}
	fmt.Println("╚══════════════════════════════════════════════════════════════╝")
	for _, a := range result.Assumptions {
		fmt.Fprintf(os.Stderr, "⚠️  %s\n", a)
	}
	return nil
}

// =============================================================================
// HELPERS
// =============================================================================

func loadRecord(path string) (*record.AnswerRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read answers: %w", err)
	}
	var rec record.AnswerRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to parse answers: %w", err)
	}
	return &rec, nil
}

func loadRates(c *cli.Context) (*estimation.RateBook, error) {
	path := c.String("rates")
	if path == "" {
		return nil, nil
	}
	rates, err := estimation.LoadRateBook(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load rate book: %w", err)
	}
	return rates, nil
}

func buildEngine(c *cli.Context) (*estimation.Engine, error) {
	rates, err := loadRates(c)
	if err != nil {
		return nil, err
	}
	return estimation.NewEngine(rates), nil
}
