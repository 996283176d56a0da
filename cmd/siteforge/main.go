package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"siteforge/internal/aigen"
	"siteforge/internal/autofix"
	"siteforge/internal/composer"
	"siteforge/internal/config"
	"siteforge/internal/pipeline"
	"siteforge/internal/preview"
	"siteforge/internal/sitespec"
	"siteforge/internal/storage"
	"siteforge/internal/validate"
)

var (
	rootCmd = &cobra.Command{
		Use:   "siteforge",
		Short: "Deterministic site specification generator",
	}
	cfgPath string
	dbPath  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "Path to the YAML configuration file")
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Path to the session database (overrides config)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(previewCmd)
}

func loadConfig() *config.Config {
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if dbPath != "" {
		cfg.Storage.Path = dbPath
	}
	return cfg
}

var (
	intakePath string
	outPath    string
	useAI      bool
	applyFix   bool
	noStore    bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a site intent document from an intake file",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		ctx := context.Background()
		logger := log.New(os.Stderr, "siteforge: ", log.LstdFlags)

		rec, err := readIntake(intakePath)
		if err != nil {
			log.Fatalf("Failed to read intake file: %v", err)
		}

		var gen pipeline.Generator
		if useAI {
			g, err := aigen.NewGeminiGenerator(ctx, cfg.AI.APIKey, cfg.AI.Model)
			if err != nil {
				logger.Printf("ai generator unavailable, using deterministic path: %v", err)
			} else {
				gen = g
			}
		}

		comp := composer.New(nil, composer.WithLogger(logger))
		p := pipeline.New(comp, gen, logger)
		out := p.Run(ctx, rec, pipeline.Options{AutoFix: applyFix})

		for _, note := range out.Notes {
			logger.Printf("intake: %s", note)
		}
		printWarnings(out.Warnings)
		printFixes(out.Fixes)

		dest := outPath
		if dest == "" {
			dest = filepath.Join(cfg.Output.Dir, out.Document.SessionID+".json")
		}
		if err := sitespec.Save(dest, out.Document); err != nil {
			log.Fatalf("Failed to write document: %v", err)
		}
		fmt.Printf("Document written to %s (method=%s, sub-type=%s)\n",
			dest, out.Document.Metadata.Method, out.SubType)

		if !noStore {
			store, err := storage.NewSQLiteStore(cfg.Storage.Path)
			if err != nil {
				log.Fatalf("Failed to open session store: %v", err)
			}
			defer store.Close()
			err = store.SaveSession(storage.SessionRecord{
				SessionID:    out.Document.SessionID,
				SiteType:     out.Document.SiteType,
				Goal:         out.Document.ConversionGoal,
				BusinessName: out.Document.BusinessName,
				Method:       out.Document.Metadata.Method,
				Document:     out.Document,
				Fixes:        out.Fixes,
				WarningCount: len(out.Warnings),
			})
			if err != nil {
				log.Fatalf("Failed to store session: %v", err)
			}
		}
	},
}

var (
	ctxDescription string
	ctxSiteType    string
)

var validateCmd = &cobra.Command{
	Use:   "validate <spec.json>",
	Short: "Validate a site intent document against schema and vocabulary rules",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		doc, err := sitespec.Load(args[0])
		if err != nil {
			log.Fatalf("Failed to load document: %v", err)
		}
		if err := sitespec.ValidateSchema(doc); err != nil {
			fmt.Printf("Schema: FAIL\n  %v\n", err)
		} else {
			fmt.Println("Schema: OK")
		}

		res := validate.Check(doc, validate.Context{
			Description: ctxDescription,
			SiteType:    contextSiteType(doc),
		})
		fmt.Printf("Sub-type: %s\n", res.SubType)
		if len(res.Warnings) == 0 {
			fmt.Println("No findings.")
			return
		}
		printWarnings(res.Warnings)
	},
}

var fixCmd = &cobra.Command{
	Use:   "fix <spec.json>",
	Short: "Auto-fix a site intent document and write the corrected copy",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		doc, err := sitespec.Load(args[0])
		if err != nil {
			log.Fatalf("Failed to load document: %v", err)
		}
		res := autofix.Apply(doc, autofix.Context{
			Description: ctxDescription,
			SiteType:    contextSiteType(doc),
		})
		printFixes(res.Fixes)

		dest := outPath
		if dest == "" {
			dest = args[0]
		}
		if err := sitespec.Save(dest, res.Spec); err != nil {
			log.Fatalf("Failed to write document: %v", err)
		}
		fmt.Printf("Corrected document written to %s (%d fixes, sub-type=%s)\n",
			dest, len(res.Fixes), res.SubType)
	},
}

var previewCmd = &cobra.Command{
	Use:   "preview <spec.json | session-id>",
	Short: "Render a document (or a stored session) as a Markdown summary",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if doc, err := sitespec.Load(args[0]); err == nil {
			fmt.Print(preview.Markdown(doc, nil, nil))
			return
		}

		// Not a readable file; try the session store.
		cfg := loadConfig()
		store, err := storage.NewSQLiteStore(cfg.Storage.Path)
		if err != nil {
			log.Fatalf("Failed to open session store: %v", err)
		}
		defer store.Close()

		s, err := store.GetSession(args[0])
		if err != nil {
			log.Fatalf("Not a document file or stored session: %v", err)
		}
		res := validate.Check(s.Document, validate.Context{SiteType: s.SiteType})
		fmt.Print(preview.Markdown(s.Document, res.Warnings, s.Fixes))
	},
}

var sessionLimit int

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List stored generation sessions",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		store, err := storage.NewSQLiteStore(cfg.Storage.Path)
		if err != nil {
			log.Fatalf("Failed to open session store: %v", err)
		}
		defer store.Close()

		sessions, err := store.ListSessions(sessionLimit)
		if err != nil {
			log.Fatalf("Failed to list sessions: %v", err)
		}
		if len(sessions) == 0 {
			fmt.Println("No sessions stored yet.")
			return
		}
		for _, s := range sessions {
			fmt.Printf("%s  %-12s %-8s %-14s %s  fixes=%d warnings=%d\n",
				s.CreatedAt.Format(time.RFC3339), s.SiteType, s.Goal, s.Method,
				s.SessionID, len(s.Fixes), s.WarningCount)
		}
	},
}

func init() {
	generateCmd.Flags().StringVarP(&intakePath, "intake", "i", "intake.yaml", "Path to the intake file (YAML or JSON)")
	generateCmd.Flags().StringVarP(&outPath, "out", "o", "", "Output path for the document (default out/<session>.json)")
	generateCmd.Flags().BoolVar(&useAI, "ai", false, "Try the AI generation path before the deterministic composer")
	generateCmd.Flags().BoolVar(&applyFix, "fix", false, "Run the auto-fix transformer on the generated document")
	generateCmd.Flags().BoolVar(&noStore, "no-store", false, "Skip persisting the session")

	validateCmd.Flags().StringVar(&ctxDescription, "description", "", "Original business description for sub-type inference")
	validateCmd.Flags().StringVar(&ctxSiteType, "site-type", "", "Site type override for validation context")

	fixCmd.Flags().StringVarP(&outPath, "out", "o", "", "Output path (default: overwrite input)")
	fixCmd.Flags().StringVar(&ctxDescription, "description", "", "Original business description for sub-type inference")
	fixCmd.Flags().StringVar(&ctxSiteType, "site-type", "", "Site type override for fix context")

	sessionsCmd.Flags().IntVarP(&sessionLimit, "limit", "n", 20, "Maximum number of sessions to list")
}

func readIntake(path string) (sitespec.IntakeRecord, error) {
	var rec sitespec.IntakeRecord
	b, err := os.ReadFile(path)
	if err != nil {
		return rec, err
	}
	// YAML is a superset of JSON, so one decoder covers both formats.
	if err := yaml.Unmarshal(b, &rec); err != nil {
		return rec, err
	}
	return rec, nil
}

func contextSiteType(doc *sitespec.SiteIntentDocument) string {
	if ctxSiteType != "" {
		return ctxSiteType
	}
	return doc.SiteType
}

func printWarnings(warnings []sitespec.ValidationWarning) {
	for _, w := range warnings {
		ref := w.ComponentRef
		if ref == "" {
			ref = "document"
		}
		fmt.Printf("  [%s] %s: %s", w.Severity, ref, w.Message)
		if w.Suggestion != "" {
			fmt.Printf(" (%s)", w.Suggestion)
		}
		fmt.Println()
	}
}

func printFixes(fixes []sitespec.AutoFix) {
	for _, f := range fixes {
		fmt.Printf("  fix %s %s.%s: %q -> %q\n", f.Rule, f.ComponentRef, f.Field, f.Original, f.Replacement)
	}
}
