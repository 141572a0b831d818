package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/exdocs-dev/examplegen/internal/app"
	"github.com/exdocs-dev/examplegen/internal/config"
	"github.com/exdocs-dev/examplegen/internal/domain"
	"github.com/exdocs-dev/examplegen/internal/manifest"
	"github.com/exdocs-dev/examplegen/internal/utils"
	"github.com/exdocs-dev/examplegen/pkg/version"
)

var (
	cfgFile      string
	verbose      bool
	checkMissing bool
	update       bool
	dryRun       bool
	log          *utils.Logger

	// Dependencies for testing
	osStat = os.Stat
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "examplegen",
	Short: "Keep the examples catalog in sync with the project manifest",
	Long: `examplegen reads the [[example]] declarations and the example metadata
table from the project manifest, groups the documented examples by
category, and renders the catalog README through the repository's
template set.

With --check-missing, declared examples without metadata or without the
doc-scrape-examples marker fail the run. With --update, the rendered
catalog replaces the output file.`,
	Version: version.Short(),
	Args:    cobra.NoArgs,
	RunE:    run,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.examplegen/config.yaml)")
	rootCmd.PersistentFlags().StringP("manifest", "m", config.DefaultManifestPath, "Project manifest path")
	rootCmd.PersistentFlags().String("template-dir", config.DefaultTemplateDir, "Directory holding the catalog template set")
	rootCmd.PersistentFlags().String("template", config.DefaultTemplateName, "Entry template name within the set")
	rootCmd.PersistentFlags().StringP("output", "o", config.DefaultOutputPath, "Rendered catalog destination")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	// Run flags, bound to package vars so run sees them regardless of how
	// the command is invoked
	rootCmd.PersistentFlags().BoolVar(&checkMissing, "check-missing", false, "Fail when declared examples lack metadata or the doc-scrape-examples marker")
	rootCmd.PersistentFlags().BoolVar(&update, "update", false, "Write the rendered catalog to the output file")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Render without writing files")

	// Bind flags to viper
	_ = viper.BindPFlag("manifest.path", rootCmd.PersistentFlags().Lookup("manifest"))
	_ = viper.BindPFlag("template.directory", rootCmd.PersistentFlags().Lookup("template-dir"))
	_ = viper.BindPFlag("template.name", rootCmd.PersistentFlags().Lookup("template"))
	_ = viper.BindPFlag("output.path", rootCmd.PersistentFlags().Lookup("output"))

	// Add subcommands
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

func run(cmd *cobra.Command, args []string) error {
	// Initialize logger
	logLevel := "info"
	if verbose {
		logLevel = "debug"
	}
	log = utils.NewLogger(utils.LoggerOptions{
		Level:   logLevel,
		Format:  "pretty",
		Verbose: verbose,
	})

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		log.Info().Msg("Shutting down gracefully...")
		cancel()
	}()

	// Create runner options
	opts := app.RunnerOptions{
		CommonOptions: domain.CommonOptions{
			Verbose: verbose,
			DryRun:  dryRun,
		},
		Config:       cfg,
		CheckMissing: checkMissing,
		Update:       update,
	}

	// Create runner
	runner, err := app.NewRunner(opts)
	if err != nil {
		return fmt.Errorf("failed to create runner: %w", err)
	}

	// Run catalog generation
	return runner.Run(ctx, opts)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check project setup",
	Long:  "Verifies that the manifest, template set, and output destination are usable.",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Checking project setup...")
		allPassed := true

		// Check 1: Configuration
		fmt.Print("  Configuration: ")
		cfg, err := config.Load()
		if err != nil {
			fmt.Printf("WARN (%v)\n", err)
			cfg = config.Default()
		} else {
			fmt.Println("OK")
		}

		// Check 2: Manifest
		fmt.Print("  Manifest: ")
		if _, err := manifest.NewLoader().Load(cfg.Manifest.Path); err != nil {
			fmt.Printf("FAILED (%v)\n", err)
			allPassed = false
		} else {
			fmt.Printf("OK (%s)\n", cfg.Manifest.Path)
		}

		// Check 3: Template directory
		fmt.Print("  Template directory: ")
		if info, err := osStat(cfg.Template.Directory); err != nil || !info.IsDir() {
			fmt.Printf("FAILED (%s not found)\n", cfg.Template.Directory)
			allPassed = false
		} else {
			fmt.Printf("OK (%s)\n", cfg.Template.Directory)
		}

		// Check 4: Entry template
		fmt.Print("  Entry template: ")
		entry := filepath.Join(cfg.Template.Directory, cfg.Template.Name)
		if utils.FileExists(entry) {
			fmt.Printf("OK (%s)\n", entry)
		} else {
			fmt.Printf("FAILED (%s not found)\n", entry)
			allPassed = false
		}

		// Check 5: Write permissions for the output location
		fmt.Print("  Write permissions: ")
		if checkWritePermissions() {
			fmt.Println("OK")
		} else {
			fmt.Println("FAILED")
			allPassed = false
		}

		fmt.Println()
		if allPassed {
			fmt.Println("All checks passed!")
		} else {
			fmt.Println("Some checks failed. Please resolve the issues above.")
		}
		return nil
	},
}

// checkWritePermissions checks if we can write to the current directory
func checkWritePermissions() bool {
	tmpFile := ".examplegen_test_write"
	f, err := os.Create(tmpFile)
	if err != nil {
		return false
	}
	f.Close()
	os.Remove(tmpFile)
	return true
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Full())
	},
}
