package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/fabioluissilva/gherkin2robotframework/internal/config"
	"github.com/fabioluissilva/gherkin2robotframework/internal/generator"
	"github.com/fabioluissilva/gherkin2robotframework/internal/gherkin"
	"github.com/fabioluissilva/gherkin2robotframework/internal/output"
	"github.com/fabioluissilva/gherkin2robotframework/internal/resource"
	"github.com/fabioluissilva/gherkin2robotframework/internal/settings"
	"github.com/fabioluissilva/gherkin2robotframework/internal/translation"
	"github.com/fabioluissilva/gherkin2robotframework/internal/transpiler"
)

// GenerateCmd creates and returns the 'generate' command.
func GenerateCmd() *cobra.Command {
	var dryRun bool
	var language string

	cmd := &cobra.Command{
		Use:   "generate [feature|directory] [output]",
		Short: "Generate Robot Framework scripts from feature files",
		Long: `Generate a .robot script and a companion step-definition resource for
each feature file.

A directory argument is processed recursively; the generated files mirror
the source layout under the output directory (default: the source
directory). Scripts are regenerated on every run. The resource is created
only when absent; when it exists, keywords it does not yet implement are
reported instead.

Examples:
  gherkin2robotframework generate login.feature
  gherkin2robotframework generate features/ build/robot
  gherkin2robotframework generate features/ --dry-run`,
		Args: cobra.MaximumNArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			cfg, err := config.Load()
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}
			if language == "" {
				language = cfg.Language
			}

			input := "."
			if len(args) > 0 {
				input = args[0]
			}
			input, err = filepath.Abs(input)
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			info, err := os.Stat(input)
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			basedir := input
			files := []string{input}
			if info.IsDir() {
				files, err = gherkin.FeatureFiles(input)
				if err != nil {
					output.Error(err.Error())
					os.Exit(1)
				}
				if len(files) == 0 {
					output.Info("No feature files found in " + input)
					return
				}
			} else {
				basedir = filepath.Dir(input)
			}

			outputDir := basedir
			if len(args) > 1 {
				outputDir, err = filepath.Abs(args[1])
			} else if cfg.Output != "" {
				outputDir, err = filepath.Abs(cfg.Output)
			}
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			settingsDir := cfg.SettingsDir
			if settingsDir == "" {
				settingsDir = settings.Dir(basedir)
			}
			output.Verbose("Settings dir: " + settingsDir)
			output.Verbose("Output dir: " + outputDir)

			// Each file is an independent unit of work: a structural or
			// IO failure aborts that file only and the batch continues.
			failures := 0
			for _, file := range files {
				if err := processFeature(ctx, file, basedir, outputDir, settingsDir, language, dryRun, cmd); err != nil {
					output.Error(fmt.Sprintf("%s: %v", file, err))
					failures++
				}
			}
			if failures > 0 {
				output.Error(fmt.Sprintf("%d of %d feature file(s) failed", failures, len(files)))
				os.Exit(1)
			}
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be generated without creating files")
	cmd.Flags().StringVar(&language, "language", "", "Force the output language (default: the feature's own)")

	return cmd
}

func processFeature(ctx context.Context, path, basedir, outputDir, settingsDir, forceLang string, dryRun bool, cmd *cobra.Command) error {
	output.Info("Processing gherkin: " + path)

	doc, err := gherkin.ParseFile(path)
	if err != nil {
		return err
	}
	if doc.Feature == nil {
		return fmt.Errorf("no feature found")
	}

	lang := doc.Feature.Language
	if forceLang != "" {
		lang = forceLang
	}
	provider, known := translation.For(lang)
	if !known && lang != "" {
		output.Warn(fmt.Sprintf("unsupported language %q, falling back to %s", lang, translation.DefaultLanguage))
	}

	tc, err := transpiler.Translate(doc.Feature, provider)
	if err != nil {
		return err
	}
	for _, warning := range tc.Warnings {
		output.Warn(warning.Error())
	}

	destDir := outputDir
	featureDir := filepath.Dir(path)
	if rel, relErr := filepath.Rel(basedir, featureDir); relErr == nil && rel != "." && !strings.HasPrefix(rel, "..") {
		destDir = filepath.Join(outputDir, rel)
	}

	base := artifactBaseName(doc.Feature.Name)
	resourceName := base + "_step_definitions.resource"
	resourcePath := filepath.Join(destDir, resourceName)

	featureSettings, err := settings.Read(settingsDir, settings.FeatureSettings)
	if err != nil {
		return err
	}

	now := time.Now()
	script := tc.Script(transpiler.ScriptOptions{
		FeatureName:  doc.Feature.Name,
		ResourceFile: resourceName,
		Settings:     featureSettings,
		Now:          now,
	})
	ops := []generator.Operation{&generator.WriteFileOp{
		Path:      filepath.Join(destDir, base+".robot"),
		Content:   script,
		Mode:      0644,
		Overwrite: true,
	}}

	reconciler := resource.NewReconciler(tc.Provider)
	existing, err := os.ReadFile(resourcePath)
	switch {
	case os.IsNotExist(err):
		output.Verbose("New resource: " + resourcePath)
		resourceSettings, rErr := settings.Read(settingsDir, settings.ResourceSettings)
		if rErr != nil {
			return rErr
		}
		content := reconciler.BuildResource(tc.Registry, resource.BuildOptions{
			Settings: resourceSettings,
			Now:      now,
		})
		ops = append(ops, &generator.WriteFileOp{
			Path:    resourcePath,
			Content: content,
			Mode:    0644,
		})
	case err != nil:
		return fmt.Errorf("reading %s: %w", resourcePath, err)
	default:
		output.Verbose("Existing resource: " + resourcePath)
		missing := reconciler.MissingKeywords(existing, tc.Registry)
		if len(missing) > 0 {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "\nMissing keywords for: %s\n\n", resourcePath)
			for _, stub := range missing {
				fmt.Fprintln(w, stub.Render())
				fmt.Fprintln(w)
			}
		}
	}

	return generator.Execute(ctx, ops, generator.ExecuteOptions{
		DryRun: dryRun,
		Writer: cmd.OutOrStdout(),
	})
}

// artifactBaseName derives the output file base name from the feature
// name: lowercased, spaces replaced by underscores.
func artifactBaseName(featureName string) string {
	return strings.ToLower(strings.ReplaceAll(featureName, " ", "_"))
}
