// Command wisdom-core is the corpus-prep and extraction CLI: classify
// documents, extract quotable logical units, build chapter manifests and
// chapterize whole-scripture texts.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mygurukul/wisdom-core/internal/adapters/driven/fsstore"
	"github.com/mygurukul/wisdom-core/internal/adapters/driven/random"
	"github.com/mygurukul/wisdom-core/internal/classifier"
	"github.com/mygurukul/wisdom-core/internal/core/domain"
	"github.com/mygurukul/wisdom-core/internal/core/ports/driving"
	"github.com/mygurukul/wisdom-core/internal/core/services"
	"github.com/mygurukul/wisdom-core/internal/extractors"
	"github.com/mygurukul/wisdom-core/internal/patterns"
)

var version = "dev"

type app struct {
	store     *fsstore.Store
	wisdom    driving.WisdomService
	manifests driving.ManifestService
	logger    *slog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		corpusDir string
		logLevel  string
		seed      int64
	)

	root := &cobra.Command{
		Use:           "wisdom-core",
		Short:         "Citation-accurate excerpt extraction for the MyGurukul corpus",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&corpusDir, "corpus",
		getEnv("CORPUS_DIR", "."), "corpus root directory")
	root.PersistentFlags().StringVar(&logLevel, "log-level",
		getEnv("LOG_LEVEL", "info"), "log level (debug, info, warn, error)")
	root.PersistentFlags().Int64Var(&seed, "seed",
		getEnvInt64("WISDOM_SEED", 0), "random seed for fallback selection (0 = wall clock)")

	build := func() (*app, error) {
		return buildApp(corpusDir, logLevel, seed)
	}

	root.AddCommand(
		newExtractCmd(build),
		newClassifyCmd(build),
		newManifestCmd(build),
		newChapterizeCmd(build),
	)
	return root
}

// buildApp wires the whole pipeline. Registry construction is the
// fail-fast configuration check: an incomplete pattern table aborts here,
// before any document is touched.
func buildApp(corpusDir, logLevel string, seed int64) (*app, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(logLevel),
	}))

	registry, err := patterns.NewRegistry(logger)
	if err != nil {
		return nil, err
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := random.New(seed)

	wisdom := services.NewWisdomService(services.WisdomConfig{
		Registry:   registry,
		Classifier: classifier.New(),
		Extractors: extractors.Build(source, extractors.RegistryCleaner(registry)),
		Random:     source,
		Logger:     logger,
	})

	store := fsstore.New(corpusDir)
	return &app{
		store:     store,
		wisdom:    wisdom,
		manifests: services.NewManifestService(store, registry, logger),
		logger:    logger,
	}, nil
}

func newExtractCmd(build func() (*app, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "extract <document>",
		Short: "Extract a quotable logical unit from a corpus document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := build()
			if err != nil {
				return err
			}

			doc, err := a.store.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			wisdom, err := a.wisdom.Extract(cmd.Context(), doc.Name, doc.Text)
			if err != nil {
				if errors.Is(err, domain.ErrNoExtractableContent) {
					fmt.Fprintln(os.Stderr, "no extractable content; try another document")
					os.Exit(1)
				}
				return err
			}
			return printJSON(cmd, wisdom)
		},
	}
}

func newClassifyCmd(build func() (*app, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <document>",
		Short: "Classify a corpus document into its literary type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := build()
			if err != nil {
				return err
			}

			doc, err := a.store.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			result := a.wisdom.Classify(doc.Name, doc.Text)
			return printJSON(cmd, struct {
				TextType   string   `json:"text_type"`
				Confidence string   `json:"confidence"`
				Matched    []string `json:"matched_patterns"`
				Rationale  string   `json:"rationale"`
			}{
				TextType:   result.TextType.String(),
				Confidence: result.Confidence.String(),
				Matched:    result.MatchedPatterns,
				Rationale:  result.Rationale,
			})
		},
	}
}

func newManifestCmd(build func() (*app, error)) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "manifest <scripture-id> <scripture-name>",
		Short: "Build a chapter manifest for the corpus tree",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := build()
			if err != nil {
				return err
			}

			m, err := a.manifests.Build(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			data, err := yaml.Marshal(m)
			if err != nil {
				return err
			}
			if out == "" {
				cmd.OutOrStdout().Write(data)
				return nil
			}
			return os.WriteFile(out, data, 0o644)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "write manifest to file instead of stdout")
	return cmd
}

func newChapterizeCmd(build func() (*app, error)) *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:   "chapterize <document>",
		Short: "Split a whole-scripture text into chapter files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := build()
			if err != nil {
				return err
			}

			doc, err := a.store.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			chapters, err := a.manifests.Chapterize(cmd.Context(), doc)
			if err != nil {
				return err
			}

			for _, ch := range chapters {
				dir := outDir
				if ch.Book > 0 {
					name := ch.BookName
					if name == "" {
						name = fmt.Sprintf("Book_%d", ch.Book)
					}
					dir = filepath.Join(outDir, fmt.Sprintf("Kanda_%d_%s", ch.Book, name))
				}
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return err
				}
				path := filepath.Join(dir, fmt.Sprintf("Sarga_%03d.txt", ch.Number))
				if err := os.WriteFile(path, []byte(ch.Text), 0o644); err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d chapters under %s\n", len(chapters), outDir)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outDir, "output", "o", "chapters", "output directory")
	return cmd
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
