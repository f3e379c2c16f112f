// Command kitab converts a scanned PDF book into chapter-segmented text.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/maktaba/kitab"
	"github.com/maktaba/kitab/script"
)

var (
	verbose  bool
	lang     string
	dpi      int
	workers  int
	output   string
	fold     bool
	strip    bool
	textOnly bool
	tocPage  int
	tocOff   int
	useTOC   bool
)

var rootCmd = &cobra.Command{
	Use:   "kitab",
	Short: "Extract chapter-segmented text from scanned PDF books",
	Long: `kitab renders each page of a scanned PDF, recognizes the text with
Tesseract, normalizes it and splits it into chapters by heading detection
or the book's table of contents. Output formats: a single DOCX, a JSON
chapter list, or a ZIP with one DOCX per chapter.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "output path (default: input name with the format's extension)")
	rootCmd.PersistentFlags().StringVarP(&lang, "lang", "l", "ara", "recognition language (ara, ara+eng, eng)")
	rootCmd.PersistentFlags().IntVar(&dpi, "dpi", 0, "render resolution (default 250)")
	rootCmd.PersistentFlags().IntVarP(&workers, "workers", "w", 0, "concurrent page recognitions (default GOMAXPROCS)")
	rootCmd.PersistentFlags().BoolVar(&fold, "fold", false, "fold Arabic letter variants (alef, ya, hamza carriers)")
	rootCmd.PersistentFlags().BoolVar(&strip, "strip-diacritics", false, "remove tashkeel marks")
	rootCmd.PersistentFlags().BoolVar(&textOnly, "prefer-text-layer", false, "use the embedded text layer when every page has one")
	rootCmd.PersistentFlags().BoolVar(&useTOC, "toc", false, "segment by the table of contents instead of heading detection")
	rootCmd.PersistentFlags().IntVar(&tocPage, "toc-page", -1, "0-based page index of the table of contents (-1 to detect)")
	rootCmd.PersistentFlags().IntVar(&tocOff, "toc-offset", 0, "printed-to-physical page number offset")

	rootCmd.AddCommand(docxCmd, jsonCmd, zipCmd, diagCmd)
}

// buildPipeline applies the shared flags to a pipeline over the input file.
func buildPipeline(path string) (*kitab.Pipeline, error) {
	switch lang {
	case string(script.Arabic), string(script.ArabicEnglish), string(script.English):
	default:
		return nil, fmt.Errorf("unsupported language %q", lang)
	}
	p := kitab.FromFile(path).
		Language(script.Language(lang)).
		FoldLetters(fold).
		StripDiacritics(strip).
		PreferTextLayer(textOnly)
	if dpi > 0 {
		p = p.DPI(dpi)
	}
	if workers > 0 {
		p = p.Workers(workers)
	}
	if useTOC {
		p = p.UseTOC(tocPage, tocOff)
	}
	return p, nil
}

func runContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// outputPath derives the artifact path from the input when -o is not given.
func outputPath(input, ext string) string {
	if output != "" {
		return output
	}
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return base + ext
}

func report(res *kitab.Result) {
	fmt.Fprintf(os.Stderr, "%d chapters from %d pages (%d failed)\n",
		len(res.Chapters), res.PageCount, res.PagesFailed)
}

var docxCmd = &cobra.Command{
	Use:   "docx <book.pdf>",
	Short: "Write all chapters to a single Word document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := runContext()
		defer cancel()
		p, err := buildPipeline(args[0])
		if err != nil {
			return err
		}
		out, err := os.Create(outputPath(args[0], ".docx"))
		if err != nil {
			return err
		}
		defer out.Close()
		res, err := p.WriteDOCX(ctx, out)
		if err != nil {
			return err
		}
		report(res)
		return out.Close()
	},
}

var jsonCmd = &cobra.Command{
	Use:   "json <book.pdf>",
	Short: "Print the chapter list as JSON to stdout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := runContext()
		defer cancel()
		p, err := buildPipeline(args[0])
		if err != nil {
			return err
		}
		data, res, err := p.JSON(ctx)
		if err != nil {
			return err
		}
		if _, err := os.Stdout.Write(append(data, '\n')); err != nil {
			return err
		}
		report(res)
		return nil
	},
}

var zipCmd = &cobra.Command{
	Use:   "zip <book.pdf>",
	Short: "Write a ZIP archive with one Word document per chapter",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := runContext()
		defer cancel()
		p, err := buildPipeline(args[0])
		if err != nil {
			return err
		}
		out, err := os.Create(outputPath(args[0], ".zip"))
		if err != nil {
			return err
		}
		defer out.Close()
		res, err := p.WriteZip(ctx, out)
		if err != nil {
			return err
		}
		report(res)
		return out.Close()
	},
}

var diagCmd = &cobra.Command{
	Use:   "diag",
	Short: "Check that the rendering and recognition engines are usable",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := runContext()
		defer cancel()
		d := kitab.Diagnose(ctx)
		fmt.Printf("rasterizer:        %v\n", d.RasterizerOK)
		fmt.Printf("recognition:       %v\n", d.OCREnabled)
		fmt.Printf("arabic traineddata: %v\n", d.ArabicTraineddata)
		if len(d.Languages) > 0 {
			fmt.Printf("languages:         %s\n", strings.Join(d.Languages, ", "))
		}
		for _, e := range d.Errors {
			fmt.Fprintf(os.Stderr, "error: %s\n", e)
		}
		if !d.OK() {
			return fmt.Errorf("%d check(s) failed", len(d.Errors))
		}
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
