package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/artem13815/resume-analyzer/pkg/analysis"
	"github.com/artem13815/resume-analyzer/pkg/nlp"
	"github.com/artem13815/resume-analyzer/pkg/resume"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume file and print the result as JSON",
	Long:  "Extract text from a PDF, DOCX or TXT resume, match it against an optional job description and print the analysis result as JSON.",
	RunE:  runAnalyze,
}

var (
	analyzeResumePath string
	analyzeJDPath     string
	analyzeJDText     string
	analyzePretty     bool
)

// errNoResumeText means the resume yielded no text; the process exits non-zero.
var errNoResumeText = errors.New("could not extract text from the resume file")

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResumePath, "resume", "r", "", "Path to resume file (.pdf, .docx, .txt)")
	analyzeCmd.Flags().StringVar(&analyzeJDPath, "jd", "", "Path to job description file")
	analyzeCmd.Flags().StringVar(&analyzeJDText, "jd-text", "", "Job description text")
	analyzeCmd.Flags().BoolVar(&analyzePretty, "pretty", false, "Indent JSON output")
	_ = analyzeCmd.MarkFlagRequired("resume")
	analyzeCmd.MarkFlagsMutuallyExclusive("jd", "jd-text")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	pool, err := connectIfConfigured(ctx, cfg)
	if err != nil {
		return err
	}
	if pool != nil {
		defer pool.Close()
	}
	cat, err := loadCatalog(ctx, cfg, pool)
	if err != nil {
		return err
	}

	jd := analyzeJDText
	if analyzeJDPath != "" {
		if jd, err = readJobDescription(analyzeJDPath); err != nil {
			return err
		}
	}

	analyzer := analysis.NewAnalyzer(cat, nlp.ParseMatchMode(cfg.SkillMatchMode))
	return analyzeFile(cmd.OutOrStdout(), analyzer, analyzeResumePath, jd, analyzePretty)
}

func analyzeFile(w io.Writer, uc analysis.UseCase, path, jd string, pretty bool) error {
	if !resume.SupportedExtension(path) {
		return fmt.Errorf("%s: %w", path, resume.ErrUnsupportedFormat)
	}
	text := resume.ExtractFile(path)
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%s: %w", path, errNoResumeText)
	}
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(uc.Analyze(text, jd))
}

// readJobDescription reads a document through the extractor when its format is
// known and as plain UTF-8 otherwise.
func readJobDescription(path string) (string, error) {
	if resume.SupportedExtension(path) {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("job description: %w", err)
		}
		return resume.ExtractFile(path), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("job description: %w", err)
	}
	return string(data), nil
}
