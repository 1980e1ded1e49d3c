package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/brunnokenzokillaruna/careertrackpro-sub000/internal/config"
	"github.com/brunnokenzokillaruna/careertrackpro-sub000/internal/generation"
	"github.com/brunnokenzokillaruna/careertrackpro-sub000/internal/ingestion"
	"github.com/brunnokenzokillaruna/careertrackpro-sub000/internal/logging"
	"github.com/brunnokenzokillaruna/careertrackpro-sub000/internal/pdf"
	"github.com/brunnokenzokillaruna/careertrackpro-sub000/internal/schemas"
	"github.com/brunnokenzokillaruna/careertrackpro-sub000/internal/types"
)

var (
	generateJob      string
	generateProfile  string
	generateCompany  string
	generatePosition string
	generateLanguage string
	generateAPIKey   string
	generateOutDir   string
	generatePDF      bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a resume and cover letter for one application",
	Long: `Generate a tailored resume and cover letter from a job description file
and an optional profile snapshot, without a database. With an API key the
documents come from the provider; without one, from the template generator.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateJob, "job", "", "Path to job description file (text or HTML)")
	generateCmd.Flags().StringVar(&generateProfile, "profile", "", "Path to profile snapshot JSON")
	generateCmd.Flags().StringVar(&generateCompany, "company", "", "Target company name")
	generateCmd.Flags().StringVar(&generatePosition, "position", "", "Target position title")
	generateCmd.Flags().StringVar(&generateLanguage, "language", "", "Output language")
	generateCmd.Flags().StringVar(&generateAPIKey, "api-key", "", "Provider API key (prefix decides the provider)")
	generateCmd.Flags().StringVar(&generateOutDir, "out", "out", "Output directory")
	generateCmd.Flags().BoolVar(&generatePDF, "pdf", false, "Also render PDFs")
	_ = generateCmd.MarkFlagRequired("job")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if generateProfile == "" {
		generateProfile = cfg.Profile
	}
	if generateAPIKey == "" {
		generateAPIKey = cfg.APIKey
	}
	if generateLanguage == "" {
		generateLanguage = cfg.Language
	}

	logger := logging.New(verbose || cfg.Verbose)
	ctx := cmd.Context()

	jobRaw, err := os.ReadFile(generateJob)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}

	profile, err := loadProfileFile(generateProfile)
	if err != nil {
		return err
	}

	orchestrator := generation.NewOrchestrator(
		noProfileStore{},
		staticCredentialStore{apiKey: generateAPIKey},
		logger,
	)

	result, err := orchestrator.Generate(ctx, generation.Request{
		App:            types.ApplicationContext{Company: generateCompany, Position: generatePosition},
		JobDescription: ingestion.CleanJobDescription(string(jobRaw)),
		Language:       types.Language(generateLanguage),
		Profile:        profile,
	})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(generateOutDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	name := profile.Name()
	for _, doc := range []types.GeneratedDocument{result.Resume, result.CoverLetter} {
		if err := writeDocument(ctx, doc, name); err != nil {
			return err
		}
	}

	logger.Info("generation complete", "source", result.Source, "out", generateOutDir)
	return nil
}

// loadProfileFile reads and schema-checks a profile snapshot. An empty
// path yields the placeholder profile.
func loadProfileFile(path string) (*types.ProfileSnapshot, error) {
	if path == "" {
		return types.PlaceholderProfile(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}
	if err := schemas.ValidateProfile(raw); err != nil {
		return nil, err
	}
	var profile types.ProfileSnapshot
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	return &profile, nil
}

func writeDocument(ctx context.Context, doc types.GeneratedDocument, name string) error {
	base := pdf.FileName(doc.Kind, name, generateCompany)
	mdPath := filepath.Join(generateOutDir, base[:len(base)-len(".pdf")]+".md")
	if err := os.WriteFile(mdPath, []byte(doc.NormalizedText), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", mdPath, err)
	}

	if !generatePDF {
		return nil
	}
	out, err := pdf.NewRenderer().Render(ctx, doc, name)
	if err != nil {
		return fmt.Errorf("failed to render pdf: %w", err)
	}
	pdfPath := filepath.Join(generateOutDir, base)
	if err := os.WriteFile(pdfPath, out, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", pdfPath, err)
	}
	return nil
}

// noProfileStore backs CLI runs where the profile arrives as a file
// and is passed directly on the request.
type noProfileStore struct{}

func (noProfileStore) GetProfile(context.Context, uuid.UUID) (*types.ProfileSnapshot, error) {
	return nil, generation.ErrNotFound
}

// staticCredentialStore exposes the --api-key flag as a single stored
// credential. An empty key means the template path.
type staticCredentialStore struct {
	apiKey string
}

func (s staticCredentialStore) ListCredentials(context.Context, uuid.UUID) ([]types.CredentialRef, error) {
	if s.apiKey == "" {
		return nil, nil
	}
	return []types.CredentialRef{{ID: uuid.New(), DisplayName: "cli", Secret: s.apiKey}}, nil
}

func (s staticCredentialStore) DefaultCredentialID(context.Context, uuid.UUID) (uuid.UUID, bool, error) {
	return uuid.Nil, false, nil
}
