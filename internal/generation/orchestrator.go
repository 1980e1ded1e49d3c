package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/brunnokenzokillaruna/careertrackpro-sub000/internal/draft"
	"github.com/brunnokenzokillaruna/careertrackpro-sub000/internal/llm"
	"github.com/brunnokenzokillaruna/careertrackpro-sub000/internal/markdown"
	"github.com/brunnokenzokillaruna/careertrackpro-sub000/internal/types"
)

// State is the orchestrator's position in a generation request. The
// UI keys its busy indicator to the current state.
type State string

// Request lifecycle states. Error is entered when the request context
// is cancelled mid-generation; a blocked validation returns the
// machine to Idle, and provider failures fall back instead of erroring.
const (
	StateIdle                  State = "idle"
	StateLoadingProfile        State = "loading_profile"
	StateLoadingCredentials    State = "loading_credentials"
	StateGeneratingResume      State = "generating_resume"
	StateGeneratingCoverLetter State = "generating_cover_letter"
	StateDone                  State = "done"
	StateError                 State = "error"
)

// Source records which path produced the document pair.
type Source string

// Generation sources.
const (
	SourceProvider Source = "provider"
	SourceTemplate Source = "template"
)

// ProfileStore is the external profile collaborator.
type ProfileStore interface {
	// GetProfile returns the user's profile snapshot, or ErrNotFound.
	GetProfile(ctx context.Context, userID uuid.UUID) (*types.ProfileSnapshot, error)
}

// CredentialStore is the external credential collaborator.
type CredentialStore interface {
	// ListCredentials returns the user's stored API credentials.
	ListCredentials(ctx context.Context, userID uuid.UUID) ([]types.CredentialRef, error)
	// DefaultCredentialID returns the stored default credential id, if
	// one is set.
	DefaultCredentialID(ctx context.Context, userID uuid.UUID) (uuid.UUID, bool, error)
}

// ClientFactory builds a provider client for a credential. Swapped out
// in tests.
type ClientFactory func(ctx context.Context, cred types.CredentialRef) (llm.Client, error)

// StateCallback observes state transitions.
type StateCallback func(State)

// Request is one generation request. Regenerate issues a fresh Request
// and supersedes the previous result wholesale.
type Request struct {
	UserID         uuid.UUID
	App            types.ApplicationContext
	JobDescription string
	Language       types.Language
	// CredentialID optionally pins a stored credential; otherwise the
	// stored default, then the first credential, is used.
	CredentialID *uuid.UUID
	// Profile optionally bypasses the profile collaborator.
	Profile *types.ProfileSnapshot
}

// Result is the outcome of a completed request: always a full document
// pair, never a partial mix of provider and template output.
type Result struct {
	Resume      types.GeneratedDocument `json:"resume"`
	CoverLetter types.GeneratedDocument `json:"cover_letter"`
	Source      Source                  `json:"source"`
	// Provider is set when Source is "provider".
	Provider types.ProviderClass `json:"provider,omitempty"`
	// FallbackReason explains a provider-to-template fallback.
	FallbackReason string `json:"fallback_reason,omitempty"`
}

// Orchestrator runs generation requests. Each request owns a deep copy
// of the profile snapshot, so no shared mutable state crosses
// in-flight operations.
type Orchestrator struct {
	profiles    ProfileStore
	credentials CredentialStore
	newClient   ClientFactory
	logger      *slog.Logger
	onState     StateCallback
}

// NewOrchestrator wires the orchestrator with its collaborators. A nil
// factory uses the real provider clients.
func NewOrchestrator(profiles ProfileStore, credentials CredentialStore, logger *slog.Logger, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		profiles:    profiles,
		credentials: credentials,
		logger:      logger,
		newClient: func(ctx context.Context, cred types.CredentialRef) (llm.Client, error) {
			return llm.NewClient(ctx, cred, llm.Options{})
		},
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Option customizes an Orchestrator.
type Option func(*Orchestrator)

// WithClientFactory overrides provider client construction.
func WithClientFactory(f ClientFactory) Option {
	return func(o *Orchestrator) { o.newClient = f }
}

// WithStateCallback registers a state transition observer.
func WithStateCallback(cb StateCallback) Option {
	return func(o *Orchestrator) { o.onState = cb }
}

func (o *Orchestrator) setState(s State) {
	if o.onState != nil {
		o.onState(s)
	}
}

// Generate runs one request to completion. The two completion calls
// are strictly sequential: resume first, then cover letter. Any
// provider failure falls back to the template generator for the whole
// pair; only an empty job description is a hard error.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (*Result, error) {
	if strings.TrimSpace(req.JobDescription) == "" {
		o.setState(StateIdle)
		return nil, &ValidationError{Field: "job_description", Message: "job description is required"}
	}

	o.setState(StateLoadingProfile)
	profile := o.loadProfile(ctx, req)

	var result *Result
	cred, ok := o.selectCredential(ctx, req)
	if !ok {
		// Not an error path: no credential means the template
		// generator serves both documents.
		result = o.generateFromTemplate(profile, req, "")
	} else {
		var err error
		result, err = o.generateFromProvider(ctx, cred, profile, req)
		if err != nil {
			return nil, err
		}
	}

	o.setState(StateDone)
	return result, nil
}

// loadProfile fetches and deep-copies the profile, degrading to the
// placeholder snapshot on any collaborator failure.
func (o *Orchestrator) loadProfile(ctx context.Context, req Request) *types.ProfileSnapshot {
	if req.Profile != nil {
		return req.Profile.Clone()
	}
	profile, err := o.profiles.GetProfile(ctx, req.UserID)
	if err != nil {
		cerr := &CollaboratorError{Collaborator: "profile", Cause: err}
		if errors.Is(err, ErrNotFound) {
			o.logger.Info("profile not found, using placeholder", "user_id", req.UserID)
		} else {
			o.logger.Error("profile load failed, using placeholder", "error", cerr)
		}
		return types.PlaceholderProfile()
	}
	return profile.Clone()
}

// selectCredential applies the selection order: pinned id, stored
// default, first credential. An empty list or failed load means the
// template path.
func (o *Orchestrator) selectCredential(ctx context.Context, req Request) (types.CredentialRef, bool) {
	o.setState(StateLoadingCredentials)

	creds, err := o.credentials.ListCredentials(ctx, req.UserID)
	if err != nil {
		o.logger.Error("credential load failed, using template path",
			"error", &CollaboratorError{Collaborator: "credentials", Cause: err})
		return types.CredentialRef{}, false
	}
	if len(creds) == 0 {
		return types.CredentialRef{}, false
	}

	if req.CredentialID != nil {
		for _, c := range creds {
			if c.ID == *req.CredentialID {
				return c, true
			}
		}
	}

	if defaultID, found, err := o.credentials.DefaultCredentialID(ctx, req.UserID); err == nil && found {
		for _, c := range creds {
			if c.ID == defaultID {
				return c, true
			}
		}
	}
	return creds[0], true
}

// generateFromProvider runs the AI path. A failure on either call
// aborts the AI path for the pair: a mixed AI/template pair is never
// produced. A cancelled request context enters the Error state and
// aborts outright; there is no caller left to serve a fallback to.
func (o *Orchestrator) generateFromProvider(ctx context.Context, cred types.CredentialRef, profile *types.ProfileSnapshot, req Request) (*Result, error) {
	class := cred.Class()

	client, err := o.newClient(ctx, cred)
	if err != nil {
		if cerr := o.cancelled(ctx); cerr != nil {
			return nil, cerr
		}
		o.logger.Error("provider client construction failed, falling back to template",
			"provider", class, "error", err)
		return o.generateFromTemplate(profile, req, "client construction failed"), nil
	}

	o.setState(StateGeneratingResume)
	rawResume, err := client.Complete(ctx, llm.SystemInstruction,
		llm.ResumePrompt(profile, req.App, req.JobDescription, req.Language))
	if err != nil {
		if cerr := o.cancelled(ctx); cerr != nil {
			return nil, cerr
		}
		o.logProviderFailure(class, types.KindResume, err)
		return o.generateFromTemplate(profile, req, "resume completion failed"), nil
	}

	o.setState(StateGeneratingCoverLetter)
	rawCover, err := client.Complete(ctx, llm.SystemInstruction,
		llm.CoverLetterPrompt(profile, req.App, req.JobDescription, req.Language))
	if err != nil {
		if cerr := o.cancelled(ctx); cerr != nil {
			return nil, cerr
		}
		// The successful resume completion is discarded with the pair.
		o.logProviderFailure(class, types.KindCoverLetter, err)
		return o.generateFromTemplate(profile, req, "cover letter completion failed"), nil
	}

	return &Result{
		Resume:      newDocument(types.KindResume, rawResume),
		CoverLetter: newDocument(types.KindCoverLetter, rawCover),
		Source:      SourceProvider,
		Provider:    class,
	}, nil
}

// cancelled reports a dead request context as the terminal Error state.
func (o *Orchestrator) cancelled(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		o.setState(StateError)
		return fmt.Errorf("generation aborted: %w", err)
	}
	return nil
}

// generateFromTemplate runs the deterministic path for both documents.
func (o *Orchestrator) generateFromTemplate(profile *types.ProfileSnapshot, req Request, fallbackReason string) *Result {
	o.setState(StateGeneratingResume)
	rawResume := draft.Resume(profile, req.App, req.JobDescription, req.Language)

	o.setState(StateGeneratingCoverLetter)
	rawCover := draft.CoverLetter(profile, req.App, req.Language)

	return &Result{
		Resume:         newDocument(types.KindResume, rawResume),
		CoverLetter:    newDocument(types.KindCoverLetter, rawCover),
		Source:         SourceTemplate,
		FallbackReason: fallbackReason,
	}
}

func (o *Orchestrator) logProviderFailure(class types.ProviderClass, kind types.DocumentKind, err error) {
	var perr *llm.ProviderError
	if errors.As(err, &perr) {
		o.logger.Error("provider call failed, falling back to template for both documents",
			"provider", class, "document", kind, "status", perr.Status)
		return
	}
	o.logger.Error("provider call failed, falling back to template for both documents",
		"provider", class, "document", kind, "error", err)
}

func newDocument(kind types.DocumentKind, raw string) types.GeneratedDocument {
	return types.GeneratedDocument{
		Kind:           kind,
		RawMarkdown:    raw,
		NormalizedText: markdown.Normalize(raw),
	}
}
