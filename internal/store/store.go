// Package store provides PostgreSQL access for profiles, credentials,
// and generated document pairs.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/brunnokenzokillaruna/careertrackpro-sub000/internal/generation"
	"github.com/brunnokenzokillaruna/careertrackpro-sub000/internal/types"
)

// Store wraps a PostgreSQL connection pool. It satisfies the
// orchestrator's ProfileStore and CredentialStore interfaces.
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool and verifies it with a ping.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// GetProfile loads the user's profile snapshot from its JSONB column.
// A missing row is generation.ErrNotFound; the orchestrator degrades
// to placeholder data.
func (s *Store) GetProfile(ctx context.Context, userID uuid.UUID) (*types.ProfileSnapshot, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx,
		`SELECT snapshot FROM profiles WHERE user_id = $1`,
		userID,
	).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, generation.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	var profile types.ProfileSnapshot
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile snapshot: %w", err)
	}
	return &profile, nil
}

// SaveProfile upserts the user's profile snapshot.
func (s *Store) SaveProfile(ctx context.Context, userID uuid.UUID, profile *types.ProfileSnapshot) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile snapshot: %w", err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO profiles (user_id, snapshot)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id) DO UPDATE SET snapshot = $2, updated_at = NOW()`,
		userID, raw,
	)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// ListCredentials returns the user's stored API credentials, oldest
// first so the first entry is the stable fallback choice.
func (s *Store) ListCredentials(ctx context.Context, userID uuid.UUID) ([]types.CredentialRef, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, display_name, secret FROM credentials
		 WHERE user_id = $1
		 ORDER BY created_at ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list credentials: %w", err)
	}
	defer rows.Close()

	var creds []types.CredentialRef
	for rows.Next() {
		var c types.CredentialRef
		if err := rows.Scan(&c.ID, &c.DisplayName, &c.Secret); err != nil {
			return nil, fmt.Errorf("failed to scan credential: %w", err)
		}
		creds = append(creds, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read credentials: %w", err)
	}
	return creds, nil
}

// DefaultCredentialID returns the user's default credential id, if one
// is set.
func (s *Store) DefaultCredentialID(ctx context.Context, userID uuid.UUID) (uuid.UUID, bool, error) {
	var id uuid.UUID
	err := s.pool.QueryRow(ctx,
		`SELECT id FROM credentials WHERE user_id = $1 AND is_default = TRUE`,
		userID,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, false, nil
		}
		return uuid.Nil, false, fmt.Errorf("failed to get default credential: %w", err)
	}
	return id, true, nil
}

// SaveCredential stores a credential. Setting it as default clears the
// previous default inside the same transaction.
func (s *Store) SaveCredential(ctx context.Context, userID uuid.UUID, cred types.CredentialRef, isDefault bool) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if isDefault {
		if _, err := tx.Exec(ctx,
			`UPDATE credentials SET is_default = FALSE WHERE user_id = $1`, userID,
		); err != nil {
			return fmt.Errorf("failed to clear default credential: %w", err)
		}
	}
	if _, err := tx.Exec(ctx,
		`INSERT INTO credentials (id, user_id, display_name, secret, is_default)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (id) DO UPDATE SET display_name = $3, secret = $4, is_default = $5`,
		cred.ID, userID, cred.DisplayName, cred.Secret, isDefault,
	); err != nil {
		return fmt.Errorf("failed to save credential: %w", err)
	}
	return tx.Commit(ctx)
}

// SaveResult stores a generated document pair. Regeneration for the
// same application replaces the previous pair wholesale.
func (s *Store) SaveResult(ctx context.Context, userID uuid.UUID, app types.ApplicationContext, result *generation.Result) (uuid.UUID, error) {
	raw, err := json.Marshal(result)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to encode result: %w", err)
	}

	var id uuid.UUID
	err = s.pool.QueryRow(ctx,
		`INSERT INTO generated_documents (user_id, company, position, source, content)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (user_id, company, position)
		 DO UPDATE SET source = $4, content = $5, created_at = NOW()
		 RETURNING id`,
		userID, app.Company, app.Position, string(result.Source), raw,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save result: %w", err)
	}
	return id, nil
}

// GetResult retrieves a stored document pair by id.
func (s *Store) GetResult(ctx context.Context, id uuid.UUID) (*generation.Result, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx,
		`SELECT content FROM generated_documents WHERE id = $1`,
		id,
	).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, generation.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get result: %w", err)
	}

	var result generation.Result
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("failed to decode result: %w", err)
	}
	return &result, nil
}
