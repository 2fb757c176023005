package session

import (
	"context"
	"crypto/cipher"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/cardscan/internal/client/models"
	"github.com/dmitrijs2005/cardscan/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/cardscan/internal/cryptox"
	"github.com/dmitrijs2005/cardscan/internal/dbx"
)

// SQLiteStore keeps the session in the metadata table of the local database.
// Writes run in a single transaction so readers never see a half-written or
// half-cleared session.
type SQLiteStore struct {
	db   *sql.DB
	aead cipher.AEAD
}

// NewSQLiteStore returns a store over db. A non-empty passphrase enables
// encryption of the stored values; the key derivation salt is created on
// first use and kept in the same table.
func NewSQLiteStore(ctx context.Context, db *sql.DB, passphrase string) (*SQLiteStore, error) {
	s := &SQLiteStore{db: db}
	if passphrase == "" {
		return s, nil
	}

	salt, err := metadata.LoadOrCreateSalt(ctx, metadata.NewSQLiteRepository(db))
	if err != nil {
		return nil, fmt.Errorf("session salt: %w", err)
	}

	key := cryptox.DeriveKey([]byte(passphrase), salt)
	aead, err := cryptox.NewAEAD(key)
	if err != nil {
		return nil, fmt.Errorf("session cipher: %w", err)
	}
	s.aead = aead
	return s, nil
}

func (s *SQLiteStore) repo(tx dbx.DBTX) metadata.Repository {
	var r metadata.Repository = metadata.NewSQLiteRepository(tx)
	if s.aead != nil {
		r = metadata.NewEncryptedRepository(r, s.aead)
	}
	return r
}

func (s *SQLiteStore) IsAuthenticated(ctx context.Context) bool {
	u, err := s.CurrentUser(ctx)
	return err == nil && u.Valid()
}

func (s *SQLiteStore) CurrentUser(ctx context.Context) (*models.Session, error) {
	var out *models.Session

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := s.repo(tx)

		values := make(map[string]string, len(Keys))
		for _, k := range Keys {
			v, err := r.Get(ctx, k)
			if errors.Is(err, metadata.ErrNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			values[k] = string(v)
		}

		if values[KeyUserSub] == "" {
			return nil
		}

		out = &models.Session{
			UserID:      values[KeyUserSub],
			DisplayName: values[KeyUserName],
			Email:       values[KeyUserEmail],
			AccessToken: values[KeyAccessToken],
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	return out, nil
}

func (s *SQLiteStore) Save(ctx context.Context, sess models.Session) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := s.repo(tx)
		for k, v := range fields(sess) {
			if err := r.Set(ctx, k, []byte(v)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repo(tx).Delete(ctx, Keys...)
	})
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func fields(s models.Session) map[string]string {
	return map[string]string{
		KeyAccessToken: s.AccessToken,
		KeyUserSub:     s.UserID,
		KeyUserEmail:   s.Email,
		KeyUserName:    s.DisplayName,
	}
}
