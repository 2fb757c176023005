package metadata

import (
	"context"
	"crypto/cipher"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/cardscan/internal/common"
	"github.com/dmitrijs2005/cardscan/internal/cryptox"
)

// EncryptedRepository seals values before they reach the inner repository.
// Keys stay in clear text; every value is bound to its key as additional data
// so values cannot be swapped between keys.
type EncryptedRepository struct {
	inner Repository
	aead  cipher.AEAD
}

func NewEncryptedRepository(inner Repository, aead cipher.AEAD) *EncryptedRepository {
	return &EncryptedRepository{inner: inner, aead: aead}
}

func (r *EncryptedRepository) Get(ctx context.Context, key string) ([]byte, error) {
	sealed, err := r.inner.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	plain, err := cryptox.Open(r.aead, sealed, []byte(key))
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt metadata[%s]: %w", key, err)
	}
	return plain, nil
}

func (r *EncryptedRepository) Set(ctx context.Context, key string, value []byte) error {
	sealed, err := cryptox.Seal(r.aead, value, []byte(key))
	if err != nil {
		return fmt.Errorf("failed to encrypt metadata[%s]: %w", key, err)
	}
	return r.inner.Set(ctx, key, sealed)
}

func (r *EncryptedRepository) Delete(ctx context.Context, keys ...string) error {
	return r.inner.Delete(ctx, keys...)
}

// List skips values that do not decrypt, such as the clear-text KDF salt
// stored next to the sealed values.
func (r *EncryptedRepository) List(ctx context.Context) (map[string][]byte, error) {
	all, err := r.inner.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]byte, len(all))
	for k, v := range all {
		plain, err := cryptox.Open(r.aead, v, []byte(k))
		if err != nil {
			continue
		}
		out[k] = plain
	}
	return out, nil
}

func (r *EncryptedRepository) Clear(ctx context.Context) error {
	return r.inner.Clear(ctx)
}

// SaltKey is the clear-text key under which the KDF salt is stored.
const SaltKey = "kdf_salt"

// LoadOrCreateSalt returns the stored KDF salt, generating and saving one on
// first use.
func LoadOrCreateSalt(ctx context.Context, repo Repository) ([]byte, error) {
	salt, err := repo.Get(ctx, SaltKey)
	if err == nil && len(salt) == cryptox.SaltSize {
		return salt, nil
	}
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	salt = common.GenerateRandByteArray(cryptox.SaltSize)
	if err := repo.Set(ctx, SaltKey, salt); err != nil {
		return nil, err
	}
	return salt, nil
}
