// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/clip-vault/internal/crypto"
	"github.com/MKhiriev/clip-vault/internal/logger"
	"github.com/MKhiriev/clip-vault/internal/store"
	"github.com/MKhiriev/clip-vault/internal/validators"
	"github.com/MKhiriev/clip-vault/models"
)

type vaultSession struct {
	store     store.VaultStore
	keychain  crypto.KeyChainService
	validator validators.Validator
	ids       IDGenerator
	logger    *logger.Logger
	now       func() time.Time

	// mu serializes every transition and guards the fields below.
	mu         sync.Mutex
	state      atomic.Int32
	salt       []byte
	key        []byte
	collection models.Collection
}

// NewVaultSession returns a session over vaultStore. The initial state is
// Locked when the store already holds a vault and Uninitialized otherwise.
// A record that can't be decoded still counts as a vault: the session starts
// Locked so that Reset stays reachable.
func NewVaultSession(
	ctx context.Context,
	vaultStore store.VaultStore,
	keychain crypto.KeyChainService,
	validator validators.Validator,
	ids IDGenerator,
	logger *logger.Logger,
) (VaultSession, error) {
	s := &vaultSession{
		store:     vaultStore,
		keychain:  keychain,
		validator: validator,
		ids:       ids,
		logger:    logger,
		now:       time.Now,
	}

	initialized, err := vaultStore.IsInitialized(ctx)
	switch {
	case errors.Is(err, store.ErrCorruptRecord):
		logger.Warn().Err(err).Str("func", "NewVaultSession").Msg("vault record is unreadable")
		initialized = true
	case err != nil:
		logger.Err(err).Str("func", "NewVaultSession").Msg("failed to inspect vault storage")
		return nil, mapStoreError(err)
	}
	if initialized {
		s.setState(StateLocked)
	} else {
		s.setState(StateUninitialized)
	}

	return s, nil
}

func (s *vaultSession) State() State {
	return State(s.state.Load())
}

func (s *vaultSession) setState(st State) {
	s.state.Store(int32(st))
}

func (s *vaultSession) Setup(ctx context.Context, pin string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if st := s.State(); st != StateUninitialized {
		return fmt.Errorf("%w: setup in state %s", ErrState, st)
	}
	if err := validators.ValidatePIN(pin); err != nil {
		return mapValidationError(err)
	}

	initialized, err := s.store.IsInitialized(ctx)
	switch {
	case errors.Is(err, store.ErrCorruptRecord):
		initialized = true
	case err != nil:
		return mapStoreError(err)
	}
	if initialized {
		s.setState(StateLocked)
		return fmt.Errorf("%w: vault already exists", ErrState)
	}

	salt, err := s.keychain.GenerateSalt()
	if err != nil {
		return fmt.Errorf("%w: generate salt: %w", ErrPersistence, err)
	}
	key, err := s.keychain.DeriveKey(pin, salt)
	if err != nil {
		return mapDeriveError(err)
	}

	empty := models.Collection{}
	envelope, err := s.keychain.Encrypt(empty, key)
	if err != nil {
		crypto.Zero(key)
		return fmt.Errorf("%w: encrypt collection: %w", ErrPersistence, err)
	}
	if err = s.store.Save(ctx, salt, envelope); err != nil {
		crypto.Zero(key)
		s.logger.Err(err).Str("func", "vaultSession.Setup").Msg("failed to persist new vault")
		return mapStoreError(err)
	}

	s.adopt(salt, key, empty)
	s.logger.Info().Str("func", "vaultSession.Setup").Msg("vault created")
	return nil
}

func (s *vaultSession) Unlock(ctx context.Context, pin string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if st := s.State(); st != StateLocked {
		return fmt.Errorf("%w: unlock in state %s", ErrState, st)
	}
	if err := validators.ValidatePIN(pin); err != nil {
		return mapValidationError(err)
	}

	rec, err := s.store.Load(ctx)
	if errors.Is(err, store.ErrCorruptRecord) {
		s.logger.Warn().Err(err).Str("func", "vaultSession.Unlock").Msg("unlock attempt rejected")
		return ErrAuthenticationFailed
	}
	if err != nil {
		s.logger.Err(err).Str("func", "vaultSession.Unlock").Msg("failed to load vault record")
		return mapStoreError(err)
	}
	if !rec.Initialized() {
		s.setState(StateUninitialized)
		return fmt.Errorf("%w: vault is not initialized", ErrState)
	}

	s.setState(StateUnlocking)
	collection, key, err := s.open(rec, pin)
	if err != nil {
		s.setState(StateLocked)
		s.logger.Warn().Str("func", "vaultSession.Unlock").Msg("unlock attempt rejected")
		return err
	}

	s.adopt(rec.Salt, key, collection)
	s.logger.Info().Str("func", "vaultSession.Unlock").Int("snippets", len(collection)).Msg("vault unlocked")

	return s.reconcilePending(ctx)
}

// open derives the key for pin and decrypts the envelope of rec. Any
// decryption problem is reported as ErrAuthenticationFailed.
func (s *vaultSession) open(rec models.VaultRecord, pin string) (models.Collection, []byte, error) {
	key, err := s.keychain.DeriveKey(pin, rec.Salt)
	if err != nil {
		return nil, nil, mapDeriveError(err)
	}
	if rec.EncryptedData == nil {
		crypto.Zero(key)
		return nil, nil, ErrAuthenticationFailed
	}

	var collection models.Collection
	if err = s.keychain.Decrypt(*rec.EncryptedData, key, &collection); err != nil {
		crypto.Zero(key)
		return nil, nil, ErrAuthenticationFailed
	}
	if collection == nil {
		collection = models.Collection{}
	}

	return collection, key, nil
}

func (s *vaultSession) Lock() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.State() != StateUnlocked {
		return
	}
	s.drop()
	s.setState(StateLocked)
	s.logger.Info().Str("func", "vaultSession.Lock").Msg("vault locked")
}

func (s *vaultSession) Mutate(ctx context.Context, fn MutateFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if st := s.State(); st != StateUnlocked {
		return fmt.Errorf("%w: mutate in state %s", ErrState, st)
	}
	return s.mutateLocked(ctx, fn)
}

func (s *vaultSession) mutateLocked(ctx context.Context, fn MutateFunc) error {
	next, err := fn(s.collection.Clone())
	if err != nil {
		return err
	}
	if next == nil {
		next = models.Collection{}
	}
	if err = s.validator.Validate(ctx, next); err != nil {
		return mapValidationError(err)
	}

	s.collection = next
	return s.persistLocked(ctx)
}

// persistLocked seals the in-memory collection under the session key and
// writes it together with the current salt.
func (s *vaultSession) persistLocked(ctx context.Context) error {
	envelope, err := s.keychain.Encrypt(s.collection, s.key)
	if err != nil {
		return fmt.Errorf("%w: encrypt collection: %w", ErrPersistence, err)
	}
	if err = s.store.Save(ctx, s.salt, envelope); err != nil {
		s.logger.Err(err).Str("func", "vaultSession.persistLocked").Msg("failed to persist collection")
		return mapStoreError(err)
	}
	return nil
}

func (s *vaultSession) Rekey(ctx context.Context, newPIN string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if st := s.State(); st != StateUnlocked {
		return fmt.Errorf("%w: rekey in state %s", ErrState, st)
	}
	if err := validators.ValidatePIN(newPIN); err != nil {
		return mapValidationError(err)
	}

	salt, err := s.keychain.GenerateSalt()
	if err != nil {
		return fmt.Errorf("%w: generate salt: %w", ErrPersistence, err)
	}
	key, err := s.keychain.DeriveKey(newPIN, salt)
	if err != nil {
		return mapDeriveError(err)
	}
	envelope, err := s.keychain.Encrypt(s.collection, key)
	if err != nil {
		crypto.Zero(key)
		return fmt.Errorf("%w: encrypt collection: %w", ErrPersistence, err)
	}

	// salt and envelope go out in one write; the old key stays active
	// until it is confirmed
	if err = s.store.Save(ctx, salt, envelope); err != nil {
		crypto.Zero(key)
		s.logger.Err(err).Str("func", "vaultSession.Rekey").Msg("failed to persist re-keyed vault")
		return mapStoreError(err)
	}

	crypto.Zero(s.key)
	s.key, s.salt = key, salt
	s.logger.Info().Str("func", "vaultSession.Rekey").Msg("vault re-keyed")
	return nil
}

func (s *vaultSession) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Reset(ctx); err != nil {
		s.logger.Err(err).Str("func", "vaultSession.Reset").Msg("failed to erase vault")
		return mapStoreError(err)
	}

	s.drop()
	s.setState(StateUninitialized)
	s.logger.Info().Str("func", "vaultSession.Reset").Msg("vault erased")
	return nil
}

func (s *vaultSession) Snippets() (models.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if st := s.State(); st != StateUnlocked {
		return nil, fmt.Errorf("%w: read in state %s", ErrState, st)
	}
	return s.collection.Clone(), nil
}

func (s *vaultSession) Snippet(id string) (models.Snippet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if st := s.State(); st != StateUnlocked {
		return models.Snippet{}, fmt.Errorf("%w: read in state %s", ErrState, st)
	}
	i := s.collection.IndexOf(id)
	if i < 0 {
		return models.Snippet{}, fmt.Errorf("%w: %s", ErrSnippetNotFound, id)
	}
	return s.collection[i : i+1].Clone()[0], nil
}

// adopt installs a new (key, collection) pair. The caller holds mu.
func (s *vaultSession) adopt(salt, key []byte, collection models.Collection) {
	s.salt = append([]byte(nil), salt...)
	s.key = key
	s.collection = collection
	s.setState(StateUnlocked)
}

// drop wipes the key and forgets the collection. The caller holds mu.
func (s *vaultSession) drop() {
	crypto.Zero(s.key)
	s.key = nil
	s.salt = nil
	s.collection = nil
}
