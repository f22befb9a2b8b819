package credentials

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	awscredentials "github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/de-tools/cost-compass/pkg/models/domain"
	"gopkg.in/ini.v1"
)

const profileSection = "default"

// Store is the single authoritative holder of the active AWS credential.
// The in-memory value is backed by one ini profile file - the only durable
// state the pipeline writes. A corrupt or incomplete file is cleared and
// treated as "no credentials"; corruption never reaches callers as an error.
type Store struct {
	mu   sync.Mutex
	path string
	rec  *domain.CredentialRecord
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Set validates and stores the record, replacing any previous one.
func (s *Store) Set(record domain.CredentialRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist(record); err != nil {
		return fmt.Errorf("failed to persist credentials: %w", err)
	}
	s.rec = &record
	return nil
}

// Get returns the active credential, loading it from the persisted slot on
// first use. Returns nil when no credential exists.
func (s *Store) Get() *domain.CredentialRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rec != nil {
		rec := *s.rec
		return &rec
	}

	rec := s.load()
	if rec == nil {
		return nil
	}
	s.rec = rec
	out := *rec
	return &out
}

// Clear removes the credential from memory and from the persisted slot.
// Idempotent.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec = nil
	_ = os.Remove(s.path)
}

func (s *Store) Has() bool {
	return s.Get() != nil
}

// AWSConfig derives the SDK client config for the stored credential.
// Returns a ConfigurationError when no credential exists.
func (s *Store) AWSConfig(ctx context.Context) (awssdk.Config, error) {
	rec := s.Get()
	if rec == nil {
		return awssdk.Config{}, &domain.ConfigurationError{Reason: "aws credentials not configured"}
	}

	return config.LoadDefaultConfig(ctx,
		config.WithRegion(rec.Region),
		config.WithCredentialsProvider(awscredentials.NewStaticCredentialsProvider(
			rec.AccessKeyID, rec.SecretAccessKey, rec.SessionToken,
		)),
	)
}

func (s *Store) persist(record domain.CredentialRecord) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}

	cfg := ini.Empty()
	section := cfg.Section(profileSection)
	section.Key("aws_access_key_id").SetValue(record.AccessKeyID)
	section.Key("aws_secret_access_key").SetValue(record.SecretAccessKey)
	section.Key("region").SetValue(record.Region)
	if record.SessionToken != "" {
		section.Key("aws_session_token").SetValue(record.SessionToken)
	}

	var buf bytes.Buffer
	if _, err := cfg.WriteTo(&buf); err != nil {
		return err
	}
	return os.WriteFile(s.path, buf.Bytes(), 0o600)
}

// load deserializes the persisted slot. Any parse failure or missing
// required key clears the slot so corruption cannot recur.
func (s *Store) load() *domain.CredentialRecord {
	if _, err := os.Stat(s.path); err != nil {
		return nil
	}

	cfg, err := ini.Load(s.path)
	if err != nil {
		_ = os.Remove(s.path)
		return nil
	}

	section := cfg.Section(profileSection)
	rec := domain.CredentialRecord{
		AccessKeyID:     section.Key("aws_access_key_id").String(),
		SecretAccessKey: section.Key("aws_secret_access_key").String(),
		Region:          section.Key("region").String(),
		SessionToken:    section.Key("aws_session_token").String(),
	}

	if err := rec.Validate(); err != nil {
		_ = os.Remove(s.path)
		return nil
	}
	return &rec
}
