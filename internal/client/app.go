package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-doc-vault/internal/access"
	"github.com/MKhiriev/go-doc-vault/internal/branch"
	"github.com/MKhiriev/go-doc-vault/internal/config"
	"github.com/MKhiriev/go-doc-vault/internal/crypto"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/store"
	"github.com/MKhiriev/go-doc-vault/internal/tui"
	"github.com/MKhiriev/go-doc-vault/internal/workers"
)

type App struct {
	cfg    *config.ClientConfig
	logger *logger.Logger
}

func NewApp(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, errors.New("client app: nil config")
	}
	return &App{cfg: cfg, logger: log}, nil
}

// Run drives the whole client lifecycle: passphrase, identity, relay
// session, background inbox sync, then the document screens.
func (a *App) Run() error {
	ctx := context.Background()

	remote := store.NewRemoteStore(store.RemoteConfig{
		BaseURL: a.cfg.Relay.URL,
		Timeout: a.cfg.Relay.RequestTimeout,
	})
	keys := crypto.NewKeyManager()
	acl := access.NewAccessControl(remote, keys, a.logger)
	eng := branch.NewEngine(remote, keys, acl, a.logger)

	ui, err := tui.New(acl, eng, a.logger)
	if err != nil {
		return fmt.Errorf("create ui: %w", err)
	}

	passphrase, err := ui.UnlockFlow(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		return nil
	}
	if err != nil {
		return err
	}

	salt, err := loadOrCreateSalt(a.cfg.Identity.SaltFile)
	if err != nil {
		return fmt.Errorf("identity salt: %w", err)
	}

	// Один и тот же passphrase+salt всегда даёт одну и ту же identity.
	identity, err := crypto.IdentityFromPassphrase(a.cfg.Identity.Name, passphrase, salt)
	if err != nil {
		return fmt.Errorf("derive identity: %w", err)
	}

	if err = remote.Authenticate(ctx, identity); err != nil {
		return fmt.Errorf("relay session: %w", err)
	}

	sess, err := access.NewSession(identity)
	if err != nil {
		return fmt.Errorf("open session: %w", err)
	}

	if err = acl.PublishIdentity(ctx, identity); err != nil {
		return fmt.Errorf("publish identity: %w", err)
	}

	if _, err = acl.SyncInbox(ctx, sess); err != nil {
		a.logger.Warn().Err(err).Msg("initial inbox sync failed")
	}

	syncWorker := workers.NewSyncWorker(acl, sess, a.cfg.Workers.SyncInterval, a.logger)
	workers.NewWorkers(syncWorker).Run()
	defer syncWorker.Stop()

	return ui.MainLoop(ctx, sess)
}

// loadOrCreateSalt reads the identity derivation salt, generating and
// persisting a fresh one on first run.
func loadOrCreateSalt(path string) ([]byte, error) {
	salt, err := os.ReadFile(path)
	if err == nil {
		if len(salt) != crypto.SaltSize {
			return nil, fmt.Errorf("salt file %s: unexpected size %d", path, len(salt))
		}
		return salt, nil
	}
	if !os.IsNotExist(err) {
		return nil, err
	}

	salt, err = crypto.GenerateSalt()
	if err != nil {
		return nil, err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err = os.MkdirAll(dir, 0o700); err != nil {
			return nil, err
		}
	}
	if err = os.WriteFile(path, salt, 0o600); err != nil {
		return nil, err
	}
	return salt, nil
}
