// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/arcent/internal/adapter"
	"github.com/MKhiriev/arcent/internal/config"
	"github.com/MKhiriev/arcent/internal/crash"
	"github.com/MKhiriev/arcent/internal/logger"
	"github.com/MKhiriev/arcent/internal/session"
	"github.com/MKhiriev/arcent/internal/utils"
	"github.com/MKhiriev/arcent/models"
)

const loginRetryDelay = 250 * time.Millisecond

// loginResponse is the body returned by the login function.
type loginResponse struct {
	Success bool            `json:"success"`
	Session *models.Session `json:"session"`
}

type authService struct {
	client     adapter.BaaSAdapter
	profiles   ProfileStorage
	sessions   SessionStorage
	repository RepositoryControl
	events     EventSink
	reporter   crash.Reporter
	cfg        config.Auth
	logger     *logger.Logger

	now        func() time.Time
	loginDelay time.Duration
}

func NewAuthService(
	client adapter.BaaSAdapter,
	profiles ProfileStorage,
	sessions SessionStorage,
	repository RepositoryControl,
	events EventSink,
	reporter crash.Reporter,
	cfg config.Auth,
	logger *logger.Logger,
) AuthService {
	return &authService{
		client:     client,
		profiles:   profiles,
		sessions:   sessions,
		repository: repository,
		events:     events,
		reporter:   reporter,
		cfg:        cfg,
		logger:     logger,
		now:        time.Now,
		loginDelay: loginRetryDelay,
	}
}

func (a *authService) LoginWithGoogle(ctx context.Context, idToken string) error {
	if _, err := utils.ParseIDToken(idToken, a.now()); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidIDToken, err)
	}

	a.reporter.Breadcrumb(ctx, "auth: google_login_start")

	ctx, cancel := context.WithTimeout(ctx, a.cfg.LoginTimeout)
	defer cancel()

	sess, err := a.executeLogin(ctx, idToken)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = fmt.Errorf("%w: %w", ErrLoginTimeout, err)
		}
		a.reporter.Capture(ctx, "auth.login", err)
		return err
	}

	if err := a.sessions.Save(ctx, sess); err != nil {
		return fmt.Errorf("%w: %w", ErrSavingSession, err)
	}
	a.client.SetSession(sess.Secret)

	// a different account may have signed in
	a.repository.ResetRemoteCache()

	if err := a.FetchAndCacheProfile(ctx); err != nil {
		return err
	}

	a.events.Fire(session.AuthSignedIn)
	return nil
}

// executeLogin runs the login function until it yields a session secret or
// the attempts run out.
func (a *authService) executeLogin(ctx context.Context, idToken string) (models.Session, error) {
	body, err := json.Marshal(map[string]string{"idToken": idToken})
	if err != nil {
		return models.Session{}, fmt.Errorf("marshal login body: %w", err)
	}

	attempts := max(a.cfg.LoginAttempts, 1)
	backoff := retry.WithMaxRetries(uint64(attempts-1), retry.NewConstant(positive(a.loginDelay, loginRetryDelay)))

	var (
		sess    models.Session
		attempt int
		lastErr error
	)
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		a.reporter.Breadcrumb(ctx, fmt.Sprintf("auth: google_login_attempt_%d", attempt))

		execution, err := a.client.CreateExecution(ctx, string(body))
		if err != nil {
			lastErr = err
			a.reporter.Capture(ctx, "auth.login_execution", err)
			return retry.RetryableError(err)
		}

		s, err := parseLoginResponse(execution.ResponseBody)
		if err != nil {
			lastErr = err
			a.logger.Err(err).Str("func", "authService.executeLogin").Int("attempt", attempt).Msg("unusable login response")
			return retry.RetryableError(err)
		}

		sess = s
		return nil
	})
	if err != nil {
		if ctx.Err() != nil {
			return models.Session{}, ctx.Err()
		}
		return models.Session{}, fmt.Errorf("%w after %d attempts: %w", ErrLoginFailed, attempt, lastErr)
	}

	a.reporter.Breadcrumb(ctx, fmt.Sprintf("auth: google_login_success_attempt_%d", attempt))
	return sess, nil
}

func parseLoginResponse(raw string) (models.Session, error) {
	if strings.TrimSpace(raw) == "" {
		return models.Session{}, fmt.Errorf("%w: empty response", ErrNoLoginSession)
	}

	var resp loginResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrNoLoginSession, err)
	}
	if !resp.Success {
		return models.Session{}, fmt.Errorf("%w: not successful", ErrNoLoginSession)
	}
	if resp.Session == nil || strings.TrimSpace(resp.Session.Secret) == "" {
		return models.Session{}, fmt.Errorf("%w: no secret", ErrNoLoginSession)
	}

	return *resp.Session, nil
}

func (a *authService) FetchAndCacheProfile(ctx context.Context) error {
	cached, err := a.profiles.Load(ctx)
	if err != nil {
		cached = nil
	}
	var existingAvatar *string
	if cached != nil {
		existingAvatar = cached.AvatarPath
	}

	backoff := retry.NewExponential(positive(a.cfg.ProfileBaseDelay, 500*time.Millisecond))
	backoff = retry.WithCappedDuration(positive(a.cfg.ProfileMaxDelay, 8*time.Second), backoff)
	backoff = retry.WithMaxRetries(uint64(max(a.cfg.ProfileAttempts, 1)-1), backoff)

	attempt := 0
	var (
		account    models.Account
		hasSession bool
	)
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		a.reporter.Breadcrumb(ctx, fmt.Sprintf("profile_fetch: attempt_%d", attempt))

		sess, err := a.sessions.Load(ctx)
		if err != nil || sess == nil {
			// nothing to fetch without a session
			return nil
		}
		hasSession = true
		a.client.SetSession(sess.Secret)

		account, err = a.client.GetAccount(ctx)
		if err != nil {
			a.reporter.Capture(ctx, "auth.profile_fetch", err)
			return retry.RetryableError(err)
		}
		return nil
	})

	if err == nil && !hasSession {
		return nil
	}

	profile := models.UserProfile{Provider: models.ProviderGoogle, AvatarPath: existingAvatar}
	if err != nil {
		a.logger.Err(err).Str("func", "authService.FetchAndCacheProfile").Int("attempts", attempt).
			Msg("profile fetch exhausted, keeping cached profile")
		if cached != nil {
			profile.Name = cached.Name
		}
	} else {
		profile.Name = strings.TrimSpace(account.Name)
		if url := account.AvatarURL(); url != "" {
			profile.AvatarPath = &url
		}
	}

	if err := a.profiles.Save(ctx, profile); err != nil {
		return fmt.Errorf("%w: %w", ErrSavingProfile, err)
	}
	return nil
}

func (a *authService) HasActiveSession(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, a.cfg.LoginTimeout)
	defer cancel()

	sess, err := a.sessions.Load(ctx)
	if err != nil || sess == nil {
		return false
	}

	a.client.SetSession(sess.Secret)
	if _, err := a.client.GetAccount(ctx); err != nil {
		a.logger.Err(err).Str("func", "authService.HasActiveSession").Msg("stored session rejected")
		return false
	}
	return true
}

func (a *authService) UseLocal(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) < models.MinProfileNameLength {
		return ErrNameTooShort
	}

	if err := a.profiles.Save(ctx, models.UserProfile{Name: name, Provider: models.ProviderLocal}); err != nil {
		return fmt.Errorf("%w: %w", ErrSavingProfile, err)
	}

	a.events.Fire(session.AuthLocalMode)
	return nil
}

func (a *authService) Profile(ctx context.Context) (*models.UserProfile, error) {
	return a.profiles.Load(ctx)
}

func (a *authService) Logout(ctx context.Context) error {
	err := errors.Join(
		a.sessions.Clear(ctx),
		a.profiles.Clear(ctx),
	)

	a.client.SetSession("")
	a.repository.ResetRemoteCache()
	a.events.Fire(session.AuthSignedOut)

	if err != nil {
		return fmt.Errorf("%w: %w", ErrClearingIdentity, err)
	}
	return nil
}

func (a *authService) DeleteLocalData(ctx context.Context) error {
	wipeErr := a.repository.WipeLocal(ctx)
	if wipeErr != nil {
		// already reported by the local store
		a.logger.Err(wipeErr).Str("func", "authService.DeleteLocalData").Msg("local wipe degraded")
	}

	return errors.Join(wipeErr, a.Logout(ctx))
}

// positive guards the backoff constructors, which reject non-positive
// durations.
func positive(d, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}
	return d
}
