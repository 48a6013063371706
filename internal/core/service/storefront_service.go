package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/fruito/storefront/internal/api/metrics"
	"github.com/fruito/storefront/internal/core/domain"
	"github.com/fruito/storefront/internal/core/ports"
)

// StorefrontService orchestrates backend calls with session writes. Every
// identity write happens inside the operation, before the handler redirects.
type StorefrontService struct {
	gateway  ports.Gateway
	sessions ports.SessionStore
	logger   zerolog.Logger
}

func NewStorefrontService(gateway ports.Gateway, sessions ports.SessionStore, logger zerolog.Logger) *StorefrontService {
	return &StorefrontService{gateway: gateway, sessions: sessions, logger: logger}
}

// Signup creates the account and deliberately persists nothing: the visitor
// is sent to the login page afterwards, same as the storefront always did.
func (s *StorefrontService) Signup(ctx context.Context, name, email, password string) error {
	if _, err := s.gateway.SignupUser(ctx, name, email, password); err != nil {
		return err
	}
	s.logger.Info().Str("email", email).Msg("account created")
	return nil
}

// Login authenticates against the backend and stores the returned payload
// verbatim under the session's user key.
func (s *StorefrontService) Login(ctx context.Context, sid, email, password string) error {
	payload, err := s.gateway.LoginUser(ctx, email, password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("user", "failure").Inc()
		return err
	}
	if err := s.sessions.SetUser(ctx, sid, payload); err != nil {
		return fmt.Errorf("persist user session: %w", err)
	}
	metrics.LoginsTotal.WithLabelValues("user", "success").Inc()
	s.logger.Info().Str("email", email).Msg("user logged in")
	return nil
}

// Logout removes the user payload. The admin flag is left alone: the two are
// independent pieces of session state and no route clears the flag.
func (s *StorefrontService) Logout(ctx context.Context, sid string) error {
	return s.sessions.ClearUser(ctx, sid)
}

// AdminLogin records only a boolean marker on success. No admin profile or
// token is retained; product creation re-sends credentials anyway.
func (s *StorefrontService) AdminLogin(ctx context.Context, sid, email, password string) error {
	if err := s.gateway.LoginAdmin(ctx, email, password); err != nil {
		metrics.LoginsTotal.WithLabelValues("admin", "failure").Inc()
		return err
	}
	if err := s.sessions.SetAdminFlag(ctx, sid); err != nil {
		return fmt.Errorf("persist admin flag: %w", err)
	}
	metrics.LoginsTotal.WithLabelValues("admin", "success").Inc()
	s.logger.Info().Str("email", email).Msg("admin logged in")
	return nil
}

// Browse fetches the product list fresh on every call.
func (s *StorefrontService) Browse(ctx context.Context) ([]domain.Product, error) {
	return s.gateway.ListProducts(ctx)
}

// AddProduct forwards fields and credentials to the backend without any local
// validation or authorization check; the backend decides.
func (s *StorefrontService) AddProduct(ctx context.Context, fields domain.ProductFields, creds domain.AdminCredentials) error {
	if _, err := s.gateway.CreateProduct(ctx, fields, creds); err != nil {
		return err
	}
	metrics.ProductsCreatedTotal.Inc()
	s.logger.Info().Str("name", fields.Name).Msg("product created")
	return nil
}

// CurrentIdentity reads both session keys for page chrome. A store failure is
// logged and degrades to guest; a broken session never breaks a render.
func (s *StorefrontService) CurrentIdentity(ctx context.Context, sid string) domain.Identity {
	var identity domain.Identity

	payload, err := s.sessions.GetUser(ctx, sid)
	if err != nil {
		s.logger.Warn().Err(err).Msg("session read failed, treating as guest")
	} else if payload != nil {
		identity.User = &domain.UserIdentity{Raw: payload}
	}

	admin, err := s.sessions.GetAdminFlag(ctx, sid)
	if err != nil {
		s.logger.Warn().Err(err).Msg("admin flag read failed, treating as unset")
	}
	identity.Admin = admin

	return identity
}

// IsAdmin reports the session's admin flag. Errors degrade to false, so the
// dashboard gate fails toward the public gate page.
func (s *StorefrontService) IsAdmin(ctx context.Context, sid string) bool {
	admin, err := s.sessions.GetAdminFlag(ctx, sid)
	if err != nil {
		s.logger.Warn().Err(err).Msg("admin flag read failed, treating as unset")
		return false
	}
	return admin
}
