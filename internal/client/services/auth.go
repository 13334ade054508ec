// Package services contains application services for the fleetkeeper client.
// This file defines access control: session resolution, login, logout, role
// queries and operation gating.
package services

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrijs2005/fleetkeeper/internal/client/models"
	"github.com/dmitrijs2005/fleetkeeper/internal/client/store"
	"github.com/dmitrijs2005/fleetkeeper/internal/common"
	"github.com/dmitrijs2005/fleetkeeper/internal/logging"
	"github.com/dmitrijs2005/fleetkeeper/internal/metrics"
)

// AuthState is the access-control state machine position.
type AuthState int

const (
	StateUnresolved AuthState = iota
	StateAuthenticating
	StateAuthenticated
	StateUnauthenticated
)

func (s AuthState) String() string {
	switch s {
	case StateUnresolved:
		return "unresolved"
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	}
	return fmt.Sprintf("AuthState(%d)", int(s))
}

// Decision is the outcome of gating an operation.
type Decision int

const (
	Allow Decision = iota
	// RedirectLogin: nobody is signed in.
	RedirectLogin
	// RedirectHome: signed in, but the role is not allowed.
	RedirectHome
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect-login"
	case RedirectHome:
		return "redirect-home"
	}
	return fmt.Sprintf("Decision(%d)", int(d))
}

// AuthStatus is what the view layer renders.
type AuthStatus struct {
	State    AuthState
	Identity models.User
	Loading  bool
	Err      error
}

// AccessControl resolves the signed-in identity and answers role questions.
//
// Contract:
//   - Resolve: restore a saved session at startup; failures degrade to
//     unauthenticated and are never returned.
//   - Login: exact email/password match; false on mismatch, error only on
//     storage failure.
//   - Logout: forget the saved session.
//   - HasRole/Authorize/Can/Require: role gating, false or denied unless
//     authenticated.
type AccessControl interface {
	Resolve(ctx context.Context)
	Login(ctx context.Context, email, password string) (bool, error)
	Logout(ctx context.Context) error

	State() AuthState
	Identity() (models.User, bool)
	Status() AuthStatus

	HasRole(roles ...models.Role) bool
	Authorize(ctx context.Context, allowed ...models.Role) Decision
	Can(p Permission) bool
	Require(ctx context.Context, p Permission) error
}

// UserLoader loads the full users collection.
type UserLoader interface {
	Load(ctx context.Context) ([]models.User, error)
}

// SessionStore persists the current identity.
type SessionStore interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any) error
	Remove(ctx context.Context, key string) error
}

type accessControl struct {
	users   UserLoader
	session SessionStore
	log     logging.Logger
	metrics *metrics.Metrics

	mu       sync.RWMutex
	state    AuthState
	identity models.User
	err      error
}

// NewAccessControl constructs AccessControl in the unresolved state.
// m may be nil.
func NewAccessControl(users UserLoader, session SessionStore, log logging.Logger, m *metrics.Metrics) AccessControl {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &accessControl{
		users:   users,
		session: session,
		log:     log.With("component", "access"),
		metrics: m,
		state:   StateUnresolved,
	}
}

func (a *accessControl) Resolve(ctx context.Context) {
	a.transition(StateAuthenticating, models.User{}, nil)

	var saved models.User
	found, err := a.session.Get(ctx, store.KeyCurrentUser, &saved)
	switch {
	case err != nil:
		a.log.Error(ctx, "session could not be restored", "error", err)
		a.transition(StateUnauthenticated, models.User{}, err)
	case !found || saved.ID == "":
		a.transition(StateUnauthenticated, models.User{}, nil)
	default:
		a.log.Info(ctx, "session restored", "email", saved.Email, "role", saved.Role)
		a.transition(StateAuthenticated, saved, nil)
	}
}

func (a *accessControl) Login(ctx context.Context, email, password string) (ok bool, err error) {
	defer func() { a.metrics.ObserveLogin(ok, err) }()

	a.transition(StateAuthenticating, models.User{}, nil)

	all, err := a.users.Load(ctx)
	if err != nil {
		err = fmt.Errorf("login: %w", err)
		a.log.Error(ctx, "login failed", "error", err)
		a.signOut(ctx, err)
		return false, err
	}

	i := slices.IndexFunc(all, func(u models.User) bool {
		return u.Email == email && u.Password == password
	})
	if i < 0 {
		a.log.Warn(ctx, "login rejected", "email", email)
		a.signOut(ctx, nil)
		return false, nil
	}

	identity := all[i]
	identity.Password = ""
	if err := a.session.Set(ctx, store.KeyCurrentUser, identity); err != nil {
		err = fmt.Errorf("save session: %w", err)
		a.log.Error(ctx, "login failed", "error", err)
		a.signOut(ctx, err)
		return false, err
	}

	a.log.Info(ctx, "login succeeded", "email", identity.Email, "role", identity.Role)
	a.transition(StateAuthenticated, identity, nil)
	return true, nil
}

// signOut drops any saved session so a restart cannot resurrect an identity
// this instance no longer holds. A failed removal is logged only.
func (a *accessControl) signOut(ctx context.Context, cause error) {
	if err := a.session.Remove(ctx, store.KeyCurrentUser); err != nil {
		a.log.Error(ctx, "session could not be removed", "error", err)
	}
	a.transition(StateUnauthenticated, models.User{}, cause)
}

// Logout always ends unauthenticated; the error reports a session that
// could not be removed from storage.
func (a *accessControl) Logout(ctx context.Context) error {
	err := a.session.Remove(ctx, store.KeyCurrentUser)
	if err != nil {
		err = fmt.Errorf("logout: %w", err)
		a.log.Error(ctx, "logout failed", "error", err)
	} else {
		a.log.Info(ctx, "logged out")
	}
	a.transition(StateUnauthenticated, models.User{}, err)
	return err
}

func (a *accessControl) State() AuthState {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state
}

func (a *accessControl) Identity() (models.User, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.identity, a.state == StateAuthenticated
}

func (a *accessControl) Status() AuthStatus {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return AuthStatus{
		State:    a.state,
		Identity: a.identity,
		Loading:  a.state == StateUnresolved || a.state == StateAuthenticating,
		Err:      a.err,
	}
}

func (a *accessControl) HasRole(roles ...models.Role) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state == StateAuthenticated && slices.Contains(roles, a.identity.Role)
}

// Authorize gates an operation. With no roles any signed-in identity is
// allowed. Role denials are logged as warnings only.
func (a *accessControl) Authorize(ctx context.Context, allowed ...models.Role) Decision {
	identity, ok := a.Identity()
	if !ok {
		return RedirectLogin
	}
	if len(allowed) == 0 || slices.Contains(allowed, identity.Role) {
		return Allow
	}
	a.log.Warn(ctx, "access denied", "role", identity.Role, "required", joinRoles(allowed))
	return RedirectHome
}

func (a *accessControl) Can(p Permission) bool {
	return a.HasRole(RolesFor(p)...)
}

// Require maps Authorize onto errors: common.ErrorUnauthorized when nobody
// is signed in, common.ErrorForbidden when the role lacks p.
func (a *accessControl) Require(ctx context.Context, p Permission) error {
	roles := RolesFor(p)
	if len(roles) == 0 {
		if _, ok := a.Identity(); !ok {
			return fmt.Errorf("%w: sign in first", common.ErrorUnauthorized)
		}
		return fmt.Errorf("%w: %s", common.ErrorForbidden, p)
	}
	switch a.Authorize(ctx, roles...) {
	case RedirectLogin:
		return fmt.Errorf("%w: sign in first", common.ErrorUnauthorized)
	case RedirectHome:
		return fmt.Errorf("%w: %s requires %s", common.ErrorForbidden, p, joinRoles(roles))
	}
	return nil
}

func (a *accessControl) transition(state AuthState, identity models.User, err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.state = state
	a.identity = identity
	a.err = err
}

func joinRoles(roles []models.Role) string {
	parts := make([]string, len(roles))
	for i, r := range roles {
		parts[i] = string(r)
	}
	return strings.Join(parts, ", ")
}
