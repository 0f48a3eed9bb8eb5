// Package session owns the signed-in identity of the TeachLoop client.
//
// The Controller reconstructs the identity from an existing remote session
// at startup, signs users up, in and out, and applies profile edits. It is
// the single writer of that state: commands are serialized, and every
// transition is published to subscribers as a Snapshot.
package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/teachloop/internal/client/models"
	"github.com/dmitrijs2005/teachloop/internal/logging"
)

// DefaultRole is the role tag given to profiles created at signup.
const DefaultRole = "student"

// IdentityService is the account/session backend.
// CurrentPrincipal returns (nil, nil) when there is no session.
type IdentityService interface {
	CreateAccount(ctx context.Context, email, password, displayName string) (*models.Principal, error)
	StartSession(ctx context.Context, email, password string) error
	EndSession(ctx context.Context) error
	CurrentPrincipal(ctx context.Context) (*models.Principal, error)
}

// ProfileStore keeps one profile per principal.
type ProfileStore interface {
	CreateProfile(ctx context.Context, principalID string, fields models.ProfileFields) (*models.Profile, error)
	GetProfile(ctx context.Context, principalID string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, principalID string, patch models.ProfilePatch) (*models.Profile, error)
}

type State int

const (
	Unbootstrapped State = iota
	Bootstrapping
	Anonymous
	Authenticated
)

func (s State) String() string {
	switch s {
	case Bootstrapping:
		return "bootstrapping"
	case Anonymous:
		return "anonymous"
	case Authenticated:
		return "authenticated"
	default:
		return "unbootstrapped"
	}
}

// Snapshot is a copy of the controller state. Identity is nil when nobody is
// signed in.
type Snapshot struct {
	State    State
	Settled  bool
	Identity *Identity
}

type Controller struct {
	identity IdentityService
	profiles ProfileStore
	logger   logging.Logger

	// cmd serializes commands; mu guards the fields below it.
	cmd sync.Mutex

	mu          sync.RWMutex
	state       State
	settled     bool
	current     *Identity
	subscribers map[int]chan Snapshot
	nextSub     int
}

func New(identity IdentityService, profiles ProfileStore, logger logging.Logger) *Controller {
	return &Controller{
		identity:    identity,
		profiles:    profiles,
		logger:      logger.With("module", "session"),
		subscribers: map[int]chan Snapshot{},
	}
}

// Snapshot returns the current state. It never waits for a running command.
func (c *Controller) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{State: c.state, Settled: c.settled, Identity: c.current.Clone()}
}

// Subscribe returns a channel that receives a Snapshot after every
// transition, starting with the current one. Slow readers only see the
// latest snapshot. The returned func unsubscribes and closes the channel.
func (c *Controller) Subscribe() (<-chan Snapshot, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ch := make(chan Snapshot, 1)
	id := c.nextSub
	c.nextSub++
	c.subscribers[id] = ch
	ch <- c.snapshotLocked()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			delete(c.subscribers, id)
			close(ch)
		})
	}
}

// transition replaces the state and notifies subscribers.
func (c *Controller) transition(state State, identity *Identity) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = state
	c.current = identity
	if state == Anonymous || state == Authenticated {
		c.settled = true
	}

	snap := c.snapshotLocked()
	for _, ch := range c.subscribers {
		select {
		case <-ch:
		default:
		}
		ch <- snap
	}
}

func (c *Controller) currentIdentity() *Identity {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// Bootstrap rebuilds the identity from the remote session, if any. A
// missing or unreadable profile yields a principal-only identity and a
// Degraded result. When the principal cannot be read at all the controller
// settles as Anonymous and the error is returned.
func (c *Controller) Bootstrap(ctx context.Context) (Result, error) {
	c.cmd.Lock()
	defer c.cmd.Unlock()

	c.transition(Bootstrapping, nil)

	f := &flow{c: c}
	res, err := f.run(ctx, "bootstrap", bootstrapPipeline)
	if err != nil || f.principal == nil {
		c.transition(Anonymous, nil)
		return res, err
	}

	c.transition(Authenticated, merge(f.principal, f.profile))
	c.logger.Info(ctx, "session restored", "principal_id", f.principal.ID, "outcome", res.Outcome.String())
	return res, nil
}

// Login starts a session and reconciles the identity. On failure the
// identity is left as it was.
func (c *Controller) Login(ctx context.Context, email, password string) (Result, error) {
	c.cmd.Lock()
	defer c.cmd.Unlock()

	f := &flow{c: c, email: email, password: password}
	res, err := f.run(ctx, "login", loginPipeline)
	if err != nil {
		return res, err
	}

	c.transition(Authenticated, merge(f.principal, f.profile))
	c.logger.Info(ctx, "signed in", "principal_id", f.principal.ID, "outcome", res.Outcome.String())
	return res, nil
}

// Signup creates the account, signs in and provisions a default profile.
// Once the account exists and a session is open the call succeeds; a failed
// profile step only degrades the result.
func (c *Controller) Signup(ctx context.Context, email, password, displayName string) (Result, error) {
	c.cmd.Lock()
	defer c.cmd.Unlock()

	f := &flow{c: c, email: email, password: password, displayName: displayName}
	res, err := f.run(ctx, "signup", signupPipeline)
	if err != nil {
		return res, err
	}

	c.transition(Authenticated, merge(f.principal, f.profile))
	c.logger.Info(ctx, "signed up", "principal_id", f.principal.ID, "outcome", res.Outcome.String())
	return res, nil
}

// Logout ends the remote session. The identity is only cleared when that
// succeeds.
func (c *Controller) Logout(ctx context.Context) (Result, error) {
	c.cmd.Lock()
	defer c.cmd.Unlock()

	res := Result{Op: "logout", Outcome: Succeeded}
	err := c.identity.EndSession(ctx)
	res.Steps = append(res.Steps, StepReport{Name: StepEndSession, Policy: Fatal, Err: err})
	if err != nil {
		res.Outcome = Failed
		return res, classify(StepEndSession, err)
	}

	c.transition(Anonymous, nil)
	c.logger.Info(ctx, "signed out")
	return res, nil
}

// UpdateProfile sends patch for the signed-in principal and, once the store
// accepts it, applies the same fields to the local identity without
// re-fetching.
func (c *Controller) UpdateProfile(ctx context.Context, patch models.ProfilePatch) (Result, error) {
	c.cmd.Lock()
	defer c.cmd.Unlock()

	res := Result{Op: "update-profile", Outcome: Succeeded}

	current := c.currentIdentity()
	if current == nil {
		res.Outcome = Failed
		return res, &Error{Kind: KindUnknown, Op: StepUpdateProfile, Err: ErrNotAuthenticated}
	}

	_, err := c.profiles.UpdateProfile(ctx, current.PrincipalID, patch)
	res.Steps = append(res.Steps, StepReport{Name: StepUpdateProfile, Policy: Fatal, Err: err})
	if err != nil {
		res.Outcome = Failed
		return res, classify(StepUpdateProfile, err)
	}

	c.transition(Authenticated, current.withPatch(patch))
	return res, nil
}
