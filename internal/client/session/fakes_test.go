package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/teachloop/internal/client/client"
	"github.com/dmitrijs2005/teachloop/internal/client/models"
	"github.com/dmitrijs2005/teachloop/internal/logging"
)

type account struct {
	principal models.Principal
	password  string
}

// backend plays both the identity service and the profile store, with the
// error shapes the gRPC client produces.
type backend struct {
	mu       sync.Mutex
	accounts map[string]*account // by email
	profiles map[string]*models.Profile
	current  *models.Principal
	seq      int

	createAccountErr error
	startSessionErr  error
	endSessionErr    error
	currentErr       error
	createProfileErr error
	getProfileErr    error
	updateProfileErr error

	// startSessionGate, when set, blocks StartSession until closed.
	startSessionGate chan struct{}
	startSessionSeen chan struct{}

	updates []models.ProfilePatch
}

func newBackend() *backend {
	return &backend{accounts: map[string]*account{}, profiles: map[string]*models.Profile{}}
}

func (b *backend) CreateAccount(_ context.Context, email, password, displayName string) (*models.Principal, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.createAccountErr != nil {
		return nil, b.createAccountErr
	}
	if _, ok := b.accounts[email]; ok {
		return nil, fmt.Errorf("%w: account already exists", client.ErrAlreadyExists)
	}
	b.seq++
	p := models.Principal{
		ID:          fmt.Sprintf("u%d", b.seq),
		DisplayName: displayName,
		Email:       email,
		CreatedAt:   time.Unix(int64(b.seq), 0).UTC(),
		UpdatedAt:   time.Unix(int64(b.seq), 0).UTC(),
	}
	b.accounts[email] = &account{principal: p, password: password}
	out := p
	return &out, nil
}

func (b *backend) StartSession(_ context.Context, email, password string) error {
	if b.startSessionSeen != nil {
		close(b.startSessionSeen)
	}
	if b.startSessionGate != nil {
		<-b.startSessionGate
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.startSessionErr != nil {
		return b.startSessionErr
	}
	a, ok := b.accounts[email]
	if !ok || a.password != password {
		return fmt.Errorf("%w: invalid credentials", client.ErrUnauthorized)
	}
	p := a.principal
	b.current = &p
	return nil
}

func (b *backend) EndSession(context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.endSessionErr != nil {
		return b.endSessionErr
	}
	b.current = nil
	return nil
}

func (b *backend) CurrentPrincipal(context.Context) (*models.Principal, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.currentErr != nil {
		return nil, b.currentErr
	}
	if b.current == nil {
		return nil, nil
	}
	p := *b.current
	return &p, nil
}

func (b *backend) CreateProfile(_ context.Context, principalID string, f models.ProfileFields) (*models.Profile, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.createProfileErr != nil {
		return nil, b.createProfileErr
	}
	if _, ok := b.profiles[principalID]; ok {
		return nil, fmt.Errorf("%w: profile already exists", client.ErrAlreadyExists)
	}
	p := &models.Profile{
		PrincipalID: principalID,
		DisplayName: f.DisplayName,
		Email:       f.Email,
		Bio:         f.Bio,
		TeachSkills: f.TeachSkills,
		LearnSkills: f.LearnSkills,
		Role:        f.Role,
		Avatar:      f.Avatar,
	}
	b.profiles[principalID] = p
	out := *p
	return &out, nil
}

func (b *backend) GetProfile(_ context.Context, principalID string) (*models.Profile, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.getProfileErr != nil {
		return nil, b.getProfileErr
	}
	p, ok := b.profiles[principalID]
	if !ok {
		return nil, fmt.Errorf("%w: profile not found", client.ErrNotFound)
	}
	out := *p
	return &out, nil
}

func (b *backend) UpdateProfile(_ context.Context, principalID string, patch models.ProfilePatch) (*models.Profile, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.updates = append(b.updates, patch)
	if b.updateProfileErr != nil {
		return nil, b.updateProfileErr
	}
	p, ok := b.profiles[principalID]
	if !ok {
		return nil, fmt.Errorf("%w: profile not found", client.ErrNotFound)
	}
	if patch.Bio != nil {
		p.Bio = patch.Bio
	}
	out := *p
	return &out, nil
}

// seed registers an account with a profile and, when signedIn, a session.
func (b *backend) seed(email, password string, signedIn bool, prof *models.Profile) models.Principal {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.seq++
	p := models.Principal{ID: fmt.Sprintf("u%d", b.seq), DisplayName: "Principal Name", Email: email}
	b.accounts[email] = &account{principal: p, password: password}
	if prof != nil {
		prof.PrincipalID = p.ID
		b.profiles[p.ID] = prof
	}
	if signedIn {
		cp := p
		b.current = &cp
	}
	return p
}

type logEntry struct {
	level string
	msg   string
	args  []any
}

type recLogger struct {
	mu      sync.Mutex
	entries *[]logEntry
}

func newRecLogger() *recLogger {
	return &recLogger{entries: &[]logEntry{}}
}

func (l *recLogger) add(level, msg string, args []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	*l.entries = append(*l.entries, logEntry{level, msg, args})
}

func (l *recLogger) Debug(_ context.Context, msg string, args ...any) { l.add("debug", msg, args) }
func (l *recLogger) Info(_ context.Context, msg string, args ...any)  { l.add("info", msg, args) }
func (l *recLogger) Warn(_ context.Context, msg string, args ...any)  { l.add("warn", msg, args) }
func (l *recLogger) Error(_ context.Context, msg string, args ...any) { l.add("error", msg, args) }
func (l *recLogger) With(...any) logging.Logger                       { return l }

func (l *recLogger) count(level string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, e := range *l.entries {
		if e.level == level {
			n++
		}
	}
	return n
}

func strPtr(s string) *string { return &s }
