package catalog

import (
	"errors"
	"fmt"
	"sync"

	"github.com/afyalink/afyalink/internal/platform/tablestore"
)

var ErrUserNotFound = errors.New("catalog: user not found")

// Service owns the in-memory roster and its CSV persistence. Reads and
// regeneration are coordinated through a single RWMutex.
type Service struct {
	mu    sync.RWMutex
	store *tablestore.Store
	sites []Site
	users []User
}

func NewService(store *tablestore.Store) *Service {
	return &Service{store: store}
}

// Bootstrap loads the roster from the store, generating and persisting it
// if no snapshot exists yet.
func (s *Service) Bootstrap() error {
	if s.store.HasTable("sites") && s.store.HasTable("users") {
		return s.Load()
	}
	return s.Regenerate()
}

// Regenerate rebuilds the roster from the fixed seed and persists it.
func (s *Service) Regenerate() error {
	gen := NewGenerator(RosterSeed)
	sites := gen.GenerateSites()
	users, err := gen.GenerateUsers(sites)
	if err != nil {
		return fmt.Errorf("generate roster: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sites = sites
	s.users = users
	return s.saveLocked()
}

func (s *Service) saveLocked() error {
	siteRows := make([][]string, len(s.sites))
	for i, site := range s.sites {
		siteRows[i] = site.Record()
	}
	if err := s.store.WriteTable("sites", SiteHeader(), siteRows); err != nil {
		return fmt.Errorf("persist sites: %w", err)
	}

	userRows := make([][]string, len(s.users))
	for i, u := range s.users {
		userRows[i] = u.Record()
	}
	if err := s.store.WriteTable("users", UserHeader(), userRows); err != nil {
		return fmt.Errorf("persist users: %w", err)
	}
	return nil
}

// Load replaces the in-memory roster with the stored snapshot.
func (s *Service) Load() error {
	_, siteRows, err := s.store.ReadTable("sites")
	if err != nil {
		return fmt.Errorf("load sites: %w", err)
	}
	sites := make([]Site, 0, len(siteRows))
	for _, rec := range siteRows {
		site, err := SiteFromRecord(rec)
		if err != nil {
			return fmt.Errorf("parse site row: %w", err)
		}
		sites = append(sites, site)
	}

	_, userRows, err := s.store.ReadTable("users")
	if err != nil {
		return fmt.Errorf("load users: %w", err)
	}
	users := make([]User, 0, len(userRows))
	for _, rec := range userRows {
		u, err := UserFromRecord(rec)
		if err != nil {
			return fmt.Errorf("parse user row: %w", err)
		}
		users = append(users, u)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sites = sites
	s.users = users
	return nil
}

// Sites returns a copy of the site roster.
func (s *Service) Sites() []Site {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Site, len(s.sites))
	copy(out, s.sites)
	return out
}

// Users returns a copy of the user roster.
func (s *Service) Users() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]User, len(s.users))
	copy(out, s.users)
	return out
}

// UserCount returns the total number of users.
func (s *Service) UserCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// ActiveCounts returns the number of active sites and active users, the
// signal the activity monitor tracks between runs.
func (s *Service) ActiveCounts() (sites, users int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, site := range s.sites {
		if site.IsActive {
			sites++
		}
	}
	for _, u := range s.users {
		if u.IsActive {
			users++
		}
	}
	return sites, users
}

// FindUserByEmail looks up a user for signin.
func (s *Service) FindUserByEmail(email string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return User{}, ErrUserNotFound
}

// RegisterUser appends a user with the next sequential id and persists
// the roster.
func (s *Service) RegisterUser(name, email, passwordHash, role string, siteID int) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return User{}, fmt.Errorf("catalog: email %s already registered", email)
		}
	}

	u := User{
		ID:           len(s.users) + 1,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		SiteID:       siteID,
		IsActive:     true,
	}
	for _, site := range s.sites {
		if site.SiteID == siteID {
			u.Organisation = organisationFor(site.Name)
			break
		}
	}
	s.users = append(s.users, u)
	if err := s.saveLocked(); err != nil {
		return User{}, err
	}
	return u, nil
}
