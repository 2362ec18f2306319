package catalog

import (
	"errors"
	"testing"

	"github.com/afyalink/afyalink/internal/platform/tablestore"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	store, err := tablestore.New(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return NewService(store)
}

func TestService_BootstrapGeneratesRoster(t *testing.T) {
	svc := newTestService(t)
	if err := svc.Bootstrap(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(svc.Sites()) == 0 {
		t.Fatal("expected sites after bootstrap")
	}
	if svc.UserCount() != len(svc.Sites())*UsersPerSite {
		t.Errorf("expected %d users, got %d", len(svc.Sites())*UsersPerSite, svc.UserCount())
	}
}

func TestService_BootstrapReloadsSnapshot(t *testing.T) {
	store, err := tablestore.New(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first := NewService(store)
	if err := first.Bootstrap(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantSites := first.Sites()

	second := NewService(store)
	if err := second.Bootstrap(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	gotSites := second.Sites()

	if len(gotSites) != len(wantSites) {
		t.Fatalf("expected %d sites after reload, got %d", len(wantSites), len(gotSites))
	}
	for i := range wantSites {
		if gotSites[i] != wantSites[i] {
			t.Fatalf("site %d changed across reload: %+v vs %+v", i, wantSites[i], gotSites[i])
		}
	}
}

func TestService_ActiveCounts(t *testing.T) {
	svc := newTestService(t)
	if err := svc.Bootstrap(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	activeSites, activeUsers := svc.ActiveCounts()
	if activeSites <= 0 || activeSites > len(svc.Sites()) {
		t.Errorf("active sites out of range: %d", activeSites)
	}
	if activeUsers <= 0 || activeUsers > svc.UserCount() {
		t.Errorf("active users out of range: %d", activeUsers)
	}
}

func TestService_FindUserByEmail(t *testing.T) {
	svc := newTestService(t)
	if err := svc.Bootstrap(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := svc.Users()[0]
	got, err := svc.FindUserByEmail(want.Email)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != want.ID {
		t.Errorf("expected user %d, got %d", want.ID, got.ID)
	}

	if _, err := svc.FindUserByEmail("nobody@example.com"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestService_RegisterUser(t *testing.T) {
	svc := newTestService(t)
	if err := svc.Bootstrap(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	before := svc.UserCount()
	u, err := svc.RegisterUser("Grace Wanjiru", "grace.wanjiru@example.com", "hash", "Nurse", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.ID != before+1 {
		t.Errorf("expected sequential id %d, got %d", before+1, u.ID)
	}
	if u.Organisation == "" {
		t.Error("expected organisation resolved from site")
	}

	if _, err := svc.RegisterUser("Other", "grace.wanjiru@example.com", "hash", "CHV", 2); err == nil {
		t.Error("expected duplicate email rejection")
	}
}
