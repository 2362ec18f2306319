package cohort

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/afyalink/afyalink/internal/domain/catalog"
	"github.com/afyalink/afyalink/internal/platform/tablestore"
)

type failingMirror struct{ calls int }

func (m *failingMirror) MirrorDataset(ctx context.Context, d *Dataset) error {
	m.calls++
	return errors.New("connection refused")
}

func newTestService(t *testing.T, mirror Mirror) *Service {
	t.Helper()
	store, err := tablestore.New(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cat := catalog.NewService(store)
	if err := cat.Bootstrap(); err != nil {
		t.Fatalf("catalog bootstrap: %v", err)
	}
	return NewService(store, cat, testConfig(), mirror, zerolog.Nop())
}

func TestService_BootstrapGenerates(t *testing.T) {
	svc := newTestService(t, nil)
	if err := svc.Bootstrap(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	d, err := svc.Dataset()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.Patients) != testConfig().NumPatients {
		t.Fatalf("expected %d patients, got %d", testConfig().NumPatients, len(d.Patients))
	}
}

func TestService_BootstrapReloadsExisting(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()
	if err := svc.Bootstrap(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first, _ := svc.Dataset()

	// A second bootstrap against the same store must load, not regenerate.
	svc2 := NewService(svc.store, svc.catalog, testConfig(), nil, zerolog.Nop())
	if err := svc2.Bootstrap(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, _ := svc2.Dataset()

	if first.Summary() != second.Summary() {
		t.Fatalf("bootstrap regenerated instead of reloading: %+v vs %+v",
			first.Summary(), second.Summary())
	}
	if first.Patients[0] != second.Patients[0] {
		t.Fatal("first patient differs after reload")
	}
}

func TestService_RegenerateRejectsInvalidConfig(t *testing.T) {
	svc := newTestService(t, nil)
	cfg := testConfig()
	cfg.NumPatients = 0
	if _, err := svc.Regenerate(context.Background(), cfg); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestService_MirrorFailureStillPublishes(t *testing.T) {
	mirror := &failingMirror{}
	svc := newTestService(t, mirror)

	sum, err := svc.Regenerate(context.Background(), testConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mirror.calls != 1 {
		t.Fatalf("mirror called %d times, want 1", mirror.calls)
	}
	if sum.Patients == 0 {
		t.Fatal("expected a published summary despite mirror failure")
	}
	if _, err := svc.Dataset(); err != nil {
		t.Fatalf("dataset not published: %v", err)
	}
}

func TestService_DatasetBeforeBootstrap(t *testing.T) {
	svc := newTestService(t, nil)
	if _, err := svc.Dataset(); !errors.Is(err, ErrNoDataset) {
		t.Fatalf("expected ErrNoDataset, got %v", err)
	}
}
