package usecase

import (
	"errors"
	"testing"

	"github.com/cahanap/cj-s-table-cipher/internal/domain"
)

type fakeInitializer struct {
	root  string
	force bool
	err   error
}

func (f *fakeInitializer) Init(root string, force bool) error {
	f.root = root
	f.force = force
	return f.err
}

func TestInitConfig_DelegatesToInitializer(t *testing.T) {
	fi := &fakeInitializer{}
	if err := NewInitConfig(fi).Execute("/tmp/x", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fi.root != "/tmp/x" || !fi.force {
		t.Fatalf("unexpected call: %+v", fi)
	}
}

func TestInitConfig_EmptyRoot(t *testing.T) {
	fi := &fakeInitializer{}
	err := NewInitConfig(fi).Execute("  ", false)
	if !domain.IsKind(err, domain.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if fi.root != "" {
		t.Fatalf("initializer must not be called")
	}
}

func TestInitConfig_PropagatesError(t *testing.T) {
	boom := errors.New("disk full")
	err := NewInitConfig(&fakeInitializer{err: boom}).Execute("/tmp/x", false)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}
