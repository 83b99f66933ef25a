package service

import (
	"testing"

	"go.uber.org/zap"

	"wedding/guesthub/internal/repository"
	"wedding/guesthub/internal/testutil"
)

type fixture struct {
	guests   repository.GuestRepository
	wishes   repository.WishRepository
	settings repository.EventSettingsRepository
	admins   repository.AdminRepository
	logger   *zap.Logger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewDB(t)
	return &fixture{
		guests:   repository.NewGormGuestRepository(db),
		wishes:   repository.NewGormWishRepository(db),
		settings: repository.NewGormEventSettingsRepository(db),
		admins:   repository.NewGormAdminRepository(db),
		logger:   zap.NewNop(),
	}
}

// qrSequence yields the given tokens in order and then repeats the last one.
func qrSequence(tokens ...string) func(int) (string, error) {
	i := 0
	return func(int) (string, error) {
		tok := tokens[i]
		if i < len(tokens)-1 {
			i++
		}
		return tok, nil
	}
}

func fixedSlug(slug string) func(string) string {
	return func(string) string { return slug }
}

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }
