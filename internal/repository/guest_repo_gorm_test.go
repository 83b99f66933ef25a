package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wedding/guesthub/internal/model"
	"wedding/guesthub/internal/testutil"
)

func newGuest(name, slug, qr string) *model.Guest {
	return &model.Guest{
		Name:         name,
		Category:     model.GuestCategoryRegular,
		Slug:         slug,
		QRCodeString: qr,
		RSVPStatus:   model.RSVPStatusPending,
		GuestCount:   1,
	}
}

func strPtr(s string) *string { return &s }

func TestGuestRepositoryCreateAndLookup(t *testing.T) {
	ctx := context.Background()
	repo := NewGormGuestRepository(testutil.NewDB(t))

	g := newGuest("Jane Doe", "jane-doe-abcdef12", "QX7P2")
	require.NoError(t, repo.Create(ctx, g))
	require.NotZero(t, g.ID)

	bySlug, err := repo.GetBySlug(ctx, "jane-doe-abcdef12")
	require.NoError(t, err)
	assert.Equal(t, g.ID, bySlug.ID)

	byQR, err := repo.GetByQRCode(ctx, "QX7P2")
	require.NoError(t, err)
	assert.Equal(t, g.ID, byQR.ID)

	byID, err := repo.GetByID(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", byID.Name)
	assert.Nil(t, byID.CheckInTime)

	_, err = repo.GetBySlug(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.GetByQRCode(ctx, "ZZZZZ")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.GetByID(ctx, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGuestRepositoryCreateConflicts(t *testing.T) {
	ctx := context.Background()
	repo := NewGormGuestRepository(testutil.NewDB(t))

	require.NoError(t, repo.Create(ctx, newGuest("A", "a-11111111", "AAAAA")))

	err := repo.Create(ctx, newGuest("B", "a-11111111", "BBBBB"))
	assert.ErrorIs(t, err, ErrConflict)

	err = repo.Create(ctx, newGuest("C", "c-22222222", "AAAAA"))
	assert.ErrorIs(t, err, ErrConflict)
}

func TestGuestRepositoryUpdateRSVP(t *testing.T) {
	ctx := context.Background()
	repo := NewGormGuestRepository(testutil.NewDB(t))

	g := newGuest("Jane", "jane-11111111", "JJJJJ")
	g.PhoneNumber = strPtr("0811111111")
	require.NoError(t, repo.Create(ctx, g))

	updated, err := repo.UpdateRSVP(ctx, g.ID, RSVPUpdate{Status: model.RSVPStatusComing, GuestCount: 3})
	require.NoError(t, err)
	assert.Equal(t, model.RSVPStatusComing, updated.RSVPStatus)
	assert.Equal(t, 3, updated.GuestCount)
	require.NotNil(t, updated.PhoneNumber)
	assert.Equal(t, "0811111111", *updated.PhoneNumber)

	updated, err = repo.UpdateRSVP(ctx, g.ID, RSVPUpdate{Status: model.RSVPStatusNotComing, GuestCount: 1, PhoneNumber: strPtr("0822222222")})
	require.NoError(t, err)
	assert.Equal(t, "0822222222", *updated.PhoneNumber)

	_, err = repo.UpdateRSVP(ctx, 9999, RSVPUpdate{Status: model.RSVPStatusComing, GuestCount: 1})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGuestRepositoryUpdateDetailsKeepsIdentifiers(t *testing.T) {
	ctx := context.Background()
	repo := NewGormGuestRepository(testutil.NewDB(t))

	g := newGuest("Old", "old-11111111", "OOOOO")
	g.PhoneNumber = strPtr("0811")
	require.NoError(t, repo.Create(ctx, g))

	updated, err := repo.UpdateDetails(ctx, g.ID, GuestDetails{Name: "New", Category: model.GuestCategoryVIP})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Name)
	assert.Equal(t, model.GuestCategoryVIP, updated.Category)
	assert.Nil(t, updated.PhoneNumber)
	assert.Equal(t, "old-11111111", updated.Slug)
	assert.Equal(t, "OOOOO", updated.QRCodeString)
}

func TestGuestRepositoryCheckInKeepsFirstTime(t *testing.T) {
	ctx := context.Background()
	repo := NewGormGuestRepository(testutil.NewDB(t))

	g := newGuest("Jane", "jane-11111111", "JJJJJ")
	require.NoError(t, repo.Create(ctx, g))

	first := time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)
	checked, already, err := repo.CheckIn(ctx, g.ID, "", first)
	require.NoError(t, err)
	assert.False(t, already)
	require.NotNil(t, checked.CheckInTime)
	assert.True(t, checked.CheckInTime.Equal(first))
	require.NotNil(t, checked.GiftType)
	assert.Equal(t, model.DefaultGiftType, *checked.GiftType)

	again, already, err := repo.CheckIn(ctx, g.ID, "Envelope", first.Add(time.Hour))
	require.NoError(t, err)
	assert.True(t, already)
	assert.True(t, again.CheckInTime.Equal(first))
	assert.Equal(t, "Envelope", *again.GiftType)

	again, already, err = repo.CheckIn(ctx, g.ID, "", first.Add(2*time.Hour))
	require.NoError(t, err)
	assert.True(t, already)
	assert.Equal(t, "Envelope", *again.GiftType)

	_, _, err = repo.CheckIn(ctx, 9999, "", first)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGuestRepositoryCheckInConcurrentFirstScans(t *testing.T) {
	ctx := context.Background()
	repo := NewGormGuestRepository(testutil.NewDB(t))

	g := newGuest("Rina", "rina-11111111", "RRRRR")
	require.NoError(t, repo.Create(ctx, g))

	const scanners = 8
	at := time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)
	results := make(chan bool, scanners)
	errs := make(chan error, scanners)

	var wg sync.WaitGroup
	for i := 0; i < scanners; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, already, err := repo.CheckIn(ctx, g.ID, "", at.Add(time.Duration(i)*time.Second))
			errs <- err
			results <- already
		}(i)
	}
	wg.Wait()
	close(results)
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	firsts := 0
	for already := range results {
		if !already {
			firsts++
		}
	}
	assert.Equal(t, 1, firsts, "exactly one scan is the first check-in")
}

func TestGuestRepositoryDeleteCascadesWishes(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	guests := NewGormGuestRepository(db)
	wishes := NewGormWishRepository(db)

	g := newGuest("Jane", "jane-11111111", "JJJJJ")
	require.NoError(t, guests.Create(ctx, g))
	other := newGuest("John", "john-11111111", "KKKKK")
	require.NoError(t, guests.Create(ctx, other))

	require.NoError(t, wishes.Create(ctx, &model.Wish{GuestID: g.ID, Message: "congrats"}))
	require.NoError(t, wishes.Create(ctx, &model.Wish{GuestID: other.ID, Message: "best wishes"}))

	require.NoError(t, guests.Delete(ctx, g.ID))

	_, err := guests.GetByID(ctx, g.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	all, err := wishes.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, other.ID, all[0].GuestID)

	assert.ErrorIs(t, guests.Delete(ctx, g.ID), ErrNotFound)
}

func TestGuestRepositoryListAndStats(t *testing.T) {
	ctx := context.Background()
	repo := NewGormGuestRepository(testutil.NewDB(t))

	vip := newGuest("Alice VIP", "alice-11111111", "AAAAA")
	vip.Category = model.GuestCategoryVIP
	vip.RSVPStatus = model.RSVPStatusComing
	vip.GuestCount = 2
	require.NoError(t, repo.Create(ctx, vip))

	bob := newGuest("Bob", "bob-11111111", "BBBBB")
	bob.RSVPStatus = model.RSVPStatusNotComing
	require.NoError(t, repo.Create(ctx, bob))

	carol := newGuest("Carol", "carol-11111111", "CCCCC")
	carol.RSVPStatus = model.RSVPStatusComing
	carol.GuestCount = 3
	require.NoError(t, repo.Create(ctx, carol))

	_, _, err := repo.CheckIn(ctx, carol.ID, "Gift", time.Now())
	require.NoError(t, err)

	all, err := repo.List(ctx, GuestFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, carol.ID, all[0].ID, "newest first")

	vips, err := repo.List(ctx, GuestFilter{Category: model.GuestCategoryVIP})
	require.NoError(t, err)
	require.Len(t, vips, 1)
	assert.Equal(t, vip.ID, vips[0].ID)

	yes := true
	checked, err := repo.List(ctx, GuestFilter{CheckedIn: &yes})
	require.NoError(t, err)
	require.Len(t, checked, 1)
	assert.Equal(t, carol.ID, checked[0].ID)

	byName, err := repo.List(ctx, GuestFilter{Query: "BO"})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, bob.ID, byName[0].ID)

	byIDs, err := repo.List(ctx, GuestFilter{IDs: []uint{vip.ID, bob.ID}})
	require.NoError(t, err)
	assert.Len(t, byIDs, 2)

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, GuestStats{
		TotalGuests:    3,
		VIPGuests:      1,
		RegularGuests:  2,
		RSVPComing:     2,
		RSVPNotComing:  1,
		RSVPPending:    0,
		CheckedIn:      1,
		ExpectedPeople: 5,
	}, *stats)
}
