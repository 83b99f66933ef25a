package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wedding/guesthub/internal/model"
)

func TestWishSubmitCreatesGuestAndPendingWish(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)
	svc := NewWishService(fx.wishes, fx.guests, IdentityOptions{}, fx.logger)

	w, err := svc.Submit(ctx, " Dewi ", " Selamat menempuh hidup baru ")
	require.NoError(t, err)
	assert.Equal(t, "Dewi", w.GuestName)
	assert.Equal(t, "Selamat menempuh hidup baru", w.Message)
	assert.NotZero(t, w.ID)

	stored, err := fx.wishes.GetByID(ctx, w.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsApproved)
	require.NotNil(t, stored.Guest)
	assert.Equal(t, model.RSVPStatusPending, stored.Guest.RSVPStatus)
	assert.Equal(t, model.GuestCategoryRegular, stored.Guest.Category)

	public, err := svc.List(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, public)

	all, err := svc.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Dewi", all[0].Guest.Name)
}

func TestWishSubmitValidation(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)
	svc := NewWishService(fx.wishes, fx.guests, IdentityOptions{}, fx.logger)

	_, err := svc.Submit(ctx, "", "hi")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = svc.Submit(ctx, "Dewi", "  ")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = svc.Submit(ctx, "Dewi", strings.Repeat("é", MaxWishLength+1))
	assert.ErrorIs(t, err, ErrValidation)
	_, err = svc.Submit(ctx, strings.Repeat("n", model.MaxNameLength+1), "hi")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Submit(ctx, "Dewi", strings.Repeat("é", MaxWishLength))
	assert.NoError(t, err)
}

func TestWishModeration(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)
	svc := NewWishService(fx.wishes, fx.guests, IdentityOptions{}, fx.logger)

	a, err := svc.Submit(ctx, "A", "first")
	require.NoError(t, err)
	_, err = svc.Submit(ctx, "B", "second")
	require.NoError(t, err)
	_, err = svc.Submit(ctx, "C", "third")
	require.NoError(t, err)

	approved, err := svc.SetApproval(ctx, a.ID, true)
	require.NoError(t, err)
	assert.True(t, approved.IsApproved)
	assert.Equal(t, "A", approved.Guest.Name)

	public, err := svc.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, a.ID, public[0].ID)

	n, err := svc.ApproveAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	require.NoError(t, svc.Delete(ctx, a.ID))
	assert.ErrorIs(t, svc.Delete(ctx, a.ID), ErrWishNotFound)

	_, err = svc.SetApproval(ctx, 999, true)
	assert.ErrorIs(t, err, ErrWishNotFound)

	public, err = svc.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, public, 2)
}
