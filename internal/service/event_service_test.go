package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wedding/guesthub/internal/model"
)

func TestEventServiceGetAndUpsert(t *testing.T) {
	ctx := context.Background()
	svc := NewEventService(newFixture(t).settings)

	_, err := svc.Get(ctx)
	assert.ErrorIs(t, err, ErrEventSettingsNotFound)

	saved, err := svc.Upsert(ctx, &model.EventSettings{
		Partner1Name: "Andi",
		Partner2Name: "Sinta",
		EventDate:    time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC),
		VenueName:    "Gedung Serbaguna",
	})
	require.NoError(t, err)
	assert.Equal(t, model.EventSettingsID, saved.ID)

	saved, err = svc.Upsert(ctx, &model.EventSettings{
		Partner1Name: "Andi",
		Partner2Name: "Sinta",
		EventDate:    time.Date(2026, 6, 21, 0, 0, 0, 0, time.UTC),
		VenueName:    "Hotel Mulia",
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Hotel Mulia", got.VenueName)
	assert.Equal(t, saved.ID, got.ID)
}
