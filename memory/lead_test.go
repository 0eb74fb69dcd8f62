package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phbpx/leadcapture"
	"github.com/phbpx/leadcapture/memory"
)

func newLead(email string, types ...leadcapture.ServiceType) leadcapture.NewLead {
	return leadcapture.NewLead{
		Name:        "Ana Reyes",
		Email:       email,
		Mobile:      "+63 917 555 0101",
		PostCode:    "1000",
		ServiceType: types,
	}
}

func TestCreateAssignsIdentifiers(t *testing.T) {
	store := memory.NewLeadStore()
	ctx := context.Background()

	first, err := store.Create(ctx, newLead("a@example.com", leadcapture.ServiceDelivery))
	require.NoError(t, err)
	second, err := store.Create(ctx, newLead("b@example.com", leadcapture.ServicePickup, leadcapture.ServicePayment))
	require.NoError(t, err)

	assert.Greater(t, second.ID, first.ID)
	assert.False(t, first.CreatedAt.IsZero())
	assert.Equal(t, first.CreatedAt, first.UpdatedAt)
	require.Len(t, second.ServiceInterest, 2)
	for _, si := range second.ServiceInterest {
		assert.Equal(t, second.ID, si.LeadID)
		assert.Greater(t, si.ID, first.ServiceInterest[0].ID)
	}
}

func TestCreateDuplicateEmail(t *testing.T) {
	store := memory.NewLeadStore()
	ctx := context.Background()

	_, err := store.Create(ctx, newLead("a@example.com", leadcapture.ServiceDelivery))
	require.NoError(t, err)

	_, err = store.Create(ctx, newLead("a@example.com", leadcapture.ServicePickup))
	require.Error(t, err)
	assert.Equal(t, leadcapture.KindConflict, leadcapture.KindOf(err))
	assert.Equal(t, "Email already exists", err.Error())
	assert.Equal(t, 1, store.Len())
}

func TestGetByID(t *testing.T) {
	store := memory.NewLeadStore()
	ctx := context.Background()

	created, err := store.Create(ctx, newLead("a@example.com", leadcapture.ServiceDelivery, leadcapture.ServiceDelivery))
	require.NoError(t, err)
	require.Len(t, created.ServiceInterest, 1)

	got, err := store.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	// Returned leads do not alias stored state.
	got.ServiceInterest[0].ServiceType = leadcapture.ServicePayment
	again, err := store.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, leadcapture.ServiceDelivery, again.ServiceInterest[0].ServiceType)

	_, err = store.GetByID(ctx, created.ID+1)
	assert.Equal(t, leadcapture.KindNotFound, leadcapture.KindOf(err))
}
