package services

import (
	"context"
	"testing"

	"github.com/princeprakhar/dealership-reviews/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDealerServiceGetDealers(t *testing.T) {
	svc := NewDealerService(&fakeDealers{dealers: sampleDealers()}, &fakeVehicles{})
	ctx := context.Background()

	all, err := svc.GetDealers(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	sentinel, err := svc.GetDealers(ctx, "All")
	require.NoError(t, err)
	assert.Equal(t, all, sentinel)

	texas, err := svc.GetDealers(ctx, "Texas")
	require.NoError(t, err)
	require.Len(t, texas, 2)
	for _, d := range texas {
		assert.Equal(t, "Texas", d.State)
	}
}

func TestDealerServiceGetDealer(t *testing.T) {
	svc := NewDealerService(&fakeDealers{dealers: sampleDealers()}, &fakeVehicles{})

	dealer, err := svc.GetDealer(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Temp Car Dealership", dealer.FullName)

	_, err = svc.GetDealer(context.Background(), 99)
	assert.ErrorIs(t, err, ErrDealerNotFound)
}

func TestDealerServiceGetDealerStoreFailure(t *testing.T) {
	svc := NewDealerService(&fakeDealers{err: errBoom}, &fakeVehicles{})

	_, err := svc.GetDealer(context.Background(), 1)
	assert.ErrorIs(t, err, errBoom)
	assert.NotErrorIs(t, err, ErrDealerNotFound)
}

func TestDealerServiceGetInventory(t *testing.T) {
	vehicles := &fakeVehicles{cars: []models.Vehicle{
		{DealerID: 1, Make: "Toyota", Model: "Corolla"},
		{DealerID: 2, Make: "Audi", Model: "A6"},
	}}
	svc := NewDealerService(&fakeDealers{dealers: sampleDealers()}, vehicles)

	cars, err := svc.GetInventory(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, cars, 1)
	assert.Equal(t, "Corolla", cars[0].Model)

	_, err = svc.GetInventory(context.Background(), 42)
	assert.ErrorIs(t, err, ErrDealerNotFound)
}
