package services

import (
	"testing"

	"github.com/LiamF-2261667/fruckr-sub000/entity"
	"github.com/LiamF-2261667/fruckr-sub000/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedOrder(t *testing.T, db *gorm.DB, truckID, clientID, addrID uint) *entity.Order {
	t.Helper()
	o := &entity.Order{FoodtruckID: truckID, ClientID: clientID, AddressID: addrID}
	require.NoError(t, db.Create(o).Error)
	return o
}

func reloadOrder(t *testing.T, db *gorm.DB, id uint) *entity.Order {
	t.Helper()
	var o entity.Order
	require.NoError(t, db.First(&o, id).Error)
	return &o
}

func TestSetReadyByStaff(t *testing.T) {
	db := newTestDB(t)
	mail := &recordingMailer{}
	svc := newOrderService(db, mail)

	owner := seedUser(t, db, "owner@test.be")
	client := seedUser(t, db, "client@test.be")
	truck := seedTruck(t, db, owner.ID, "Frietkot", "Hasselt")
	addr := seedAddress(t, db)
	o := seedOrder(t, db, truck.ID, client.ID, addr.ID)

	require.NoError(t, svc.SetReady(owner.ID, o.ID))

	got := reloadOrder(t, db, o.ID)
	assert.True(t, got.IsReady)
	assert.False(t, got.IsCollected)
	assert.Nil(t, got.ConfirmerID)

	// the client got notified
	require.Len(t, mail.sent, 1)
	assert.Contains(t, mail.sent[0], "client@test.be")
}

func TestSetReadyByNonStaffIsRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db, &recordingMailer{})

	owner := seedUser(t, db, "owner@test.be")
	client := seedUser(t, db, "client@test.be")
	stranger := seedUser(t, db, "stranger@test.be")
	truck := seedTruck(t, db, owner.ID, "Frietkot", "Hasselt")
	addr := seedAddress(t, db)
	o := seedOrder(t, db, truck.ID, client.ID, addr.ID)

	err := svc.SetReady(stranger.ID, o.ID)
	assert.ErrorIs(t, err, apperr.ErrUnauthorizedWorker)

	// the rejected transition left the order untouched
	got := reloadOrder(t, db, o.ID)
	assert.False(t, got.IsReady)
	assert.False(t, got.IsCollected)
}

func TestConfirmRecordsConfirmer(t *testing.T) {
	db := newTestDB(t)
	mail := &recordingMailer{}
	svc := newOrderService(db, mail)

	owner := seedUser(t, db, "owner@test.be")
	client := seedUser(t, db, "client@test.be")
	truck := seedTruck(t, db, owner.ID, "Frietkot", "Hasselt")
	addr := seedAddress(t, db)
	o := seedOrder(t, db, truck.ID, client.ID, addr.ID)

	// confirming an order that was never marked ready is legal
	require.NoError(t, svc.Confirm(owner.ID, o.ID))

	got := reloadOrder(t, db, o.ID)
	assert.True(t, got.IsCollected)
	assert.False(t, got.IsReady)
	require.NotNil(t, got.ConfirmerID)
	assert.Equal(t, owner.ID, *got.ConfirmerID)

	require.Len(t, mail.sent, 1)
	assert.Contains(t, mail.sent[0], "client@test.be")
}

func TestConfirmByNonStaffIsRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db, &recordingMailer{})

	owner := seedUser(t, db, "owner@test.be")
	client := seedUser(t, db, "client@test.be")
	stranger := seedUser(t, db, "stranger@test.be")
	truck := seedTruck(t, db, owner.ID, "Frietkot", "Hasselt")
	addr := seedAddress(t, db)
	o := seedOrder(t, db, truck.ID, client.ID, addr.ID)

	err := svc.Confirm(stranger.ID, o.ID)
	assert.ErrorIs(t, err, apperr.ErrUnauthorizedWorker)

	got := reloadOrder(t, db, o.ID)
	assert.False(t, got.IsCollected)
	assert.Nil(t, got.ConfirmerID)
}

func TestTransitionSurvivesMailFailure(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db, failingMailer{})

	owner := seedUser(t, db, "owner@test.be")
	client := seedUser(t, db, "client@test.be")
	truck := seedTruck(t, db, owner.ID, "Frietkot", "Hasselt")
	addr := seedAddress(t, db)
	o := seedOrder(t, db, truck.ID, client.ID, addr.ID)

	// a broken mailer never fails the transition
	require.NoError(t, svc.SetReady(owner.ID, o.ID))
	assert.True(t, reloadOrder(t, db, o.ID).IsReady)
}
