package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AK301382/maser/internal/apperrors"
)

func TestBroadcastReachesEveryUser(t *testing.T) {
	db := newTestDB(t)
	notifs := NewNotificationService(db)
	alice := createUser(t, db, "alice@example.com")
	bob := createUser(t, db, "bob@example.com")

	require.NoError(t, notifs.Broadcast("Maintenance", "System update tonight"))

	for _, id := range []uint{alice.ID, bob.ID} {
		views, err := notifs.ListFor(id)
		require.NoError(t, err)
		require.Len(t, views, 1)
		require.Equal(t, "Maintenance", views[0].Title)
		require.True(t, views[0].Broadcast)
		require.False(t, views[0].Read)
	}
}

func TestBroadcastReadStatePerRecipient(t *testing.T) {
	db := newTestDB(t)
	notifs := NewNotificationService(db)
	alice := createUser(t, db, "alice@example.com")
	bob := createUser(t, db, "bob@example.com")

	require.NoError(t, notifs.Broadcast("Maintenance", "System update tonight"))

	views, err := notifs.ListFor(alice.ID)
	require.NoError(t, err)
	require.NoError(t, notifs.MarkRead(alice.ID, views[0].ID))

	// Alice reads hers; Bob's copy stays unread.
	views, err = notifs.ListFor(alice.ID)
	require.NoError(t, err)
	require.True(t, views[0].Read)

	views, err = notifs.ListFor(bob.ID)
	require.NoError(t, err)
	require.False(t, views[0].Read)
}

func TestMarkReadIdempotent(t *testing.T) {
	db := newTestDB(t)
	notifs := NewNotificationService(db)
	alice := createUser(t, db, "alice@example.com")

	require.NoError(t, notifs.Notify(alice.ID, "Hello", "direct message"))
	views, err := notifs.ListFor(alice.ID)
	require.NoError(t, err)
	id := views[0].ID

	require.NoError(t, notifs.MarkRead(alice.ID, id))
	require.NoError(t, notifs.MarkRead(alice.ID, id))

	views, err = notifs.ListFor(alice.ID)
	require.NoError(t, err)
	require.True(t, views[0].Read)

	// Same for broadcast receipts.
	require.NoError(t, notifs.Broadcast("B", "broadcast message"))
	views, err = notifs.ListFor(alice.ID)
	require.NoError(t, err)
	bid := views[0].ID
	require.True(t, views[0].Broadcast)
	require.NoError(t, notifs.MarkRead(alice.ID, bid))
	require.NoError(t, notifs.MarkRead(alice.ID, bid))
}

func TestMarkReadWrongUser(t *testing.T) {
	db := newTestDB(t)
	notifs := NewNotificationService(db)
	alice := createUser(t, db, "alice@example.com")
	bob := createUser(t, db, "bob@example.com")

	require.NoError(t, notifs.Notify(alice.ID, "Hello", "direct message"))
	views, err := notifs.ListFor(alice.ID)
	require.NoError(t, err)

	// Bob cannot read Alice's direct notification.
	err = notifs.MarkRead(bob.ID, views[0].ID)
	require.True(t, apperrors.IsNotFound(err))

	err = notifs.MarkRead(alice.ID, 9999)
	require.True(t, apperrors.IsNotFound(err))
}

func TestUnreadCountRecomputed(t *testing.T) {
	db := newTestDB(t)
	notifs := NewNotificationService(db)
	alice := createUser(t, db, "alice@example.com")

	require.NoError(t, notifs.Notify(alice.ID, "One", "first"))
	require.NoError(t, notifs.Notify(alice.ID, "Two", "second"))
	require.NoError(t, notifs.Broadcast("Three", "third"))

	count, err := notifs.UnreadCount(alice.ID)
	require.NoError(t, err)
	require.Equal(t, 3, count)

	views, err := notifs.ListFor(alice.ID)
	require.NoError(t, err)
	require.NoError(t, notifs.MarkRead(alice.ID, views[0].ID))

	count, err = notifs.UnreadCount(alice.ID)
	require.NoError(t, err)
	require.Equal(t, 2, count)
}

func TestNotificationValidation(t *testing.T) {
	db := newTestDB(t)
	notifs := NewNotificationService(db)

	require.True(t, apperrors.IsValidation(notifs.Broadcast("", "message")))
	require.True(t, apperrors.IsValidation(notifs.Broadcast("title", "")))
	require.True(t, apperrors.IsValidation(notifs.Notify(1, "title", "")))
}
