package domain

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func roomWithAdmin(t *testing.T) (*ChatRoom, *User) {
	t.Helper()
	var buf bytes.Buffer
	room := NewChatRoom("CtrlCat", newTestNotifier(&buf))
	admin := makeUser(t, "Root", TierAdmin, &buf)
	room.RegisterMember(admin)
	return room, admin
}

func TestHistoryCursor_EmptyHistory(t *testing.T) {
	req := require.New(t)
	room, admin := roomWithAdmin(t)

	cursor, ok := room.HistoryIterator(admin)
	req.True(ok)
	req.True(cursor.IsDone())
	req.Equal("", cursor.CurrentItem())

	// Next and First are both safe on an empty history
	cursor.Next()
	req.True(cursor.IsDone())
	cursor.First()
	req.True(cursor.IsDone())
	req.Equal("", cursor.CurrentItem())
}

func TestHistoryCursor_WalkAndExhaustion(t *testing.T) {
	req := require.New(t)
	room, admin := roomWithAdmin(t)
	room.Record("one", admin)
	room.Record("two", admin)

	cursor, ok := room.HistoryIterator(admin)
	req.True(ok)

	cursor.First()
	req.False(cursor.IsDone())
	req.Equal("Root: one", cursor.CurrentItem())
	cursor.Next()
	req.Equal("Root: two", cursor.CurrentItem())
	cursor.Next()
	req.True(cursor.IsDone())

	// Advancing past the end stays exhausted and keeps returning ""
	for i := 0; i < 3; i++ {
		cursor.Next()
		req.True(cursor.IsDone())
		req.Equal("", cursor.CurrentItem())
	}

	// First rewinds from the exhausted state
	cursor.First()
	req.False(cursor.IsDone())
	req.Equal("Root: one", cursor.CurrentItem())
}

func TestHistoryCursor_SeesLiveGrowth(t *testing.T) {
	req := require.New(t)
	room, admin := roomWithAdmin(t)
	room.Record("one", admin)
	room.Record("two", admin)

	cursor, ok := room.HistoryIterator(admin)
	req.True(ok)
	cursor.First()
	cursor.Next()
	cursor.Next()
	req.True(cursor.IsDone())

	// A message recorded after exhaustion becomes visible without a reset
	room.Record("three", admin)
	req.False(cursor.IsDone())
	req.Equal("Root: three", cursor.CurrentItem())
	cursor.Next()
	req.True(cursor.IsDone())
}

func TestHistoryCursor_IndependentCursors(t *testing.T) {
	req := require.New(t)
	room, admin := roomWithAdmin(t)
	room.Record("one", admin)
	room.Record("two", admin)

	first, ok := room.HistoryIterator(admin)
	req.True(ok)
	second, ok := room.HistoryIterator(admin)
	req.True(ok)

	first.Next()
	req.Equal("Root: two", first.CurrentItem())
	req.Equal("Root: one", second.CurrentItem())
}
