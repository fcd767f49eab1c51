package services

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"petspace/errors"
	"petspace/notify"
)

func newService(buf *bytes.Buffer) *ChatService {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	n := notify.New(buf, log, notify.Debug, false)
	return NewChatService(n, 10, 0)
}

func TestChatService_RegisterUser_Validation(t *testing.T) {
	var buf bytes.Buffer
	svc := newService(&buf)

	tests := []struct {
		name string
		req  RegisterRequest
		ok   bool
	}{
		{name: "valid free user", req: RegisterRequest{Name: "Alice", Tier: "free"}, ok: true},
		{name: "valid admin user", req: RegisterRequest{Name: "Root", Tier: "admin"}, ok: true},
		{name: "missing name", req: RegisterRequest{Name: "", Tier: "free"}, ok: false},
		{name: "unknown tier", req: RegisterRequest{Name: "Bob", Tier: "royal"}, ok: false},
		{name: "missing tier", req: RegisterRequest{Name: "Bob"}, ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := svc.RegisterUser(tt.req)
			if tt.ok {
				require.NoError(t, err)
				require.Equal(t, tt.req.Name, user.Name())
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestChatService_RegisterUser_DuplicateName(t *testing.T) {
	req := require.New(t)
	var buf bytes.Buffer
	svc := newService(&buf)

	_, err := svc.RegisterUser(RegisterRequest{Name: "Alice", Tier: "free"})
	req.NoError(err)
	_, err = svc.RegisterUser(RegisterRequest{Name: "Alice", Tier: "premium"})
	req.ErrorIs(err, errors.ErrDuplicateUser)
}

func TestChatService_RegisterUser_AppliesQuotaConfig(t *testing.T) {
	req := require.New(t)
	var buf bytes.Buffer
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	n := notify.New(&buf, log, notify.Debug, false)
	svc := NewChatService(n, 3, 2)

	user, err := svc.RegisterUser(RegisterRequest{Name: "Alice", Tier: "free"})
	req.NoError(err)
	req.Equal(3, user.DailyLimit())
	req.Equal(2, user.DailySent())
}

func TestChatService_PostRoundTrip(t *testing.T) {
	req := require.New(t)
	var buf bytes.Buffer
	svc := newService(&buf)

	alice, err := svc.RegisterUser(RegisterRequest{Name: "Alice", Tier: "free"})
	req.NoError(err)
	admin, err := svc.RegisterUser(RegisterRequest{Name: "Root", Tier: "admin"})
	req.NoError(err)
	svc.CreateRoom("CtrlCat")
	req.True(svc.JoinRoom("Alice", "CtrlCat"))
	req.True(svc.JoinRoom("Root", "CtrlCat"))

	req.True(svc.Post("Alice", "CtrlCat", "hello everyone"))
	req.Len(admin.Inbox(), 1)
	req.Empty(alice.Inbox())

	room, ok := svc.Room("CtrlCat")
	req.True(ok)
	history, ok := room.History(admin)
	req.True(ok)
	req.Equal([]string{"Alice: hello everyone"}, history)
}

func TestChatService_Post_UnknownUserOrRoom(t *testing.T) {
	req := require.New(t)
	var buf bytes.Buffer
	svc := newService(&buf)
	svc.CreateRoom("CtrlCat")

	req.False(svc.Post("Ghost", "CtrlCat", "boo"))
	req.False(svc.Post("Ghost", "Nowhere", "boo"))
	req.False(svc.JoinRoom("Ghost", "CtrlCat"))
	req.False(svc.LeaveRoom("Ghost", "CtrlCat"))
	req.False(svc.BrowseHistory("Ghost", "CtrlCat"))
}

func TestChatService_QueueAndFlush(t *testing.T) {
	req := require.New(t)
	var buf bytes.Buffer
	svc := newService(&buf)

	_, err := svc.RegisterUser(RegisterRequest{Name: "Alice", Tier: "free"})
	req.NoError(err)
	admin, err := svc.RegisterUser(RegisterRequest{Name: "Root", Tier: "admin"})
	req.NoError(err)
	svc.CreateRoom("CtrlCat")
	svc.JoinRoom("Alice", "CtrlCat")
	svc.JoinRoom("Root", "CtrlCat")

	req.True(svc.QueueMessage("Alice", "CtrlCat", "deferred"))
	room, _ := svc.Room("CtrlCat")
	req.Equal(0, room.HistorySize())

	req.True(svc.FlushQueue("Alice"))
	req.Equal(1, room.HistorySize())
	req.Len(admin.Inbox(), 1)
}

func TestChatService_DeleteUser(t *testing.T) {
	req := require.New(t)
	var buf bytes.Buffer
	svc := newService(&buf)

	_, err := svc.RegisterUser(RegisterRequest{Name: "Alice", Tier: "free"})
	req.NoError(err)
	svc.CreateRoom("CtrlCat")
	svc.JoinRoom("Alice", "CtrlCat")

	req.True(svc.DeleteUser("Alice"))
	req.False(svc.DeleteUser("Alice"))

	room, _ := svc.Room("CtrlCat")
	req.Equal(0, room.MemberCount())
	_, found := svc.User("Alice")
	req.False(found)
	req.Empty(svc.Users())
}

func TestChatService_OrderedListings(t *testing.T) {
	req := require.New(t)
	var buf bytes.Buffer
	svc := newService(&buf)

	for _, name := range []string{"Carol", "Alice", "Bob"} {
		_, err := svc.RegisterUser(RegisterRequest{Name: name, Tier: "premium"})
		req.NoError(err)
	}
	svc.CreateRoom("Dogorithm")
	svc.CreateRoom("CtrlCat")

	var userNames []string
	for _, u := range svc.Users() {
		userNames = append(userNames, u.Name())
	}
	req.Equal([]string{"Carol", "Alice", "Bob"}, userNames)

	var roomNames []string
	for _, r := range svc.Rooms() {
		roomNames = append(roomNames, r.Name())
	}
	req.Equal([]string{"Dogorithm", "CtrlCat"}, roomNames)
}

var _ IChatService = (*ChatService)(nil)
