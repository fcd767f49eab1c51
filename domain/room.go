package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"petspace/notify"
)

// ChatRoom mediates all communication between its members: users never
// reference each other directly. It owns an ordered member list (no
// duplicates) and an append-only history of rendered messages.
type ChatRoom struct {
	name    string
	members []*User
	history []string
	notify  *notify.Notifier
}

func NewChatRoom(name string, n *notify.Notifier) *ChatRoom {
	return &ChatRoom{name: name, notify: n}
}

func (r *ChatRoom) Name() string {
	return r.name
}

// RegisterMember appends the user and records the reciprocal membership on
// the user, in that order. Re-registering is a no-op. Returns true when the
// user was newly added.
func (r *ChatRoom) RegisterMember(u *User) bool {
	if r.hasMember(u) {
		r.notify.Info("user already registered", "room", r.name, "user", u.Name())
		return false
	}
	r.members = append(r.members, u)
	u.attachRoom(r)
	r.notify.Info("user joined room", "room", r.name, "user", u.Name())
	return true
}

// RemoveMember removes the user preserving the order of the remaining
// members, and clears the reciprocal membership. Returns true when the
// user was present.
func (r *ChatRoom) RemoveMember(u *User) bool {
	for i, member := range r.members {
		if member == u {
			r.members = append(r.members[:i], r.members[i+1:]...)
			u.detachRoom(r)
			r.notify.Info("user left room", "room", r.name, "user", u.Name())
			return true
		}
	}
	r.notify.Info("user was not in room", "room", r.name, "user", u.Name())
	return false
}

// Deliver fans the message out to every member except the sender, in
// member order. The sender must currently be a member; otherwise nothing
// happens.
func (r *ChatRoom) Deliver(message string, from *User) bool {
	if !r.hasMember(from) {
		r.notify.Info("delivery refused, sender not a member", "room", r.name, "user", from.Name())
		return false
	}
	r.notify.Debug("broadcasting message", "room", r.name, "from", from.Name())
	msg := Message{
		ID:      uuid.New(),
		Sender:  from.Name(),
		Room:    r.name,
		Content: message,
		At:      time.Now().UTC(),
	}
	for _, member := range r.members {
		if member != from {
			member.Receive(msg, from, r)
		}
	}
	return true
}

// Record appends "<sender>: <message>" to the history. Same membership
// precondition as Deliver.
func (r *ChatRoom) Record(message string, from *User) bool {
	if !r.hasMember(from) {
		r.notify.Info("record refused, sender not a member", "room", r.name, "user", from.Name())
		return false
	}
	entry := from.Name() + ": " + message
	r.history = append(r.history, entry)
	r.notify.Debug("message saved to history", "room", r.name, "entry", entry)
	return true
}

// History returns the live history, gated to admin requesters. A nil or
// non-admin requester is denied and no partial data leaks.
func (r *ChatRoom) History(requester *User) ([]string, bool) {
	if !r.allowsHistoryAccess(requester) {
		return nil, false
	}
	return r.history, true
}

// HistoryIterator returns a fresh cursor over the live history, under the
// same admin-only gate as History.
func (r *ChatRoom) HistoryIterator(requester *User) (*HistoryCursor, bool) {
	if !r.allowsHistoryAccess(requester) {
		return nil, false
	}
	r.notify.Debug("history cursor created", "room", r.name, "entries", len(r.history), "requester", requester.Name())
	return newHistoryCursor(&r.history), true
}

// MemberNames projects the current members in registration order.
func (r *ChatRoom) MemberNames() []string {
	return lo.Map(r.members, func(u *User, _ int) string { return u.Name() })
}

func (r *ChatRoom) MemberCount() int {
	return len(r.members)
}

func (r *ChatRoom) HistorySize() int {
	return len(r.history)
}

func (r *ChatRoom) hasMember(u *User) bool {
	return lo.Contains(r.members, u)
}

func (r *ChatRoom) allowsHistoryAccess(requester *User) bool {
	if requester == nil || requester.Tier() != TierAdmin {
		name := "<nil>"
		if requester != nil {
			name = requester.Name()
		}
		r.notify.Info("history access denied", "room", r.name, "requester", name)
		return false
	}
	return true
}
