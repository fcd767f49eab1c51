package domain

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"petspace/errors"
	"petspace/notify"
)

// DefaultDailyLimit is the canonical free-tier quota. Other revisions of
// the product used 5 and 12; 10 is the documented baseline and remains
// overridable through SetDailyQuota.
const DefaultDailyLimit = 10

// User is a chat participant. Identity and tier are fixed at construction;
// the validation policy is owned exclusively by the user and replaceable
// at runtime, but never nil.
type User struct {
	name       string
	tier       Tier
	rooms      []*ChatRoom
	inbox      []Message
	pending    []Action
	policy     Policy
	notify     *notify.Notifier
	dailySent  int
	dailyLimit int
}

func NewUser(name string, tier Tier, policy Policy, n *notify.Notifier) (*User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.ErrEmptyUserName
	}
	u := &User{
		name:       name,
		tier:       tier,
		policy:     policy,
		notify:     n,
		dailyLimit: DefaultDailyLimit,
	}
	n.Debug("user created", "user", name, "tier", tier.String())
	return u, nil
}

func (u *User) Name() string { return u.name }
func (u *User) Tier() Tier   { return u.tier }

func (u *User) Policy() Policy { return u.policy }

// SetPolicy replaces the validation policy; the previous one is discarded.
// A nil policy is refused so a constructed user always has one.
func (u *User) SetPolicy(p Policy) {
	if p == nil {
		u.notify.Debug("ignoring nil policy", "user", u.name)
		return
	}
	u.policy = p
	u.notify.Debug("policy replaced", "user", u.name, "policy", p.Name())
}

// Send runs the tier pre-checks in their fixed order (quota, then
// membership, then content policy) and on success hands the message to
// the mediator for delivery and recording. A message stopped by the quota
// never consumes a validation cycle, and a non-member never learns the
// policy's rejection reason.
func (u *User) Send(message string, room *ChatRoom) bool {
	u.notify.Debug("sending message", "user", u.name, "room", room.Name())

	if u.tier == TierFree && u.dailySent >= u.dailyLimit {
		u.notify.User(fmt.Sprintf("%s: Daily message limit reached (%d)! Upgrade to Premium for unlimited messaging.", u.name, u.dailyLimit))
		return false
	}
	if !u.InRoom(room) {
		u.notify.User(fmt.Sprintf("%s: You are not in room %s!", u.name, room.Name()))
		return false
	}
	if !u.policy.Validate(message, u.name) {
		return false
	}
	if u.tier == TierFree {
		u.dailySent++
		u.notify.Debug("daily counter incremented", "user", u.name, "sent", u.dailySent, "limit", u.dailyLimit)
	}

	for _, action := range SendActions(room, message) {
		action.execute(u)
	}
	return true
}

// Receive records an inbound delivery. No validation happens here; the
// admin tier additionally leaves a moderation note, which never affects
// delivery outcomes.
func (u *User) Receive(msg Message, from *User, room *ChatRoom) {
	if u.tier == TierAdmin {
		u.notify.Info("moderation note", "admin", u.name, "from", from.Name(), "room", room.Name(), "id", msg.ID.String())
	}
	u.inbox = append(u.inbox, msg)
	u.notify.Debug("message received", "user", u.name, "from", from.Name(), "room", room.Name())
}

// Inbox returns the deliveries recorded so far, oldest first.
func (u *User) Inbox() []Message {
	return u.inbox
}

// AddToRoom joins the room through the mediator protocol, which keeps both
// membership sides consistent in one operation.
func (u *User) AddToRoom(room *ChatRoom) {
	room.RegisterMember(u)
}

// RemoveFromRoom leaves the room through the mediator protocol.
func (u *User) RemoveFromRoom(room *ChatRoom) {
	room.RemoveMember(u)
}

func (u *User) InRoom(room *ChatRoom) bool {
	return lo.Contains(u.rooms, room)
}

// attachRoom and detachRoom are the user-side half of the membership
// protocol; only ChatRoom calls them, in the same operation that mutates
// the room-side list.
func (u *User) attachRoom(room *ChatRoom) {
	if !lo.Contains(u.rooms, room) {
		u.rooms = append(u.rooms, room)
	}
}

func (u *User) detachRoom(room *ChatRoom) {
	for i, r := range u.rooms {
		if r == room {
			u.rooms = append(u.rooms[:i], u.rooms[i+1:]...)
			return
		}
	}
}

// RoomNames projects the rooms the user believes it is in.
func (u *User) RoomNames() []string {
	return lo.Map(u.rooms, func(r *ChatRoom, _ int) string { return r.Name() })
}

// Enqueue appends a deferred action to the pending queue.
func (u *User) Enqueue(action Action) {
	u.pending = append(u.pending, action)
	u.notify.Debug("action queued", "user", u.name, "kind", action.Kind.String(), "queued", len(u.pending))
}

// ExecuteAll runs the pending actions FIFO and empties the queue. Each
// action is subject to its room's preconditions.
func (u *User) ExecuteAll() {
	u.notify.Debug("executing queued actions", "user", u.name, "count", len(u.pending))
	for _, action := range u.pending {
		action.execute(u)
	}
	u.pending = nil
}

func (u *User) PendingCount() int {
	return len(u.pending)
}

// RequestHistoryIterator forwards to the room's gated factory. Only admins
// get a cursor; everyone else is denied.
func (u *User) RequestHistoryIterator(room *ChatRoom) (*HistoryCursor, bool) {
	if u.tier != TierAdmin {
		u.notify.User(fmt.Sprintf("%s: No access to chat history. Admin privileges required.", u.name))
		return nil, false
	}
	return room.HistoryIterator(u)
}

// BrowseHistory drives a cursor over the full history, printing every
// entry in order. Returns false when access is denied.
func (u *User) BrowseHistory(room *ChatRoom) bool {
	cursor, ok := u.RequestHistoryIterator(room)
	if !ok {
		return false
	}
	u.notify.User(fmt.Sprintf("=== Chat history for %s ===", room.Name()))
	for cursor.First(); !cursor.IsDone(); cursor.Next() {
		u.notify.User(cursor.CurrentItem())
	}
	u.notify.User(fmt.Sprintf("=== End of history (%d messages) ===", room.HistorySize()))
	return true
}

// SetDailyQuota overrides the free-tier limit and the starting counter.
func (u *User) SetDailyQuota(limit, sent int) {
	u.dailyLimit = limit
	u.dailySent = sent
}

// ResetDailyCount restarts the free-tier counter, as a daily scheduler
// would in a real deployment.
func (u *User) ResetDailyCount() {
	u.dailySent = 0
	u.notify.Info("daily counter reset", "user", u.name)
}

func (u *User) DailySent() int  { return u.dailySent }
func (u *User) DailyLimit() int { return u.dailyLimit }

// Describe returns a diagnostic dump of the user's state.
func (u *User) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "User %s (%s)\n", u.name, u.tier)
	fmt.Fprintf(&b, "  policy: %s (max length %d)\n", u.policy.Name(), u.policy.MaxLength())
	fmt.Fprintf(&b, "  rooms: %s\n", strings.Join(u.RoomNames(), ", "))
	fmt.Fprintf(&b, "  inbox: %d message(s), pending actions: %d\n", len(u.inbox), len(u.pending))
	if u.tier == TierFree {
		fmt.Fprintf(&b, "  quota: %d/%d today\n", u.dailySent, u.dailyLimit)
	}
	return b.String()
}

// Destroy leaves every room and discards queued-but-unexecuted actions
// without executing them.
func (u *User) Destroy() {
	rooms := append([]*ChatRoom(nil), u.rooms...)
	for _, room := range rooms {
		if !room.RemoveMember(u) {
			u.detachRoom(room)
		}
	}
	discarded := len(u.pending)
	u.pending = nil
	u.notify.Debug("user destroyed", "user", u.name, "discarded_actions", discarded)
}
