//go:generate go run go.uber.org/mock/mockgen -source=chat_service.go -destination=../mocks/mock_chat_service.go -package=mocks
package services

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"petspace/domain"
	"petspace/errors"
	"petspace/moderation"
	"petspace/notify"
)

var validate = validator.New()

// RegisterRequest is the service-boundary shape for creating a user.
type RegisterRequest struct {
	Name string `validate:"required,min=1,max=100"`
	Tier string `validate:"required,oneof=free premium admin"`
}

type IChatService interface {
	RegisterUser(req RegisterRequest) (*domain.User, error)
	DeleteUser(name string) bool
	User(name string) (*domain.User, bool)
	Users() []*domain.User
	CreateRoom(name string) *domain.ChatRoom
	Room(name string) (*domain.ChatRoom, bool)
	Rooms() []*domain.ChatRoom
	JoinRoom(userName, roomName string) bool
	LeaveRoom(userName, roomName string) bool
	Post(userName, roomName, message string) bool
	QueueMessage(userName, roomName, message string) bool
	FlushQueue(userName string) bool
	BrowseHistory(userName, roomName string) bool
}

// ChatService is a thin facade over the domain: it owns the registries of
// users and rooms and wires tier-default policies at registration time.
// All chat rules live in domain and moderation.
type ChatService struct {
	notify    *notify.Notifier
	users     map[string]*domain.User
	rooms     map[string]*domain.ChatRoom
	userOrder []string
	roomOrder []string

	dailyLimit    int
	startingCount int
}

func NewChatService(n *notify.Notifier, dailyLimit, startingCount int) *ChatService {
	return &ChatService{
		notify:        n,
		users:         make(map[string]*domain.User),
		rooms:         make(map[string]*domain.ChatRoom),
		dailyLimit:    dailyLimit,
		startingCount: startingCount,
	}
}

// RegisterUser validates the request, builds the tier-default policy and
// stores the user. Names are unique.
func (s *ChatService) RegisterUser(req RegisterRequest) (*domain.User, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid registration: %w", err)
	}
	if _, exists := s.users[req.Name]; exists {
		return nil, errors.ErrDuplicateUser
	}
	tier, err := domain.ParseTier(req.Tier)
	if err != nil {
		return nil, err
	}
	policy, err := moderation.PolicyFor(tier, s.notify)
	if err != nil {
		return nil, err
	}
	user, err := domain.NewUser(req.Name, tier, policy, s.notify)
	if err != nil {
		return nil, err
	}
	user.SetDailyQuota(s.dailyLimit, s.startingCount)
	s.users[req.Name] = user
	s.userOrder = append(s.userOrder, req.Name)
	s.notify.Info("user registered", "user", req.Name, "tier", tier.String())
	return user, nil
}

// DeleteUser destroys the user (leaving all rooms, discarding queued
// actions) and removes it from the registry.
func (s *ChatService) DeleteUser(name string) bool {
	user, ok := s.users[name]
	if !ok {
		return false
	}
	user.Destroy()
	delete(s.users, name)
	for i, n := range s.userOrder {
		if n == name {
			s.userOrder = append(s.userOrder[:i], s.userOrder[i+1:]...)
			break
		}
	}
	s.notify.Info("user deleted", "user", name)
	return true
}

func (s *ChatService) User(name string) (*domain.User, bool) {
	u, ok := s.users[name]
	return u, ok
}

// Users returns registered users in registration order.
func (s *ChatService) Users() []*domain.User {
	out := make([]*domain.User, 0, len(s.userOrder))
	for _, name := range s.userOrder {
		out = append(out, s.users[name])
	}
	return out
}

// CreateRoom returns the existing room when the name is already taken.
func (s *ChatService) CreateRoom(name string) *domain.ChatRoom {
	if room, ok := s.rooms[name]; ok {
		return room
	}
	room := domain.NewChatRoom(name, s.notify)
	s.rooms[name] = room
	s.roomOrder = append(s.roomOrder, name)
	s.notify.Info("room created", "room", name)
	return room
}

func (s *ChatService) Room(name string) (*domain.ChatRoom, bool) {
	r, ok := s.rooms[name]
	return r, ok
}

func (s *ChatService) Rooms() []*domain.ChatRoom {
	out := make([]*domain.ChatRoom, 0, len(s.roomOrder))
	for _, name := range s.roomOrder {
		out = append(out, s.rooms[name])
	}
	return out
}

func (s *ChatService) JoinRoom(userName, roomName string) bool {
	user, room, ok := s.lookup(userName, roomName)
	if !ok {
		return false
	}
	return room.RegisterMember(user)
}

func (s *ChatService) LeaveRoom(userName, roomName string) bool {
	user, room, ok := s.lookup(userName, roomName)
	if !ok {
		return false
	}
	return room.RemoveMember(user)
}

// Post sends a message through the full pipeline: quota, membership,
// policy, then delivery and recording.
func (s *ChatService) Post(userName, roomName, message string) bool {
	user, room, ok := s.lookup(userName, roomName)
	if !ok {
		return false
	}
	return user.Send(message, room)
}

// QueueMessage enqueues the deliver-then-record pair on the user without
// executing it. Execution later is subject to the room's preconditions
// only; this path deliberately mirrors the external command boundary and
// skips the send pipeline.
func (s *ChatService) QueueMessage(userName, roomName, message string) bool {
	user, room, ok := s.lookup(userName, roomName)
	if !ok {
		return false
	}
	for _, action := range domain.SendActions(room, message) {
		user.Enqueue(action)
	}
	return true
}

// FlushQueue executes the user's pending actions FIFO.
func (s *ChatService) FlushQueue(userName string) bool {
	user, ok := s.users[userName]
	if !ok {
		return false
	}
	user.ExecuteAll()
	return true
}

func (s *ChatService) BrowseHistory(userName, roomName string) bool {
	user, room, ok := s.lookup(userName, roomName)
	if !ok {
		return false
	}
	return user.BrowseHistory(room)
}

func (s *ChatService) lookup(userName, roomName string) (*domain.User, *domain.ChatRoom, bool) {
	user, okUser := s.users[userName]
	room, okRoom := s.rooms[roomName]
	if !okUser || !okRoom {
		s.notify.Debug("lookup failed", "user", userName, "room", roomName, "user_found", okUser, "room_found", okRoom)
		return nil, nil, false
	}
	return user, room, true
}
