package domain

import (
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/phrazzld/overboard/internal/domain/reputation"
	"github.com/phrazzld/overboard/internal/platform/logger"
)

// Board is a named community of users. It creates users and supplies the
// reputation policy and logger their actions use.
type Board struct {
	topic  string
	policy *reputation.Policy
	logger *slog.Logger

	mu    sync.RWMutex
	users map[string]*User
}

// NewBoard creates a board with the default reputation policy and no logging.
func NewBoard(topic string) (*Board, error) {
	return NewBoardWithPolicy(topic, nil, nil)
}

// NewBoardWithPolicy creates a board using policy and log. A nil policy
// means the default point table; a nil log discards output.
func NewBoardWithPolicy(topic string, policy *reputation.Policy, log *slog.Logger) (*Board, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, ErrEmptyBoardTopic
	}
	if policy == nil {
		policy = reputation.NewDefaultPolicy()
	}
	if log == nil {
		log = logger.Discard()
	}

	return &Board{
		topic:  topic,
		policy: policy,
		logger: log.With("component", "board", "topic", topic),
		users:  make(map[string]*User),
	}, nil
}

// Topic returns the board's topic.
func (b *Board) Topic() string { return b.topic }

// Policy returns the reputation policy applied on this board.
func (b *Board) Policy() *reputation.Policy { return b.policy }

// CreateUser registers a new user under name. Names are unique per board.
func (b *Board) CreateUser(name string) (*User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyUserName
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.users[name]; exists {
		return nil, ErrDuplicateUserName
	}

	u := newUser(b, name)
	b.users[name] = u

	b.logger.Debug("user created", "user", name, "user_id", u.id)

	return u, nil
}

// User looks up a user by name.
func (b *Board) User(name string) (*User, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	u, ok := b.users[name]
	return u, ok
}

// Users returns every user on the board ordered by name.
func (b *Board) Users() []*User {
	b.mu.RLock()
	users := make([]*User, 0, len(b.users))
	for _, u := range b.users {
		users = append(users, u)
	}
	b.mu.RUnlock()

	sort.Slice(users, func(i, j int) bool { return users[i].name < users[j].name })
	return users
}
