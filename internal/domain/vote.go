package domain

import (
	"sync"

	"github.com/google/uuid"

	"github.com/phrazzld/overboard/internal/domain/reputation"
)

// VoteDirection is a user's standing vote on a piece of content.
type VoteDirection int

// Possible vote directions. VoteNone is the zero value.
const (
	VoteNone VoteDirection = iota
	VoteUp
	VoteDown
)

func (d VoteDirection) String() string {
	switch d {
	case VoteNone:
		return "none"
	case VoteUp:
		return "up"
	case VoteDown:
		return "down"
	default:
		return "invalid"
	}
}

// Votable is content that users can vote on. Question and Answer are its
// only implementations.
type Votable interface {
	ID() uuid.UUID
	Author() *User
	UpVotes() int
	DownVotes() int
	VoteOf(u *User) VoteDirection

	kind() string
	recordVote(voter *User, dir VoteDirection) (previous VoteDirection, err error)
	voteEvent(dir VoteDirection) reputation.Event
}

// ballot is the vote ledger shared by questions and answers.
// Each voter holds at most one direction.
type ballot struct {
	mu    sync.Mutex
	votes map[uuid.UUID]VoteDirection
	up    int
	down  int
}

// UpVotes returns the number of users currently voting up.
func (b *ballot) UpVotes() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.up
}

// DownVotes returns the number of users currently voting down.
func (b *ballot) DownVotes() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.down
}

// VoteOf returns u's current vote, VoteNone if u has not voted.
func (b *ballot) VoteOf(u *User) VoteDirection {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.votes[u.id]
}

// recordVote stores voter's direction and returns the one it replaced.
// Repeating the current direction is rejected and leaves the ledger unchanged.
func (b *ballot) recordVote(voter *User, dir VoteDirection) (VoteDirection, error) {
	if dir != VoteUp && dir != VoteDown {
		return VoteNone, ErrInvalidVoteDirection
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.votes == nil {
		b.votes = make(map[uuid.UUID]VoteDirection)
	}

	previous := b.votes[voter.id]
	if previous == dir {
		return previous, ErrDuplicateVote
	}

	b.votes[voter.id] = dir
	b.count(previous, -1)
	b.count(dir, 1)

	return previous, nil
}

func (b *ballot) count(dir VoteDirection, n int) {
	switch dir {
	case VoteUp:
		b.up += n
	case VoteDown:
		b.down += n
	}
}
