package domain

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/overboard/internal/domain/reputation"
)

// Answer is a response to a Question. Author and question are fixed at creation.
type Answer struct {
	ballot

	id        uuid.UUID
	author    *User
	question  *Question
	body      string
	createdAt time.Time

	// Only ever goes false to true, under the question's lock.
	accepted atomic.Bool
}

func newAnswer(author *User, question *Question, body string) *Answer {
	return &Answer{
		id:        uuid.New(),
		author:    author,
		question:  question,
		body:      body,
		createdAt: time.Now().UTC(),
	}
}

// ID returns the answer's identifier.
func (a *Answer) ID() uuid.UUID { return a.id }

// Author returns the user who wrote the answer.
func (a *Answer) Author() *User { return a.author }

// Question returns the question this answer responds to.
func (a *Answer) Question() *Question { return a.question }

// Body returns the answer text.
func (a *Answer) Body() string { return a.body }

// CreatedAt returns when the answer was posted.
func (a *Answer) CreatedAt() time.Time { return a.createdAt }

// IsAccepted reports whether the question's author accepted this answer.
func (a *Answer) IsAccepted() bool { return a.accepted.Load() }

func (a *Answer) kind() string { return "answer" }

func (a *Answer) voteEvent(dir VoteDirection) reputation.Event {
	if dir == VoteUp {
		return reputation.EventAnswerUpVoted
	}
	return reputation.EventAnswerDownVoted
}
