package domain

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/overboard/internal/domain/reputation"
)

// Question is a post asking for answers. Its author is fixed at creation.
type Question struct {
	ballot

	id        uuid.UUID
	author    *User
	body      string
	createdAt time.Time

	// answerMu guards answers and accepted.
	answerMu sync.Mutex
	answers  []*Answer
	accepted *Answer
}

func newQuestion(author *User, body string) *Question {
	return &Question{
		id:        uuid.New(),
		author:    author,
		body:      body,
		createdAt: time.Now().UTC(),
	}
}

// ID returns the question's identifier.
func (q *Question) ID() uuid.UUID { return q.id }

// Author returns the user who asked the question.
func (q *Question) Author() *User { return q.author }

// Body returns the question text.
func (q *Question) Body() string { return q.body }

// CreatedAt returns when the question was asked.
func (q *Question) CreatedAt() time.Time { return q.createdAt }

// Answers returns the question's answers in the order they were posted.
func (q *Question) Answers() []*Answer {
	q.answerMu.Lock()
	defer q.answerMu.Unlock()

	answers := make([]*Answer, len(q.answers))
	copy(answers, q.answers)
	return answers
}

// AcceptedAnswer returns the accepted answer, or nil if none is accepted yet.
func (q *Question) AcceptedAnswer() *Answer {
	q.answerMu.Lock()
	defer q.answerMu.Unlock()
	return q.accepted
}

func (q *Question) addAnswer(a *Answer) {
	q.answerMu.Lock()
	defer q.answerMu.Unlock()
	q.answers = append(q.answers, a)
}

// markAccepted makes a the accepted answer if the question has none.
// It reports whether the transition happened.
func (q *Question) markAccepted(a *Answer) bool {
	q.answerMu.Lock()
	defer q.answerMu.Unlock()

	if q.accepted != nil {
		return false
	}
	q.accepted = a
	a.accepted.Store(true)
	return true
}

func (q *Question) kind() string { return "question" }

func (q *Question) voteEvent(dir VoteDirection) reputation.Event {
	if dir == VoteUp {
		return reputation.EventQuestionUpVoted
	}
	return reputation.EventQuestionDownVoted
}
