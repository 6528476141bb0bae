package domain

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/overboard/internal/domain/reputation"
)

// User is a board member. Every operation on a User is performed as that
// user: the receiver is the actor.
type User struct {
	id        uuid.UUID
	name      string
	board     *Board
	createdAt time.Time

	mu         sync.Mutex
	reputation int
}

func newUser(board *Board, name string) *User {
	return &User{
		id:        uuid.New(),
		name:      name,
		board:     board,
		createdAt: time.Now().UTC(),
	}
}

// ID returns the user's identifier.
func (u *User) ID() uuid.UUID { return u.id }

// Name returns the name the user was registered under.
func (u *User) Name() string { return u.name }

// Board returns the board the user belongs to.
func (u *User) Board() *Board { return u.board }

// CreatedAt returns when the user was registered.
func (u *User) CreatedAt() time.Time { return u.createdAt }

func (u *User) String() string { return u.name }

// Reputation returns the user's current score. It starts at zero and may
// go negative through down-votes.
func (u *User) Reputation() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.reputation
}

// AskQuestion posts a new question authored by u.
func (u *User) AskQuestion(body string) *Question {
	q := newQuestion(u, body)

	u.board.logger.Debug("question asked",
		"user", u.name,
		"question_id", q.id)

	return q
}

// AnswerQuestion posts an answer to q authored by u. Authors may answer
// their own questions.
func (u *User) AnswerQuestion(q *Question, body string) *Answer {
	a := newAnswer(u, q, body)
	q.addAnswer(a)

	u.board.logger.Debug("question answered",
		"user", u.name,
		"question_id", q.id,
		"answer_id", a.id)

	return a
}

// UpVote records u's up-vote on target and rewards target's author.
func (u *User) UpVote(target Votable) error {
	return u.Vote(target, VoteUp)
}

// DownVote records u's down-vote on target and applies the down-vote
// delta to target's author.
func (u *User) DownVote(target Votable) error {
	return u.Vote(target, VoteDown)
}

// Vote records u's vote on target in the given direction.
//
// Voting on one's own content, on content from another board, or repeating
// the current vote fails with a *VotingError and changes nothing. Voting the
// opposite way replaces the earlier vote: its delta is reverted and the new
// one applied.
func (u *User) Vote(target Votable, dir VoteDirection) error {
	author := target.Author()

	switch {
	case author == u:
		return u.rejectVote(target, ErrSelfVote)
	case author.board != u.board:
		return u.rejectVote(target, ErrForeignBoard)
	}

	previous, err := target.recordVote(u, dir)
	if err != nil {
		return u.rejectVote(target, err)
	}

	policy := u.board.policy
	delta := policy.Delta(target.voteEvent(dir))
	if previous != VoteNone {
		delta -= policy.Delta(target.voteEvent(previous))
	}
	rep := author.adjustReputation(delta)

	u.board.logger.Debug("vote recorded",
		"user", u.name,
		"target", target.kind(),
		"target_id", target.ID(),
		"direction", dir.String(),
		"previous", previous.String(),
		"author", author.name,
		"delta", delta,
		"reputation", rep)

	return nil
}

// AcceptAnswer marks a as the accepted answer to its question and rewards
// a's author. Only the question's author may accept, and only once per
// question; violations fail with an *AnswerAcceptanceError.
func (u *User) AcceptAnswer(a *Answer) error {
	q := a.question
	if q.author != u {
		return u.rejectAcceptance(a, ErrNotQuestionAuthor)
	}

	if !q.markAccepted(a) {
		return u.rejectAcceptance(a, ErrAnswerAlreadyAccepted)
	}

	delta := u.board.policy.Delta(reputation.EventAnswerAccepted)
	rep := a.author.adjustReputation(delta)

	u.board.logger.Debug("answer accepted",
		"user", u.name,
		"question_id", q.id,
		"answer_id", a.id,
		"author", a.author.name,
		"delta", delta,
		"reputation", rep)

	return nil
}

func (u *User) adjustReputation(delta int) int {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.reputation += delta
	return u.reputation
}

func (u *User) rejectVote(target Votable, reason error) error {
	err := &VotingError{Voter: u.name, Target: target.kind(), Err: reason}
	u.board.logger.Info("vote rejected",
		"user", u.name,
		"target_id", target.ID(),
		"error", err)
	return err
}

func (u *User) rejectAcceptance(a *Answer, reason error) error {
	err := &AnswerAcceptanceError{User: u.name, Err: reason}
	u.board.logger.Info("acceptance rejected",
		"user", u.name,
		"answer_id", a.id,
		"error", err)
	return err
}
