package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testBoard holds a board with a questioner, an answerer and a bystander.
type testBoard struct {
	board      *Board
	questioner *User
	answerer   *User
	other      *User
}

func newTestBoard(t *testing.T) *testBoard {
	t.Helper()

	board, err := NewBoard("board_topic")
	require.NoError(t, err)

	create := func(name string) *User {
		u, err := board.CreateUser(name)
		require.NoError(t, err)
		return u
	}

	return &testBoard{
		board:      board,
		questioner: create("questioner_user"),
		answerer:   create("answerer_user"),
		other:      create("other_user"),
	}
}

func TestQuestionUpVoteRewardsQuestioner(t *testing.T) {
	t.Parallel()
	tb := newTestBoard(t)

	initial := tb.questioner.Reputation()
	q := tb.questioner.AskQuestion("question?")

	require.NoError(t, tb.other.UpVote(q))
	assert.Equal(t, initial+5, tb.questioner.Reputation())
	assert.Equal(t, 0, tb.other.Reputation(), "voter's reputation is untouched")
}

func TestQuestionDownVoteLeavesQuestionerUnchanged(t *testing.T) {
	t.Parallel()
	tb := newTestBoard(t)

	initial := tb.questioner.Reputation()
	q := tb.questioner.AskQuestion("question?")

	require.NoError(t, tb.other.DownVote(q))
	assert.Equal(t, initial, tb.questioner.Reputation())
	assert.Equal(t, 1, q.DownVotes())
}

func TestAnswerUpVoteRewardsAnswerer(t *testing.T) {
	t.Parallel()
	tb := newTestBoard(t)

	initial := tb.answerer.Reputation()
	q := tb.questioner.AskQuestion("question?")
	a := tb.answerer.AnswerQuestion(q, "answer.")

	require.NoError(t, tb.questioner.UpVote(a))
	assert.Equal(t, initial+10, tb.answerer.Reputation())
}

func TestAnswerDownVotePenalizesAnswerer(t *testing.T) {
	t.Parallel()
	tb := newTestBoard(t)

	initial := tb.answerer.Reputation()
	q := tb.questioner.AskQuestion("question?")
	a := tb.answerer.AnswerQuestion(q, "answer.")

	require.NoError(t, tb.questioner.DownVote(a))
	assert.Equal(t, initial-1, tb.answerer.Reputation(), "reputation may go negative")
}

func TestAcceptAnswer(t *testing.T) {
	t.Parallel()
	tb := newTestBoard(t)

	initial := tb.answerer.Reputation()
	q := tb.questioner.AskQuestion("question?")
	a := tb.answerer.AnswerQuestion(q, "answer.")
	assert.False(t, a.IsAccepted())

	require.NoError(t, tb.questioner.AcceptAnswer(a))
	assert.True(t, a.IsAccepted())
	assert.Same(t, a, q.AcceptedAnswer())
	assert.Equal(t, initial+15, tb.answerer.Reputation())
	assert.Equal(t, 0, tb.questioner.Reputation())
}

func TestVotingOnOwnContentFails(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		target func(tb *testBoard) Votable
		vote   func(u *User, v Votable) error
	}{
		{
			name:   "upvote own question",
			target: func(tb *testBoard) Votable { return tb.questioner.AskQuestion("question?") },
			vote:   (*User).UpVote,
		},
		{
			name:   "downvote own question",
			target: func(tb *testBoard) Votable { return tb.questioner.AskQuestion("question?") },
			vote:   (*User).DownVote,
		},
		{
			name: "upvote own answer",
			target: func(tb *testBoard) Votable {
				return tb.questioner.AnswerQuestion(tb.questioner.AskQuestion("question?"), "answer.")
			},
			vote: (*User).UpVote,
		},
		{
			name: "downvote own answer",
			target: func(tb *testBoard) Votable {
				return tb.questioner.AnswerQuestion(tb.questioner.AskQuestion("question?"), "answer.")
			},
			vote: (*User).DownVote,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tb := newTestBoard(t)
			target := tc.target(tb)

			err := tc.vote(tb.questioner, target)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrVoting)
			assert.ErrorIs(t, err, ErrSelfVote)

			var votingErr *VotingError
			require.True(t, errors.As(err, &votingErr))
			assert.Equal(t, "questioner_user", votingErr.Voter)

			assert.Equal(t, 0, tb.questioner.Reputation())
			assert.Equal(t, 0, target.UpVotes()+target.DownVotes())
			assert.Equal(t, VoteNone, target.VoteOf(tb.questioner))
		})
	}
}

func TestAcceptAnswerByNonAuthorFails(t *testing.T) {
	t.Parallel()

	for _, actor := range []string{"answerer_user", "other_user"} {
		t.Run(actor, func(t *testing.T) {
			t.Parallel()
			tb := newTestBoard(t)

			q := tb.questioner.AskQuestion("question?")
			a := tb.answerer.AnswerQuestion(q, "answer.")
			u, ok := tb.board.User(actor)
			require.True(t, ok)

			err := u.AcceptAnswer(a)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrAnswerAcceptance)
			assert.ErrorIs(t, err, ErrNotQuestionAuthor)
			assert.False(t, errors.Is(err, ErrVoting))

			var acceptErr *AnswerAcceptanceError
			require.True(t, errors.As(err, &acceptErr))
			assert.Equal(t, actor, acceptErr.User)

			assert.False(t, a.IsAccepted())
			assert.Nil(t, q.AcceptedAnswer())
			assert.Equal(t, 0, tb.answerer.Reputation())
		})
	}
}

func TestAcceptAnswerOnlyOncePerQuestion(t *testing.T) {
	t.Parallel()
	tb := newTestBoard(t)

	q := tb.questioner.AskQuestion("question?")
	first := tb.answerer.AnswerQuestion(q, "answer.")
	second := tb.other.AnswerQuestion(q, "another answer.")

	require.NoError(t, tb.questioner.AcceptAnswer(first))

	err := tb.questioner.AcceptAnswer(first)
	assert.ErrorIs(t, err, ErrAnswerAlreadyAccepted)

	err = tb.questioner.AcceptAnswer(second)
	assert.ErrorIs(t, err, ErrAnswerAcceptance)
	assert.ErrorIs(t, err, ErrAnswerAlreadyAccepted)

	assert.True(t, first.IsAccepted())
	assert.False(t, second.IsAccepted())
	assert.Equal(t, 15, tb.answerer.Reputation())
	assert.Equal(t, 0, tb.other.Reputation())
}

func TestAuthorMayAnswerOwnQuestion(t *testing.T) {
	t.Parallel()
	tb := newTestBoard(t)

	q := tb.questioner.AskQuestion("question?")
	a := tb.questioner.AnswerQuestion(q, "self answer.")

	assert.Same(t, tb.questioner, a.Author())
	assert.Same(t, q, a.Question())
	assert.Equal(t, "self answer.", a.Body())

	// Self-acceptance is allowed and rewards the author.
	require.NoError(t, tb.questioner.AcceptAnswer(a))
	assert.Equal(t, 15, tb.questioner.Reputation())
}

func TestBoardScenario(t *testing.T) {
	t.Parallel()
	tb := newTestBoard(t)

	q := tb.questioner.AskQuestion("question?")
	require.NoError(t, tb.other.UpVote(q))
	assert.Equal(t, 5, tb.questioner.Reputation())

	a := tb.answerer.AnswerQuestion(q, "answer.")
	require.NoError(t, tb.questioner.UpVote(a))
	assert.Equal(t, 10, tb.answerer.Reputation())

	require.NoError(t, tb.questioner.AcceptAnswer(a))
	assert.Equal(t, 25, tb.answerer.Reputation())
	assert.True(t, a.IsAccepted())

	err := tb.answerer.DownVote(a)
	assert.ErrorIs(t, err, ErrVoting)
	assert.Equal(t, 25, tb.answerer.Reputation())
	assert.Equal(t, 5, tb.questioner.Reputation())
	assert.Equal(t, 0, tb.other.Reputation())
}
