package domain

import (
	"errors"
	"fmt"
)

// Rule-violation categories. Every *VotingError matches ErrVoting and every
// *AnswerAcceptanceError matches ErrAnswerAcceptance under errors.Is.
var (
	ErrVoting           = errors.New("voting rule violated")
	ErrAnswerAcceptance = errors.New("answer acceptance rule violated")
)

// Reasons carried by the rule-violation errors.
var (
	ErrSelfVote              = errors.New("cannot vote on own content")
	ErrDuplicateVote         = errors.New("vote already recorded")
	ErrInvalidVoteDirection  = errors.New("invalid vote direction")
	ErrForeignBoard          = errors.New("content belongs to another board")
	ErrNotQuestionAuthor     = errors.New("only the question's author may accept")
	ErrAnswerAlreadyAccepted = errors.New("question already has an accepted answer")
)

// Board errors.
var (
	ErrEmptyBoardTopic   = errors.New("board topic cannot be empty")
	ErrEmptyUserName     = errors.New("user name cannot be empty")
	ErrDuplicateUserName = errors.New("user name already taken")
)

// VotingError reports a rejected up- or down-vote.
type VotingError struct {
	Voter  string
	Target string
	Err    error
}

func (e *VotingError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %s on %s: %v", ErrVoting, e.Voter, e.Target, e.Err)
}

func (e *VotingError) Unwrap() []error {
	if e == nil {
		return nil
	}
	return []error{ErrVoting, e.Err}
}

// AnswerAcceptanceError reports a rejected acceptance.
type AnswerAcceptanceError struct {
	User string
	Err  error
}

func (e *AnswerAcceptanceError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %s: %v", ErrAnswerAcceptance, e.User, e.Err)
}

func (e *AnswerAcceptanceError) Unwrap() []error {
	if e == nil {
		return nil
	}
	return []error{ErrAnswerAcceptance, e.Err}
}
