// Package reputation holds the point table applied to content authors when
// their questions and answers are voted on or accepted.
package reputation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/overboard/internal/config"
)

// Event identifies something that happened to a piece of content.
type Event string

// Events consulted by voting and acceptance.
const (
	EventQuestionUpVoted   Event = "question_upvoted"
	EventQuestionDownVoted Event = "question_downvoted"
	EventAnswerUpVoted     Event = "answer_upvoted"
	EventAnswerDownVoted   Event = "answer_downvoted"
	EventAnswerAccepted    Event = "answer_accepted"
)

// ErrUnknownEvent is returned by DeltaFor for events outside the table.
var ErrUnknownEvent = errors.New("unknown reputation event")

// Policy maps each event to the points awarded to the content's author.
// A Policy is immutable once built.
type Policy struct {
	deltas map[Event]int
}

// NewDefaultPolicy returns the standard point table.
func NewDefaultPolicy() *Policy {
	p, err := NewPolicy(config.DefaultReputation())
	if err != nil {
		// The defaults satisfy every bound.
		panic(err)
	}
	return p
}

// NewPolicy builds a Policy from configured deltas.
// Rewards must be non-negative and penalties non-positive.
func NewPolicy(cfg config.ReputationConfig) (*Policy, error) {
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid reputation policy: %w", err)
	}

	return &Policy{
		deltas: map[Event]int{
			EventQuestionUpVoted:   cfg.QuestionUpVote,
			EventQuestionDownVoted: cfg.QuestionDownVote,
			EventAnswerUpVoted:     cfg.AnswerUpVote,
			EventAnswerDownVoted:   cfg.AnswerDownVote,
			EventAnswerAccepted:    cfg.AnswerAccepted,
		},
	}, nil
}

// Delta returns the points for event, or zero for an unknown event.
func (p *Policy) Delta(event Event) int {
	return p.deltas[event]
}

// DeltaFor is Delta that reports unknown events.
func (p *Policy) DeltaFor(event Event) (int, error) {
	d, ok := p.deltas[event]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownEvent, event)
	}
	return d, nil
}

// Config returns the table in its configuration form.
func (p *Policy) Config() config.ReputationConfig {
	return config.ReputationConfig{
		QuestionUpVote:   p.deltas[EventQuestionUpVoted],
		QuestionDownVote: p.deltas[EventQuestionDownVoted],
		AnswerUpVote:     p.deltas[EventAnswerUpVoted],
		AnswerDownVote:   p.deltas[EventAnswerDownVoted],
		AnswerAccepted:   p.deltas[EventAnswerAccepted],
	}
}
