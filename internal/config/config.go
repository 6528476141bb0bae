package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Log        LogConfig        `mapstructure:"log" validate:"required"`
	Board      BoardConfig      `mapstructure:"board" validate:"required"`
	Reputation ReputationConfig `mapstructure:"reputation" validate:"required"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// BoardConfig contains settings for the board created by the scenario runner.
type BoardConfig struct {
	Topic string `mapstructure:"topic" validate:"required"`
}

// ReputationConfig holds the point deltas applied to content authors.
// Rewards must not be negative and penalties must not be positive.
type ReputationConfig struct {
	QuestionUpVote   int `mapstructure:"question_upvote" validate:"gte=0"`
	QuestionDownVote int `mapstructure:"question_downvote" validate:"lte=0"`
	AnswerUpVote     int `mapstructure:"answer_upvote" validate:"gte=0"`
	AnswerDownVote   int `mapstructure:"answer_downvote" validate:"lte=0"`
	AnswerAccepted   int `mapstructure:"answer_accepted" validate:"gte=0"`
}

// DefaultReputation returns the standard point table.
func DefaultReputation() ReputationConfig {
	return ReputationConfig{
		QuestionUpVote:   5,
		QuestionDownVote: 0,
		AnswerUpVote:     10,
		AnswerDownVote:   -1,
		AnswerAccepted:   15,
	}
}
