// Package main runs the canonical question-and-answer scenario against a
// board configured from the environment and logs the resulting reputations.
package main

import (
	"errors"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/overboard/internal/config"
	"github.com/phrazzld/overboard/internal/domain"
	"github.com/phrazzld/overboard/internal/domain/reputation"
	"github.com/phrazzld/overboard/internal/platform/logger"
)

func main() {
	board, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := runScenario(board); err != nil {
		log.Fatalf("Scenario failed: %v", err)
	}

	for _, u := range board.Users() {
		slog.Info("final reputation", "user", u.Name(), "reputation", u.Reputation())
	}
}

// initializeApp loads configuration, sets up logging and builds the board.
func initializeApp() (*domain.Board, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return buildBoard(cfg)
}

func buildBoard(cfg *config.Config) (*domain.Board, error) {
	appLogger, err := logger.Setup(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	policy, err := reputation.NewPolicy(cfg.Reputation)
	if err != nil {
		return nil, err
	}

	appLogger.Info("configuration loaded",
		"log_level", cfg.Log.Level,
		"topic", cfg.Board.Topic)
	appLogger.Debug("reputation policy", "policy", fmt.Sprintf("%+v", policy.Config()))

	board, err := domain.NewBoardWithPolicy(cfg.Board.Topic, policy, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}
	return board, nil
}

// runScenario has a questioner ask, a bystander up-vote the question, an
// answerer reply, the questioner up-vote and accept the answer, and finally
// the answerer try to down-vote their own answer, which must be rejected.
func runScenario(board *domain.Board) error {
	questioner, err := board.CreateUser("questioner_user")
	if err != nil {
		return err
	}
	answerer, err := board.CreateUser("answerer_user")
	if err != nil {
		return err
	}
	other, err := board.CreateUser("other_user")
	if err != nil {
		return err
	}

	q := questioner.AskQuestion("question?")
	if err := other.UpVote(q); err != nil {
		return err
	}

	a := answerer.AnswerQuestion(q, "answer.")
	if err := questioner.UpVote(a); err != nil {
		return err
	}
	if err := questioner.AcceptAnswer(a); err != nil {
		return err
	}

	err = answerer.DownVote(a)
	if !errors.Is(err, domain.ErrSelfVote) {
		return fmt.Errorf("expected self-vote rejection, got %v", err)
	}

	return nil
}
