package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/pkg"
)

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

type GameOptions struct {
	BoardSize   int
	PlayerNames [2]string
}

// GameManager runs a single game between two local sessions.
type GameManager struct {
	logger      *slog.Logger
	sessionRepo sessionRepo
	options     GameOptions

	game *entity.Game
}

func NewGameManager(logger *slog.Logger, sessionRepo sessionRepo, options GameOptions) *GameManager {
	return &GameManager{
		logger:      logger.With("component", "game_manager"),
		sessionRepo: sessionRepo,
		options:     options,
	}
}

// Start - creates a new game, sets it up for the first session and lets the second join.
func (that *GameManager) Start(ctx context.Context) (*entity.Game, error) {
	gameID, err := pkg.GenerateGameID()
	if err != nil {
		return nil, fmt.Errorf("error generating game ID: %w", err)
	}

	game, err := entity.NewGame(gameID, that.options.BoardSize, that.options.PlayerNames)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	sessionOne, err := pkg.GenerateNewSessionID()
	if err != nil {
		return nil, fmt.Errorf("error generating session ID: %w", err)
	}

	playerOne, err := game.Setup(sessionOne)
	if err != nil {
		return nil, fmt.Errorf("failed to set up game: %w", err)
	}

	if err = that.saveSession(ctx, game, sessionOne, entity.SlotOne, playerOne); err != nil {
		return nil, err
	}

	sessionTwo, err := pkg.GenerateNewSessionID()
	if err != nil {
		return nil, fmt.Errorf("error generating session ID: %w", err)
	}

	playerTwo, err := game.Join(sessionTwo)
	if err != nil {
		return nil, fmt.Errorf("failed to join game: %w", err)
	}

	if err = that.saveSession(ctx, game, sessionTwo, entity.SlotTwo, playerTwo); err != nil {
		return nil, err
	}

	that.game = game

	that.logger.Info("game started", "gameID", game.ID(), "size", game.Board().Size())

	return game, nil
}

// MakeTurn - plays row, col for the player bound to the slot's session and returns the resulting status.
func (that *GameManager) MakeTurn(ctx context.Context, slot, row, col int) (entity.GameStatus, error) {
	if that.game == nil {
		return entity.StatusNotOver, apperror.ErrGameNotSetUp
	}

	log := that.logger.With("method", "MakeTurn", "gameID", that.game.ID())

	sessionID, err := that.sessionBySlot(slot)
	if err != nil {
		return that.game.Status(), err
	}

	player, err := that.PlayerBySession(ctx, sessionID)
	if err != nil {
		return that.game.Status(), fmt.Errorf("failed to get player for slot %d: %w", slot, err)
	}

	if err = player.MakeMove(row, col); err != nil {
		log.Debug("move rejected", "player", player.Name, "row", row, "col", col, "error", err)
		return that.game.Status(), fmt.Errorf("failed to make turn: %w", err)
	}

	status := that.game.Status()

	log.Debug("move accepted", "player", player.Name, "row", row, "col", col, "status", status.String())

	if status.IsTerminal() {
		log.Info("game over", "result", that.game.Result())
		that.cleanupGame(ctx)
	}

	return status, nil
}

// PlayerBySession - resolves the player a session id was bound to.
func (that *GameManager) PlayerBySession(ctx context.Context, sessionID string) (*entity.Player, error) {
	if that.game == nil {
		return nil, apperror.ErrGameNotSetUp
	}

	session, err := that.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if session.GameID != that.game.ID() {
		return nil, fmt.Errorf("%w: session %s belongs to game %s", apperror.ErrSessionNotFound, sessionID, session.GameID)
	}

	player, err := that.game.PlayerBySlot(session.Slot)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return player, nil
}

func (that *GameManager) Game() *entity.Game {
	return that.game
}

func (that *GameManager) Status() entity.GameStatus {
	if that.game == nil {
		return entity.StatusNotOver
	}
	return that.game.Status()
}

func (that *GameManager) Result() string {
	if that.game == nil {
		return entity.ResultInProgress
	}
	return that.game.Result()
}

func (that *GameManager) sessionBySlot(slot int) (string, error) {
	switch slot {
	case entity.SlotOne:
		return that.game.SessionOne(), nil
	case entity.SlotTwo:
		return that.game.SessionTwo(), nil
	default:
		return "", fmt.Errorf("%w: slot %d", apperror.ErrUnknownPlayer, slot)
	}
}

func (that *GameManager) saveSession(ctx context.Context, game *entity.Game, sessionID string, slot int, player *entity.Player) error {
	session := &entity.Session{
		ID:         sessionID,
		GameID:     game.ID(),
		Slot:       slot,
		PlayerName: player.Name,
	}

	if err := that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

func (that *GameManager) cleanupGame(ctx context.Context) {
	log := that.logger.With("method", "cleanupGame", "gameID", that.game.ID())

	for _, sessionID := range []string{that.game.SessionOne(), that.game.SessionTwo()} {
		if err := that.sessionRepo.DeleteByID(ctx, sessionID); err != nil {
			log.Error("failed to delete session", "session", sessionID, "error", err)
		}
	}
}
