// Package service содержит бизнес-логику регистрации команд: реестр команд,
// рукопожатие инвайтов и выдачу командных ролей и каналов.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"arena-team-bot/internal/model"
	"arena-team-bot/internal/repository"
)

// SnapshotStore описывает контракт хранилища снапшота для бизнес-слоя.
type SnapshotStore interface {
	Load(ctx context.Context) (model.Snapshot, error)
	Save(ctx context.Context, snap model.Snapshot) error
}

// State владеет реестром команд и картой ожидающих инвайтов.
// Любая последовательность «прочитать, проверить, записать» выполняется под mu,
// после каждой успешной мутации снапшот целиком сохраняется в store.
type State struct {
	mu      sync.Mutex
	store   SnapshotStore
	log     *slog.Logger
	teams   map[string]model.Team
	invites map[string]model.PendingInvite

	// reserved: команда -> кандидат, для которого сейчас выдаются роли и каналы. Не сохраняется.
	reserved map[string]string
}

// NewState создаёт пустое состояние поверх хранилища.
func NewState(store SnapshotStore, log *slog.Logger) *State {
	snap := model.EmptySnapshot()
	return &State{
		store:    store,
		log:      log,
		teams:    snap.Teams,
		invites:  snap.PendingInvites,
		reserved: make(map[string]string),
	}
}

// Load читает снапшот при старте. Отсутствующее или нераспознаваемое хранилище
// считается пустым состоянием и сразу пересоздаётся; на некорректных записях возвращается ошибка.
func (s *State) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.store.Load(ctx)
	switch {
	case err == nil:
		s.teams = snap.Teams
		s.invites = snap.PendingInvites
		s.log.Info("state loaded",
			slog.Int("teams", len(s.teams)),
			slog.Int("pending_invites", len(s.invites)),
		)
		return nil
	case errors.Is(err, repository.ErrSnapshotNotFound), errors.Is(err, repository.ErrSnapshotCorrupted):
		s.log.Warn("state unavailable, starting empty", slog.Any("err", err))
		empty := model.EmptySnapshot()
		s.teams = empty.Teams
		s.invites = empty.PendingInvites
		if err := s.store.Save(ctx, empty); err != nil {
			return fmt.Errorf("recreate state: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("load state: %w", err)
	}
}

// Snapshot возвращает глубокую копию текущего состояния.
func (s *State) Snapshot() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

func (s *State) snapshotLocked() model.Snapshot {
	return model.Snapshot{Teams: s.teams, PendingInvites: s.invites}.Clone()
}

// update применяет мутацию под блокировкой и сохраняет снапшот.
// Если fn вернула ошибку, состояние не меняется. Если не удалось сохранить,
// изменения в памяти откатываются.
func (s *State) update(ctx context.Context, fn func(teams map[string]model.Team, invites map[string]model.PendingInvite) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.snapshotLocked()

	if err := fn(s.teams, s.invites); err != nil {
		s.teams = before.Teams
		s.invites = before.PendingInvites
		return err
	}

	if err := s.store.Save(ctx, s.snapshotLocked()); err != nil {
		s.teams = before.Teams
		s.invites = before.PendingInvites
		return ErrInternal("failed to save state", err)
	}
	return nil
}

// view выполняет fn под блокировкой без сохранения.
func (s *State) view(fn func(teams map[string]model.Team, invites map[string]model.PendingInvite) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(s.teams, s.invites)
}

// reserve выполняет fn под блокировкой с доступом к резервам слотов. Резервы живут только в памяти.
func (s *State) reserve(fn func(teams map[string]model.Team, reserved map[string]string) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(s.teams, s.reserved)
}

// reservedBy сообщает, за кем закреплён второй слот команды. Вызывается под mu.
func (s *State) reservedBy(teamName string) (string, bool) {
	holder, ok := s.reserved[teamName]
	return holder, ok
}

// rosteredIn возвращает имя команды, в которой состоит пользователь.
func rosteredIn(teams map[string]model.Team, userID string) (string, bool) {
	for name, t := range teams {
		if t.HasPlayer(userID) {
			return name, true
		}
	}
	return "", false
}
