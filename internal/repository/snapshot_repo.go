package repository

import (
	"context"
	"fmt"

	"arena-team-bot/internal/model"

	"github.com/jackc/pgx/v5"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS arena_teams (
    team_name      TEXT PRIMARY KEY,
    player1_id     TEXT NOT NULL,
    player2_id     TEXT,
    player1_handle TEXT NOT NULL,
    player2_handle TEXT
);

CREATE TABLE IF NOT EXISTS arena_pending_invites (
    invitee_id TEXT PRIMARY KEY,
    team_name  TEXT NOT NULL,
    inviter_id TEXT NOT NULL
);
`

// SnapshotRepo хранит снапшот состояния в двух таблицах Postgres.
// Save переписывает обе таблицы целиком в одной транзакции.
type SnapshotRepo struct {
	db *Postgres
	tx *TransactionManager
}

// NewSnapshotRepo создаёт репозиторий снапшотов поверх подключения к Postgres.
func NewSnapshotRepo(db *Postgres, tx *TransactionManager) *SnapshotRepo {
	return &SnapshotRepo{db: db, tx: tx}
}

// EnsureSchema создаёт таблицы, если их ещё нет.
func (r *SnapshotRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// Load читает команды и инвайты. Пустые таблицы возвращают пустой снапшот без ошибки.
func (r *SnapshotRepo) Load(ctx context.Context) (model.Snapshot, error) {
	q := r.db.GetQueryExecutor(ctx)
	snap := model.EmptySnapshot()

	rows, err := q.Query(ctx, `
SELECT team_name, player1_id, player2_id, player1_handle, player2_handle
FROM arena_teams
ORDER BY team_name
`)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("query teams: %w", err)
	}
	teams, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Team, error) {
		var t model.Team
		err := row.Scan(&t.TeamName, &t.Player1ID, &t.Player2ID, &t.Player1Handle, &t.Player2Handle)
		return t, err
	})
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("scan teams: %w", err)
	}
	for _, t := range teams {
		snap.Teams[t.TeamName] = t
	}

	rows, err = q.Query(ctx, `
SELECT invitee_id, team_name, inviter_id
FROM arena_pending_invites
ORDER BY invitee_id
`)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("query invites: %w", err)
	}
	invites, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.PendingInvite, error) {
		var inv model.PendingInvite
		err := row.Scan(&inv.InviteeID, &inv.TeamName, &inv.InviterID)
		return inv, err
	})
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("scan invites: %w", err)
	}
	for _, inv := range invites {
		snap.PendingInvites[inv.InviteeID] = inv
	}

	if err := snap.Validate(); err != nil {
		return model.Snapshot{}, fmt.Errorf("%w: %v", ErrSnapshotInvalid, err)
	}
	return snap, nil
}

// Save заменяет содержимое обеих таблиц снапшотом.
func (r *SnapshotRepo) Save(ctx context.Context, snap model.Snapshot) error {
	return r.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		q := r.db.GetQueryExecutor(ctx)

		batch := &pgx.Batch{}
		batch.Queue(`DELETE FROM arena_pending_invites`)
		batch.Queue(`DELETE FROM arena_teams`)
		for _, t := range snap.Teams {
			batch.Queue(`
INSERT INTO arena_teams (team_name, player1_id, player2_id, player1_handle, player2_handle)
VALUES ($1, $2, $3, $4, $5)
`, t.TeamName, t.Player1ID, t.Player2ID, t.Player1Handle, t.Player2Handle)
		}
		for _, inv := range snap.PendingInvites {
			batch.Queue(`
INSERT INTO arena_pending_invites (invitee_id, team_name, inviter_id)
VALUES ($1, $2, $3)
`, inv.InviteeID, inv.TeamName, inv.InviterID)
		}

		br := q.SendBatch(ctx, batch)
		if err := br.Close(); err != nil {
			return fmt.Errorf("write snapshot: %w", err)
		}
		return nil
	})
}

// Close закрывает подключение к базе.
func (r *SnapshotRepo) Close() error {
	return r.db.Close()
}
