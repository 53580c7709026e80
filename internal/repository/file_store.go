package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"arena-team-bot/internal/model"
)

// FileStore хранит снапшот состояния в одном JSON-файле.
// Каждое сохранение полностью перезаписывает файл, без атомарного rename.
type FileStore struct {
	path string
}

// NewFileStore создаёт хранилище поверх файла path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path возвращает путь к файлу состояния.
func (s *FileStore) Path() string {
	return s.path
}

// Load читает снапшот из файла. Отсутствующий файл даёт ErrSnapshotNotFound,
// нераспознаваемый JSON даёт ErrSnapshotCorrupted, некорректные записи дают ErrSnapshotInvalid.
func (s *FileStore) Load(ctx context.Context) (model.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return model.Snapshot{}, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return model.Snapshot{}, fmt.Errorf("read %s: %w", s.path, ErrSnapshotNotFound)
		}
		return model.Snapshot{}, fmt.Errorf("read %s: %w", s.path, err)
	}

	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return model.Snapshot{}, fmt.Errorf("decode %s: %w: %v", s.path, ErrSnapshotCorrupted, err)
	}
	snap = snap.Normalize()

	if err := snap.Validate(); err != nil {
		return model.Snapshot{}, fmt.Errorf("validate %s: %w: %v", s.path, ErrSnapshotInvalid, err)
	}
	return snap, nil
}

// Save полностью перезаписывает файл текущим снапшотом.
func (s *FileStore) Save(ctx context.Context, snap model.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(snap.Normalize(), "", "    ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

// Close ничего не делает: файл открывается только на время чтения и записи.
func (s *FileStore) Close() error {
	return nil
}
