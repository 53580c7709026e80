package repository

import "errors"

var (
	// ErrSnapshotNotFound возвращается, если сохранённого состояния ещё нет.
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// ErrSnapshotCorrupted возвращается, если файл состояния не удалось разобрать как JSON.
	ErrSnapshotCorrupted = errors.New("snapshot corrupted")

	// ErrSnapshotInvalid возвращается, если снапшот разобран, но содержит некорректные записи.
	ErrSnapshotInvalid = errors.New("snapshot invalid")
)
