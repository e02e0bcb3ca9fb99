package draft

import (
	"database/sql"
	"time"

	_ "github.com/glebarez/go-sqlite"
)

// Store — локальное durable-хранилище черновиков поверх sqlite.
// Один слот — одна строка; запись является атомарной заменой по ключу.
type Store struct {
	db *sql.DB
}

// OpenStore открывает (и при необходимости создаёт) файл хранилища
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS drafts (
			slot     TEXT PRIMARY KEY,
			payload  TEXT NOT NULL,
			saved_at DATETIME NOT NULL
		)`)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Put replaces the slot's payload (insert or overwrite, single atomic write)
func (s *Store) Put(slot, payload string, savedAt time.Time) error {
	_, err := s.db.Exec(`
		INSERT INTO drafts (slot, payload, saved_at) VALUES (?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET payload = ?, saved_at = ?`,
		slot, payload, savedAt, payload, savedAt)
	return err
}

// Get returns the slot's payload; ok is false when the slot is empty
func (s *Store) Get(slot string) (payload string, ok bool, err error) {
	err = s.db.QueryRow(`SELECT payload FROM drafts WHERE slot = ?`, slot).Scan(&payload)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return payload, true, nil
}

// Delete очищает слот; отсутствие слота не является ошибкой
func (s *Store) Delete(slot string) error {
	_, err := s.db.Exec(`DELETE FROM drafts WHERE slot = ?`, slot)
	return err
}

// Close закрывает хранилище
func (s *Store) Close() error {
	return s.db.Close()
}
