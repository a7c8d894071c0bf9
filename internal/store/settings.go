package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
)

func (s *Store) GetSetting(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return "", fmt.Errorf("get setting %q: %w", key, err)
	}
	return value, nil
}

func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return err
}

func (s *Store) GetAllSettings() ([]Setting, error) {
	rows, err := s.db.Query(`SELECT key, value FROM settings ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()

	var settings []Setting
	for rows.Next() {
		var s Setting
		if err := rows.Scan(&s.Key, &s.Value); err != nil {
			return nil, err
		}
		settings = append(settings, s)
	}
	return settings, rows.Err()
}

// LoadPreferences overlays every remembered preference onto base. Keys that
// were never saved, or hold unparsable numbers, keep base's value.
func (s *Store) LoadPreferences(base Preferences) (Preferences, error) {
	p := base
	ints := []struct {
		key string
		dst *int
	}{
		{keyDuration, &p.Duration},
		{keySprints, &p.Sprints},
		{keyEnergy, &p.Energy},
		{keyAmbience, &p.Ambience},
	}
	for _, f := range ints {
		v, ok, err := s.lookup(f.key)
		if err != nil {
			return base, err
		}
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(v); err == nil {
			*f.dst = n
		}
	}

	seed, ok, err := s.lookup(keySeed)
	if err != nil {
		return base, err
	}
	if ok && seed != "" {
		p.Seed = seed
	}
	return p, nil
}

// SavePreferences remembers p in one transaction.
func (s *Store) SavePreferences(p Preferences) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	values := []Setting{
		{keyDuration, strconv.Itoa(p.Duration)},
		{keySprints, strconv.Itoa(p.Sprints)},
		{keySeed, p.Seed},
		{keyEnergy, strconv.Itoa(p.Energy)},
		{keyAmbience, strconv.Itoa(p.Ambience)},
	}
	for _, v := range values {
		if _, err := tx.Exec(
			`INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			v.Key, v.Value,
		); err != nil {
			return fmt.Errorf("save preference %q: %w", v.Key, err)
		}
	}
	return tx.Commit()
}

// ForgetPreferences deletes every remembered preference.
func (s *Store) ForgetPreferences() error {
	if _, err := s.db.Exec(`DELETE FROM settings`); err != nil {
		return fmt.Errorf("forget preferences: %w", err)
	}
	return nil
}

func (s *Store) lookup(key string) (string, bool, error) {
	v, err := s.GetSetting(key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}
