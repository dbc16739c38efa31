package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/gophchat/internal/models"
)

var settingsKey = []byte("chatSettings")

// GetSettings возвращает сохраненные настройки или значения по умолчанию
func (s *Storage) GetSettings(_ context.Context) (models.Settings, error) {
	settings := models.DefaultSettings()

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSettings)
		if bucket == nil {
			return fmt.Errorf("settings bucket not found")
		}

		data := bucket.Get(settingsKey)
		if data == nil {
			return nil
		}
		// поля, которых нет в JSON, сохраняют значения по умолчанию
		if err := json.Unmarshal(data, &settings); err != nil {
			return fmt.Errorf("failed to unmarshal settings: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.Settings{}, mapClosed(err)
	}

	if _, err := models.ParseTimeFormat(string(settings.TimeFormat)); err != nil {
		settings.TimeFormat = models.DefaultSettings().TimeFormat
	}
	return settings, nil
}

// SaveSettings сохраняет настройки отображения
func (s *Storage) SaveSettings(_ context.Context, settings models.Settings) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSettings)
		if bucket == nil {
			return fmt.Errorf("settings bucket not found")
		}

		data, err := json.Marshal(settings)
		if err != nil {
			return fmt.Errorf("failed to marshal settings: %w", err)
		}
		return bucket.Put(settingsKey, data)
	})
	return mapClosed(err)
}
