// internal/settings/settings.go
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Settings — пользовательские настройки, переживающие перезапуск.
type Settings struct {
	InvertColors   bool `json:"invert_colors"`
	UnlockedLevels int  `json:"unlocked_levels"`
}

// Default — настройки первого запуска: открыт только первый уровень.
func Default() Settings {
	return Settings{UnlockedLevels: 1}
}

// Load читает настройки из файла. Отсутствующий файл — не ошибка.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("failed to read settings: %w", err)
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if s.UnlockedLevels < 1 {
		s.UnlockedLevels = 1
	}
	return s, nil
}

// Save записывает настройки атомарно через временный файл.
func Save(path string, s Settings) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create settings dir: %w", err)
		}
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return os.Rename(tmp, path)
}

// Unlock открывает уровень, следующий за пройденным. Возвращает true,
// если что-то изменилось.
func (s *Settings) Unlock(completed int) bool {
	if completed+1 <= s.UnlockedLevels {
		return false
	}
	s.UnlockedLevels = completed + 1
	return true
}

// ToggleInvert переключает инверсию палитры.
func (s *Settings) ToggleInvert() bool {
	s.InvertColors = !s.InvertColors
	return s.InvertColors
}
