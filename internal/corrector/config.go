package corrector

import (
	"errors"
	"fmt"
)

// Эмпирические константы legacy-поведения, менять нельзя
const (
	DefaultSuggestions = 100
	DefaultEditLimit   = 2
	DefaultRatioFloor  = -1.99
)

var ErrInvalidConfig = errors.New("invalid corrector config")

type CorrectorConfig struct {
	Suggestions         int     // Сколько подсказок запрашивать у лексикона
	EditLimit           int     // Порог числа правок для раннего выхода
	RatioFloor          float64 // Нижняя граница частотного бонуса
	StopAfterCorrection bool    // Повторный стоп-фильтр по исправленному слову
	StemFallback        bool    // Искать подсказки по основе, если по слову ничего нет
}

// DefaultConfig returns the legacy scoring policy.
func DefaultConfig() CorrectorConfig {
	return CorrectorConfig{
		Suggestions: DefaultSuggestions,
		EditLimit:   DefaultEditLimit,
		RatioFloor:  DefaultRatioFloor,
	}
}

// Validate checks the policy values.
func (c CorrectorConfig) Validate() error {
	if c.Suggestions < 0 {
		return fmt.Errorf("%w: suggestions %d < 0", ErrInvalidConfig, c.Suggestions)
	}
	if c.EditLimit < 0 {
		return fmt.Errorf("%w: edit limit %d < 0", ErrInvalidConfig, c.EditLimit)
	}
	if c.RatioFloor > 0 {
		return fmt.Errorf("%w: ratio floor %.2f > 0", ErrInvalidConfig, c.RatioFloor)
	}
	return nil
}
