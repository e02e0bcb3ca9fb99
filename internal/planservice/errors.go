package planservice

import (
	"errors"
	"fmt"
	"strings"
)

// Типизированные ошибки оркестрации планов. Ошибки владения и "не найдено"
// различаются только внутри: наружу обе уходят одинаково непрозрачно, чтобы
// не раскрывать существование чужих планов.
var (
	// ErrPlanLimitReached — владелец уже имеет максимум планов
	ErrPlanLimitReached = errors.New("достигнут лимит планов")

	// ErrExerciseNotFound — команда ссылается на несуществующее упражнение
	ErrExerciseNotFound = errors.New("упражнение не найдено в каталоге")

	// ErrPlanNotFound — план не существует или мягко удалён
	ErrPlanNotFound = errors.New("план не найден")

	// ErrForbidden — план существует, но принадлежит другому владельцу
	ErrForbidden = errors.New("план принадлежит другому пользователю")
)

// missingExercisesError carries the ids that failed the existence check
type missingExercisesError struct {
	IDs []string
}

func (e *missingExercisesError) Error() string {
	return fmt.Sprintf("%v: %s", ErrExerciseNotFound, strings.Join(e.IDs, ", "))
}

func (e *missingExercisesError) Unwrap() error {
	return ErrExerciseNotFound
}
