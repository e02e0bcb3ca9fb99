package planservice

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"fittracker/internal/models"
)

// DefaultPlanLimit — максимум не удалённых планов у одного владельца
const DefaultPlanLimit = 7

// PlanStore — хранилище планов; реализуется repository.PlanRepository
type PlanStore interface {
	InsertPlan(plan *models.Plan) error
	InsertMemberships(memberships []models.PlanExercise) error
	InsertSets(sets []models.PlanExerciseSet) error
	DeletePlan(planID string) error
	DeleteMemberships(planID string) error
	DeleteSets(planID string) error
	CountActiveByOwner(ownerID int64) (int, error)
	GetByID(planID string) (*models.Plan, error)
	GetWithDetails(planID string) (*models.Plan, error)
	ListByOwner(ownerID int64) ([]models.PlanListItem, error)
	SoftDelete(planID string) error
	UpdateHeader(plan *models.Plan) error
}

// ExerciseCatalog — проверка существования упражнений; реализуется
// repository.ExerciseRepository
type ExerciseCatalog interface {
	MissingIDs(ids []string) ([]string, error)
}

// Service turns a finalized composition command into persisted rows across
// the three plan collections. The store offers no multi-table transaction,
// so creation is an ordered write sequence with compensating deletes:
// plan row → memberships (undo: delete plan) → sets (undo: delete plan,
// cascade removes memberships).
type Service struct {
	plans   PlanStore
	catalog ExerciseCatalog
	limit   int
}

// New создаёт сервис; limit <= 0 означает DefaultPlanLimit
func New(plans PlanStore, catalog ExerciseCatalog, limit int) *Service {
	if limit <= 0 {
		limit = DefaultPlanLimit
	}
	return &Service{plans: plans, catalog: catalog, limit: limit}
}

// Create materializes the command for the owner: limit check, referential
// check, then the ordered insert sequence. Nothing is written when either
// check fails.
func (s *Service) Create(ownerID int64, cmd models.PlanCompositionCommand) (*models.Plan, error) {
	count, err := s.plans.CountActiveByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	if count >= s.limit {
		return nil, ErrPlanLimitReached
	}

	if err := s.checkExercisesExist(cmd.Exercises); err != nil {
		return nil, err
	}

	plan := &models.Plan{
		ID:          uuid.New().String(),
		OwnerID:     ownerID,
		Name:        cmd.Name,
		Description: cmd.Description,
		Goal:        cmd.Goal,
	}
	memberships, sets := buildRows(plan.ID, cmd.Exercises)

	if err := s.plans.InsertPlan(plan); err != nil {
		return nil, err
	}

	if err := s.plans.InsertMemberships(memberships); err != nil {
		s.rollback(plan.ID)
		return nil, err
	}

	if err := s.plans.InsertSets(sets); err != nil {
		// Каскад по FK убирает уже записанные membership вместе с планом
		s.rollback(plan.ID)
		return nil, err
	}

	plan.Exercises = attachSets(memberships, sets)
	return plan, nil
}

// rollback компенсирует частичную запись удалением строки плана.
// Отказ самой компенсации — фатальное состояние: остаётся осиротевший
// план, восстановление здесь невозможно, только лог.
func (s *Service) rollback(planID string) {
	if err := s.plans.DeletePlan(planID); err != nil {
		logrus.Errorf("КРИТИЧНО: компенсация не удалась, осиротевший план %s: %v", planID, err)
	}
}

// Replace wholesale-replaces the plan's exercises and sets with the new
// composition. This path is not compensated: a failure mid-replace can
// leave the plan with no exercises. Known risk, kept as-is.
func (s *Service) Replace(planID string, ownerID int64, cmd models.PlanCompositionCommand) (*models.Plan, error) {
	plan, err := s.authorize(planID, ownerID)
	if err != nil {
		return nil, err
	}

	if err := s.checkExercisesExist(cmd.Exercises); err != nil {
		return nil, err
	}

	plan.Name = cmd.Name
	plan.Description = cmd.Description
	plan.Goal = cmd.Goal
	if err := s.plans.UpdateHeader(plan); err != nil {
		return nil, err
	}

	if err := s.plans.DeleteSets(planID); err != nil {
		return nil, err
	}
	if err := s.plans.DeleteMemberships(planID); err != nil {
		return nil, err
	}

	memberships, sets := buildRows(planID, cmd.Exercises)
	if err := s.plans.InsertMemberships(memberships); err != nil {
		return nil, err
	}
	if err := s.plans.InsertSets(sets); err != nil {
		return nil, err
	}

	plan.Exercises = attachSets(memberships, sets)
	return plan, nil
}

// SoftDelete помечает план удалённым; дети остаются на месте.
// Незавершённые тренировки по этому плану не проверяются.
func (s *Service) SoftDelete(planID string, ownerID int64) error {
	if _, err := s.authorize(planID, ownerID); err != nil {
		return err
	}
	return s.plans.SoftDelete(planID)
}

// Get возвращает план с деталями после проверки владения
func (s *Service) Get(planID string, ownerID int64) (*models.Plan, error) {
	if _, err := s.authorize(planID, ownerID); err != nil {
		return nil, err
	}
	return s.plans.GetWithDetails(planID)
}

// List возвращает не удалённые планы владельца
func (s *Service) List(ownerID int64) ([]models.PlanListItem, error) {
	return s.plans.ListByOwner(ownerID)
}

// authorize различает "не найдено" и "чужой план"; наружу оба случая
// выглядят одинаково
func (s *Service) authorize(planID string, ownerID int64) (*models.Plan, error) {
	plan, err := s.plans.GetByID(planID)
	if err != nil {
		return nil, err
	}
	if plan == nil || plan.DeletedAt != nil {
		return nil, ErrPlanNotFound
	}
	if plan.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	return plan, nil
}

func (s *Service) checkExercisesExist(exercises []models.PlanExerciseCommand) error {
	ids := make([]string, 0, len(exercises))
	for _, ex := range exercises {
		ids = append(ids, ex.ExerciseID)
	}
	missing, err := s.catalog.MissingIDs(ids)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return &missingExercisesError{IDs: missing}
	}
	return nil
}

// buildRows derives membership and set rows from the command. Membership
// order is the command's array index; set order is the explicit order when
// given, else the set's position within its exercise.
func buildRows(planID string, exercises []models.PlanExerciseCommand) ([]models.PlanExercise, []models.PlanExerciseSet) {
	var memberships []models.PlanExercise
	var sets []models.PlanExerciseSet
	for i, ex := range exercises {
		memberships = append(memberships, models.PlanExercise{
			PlanID:     planID,
			ExerciseID: ex.ExerciseID,
			OrderNum:   i,
		})
		for j, in := range ex.Sets {
			order := j
			if in.Order != nil {
				order = *in.Order
			}
			sets = append(sets, models.PlanExerciseSet{
				PlanID:      planID,
				ExerciseID:  ex.ExerciseID,
				OrderNum:    order,
				Repetitions: in.Repetitions,
				Weight:      in.Weight,
			})
		}
	}
	return memberships, sets
}

func attachSets(memberships []models.PlanExercise, sets []models.PlanExerciseSet) []models.PlanExercise {
	byExercise := make(map[string][]models.PlanExerciseSet)
	for _, s := range sets {
		byExercise[s.ExerciseID] = append(byExercise[s.ExerciseID], s)
	}
	out := make([]models.PlanExercise, len(memberships))
	copy(out, memberships)
	for i := range out {
		out[i].Sets = byExercise[out[i].ExerciseID]
	}
	return out
}
