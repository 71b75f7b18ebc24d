package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/AnandGandhi03/realtor-india-platform/internal/contextkeys"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/port"
)

// SaveSearchUseCase сохраняет набор критериев поиска. Критерии приходят
// сырым JSON и сперва проверяются по контрактной схеме: нераспознанные
// ключи отклоняются, а не молча отбрасываются.
type SaveSearchUseCase struct {
	repo      port.SavedSearchRepositoryPort
	validator port.CriteriaValidatorPort
}

func NewSaveSearchUseCase(repo port.SavedSearchRepositoryPort, validator port.CriteriaValidatorPort) *SaveSearchUseCase {
	return &SaveSearchUseCase{repo: repo, validator: validator}
}

func (uc *SaveSearchUseCase) Execute(ctx context.Context, userID uuid.UUID, name string, rawCriteria []byte, alertEnabled bool) (*domain.SavedSearch, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SaveSearch",
		"user_id":  userID,
	})

	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: search name is required", domain.ErrValidation)
	}

	if err := uc.validator.Validate(rawCriteria); err != nil {
		ucLogger.Warn("Search criteria rejected by schema", port.Fields{"error": err.Error()})
		return nil, fmt.Errorf("%w: invalid search criteria: %v", domain.ErrValidation, err)
	}

	var criteria domain.SearchCriteria
	if err := json.Unmarshal(rawCriteria, &criteria); err != nil {
		return nil, fmt.Errorf("%w: failed to decode search criteria: %v", domain.ErrValidation, err)
	}

	search := &domain.SavedSearch{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         name,
		Criteria:     criteria,
		AlertEnabled: alertEnabled,
	}

	if err := uc.repo.Create(ctx, search); err != nil {
		ucLogger.Error("Failed to store saved search", err, nil)
		return nil, fmt.Errorf("failed to save search: %w", err)
	}

	ucLogger.Info("Search saved", port.Fields{"search_id": search.ID, "alerts": alertEnabled})
	return search, nil
}
