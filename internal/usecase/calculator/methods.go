package calculator

import (
	"context"

	"calchistory/internal/domain"
)

// Calculate проверяет запрос, считает результат и сохраняет одну запись.
// Все проверки выполняются до обращения к хранилищу, при ошибке ничего не пишется.
func (u *UseCase) Calculate(ctx context.Context, req domain.Request, userID string) (domain.Calculation, error) {
	if userID == "" {
		return domain.Calculation{}, domain.ErrMissingUser
	}
	if err := req.Validate(); err != nil {
		return domain.Calculation{}, err
	}
	result, err := req.Operation.Apply(req.Left, req.Right)
	if err != nil {
		return domain.Calculation{}, err
	}

	calc := domain.Calculation{
		Left:      req.Left,
		Right:     req.Right,
		Operation: req.Operation,
		Result:    result,
		CreatedAt: u.now().UTC(),
		UserID:    userID,
		IsActive:  true,
	}

	saveCtx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()
	saved, err := u.store.Save(saveCtx, calc)
	if err != nil {
		return domain.Calculation{}, domain.AsStorageErr(saveCtx, err)
	}
	calculationsTotal.WithLabelValues(saved.Operation.String()).Inc()
	u.log.Info("calculation saved", "id", saved.ID, "operation", saved.Operation, "result", saved.Result, "user_id", userID)

	u.publish(ctx, saved)
	return saved, nil
}

// GetAll возвращает все записи хранилища без фильтра.
func (u *UseCase) GetAll(ctx context.Context) ([]domain.Calculation, error) {
	loadCtx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()
	list, err := u.store.LoadAll(loadCtx, domain.Filter{})
	if err != nil {
		return nil, domain.AsStorageErr(loadCtx, err)
	}
	return list, nil
}

// publish отправляет сохранённую запись в журнал аудита. Запись уже сохранена, поэтому сбой только логируется.
func (u *UseCase) publish(ctx context.Context, calc domain.Calculation) {
	if u.audit == nil {
		return
	}
	pubCtx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()
	if err := u.audit.Publish(pubCtx, calc); err != nil {
		u.log.Warn("audit publish", "id", calc.ID, "error", err)
		return
	}
	u.log.Debug("calculation published", "id", calc.ID)
}
