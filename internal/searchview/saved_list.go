package searchview

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port/usecases_port"
)

// DeleteStatus — фазы оптимистичного удаления.
type DeleteStatus int

const (
	DeleteApplying DeleteStatus = iota
	DeleteCommitted
	DeleteRolledBack
)

func (s DeleteStatus) String() string {
	switch s {
	case DeleteApplying:
		return "applying"
	case DeleteCommitted:
		return "committed"
	case DeleteRolledBack:
		return "rolled_back"
	default:
		return "unknown"
	}
}

// SavedList — локальная копия списка сохраненных поисков пользователя.
// Удаление применяется оптимистично: элемент исчезает из списка сразу,
// снапшот до изменения хранится до завершения удаленного вызова и
// восстанавливается при его неудаче.
type SavedList struct {
	view     *View
	userID   uuid.UUID
	listUC   usecases_port.ListSavedSearchesUseCasePort
	applyUC  usecases_port.ApplySavedSearchUseCasePort
	deleteUC usecases_port.DeleteSavedSearchUseCasePort

	items []domain.SavedSearch
}

func NewSavedList(
	view *View,
	userID uuid.UUID,
	listUC usecases_port.ListSavedSearchesUseCasePort,
	applyUC usecases_port.ApplySavedSearchUseCasePort,
	deleteUC usecases_port.DeleteSavedSearchUseCasePort) *SavedList {
	return &SavedList{
		view:     view,
		userID:   userID,
		listUC:   listUC,
		applyUC:  applyUC,
		deleteUC: deleteUC,
	}
}

// Refresh перечитывает список с сервера.
func (l *SavedList) Refresh(ctx context.Context) error {
	items, err := l.listUC.Execute(ctx, l.userID)
	if err != nil {
		return err
	}
	l.items = items
	return nil
}

// Items возвращает текущее локальное содержимое списка.
func (l *SavedList) Items() []domain.SavedSearch {
	return l.items
}

// Apply запускает сохраненный поиск через машину состояний view.
// Страница всегда сбрасывается на первую.
func (l *SavedList) Apply(ctx context.Context, searchID uuid.UUID, pageSize int) error {
	page := domain.PageRequest{Page: 1, PageSize: pageSize}.Clamp()

	seq := l.view.Begin(domain.SearchFilters{}, page)
	result, filters, err := l.applyUC.Execute(ctx, l.userID, searchID, page.PageSize)
	if err != nil {
		l.view.Resolve(seq, nil, err)
		return err
	}

	// Фиксируем фактически примененные фильтры снапшота
	l.view.setFilters(seq, filters)
	l.view.Resolve(seq, result, nil)
	return nil
}

// PendingDelete — незавершенное оптимистичное удаление.
type PendingDelete struct {
	list     *SavedList
	searchID uuid.UUID
	snapshot []domain.SavedSearch
	status   DeleteStatus
}

// Delete выполняет полный цикл: локальное удаление, удаленный вызов,
// откат при ошибке. Возвращает финальный статус.
func (l *SavedList) Delete(ctx context.Context, searchID uuid.UUID) (DeleteStatus, error) {
	pending, err := l.BeginDelete(searchID)
	if err != nil {
		return DeleteRolledBack, err
	}

	if err := l.deleteUC.Execute(ctx, l.userID, searchID); err != nil {
		pending.Rollback()
		return pending.Status(), err
	}

	pending.Commit()
	return pending.Status(), nil
}

// BeginDelete убирает элемент из локального списка и возвращает
// PendingDelete со снапшотом для возможного отката.
func (l *SavedList) BeginDelete(searchID uuid.UUID) (*PendingDelete, error) {
	idx := -1
	for i, item := range l.items {
		if item.ID == searchID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("saved search %s is not in the list", searchID)
	}

	snapshot := make([]domain.SavedSearch, len(l.items))
	copy(snapshot, l.items)

	l.items = append(l.items[:idx:idx], l.items[idx+1:]...)

	return &PendingDelete{
		list:     l,
		searchID: searchID,
		snapshot: snapshot,
		status:   DeleteApplying,
	}, nil
}

// Commit завершает удаление; снапшот больше не нужен.
func (p *PendingDelete) Commit() {
	if p.status != DeleteApplying {
		return
	}
	p.status = DeleteCommitted
	p.snapshot = nil
}

// Rollback восстанавливает список из снапшота после неудачного вызова.
func (p *PendingDelete) Rollback() {
	if p.status != DeleteApplying {
		return
	}
	p.list.items = p.snapshot
	p.snapshot = nil
	p.status = DeleteRolledBack
}

// Status возвращает фазу удаления.
func (p *PendingDelete) Status() DeleteStatus {
	return p.status
}
