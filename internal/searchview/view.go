// Package searchview содержит контроллер поисковой выдачи: машину состояний
// просмотра и список сохраненных поисков с оптимистичным удалением.
// Используется встраиваемыми клиентами сервиса (TUI, SSR-прослойка),
// которым нужна защита от гонки перекрывающихся запросов.
package searchview

import (
	"context"
	"sync"

	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port/usecases_port"
)

// State — состояние просмотра поисковой выдачи.
type State int

const (
	StateIdle State = iota
	StateSearching
	StatePopulated
	StateEmpty
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSearching:
		return "searching"
	case StatePopulated:
		return "populated"
	case StateEmpty:
		return "empty"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// View — машина состояний поисковой выдачи. Любое изменение параметров
// переводит ее в StateSearching и выдает новый номер запроса; применяется
// только ответ с последним выданным номером, устаревшие отбрасываются.
type View struct {
	searchUC usecases_port.SearchPropertiesUseCasePort

	mu      sync.Mutex
	state   State
	seq     uint64
	filters domain.SearchFilters
	page    domain.PageRequest
	result  *domain.SearchResultPage
	err     error
}

func NewView(searchUC usecases_port.SearchPropertiesUseCasePort) *View {
	return &View{
		searchUC: searchUC,
		state:    StateIdle,
		page:     domain.PageRequest{Page: 1, PageSize: domain.DefaultPageSize},
	}
}

// Begin фиксирует новые параметры, переводит view в StateSearching и
// возвращает номер запроса, под которым нужно доставить ответ.
func (v *View) Begin(filters domain.SearchFilters, page domain.PageRequest) uint64 {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.seq++
	v.state = StateSearching
	v.filters = filters
	v.page = page.Clamp()
	return v.seq
}

// Resolve доставляет ответ на запрос с номером seq. Возвращает false, если
// ответ устарел (с момента Begin был выдан более новый номер) и был отброшен.
func (v *View) Resolve(seq uint64, result *domain.SearchResultPage, err error) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if seq != v.seq {
		return false
	}

	if err != nil {
		v.state = StateFailed
		v.result = nil
		v.err = err
		return true
	}

	v.err = nil
	v.result = result
	if result == nil || result.TotalCount == 0 {
		v.state = StateEmpty
	} else {
		v.state = StatePopulated
	}
	return true
}

// Search — синхронный путь: Begin + выполнение + Resolve. Параллельные
// вызовы безопасны; выдачу обновит только самый поздний из них.
func (v *View) Search(ctx context.Context, filters domain.SearchFilters, page domain.PageRequest) bool {
	seq := v.Begin(filters, page)
	result, err := v.searchUC.Execute(ctx, filters, page)
	return v.Resolve(seq, result, err)
}

// setFilters подменяет зафиксированные фильтры, если запрос seq все еще
// последний. Нужен применению сохраненного поиска, где фильтры становятся
// известны только после ответа сервера.
func (v *View) setFilters(seq uint64, filters domain.SearchFilters) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if seq == v.seq {
		v.filters = filters
	}
}

// State возвращает текущее состояние машины.
func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Snapshot возвращает текущие параметры, результат и ошибку одним срезом.
func (v *View) Snapshot() (State, domain.SearchFilters, domain.PageRequest, *domain.SearchResultPage, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state, v.filters, v.page, v.result, v.err
}

// Result возвращает последнюю примененную выдачу (nil до первого успеха).
func (v *View) Result() *domain.SearchResultPage {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.result
}

// Err возвращает ошибку последнего примененного запроса.
func (v *View) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.err
}
