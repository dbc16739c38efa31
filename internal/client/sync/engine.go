package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	stdsync "sync"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/gophchat/internal/apperr"
	"github.com/iudanet/gophchat/internal/client/storage"
	"github.com/iudanet/gophchat/internal/models"
	"github.com/iudanet/gophchat/internal/validation"
	"github.com/iudanet/gophchat/pkg/api"
)

// DefaultInterval период опроса сервера
const DefaultInterval = time.Second

var (
	// ErrNotStarted возвращается, если сессия не запущена (или уже завершена)
	ErrNotStarted = fmt.Errorf("%w: not logged in", apperr.ErrAuth)
	// ErrSessionChanged возвращается Start, если во время загрузки
	// сессия была завершена или заменена
	ErrSessionChanged = errors.New("session changed during reload")
)

// View снимок состояния для отрисовки
type View struct {
	User     models.User
	Messages []models.Message // подтвержденные, по (Timestamp, ID)
	Pending  []models.Message // плейсхолдеры в порядке отправки
	Active   bool
}

// Engine хранит локальное зеркало лога и синхронизирует его с сервером.
// Сообщения только добавляются: опрос никогда не удаляет записи
type Engine struct {
	api      MessagesAPI
	logger   *slog.Logger
	now      func() time.Time
	newID    func() string
	updates  chan struct{}
	cancel   context.CancelFunc
	done     chan struct{}
	session  *storage.Session
	mirror   map[string]models.Message
	pending  []models.Message
	interval time.Duration
	gen      uint64
	mu       stdsync.Mutex
}

// NewEngine создает движок. interval <= 0 означает DefaultInterval
func NewEngine(messagesAPI MessagesAPI, interval time.Duration, logger *slog.Logger) *Engine {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Engine{
		api:      messagesAPI,
		logger:   logger,
		interval: interval,
		now:      time.Now,
		newID:    func() string { return uuid.NewString() },
		updates:  make(chan struct{}, 1),
		mirror:   make(map[string]models.Message),
	}
}

// Start выполняет полную загрузку лога и запускает опрос, который живет
// до Logout или отмены ctx. Предыдущая сессия, если была, завершается
func (e *Engine) Start(ctx context.Context, session storage.Session) error {
	e.Logout()

	e.mu.Lock()
	e.gen++
	gen := e.gen
	e.session = &session
	e.mu.Unlock()

	msgs, err := e.api.GetMessages(ctx)
	if err != nil {
		e.mu.Lock()
		if e.gen == gen {
			e.session = nil
		}
		e.mu.Unlock()
		return fmt.Errorf("failed to load messages: %w", err)
	}

	e.mu.Lock()
	if e.gen != gen {
		e.mu.Unlock()
		return ErrSessionChanged
	}
	e.replaceLocked(msgs)
	pollCtx, cancel := context.WithCancel(ctx)
	e.cancel = cancel
	e.done = make(chan struct{})
	go e.poll(pollCtx, gen, e.done)
	e.mu.Unlock()

	e.logger.InfoContext(ctx, "sync started", "username", session.Username, "messages", len(msgs))
	e.notify()
	return nil
}

// Reload заменяет зеркало полным списком с сервера. Только так локально
// отражается обрезка лога на сервере
func (e *Engine) Reload(ctx context.Context) error {
	e.mu.Lock()
	if e.session == nil {
		e.mu.Unlock()
		return ErrNotStarted
	}
	gen := e.gen
	e.mu.Unlock()

	msgs, err := e.api.GetMessages(ctx)
	if err != nil {
		return fmt.Errorf("failed to reload messages: %w", err)
	}

	e.mu.Lock()
	if e.gen != gen {
		e.mu.Unlock()
		return ErrSessionChanged
	}
	e.replaceLocked(msgs)
	e.mu.Unlock()

	e.notify()
	return nil
}

func (e *Engine) replaceLocked(msgs []models.Message) {
	e.mirror = make(map[string]models.Message, len(msgs))
	for _, m := range msgs {
		e.mirror[m.ID] = m
	}
}

func (e *Engine) poll(ctx context.Context, gen uint64, done chan struct{}) {
	defer close(done)

	timer := time.NewTimer(e.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		e.pollOnce(ctx, gen)
		// следующий запрос только после обработки текущего
		timer.Reset(e.interval)
	}
}

func (e *Engine) pollOnce(ctx context.Context, gen uint64) {
	msgs, err := e.api.GetMessages(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		e.logger.WarnContext(ctx, "poll failed", "kind", apperr.KindOf(err).String(), "error", err)
		return
	}

	added := 0
	e.mu.Lock()
	if e.gen == gen {
		for _, m := range msgs {
			if e.mergeLocked(m) {
				added++
			}
		}
	}
	e.mu.Unlock()

	if added > 0 {
		e.logger.DebugContext(ctx, "merged messages", "added", added)
		e.notify()
	}
}

// Merge добавляет сообщение, если его id еще нет в зеркале.
// Возвращает true, если сообщение новое
func (e *Engine) Merge(msg models.Message) bool {
	e.mu.Lock()
	added := e.session != nil && e.mergeLocked(msg)
	e.mu.Unlock()

	if added {
		e.notify()
	}
	return added
}

func (e *Engine) mergeLocked(msg models.Message) bool {
	if msg.ID == "" || msg.IsPending() {
		return false
	}
	if _, ok := e.mirror[msg.ID]; ok {
		return false
	}
	e.mirror[msg.ID] = msg
	return true
}

// Send отправляет сообщение. Пока запрос выполняется, в View виден
// плейсхолдер с id temp_<uuid>. Повторной отправки нет
func (e *Engine) Send(ctx context.Context, text, image string) (models.Message, error) {
	text, err := validation.ValidateContent(text, image)
	if err != nil {
		return models.Message{}, err
	}

	e.mu.Lock()
	if e.session == nil {
		e.mu.Unlock()
		return models.Message{}, ErrNotStarted
	}
	gen := e.gen
	token := e.session.Token
	placeholder := models.Message{
		ID:        models.PendingIDPrefix + e.newID(),
		Username:  e.session.Username,
		Avatar:    e.session.Avatar,
		Message:   text,
		Image:     image,
		Timestamp: e.now().UTC(),
	}
	e.pending = append(e.pending, placeholder)
	e.mu.Unlock()
	e.notify()

	msg, err := e.api.SendMessage(ctx, token, api.SendMessageRequest{Message: text, Image: image})

	e.mu.Lock()
	e.pending = slices.DeleteFunc(e.pending, func(m models.Message) bool { return m.ID == placeholder.ID })
	if err == nil && e.gen == gen {
		e.mergeLocked(msg)
	}
	e.mu.Unlock()
	e.notify()

	if err != nil {
		e.logger.WarnContext(ctx, "send failed", "kind", apperr.KindOf(err).String(), "error", err)
		return models.Message{}, fmt.Errorf("failed to send message: %w", err)
	}
	return msg, nil
}

// Logout останавливает опрос и очищает зеркало. Результаты запросов,
// начатых до Logout, отбрасываются
func (e *Engine) Logout() {
	e.mu.Lock()
	if e.session == nil && e.cancel == nil {
		e.mu.Unlock()
		return
	}
	cancel, done := e.cancel, e.done
	e.cancel, e.done = nil, nil
	e.gen++
	e.session = nil
	e.mirror = make(map[string]models.Message)
	e.pending = nil
	e.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
	e.notify()
}

// Snapshot возвращает копию текущего состояния
func (e *Engine) Snapshot() View {
	e.mu.Lock()
	defer e.mu.Unlock()

	view := View{
		Messages: make([]models.Message, 0, len(e.mirror)),
		Pending:  slices.Clone(e.pending),
		Active:   e.session != nil,
	}
	if e.session != nil {
		view.User = e.session.User()
	}
	for _, m := range e.mirror {
		view.Messages = append(view.Messages, m)
	}
	models.SortMessages(view.Messages)
	return view
}

// Updates канал уведомлений об изменении состояния. Уведомления
// склеиваются: после чтения нужно взять свежий Snapshot
func (e *Engine) Updates() <-chan struct{} {
	return e.updates
}

func (e *Engine) notify() {
	select {
	case e.updates <- struct{}{}:
	default:
	}
}
