package host

import (
	"sync"

	"go.uber.org/zap"

	"miniapp/internal/domain"
)

// events is the subscription registry. Handlers are never removed.
type events struct {
	loop *Loop
	log  *zap.Logger

	mu       sync.Mutex
	handlers map[domain.EventName][]domain.EventHandler
}

func newEvents(loop *Loop, log *zap.Logger) *events {
	return &events{loop: loop, log: log, handlers: map[domain.EventName][]domain.EventHandler{}}
}

func (e *events) subscribe(name domain.EventName, h domain.EventHandler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.handlers[name] = append(e.handlers[name], h)
}

// emit posts one delivery of ev to the loop. Handlers are looked up when the
// delivery runs, so a subscription made earlier on the loop still sees it.
func (e *events) emit(ev domain.Event) {
	e.loop.Post(func() {
		e.mu.Lock()
		hs := append([]domain.EventHandler(nil), e.handlers[ev.Name]...)
		e.mu.Unlock()

		e.log.Debug("deliver", zap.Stringer("event", ev.Name), zap.Int("subscribers", len(hs)))
		for _, h := range hs {
			h(ev)
		}
	})
}
