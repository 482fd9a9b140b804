package submission

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"gorestaurant/order-client/internal/domain"

	"go.uber.org/zap"
)

// ConfirmationDelay is how long the confirmation stays visible before the
// host navigates back to the default view.
const ConfirmationDelay = 2000 * time.Millisecond

var (
	ErrSubmissionInProgress = errors.New("order submission already in progress")
	ErrSubmissionFailed     = errors.New("order submission failed")
)

type Phase int

const (
	Idle Phase = iota
	Submitting
	Confirmed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Confirmed:
		return "confirmed"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

type OrderStore interface {
	CreateOrder(ctx context.Context, req domain.OrderRequest) (*domain.Order, error)
}

// Composer produces the request to submit; composition.State implements it.
type Composer interface {
	OrderRequest() domain.OrderRequest
}

type Navigator interface {
	NavigateToDefault()
}

type Confirmer interface {
	ShowConfirmation(order domain.Order)
	HideConfirmation()
}

type Option func(*Submitter)

func WithDelay(d time.Duration) Option {
	return func(s *Submitter) { s.delay = d }
}

func WithConfirmer(c Confirmer) Option {
	return func(s *Submitter) { s.confirmer = c }
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *Submitter) { s.logger = logger }
}

// OnChange registers a callback invoked after every phase transition.
func OnChange(fn func(Phase)) Option {
	return func(s *Submitter) { s.onChange = fn }
}

// Submitter drives Idle -> Submitting -> Confirmed -> Idle. The network call
// and the confirmation delay are timed independently: the delay starts when
// the store acknowledges the order.
type Submitter struct {
	store     OrderStore
	navigator Navigator
	confirmer Confirmer
	logger    *zap.Logger
	delay     time.Duration
	onChange  func(Phase)

	mu    sync.Mutex
	phase Phase
	done  chan struct{}
}

func New(store OrderStore, navigator Navigator, opts ...Option) *Submitter {
	s := &Submitter{
		store:     store,
		navigator: navigator,
		delay:     ConfirmationDelay,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Submitter) State() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Submit sends the composed order. It is accepted only while Idle. On failure
// the submitter returns to Idle so the user can try again.
func (s *Submitter) Submit(ctx context.Context, composer Composer) (*domain.Order, error) {
	s.mu.Lock()
	if s.phase != Idle {
		s.mu.Unlock()
		return nil, ErrSubmissionInProgress
	}
	s.phase = Submitting
	s.mu.Unlock()
	s.notify(Submitting)

	req := composer.OrderRequest()
	order, err := s.store.CreateOrder(ctx, req)
	if err != nil {
		s.setPhase(Idle)
		s.logger.Error("order submission failed", zap.String("food", req.Name), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}

	done := make(chan struct{})
	s.mu.Lock()
	s.phase = Confirmed
	s.done = done
	s.mu.Unlock()
	s.notify(Confirmed)

	s.logger.Info("order confirmed", zap.Int("order_id", order.ID), zap.String("total", order.Total.String()))
	if s.confirmer != nil {
		s.confirmer.ShowConfirmation(*order)
	}

	time.AfterFunc(s.delay, func() { s.finish(done) })
	return order, nil
}

func (s *Submitter) finish(done chan struct{}) {
	s.setPhase(Idle)
	if s.confirmer != nil {
		s.confirmer.HideConfirmation()
	}
	if s.navigator != nil {
		s.navigator.NavigateToDefault()
	}
	close(done)
}

// Wait blocks until the pending confirmation has navigated away. It returns
// immediately when no order was confirmed yet.
func (s *Submitter) Wait(ctx context.Context) error {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()
	if done == nil {
		return nil
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Submitter) setPhase(p Phase) {
	s.mu.Lock()
	s.phase = p
	s.mu.Unlock()
	s.notify(p)
}

func (s *Submitter) notify(p Phase) {
	if s.onChange != nil {
		s.onChange(p)
	}
}
