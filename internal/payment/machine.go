// Package payment drives the mock payment transaction from initiation to
// confirmation. No real charge ever occurs.
package payment

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"equiprent-backend/internal/domain"
)

var (
	// ErrNoPendingPayment is returned when submit or cancel is requested
	// with no transaction awaiting payment.
	ErrNoPendingPayment = errors.New("no payment is awaiting submission")
	// ErrPaymentInProgress is returned for a cancel attempt after the mock
	// charge has been submitted. The simulated charge is irrevocable.
	ErrPaymentInProgress = errors.New("payment is already processing and cannot be cancelled")
)

// IDGenerator produces a synthetic payment id. The default is random and
// mock-only: not guaranteed unique, not cryptographically meaningful.
type IDGenerator func() string

// Scheduler runs fn once after the given delay. The default wraps
// time.AfterFunc; tests substitute a synchronous or capturing variant.
type Scheduler func(d time.Duration, fn func())

// ConfirmedFunc is invoked after a transaction confirms, outside the machine
// lock, with snapshots of the consumed transaction and its confirmation.
type ConfirmedFunc func(tx domain.Transaction, conf domain.BookingConfirmation)

// Machine is the payment simulation state machine:
//
//	Idle → AwaitingPayment → Processing → Confirmed
//
// with AwaitingPayment → Idle via explicit cancel. At most one transaction is
// pending at a time; beginning a new booking overwrites whatever was pending
// before, including an in-flight Processing timer, which is invalidated and
// never allowed to confirm the superseded transaction.
type Machine struct {
	mu           sync.Mutex
	state        domain.PaymentState
	pending      *domain.Transaction
	confirmation *domain.BookingConfirmation
	// epoch increments on every Begin/Cancel so a stale processing timer
	// can detect it has been superseded.
	epoch uint64

	delay       time.Duration
	generateID  IDGenerator
	schedule    Scheduler
	onConfirmed ConfirmedFunc
}

// Option customizes a Machine.
type Option func(*Machine)

// WithIDGenerator replaces the payment id generator, letting tests supply
// deterministic ids.
func WithIDGenerator(gen IDGenerator) Option {
	return func(m *Machine) { m.generateID = gen }
}

// WithScheduler replaces the delay scheduler.
func WithScheduler(s Scheduler) Option {
	return func(m *Machine) { m.schedule = s }
}

// WithConfirmedHook registers a callback fired after each confirmation.
func WithConfirmedHook(fn ConfirmedFunc) Option {
	return func(m *Machine) { m.onConfirmed = fn }
}

// NewMachine creates an idle machine whose simulated processing takes delay.
func NewMachine(delay time.Duration, opts ...Option) *Machine {
	m := &Machine{
		state:      domain.PaymentStateIdle,
		delay:      delay,
		generateID: defaultIDGenerator,
		schedule: func(d time.Duration, fn func()) {
			time.AfterFunc(d, fn)
		},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func defaultIDGenerator() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "MOCK_" + strings.ToUpper(raw[:8])
}

// Begin stores tx as the single pending transaction and moves to
// AwaitingPayment. A booking started while another is awaiting payment or
// processing replaces it; there is no queue.
func (m *Machine) Begin(tx *domain.Transaction) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.epoch++
	m.pending = tx
	m.confirmation = nil
	m.state = domain.PaymentStateAwaiting
}

// Cancel discards the pending transaction and returns to Idle. It is only
// defined from AwaitingPayment: once Processing has begun the simulated
// charge cannot be revoked, and with nothing pending there is nothing to
// cancel. No confirmation is produced.
func (m *Machine) Cancel() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.state {
	case domain.PaymentStateProcessing:
		return ErrPaymentInProgress
	case domain.PaymentStateAwaiting:
		m.epoch++
		m.pending = nil
		m.state = domain.PaymentStateIdle
		return nil
	default:
		return ErrNoPendingPayment
	}
}

// Submit moves AwaitingPayment to Processing and schedules the non-blocking
// continuation that completes the mock charge after the configured delay.
func (m *Machine) Submit() error {
	m.mu.Lock()

	switch m.state {
	case domain.PaymentStateProcessing:
		m.mu.Unlock()
		return ErrPaymentInProgress
	case domain.PaymentStateAwaiting:
	default:
		m.mu.Unlock()
		return ErrNoPendingPayment
	}

	m.state = domain.PaymentStateProcessing
	epoch := m.epoch
	m.mu.Unlock()

	m.schedule(m.delay, func() {
		m.complete(epoch)
	})
	return nil
}

// complete finishes the simulated charge started at the given epoch. A timer
// whose transaction has since been cancelled or replaced is ignored.
func (m *Machine) complete(epoch uint64) {
	m.mu.Lock()

	if m.epoch != epoch || m.state != domain.PaymentStateProcessing || m.pending == nil {
		m.mu.Unlock()
		return
	}

	tx := *m.pending
	conf := domain.BookingConfirmation{
		PaymentID:        m.generateID(),
		ItemTitle:        tx.Item.Title,
		DurationDays:     tx.DurationDays,
		TotalAmountPaise: tx.TotalAmountPaise,
		ConfirmedOn:      time.Now().Format("2006-01-02 15:04:05"),
	}

	m.pending = nil
	m.confirmation = &conf
	m.state = domain.PaymentStateConfirmed

	hook := m.onConfirmed
	m.mu.Unlock()

	if hook != nil {
		hook(tx, conf)
	}
}

// State returns the current state and, when Confirmed, the booking summary.
func (m *Machine) State() (domain.PaymentState, *domain.BookingConfirmation) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.confirmation == nil {
		return m.state, nil
	}
	conf := *m.confirmation
	return m.state, &conf
}

// Pending returns a copy of the pending transaction, or nil if none.
func (m *Machine) Pending() *domain.Transaction {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.pending == nil {
		return nil
	}
	tx := *m.pending
	return &tx
}
