package pipeline

import (
	"sync"

	"github.com/de-tools/cost-compass/pkg/models/domain"
)

type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusError   Status = "error"
)

// State is the published pipeline state. Snapshot is non-nil whenever
// Status is Ready; ErrorMessage is non-empty whenever Status is Error.
// Both hold the last published value across reloads so consumers can keep
// rendering stale data while a refresh is in flight.
type State struct {
	Status       Status
	AWSConnected bool
	Snapshot     *domain.DashboardSnapshot
	ErrorMessage string
	User         *domain.User
}

// Action is a tagged state transition. The reducer is the only place state
// changes, which keeps illegal combinations (Ready without a snapshot,
// Error without a message) out by construction.
type Action interface {
	isAction()
}

type BeginRefresh struct{}

type RefreshSucceeded struct {
	Snapshot domain.DashboardSnapshot
}

type RefreshFailed struct {
	Message string
}

type SetConnected struct {
	Connected bool
}

type SetUser struct {
	User *domain.User
}

func (BeginRefresh) isAction()     {}
func (RefreshSucceeded) isAction() {}
func (RefreshFailed) isAction()    {}
func (SetConnected) isAction()     {}
func (SetUser) isAction()          {}

func reduce(state State, action Action) State {
	switch a := action.(type) {
	case BeginRefresh:
		state.Status = StatusLoading
		state.ErrorMessage = ""
	case RefreshSucceeded:
		snapshot := a.Snapshot
		state.Status = StatusReady
		state.Snapshot = &snapshot
		state.ErrorMessage = ""
	case RefreshFailed:
		state.Status = StatusError
		state.ErrorMessage = a.Message
	case SetConnected:
		state.AWSConnected = a.Connected
	case SetUser:
		state.User = a.User
	}
	return state
}

// Store holds the pipeline state and applies actions through the reducer.
// Subscribers are invoked synchronously with the state after each dispatch.
type Store struct {
	mu    sync.RWMutex
	state State
	subs  []func(State)
}

func NewStore() *Store {
	return &Store{state: State{Status: StatusIdle}}
}

func (s *Store) Dispatch(action Action) {
	s.mu.Lock()
	s.state = reduce(s.state, action)
	state := s.state
	subs := s.subs
	s.mu.Unlock()

	for _, sub := range subs {
		sub(state)
	}
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}
