package demo

import (
	"sync"
	"sync/atomic"

	"github.com/vladislavmarkov/data-registry/internal/cell"
	"github.com/vladislavmarkov/data-registry/pkg/reg"
)

// Location is a point built by a two-argument constructor.
type Location struct {
	X, Y int
}

func NewLocation(x, y int) Location { return Location{X: x, Y: y} }

// StateCellName is the name of the persisted state cell.
const StateCellName = "state"

// stateStore is the reader/writer pair behind CurrentState.
type stateStore interface {
	Load() State
	Store(State)
}

var (
	beats  atomic.Uint32
	states = struct {
		sync.RWMutex
		s stateStore
	}{s: cell.NewLocked(Initialization)}
)

func nextBeat() uint32 { return beats.Add(1) }

func loadState() State {
	states.RLock()
	defer states.RUnlock()
	return states.s.Load()
}

func storeState(s State) {
	states.RLock()
	defer states.RUnlock()
	states.s.Store(s)
}

var (
	Number       = reg.Static[uint16]()
	Text         = reg.Static[string]()
	Where        = reg.StaticRefOf(func() Location { return NewLocation(1, 2) })
	Speed        = reg.Static[uint16]()
	Temp         = reg.Static[float32]()
	Heartbeat    = reg.ReadOnly(nextBeat)
	CurrentState = reg.ReadWrite(loadState, storeState)
)

// Persist routes CurrentState through the SQLite cell StateCellName in s and
// returns that cell. Until Persist is called the state lives in memory.
func Persist(s *cell.Store) (*cell.SQLite[State], error) {
	c, err := cell.NewSQLite(s, StateCellName, Initialization)
	if err != nil {
		return nil, err
	}
	states.Lock()
	states.s = c
	states.Unlock()
	return c, nil
}

// Detach returns CurrentState to an in-memory cell holding its last value.
func Detach() {
	states.Lock()
	defer states.Unlock()
	states.s = cell.NewLocked(states.s.Load())
}
