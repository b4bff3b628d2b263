package reg_test

import "github.com/vladislavmarkov/data-registry/pkg/reg"

// Shared entries used across the package tests. They are declared the way
// application code declares them: once, at package scope.

type State uint8

const (
	Initialization State = iota
	OperationCycle
	ShuttingDown
)

type pod struct {
	A int
	B byte
	C float64
}

type location struct {
	Latitude  float64
	Longitude float64
}

var (
	heartbeatCount uint32
	currentState   = Initialization
	crFundamental  uint32
	crPod          = pod{A: 42, B: 'z', C: 3.14}
)

func nextHeartbeat() uint32 {
	heartbeatCount++
	return heartbeatCount
}

func loadState() State   { return currentState }
func storeState(s State) { currentState = s }

func nextCrFundamental() *uint32 {
	crFundamental++
	return &crFundamental
}

func loadCrPod() *pod { return &crPod }

var (
	speed         = reg.Static[uint16]()
	temp          = reg.Static[float32]()
	text          = reg.Static[string]()
	where         = reg.StaticRef[location]()
	heartbeat     = reg.ReadOnly(nextHeartbeat)
	state         = reg.ReadWrite(loadState, storeState)
	crfundamental = reg.ReadOnlyRef(nextCrFundamental)
	crpod         = reg.ReadOnlyRef(loadCrPod)
)
