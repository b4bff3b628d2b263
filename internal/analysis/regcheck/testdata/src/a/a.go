package a

import "github.com/vladislavmarkov/data-registry/pkg/reg"

type vec struct{ X, Y int }

var (
	speed = reg.Static[uint16]()
	where = reg.StaticRefOf(func() vec { return vec{1, 2} })
)

var missing *reg.Entry[reg.Mutable, reg.None, int, int] // want `entry missing is declared but never stored`

var (
	text    = reg.Static[string]()
	pending *reg.Entry[reg.Readonly, reg.None, int, int] // want `entry pending is declared but never stored`
)

var counter int

func loadCounter() *int { return &counter }
func nextCounter() int { counter++; return counter }
func scaled(k ...int) *int { return &counter }
func storeCounter(p *int) { counter = *p }
func storeScaled(v *int, k ...int) {}

var (
	history = []int{1, 2}
	byName  = map[string]int{"a": 1}
)

type ids []int

func loadHistory() []int { return history }
func loadByName(k ...string) map[string]int { return byName }
func loadIDs() ids { return ids(history) }
func storeHistory(v []int) { history = v }

var (
	leaky     = reg.ReadOnly(loadCounter)                // want `read accessor must return a value or a read-only reference`
	leakyRW   = reg.ReadWrite(loadCounter, storeCounter) // want `read accessor must return a value or a read-only reference`
	leakyWith = reg.ReadOnlyWith(scaled)                 // want `read accessor must return a value or a read-only reference`
	leakyRWW  = reg.ReadWriteWith(scaled, storeScaled)   // want `read accessor must return a value or a read-only reference`
	fine      = reg.ReadOnlyRef(loadCounter)
	plain     = reg.ReadOnly(nextCounter)
)

var (
	leakySlice = reg.ReadOnly(loadHistory)                // want `read accessor must return a value or a read-only reference`
	leakyMap   = reg.ReadOnlyWith(loadByName)             // want `read accessor must return a value or a read-only reference`
	leakyNamed = reg.ReadOnly(loadIDs)                    // want `read accessor must return a value or a read-only reference`
	leakyPair  = reg.ReadWrite(loadHistory, storeHistory) // want `read accessor must return a value or a read-only reference`
	sliceRef   = reg.StaticRefOf(func() []int { return nil })
)

func local() int {
	e := reg.Static[int]() // want `entry must be declared at package scope`
	f := func() any {
		return reg.ReadOnly(nextCounter) // want `entry must be declared at package scope`
	}
	_ = f
	return reg.Get(e) + reg.Get(plain)
}

func use() {
	_ = reg.Get(speed)
	_ = reg.Get(where)
	_ = reg.Get(text)
	_ = reg.Get(fine)
}
