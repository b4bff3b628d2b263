package setreadonly

import "github.com/vladislavmarkov/data-registry/pkg/reg"

var ticks uint32

func nextTick() uint32 {
	ticks++
	return ticks
}

var heartbeat = reg.ReadOnly(nextTick)

func Reset() {
	reg.Set(heartbeat, 0)
}
