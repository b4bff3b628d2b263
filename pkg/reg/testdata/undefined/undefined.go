package undefined

import "github.com/vladislavmarkov/data-registry/pkg/reg"

func Speed() uint16 {
	return reg.Get(speed)
}
