package arity

import "github.com/vladislavmarkov/data-registry/pkg/reg"

func load() int   { return 0 }
func store(v int) {}

var (
	tooFew  = reg.ReadWrite(load)
	tooMany = reg.ReadOnly(load, store)
)
