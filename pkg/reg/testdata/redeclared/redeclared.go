package redeclared

import "github.com/vladislavmarkov/data-registry/pkg/reg"

var speed = reg.Static[uint16]()

var speed = reg.Static[float32]()
