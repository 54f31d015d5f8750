package component

import "github.com/solarlune/resolv"

// Collider связывает сущность с объектом resolv-пространства.
type Collider struct {
	Object *resolv.Object
	Radius float64
}
