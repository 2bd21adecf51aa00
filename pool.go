package uniset

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
)

// Scratch sets for derived set operations are short-lived objects.
// To avoid repeated allocation during pattern compilation we pool them.
type scratchPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalScratchPool *scratchPool

func init() {
	globalScratchPool = &scratchPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return New(), nil
		})
	globalScratchPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalScratchPool.opool = pool.NewObjectPool(globalScratchPool.ctx, factory, config)
}

// borrowSet returns an empty scratch set from the pool.
func borrowSet() *IntervalSet {
	o, err := globalScratchPool.opool.BorrowObject(globalScratchPool.ctx)
	if err != nil {
		return New()
	}
	s := o.(*IntervalSet)
	s.Clear()
	return s
}

// releaseSet clears a scratch set and puts it back into the pool.
func releaseSet(s *IntervalSet) {
	s.Clear()
	_ = globalScratchPool.opool.ReturnObject(globalScratchPool.ctx, s)
}
