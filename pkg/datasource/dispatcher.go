package datasource

import (
	"github.com/peter-kozarec/resample/pkg/bus"
	"github.com/peter-kozarec/resample/pkg/common"
)

type TickSource interface {
	GetNext() (common.Tick, error)
}

// CreateTickDispatcher returns a callback suitable for Router.ExecLoop
// that pulls one tick from the source and posts it to the router.
func CreateTickDispatcher(r *bus.Router, ds TickSource) func() error {
	return func() error {
		var tick common.Tick
		var err error

		if tick, err = ds.GetNext(); err != nil {
			return err
		}
		if err = r.Post(bus.TickEvent, tick); err != nil {
			return err
		}
		return nil
	}
}
