package appointment

import (
	"context"

	"github.com/BruksfildServices01/autoshop-manager/internal/audit"
)

// Auditor é satisfeito por *audit.Dispatcher.
type Auditor interface {
	Dispatch(ev audit.Event)
}

// Invalidate é chamado depois de cada escrita confirmada.
type Invalidate func(ctx context.Context)

func noInvalidate(context.Context) {}
