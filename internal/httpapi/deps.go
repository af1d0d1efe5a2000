package httpapi

import (
	"sync/atomic"

	"github.com/TylorMayfield/nh-jobsearch/internal/board"
	"github.com/TylorMayfield/nh-jobsearch/internal/catalog"
	"github.com/TylorMayfield/nh-jobsearch/internal/events"
)

type Deps struct {
	Catalog  *catalog.Catalog
	Sessions *board.Sessions
	Hub      *events.Hub

	CfgVal      *atomic.Value // stores config.Config
	UserCfgPath string
}
