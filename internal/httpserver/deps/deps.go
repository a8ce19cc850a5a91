package deps

import (
	"time"

	"github.com/streamarchive/catalogd/internal/catalog"
	"github.com/streamarchive/catalogd/internal/logger"
)

type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	Catalog   *catalog.Service // stateless catalog boundary, safe for concurrent use
}
