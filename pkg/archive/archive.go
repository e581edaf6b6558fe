// Package archive persists resolution reports so past analyses of a
// repository can be compared after its contents change. Archiving is
// optional; the server only writes reports when a store is configured.
package archive

import (
	"context"
	"errors"
	"time"

	"github.com/dkrasnow/m2scope/pkg/resolve"
)

// ErrNotFound is returned when no report exists for the requested ID.
var ErrNotFound = errors.New("report not found")

// Report is one archived analysis.
type Report struct {
	ID         string          `bson:"_id" json:"id"`
	Repository string          `bson:"repository" json:"repository"`
	CreatedAt  time.Time       `bson:"createdAt" json:"createdAt"`
	Result     *resolve.Result `bson:"result" json:"result"`
}

// Store saves and retrieves reports. Implementations must be safe for
// concurrent use.
type Store interface {
	// Save persists a report. Saving an existing ID overwrites it.
	Save(ctx context.Context, report Report) error

	// Load fetches a report by ID, returning ErrNotFound when absent.
	Load(ctx context.Context, id string) (Report, error)

	// Recent lists the newest reports for a repository, newest first.
	Recent(ctx context.Context, repository string, limit int) ([]Report, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}
