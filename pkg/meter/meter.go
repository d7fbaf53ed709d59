package meter

import (
	"context"
	"time"

	"liyu1981.xyz/energy-meter-service/pkg/db"
	"liyu1981.xyz/energy-meter-service/pkg/models"
)

// ReadingQuery describes a readings lookup: optional exact deviceId match,
// optional inclusive timestamp bounds, and an optional result cap
// (Limit <= 0 means uncapped). Results are always timestamp descending.
type ReadingQuery struct {
	DeviceID string
	Start    *time.Time
	End      *time.Time
	Limit    int64
}

type IReading interface {
	InsertReading(ctx context.Context, input *models.EnergyReading) (*models.EnergyReading, error)
	GetReadingsInRange(ctx context.Context, start, end time.Time, deviceID string) ([]models.EnergyReading, error)
	FindReadings(ctx context.Context, q ReadingQuery) ([]models.EnergyReading, error)
}

type Meter struct {
	Db      *db.DB
	Reading IReading
}

type ServiceOpts struct {
	Reading IReading
}

func (m *Meter) WithServices(opts ServiceOpts) *Meter {
	if opts.Reading != nil {
		m.Reading = opts.Reading
	}
	return m
}
