package meter

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"liyu1981.xyz/energy-meter-service/pkg/common"
	"liyu1981.xyz/energy-meter-service/pkg/db"
	"liyu1981.xyz/energy-meter-service/pkg/models"
)

// prepareForInsert fills the generated fields on a new reading: document
// id, default timestamp, and the storage-maintained created/updated pair.
// The ingested measurement fields are left untouched.
func prepareForInsert(r *models.EnergyReading, now time.Time) {
	if r.ID.IsZero() {
		r.ID = primitive.NewObjectID()
	}
	if r.Timestamp.IsZero() {
		r.Timestamp = now
	}
	r.CreatedAt = now
	r.UpdatedAt = now
}

// rangeFilter builds the Mongo filter document for a query: exact deviceId
// match when set, plus an inclusive timestamp range when either bound is
// present.
func rangeFilter(q ReadingQuery) bson.M {
	filter := bson.M{}
	if q.DeviceID != "" {
		filter["deviceId"] = q.DeviceID
	}
	ts := bson.M{}
	if q.Start != nil {
		ts["$gte"] = *q.Start
	}
	if q.End != nil {
		ts["$lte"] = *q.End
	}
	if len(ts) > 0 {
		filter["timestamp"] = ts
	}
	return filter
}

func (m *Meter) insertReading(ctx context.Context, input *models.EnergyReading) (*models.EnergyReading, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameMeterCore,
		zap.String(common.LoggerFieldMeterCategory, common.LoggerCategoryMeterReading),
	)

	coll := m.Db.Readings()
	if coll == nil {
		return nil, db.ErrNotConnected
	}

	reading := *input
	prepareForInsert(&reading, time.Now().UTC())

	logger.Info("Received reading", zap.Reflect("reading", reading))

	if _, err := coll.InsertOne(ctx, &reading); err != nil {
		return nil, err
	}

	logger.Info("Stored reading", zap.String("id", reading.ID.Hex()))
	return &reading, nil
}

func (m *Meter) findReadings(ctx context.Context, q ReadingQuery) ([]models.EnergyReading, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameMeterCore,
		zap.String(common.LoggerFieldMeterCategory, common.LoggerCategoryMeterQuery),
	)

	coll := m.Db.Readings()
	if coll == nil {
		return nil, db.ErrNotConnected
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	if q.Limit > 0 {
		findOpts.SetLimit(q.Limit)
	}

	cursor, err := coll.Find(ctx, rangeFilter(q), findOpts)
	if err != nil {
		return nil, err
	}

	readings := []models.EnergyReading{}
	if err := cursor.All(ctx, &readings); err != nil {
		return nil, err
	}

	logger.Info("Fetched readings",
		zap.String("deviceId", q.DeviceID),
		zap.Int("count", len(readings)))
	return readings, nil
}

func (m *Meter) getReadingsInRange(ctx context.Context, start, end time.Time, deviceID string) ([]models.EnergyReading, error) {
	return m.findReadings(ctx, ReadingQuery{DeviceID: deviceID, Start: &start, End: &end})
}

type IReadingImpl struct {
	meter *Meter
}

func (ir *IReadingImpl) InsertReading(ctx context.Context, input *models.EnergyReading) (*models.EnergyReading, error) {
	return ir.meter.insertReading(ctx, input)
}

func (ir *IReadingImpl) GetReadingsInRange(ctx context.Context, start, end time.Time, deviceID string) ([]models.EnergyReading, error) {
	return ir.meter.getReadingsInRange(ctx, start, end, deviceID)
}

func (ir *IReadingImpl) FindReadings(ctx context.Context, q ReadingQuery) ([]models.EnergyReading, error) {
	return ir.meter.findReadings(ctx, q)
}

func (m *Meter) GetIReading() IReading {
	return &IReadingImpl{meter: m}
}
