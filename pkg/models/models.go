package models

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EnergyReading is one energy-meter telemetry sample. All measurement
// fields are optional; a nil pointer means the field was absent from the
// ingested payload and is omitted from the stored document.
type EnergyReading struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Voltage     *float64           `bson:"voltage,omitempty" json:"voltage,omitempty"`
	Current     *float64           `bson:"current,omitempty" json:"current,omitempty"`
	Power       *float64           `bson:"power,omitempty" json:"power,omitempty"`
	Energy      *float64           `bson:"energy,omitempty" json:"energy,omitempty"`
	Frequency   *float64           `bson:"frequency,omitempty" json:"frequency,omitempty"`
	PowerFactor *float64           `bson:"powerFactor,omitempty" json:"powerFactor,omitempty"`
	DeviceID    *string            `bson:"deviceId,omitempty" json:"deviceId,omitempty"`
	Location    *string            `bson:"location,omitempty" json:"location,omitempty"`
	Timestamp   time.Time          `bson:"timestamp" json:"timestamp"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ApparentPower derives power / |powerFactor|. ok is false when either
// field is absent or the power factor is zero.
func (r *EnergyReading) ApparentPower() (float64, bool) {
	if r.Power == nil || r.PowerFactor == nil {
		return 0, false
	}
	pf := math.Abs(*r.PowerFactor)
	if pf == 0 {
		return 0, false
	}
	return *r.Power / pf, true
}
