package domain

import "time"

// Measurements holds optional body circumference readings in cm.
// Every field is a pointer: absence means the measurement was not taken,
// which is distinct from a reading of zero.
type Measurements struct {
	Chest  *float64 `bson:"chest,omitempty" json:"chest,omitempty"`
	Waist  *float64 `bson:"waist,omitempty" json:"waist,omitempty"`
	Hips   *float64 `bson:"hips,omitempty" json:"hips,omitempty"`
	Arms   *float64 `bson:"arms,omitempty" json:"arms,omitempty"`
	Thighs *float64 `bson:"thighs,omitempty" json:"thighs,omitempty"`
}

// PhysicalAssessment records a periodic evaluation of a student.
type PhysicalAssessment struct {
	ID           string        `bson:"_id,omitempty" json:"id"`
	StudentID    string        `bson:"studentId" json:"studentId"`
	Date         time.Time     `bson:"date" json:"date"`
	Weight       float64       `bson:"weight" json:"weight"` // kg
	Height       float64       `bson:"height" json:"height"` // cm
	BodyFat      *float64      `bson:"bodyFat,omitempty" json:"bodyFat,omitempty"`
	Measurements *Measurements `bson:"measurements,omitempty" json:"measurements,omitempty"`
	Photos       []string      `bson:"photos,omitempty" json:"photos,omitempty"` // media object keys
	Notes        string        `bson:"notes,omitempty" json:"notes,omitempty"`
}
