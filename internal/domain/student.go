package domain

import "time"

// Level describes a student's training experience.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// StudentStatus tracks how consistently a student has been training.
type StudentStatus string

const (
	StatusActive   StudentStatus = "active"
	StatusWarning  StudentStatus = "warning" // no workout logged for more than 2 days
	StatusInactive StudentStatus = "inactive"
)

// Student is a person coached by a Personal trainer.
type Student struct {
	ID          string        `bson:"_id,omitempty" json:"id"`
	Name        string        `bson:"name" json:"name"`
	Email       string        `bson:"email" json:"email"`
	AvatarURL   string        `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Age         int           `bson:"age" json:"age"`
	Level       Level         `bson:"level" json:"level"`
	Goal        string        `bson:"goal" json:"goal"`
	Status      StudentStatus `bson:"status" json:"status"`
	PersonalID  string        `bson:"personalId" json:"personalId"` // owning trainer
	LastWorkout *time.Time    `bson:"lastWorkout,omitempty" json:"lastWorkout,omitempty"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
}
