package domain

import "time"

// Achievement marks a milestone unlocked by a student.
type Achievement struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Icon        string    `bson:"icon" json:"icon"`
	StudentID   string    `bson:"studentId" json:"studentId"`
	UnlockedAt  time.Time `bson:"unlockedAt" json:"unlockedAt"`
}

// ChallengeType distinguishes individual and collective challenges.
type ChallengeType string

const (
	ChallengeIndividual ChallengeType = "individual"
	ChallengeCollective ChallengeType = "collective"
)

// Challenge is a time-boxed goal a trainer sets for one or more students.
type Challenge struct {
	ID          string        `bson:"_id,omitempty" json:"id"`
	Title       string        `bson:"title" json:"title"`
	Description string        `bson:"description" json:"description"`
	Type        ChallengeType `bson:"type" json:"type"`
	Goal        int           `bson:"goal" json:"goal"`
	Progress    int           `bson:"progress" json:"progress"`
	StartDate   time.Time     `bson:"startDate" json:"startDate"`
	EndDate     time.Time     `bson:"endDate" json:"endDate"`
	StudentIDs  []string      `bson:"studentIds" json:"studentIds"`
	PersonalID  string        `bson:"personalId" json:"personalId"`
	Reward      string        `bson:"reward,omitempty" json:"reward,omitempty"`
}
