package domain

import "time"

// Exercise represents a single exercise definition in the library.
// Built-in exercises have no PersonalID; custom ones belong to the
// trainer who created them.
type Exercise struct {
	ID             string   `bson:"_id,omitempty" json:"id"`
	Name           string   `bson:"name" json:"name"`
	Description    string   `bson:"description,omitempty" json:"description,omitempty"`
	MuscleGroup    string   `bson:"muscleGroup,omitempty" json:"muscleGroup,omitempty"` // e.g., "Chest", "Legs", "Back"
	Difficulty     Level    `bson:"difficulty,omitempty" json:"difficulty,omitempty"`
	Equipment      []string `bson:"equipment,omitempty" json:"equipment,omitempty"`
	VideoURL       string   `bson:"videoUrl,omitempty" json:"videoUrl,omitempty"`
	GifURL         string   `bson:"gifUrl,omitempty" json:"gifUrl,omitempty"`
	Instructions   []string `bson:"instructions,omitempty" json:"instructions,omitempty"`
	Tips           []string `bson:"tips,omitempty" json:"tips,omitempty"`
	CommonMistakes []string `bson:"commonMistakes,omitempty" json:"commonMistakes,omitempty"`
	Variations     []string `bson:"variations,omitempty" json:"variations,omitempty"`
	PersonalID     string   `bson:"personalId,omitempty" json:"personalId,omitempty"`
	IsCustom       bool     `bson:"isCustom" json:"isCustom"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
