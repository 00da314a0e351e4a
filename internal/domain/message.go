package domain

import "time"

// MessageType describes the message payload kind.
type MessageType string

const (
	MessageText  MessageType = "text"
	MessageImage MessageType = "image"
	MessageVideo MessageType = "video"
	MessageAudio MessageType = "audio"
)

// Message is a single chat message between a trainer and a student.
type Message struct {
	ID         string      `bson:"_id,omitempty" json:"id"`
	SenderID   string      `bson:"senderId" json:"senderId"`
	ReceiverID string      `bson:"receiverId" json:"receiverId"`
	Content    string      `bson:"content" json:"content"`
	Type       MessageType `bson:"type" json:"type"`
	MediaURL   string      `bson:"mediaUrl,omitempty" json:"mediaUrl,omitempty"`
	Read       bool        `bson:"read" json:"read"`
	CreatedAt  time.Time   `bson:"createdAt" json:"createdAt"`
}
