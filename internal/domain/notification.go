package domain

import "time"

type NotificationKind string

const (
	NotificationKindBusiness NotificationKind = "business"
	NotificationKindAdmin    NotificationKind = "admin"
)

// Notification is an independently owned document; it references its order
// only through the message text and carries no back-reference.
type Notification struct {
	ID          string           `bson:"_id,omitempty" json:"id"`
	RecipientID string           `bson:"recipientId" json:"recipientId"`
	Kind        NotificationKind `bson:"kind" json:"kind"`
	Message     string           `bson:"message" json:"message"`
	Read        bool             `bson:"read" json:"read"`
	CreatedAt   time.Time        `bson:"createdAt" json:"createdAt"`
}
