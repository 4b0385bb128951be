package models

import "time"

// ChatMessage is the durable copy of a customer/seller message. The
// websocket broadcast is best-effort on top of this row.
type ChatMessage struct {
	ChatID     uint      `gorm:"primaryKey;autoIncrement" json:"chatId"`
	SenderID   uint      `gorm:"not null;index" json:"senderId"`
	ReceiverID uint      `gorm:"not null;index" json:"receiverId"`
	Message    string    `gorm:"type:text;not null" json:"message"`
	Timestamp  time.Time `gorm:"not null" json:"timestamp"`

	Sender   *User `gorm:"foreignKey:SenderID;references:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Receiver *User `gorm:"foreignKey:ReceiverID;references:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ChatMessage) TableName() string { return "chat_messages" }
