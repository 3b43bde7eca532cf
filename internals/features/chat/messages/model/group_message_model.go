package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GroupMessageModel: pesan di ruang chat tim (satu room untuk seluruh agency).
// Attachment opsional, JSONB {url, name, type}.
type GroupMessageModel struct {
	GroupMessageID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:group_message_id" json:"group_message_id"`

	GroupMessageSenderMemberID uuid.UUID `gorm:"type:uuid;not null;index;column:group_message_sender_member_id" json:"group_message_sender_member_id"`

	GroupMessageBody       string         `gorm:"type:text;not null;column:group_message_body" json:"group_message_body"`
	GroupMessageAttachment datatypes.JSON `gorm:"type:jsonb;column:group_message_attachment" json:"group_message_attachment,omitempty"`

	GroupMessageCreatedAt time.Time      `gorm:"column:group_message_created_at;autoCreateTime;index" json:"group_message_created_at"`
	GroupMessageDeletedAt gorm.DeletedAt `gorm:"column:group_message_deleted_at;index" json:"group_message_deleted_at,omitempty"`
}

func (GroupMessageModel) TableName() string { return "group_messages" }
