package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"staffhub_backend/internals/features/chat/messages/model"
)

type MessageAttachment struct {
	URL  string `json:"url" validate:"required,url"`
	Name string `json:"name" validate:"required,max=255"`
	Type string `json:"type" validate:"omitempty,max=100"`
}

type SendMessageRequest struct {
	GroupMessageBody       string             `json:"group_message_body" validate:"required,min=1,max=4000"`
	GroupMessageAttachment *MessageAttachment `json:"group_message_attachment" validate:"omitempty"`
}

type GroupMessageDTO struct {
	GroupMessageID             uuid.UUID      `json:"group_message_id"`
	GroupMessageSenderMemberID uuid.UUID      `json:"group_message_sender_member_id"`
	GroupMessageSenderName     string         `json:"group_message_sender_name,omitempty"`
	GroupMessageBody           string         `json:"group_message_body"`
	GroupMessageAttachment     datatypes.JSON `json:"group_message_attachment,omitempty"`
	GroupMessageCreatedAt      time.Time      `json:"group_message_created_at"`
}

func ToGroupMessageDTO(m model.GroupMessageModel, senderName string) GroupMessageDTO {
	return GroupMessageDTO{
		GroupMessageID:             m.GroupMessageID,
		GroupMessageSenderMemberID: m.GroupMessageSenderMemberID,
		GroupMessageSenderName:     senderName,
		GroupMessageBody:           m.GroupMessageBody,
		GroupMessageAttachment:     m.GroupMessageAttachment,
		GroupMessageCreatedAt:      m.GroupMessageCreatedAt,
	}
}
