package queue

import (
	"encoding/json"

	"github.com/wabi-shop/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderPlacedEmail 下单通知邮件任务
	TaskOrderPlacedEmail = constants.TaskOrderPlacedEmail
)

// OrderPlacedEmailPayload 下单通知邮件任务载荷
type OrderPlacedEmailPayload struct {
	OrderID uint `json:"order_id"`
}

// NewOrderPlacedEmailTask 创建下单通知邮件任务
func NewOrderPlacedEmailTask(payload OrderPlacedEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderPlacedEmail, body), nil
}
