package queue

import (
	"encoding/json"

	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/constants"
	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/models"

	"github.com/hibiken/asynq"
)

// TaskCheckoutHandoff 结算交接投递任务
const TaskCheckoutHandoff = constants.TaskCheckoutHandoff

// CheckoutHandoffPayload 结算交接任务载荷
type CheckoutHandoffPayload struct {
	SessionID string                 `json:"session_id"`
	Checkout  models.CheckoutPayload `json:"checkout"`
}

// NewCheckoutHandoffTask 创建结算交接任务
func NewCheckoutHandoffTask(payload CheckoutHandoffPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskCheckoutHandoff, body), nil
}
