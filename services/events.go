package services

import (
	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/entity"
)

// OrderEvents is fed by services on every order row change; the websocket
// hub implements it to push events to subscribed staff dashboards.
type OrderEvents interface {
	OrderCreated(o *entity.Order)
	OrderUpdated(o *entity.Order)
}
