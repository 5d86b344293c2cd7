package dto

import (
	"github.com/google/uuid"

	"acaraku_backend/internals/features/flow/model"
)

// ========= Request DTO =========

// FlowNotifyRequest: payload webhook dari sistem flow. Cuma kode layanan —
// isi layanannya dibaca langsung dari katalog, bukan dari payload.
type FlowNotifyRequest struct {
	ServiceCode string `json:"service_code" validate:"required,max=16"`
}

type FlowServiceRequest struct {
	FlowServiceCode string `json:"flow_service_code" validate:"required,max=16"`
	FlowServiceName string `json:"flow_service_name" validate:"omitempty,max=255"`
}

func (r *FlowServiceRequest) ToModel() *model.FlowServiceModel {
	return &model.FlowServiceModel{
		FlowServiceCode: r.FlowServiceCode,
		FlowServiceName: r.FlowServiceName,
	}
}

// FlowLinkRequest: menautkan satu event ke layanan flow.
type FlowLinkRequest struct {
	EventID uuid.UUID `json:"event_id" validate:"required"`
}

// ========= Response DTO =========

type FlowServiceResponse struct {
	FlowServiceID   uuid.UUID `json:"flow_service_id"`
	FlowServiceCode string    `json:"flow_service_code"`
	FlowServiceName string    `json:"flow_service_name"`
}

func ToFlowServiceResponse(m *model.FlowServiceModel) *FlowServiceResponse {
	return &FlowServiceResponse{
		FlowServiceID:   m.FlowServiceID,
		FlowServiceCode: m.FlowServiceCode,
		FlowServiceName: m.FlowServiceName,
	}
}

func ToFlowServiceResponseList(models []model.FlowServiceModel) []FlowServiceResponse {
	out := make([]FlowServiceResponse, 0, len(models))
	for i := range models {
		out = append(out, *ToFlowServiceResponse(&models[i]))
	}
	return out
}
