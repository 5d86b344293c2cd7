package model

import (
	"time"

	"github.com/google/uuid"
)

// FlowServiceModel: layanan ibadah milik katalog flow eksternal, dikenali
// lewat kode pendek yang dibagikan antar sistem.
type FlowServiceModel struct {
	FlowServiceID        uuid.UUID `gorm:"column:flow_service_id;type:uuid;default:gen_random_uuid();primaryKey" json:"flow_service_id"`
	FlowServiceCode      string    `gorm:"column:flow_service_code;type:varchar(16);not null;uniqueIndex:ux_flow_services_code" json:"flow_service_code"`
	FlowServiceName      string    `gorm:"column:flow_service_name;type:varchar(255)" json:"flow_service_name"`
	FlowServiceCreatedAt time.Time `gorm:"column:flow_service_created_at;type:timestamptz;autoCreateTime" json:"flow_service_created_at"`
	FlowServiceUpdatedAt time.Time `gorm:"column:flow_service_updated_at;type:timestamptz;autoUpdateTime" json:"flow_service_updated_at"`
}

func (FlowServiceModel) TableName() string {
	return "flow_services"
}
