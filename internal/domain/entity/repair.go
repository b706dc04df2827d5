package entity

import (
	"time"
)

type RepairCategory string

const (
	RepairCategoryLaptop       RepairCategory = "laptop"
	RepairCategoryDesktop      RepairCategory = "desktop"
	RepairCategoryMonitor      RepairCategory = "monitor"
	RepairCategoryPeripheral   RepairCategory = "peripheral"
	RepairCategoryDataRecovery RepairCategory = "data_recovery"
	RepairCategoryUpgrade      RepairCategory = "upgrade"
)

func (c RepairCategory) Valid() bool {
	switch c {
	case RepairCategoryLaptop, RepairCategoryDesktop, RepairCategoryMonitor,
		RepairCategoryPeripheral, RepairCategoryDataRecovery, RepairCategoryUpgrade:
		return true
	}
	return false
}

type RepairService struct {
	ID            string         `json:"id" gorm:"primaryKey"`
	Name          string         `json:"name" gorm:"not null"`
	Description   string         `json:"description"`
	Category      RepairCategory `json:"category" gorm:"index;not null"`
	EstimatedTime string         `json:"estimatedTime"`
	PriceFrom     int64          `json:"priceFrom"`
	PriceTo       *int64         `json:"priceTo,omitempty"`
	IsPopular     bool           `json:"isPopular,omitempty"`
}

type RepairStatus string

const (
	RepairStatusPending          RepairStatus = "pending"
	RepairStatusDiagnosed        RepairStatus = "diagnosed"
	RepairStatusAwaitingApproval RepairStatus = "awaiting_approval"
	RepairStatusInProgress       RepairStatus = "in_progress"
	RepairStatusCompleted        RepairStatus = "completed"
	RepairStatusCancelled        RepairStatus = "cancelled"
)

func (s RepairStatus) Valid() bool {
	switch s {
	case RepairStatusPending, RepairStatusDiagnosed, RepairStatusAwaitingApproval,
		RepairStatusInProgress, RepairStatusCompleted, RepairStatusCancelled:
		return true
	}
	return false
}

func (s RepairStatus) Terminal() bool {
	return s == RepairStatusCompleted || s == RepairStatusCancelled
}

type RepairStatusHistory struct {
	Status    RepairStatus `json:"status"`
	Timestamp time.Time    `json:"timestamp"`
	Comment   string       `json:"comment,omitempty"`
}

type RepairRequest struct {
	ID                 string                `json:"id" gorm:"primaryKey"`
	RequestNumber      string                `json:"requestNumber" gorm:"uniqueIndex;not null"`
	UserID             string                `json:"userId" gorm:"index;not null"`
	Service            RepairService         `json:"service" gorm:"serializer:json"`
	DeviceType         string                `json:"deviceType"`
	DeviceBrand        string                `json:"deviceBrand"`
	DeviceModel        string                `json:"deviceModel"`
	SerialNumber       string                `json:"serialNumber,omitempty"`
	ProblemDescription string                `json:"problemDescription" gorm:"type:text"`
	Status             RepairStatus          `json:"status" gorm:"index;not null"`
	StatusHistory      []RepairStatusHistory `json:"statusHistory" gorm:"serializer:json"`
	EstimatedCost      *int64                `json:"estimatedCost,omitempty"`
	FinalCost          *int64                `json:"finalCost,omitempty"`
	CreatedAt          time.Time             `json:"createdAt"`
	UpdatedAt          time.Time             `json:"updatedAt"`
	CompletedAt        *time.Time            `json:"completedAt,omitempty"`
}
