package models

import "gorm.io/datatypes"

// Service is an offering posted by a worker.
type Service struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	WorkerID   *uint           `json:"worker_id" gorm:"column:id_worker"`
	Content    string          `json:"content" gorm:"type:text"`
	InitDate   datatypes.Date  `json:"init_date" gorm:"not null"`
	FinishDate *datatypes.Date `json:"finish_date" gorm:"check:finish_date IS NULL OR finish_date >= init_date"`
	Price      int             `json:"price" gorm:"not null"`

	Worker *Worker `json:"-" gorm:"foreignKey:WorkerID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Service model
func (Service) TableName() string {
	return "services"
}

// ServiceInput is the full-row payload used both to create and to replace a service.
type ServiceInput struct {
	WorkerID   *uint           `json:"worker_id" binding:"required"`
	Content    string          `json:"content"`
	InitDate   *datatypes.Date `json:"init_date" binding:"required"`
	FinishDate *datatypes.Date `json:"finish_date"`
	Price      *int            `json:"price" binding:"required"`
}

func (in ServiceInput) ToModel() Service {
	return Service{
		WorkerID:   in.WorkerID,
		Content:    in.Content,
		InitDate:   *in.InitDate,
		FinishDate: in.FinishDate,
		Price:      *in.Price,
	}
}
