package models

import "gorm.io/datatypes"

// Request is a posting by a petitioner looking for a worker. It mirrors Service.
type Request struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	PetitionerID *uint           `json:"petitioner_id" gorm:"column:id_petitioner"`
	InitDate     datatypes.Date  `json:"init_date" gorm:"not null"`
	FinishDate   *datatypes.Date `json:"finish_date" gorm:"check:finish_date IS NULL OR finish_date >= init_date"`
	Price        int             `json:"price" gorm:"not null"`

	Petitioner *Petitioner `json:"-" gorm:"foreignKey:PetitionerID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Request model
func (Request) TableName() string {
	return "request"
}

// RequestInput is the full-row payload for a request. Requests carry no content.
type RequestInput struct {
	PetitionerID *uint           `json:"petitioner_id" binding:"required"`
	InitDate     *datatypes.Date `json:"init_date" binding:"required"`
	FinishDate   *datatypes.Date `json:"finish_date"`
	Price        *int            `json:"price" binding:"required"`
}

func (in RequestInput) ToModel() Request {
	return Request{
		PetitionerID: in.PetitionerID,
		InitDate:     *in.InitDate,
		FinishDate:   in.FinishDate,
		Price:        *in.Price,
	}
}

// WorkerRequest is a worker's response to a request.
type WorkerRequest struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	WorkerID     *uint          `json:"worker_id" gorm:"column:id_worker"`
	RequestID    *uint          `json:"request_id" gorm:"column:id_request"`
	PetitionDate datatypes.Date `json:"petition_date" gorm:"not null"`
	Solved       bool           `json:"solved" gorm:"not null;default:false"`

	Worker  *Worker  `json:"-" gorm:"foreignKey:WorkerID;constraint:OnDelete:CASCADE"`
	Request *Request `json:"-" gorm:"foreignKey:RequestID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the WorkerRequest model
func (WorkerRequest) TableName() string {
	return "worker_request"
}

type WorkerRequestInput struct {
	WorkerID     *uint           `json:"worker_id" binding:"required"`
	RequestID    *uint           `json:"request_id" binding:"required"`
	PetitionDate *datatypes.Date `json:"petition_date" binding:"required"`
	Solved       bool            `json:"solved"`
}

func (in WorkerRequestInput) ToModel() WorkerRequest {
	return WorkerRequest{
		WorkerID:     in.WorkerID,
		RequestID:    in.RequestID,
		PetitionDate: *in.PetitionDate,
		Solved:       in.Solved,
	}
}

// PetitionerReview reviews the petitioner side of a worker request.
type PetitionerReview struct {
	ID              uint   `json:"id" gorm:"primaryKey"`
	WorkerRequestID uint   `json:"worker_request_id" gorm:"column:id_worker_request;unique;not null"`
	Content         string `json:"content" gorm:"type:text"`
	Rating          int    `json:"rating" gorm:"not null"`

	WorkerRequest *WorkerRequest `json:"-" gorm:"foreignKey:WorkerRequestID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the PetitionerReview model
func (PetitionerReview) TableName() string {
	return "petitioner_review"
}

// WorkerReview reviews the worker side of a worker request.
type WorkerReview struct {
	ID              uint   `json:"id" gorm:"primaryKey"`
	WorkerRequestID uint   `json:"worker_request_id" gorm:"column:id_worker_request;unique;not null"`
	Content         string `json:"content" gorm:"type:text"`
	Rating          int    `json:"rating" gorm:"not null"`

	WorkerRequest *WorkerRequest `json:"-" gorm:"foreignKey:WorkerRequestID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the WorkerReview model
func (WorkerReview) TableName() string {
	return "worker_review"
}

type Reviews struct {
	Petitioner *PetitionerReview `json:"petitioner"`
	Worker     *WorkerReview     `json:"worker"`
}

// ReviewInput creates or replaces either review of a worker request.
type ReviewInput struct {
	WorkerRequestID *uint  `json:"worker_request_id" binding:"required"`
	Content         string `json:"content"`
	Rating          *int   `json:"rating" binding:"required"`
}

func (in ReviewInput) ToPetitionerReview() PetitionerReview {
	return PetitionerReview{WorkerRequestID: *in.WorkerRequestID, Content: in.Content, Rating: *in.Rating}
}

func (in ReviewInput) ToWorkerReview() WorkerReview {
	return WorkerReview{WorkerRequestID: *in.WorkerRequestID, Content: in.Content, Rating: *in.Rating}
}
