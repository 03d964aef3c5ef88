package models

import "gorm.io/datatypes"

// PetitionerService is a petitioner's engagement with one service.
type PetitionerService struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	ServiceID    *uint          `json:"service_id" gorm:"column:id_services"`
	PetitionerID *uint          `json:"petitioner_id" gorm:"column:id_petitioner"`
	PetitionDate datatypes.Date `json:"petition_date" gorm:"not null"`
	Solved       bool           `json:"solved" gorm:"not null;default:false"`

	Service    *Service    `json:"-" gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
	Petitioner *Petitioner `json:"-" gorm:"foreignKey:PetitionerID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the PetitionerService model
func (PetitionerService) TableName() string {
	return "petitioner_services"
}

// EvaluationPetitioner is the evaluation of the petitioner side of an engagement.
type EvaluationPetitioner struct {
	ID                  uint   `json:"id" gorm:"primaryKey"`
	PetitionerServiceID uint   `json:"petitioner_service_id" gorm:"column:id_petitioner_services;unique;not null"`
	Content             string `json:"content" gorm:"type:text"`
	Rating              int    `json:"rating" gorm:"not null"`

	PetitionerService *PetitionerService `json:"-" gorm:"foreignKey:PetitionerServiceID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the EvaluationPetitioner model
func (EvaluationPetitioner) TableName() string {
	return "evaluation_petitioner"
}

// EvaluationWorker is the evaluation of the worker side of an engagement.
type EvaluationWorker struct {
	ID                  uint   `json:"id" gorm:"primaryKey"`
	PetitionerServiceID uint   `json:"petitioner_service_id" gorm:"column:id_petitioner_services;unique;not null"`
	Content             string `json:"content" gorm:"type:text"`
	Rating              int    `json:"rating" gorm:"not null"`

	PetitionerService *PetitionerService `json:"-" gorm:"foreignKey:PetitionerServiceID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the EvaluationWorker model
func (EvaluationWorker) TableName() string {
	return "evaluation_worker"
}

// Evaluations groups the two evaluations of one engagement; either may be absent.
type Evaluations struct {
	Petitioner *EvaluationPetitioner `json:"petitioner"`
	Worker     *EvaluationWorker     `json:"worker"`
}

type PetitionerServiceInput struct {
	ServiceID    *uint           `json:"service_id" binding:"required"`
	PetitionerID *uint           `json:"petitioner_id" binding:"required"`
	PetitionDate *datatypes.Date `json:"petition_date" binding:"required"`
	Solved       bool            `json:"solved"`
}

func (in PetitionerServiceInput) ToModel() PetitionerService {
	return PetitionerService{
		ServiceID:    in.ServiceID,
		PetitionerID: in.PetitionerID,
		PetitionDate: *in.PetitionDate,
		Solved:       in.Solved,
	}
}

// EvaluationInput creates or replaces either evaluation of a petitioner service.
type EvaluationInput struct {
	PetitionerServiceID *uint  `json:"petitioner_service_id" binding:"required"`
	Content             string `json:"content"`
	Rating              *int   `json:"rating" binding:"required"`
}

func (in EvaluationInput) ToEvaluationPetitioner() EvaluationPetitioner {
	return EvaluationPetitioner{PetitionerServiceID: *in.PetitionerServiceID, Content: in.Content, Rating: *in.Rating}
}

func (in EvaluationInput) ToEvaluationWorker() EvaluationWorker {
	return EvaluationWorker{PetitionerServiceID: *in.PetitionerServiceID, Content: in.Content, Rating: *in.Rating}
}
