package models

// Worker is the service-provider role of a user. A user has at most one.
type Worker struct {
	ID     uint  `json:"id" gorm:"primaryKey"`
	UserID *uint `json:"user_id" gorm:"column:id_user;unique"`

	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Worker model
func (Worker) TableName() string {
	return "worker"
}

// Petitioner is the service-requester role of a user. A user has at most one.
type Petitioner struct {
	ID     uint  `json:"id" gorm:"primaryKey"`
	UserID *uint `json:"user_id" gorm:"column:id_user;unique"`

	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Petitioner model
func (Petitioner) TableName() string {
	return "petitioner"
}

// RoleInput attaches a worker or petitioner role to a user.
type RoleInput struct {
	UserID *uint `json:"user_id" binding:"required"`
}
