package models

// UserLogin holds one set of credentials for a user. PassHash is never serialized.
type UserLogin struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Main     string `json:"main" gorm:"size:30;unique;not null"`
	PassHash string `json:"-" gorm:"size:128;unique;not null"`
	UserID   *uint  `json:"user_id" gorm:"column:id_user"`

	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the UserLogin model
func (UserLogin) TableName() string {
	return "user_login"
}

// LoginInput creates or replaces a login. The password is hashed before storage.
type LoginInput struct {
	UserID   *uint  `json:"user_id" binding:"required"`
	Main     string `json:"main" binding:"required,max=30"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}
