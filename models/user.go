package models

// User is a marketplace member. Worker and petitioner roles hang off it.
type User struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	FirstName   string  `json:"first_name" gorm:"size:30"`
	SecondName  string  `json:"second_name" gorm:"size:30"`
	Lastname    string  `json:"lastname" gorm:"size:30"`
	Mail        string  `json:"mail" gorm:"size:30;unique;not null"`
	PhoneNumber int64   `json:"phone_number" gorm:"unique;not null"`
	Address     string  `json:"address" gorm:"size:30"`
	RutDigit    string  `json:"digit_number_rut" gorm:"column:digit_number_rut;size:1;not null"`
	RutNumber   int     `json:"rut_numbers" gorm:"column:rut_numbers;not null"`
	Age         int     `json:"age" gorm:"not null"`
	Rating      float32 `json:"rating" gorm:"type:real;not null"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}

// UserInput is the full-row payload used both to create and to replace a user.
type UserInput struct {
	FirstName   string   `json:"first_name" binding:"max=30"`
	SecondName  string   `json:"second_name" binding:"max=30"`
	Lastname    string   `json:"lastname" binding:"max=30"`
	Mail        string   `json:"mail" binding:"required,max=30"`
	PhoneNumber *int64   `json:"phone_number" binding:"required"`
	Address     string   `json:"address" binding:"max=30"`
	RutDigit    string   `json:"digit_number_rut" binding:"required,len=1"`
	RutNumber   *int     `json:"rut_numbers" binding:"required"`
	Age         *int     `json:"age" binding:"required"`
	Rating      *float32 `json:"rating" binding:"required"`
}

// ToModel converts the payload into a User. Required pointers must be set.
func (in UserInput) ToModel() User {
	return User{
		FirstName:   in.FirstName,
		SecondName:  in.SecondName,
		Lastname:    in.Lastname,
		Mail:        in.Mail,
		PhoneNumber: *in.PhoneNumber,
		Address:     in.Address,
		RutDigit:    in.RutDigit,
		RutNumber:   *in.RutNumber,
		Age:         *in.Age,
		Rating:      *in.Rating,
	}
}
