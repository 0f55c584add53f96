package model

import "time"

type User struct {
	Id        string    `gorm:"column:id;type:uuid;not null;primaryKey;" json:"id"`
	Name      string    `gorm:"column:name;type:text;not null;" json:"name"`
	CreatedAt time.Time `gorm:"column:createdAt;not null;" json:"createdAt"`
	Movies    []Movie   `gorm:"foreignKey:OwnerId;references:Id;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-" swaggerignore:"true"`
}

func (User) TableName() string {
	return "User"
}

//---------------------------------------
//---------------------------------------

type CreateUserReq struct {
	Name string `json:"name"`
}
