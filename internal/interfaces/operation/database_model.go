package operation

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"time"
)

const (
	UserCollection    = "Users"
	FlyCollection     = "Flys"
	CommentCollection = "Comments"
	PlaneCollection   = "Planes"
)

type User struct {
	ID        string    `gorm:"primarykey;size:36" bson:"_id" json:"_id"`
	Email     string    `gorm:"size:128;index;not null" bson:"email" json:"email"`
	Name      string    `gorm:"size:128;not null" bson:"name" json:"name"`
	Password  string    `gorm:"size:128;not null" bson:"password" json:"-"`
	Token     string    `gorm:"size:512;index;not null;default:''" bson:"token" json:"token"`
	Role      string    `gorm:"size:32;not null" bson:"role" json:"role"`
	CreatedAt time.Time `bson:"created_at" json:"-"`
	UpdatedAt time.Time `bson:"updated_at" json:"-"`
}

func (*User) TableName() string { return UserCollection }

func (user *User) BeforeCreate(_ *gorm.DB) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	return nil
}

type Fly struct {
	ID        string    `gorm:"primarykey;size:36" bson:"_id" json:"_id"`
	Date      time.Time `gorm:"index;not null" bson:"date" json:"date"`
	Duration  int       `gorm:"not null;default:0" bson:"duration" json:"duration"`
	AuthorId  string    `gorm:"size:36;index;not null" bson:"author_id" json:"author_id"`
	PlaneId   string    `gorm:"size:36;index;not null;default:''" bson:"plane_id" json:"plane_id"`
	CreatedAt time.Time `bson:"created_at" json:"-"`
	UpdatedAt time.Time `bson:"updated_at" json:"-"`
}

func (*Fly) TableName() string { return FlyCollection }

func (fly *Fly) BeforeCreate(_ *gorm.DB) error {
	if fly.ID == "" {
		fly.ID = uuid.NewString()
	}
	return nil
}

type Comment struct {
	ID        string    `gorm:"primarykey;size:36" bson:"_id" json:"_id"`
	Comment   string    `gorm:"type:text;not null" bson:"comment" json:"comment"`
	AuthorId  string    `gorm:"size:36;index;not null" bson:"author_id" json:"author_id"`
	FlyId     string    `gorm:"size:36;index;not null" bson:"fly_id" json:"fly_id"`
	CreatedAt time.Time `bson:"created_at" json:"-"`
}

func (*Comment) TableName() string { return CommentCollection }

func (comment *Comment) BeforeCreate(_ *gorm.DB) error {
	if comment.ID == "" {
		comment.ID = uuid.NewString()
	}
	return nil
}

type Plane struct {
	ID        string    `gorm:"primarykey;size:36" bson:"_id" json:"_id"`
	Name      string    `gorm:"size:128;not null" bson:"name" json:"name"`
	CreatedAt time.Time `bson:"created_at" json:"-"`
}

func (*Plane) TableName() string { return PlaneCollection }

func (plane *Plane) BeforeCreate(_ *gorm.DB) error {
	if plane.ID == "" {
		plane.ID = uuid.NewString()
	}
	return nil
}
