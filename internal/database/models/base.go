package models

// BaseModel provides the surrogate integer key shared by all entities.
// IDs are generated by the database on insert and never change afterwards.
type BaseModel struct {
	ID uint `json:"id" gorm:"primaryKey;autoIncrement"`
}
