package models

import "time"

type Setting struct {
	Key   string `gorm:"size:100;primaryKey" json:"key"`
	Value string `gorm:"type:text" json:"value"`

	UpdatedAt time.Time `json:"updated_at"`
}
