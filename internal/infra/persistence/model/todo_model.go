package model

// TodoModel is the GORM model for the todos table. "order" is a reserved word
// in SQL; GORM quotes it when building statements.
type TodoModel struct {
	ID        int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Title     string `gorm:"column:title;not null"`
	Order     int    `gorm:"column:order;not null;default:0"`
	Completed bool   `gorm:"column:completed;not null;default:false"`
}

// TableName overrides the default GORM table name.
func (TodoModel) TableName() string {
	return "todos"
}
