package models

// User is a single row of the users table. Rows are written by external
// tooling; this service only reads them.
type User struct {
	ID        int64  `json:"id" db:"id" gorm:"column:id;primaryKey"`
	FirstName string `json:"firstName" db:"first_name" gorm:"column:first_name"`
	LastName  string `json:"lastName" db:"last_name" gorm:"column:last_name"`
}

// TableName keeps the ORM-backed store on the same table the SQL
// migrations create.
func (User) TableName() string {
	return "users"
}
