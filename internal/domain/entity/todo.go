package entity

// Todo is a single item on the shared todo list. Order controls the position
// in which items are listed.
type Todo struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Order     int    `json:"order"`
	Completed bool   `json:"completed"`
}
