package entity

// Category representa una categoría de repuestos. Name es único en toda la colección.
type Category struct {
	ID          string
	Name        string
	Description string
}
