package entity

// Supplier representa un proveedor de repuestos. Solo Name es obligatorio;
// los datos de contacto son opcionales (cadena vacía = ausente).
type Supplier struct {
	ID           string
	Name         string
	ContactEmail string
	ContactPhone string
	Address      string
}
