package dto

import "time"

// CreateReportRequest entrada para registrar un reporte generado.
// Body libre según el contrato: sin validación de campos.
type CreateReportRequest struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	DateRange string `json:"dateRange"`
}

// ReportResponse salida de un reporte.
type ReportResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	DateRange string    `json:"dateRange"`
	CreatedAt time.Time `json:"createdAt"`
}
