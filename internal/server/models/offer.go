package models

import "time"

// Offer states.
const (
	OfferOpen   = "abierta"
	OfferClosed = "cerrada"
	OfferPaused = "pausada"
)

// ApplicationPending is the initial state of a fresh application.
const ApplicationPending = "Pendiente"

type Offer struct {
	ID               string    `json:"id"`
	Titulo           string    `json:"titulo"`
	EmpresaEmail     string    `json:"empresa"`
	Descripcion      string    `json:"descripcion"`
	Requisitos       string    `json:"requisitos"`
	SkillsRequeridos []string  `json:"skills_requeridos"`
	Salario          *float64  `json:"salario"`
	Ubicacion        string    `json:"ubicacion"`
	Modalidad        string    `json:"modalidad"`
	TipoContrato     string    `json:"tipo_contrato"`
	Estado           string    `json:"estado"`
	FechaPublicacion time.Time `json:"fecha_publicacion"`
}

type Application struct {
	ID              string    `json:"id"`
	CandidatoEmail  string    `json:"candidato_email"`
	OfertaID        string    `json:"oferta_id"`
	Estado          string    `json:"estado"`
	FechaAplicacion time.Time `json:"fecha_aplicacion"`

	// Filled in by the service when listing a candidate's applications.
	Oferta *Offer `json:"oferta,omitempty"`
}
