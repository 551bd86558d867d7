package models

import "time"

// Process is a selection process for a candidate. NotasConfidenciales is
// only returned to admin and empresa callers.
type Process struct {
	ID                  string    `json:"id"`
	CandidatoEmail      string    `json:"candidato_email"`
	Puesto              string    `json:"puesto"`
	Estado              string    `json:"estado"`
	Feedback            string    `json:"feedback"`
	NotasConfidenciales string    `json:"notas_confidenciales,omitempty"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// InterviewScheduled is the initial state of a newly created interview.
const InterviewScheduled = "Programada"

type Interview struct {
	ID              string    `json:"id"`
	ProcesoID       string    `json:"proceso_id"`
	Tipo            string    `json:"tipo"`
	Fecha           time.Time `json:"fecha"`
	Entrevistador   string    `json:"entrevistador"`
	DuracionMinutos int       `json:"duracion_minutos"`
	Notas           string    `json:"notas"`
	Puntaje         *int      `json:"puntaje"`
	Estado          string    `json:"estado"`

	// Set when listing through a candidate (join with procesos).
	Puesto string `json:"puesto,omitempty"`
}

type Evaluation struct {
	ID         string  `json:"id"`
	ProcesoID  string  `json:"proceso_id"`
	Tipo       string  `json:"tipo"`
	Plataforma string  `json:"plataforma"`
	Resultado  string  `json:"resultado"`
	Puntaje    float64 `json:"puntaje"`
	Feedback   string  `json:"feedback"`

	Puesto string `json:"puesto,omitempty"`
}
