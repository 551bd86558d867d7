package models

import "time"

type Course struct {
	Codigo        string   `json:"codigo"`
	Nombre        string   `json:"nombre"`
	Descripcion   string   `json:"descripcion"`
	DuracionHoras int      `json:"duracion_horas"`
	Categoria     string   `json:"categoria"`
	Nivel         string   `json:"nivel"`
	Recursos      []string `json:"recursos"`
	Instructor    string   `json:"instructor"`
	// Skills granted to the candidate's profile when the exam is passed.
	Skills []string `json:"skills"`
}

type Enrollment struct {
	ID               string    `json:"id"`
	CandidatoEmail   string    `json:"candidato_email"`
	CursoCodigo      string    `json:"curso_codigo"`
	FechaInscripcion time.Time `json:"fecha_inscripcion"`
	// Progreso runs 0.0 to 1.0; reaching 1.0 marks the enrollment completado.
	Progreso float64 `json:"progreso"`
	// Calificacion is the 0-100 final grade assigned through the calificar
	// endpoint, independent of the 0-10 exam nota.
	Calificacion *float64   `json:"calificacion"`
	Completado   bool       `json:"completado"`
	NotaExamen   int        `json:"nota_examen"`
	Aprobado     bool       `json:"aprobado"`
	FechaExamen  *time.Time `json:"fecha_examen"`

	// Filled in by the service when listing a candidate's courses.
	Curso *Course `json:"curso,omitempty"`
}
