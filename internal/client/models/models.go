// Package models defines the client-side view of the API payloads. Only the
// fields the CLI displays are mapped; everything else the server returns is
// ignored on decode.
package models

import "time"

// Views the CLI can navigate to. The session store and the HTTP adapter
// both steer navigation through these names.
const (
	ViewLogin     = "login"
	ViewRegister  = "register"
	ViewDashboard = "dashboard"
)

// Roles as the server reports them.
const (
	RoleAdmin     = "admin"
	RoleCandidato = "candidato"
	RoleEmpresa   = "empresa"
)

type User struct {
	Email  string `json:"email"`
	Nombre string `json:"nombre"`
	Rol    string `json:"rol"`
}

type Profile struct {
	Email       string   `json:"email"`
	Nombre      string   `json:"nombre,omitempty"`
	Seniority   string   `json:"seniority,omitempty"`
	Skills      []string `json:"skills,omitempty"`
	Experiencia string   `json:"experiencia,omitempty"`
	Educacion   string   `json:"educacion,omitempty"`
}

type Course struct {
	Codigo        string   `json:"codigo"`
	Nombre        string   `json:"nombre"`
	Categoria     string   `json:"categoria,omitempty"`
	Nivel         string   `json:"nivel,omitempty"`
	DuracionHoras int      `json:"duracion_horas,omitempty"`
	Skills        []string `json:"skills,omitempty"`
}

type Enrollment struct {
	ID           string   `json:"id"`
	CursoCodigo  string   `json:"curso_codigo"`
	Progreso     float64  `json:"progreso"`
	Completado   bool     `json:"completado"`
	NotaExamen   int      `json:"nota_examen"`
	Aprobado     bool     `json:"aprobado"`
	Curso        *Course  `json:"curso,omitempty"`
	Calificacion *float64 `json:"calificacion,omitempty"`
}

type Offer struct {
	ID               string   `json:"id"`
	Titulo           string   `json:"titulo"`
	EmpresaEmail     string   `json:"empresa"`
	Modalidad        string   `json:"modalidad,omitempty"`
	Ubicacion        string   `json:"ubicacion,omitempty"`
	Estado           string   `json:"estado"`
	SkillsRequeridos []string `json:"skills_requeridos,omitempty"`
}

type Application struct {
	ID       string `json:"id"`
	OfertaID string `json:"oferta_id"`
	Estado   string `json:"estado"`
	Oferta   *Offer `json:"oferta,omitempty"`
}

type ConnectionRequest struct {
	ID                string `json:"id"`
	RemitenteEmail    string `json:"remitente_email"`
	DestinatarioEmail string `json:"destinatario_email"`
	Mensaje           string `json:"mensaje,omitempty"`
	Estado            string `json:"estado"`
	RemitenteNombre   string `json:"remitente_nombre,omitempty"`
}

type Contact struct {
	Email         string    `json:"email"`
	Nombre        string    `json:"nombre"`
	Rol           string    `json:"rol"`
	FechaConexion time.Time `json:"fecha_conexion"`
}
