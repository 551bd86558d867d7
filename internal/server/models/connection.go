package models

import "time"

// Connection request states.
const (
	RequestPending  = "pendiente"
	RequestAccepted = "aceptada"
	RequestRejected = "rechazada"
)

type ConnectionRequest struct {
	ID                string    `json:"id"`
	RemitenteEmail    string    `json:"remitente_email"`
	DestinatarioEmail string    `json:"destinatario_email"`
	Mensaje           string    `json:"mensaje"`
	Estado            string    `json:"estado"`
	FechaSolicitud    time.Time `json:"fecha_solicitud"`

	// Enriched counterpart data for list endpoints.
	RemitenteNombre    string `json:"remitente_nombre,omitempty"`
	RemitenteRol       string `json:"remitente_rol,omitempty"`
	DestinatarioNombre string `json:"destinatario_nombre,omitempty"`
	DestinatarioRol    string `json:"destinatario_rol,omitempty"`
}

// Contact is one confirmed member of a user's network.
type Contact struct {
	Email         string    `json:"email"`
	Nombre        string    `json:"nombre"`
	Rol           string    `json:"rol"`
	FechaConexion time.Time `json:"fecha_conexion"`
}
