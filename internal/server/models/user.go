// Package models holds the persistence-level entities of the Talentum
// server. JSON tags follow the wire names the HTTP API exposes.
package models

import "time"

// Roles a usuario can hold. Public registration only allows RoleCandidato
// and RoleEmpresa; admins are created out of band.
const (
	RoleAdmin     = "admin"
	RoleCandidato = "candidato"
	RoleEmpresa   = "empresa"
)

// ValidRegistrationRole reports whether rol may be chosen during public
// registration.
func ValidRegistrationRole(rol string) bool {
	return rol == RoleCandidato || rol == RoleEmpresa
}

type User struct {
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Nombre       string    `json:"nombre"`
	Rol          string    `json:"rol"`
	CreatedAt    time.Time `json:"created_at"`
}
