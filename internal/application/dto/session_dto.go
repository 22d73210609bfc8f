package dto

import "strings"

// LoginRequest entrada del formulario de inicio de sesión.
// Identifier puede ser un teléfono o un email.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"notblank"`
	Password   string `json:"password" validate:"notblank"`
}

// Normalize recorta espacios del identificador (nunca de la contraseña).
func (r *LoginRequest) Normalize() {
	r.Identifier = strings.TrimSpace(r.Identifier)
}

// RegisterRequest entrada del formulario de registro.
// Se exige nombre, contraseña y al menos teléfono o email.
// ConfirmPassword solo se verifica si viene informado.
type RegisterRequest struct {
	Name            string `json:"name" validate:"required"`
	Phone           string `json:"phone" validate:"required_without=Email"`
	Email           string `json:"email" validate:"omitempty,email"`
	Address         string `json:"address"`
	Password        string `json:"password" validate:"notblank"`
	ConfirmPassword string `json:"confirm_password" validate:"omitempty,eqfield=Password"`
}

// Normalize recorta espacios de los campos de perfil.
func (r *RegisterRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Email = strings.TrimSpace(r.Email)
	r.Address = strings.TrimSpace(r.Address)
}

// ProfileUpdate campos a fusionar en el perfil actual; nil = no modificar.
type ProfileUpdate struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
}

// IsEmpty indica que no hay ningún campo que fusionar.
func (p ProfileUpdate) IsEmpty() bool {
	return p.Name == nil && p.Phone == nil && p.Email == nil && p.Address == nil
}

// Profile vista validable del perfil resultante de una fusión.
type Profile struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required_without=Email"`
	Email string `json:"email" validate:"omitempty,email"`
}
