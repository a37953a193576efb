package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidToken       = errors.New("token inválido o expirado")
	ErrLockedOut          = errors.New("cuenta bloqueada temporalmente")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrUploadFailed       = errors.New("fallo al subir el archivo")
	ErrRemoteUnavailable  = errors.New("almacén de datos no disponible")
)
