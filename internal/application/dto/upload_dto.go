package dto

// UploadRequest solicita un destino de subida para una imagen de producto.
type UploadRequest struct {
	Filename string `json:"filename" validate:"required,min=1,max=255"`
}

// UploadResponse URL prefirmada de subida (vigencia corta) y la referencia
// estable (key) que se guarda en el campo image del producto.
type UploadResponse struct {
	UploadURL string `json:"uploadUrl"`
	Key       string `json:"key"`
	ExpiresIn int    `json:"expiresIn"` // segundos
}

// ImageURLResponse URL de descarga resuelta desde una referencia.
type ImageURLResponse struct {
	URL string `json:"url"`
}
