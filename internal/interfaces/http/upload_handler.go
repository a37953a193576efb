package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/soulsisters/joyeria-api/internal/application/dto"
)

// ImageStore contrato mínimo del colaborador de archivos; lo implementa
// *storage.ImageStorage. La interfaz permite testear el handler sin S3.
type ImageStore interface {
	IssueUpload(ctx context.Context, filename string) (uploadURL, key string, err error)
	ResolveURL(ctx context.Context, key string) (string, error)
}

// UploadHandler emite destinos de subida y resuelve referencias de imagen.
type UploadHandler struct {
	storage   ImageStore
	expirySec int
}

// NewUploadHandler construye el handler.
func NewUploadHandler(storage ImageStore, expirySec int) *UploadHandler {
	return &UploadHandler{storage: storage, expirySec: expirySec}
}

// IssueUpload godoc
// @Summary      Emitir destino de subida para una imagen de producto
// @Tags         uploads
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UploadRequest  true  "Nombre del archivo"
// @Success      200   {object}  dto.UploadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/uploads [post]
func (h *UploadHandler) IssueUpload(c *fiber.Ctx) error {
	var in dto.UploadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "filename es requerido"})
	}
	uploadURL, key, err := h.storage.IssueUpload(c.Context(), in.Filename)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UPLOAD_FAILED", Message: "no se pudo emitir el destino de subida"})
	}
	return c.JSON(dto.UploadResponse{UploadURL: uploadURL, Key: key, ExpiresIn: h.expirySec})
}

// ResolveURL godoc
// @Summary      Resolver una referencia de imagen a una URL descargable
// @Tags         uploads
// @Security     Bearer
// @Produce      json
// @Param        key  query  string  true  "Referencia (key) de la imagen"
// @Success      200  {object}  dto.ImageURLResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/uploads/url [get]
func (h *UploadHandler) ResolveURL(c *fiber.Ctx) error {
	key := c.Query("key")
	if key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_KEY", Message: "key es requerido"})
	}
	url, err := h.storage.ResolveURL(c.Context(), key)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UPLOAD_FAILED", Message: "no se pudo resolver la imagen"})
	}
	return c.JSON(dto.ImageURLResponse{URL: url})
}
