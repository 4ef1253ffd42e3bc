package adaptor

import (
	"encoding/json"
	"net/http"

	"usuarios-admin/internal/dto/request"
	"usuarios-admin/internal/usecase"
	"usuarios-admin/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UsuarioHandler struct {
	service usecase.UsuarioService
	log     *zap.Logger
}

func NewUsuarioHandler(service usecase.UsuarioService, log *zap.Logger) *UsuarioHandler {
	return &UsuarioHandler{
		service: service,
		log:     log,
	}
}

// List handles GET /usuarios
func (h *UsuarioHandler) List(w http.ResponseWriter, r *http.Request) {
	usuarios, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list usuarios")
		return
	}

	utils.ResponseSuccess(w, usuarios)
}

// Get handles GET /usuarios/{id}
func (h *UsuarioHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	usuario, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleServiceError(h.log, w, err, "get usuario")
		return
	}

	utils.ResponseSuccess(w, usuario)
}

// Create handles POST /usuarios
func (h *UsuarioHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.UsuarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, utils.MsgInvalidBody, nil)
		return
	}

	usuario, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create usuario")
		return
	}

	utils.ResponseCreated(w, usuario)
}

// Update handles PUT /usuarios/{id}
func (h *UsuarioHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req request.UsuarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, utils.MsgInvalidBody, nil)
		return
	}

	usuario, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update usuario")
		return
	}

	utils.ResponseSuccess(w, usuario)
}

// Patch handles PATCH /usuarios/{id}
func (h *UsuarioHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req request.UsuarioPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, utils.MsgInvalidBody, nil)
		return
	}

	usuario, err := h.service.Patch(r.Context(), id, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "patch usuario")
		return
	}

	utils.ResponseSuccess(w, usuario)
}

// Delete handles DELETE /usuarios/{id}
func (h *UsuarioHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleServiceError(h.log, w, err, "delete usuario")
		return
	}

	utils.ResponseNoContent(w)
}

// pathID reads {id}. An id that is not a positive integer cannot exist, so
// it is answered with 404.
func (h *UsuarioHandler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, ok := utils.ParseID(raw)
	if !ok {
		h.log.Warn("Invalid usuario ID", zap.String("id", raw))
		utils.ResponseNotFound(w, utils.MsgNotFound)
		return 0, false
	}
	return id, true
}
