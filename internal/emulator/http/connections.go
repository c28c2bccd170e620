package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/workos/internal/emulator/service"
	"github.com/aussiebroadwan/workos/pkg/httpx"
	"github.com/aussiebroadwan/workos/pkg/slogx"
	"github.com/aussiebroadwan/workos/pkg/workos"
)

type ConnectionsHandler struct {
	ConnectionService *service.ConnectionService
}

// HandleGet godoc
//
//	@Summary		Get a connection
//	@Tags			Connections
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string				true	"Connection identifier"
//	@Success		200	{object}	workos.Connection	"The connection"
//	@Failure		401	{object}	httpx.APIError		"code, message"
//	@Failure		404	{object}	httpx.APIError		"code, message"
//	@Router			/connections/{id} [get].
func (h *ConnectionsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	conn, err := h.ConnectionService.GetConnection(ctx, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrConnectionNotFound) {
			httpx.WriteAPIError(w, http.StatusNotFound, "entity_not_found", "Could not find a connection with that ID.")
			return
		}
		slogx.FromContext(ctx).Error("get connection failed", "err", err)
		httpx.WriteAPIError(w, http.StatusInternalServerError, "server_error", "An unexpected error occurred.")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toConnectionResponse(conn))
}

// HandleList godoc
//
//	@Summary		List connections
//	@Tags			Connections
//	@Produce		json
//	@Security		BearerAuth
//	@Param			organization_id	query		string			false	"Only connections of this organization"
//	@Param			connection_type	query		string			false	"Only connections of this type"
//	@Success		200				{object}	ConnectionList	"All matching connections"
//	@Failure		401				{object}	httpx.APIError	"code, message"
//	@Router			/connections [get].
func (h *ConnectionsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	conns, err := h.ConnectionService.ListConnections(ctx, q.Get("organization_id"), q.Get("connection_type"))
	if err != nil {
		slogx.FromContext(ctx).Error("list connections failed", "err", err)
		httpx.WriteAPIError(w, http.StatusInternalServerError, "server_error", "An unexpected error occurred.")
		return
	}

	data := make([]workos.Connection, len(conns))
	for i, c := range conns {
		data[i] = toConnectionResponse(c)
	}
	httpx.WriteJSON(w, http.StatusOK, ConnectionList{Object: "list", Data: data})
}
