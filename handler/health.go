package handler

import "net/http"

const version = "1.0.0"

func (h *Handler) healthcheckHandler(w http.ResponseWriter, r *http.Request) {
	env := envelope{
		"status": "available",
		"system_info": map[string]string{
			"environment": h.config.Server.Env,
			"version":     version,
		},
	}
	err := h.encodeJSON(w, http.StatusOK, env, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
