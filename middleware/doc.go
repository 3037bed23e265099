// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs one line per request with request_id, method, path, status and
duration_ms. The request id is taken from X-Request-ID when the client sends
one, otherwise a new UUID, and is echoed in the response header.

# Admin Key

	mux.HandleFunc("POST /admin/questions",
		middleware.WithLogging(middleware.RequireAdminKey(cfg.AdminKey, h.CreateQuestion)))

Responds 401 with a JSON error when X-Admin-Key doesn't match.

# CORS Middleware

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows GET, POST, OPTIONS with headers Content-Type and X-Admin-Key.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

	var req models.CreateQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

	ip := middleware.GetClientIP(r)

Uses the first X-Forwarded-For hop, then X-Real-IP, then RemoteAddr without
its port. Only the salted hash of this value is ever logged for votes.
*/
package middleware
