package handlers

import (
	"encoding/json"
	"net/http"

	"edpulse/internal/infra"
)

// App carries shared handler dependencies.
type App struct {
	SQL    infra.SQLExecutor
	Logger infra.Logger
}

// NewApp constructs the handler container.
func NewApp(sql infra.SQLExecutor, logger infra.Logger) *App {
	return &App{SQL: sql, Logger: logger}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
}
