package router

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	auth "lane_wars/internal/auth/controller"
	minion "lane_wars/internal/minion/controller"
	"lane_wars/internal/service/config"
	"lane_wars/internal/service/middleware"
	wave "lane_wars/internal/wave/controller"
)

func SetUpRoutes(
	cfg *config.Config,
	authHandler *auth.AuthHandler,
	minionHandler *minion.MinionHandler,
	waveHandler *wave.WaveHandler,
	jwtToken middleware.JwtTokenService,
) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/health", health).Methods("GET")
	router.HandleFunc("/auth/registrar", authHandler.RegisterUser).Methods("POST") // Register user
	router.HandleFunc("/auth/login", authHandler.LoginUser).Methods("POST")        // Login, returns a JWT

	minions := router.PathPrefix("/minions").Subrouter()
	minions.HandleFunc("", minionHandler.CreateMinion).Methods("POST")
	minions.HandleFunc("", minionHandler.ListMinions).Methods("GET")
	minions.HandleFunc("/{id}", minionHandler.GetMinion).Methods("GET")
	minions.HandleFunc("/{id}", minionHandler.UpdateMinion).Methods("PUT")
	minions.HandleFunc("/{id}", minionHandler.DeleteMinion).Methods("DELETE")

	waves := router.PathPrefix("/waves").Subrouter()
	waves.HandleFunc("", waveHandler.CreateWave).Methods("POST")
	waves.HandleFunc("", waveHandler.ListWaves).Methods("GET")
	waves.HandleFunc("/{id}", waveHandler.GetWave).Methods("GET")
	waves.HandleFunc("/{id}", waveHandler.UpdateWave).Methods("PUT")
	waves.HandleFunc("/{id}", waveHandler.DeleteWave).Methods("DELETE")
	waves.HandleFunc("/{id}/simular", waveHandler.SimulateWave).Methods("POST") // Run the simulation
	waves.HandleFunc("/{id}/simulacao", waveHandler.LastResult).Methods("GET")  // Last cached result

	if cfg.RequireAuth {
		requireToken := middleware.AuthMiddleware(jwtToken)
		minions.Use(requireToken)
		waves.Use(requireToken)
	}
	return router
}

func health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
