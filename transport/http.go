package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	authapp "github.com/Anukhusdevlopers/scrap-pickup-backend/application/auth"
	pickupapp "github.com/Anukhusdevlopers/scrap-pickup-backend/application/pickup"
	scrapapp "github.com/Anukhusdevlopers/scrap-pickup-backend/application/scrap"
	"github.com/Anukhusdevlopers/scrap-pickup-backend/cmd/config"
)

type RestHandler struct {
	Config    *config.Config
	AuthApp   authapp.AuthApp
	PickupApp pickupapp.PickupApp
	ScrapApp  scrapapp.ScrapApp
}

func NewTransport(cfg *config.Config, AuthApp authapp.AuthApp, PickupApp pickupapp.PickupApp, ScrapApp scrapapp.ScrapApp) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		Config:    cfg,
		AuthApp:   AuthApp,
		PickupApp: PickupApp,
		ScrapApp:  ScrapApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	mux.HandleFunc("/login/api", rh.Login).Methods(http.MethodPost)
	mux.HandleFunc("/send-message/api", rh.SendOTP).Methods(http.MethodPost)
	mux.HandleFunc("/verify-otp/api", rh.VerifyOTP).Methods(http.MethodPost)
	mux.HandleFunc("/resend-otp/api", rh.ResendOTP).Methods(http.MethodPost)
	mux.HandleFunc("/scraplist", rh.AddScrapList).Methods(http.MethodPost)
	mux.HandleFunc("/scraplist", rh.GetScrapList).Methods(http.MethodGet)

	// Protected routes
	mux.HandleFunc("/user-profile", rh.GetProfile).Methods(http.MethodGet)
	mux.HandleFunc("/edit-profile/api", rh.EditProfile).Methods(http.MethodPut)
	mux.HandleFunc("/update-address", rh.UpdateAddress).Methods(http.MethodPut)
	mux.HandleFunc("/create-request/api", rh.CreatePickup).Methods(http.MethodPost)
	mux.HandleFunc("/requests/{id}", rh.ListPickupsByOwner).Methods(http.MethodGet)
	mux.HandleFunc("/request/{requestId}", rh.GetPickupByRequestID).Methods(http.MethodGet)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(AuthApp))

	return mux
}
