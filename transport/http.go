package transport

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	authapp "github.com/muhammadheryan/contacts-api/application/auth"
	avatarapp "github.com/muhammadheryan/contacts-api/application/avatar"
	contactapp "github.com/muhammadheryan/contacts-api/application/contact"
	"github.com/muhammadheryan/contacts-api/cmd/config"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	Config     *config.Config
	AuthApp    authapp.AuthApp
	ContactApp contactapp.ContactApp
	AvatarApp  avatarapp.AvatarApp
}

func NewTransport(cfg *config.Config, authApp authapp.AuthApp, contactApp contactapp.ContactApp, avatarApp avatarapp.AvatarApp) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		Config:     cfg,
		AuthApp:    authApp,
		ContactApp: contactApp,
		AvatarApp:  avatarApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Static avatar files
	mux.PathPrefix("/avatars/").Handler(
		http.StripPrefix("/avatars/", http.FileServer(http.Dir(cfg.Avatar.Dir))))

	// Auth routes
	mux.HandleFunc("/api/users", rh.Register).Methods(http.MethodPost)
	mux.HandleFunc("/api/users/login", rh.Login).Methods(http.MethodPost)
	mux.HandleFunc("/api/users/verify/{verificationToken}", rh.VerifyEmail).Methods(http.MethodGet)
	mux.HandleFunc("/users/verify", rh.ResendVerification).Methods(http.MethodPost)

	// Avatar routes
	mux.HandleFunc("/api/avatars", rh.UploadAvatar).Methods(http.MethodPost)
	mux.HandleFunc("/api/users/avatars", rh.UpdateUserAvatar).Methods(http.MethodPatch)

	// Contact routes
	mux.HandleFunc("/api/contacts", rh.ListContacts).Methods(http.MethodGet)
	mux.HandleFunc("/api/contacts", rh.CreateContact).Methods(http.MethodPost)
	mux.HandleFunc("/api/contacts/{id}", rh.GetContact).Methods(http.MethodGet)
	mux.HandleFunc("/api/contacts/{id}", rh.UpdateContact).Methods(http.MethodPut)
	mux.HandleFunc("/api/contacts/{id}", rh.DeleteContact).Methods(http.MethodDelete)
	mux.HandleFunc("/api/contacts/{id}/favorite", rh.UpdateFavorite).Methods(http.MethodPatch)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(authApp))

	return handlers.CORS(
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete}),
		handlers.AllowedOrigins([]string{"*"}),
	)(mux)
}
