package handler

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"notion-chart-api/pkg/utils"
)

const authCookieName = "dashboard_auth"

// Login authenticates the dashboard
// @Summary Log in
// @Description Exchange the shared secret for a session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body object true "Login payload"
// @Success 200 {object} map[string]interface{} "Logged in"
// @Failure 400 {object} map[string]interface{} "Invalid request payload"
// @Failure 401 {object} map[string]interface{} "Wrong secret"
// @Router /auth/login [post]
func Login(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Secret string `json:"secret"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Secret == "" {
		utils.WriteError(w, http.StatusBadRequest, "Secret is required")
		return
	}

	if subtle.ConstantTimeCompare([]byte(payload.Secret), []byte(apiSecret)) != 1 {
		log.WithField("remote", r.RemoteAddr).Warn("failed login attempt")
		utils.WriteError(w, http.StatusUnauthorized, "Invalid secret")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    apiSecret,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   60 * 60 * 24 * 7,
	})
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"message": "Logged in"})
}

// Logout clears the session cookie
// @Summary Log out
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{} "Logged out"
// @Router /auth/logout [post]
func Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"message": "Logged out"})
}

// CheckAuth reports whether the request carries valid credentials
// @Summary Check session
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{} "Session state"
// @Router /auth/check [get]
func CheckAuth(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"authenticated": authorized(r)})
}
