package respond

import (
	"encoding/json"
	"net/http"
)

func JSON(w http.ResponseWriter, r *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

// Error writes {"detail": message}.
func Error(w http.ResponseWriter, r *http.Request, code int, message string) {
	Detail(w, r, code, message)
}

// Detail writes {"detail": detail}; detail is either a message or a list of
// field errors.
func Detail(w http.ResponseWriter, r *http.Request, code int, detail interface{}) {
	JSON(w, r, code, map[string]interface{}{"detail": detail})
}

// Message writes {"message": message}.
func Message(w http.ResponseWriter, r *http.Request, code int, message string) {
	JSON(w, r, code, map[string]string{"message": message})
}
