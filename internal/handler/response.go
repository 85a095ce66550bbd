package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/forgo/camp/internal/model"
)

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// WriteError writes an error body such as {"error": "Camper not found"}
func WriteError(w http.ResponseWriter, err *model.APIError) {
	WriteJSON(w, err.Status, err)
}

// DecodeJSON decodes a JSON request body into the given value. Unknown
// fields are ignored; callers that need an allow-list decode into a map.
func DecodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// WriteNoContent writes a 204 No Content response
func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// pathID parses an integer path value. ok is false for anything that is not
// a base-10 int64.
func pathID(r *http.Request, name string) (id int64, ok bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
