package server

import (
	"encoding/json"
	"net/http"

	"github.com/Daskott/clientdir/models"
	"github.com/gorilla/mux"
)

type ResponsePayload struct {
	Errors  []string    `json:"errors"`
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}

// CreateClientRequest fields must be present but may be empty, like the CLI flags
type CreateClientRequest struct {
	FirstName *string  `json:"first_name"`
	LastName  *string  `json:"last_name"`
	Email     *string  `json:"email"`
	Phones    []string `json:"phones"`
}

func (data CreateClientRequest) missingFields() []string {
	return missingFields(map[string]*string{
		"first_name": data.FirstName,
		"last_name":  data.LastName,
		"email":      data.Email,
	})
}

type AddPhoneRequest struct {
	Phone *string `json:"phone"`
}

func (srv *Server) createClient(rw http.ResponseWriter, r *http.Request) {
	data := CreateClientRequest{}

	err := json.NewDecoder(r.Body).Decode(&data)
	if err != nil {
		writeResponse(rw, ResponsePayload{Errors: []string{err.Error()}}, http.StatusBadRequest)
		return
	}

	if missing := data.missingFields(); len(missing) > 0 {
		writeResponse(rw, ResponsePayload{Errors: missing}, http.StatusBadRequest)
		return
	}

	id, err := srv.store.AddPerson(r.Context(), *data.FirstName, *data.LastName, *data.Email, data.Phones...)
	if err != nil {
		writeResponse(rw, ResponsePayload{Errors: []string{err.Error()}}, statusForError(err))
		return
	}

	writeResponse(rw, ResponsePayload{Success: true, Data: map[string]uint{"id": id}}, http.StatusCreated)
}

func (srv *Server) findClients(rw http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	criteria := models.FindCriteria{
		FirstName: queryParam(query, "first_name"),
		LastName:  queryParam(query, "last_name"),
		Email:     queryParam(query, "email"),
		Phone:     queryParam(query, "phone"),
	}

	matches, err := srv.store.FindPerson(r.Context(), criteria)
	if err != nil {
		writeResponse(rw, ResponsePayload{Errors: []string{err.Error()}}, statusForError(err))
		return
	}

	writeResponse(rw, ResponsePayload{Success: true, Data: matches}, http.StatusOK)
}

func (srv *Server) updateClient(rw http.ResponseWriter, r *http.Request) {
	id, err := personID(mux.Vars(r))
	if err != nil {
		writeResponse(rw, ResponsePayload{Errors: []string{err.Error()}}, http.StatusBadRequest)
		return
	}

	changes := models.PersonChanges{}
	err = json.NewDecoder(r.Body).Decode(&changes)
	if err != nil {
		writeResponse(rw, ResponsePayload{Errors: []string{err.Error()}}, http.StatusBadRequest)
		return
	}

	if changes == (models.PersonChanges{}) {
		writeResponse(rw, ResponsePayload{Errors: []string{"valid fields required"}}, http.StatusBadRequest)
		return
	}

	err = srv.store.UpdatePerson(r.Context(), id, changes)
	if err != nil {
		writeResponse(rw, ResponsePayload{Errors: []string{err.Error()}}, statusForError(err))
		return
	}

	writeResponse(rw, ResponsePayload{Success: true}, http.StatusOK)
}

func (srv *Server) deleteClient(rw http.ResponseWriter, r *http.Request) {
	id, err := personID(mux.Vars(r))
	if err != nil {
		writeResponse(rw, ResponsePayload{Errors: []string{err.Error()}}, http.StatusBadRequest)
		return
	}

	err = srv.store.DeletePerson(r.Context(), id)
	if err != nil {
		writeResponse(rw, ResponsePayload{Errors: []string{err.Error()}}, statusForError(err))
		return
	}

	writeResponse(rw, ResponsePayload{Success: true}, http.StatusOK)
}

func (srv *Server) addPhone(rw http.ResponseWriter, r *http.Request) {
	id, err := personID(mux.Vars(r))
	if err != nil {
		writeResponse(rw, ResponsePayload{Errors: []string{err.Error()}}, http.StatusBadRequest)
		return
	}

	data := AddPhoneRequest{}
	err = json.NewDecoder(r.Body).Decode(&data)
	if err != nil {
		writeResponse(rw, ResponsePayload{Errors: []string{err.Error()}}, http.StatusBadRequest)
		return
	}

	if missing := missingFields(map[string]*string{"phone": data.Phone}); len(missing) > 0 {
		writeResponse(rw, ResponsePayload{Errors: missing}, http.StatusBadRequest)
		return
	}

	err = srv.store.AddPhone(r.Context(), id, *data.Phone)
	if err != nil {
		writeResponse(rw, ResponsePayload{Errors: []string{err.Error()}}, statusForError(err))
		return
	}

	writeResponse(rw, ResponsePayload{Success: true}, http.StatusCreated)
}

func (srv *Server) deletePhone(rw http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := personID(vars)
	if err != nil {
		writeResponse(rw, ResponsePayload{Errors: []string{err.Error()}}, http.StatusBadRequest)
		return
	}

	err = srv.store.DeletePhone(r.Context(), id, vars["phone"])
	if err != nil {
		writeResponse(rw, ResponsePayload{Errors: []string{err.Error()}}, statusForError(err))
		return
	}

	writeResponse(rw, ResponsePayload{Success: true}, http.StatusOK)
}
