package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"

	"github.com/Daskott/clientdir/models"
)

// ---------------------------------------------------------------------------------//
// Handler Helper functions
// --------------------------------------------------------------------------------//

func writeResponse(rw http.ResponseWriter, payLoad ResponsePayload, statusCode int) {
	if statusCode >= http.StatusInternalServerError {
		logg.Error(payLoad.Errors)
	} else if statusCode >= http.StatusBadRequest {
		logg.Info(payLoad.Errors)
	}

	rw.WriteHeader(statusCode)
	json.NewEncoder(rw).Encode(payLoad)
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrMalformedInput):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrUniqueViolation):
		return http.StatusConflict
	case errors.Is(err, models.ErrReferentialViolation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, models.ErrConnectivity):
		return http.StatusServiceUnavailable
	}

	return http.StatusInternalServerError
}

func personID(vars map[string]string) (uint, error) {
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid client id '%v'", vars["id"])
	}

	return uint(id), nil
}

// queryParam returns nil when key is absent from the query, so only params
// present in the request act as criteria
func queryParam(query url.Values, key string) *string {
	if _, ok := query[key]; !ok {
		return nil
	}

	value := query.Get(key)
	return &value
}

// missingFields lists the json fields absent from a request body. Empty values are present
func missingFields(fields map[string]*string) []string {
	missing := []string{}
	for name, value := range fields {
		if value == nil {
			missing = append(missing, fmt.Sprintf("%v is required", name))
		}
	}
	sort.Strings(missing)

	return missing
}
