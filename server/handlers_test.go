package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Daskott/clientdir/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testResponse struct {
	Errors  []string        `json:"errors"`
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

func newTestServer(t *testing.T) (*Server, *models.Store) {
	t.Helper()

	store, err := models.InitializeTestStore(t.TempDir())
	require.Nil(t, err, "Should open test store")
	t.Cleanup(func() { store.Close() })

	return NewServer(store), store
}

func doRequest(t *testing.T, srv *Server, method, path string, body interface{}) (*httptest.ResponseRecorder, testResponse) {
	t.Helper()

	var reqBody bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			reqBody.WriteString(b)
		default:
			require.Nil(t, json.NewEncoder(&reqBody).Encode(body))
		}
	}

	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, httptest.NewRequest(method, path, &reqBody))

	resp := testResponse{}
	if rr.Header().Get("Content-Type") == "application/json" {
		require.Nil(t, json.Unmarshal(rr.Body.Bytes(), &resp), "body: %v", rr.Body.String())
	}

	return rr, resp
}

func TestCreateClient(t *testing.T) {
	srv, store := newTestServer(t)

	cases := []struct {
		description    string
		body           interface{}
		expectedStatus int
	}{
		{
			description:    "Should create client with phones",
			body:           `{"first_name": "tony", "last_name": "stark", "email": "stark@avengers.com", "phones": ["1234567890"]}`,
			expectedStatus: http.StatusCreated,
		},
		{
			description:    "Should NOT create client with duplicate email",
			body:           `{"first_name": "howard", "last_name": "stark", "email": "stark@avengers.com"}`,
			expectedStatus: http.StatusConflict,
		},
		{
			description:    "Should create client with empty names & email",
			body:           `{"first_name": "", "last_name": "", "email": ""}`,
			expectedStatus: http.StatusCreated,
		},
		{
			description:    "Should NOT create client without email",
			body:           `{"first_name": "spider", "last_name": "man"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			description:    "Should NOT create client with null first name",
			body:           `{"first_name": null, "last_name": "man", "email": "web@avengers.com"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			description:    "Should NOT create client with phone that is too long",
			body:           `{"first_name": "spider", "last_name": "man", "email": "web@avengers.com", "phones": ["1234567890123"]}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			description:    "Should NOT create client with invalid json",
			body:           "{first_name",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			rr, resp := doRequest(t, srv, "POST", "/clients", c.body)
			assert.Equal(t, c.expectedStatus, rr.Code, "errors: %v", resp.Errors)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		})
	}

	matches, err := store.FindPerson(context.Background(), models.FindCriteria{})
	require.Nil(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "1234567890", *matches[0].Phone)
	assert.Equal(t, "", matches[1].Email)
	assert.Nil(t, matches[1].Phone)
}

func TestCreateClientListsMissingFields(t *testing.T) {
	srv, _ := newTestServer(t)

	rr, resp := doRequest(t, srv, "POST", "/clients", `{"email": "web@avengers.com"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, []string{"first_name is required", "last_name is required"}, resp.Errors)
}

func TestFindClients(t *testing.T) {
	srv, store := newTestServer(t)
	ctx := context.Background()

	tonyID, err := store.AddPerson(ctx, "tony", "stark", "stark@avengers.com", "1234567890", "0987654321")
	require.Nil(t, err)
	_, err = store.AddPerson(ctx, "spider", "man", "web@avengers.com")
	require.Nil(t, err)

	rr, resp := doRequest(t, srv, "GET", "/clients", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	matches := []models.Match{}
	require.Nil(t, json.Unmarshal(resp.Data, &matches))
	assert.Len(t, matches, 3)

	rr, resp = doRequest(t, srv, "GET", "/clients?first_name=tony&phone=0987654321", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	matches = []models.Match{}
	require.Nil(t, json.Unmarshal(resp.Data, &matches))
	require.Len(t, matches, 1)
	assert.Equal(t, tonyID, matches[0].PersonID)
	assert.Equal(t, "0987654321", *matches[0].Phone)

	rr, resp = doRequest(t, srv, "GET", "/clients?email=web@avengers.com", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	matches = []models.Match{}
	require.Nil(t, json.Unmarshal(resp.Data, &matches))
	require.Len(t, matches, 1)
	assert.Nil(t, matches[0].Phone)
}

func TestUpdateClient(t *testing.T) {
	srv, store := newTestServer(t)
	ctx := context.Background()

	id, err := store.AddPerson(ctx, "tony", "stark", "stark@avengers.com", "1234567890")
	require.Nil(t, err)
	_, err = store.AddPerson(ctx, "spider", "man", "web@avengers.com")
	require.Nil(t, err)

	path := fmt.Sprintf("/clients/%v", id)

	rr, resp := doRequest(t, srv, "PATCH", path, `{"first_name": "anthony", "phones": []}`)
	require.Equal(t, http.StatusOK, rr.Code, "errors: %v", resp.Errors)

	matches, err := store.FindPerson(ctx, models.FindCriteria{Email: models.StringPtr("stark@avengers.com")})
	require.Nil(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "anthony", matches[0].FirstName)
	assert.Nil(t, matches[0].Phone)

	rr, _ = doRequest(t, srv, "PATCH", path, `{"email": "web@avengers.com"}`)
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr, _ = doRequest(t, srv, "PATCH", path, `{"unknown": "field"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr, _ = doRequest(t, srv, "PATCH", "/clients/abc", `{"first_name": "tony"}`)
	assert.Equal(t, http.StatusNotFound, rr.Code, "Should not match route with non numeric id")
}

func TestClientPhones(t *testing.T) {
	srv, store := newTestServer(t)
	ctx := context.Background()

	id, err := store.AddPerson(ctx, "tony", "stark", "stark@avengers.com", "1234567890")
	require.Nil(t, err)

	rr, resp := doRequest(t, srv, "POST", fmt.Sprintf("/clients/%v/phones", id), `{"phone": "0987654321"}`)
	require.Equal(t, http.StatusCreated, rr.Code, "errors: %v", resp.Errors)

	rr, _ = doRequest(t, srv, "POST", fmt.Sprintf("/clients/%v/phones", id), `{"phone": "0987654321"}`)
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr, _ = doRequest(t, srv, "POST", fmt.Sprintf("/clients/%v/phones", id+100), `{"phone": "5555555555"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	rr, _ = doRequest(t, srv, "POST", fmt.Sprintf("/clients/%v/phones", id), `{}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr, _ = doRequest(t, srv, "DELETE", fmt.Sprintf("/clients/%v/phones/1234567890", id), nil)
	require.Equal(t, http.StatusOK, rr.Code)

	matches, err := store.FindPerson(ctx, models.FindCriteria{})
	require.Nil(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "0987654321", *matches[0].Phone)
}

func TestDeleteClient(t *testing.T) {
	srv, store := newTestServer(t)
	ctx := context.Background()

	id, err := store.AddPerson(ctx, "tony", "stark", "stark@avengers.com", "1234567890")
	require.Nil(t, err)

	rr, _ := doRequest(t, srv, "DELETE", fmt.Sprintf("/clients/%v", id), nil)
	require.Equal(t, http.StatusOK, rr.Code)

	matches, err := store.FindPerson(ctx, models.FindCriteria{})
	require.Nil(t, err)
	assert.Empty(t, matches)

	// Deleting a client that doesn't exist is a no-op
	rr, _ = doRequest(t, srv, "DELETE", fmt.Sprintf("/clients/%v", id), nil)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestStatusForError(t *testing.T) {
	cases := []struct {
		err            error
		expectedStatus int
	}{
		{&models.Error{Kind: models.ErrMalformedInput, Err: errors.New("too long")}, http.StatusBadRequest},
		{&models.Error{Kind: models.ErrUniqueViolation, Err: errors.New("duplicate")}, http.StatusConflict},
		{&models.Error{Kind: models.ErrReferentialViolation, Err: errors.New("missing")}, http.StatusUnprocessableEntity},
		{&models.Error{Kind: models.ErrConnectivity, Err: errors.New("down")}, http.StatusServiceUnavailable},
		{errors.New("unknown"), http.StatusInternalServerError},
	}

	for _, c := range cases {
		assert.Equal(t, c.expectedStatus, statusForError(c.err), "error: %v", c.err)
	}
}
