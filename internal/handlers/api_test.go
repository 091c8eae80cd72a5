package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planttracker/internal/handlers"
	"planttracker/internal/logger"
	"planttracker/internal/models"
	"planttracker/internal/routes"
	"planttracker/internal/services"
)

func TestMain(m *testing.M) {
	logger.Init()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// Minimal in-memory stores backing the full router.

type memPlantStore struct {
	nextID int
	rows   map[int]models.Plant
}

func (s *memPlantStore) Insert(p *models.Plant) error {
	s.nextID++
	p.PlantID = s.nextID
	s.rows[p.PlantID] = *p
	return nil
}

func (s *memPlantStore) Update(p *models.Plant) (int64, error) {
	if _, ok := s.rows[p.PlantID]; !ok {
		return 0, nil
	}
	s.rows[p.PlantID] = *p
	return 1, nil
}

func (s *memPlantStore) Delete(id int) (int64, error) {
	if _, ok := s.rows[id]; !ok {
		return 0, nil
	}
	delete(s.rows, id)
	return 1, nil
}

func (s *memPlantStore) FindByID(id int) (*models.Plant, error) {
	p, ok := s.rows[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (s *memPlantStore) FindAll() ([]models.Plant, error) {
	var out []models.Plant
	for _, p := range s.rows {
		out = append(out, p)
	}
	return out, nil
}

type memCareStore struct {
	rows map[int]models.Care
}

func (s *memCareStore) Upsert(c *models.Care) error {
	s.rows[c.PlantID] = *c
	return nil
}

func (s *memCareStore) DeleteByPlantID(id int) (int64, error) {
	if _, ok := s.rows[id]; !ok {
		return 0, nil
	}
	delete(s.rows, id)
	return 1, nil
}

func (s *memCareStore) FindByPlantID(id int) (*models.Care, error) {
	c, ok := s.rows[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (s *memCareStore) FindAll() ([]models.Care, error) { return nil, nil }

type memInformationStore struct {
	rows map[int]models.Information
}

func (s *memInformationStore) Upsert(i *models.Information) error {
	s.rows[i.PlantID] = *i
	return nil
}

func (s *memInformationStore) DeleteByPlantID(id int) (int64, error) {
	if _, ok := s.rows[id]; !ok {
		return 0, nil
	}
	delete(s.rows, id)
	return 1, nil
}

func (s *memInformationStore) FindByPlantID(id int) (*models.Information, error) {
	i, ok := s.rows[id]
	if !ok {
		return nil, nil
	}
	return &i, nil
}

func (s *memInformationStore) FindAll() ([]models.Information, error) { return nil, nil }

type memLocationKey struct {
	id   int
	name string
}

type memLocationStore struct {
	rows map[memLocationKey]models.Location
}

func (s *memLocationStore) Upsert(l *models.Location) error {
	s.rows[memLocationKey{l.PlantID, l.LocationName}] = *l
	return nil
}

func (s *memLocationStore) Delete(id int, name string) (int64, error) {
	key := memLocationKey{id, name}
	if _, ok := s.rows[key]; !ok {
		return 0, nil
	}
	delete(s.rows, key)
	return 1, nil
}

func (s *memLocationStore) DeleteByPlantID(id int) (int64, error) {
	var n int64
	for key := range s.rows {
		if key.id == id {
			delete(s.rows, key)
			n++
		}
	}
	return n, nil
}

func (s *memLocationStore) FindByPlantIDAndName(id int, name string) (*models.Location, error) {
	l, ok := s.rows[memLocationKey{id, name}]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (s *memLocationStore) FindByPlantID(id int) ([]models.Location, error) {
	var out []models.Location
	for key, l := range s.rows {
		if key.id == id {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *memLocationStore) FindAll() ([]models.Location, error) { return nil, nil }

func newTestRouter() *gin.Engine {
	plants := &memPlantStore{rows: make(map[int]models.Plant)}
	care := &memCareStore{rows: make(map[int]models.Care)}
	information := &memInformationStore{rows: make(map[int]models.Information)}
	locations := &memLocationStore{rows: make(map[memLocationKey]models.Location)}

	plantService := services.NewPlantService(plants, care, information, locations)
	careService := services.NewCareService(care)
	informationService := services.NewInformationService(information)
	locationService := services.NewLocationService(locations)

	router := gin.New()
	routes.RegisterRoutes(router,
		handlers.NewPlantHandler(plantService),
		handlers.NewCareHandler(careService),
		handlers.NewInformationHandler(informationService),
		handlers.NewLocationHandler(locationService),
	)
	return router
}

type envelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.NoError(t, json.Unmarshal(env.Data, out))
}

func TestAPI_PlantLifecycle(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/plants",
		models.Plant{Name: "Fern", Type: "Foliage", LocationName: "Desk"})
	require.Equal(t, http.StatusOK, rec.Code)

	var created models.Plant
	decodeData(t, rec, &created)
	assert.Equal(t, 1, created.PlantID)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/plants/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched models.Plant
	decodeData(t, rec, &fetched)
	assert.Equal(t, "Fern", fetched.Name)

	// PUT forces the path id over the body id.
	rec = doJSON(t, router, http.MethodPut, "/api/v1/plants/1",
		models.Plant{PlantID: 99, Name: "Boston Fern", Type: "Foliage", LocationName: "Desk"})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.Plant
	decodeData(t, rec, &updated)
	assert.Equal(t, 1, updated.PlantID)
	assert.Equal(t, "Boston Fern", updated.Name)

	rec = doJSON(t, router, http.MethodDelete, "/api/v1/plants/1", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/plants/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPI_GetMissingPlantReturns404(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodGet, "/api/v1/plants/42", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPI_InvalidPlantIDReturns400(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodGet, "/api/v1/plants/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_DeleteIsIdempotent(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodDelete, "/api/v1/plants/42", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAPI_CareUpsertAndFetch(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/plants",
		models.Plant{Name: "Fern", Type: "Foliage"})
	require.Equal(t, http.StatusOK, rec.Code)

	watering := models.NewDate(2024, 2, 1)
	rec = doJSON(t, router, http.MethodPut, "/api/v1/plants/1/care",
		models.Care{LastWatering: &watering})
	require.Equal(t, http.StatusOK, rec.Code)

	var care models.Care
	decodeData(t, rec, &care)
	assert.Equal(t, 1, care.PlantID)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/plants/1/care", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeData(t, rec, &care)
	require.NotNil(t, care.LastWatering)
	assert.Equal(t, "2024-02-01", care.LastWatering.String())

	rec = doJSON(t, router, http.MethodGet, "/api/v1/plants/2/care", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPI_LocationsKeyedByName(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/plants",
		models.Plant{Name: "Fern", Type: "Foliage"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPut, "/api/v1/plants/1/locations/Desk",
		models.Location{LightLevel: "low"})
	require.Equal(t, http.StatusOK, rec.Code)

	var saved models.Location
	decodeData(t, rec, &saved)
	assert.Equal(t, "Desk", saved.LocationName)
	assert.Equal(t, 1, saved.PlantID)

	rec = doJSON(t, router, http.MethodPut, "/api/v1/plants/1/locations/Window",
		models.Location{LightLevel: "bright"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/plants/1/locations", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var list []models.Location
	decodeData(t, rec, &list)
	assert.Len(t, list, 2)

	rec = doJSON(t, router, http.MethodDelete, "/api/v1/plants/1/locations/Desk", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/plants/1/locations/Desk", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/plants/1/locations/Window", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
