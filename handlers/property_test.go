package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nadeemahmad9/real-estate/models"
	"github.com/nadeemahmad9/real-estate/store"
)

type fakePropertyStore struct {
	properties map[string]models.Property
	order      []string
	lastFilter store.PropertyFilter
}

func newFakePropertyStore() *fakePropertyStore {
	return &fakePropertyStore{properties: map[string]models.Property{}}
}

func (f *fakePropertyStore) Create(_ context.Context, p *models.Property) (*models.Property, error) {
	now := time.Now().UTC()
	p.ID = primitive.NewObjectID()
	p.CreatedAt = now
	p.UpdatedAt = now
	f.properties[p.ID.Hex()] = *p
	f.order = append(f.order, p.ID.Hex())
	return p, nil
}

func (f *fakePropertyStore) List(_ context.Context, filter store.PropertyFilter) ([]models.Property, error) {
	f.lastFilter = filter
	out := []models.Property{}
	// Newest first.
	for i := len(f.order) - 1; i >= 0; i-- {
		out = append(out, f.properties[f.order[i]])
	}
	return out, nil
}

func (f *fakePropertyStore) GetByID(_ context.Context, id string) (*models.Property, error) {
	p, ok := f.properties[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &p, nil
}

func (f *fakePropertyStore) Update(_ context.Context, id string, p *models.Property) (*models.Property, error) {
	existing, ok := f.properties[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	updated := *p
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()
	f.properties[id] = updated
	return &updated, nil
}

func (f *fakePropertyStore) Delete(_ context.Context, id string) error {
	if _, ok := f.properties[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.properties, id)
	for i, v := range f.order {
		if v == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

const skylineJSON = `{
	"title": "Skyline",
	"city": "Pune",
	"location": "Wakad",
	"price": 4500000,
	"image": "http://x/i.png",
	"propertyType": "Residential",
	"configurations": [{"type": "2 BHK", "area": "950", "price": "45 L", "image": ""}]
}`

func createContext(e *echo.Echo, method, target, body string, userID *primitive.ObjectID) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != nil {
		c.Set("user_id", *userID)
		c.Set("user_role", models.RoleAdmin)
	}
	return c, rec
}

func TestCreateProperty_AppliesDefaults(t *testing.T) {
	fake := newFakePropertyStore()
	pc := NewPropertyController(fake, time.Minute)
	e := newEcho()

	adminID := primitive.NewObjectID()
	c, rec := createContext(e, http.MethodPost, "/api/properties", skylineJSON, &adminID)
	require.NoError(t, pc.CreateProperty(c))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		Property models.Property `json:"property"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, models.StatusMidStage, resp.Property.Status)
	assert.Equal(t, models.TransactionSale, resp.Property.TransactionType)
	assert.False(t, resp.Property.Featured)
	require.NotNil(t, resp.Property.CreatedBy)
	assert.Equal(t, adminID, *resp.Property.CreatedBy)
	assert.False(t, resp.Property.ID.IsZero())
	assert.False(t, resp.Property.CreatedAt.IsZero())
}

func TestCreateProperty_MissingConfigurations(t *testing.T) {
	fake := newFakePropertyStore()
	pc := NewPropertyController(fake, time.Minute)
	e := newEcho()

	body := `{"title":"Skyline","city":"Pune","location":"Wakad","price":4500000,"image":"http://x/i.png","propertyType":"Residential"}`
	c, rec := createContext(e, http.MethodPost, "/api/properties", body, nil)
	require.NoError(t, pc.CreateProperty(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, fake.properties)
}

func TestCreateProperty_MissingRequiredField(t *testing.T) {
	pc := NewPropertyController(newFakePropertyStore(), time.Minute)
	e := newEcho()

	body := `{"title":"Skyline","price":4500000,"configurations":[{"type":"2 BHK"}]}`
	c, rec := createContext(e, http.MethodPost, "/api/properties", body, nil)
	require.NoError(t, pc.CreateProperty(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	fake := newFakePropertyStore()
	pc := NewPropertyController(fake, time.Minute)
	e := newEcho()

	c, rec := createContext(e, http.MethodPost, "/api/properties", skylineJSON, nil)
	require.NoError(t, pc.CreateProperty(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Property models.Property `json:"property"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	c, rec = createContext(e, http.MethodGet, "/api/properties/"+created.Property.ID.Hex(), "", nil)
	c.SetParamNames("id")
	c.SetParamValues(created.Property.ID.Hex())
	require.NoError(t, pc.GetProperty(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Property
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Skyline", got.Title)
	assert.Equal(t, "Pune", got.City)
	assert.Equal(t, 4500000.0, got.Price)
	require.Len(t, got.Configurations, 1)
	assert.Equal(t, "2 BHK", got.Configurations[0].Type)
}

func TestGetProperty_NotFound(t *testing.T) {
	pc := NewPropertyController(newFakePropertyStore(), time.Minute)
	e := newEcho()

	id := primitive.NewObjectID().Hex()
	c, rec := createContext(e, http.MethodGet, "/api/properties/"+id, "", nil)
	c.SetParamNames("id")
	c.SetParamValues(id)
	require.NoError(t, pc.GetProperty(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListProperties_FilterParsing(t *testing.T) {
	fake := newFakePropertyStore()
	pc := NewPropertyController(fake, time.Minute)
	e := newEcho()

	c, rec := createContext(e, http.MethodGet,
		"/api/properties?city=noida&propertyType=Villa&transactionType=For+Rent&minPrice=1000000&maxPrice=5000000&featured=true", "", nil)
	require.NoError(t, pc.ListProperties(c))
	require.Equal(t, http.StatusOK, rec.Code)

	filter := fake.lastFilter
	assert.Equal(t, "noida", filter.City)
	assert.Equal(t, "Villa", filter.PropertyType)
	assert.Equal(t, "For Rent", filter.TransactionType)
	require.NotNil(t, filter.Featured)
	assert.True(t, *filter.Featured)
	require.NotNil(t, filter.MinPrice)
	assert.Equal(t, 1000000.0, *filter.MinPrice)
	require.NotNil(t, filter.MaxPrice)
	assert.Equal(t, 5000000.0, *filter.MaxPrice)
}

func TestListProperties_FeaturedSemantics(t *testing.T) {
	fake := newFakePropertyStore()
	pc := NewPropertyController(fake, time.Minute)
	e := newEcho()

	c, _ := createContext(e, http.MethodGet, "/api/properties?featured=false", "", nil)
	require.NoError(t, pc.ListProperties(c))
	require.NotNil(t, fake.lastFilter.Featured)
	assert.False(t, *fake.lastFilter.Featured)

	c, _ = createContext(e, http.MethodGet, "/api/properties?featured=yes", "", nil)
	require.NoError(t, pc.ListProperties(c))
	assert.Nil(t, fake.lastFilter.Featured, "values other than true/false are ignored")
}

func TestListProperties_EmptyIsJSONArray(t *testing.T) {
	pc := NewPropertyController(newFakePropertyStore(), time.Minute)
	e := newEcho()

	c, rec := createContext(e, http.MethodGet, "/api/properties", "", nil)
	require.NoError(t, pc.ListProperties(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestUpdateProperty(t *testing.T) {
	fake := newFakePropertyStore()
	pc := NewPropertyController(fake, time.Minute)
	e := newEcho()

	c, rec := createContext(e, http.MethodPost, "/api/properties", skylineJSON, nil)
	require.NoError(t, pc.CreateProperty(c))
	var created struct {
		Property models.Property `json:"property"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	id := created.Property.ID.Hex()

	update := `{"title":"Skyline Towers","city":"Pune","location":"Wakad","price":4800000,"image":"http://x/i.png","propertyType":"Residential","status":"Ready","configurations":[{"type":"3 BHK","area":"1250","price":"62 L","image":""}]}`
	c, rec = createContext(e, http.MethodPut, "/api/properties/"+id, update, nil)
	c.SetParamNames("id")
	c.SetParamValues(id)
	require.NoError(t, pc.UpdateProperty(c))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Property models.Property `json:"property"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Skyline Towers", resp.Property.Title)
	assert.Equal(t, models.StatusReady, resp.Property.Status)
	assert.Equal(t, 4800000.0, resp.Property.Price)
}

func TestUpdateProperty_InvalidStatus(t *testing.T) {
	pc := NewPropertyController(newFakePropertyStore(), time.Minute)
	e := newEcho()

	id := primitive.NewObjectID().Hex()
	c, rec := createContext(e, http.MethodPut, "/api/properties/"+id, `{"status":"Sold Out"}`, nil)
	c.SetParamNames("id")
	c.SetParamValues(id)
	require.NoError(t, pc.UpdateProperty(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateProperty_NotFound(t *testing.T) {
	pc := NewPropertyController(newFakePropertyStore(), time.Minute)
	e := newEcho()

	id := primitive.NewObjectID().Hex()
	c, rec := createContext(e, http.MethodPut, "/api/properties/"+id, skylineJSON, nil)
	c.SetParamNames("id")
	c.SetParamValues(id)
	require.NoError(t, pc.UpdateProperty(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteProperty(t *testing.T) {
	fake := newFakePropertyStore()
	pc := NewPropertyController(fake, time.Minute)
	e := newEcho()

	c, rec := createContext(e, http.MethodPost, "/api/properties", skylineJSON, nil)
	require.NoError(t, pc.CreateProperty(c))
	var created struct {
		Property models.Property `json:"property"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	id := created.Property.ID.Hex()

	c, rec = createContext(e, http.MethodDelete, "/api/properties/"+id, "", nil)
	c.SetParamNames("id")
	c.SetParamValues(id)
	require.NoError(t, pc.DeleteProperty(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = createContext(e, http.MethodGet, "/api/properties/"+id, "", nil)
	c.SetParamNames("id")
	c.SetParamValues(id)
	require.NoError(t, pc.GetProperty(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
