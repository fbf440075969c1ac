package prana

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeObject(t *testing.T, s string) map[string]any {
	t.Helper()
	var obj map[string]any
	require.NoError(t, json.Unmarshal([]byte(s), &obj))
	return obj
}

func TestMapDevice(t *testing.T) {
	t.Run("full object", func(t *testing.T) {
		obj := decodeObject(t, `{
			"id": {"id": "dev-1", "entityType": "DEVICE"},
			"name": "0f2c6a9e",
			"type": "Prana",
			"label": "  Living room  ",
			"deviceProfileId": {"id": "prof-1", "entityType": "DEVICE_PROFILE"},
			"customerId": {"id": "cust-1", "entityType": "CUSTOMER"},
			"additionalInfo": {"pranaType": "Prana 150"},
			"createdTime": 1700000000000
		}`)

		d := MapDevice(obj)
		assert.Equal(t, EntityID{ID: "dev-1", EntityType: "DEVICE"}, d.ID)
		assert.Equal(t, "dev-1", d.DeviceID())
		assert.Equal(t, "Living room", d.DisplayName())
		require.NotNil(t, d.DeviceProfileID)
		assert.Equal(t, "prof-1", d.DeviceProfileID.ID)
		require.NotNil(t, d.CustomerID)
		assert.Nil(t, d.TenantID)
		model, ok := d.PranaType()
		require.True(t, ok)
		assert.Equal(t, "Prana 150", model)
		require.NotNil(t, d.CreatedTime)
		assert.Equal(t, time.UnixMilli(1700000000000), *d.CreatedTime)
	})

	t.Run("missing fields default", func(t *testing.T) {
		d := MapDevice(map[string]any{"name": "abc", "label": nil, "createdTime": nil})
		assert.Equal(t, EntityID{}, d.ID)
		assert.Equal(t, "abc", d.DisplayName())
		assert.Empty(t, d.Type)
		assert.Nil(t, d.CustomerID)
		assert.Nil(t, d.CreatedTime)
		assert.NotNil(t, d.AdditionalInfo)
		_, ok := d.PranaType()
		assert.False(t, ok)
	})

	t.Run("empty nested id is absent", func(t *testing.T) {
		d := MapDevice(map[string]any{"customerId": map[string]any{}})
		assert.Nil(t, d.CustomerID)
	})

	t.Run("zero creation time is absent", func(t *testing.T) {
		d := MapDevice(map[string]any{"createdTime": float64(0)})
		assert.Nil(t, d.CreatedTime)
	})
}

func TestMapUser(t *testing.T) {
	obj := decodeObject(t, `{
		"id": {"id": "u-1", "entityType": "USER"},
		"email": "user@example.com",
		"firstName": "Ann",
		"authority": "CUSTOMER_USER",
		"customerId": {"id": "c-1", "entityType": "CUSTOMER"},
		"tenantId": {"id": "t-1", "entityType": "TENANT"}
	}`)

	u := MapUser(obj)
	assert.Equal(t, "u-1", u.ID.ID)
	assert.Equal(t, "user@example.com", u.Email)
	assert.Equal(t, "Ann", u.FirstName)
	assert.Empty(t, u.LastName)
	assert.Equal(t, "CUSTOMER_USER", u.Authority)
	require.NotNil(t, u.CustomerID)
	assert.Equal(t, "c-1", u.CustomerID.ID)
	require.NotNil(t, u.TenantID)
	assert.Nil(t, u.CreatedTime)
}

func TestMapDeviceCredentials(t *testing.T) {
	creds := MapDeviceCredentials(decodeObject(t, `{
		"id": {"id": "cr-1"},
		"deviceId": {"id": "dev-1", "entityType": "DEVICE"},
		"credentialsType": "ACCESS_TOKEN",
		"credentialsId": "tok"
	}`))
	assert.Equal(t, "dev-1", creds.DeviceID.ID)
	assert.Equal(t, "ACCESS_TOKEN", creds.CredentialsType)
	assert.Nil(t, creds.CredentialsValue)

	creds = MapDeviceCredentials(map[string]any{"credentialsValue": "secret"})
	require.NotNil(t, creds.CredentialsValue)
	assert.Equal(t, "secret", *creds.CredentialsValue)
}

func TestMapPage(t *testing.T) {
	t.Run("maps items in order", func(t *testing.T) {
		page := MapPage(devicePage(true, "a", "b", "c"), MapDevice)
		require.Len(t, page.Data, 3)
		assert.Equal(t, "a", page.Data[0].DeviceID())
		assert.Equal(t, "c", page.Data[2].DeviceID())
		assert.Equal(t, 2, page.TotalPages)
		assert.Equal(t, 3, page.TotalElements)
		assert.True(t, page.HasNext)
	})

	t.Run("defaults", func(t *testing.T) {
		page := MapPage(map[string]any{}, MapEntityGroup)
		assert.Empty(t, page.Data)
		assert.Zero(t, page.TotalPages)
		assert.Zero(t, page.TotalElements)
		assert.False(t, page.HasNext)
	})

	t.Run("non-object elements", func(t *testing.T) {
		page := MapPage(map[string]any{"data": []any{"x", nil}}, MapEntityGroup)
		require.Len(t, page.Data, 2)
		assert.Equal(t, EntityGroup{AdditionalInfo: map[string]any{}}, page.Data[0])
	})
}

func TestEntityID(t *testing.T) {
	assert.True(t, EntityID{}.IsNull())
	assert.True(t, EntityID{ID: NullEntityUUID.String(), EntityType: EntityTypeCustomer}.IsNull())
	assert.False(t, EntityID{ID: testCustomerID}.IsNull())
	assert.False(t, EntityID{ID: "not-a-uuid"}.IsNull())
	assert.Equal(t, "DEVICE:abc", EntityID{ID: "abc", EntityType: "DEVICE"}.String())

	a := EntityID{ID: "x", EntityType: "DEVICE"}
	b := EntityID{ID: "x", EntityType: "CUSTOMER"}
	assert.NotEqual(t, a, b)
}
