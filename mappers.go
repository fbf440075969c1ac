package prana

// Mappers convert decoded JSON objects into typed records. They never fail:
// missing strings become "", missing nested ids and timestamps become nil and
// missing metadata becomes an empty map.

// asObject returns v as a JSON object, or an empty one.
func asObject(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

// MapEntityID maps an {"id", "entityType"} object.
func MapEntityID(obj map[string]any) EntityID {
	return EntityID{
		ID:         stringValue(obj, "id"),
		EntityType: stringValue(obj, "entityType"),
	}
}

// optionalEntityID maps obj[key] when it is a non-empty object.
func optionalEntityID(obj map[string]any, key string) *EntityID {
	m, ok := obj[key].(map[string]any)
	if !ok || len(m) == 0 {
		return nil
	}
	id := MapEntityID(m)
	return &id
}

// MapUser maps a user object.
func MapUser(obj map[string]any) User {
	return User{
		ID:             MapEntityID(mapValue(obj, "id")),
		Email:          stringValue(obj, "email"),
		Name:           stringValue(obj, "name"),
		FirstName:      stringValue(obj, "firstName"),
		LastName:       stringValue(obj, "lastName"),
		Authority:      stringValue(obj, "authority"),
		CustomerID:     optionalEntityID(obj, "customerId"),
		TenantID:       optionalEntityID(obj, "tenantId"),
		AdditionalInfo: mapValue(obj, "additionalInfo"),
		CreatedTime:    millisField(obj, "createdTime"),
	}
}

// MapDevice maps a device object.
func MapDevice(obj map[string]any) Device {
	return Device{
		ID:              MapEntityID(mapValue(obj, "id")),
		Name:            stringValue(obj, "name"),
		Type:            stringValue(obj, "type"),
		Label:           stringValue(obj, "label"),
		DeviceProfileID: optionalEntityID(obj, "deviceProfileId"),
		CustomerID:      optionalEntityID(obj, "customerId"),
		TenantID:        optionalEntityID(obj, "tenantId"),
		DeviceData:      mapValue(obj, "deviceData"),
		AdditionalInfo:  mapValue(obj, "additionalInfo"),
		CreatedTime:     millisField(obj, "createdTime"),
	}
}

// MapDeviceCredentials maps a device credentials object.
func MapDeviceCredentials(obj map[string]any) DeviceCredentials {
	creds := DeviceCredentials{
		ID:              MapEntityID(mapValue(obj, "id")),
		DeviceID:        MapEntityID(mapValue(obj, "deviceId")),
		CredentialsType: stringValue(obj, "credentialsType"),
		CredentialsID:   stringValue(obj, "credentialsId"),
	}
	if v, ok := stringField(obj, "credentialsValue"); ok {
		creds.CredentialsValue = &v
	}
	return creds
}

// MapEntityGroup maps an entity group object.
func MapEntityGroup(obj map[string]any) EntityGroup {
	return EntityGroup{
		ID:             MapEntityID(mapValue(obj, "id")),
		Name:           stringValue(obj, "name"),
		Type:           stringValue(obj, "type"),
		OwnerID:        optionalEntityID(obj, "ownerId"),
		AdditionalInfo: mapValue(obj, "additionalInfo"),
	}
}

// MapPage maps a paginated listing, applying item to every element of "data"
// in order. Non-object elements are mapped from an empty object.
func MapPage[T any](obj map[string]any, item func(map[string]any) T) PageData[T] {
	raw, _ := obj["data"].([]any)
	data := make([]T, 0, len(raw))
	for _, elem := range raw {
		data = append(data, item(asObject(elem)))
	}
	return PageData[T]{
		Data:          data,
		TotalPages:    intValue(obj, "totalPages"),
		TotalElements: intValue(obj, "totalElements"),
		HasNext:       boolValue(obj, "hasNext"),
	}
}
