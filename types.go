package prana

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// NullEntityUUID is the id the platform uses for "no entity", e.g. the customer
// id of a tenant administrator.
var NullEntityUUID = uuid.MustParse("13814000-1dd2-11b2-8080-808080808080")

// EntityID identifies a platform entity. Two ids are equal when both the id
// and the entity type match.
type EntityID struct {
	ID         string `json:"id"`
	EntityType string `json:"entityType"`
}

// UUID parses the id.
func (e EntityID) UUID() (uuid.UUID, error) {
	return uuid.Parse(e.ID)
}

// IsNull reports whether the id is empty or the platform's null entity id.
func (e EntityID) IsNull() bool {
	if e.ID == "" {
		return true
	}
	id, err := e.UUID()
	return err == nil && id == NullEntityUUID
}

// String returns "TYPE:id".
func (e EntityID) String() string {
	return e.EntityType + ":" + e.ID
}

// User is the authenticated account.
type User struct {
	ID             EntityID
	Email          string
	Name           string
	FirstName      string
	LastName       string
	Authority      string
	CustomerID     *EntityID
	TenantID       *EntityID
	AdditionalInfo map[string]any
	CreatedTime    *time.Time
}

// Device is a ventilation unit registered to the account.
type Device struct {
	ID              EntityID
	Name            string // internal name, usually a UUID
	Type            string
	Label           string // user-assigned name, empty when unset
	DeviceProfileID *EntityID
	CustomerID      *EntityID
	TenantID        *EntityID
	DeviceData      map[string]any
	AdditionalInfo  map[string]any
	CreatedTime     *time.Time
}

// DeviceID returns the device's id string.
func (d Device) DeviceID() string {
	return d.ID.ID
}

// DisplayName returns the trimmed label if one is set, otherwise the internal name.
func (d Device) DisplayName() string {
	if d.Label != "" {
		return strings.TrimSpace(d.Label)
	}
	return d.Name
}

// PranaType returns the device model (e.g. "Prana 24V 200") from additional info.
func (d Device) PranaType() (string, bool) {
	return GetString(d.AdditionalInfo, "pranaType")
}

// DeviceCredentials are the transport credentials of a device.
type DeviceCredentials struct {
	ID               EntityID
	DeviceID         EntityID
	CredentialsType  string
	CredentialsID    string
	CredentialsValue *string
}

// EntityGroup is a named collection of entities.
type EntityGroup struct {
	ID             EntityID
	Name           string
	Type           string
	OwnerID        *EntityID
	AdditionalInfo map[string]any
}

// PageData is one page of a paginated listing.
type PageData[T any] struct {
	Data          []T
	TotalPages    int
	TotalElements int
	HasNext       bool
}

// Scenario is one device scenario configuration, sent verbatim with SetScenarios.
type Scenario map[string]any

// PageOptions selects a page of a listing.
type PageOptions struct {
	Page     int // zero-based
	PageSize int // defaults to DefaultPageSize
	// TextSearch filters by name; only used by device listings.
	TextSearch string
}
