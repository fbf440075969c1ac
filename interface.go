package prana

import (
	"context"
	"iter"
	"time"
)

// API defines the Prana cloud operations. Client implements it; callers can
// substitute a fake in tests.
type API interface {
	// ============================================================================
	// Authentication
	// ============================================================================

	Login(ctx context.Context, username, password string) (*TokenPair, error)
	RefreshToken(ctx context.Context) (*TokenPair, error)
	Logout(ctx context.Context) error
	ChangePassword(ctx context.Context, currentPassword, newPassword string) error
	IsAuthenticated() bool

	// ============================================================================
	// Registration
	// ============================================================================

	Signup(ctx context.Context, req SignupRequest) (any, error)
	ActivateByEmailCode(ctx context.Context, emailCode string) (any, error)
	ResendActivationEmail(ctx context.Context, email string) error
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, resetToken, newPassword string) error
	OAuth2Clients(ctx context.Context) (any, error)

	// ============================================================================
	// User
	// ============================================================================

	GetUser(ctx context.Context) (*User, error)

	// ============================================================================
	// Devices
	// ============================================================================

	ListUserDevicesPage(ctx context.Context, opts *PageOptions) (*PageData[Device], error)
	ListUserDevices(ctx context.Context, opts *PageOptions) ([]Device, error)
	UserDevices(ctx context.Context, opts *PageOptions) iter.Seq2[Device, error]
	GetDevice(ctx context.Context, deviceID string) (*Device, error)
	GetDeviceCredentials(ctx context.Context, deviceID string) (*DeviceCredentials, error)

	// ============================================================================
	// Telemetry & State
	// ============================================================================

	GetDeviceTelemetry(ctx context.Context, deviceID string, query *TelemetryQuery) (Telemetry, error)
	GetDeviceAttributes(ctx context.Context, deviceID string, scope AttributeScope, keys ...string) (Attributes, error)
	GetDeviceState(ctx context.Context, deviceID string) (*PranaState, error)

	// ============================================================================
	// RPC
	// ============================================================================

	SendRPCOneway(ctx context.Context, deviceID, method string, params map[string]any) error
	SendRPCTwoway(ctx context.Context, deviceID, method string, params map[string]any, timeout time.Duration) (any, error)

	// ============================================================================
	// Device Control
	// ============================================================================

	ButtonClick(ctx context.Context, deviceID string, button int) error
	RenameDevice(ctx context.Context, deviceID, name string) error
	SetAutoHeaterTemperature(ctx context.Context, deviceID string, temperature int) error
	SetScenarios(ctx context.Context, deviceID string, scenarios []Scenario) error
	TogglePower(ctx context.Context, deviceID string) error
	SpeedUp(ctx context.Context, deviceID string) error
	SpeedDown(ctx context.Context, deviceID string) error
	ToggleNightMode(ctx context.Context, deviceID string) error
	ToggleAutoMode(ctx context.Context, deviceID string) error
	ToggleHeater(ctx context.Context, deviceID string) error
	ToggleBoundedMode(ctx context.Context, deviceID string) error
	SupplySpeedUp(ctx context.Context, deviceID string) error
	SupplySpeedDown(ctx context.Context, deviceID string) error
	ExtractSpeedUp(ctx context.Context, deviceID string) error
	ExtractSpeedDown(ctx context.Context, deviceID string) error
	ToggleSleepTimer(ctx context.Context, deviceID string) error
	CycleBrightness(ctx context.Context, deviceID string) error
	SetSupplySpeed(ctx context.Context, deviceID string, speed int) error
	SetExtractSpeed(ctx context.Context, deviceID string, speed int) error

	// ============================================================================
	// Entity Groups
	// ============================================================================

	ListEntityGroupsPage(ctx context.Context, entityType string, opts *PageOptions) (*PageData[EntityGroup], error)
	ListEntityGroups(ctx context.Context, entityType string, opts *PageOptions) ([]EntityGroup, error)
	EntityGroups(ctx context.Context, entityType string, opts *PageOptions) iter.Seq2[EntityGroup, error]
	ListGroupDevicesPage(ctx context.Context, groupID string, opts *PageOptions) (*PageData[Device], error)
	ListGroupDevices(ctx context.Context, groupID string, opts *PageOptions) ([]Device, error)
	GroupDevices(ctx context.Context, groupID string, opts *PageOptions) iter.Seq2[Device, error]

	Close() error
}

// Ensure Client implements API.
var _ API = (*Client)(nil)
