package prana

import (
	"context"
	"time"
)

// SyncClient is a blocking, context-free veneer over an API. Every call runs
// under its own context bounded by the configured timeout; errors are
// returned unchanged.
//
// Example:
//
//	client, err := prana.NewSyncClient()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//	if _, err := client.Login("user@example.com", "secret"); err != nil {
//		log.Fatal(err)
//	}
//	devices, err := client.ListUserDevices(nil)
type SyncClient struct {
	api     API
	timeout time.Duration
}

// NewSyncClient creates a Client with opts and wraps it. Calls are bounded by
// the client's HTTP timeout (DefaultTimeout unless WithTimeout or
// WithHTTPClient says otherwise); a zero HTTP timeout leaves calls unbounded.
func NewSyncClient(opts ...Option) (*SyncClient, error) {
	client, err := NewClient(opts...)
	if err != nil {
		return nil, err
	}
	return WrapSync(client, client.httpClient.Timeout), nil
}

// WrapSync wraps api. A timeout of zero leaves calls unbounded.
func WrapSync(api API, timeout time.Duration) *SyncClient {
	return &SyncClient{api: api, timeout: timeout}
}

// API returns the wrapped client.
func (s *SyncClient) API() API {
	return s.api
}

func (s *SyncClient) context() (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), s.timeout)
}

// Close releases the wrapped client.
func (s *SyncClient) Close() error {
	return s.api.Close()
}

// IsAuthenticated reports whether the wrapped client holds an access token.
func (s *SyncClient) IsAuthenticated() bool {
	return s.api.IsAuthenticated()
}

// Login is the blocking form of Client.Login.
func (s *SyncClient) Login(username, password string) (*TokenPair, error) {
	ctx, cancel := s.context()
	defer cancel()
	return s.api.Login(ctx, username, password)
}

// RefreshToken is the blocking form of Client.RefreshToken.
func (s *SyncClient) RefreshToken() (*TokenPair, error) {
	ctx, cancel := s.context()
	defer cancel()
	return s.api.RefreshToken(ctx)
}

// Logout is the blocking form of Client.Logout.
func (s *SyncClient) Logout() error {
	ctx, cancel := s.context()
	defer cancel()
	return s.api.Logout(ctx)
}

// ChangePassword is the blocking form of Client.ChangePassword.
func (s *SyncClient) ChangePassword(currentPassword, newPassword string) error {
	ctx, cancel := s.context()
	defer cancel()
	return s.api.ChangePassword(ctx, currentPassword, newPassword)
}

// Signup is the blocking form of Client.Signup.
func (s *SyncClient) Signup(req SignupRequest) (any, error) {
	ctx, cancel := s.context()
	defer cancel()
	return s.api.Signup(ctx, req)
}

// ActivateByEmailCode is the blocking form of Client.ActivateByEmailCode.
func (s *SyncClient) ActivateByEmailCode(emailCode string) (any, error) {
	ctx, cancel := s.context()
	defer cancel()
	return s.api.ActivateByEmailCode(ctx, emailCode)
}

// ResendActivationEmail is the blocking form of Client.ResendActivationEmail.
func (s *SyncClient) ResendActivationEmail(email string) error {
	ctx, cancel := s.context()
	defer cancel()
	return s.api.ResendActivationEmail(ctx, email)
}

// RequestPasswordReset is the blocking form of Client.RequestPasswordReset.
func (s *SyncClient) RequestPasswordReset(email string) error {
	ctx, cancel := s.context()
	defer cancel()
	return s.api.RequestPasswordReset(ctx, email)
}

// ResetPassword is the blocking form of Client.ResetPassword.
func (s *SyncClient) ResetPassword(resetToken, newPassword string) error {
	ctx, cancel := s.context()
	defer cancel()
	return s.api.ResetPassword(ctx, resetToken, newPassword)
}

// OAuth2Clients is the blocking form of Client.OAuth2Clients.
func (s *SyncClient) OAuth2Clients() (any, error) {
	ctx, cancel := s.context()
	defer cancel()
	return s.api.OAuth2Clients(ctx)
}

// GetUser is the blocking form of Client.GetUser.
func (s *SyncClient) GetUser() (*User, error) {
	ctx, cancel := s.context()
	defer cancel()
	return s.api.GetUser(ctx)
}

// ListUserDevicesPage is the blocking form of Client.ListUserDevicesPage.
func (s *SyncClient) ListUserDevicesPage(opts *PageOptions) (*PageData[Device], error) {
	ctx, cancel := s.context()
	defer cancel()
	return s.api.ListUserDevicesPage(ctx, opts)
}

// ListUserDevices is the blocking form of Client.ListUserDevices.
func (s *SyncClient) ListUserDevices(opts *PageOptions) ([]Device, error) {
	ctx, cancel := s.context()
	defer cancel()
	return s.api.ListUserDevices(ctx, opts)
}

// GetDevice is the blocking form of Client.GetDevice.
func (s *SyncClient) GetDevice(deviceID string) (*Device, error) {
	ctx, cancel := s.context()
	defer cancel()
	return s.api.GetDevice(ctx, deviceID)
}

// GetDeviceCredentials is the blocking form of Client.GetDeviceCredentials.
func (s *SyncClient) GetDeviceCredentials(deviceID string) (*DeviceCredentials, error) {
	ctx, cancel := s.context()
	defer cancel()
	return s.api.GetDeviceCredentials(ctx, deviceID)
}

// GetDeviceTelemetry is the blocking form of Client.GetDeviceTelemetry.
func (s *SyncClient) GetDeviceTelemetry(deviceID string, query *TelemetryQuery) (Telemetry, error) {
	ctx, cancel := s.context()
	defer cancel()
	return s.api.GetDeviceTelemetry(ctx, deviceID, query)
}

// GetDeviceAttributes is the blocking form of Client.GetDeviceAttributes.
func (s *SyncClient) GetDeviceAttributes(deviceID string, scope AttributeScope, keys ...string) (Attributes, error) {
	ctx, cancel := s.context()
	defer cancel()
	return s.api.GetDeviceAttributes(ctx, deviceID, scope, keys...)
}

// GetDeviceState is the blocking form of Client.GetDeviceState.
func (s *SyncClient) GetDeviceState(deviceID string) (*PranaState, error) {
	ctx, cancel := s.context()
	defer cancel()
	return s.api.GetDeviceState(ctx, deviceID)
}

// SendRPCOneway is the blocking form of Client.SendRPCOneway.
func (s *SyncClient) SendRPCOneway(deviceID, method string, params map[string]any) error {
	ctx, cancel := s.context()
	defer cancel()
	return s.api.SendRPCOneway(ctx, deviceID, method, params)
}

// SendRPCTwoway is the blocking form of Client.SendRPCTwoway.
func (s *SyncClient) SendRPCTwoway(deviceID, method string, params map[string]any, timeout time.Duration) (any, error) {
	ctx, cancel := s.context()
	defer cancel()
	return s.api.SendRPCTwoway(ctx, deviceID, method, params, timeout)
}

// ButtonClick is the blocking form of Client.ButtonClick.
func (s *SyncClient) ButtonClick(deviceID string, button int) error {
	ctx, cancel := s.context()
	defer cancel()
	return s.api.ButtonClick(ctx, deviceID, button)
}

// RenameDevice is the blocking form of Client.RenameDevice.
func (s *SyncClient) RenameDevice(deviceID, name string) error {
	ctx, cancel := s.context()
	defer cancel()
	return s.api.RenameDevice(ctx, deviceID, name)
}

// SetAutoHeaterTemperature is the blocking form of Client.SetAutoHeaterTemperature.
func (s *SyncClient) SetAutoHeaterTemperature(deviceID string, temperature int) error {
	ctx, cancel := s.context()
	defer cancel()
	return s.api.SetAutoHeaterTemperature(ctx, deviceID, temperature)
}

// SetScenarios is the blocking form of Client.SetScenarios.
func (s *SyncClient) SetScenarios(deviceID string, scenarios []Scenario) error {
	ctx, cancel := s.context()
	defer cancel()
	return s.api.SetScenarios(ctx, deviceID, scenarios)
}

// TogglePower is the blocking form of Client.TogglePower.
func (s *SyncClient) TogglePower(deviceID string) error {
	ctx, cancel := s.context()
	defer cancel()
	return s.api.TogglePower(ctx, deviceID)
}

// SpeedUp is the blocking form of Client.SpeedUp.
func (s *SyncClient) SpeedUp(deviceID string) error {
	ctx, cancel := s.context()
	defer cancel()
	return s.api.SpeedUp(ctx, deviceID)
}

// SpeedDown is the blocking form of Client.SpeedDown.
func (s *SyncClient) SpeedDown(deviceID string) error {
	ctx, cancel := s.context()
	defer cancel()
	return s.api.SpeedDown(ctx, deviceID)
}

// ToggleNightMode is the blocking form of Client.ToggleNightMode.
func (s *SyncClient) ToggleNightMode(deviceID string) error {
	ctx, cancel := s.context()
	defer cancel()
	return s.api.ToggleNightMode(ctx, deviceID)
}

// ToggleAutoMode is the blocking form of Client.ToggleAutoMode.
func (s *SyncClient) ToggleAutoMode(deviceID string) error {
	ctx, cancel := s.context()
	defer cancel()
	return s.api.ToggleAutoMode(ctx, deviceID)
}

// ToggleHeater is the blocking form of Client.ToggleHeater.
func (s *SyncClient) ToggleHeater(deviceID string) error {
	ctx, cancel := s.context()
	defer cancel()
	return s.api.ToggleHeater(ctx, deviceID)
}

// ToggleBoundedMode is the blocking form of Client.ToggleBoundedMode.
func (s *SyncClient) ToggleBoundedMode(deviceID string) error {
	ctx, cancel := s.context()
	defer cancel()
	return s.api.ToggleBoundedMode(ctx, deviceID)
}

// SupplySpeedUp is the blocking form of Client.SupplySpeedUp.
func (s *SyncClient) SupplySpeedUp(deviceID string) error {
	ctx, cancel := s.context()
	defer cancel()
	return s.api.SupplySpeedUp(ctx, deviceID)
}

// SupplySpeedDown is the blocking form of Client.SupplySpeedDown.
func (s *SyncClient) SupplySpeedDown(deviceID string) error {
	ctx, cancel := s.context()
	defer cancel()
	return s.api.SupplySpeedDown(ctx, deviceID)
}

// ExtractSpeedUp is the blocking form of Client.ExtractSpeedUp.
func (s *SyncClient) ExtractSpeedUp(deviceID string) error {
	ctx, cancel := s.context()
	defer cancel()
	return s.api.ExtractSpeedUp(ctx, deviceID)
}

// ExtractSpeedDown is the blocking form of Client.ExtractSpeedDown.
func (s *SyncClient) ExtractSpeedDown(deviceID string) error {
	ctx, cancel := s.context()
	defer cancel()
	return s.api.ExtractSpeedDown(ctx, deviceID)
}

// ToggleSleepTimer is the blocking form of Client.ToggleSleepTimer.
func (s *SyncClient) ToggleSleepTimer(deviceID string) error {
	ctx, cancel := s.context()
	defer cancel()
	return s.api.ToggleSleepTimer(ctx, deviceID)
}

// CycleBrightness is the blocking form of Client.CycleBrightness.
func (s *SyncClient) CycleBrightness(deviceID string) error {
	ctx, cancel := s.context()
	defer cancel()
	return s.api.CycleBrightness(ctx, deviceID)
}

// SetSupplySpeed is the blocking form of Client.SetSupplySpeed.
func (s *SyncClient) SetSupplySpeed(deviceID string, speed int) error {
	ctx, cancel := s.context()
	defer cancel()
	return s.api.SetSupplySpeed(ctx, deviceID, speed)
}

// SetExtractSpeed is the blocking form of Client.SetExtractSpeed.
func (s *SyncClient) SetExtractSpeed(deviceID string, speed int) error {
	ctx, cancel := s.context()
	defer cancel()
	return s.api.SetExtractSpeed(ctx, deviceID, speed)
}

// ListEntityGroupsPage is the blocking form of Client.ListEntityGroupsPage.
func (s *SyncClient) ListEntityGroupsPage(entityType string, opts *PageOptions) (*PageData[EntityGroup], error) {
	ctx, cancel := s.context()
	defer cancel()
	return s.api.ListEntityGroupsPage(ctx, entityType, opts)
}

// ListEntityGroups is the blocking form of Client.ListEntityGroups.
func (s *SyncClient) ListEntityGroups(entityType string, opts *PageOptions) ([]EntityGroup, error) {
	ctx, cancel := s.context()
	defer cancel()
	return s.api.ListEntityGroups(ctx, entityType, opts)
}

// ListGroupDevicesPage is the blocking form of Client.ListGroupDevicesPage.
func (s *SyncClient) ListGroupDevicesPage(groupID string, opts *PageOptions) (*PageData[Device], error) {
	ctx, cancel := s.context()
	defer cancel()
	return s.api.ListGroupDevicesPage(ctx, groupID, opts)
}

// ListGroupDevices is the blocking form of Client.ListGroupDevices.
func (s *SyncClient) ListGroupDevices(groupID string, opts *PageOptions) ([]Device, error) {
	ctx, cancel := s.context()
	defer cancel()
	return s.api.ListGroupDevices(ctx, groupID, opts)
}
