package prana

// API endpoint paths.
const (
	endpointLogin            = "/api/auth/login"
	endpointToken            = "/api/auth/token"
	endpointLogout           = "/api/auth/logout"
	endpointChangePassword   = "/api/auth/changePassword"
	endpointUser             = "/api/auth/user"
	endpointSignup           = "/api/noauth/signup"
	endpointActivate         = "/api/noauth/activateByEmailCode"
	endpointResendActivation = "/api/noauth/resendEmailActivation"
	endpointResetRequest     = "/api/noauth/resetPasswordByEmail"
	endpointResetPassword    = "/api/noauth/resetPassword"
	endpointOAuth2Clients    = "/api/noauth/oauth2Clients"
	endpointCustomer         = "/api/customer"
	endpointDevice           = "/api/device"
	endpointEntityGroup      = "/api/entityGroup"
	endpointEntityGroups     = "/api/entityGroups"
	endpointRPCOneway        = "/api/rpc/oneway"
	endpointRPCTwoway        = "/api/rpc/twoway"
	endpointTelemetry        = "/api/plugins/telemetry"
)

// AttributeScope selects a device attribute scope.
type AttributeScope string

const (
	ScopeServer AttributeScope = "SERVER_SCOPE"
	ScopeShared AttributeScope = "SHARED_SCOPE"
	ScopeClient AttributeScope = "CLIENT_SCOPE"
	// ScopeAll requests attributes from every scope.
	ScopeAll AttributeScope = ""
)

// Entity types.
const (
	EntityTypeDevice      = "DEVICE"
	EntityTypeUser        = "USER"
	EntityTypeCustomer    = "CUSTOMER"
	EntityTypeEntityGroup = "ENTITY_GROUP"
)

// RPC methods understood by Prana devices.
const (
	MethodButtonClicked            = "buttonClicked"
	MethodRenameDevice             = "renameDeviceV2"
	MethodSetAutoHeaterTemperature = "setAutoHeaterTemperature"
	MethodSetScenarios             = "setScenariosV2"
	MethodSetFirmware              = "setFw"
)

// Button numbers for the buttonClicked RPC. Some mappings vary by device model
// and firmware.
const (
	ButtonPower            = 1
	ButtonSpeedUp          = 2 // both fans, bounded mode
	ButtonSpeedDown        = 3 // both fans, bounded mode
	ButtonNightMode        = 4
	ButtonAutoMode         = 5
	ButtonHeater           = 6
	ButtonBoundedMode      = 7
	ButtonSupplySpeedUp    = 8
	ButtonSupplySpeedDown  = 9
	ButtonExtractSpeedUp   = 10
	ButtonExtractSpeedDown = 11
	ButtonSleepTimer       = 12
	ButtonBrightness       = 13
)

// Telemetry and attribute keys reported by Prana devices.
const (
	KeyMotorsSupply       = "motorsSup" // 0-50
	KeyMotorsExtract      = "motorsExt" // 0-50
	KeyPowerPosition      = "powerPosition"
	KeyAutoModePosition   = "autoModePosition"
	KeyBoundedPosition    = "boundedModePosition"
	KeyNightModePosition  = "nightModePosition"
	KeyHeaterPosition     = "heaterPosition"
	KeyDefrostingPosition = "defrostingPosition"
	KeySleepPosition      = "sleepPosition"
	KeySleepSecondsLSB    = "sleepSecondsLsb"
	KeySleepSecondsMSB    = "sleepSecondsMsb"
	KeyBrightnessPosition = "brightnessPosition"
	KeyCO2                = "co2"
	KeyVOC                = "voc"
	KeyHumidity           = "humidity"
	KeyTemperature        = "temperature_2"
	KeyPressure           = "pressure"
	KeyActive             = "active"
	KeyLastActivityTime   = "lastActivityTime"
	KeyWiFiRSSI           = "wifi_rssi"
	KeyFirmwareVersion    = "fw_version"
	KeyConfig             = "config"
	KeyState              = "state"
	KeyMAC                = "mac"
)

// SleepTimerOptions lists the sleep timer durations, in minutes, that the
// sleep timer button cycles through.
var SleepTimerOptions = []int{10, 20, 30, 60, 90, 120, 180, 300, 540}

// Fan speed scale: the motors report 0-50, displayed as 0-5.
const (
	MaxSpeed        = 5
	motorSpeedScale = 10
)

// DefaultPageSize is used when PageOptions.PageSize is zero.
const DefaultPageSize = 100

// DefaultTelemetryLimit is the per-key sample limit when none is given.
const DefaultTelemetryLimit = 100
