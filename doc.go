// Package prana provides a Go client library for the Prana ventilation cloud.
//
// The cloud is a ThingsBoard-based IoT platform. This library logs a user in,
// lists the recuperators on the account, reads their telemetry and attributes,
// decodes them into a typed PranaState and sends control commands over RPC.
//
// # Authentication
//
// Log in with the account email and password. The returned token pair is kept
// by the client and the access token is refreshed transparently before it
// expires:
//
//	client, err := prana.NewClient()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	if _, err := client.Login(ctx, "user@example.com", "secret"); err != nil {
//	    log.Fatal(err)
//	}
//
// A previously issued pair can be reused with WithTokens. Tokens are never
// persisted by the library.
//
// # Basic Usage
//
// List devices and read their state:
//
//	for device, err := range client.UserDevices(ctx, nil) {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    state, err := client.GetDeviceState(ctx, device.DeviceID())
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    if state.SupplySpeed != nil {
//	        fmt.Printf("%s: supply speed %d\n", device.DisplayName(), *state.SupplySpeed)
//	    }
//	}
//
// Fan speeds are nil when the device has not reported them, which is not the
// same as a stopped fan.
//
// Control a device:
//
//	err := client.ButtonClick(ctx, deviceID, prana.ButtonNightMode)
//	err = client.SetSupplySpeed(ctx, deviceID, 3)
//
// # Error Handling
//
// Every API failure is an *APIError. Check for specific kinds:
//
//	state, err := client.GetDeviceState(ctx, deviceID)
//	if err != nil {
//	    if prana.IsTokenExpired(err) {
//	        // Session is gone; log in again
//	    } else if prana.IsNotFound(err) {
//	        // Device doesn't exist
//	    } else if prana.IsRateLimited(err) {
//	        // Too many requests; see WaitForRateLimit
//	    }
//	}
//
// The library never retries a failed request.
//
// # Blocking Usage
//
// SyncClient wraps a client for callers that do not thread a context:
//
//	client, err := prana.NewSyncClient()
//	devices, err := client.ListUserDevices(nil)
//
// # Observability
//
// Pass WithLogger for structured logs of token refreshes and device commands,
// or use NewLoggingClient to also log every HTTP exchange. Register
// MetricsCollectors with a Prometheus registry to export request, refresh and
// RPC counters.
package prana
