package prana

import (
	"context"
)

// Device control commands. All of them are one-way RPCs: the device applies
// the change asynchronously and the new state shows up in telemetry.

// ButtonClick presses a device button. See the Button constants.
//
// Example:
//
//	err := client.ButtonClick(ctx, deviceID, prana.ButtonNightMode)
func (c *Client) ButtonClick(ctx context.Context, deviceID string, button int) error {
	return c.SendRPCOneway(ctx, deviceID, MethodButtonClicked, map[string]any{
		"buttonNumber": button,
	})
}

// RenameDevice sets the name shown for the device.
func (c *Client) RenameDevice(ctx context.Context, deviceID, name string) error {
	return c.SendRPCOneway(ctx, deviceID, MethodRenameDevice, map[string]any{
		"deviceName": name,
	})
}

// SetAutoHeaterTemperature sets the temperature, in degrees Celsius, below
// which the heater switches on in auto mode.
func (c *Client) SetAutoHeaterTemperature(ctx context.Context, deviceID string, temperature int) error {
	return c.SendRPCOneway(ctx, deviceID, MethodSetAutoHeaterTemperature, map[string]any{
		"autoHeaterTemperature": temperature,
	})
}

// SetScenarios replaces the device's scenario configurations.
func (c *Client) SetScenarios(ctx context.Context, deviceID string, scenarios []Scenario) error {
	if scenarios == nil {
		scenarios = []Scenario{}
	}
	return c.SendRPCOneway(ctx, deviceID, MethodSetScenarios, map[string]any{
		"scenarios": scenarios,
	})
}

// TogglePower switches the device on or off.
func (c *Client) TogglePower(ctx context.Context, deviceID string) error {
	return c.ButtonClick(ctx, deviceID, ButtonPower)
}

// SpeedUp raises both fans by one step in bounded mode.
func (c *Client) SpeedUp(ctx context.Context, deviceID string) error {
	return c.ButtonClick(ctx, deviceID, ButtonSpeedUp)
}

// SpeedDown lowers both fans by one step in bounded mode.
func (c *Client) SpeedDown(ctx context.Context, deviceID string) error {
	return c.ButtonClick(ctx, deviceID, ButtonSpeedDown)
}

// ToggleNightMode switches night mode.
func (c *Client) ToggleNightMode(ctx context.Context, deviceID string) error {
	return c.ButtonClick(ctx, deviceID, ButtonNightMode)
}

// ToggleAutoMode switches auto mode.
func (c *Client) ToggleAutoMode(ctx context.Context, deviceID string) error {
	return c.ButtonClick(ctx, deviceID, ButtonAutoMode)
}

// ToggleHeater switches the heater.
func (c *Client) ToggleHeater(ctx context.Context, deviceID string) error {
	return c.ButtonClick(ctx, deviceID, ButtonHeater)
}

// ToggleBoundedMode links or unlinks the supply and extract fans.
func (c *Client) ToggleBoundedMode(ctx context.Context, deviceID string) error {
	return c.ButtonClick(ctx, deviceID, ButtonBoundedMode)
}

// SupplySpeedUp raises the supply fan by one step.
func (c *Client) SupplySpeedUp(ctx context.Context, deviceID string) error {
	return c.ButtonClick(ctx, deviceID, ButtonSupplySpeedUp)
}

// SupplySpeedDown lowers the supply fan by one step.
func (c *Client) SupplySpeedDown(ctx context.Context, deviceID string) error {
	return c.ButtonClick(ctx, deviceID, ButtonSupplySpeedDown)
}

// ExtractSpeedUp raises the extract fan by one step.
func (c *Client) ExtractSpeedUp(ctx context.Context, deviceID string) error {
	return c.ButtonClick(ctx, deviceID, ButtonExtractSpeedUp)
}

// ExtractSpeedDown lowers the extract fan by one step.
func (c *Client) ExtractSpeedDown(ctx context.Context, deviceID string) error {
	return c.ButtonClick(ctx, deviceID, ButtonExtractSpeedDown)
}

// ToggleSleepTimer advances the sleep timer to its next duration.
// See SleepTimerOptions.
func (c *Client) ToggleSleepTimer(ctx context.Context, deviceID string) error {
	return c.ButtonClick(ctx, deviceID, ButtonSleepTimer)
}

// CycleBrightness advances the display brightness.
func (c *Client) CycleBrightness(ctx context.Context, deviceID string) error {
	return c.ButtonClick(ctx, deviceID, ButtonBrightness)
}

// SetSupplySpeed moves the supply fan to speed (0-5) by clicking the step
// buttons. The current speed is read first; an unknown speed counts as 0.
func (c *Client) SetSupplySpeed(ctx context.Context, deviceID string, speed int) error {
	return c.setSpeed(ctx, deviceID, speed, func(s *PranaState) *int { return s.SupplySpeed },
		ButtonSupplySpeedUp, ButtonSupplySpeedDown)
}

// SetExtractSpeed moves the extract fan to speed (0-5) by clicking the step
// buttons. The current speed is read first; an unknown speed counts as 0.
func (c *Client) SetExtractSpeed(ctx context.Context, deviceID string, speed int) error {
	return c.setSpeed(ctx, deviceID, speed, func(s *PranaState) *int { return s.ExtractSpeed },
		ButtonExtractSpeedUp, ButtonExtractSpeedDown)
}

func (c *Client) setSpeed(ctx context.Context, deviceID string, target int, current func(*PranaState) *int, up, down int) error {
	if target < 0 || target > MaxSpeed {
		return ErrInvalidSpeed
	}

	state, err := c.GetDeviceState(ctx, deviceID)
	if err != nil {
		return err
	}

	from := 0
	if v := current(state); v != nil {
		from = *v
	}

	steps, button := target-from, up
	if steps < 0 {
		steps, button = -steps, down
	}
	for range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := c.ButtonClick(ctx, deviceID, button); err != nil {
			return err
		}
	}
	return nil
}
