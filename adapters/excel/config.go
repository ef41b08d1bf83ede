package excel

import (
	"launchdash/adapters/datareadiness/coercer"
)

// ExcelConfig holds configuration for the file launch source
type ExcelConfig struct {
	FilePath       string                 `json:"file_path"`
	Sheet          string                 `json:"sheet"`
	CoercionConfig coercer.CoercionConfig `json:"coercion_config"`
}

// DefaultExcelConfig returns sensible defaults for spreadsheet processing
func DefaultExcelConfig() ExcelConfig {
	return ExcelConfig{
		FilePath:       "spacex_launch_dash.csv",
		Sheet:          "Sheet1",
		CoercionConfig: coercer.DefaultCoercionConfig(),
	}
}
