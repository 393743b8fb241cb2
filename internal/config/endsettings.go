package config

import (
	"encoding/json"
	"fmt"

	"candy-machine-cli/internal/candymachine"
)

// EndSettingType discriminates how the end-settings threshold is read on
// chain: as a timestamp or as a mint count. Tokens are matched exactly.
type EndSettingType string

const (
	EndSettingDate   EndSettingType = "Date"
	EndSettingAmount EndSettingType = "Amount"
)

func (t *EndSettingType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: end_setting_type must be a string", ErrTypeMismatch)
	}
	switch EndSettingType(s) {
	case EndSettingDate, EndSettingAmount:
		*t = EndSettingType(s)
		return nil
	default:
		return fmt.Errorf("%w: end setting type %q", ErrUnknownEnumValue, s)
	}
}

// EndSettings stops the campaign at a date or after an amount of mints. The
// threshold is preserved as-is; its interpretation belongs to the program.
type EndSettings struct {
	EndSettingType EndSettingType
	Number         uint64
}

func (e *EndSettings) UnmarshalJSON(data []byte) error {
	var raw struct {
		EndSettingType *EndSettingType `json:"end_setting_type"`
		Number         *uint64         `json:"number"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return wrapDecodeErr(err)
	}
	if raw.EndSettingType == nil {
		return missingField("endSettings.end_setting_type")
	}
	if raw.Number == nil {
		return missingField("endSettings.number")
	}
	e.EndSettingType = *raw.EndSettingType
	e.Number = *raw.Number
	return nil
}

// IntoCandyFormat translates to the program's argument shape.
func (e *EndSettings) IntoCandyFormat() candymachine.EndSettings {
	var t candymachine.EndSettingType
	switch e.EndSettingType {
	case EndSettingDate:
		t = candymachine.EndSettingDate
	case EndSettingAmount:
		t = candymachine.EndSettingAmount
	}
	return candymachine.EndSettings{
		EndSettingType: t,
		Number:         e.Number,
	}
}
