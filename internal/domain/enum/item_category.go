package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ItemCategory classifies an inventory item
type ItemCategory int

const (
	ItemCategoryPump       ItemCategory = 0
	ItemCategoryMotor      ItemCategory = 1
	ItemCategoryPipe       ItemCategory = 2
	ItemCategoryValve      ItemCategory = 3
	ItemCategoryElectrical ItemCategory = 4
	ItemCategoryAccessory  ItemCategory = 5
)

func (c ItemCategory) String() string {
	names := [...]string{"Pump", "Motor", "Pipe", "Valve", "Electrical", "Accessory"}
	if int(c) < 0 || int(c) >= len(names) {
		return "Accessory"
	}
	return names[c]
}

func (c ItemCategory) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *ItemCategory) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*c = ItemCategory(i)
		return nil
	}
	switch str {
	case "Pump":
		*c = ItemCategoryPump
	case "Motor":
		*c = ItemCategoryMotor
	case "Pipe":
		*c = ItemCategoryPipe
	case "Valve":
		*c = ItemCategoryValve
	case "Electrical":
		*c = ItemCategoryElectrical
	case "Accessory":
		*c = ItemCategoryAccessory
	}
	return nil
}

func (c ItemCategory) Value() (driver.Value, error) {
	return int64(c), nil
}

func (c *ItemCategory) Scan(value interface{}) error {
	if value == nil {
		*c = ItemCategoryAccessory
		return nil
	}
	switch v := value.(type) {
	case int64:
		*c = ItemCategory(v)
	case int:
		*c = ItemCategory(v)
	}
	return nil
}
