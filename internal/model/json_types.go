package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is a jsonb-backed string array column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value any) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type %T for StringList", value)
	}
}

func (StringList) GormDataType() string {
	return "jsonb"
}

// ExperienceSummary is the résumé-derived experience block stored on a
// seeker profile. JSON keys follow the wire format of the extraction
// pipeline.
type ExperienceSummary struct {
	TotalYears int      `json:"total_years"`
	Level      string   `json:"experience_level"`
	Evidence   []string `json:"found_patterns"`
}

func (e ExperienceSummary) Value() (driver.Value, error) {
	return json.Marshal(e)
}

func (e *ExperienceSummary) Scan(value any) error {
	if value == nil {
		*e = ExperienceSummary{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, e)
	case string:
		return json.Unmarshal([]byte(v), e)
	default:
		return fmt.Errorf("unsupported type %T for ExperienceSummary", value)
	}
}

func (ExperienceSummary) GormDataType() string {
	return "jsonb"
}
