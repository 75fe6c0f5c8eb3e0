package model

// Setting is one row of the key/value scheduling configuration. Keys used by
// the orchestrator: next_draw_date, draw_time, current_jackpot. Values are
// opaque strings interpreted by the reader; the latest value is authoritative.
type Setting struct {
	Key   string `gorm:"column:setting_key;primaryKey;size:100" json:"setting_key"`
	Value string `gorm:"column:setting_value;not null" json:"setting_value"`
}

// TableName specifies the table name for GORM
func (Setting) TableName() string {
	return "lottery_settings"
}
