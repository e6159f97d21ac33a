package dtos

/*
PanelResponse is the payload for GET /api/v1/panel: which services must
be visited today, once the requested date has been adjusted for
holidays and weekends.
*/
type PanelResponse struct {
	OriginalDate  string `json:"original_date"`  // the date the panel was requested for
	EffectiveDate string `json:"effective_date"` // the date rounds actually happen
	Shifted       bool   `json:"shifted"`
	IsHoliday     bool   `json:"is_holiday"`
	DayLabel      string `json:"day_label"`

	Categories []PanelCategory `json:"categories"`

	SurgeryAvailable bool                `json:"surgery_available"`
	SurgeryDayName   string              `json:"surgery_day_name,omitempty"`
	SurgeryLayout    []SurgeryRoomLayout `json:"surgery_layout,omitempty"`
}

type PanelCategory struct {
	Key         string            `json:"key"`
	Title       string            `json:"title"`
	Subservices []PanelSubservice `json:"subservices"`
}

type PanelSubservice struct {
	Name       string `json:"name"`
	IsOncology bool   `json:"is_oncology"`
}

type SurgeryRoomLayout struct {
	Room      string   `json:"room"`
	Equipment []string `json:"equipment"`
}
