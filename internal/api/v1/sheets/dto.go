package sheets

type ImportRequest struct {
	SpreadsheetID     string `json:"spreadsheet_id" binding:"required"`
	Range             string `json:"range" binding:"required"`
	NotificationEmail string `json:"notification_email" binding:"omitempty,email"`
	NotificationPhone string `json:"notification_phone" binding:"omitempty,e164"`
}

type ImportResponse struct {
	Created int `json:"created"`
}
