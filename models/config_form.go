package models

// ConfigForm is the payload of the server configuration form posted to
// /api/updateConfig. Field names mirror the server's config keys.
type ConfigForm struct {
	CertFile             string `json:"cert_file"`
	KeyFile              string `json:"key_file"`
	WildApricotAccountID int    `json:"wild_apricot_account_id"`
	ContactFilterQuery   string `json:"contact_filter_query"`
	TagIDFieldName       string `json:"tag_id_field_name"`
	TrainingFieldName    string `json:"training_field_name"`
	LokiHookURL          string `json:"loki_hook_url"`
}
