package models

type Team struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

type Role struct {
	ID          string      `json:"_id"`
	Name        string      `json:"name"`
	Permissions Permissions `json:"permissions"`
}
