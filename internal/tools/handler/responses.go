package handler

import "normalro/internal/tools"

type CatalogResponse struct {
	Tools []tools.Tool `json:"tools"`
}

type SlugResponse struct {
	Result string `json:"result"`
}

type WordCountResponse struct {
	Metrics tools.TextStats `json:"metrics"`
}

type PasswordResponse struct {
	Password string                `json:"password"`
	Length   int                   `json:"length"`
	Options  tools.PasswordOptions `json:"options"`
}

type Base64Response struct {
	Result string `json:"result"`
	Mode   string `json:"mode"`
}
