package api

import (
	"time"

	"github.com/odit-bit/spesabot/spesa/list"
)

// Request

type AddItemRequest struct {
	Text string `json:"text"`
}

type SetQuantityRequest struct {
	Quantity string `json:"quantity"`
}

type AssistRequest struct {
	ListID   string `json:"list_id"`
	Question string `json:"question,omitempty"`
}

// Response

type ItemResponse struct {
	Item list.Item `json:"item"`
}

type ListResponse struct {
	Items []list.Item `json:"items"`
}

type AssistResponse struct {
	Created time.Time `json:"created"`
	Text    string    `json:"text"`
}

type errorResponse struct {
	Error string `json:"error"`
}
