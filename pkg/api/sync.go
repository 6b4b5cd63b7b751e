package api

import "github.com/iudanet/listsync/internal/models"

// PushRequest пакет локальных событий для отправки на сервер
type PushRequest struct {
	Events []models.Event `json:"events"`
}

// Ack подтверждение приема события; seq присвоен сервером
type Ack struct {
	ID  string `json:"id"`
	Seq int64  `json:"seq"`
}

// PushResponse ответ на отправку событий
type PushResponse struct {
	Acks []Ack `json:"acks"`
}

// PullResponse страница событий с seq больше запрошенного курсора
type PullResponse struct {
	Events []models.Event `json:"events"`
	Cursor int64          `json:"cursor"` // максимальный seq в странице или исходный курсор
	More   bool           `json:"more"`   // страница заполнена, есть продолжение
}
