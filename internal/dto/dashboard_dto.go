package dto

import (
	"github.com/opphub/opphub/internal/dashboard"
	"github.com/opphub/opphub/internal/model"
)

type DashboardDTO struct {
	Stats        dashboard.Stats     `json:"stats"`
	Applications []model.Application `json:"applications"`
	Bookmarks    []model.Bookmark    `json:"bookmarks"`
}
